package middleware

import (
    "encoding/json"
    "errors"
    "net/http"
    "reflect"
    "strings"

    "github.com/bilgisen/newsapi/internal/logger"
    "github.com/go-playground/validator/v10"
    "github.com/gofiber/fiber/v2"
)

// ValidatedKey is the Locals key holding the parsed and validated body.
const ValidatedKey = "validated"

// Validator is a struct that holds the validator instance
type Validator struct {
    validate *validator.Validate
}

// NewValidator creates a validator that reports fields by their JSON names
func NewValidator() *Validator {
    v := validator.New(validator.WithRequiredStructEnabled())
    v.RegisterTagNameFunc(func(fld reflect.StructField) string {
        name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
        if name == "-" {
            return ""
        }
        if name == "" {
            return fld.Name
        }
        return name
    })
    return &Validator{validate: v}
}

// Validate validates the struct against its `validate` tags
func (v *Validator) Validate(s interface{}) error {
    return v.validate.Struct(s)
}

// ValidateBody parses the request body into a fresh T for every request,
// validates it and stores the *T under ValidatedKey. Any failure to produce
// a valid T is answered with 422 Unprocessable Entity.
func ValidateBody[T any]() fiber.Handler {
    v := NewValidator()

    return func(c *fiber.Ctx) error {
        body := new(T)

        if err := parseBody(c, body); err != nil {
            var typeErr *json.UnmarshalTypeError
            if errors.As(err, &typeErr) && typeErr.Field != "" {
                return validationFailed(c, map[string]string{typeErr.Field: "type"})
            }

            logger.Get().Debug().Err(err).Str("path", c.Path()).Msg("Invalid request body")
            return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
                "error": "Invalid request body",
                "msg":   err.Error(),
            })
        }

        if err := v.Validate(body); err != nil {
            var verrs validator.ValidationErrors
            if !errors.As(err, &verrs) {
                return err
            }
            fields := make(map[string]string, len(verrs))
            for _, fe := range verrs {
                fields[fe.Field()] = fe.Tag()
            }
            return validationFailed(c, fields)
        }

        c.Locals(ValidatedKey, body)

        return c.Next()
    }
}

// parseBody decodes JSON even when the client sent no Content-Type;
// BodyParser alone rejects an empty content type.
func parseBody(c *fiber.Ctx, out interface{}) error {
    if len(c.Request().Header.ContentType()) == 0 {
        return c.App().Config().JSONDecoder(c.Body(), out)
    }
    return c.BodyParser(out)
}

func validationFailed(c *fiber.Ctx, fields map[string]string) error {
    return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
        "error":  "Validation failed",
        "fields": fields,
    })
}

// NotFound answers any request that did not match a route
func NotFound(c *fiber.Ctx) error {
    return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
        "error": "Endpoint not found",
    })
}

// ErrorHandler renders handler errors as JSON. Logging is left to the
// request logger, which sees the same error.
func ErrorHandler(c *fiber.Ctx, err error) error {
    code := responseStatus(c, err)

    return c.Status(code).JSON(fiber.Map{
        "error": http.StatusText(code),
    })
}
