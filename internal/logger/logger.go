package logger

import (
    "fmt"
    "io"
    "os"
    "path/filepath"
    "strings"
    "sync"
    "time"

    "github.com/rs/zerolog"
)

// Level names accepted by Config.Level
const (
    DebugLevel = "debug"
    InfoLevel  = "info"
    WarnLevel  = "warn"
    ErrorLevel = "error"
)

var (
    once   sync.Once
    logger zerolog.Logger
)

// Config holds the configuration for the logger
type Config struct {
    Level  string
    Output string // "stdout", "stderr", or file path
    Pretty bool   // Enable pretty logging for development
}

// Init initializes the global logger. Only the first call has any effect.
// If the output cannot be opened the logger stays a no-op and the error is
// returned.
func Init(cfg Config) error {
    var err error
    once.Do(func() {
        level, parseErr := zerolog.ParseLevel(strings.ToLower(cfg.Level))
        if parseErr != nil || cfg.Level == "" {
            level = zerolog.InfoLevel
        }
        zerolog.SetGlobalLevel(level)
        zerolog.TimeFieldFormat = time.RFC3339Nano

        output, openErr := openOutput(cfg.Output)
        if openErr != nil {
            err = openErr
            return
        }

        if cfg.Pretty {
            logger = zerolog.New(zerolog.ConsoleWriter{
                Out:        output,
                TimeFormat: "2006-01-02 15:04:05",
            })
        } else {
            logger = zerolog.New(output)
        }

        logger = logger.With().
            Timestamp().
            Caller().
            Logger()

        zerolog.DefaultContextLogger = &logger
    })
    return err
}

func openOutput(output string) (io.Writer, error) {
    switch output {
    case "", "stdout":
        return os.Stdout, nil
    case "stderr":
        return os.Stderr, nil
    }

    dir := filepath.Dir(output)
    if dir != "." && dir != string(filepath.Separator) {
        if err := os.MkdirAll(dir, 0755); err != nil {
            return nil, fmt.Errorf("failed to create log directory: %w", err)
        }
    }

    file, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
    if err != nil {
        return nil, fmt.Errorf("failed to open log file: %w", err)
    }
    return file, nil
}

// Get returns the logger instance. Before Init it is a no-op logger.
func Get() *zerolog.Logger {
    return &logger
}
