package logger

import (
    "os"
    "path/filepath"
    "sync"
    "testing"

    "github.com/stretchr/testify/require"
)

func TestOpenOutput_Std(t *testing.T) {
    w, err := openOutput("")
    require.NoError(t, err)
    require.Equal(t, os.Stdout, w)

    w, err = openOutput("stderr")
    require.NoError(t, err)
    require.Equal(t, os.Stderr, w)
}

func TestOpenOutput_FileCreatesDirectory(t *testing.T) {
    path := filepath.Join(t.TempDir(), "logs", "app.log")

    w, err := openOutput(path)
    require.NoError(t, err)
    defer w.(*os.File).Close()

    _, err = os.Stat(path)
    require.NoError(t, err)
}

func TestInit_WritesToFile(t *testing.T) {
    path := filepath.Join(t.TempDir(), "app.log")

    resetLogger(t)
    require.NoError(t, Init(Config{Level: "debug", Output: path}))
    Get().Info().Str("component", "test").Msg("hello")

    data, err := os.ReadFile(path)
    require.NoError(t, err)
    require.Contains(t, string(data), `"message":"hello"`)
    require.Contains(t, string(data), `"component":"test"`)
}

func TestOpenOutput_Unwritable(t *testing.T) {
    // A regular file cannot be used as the log directory
    parent := filepath.Join(t.TempDir(), "not-a-dir")
    require.NoError(t, os.WriteFile(parent, nil, 0644))

    _, err := openOutput(filepath.Join(parent, "app.log"))
    require.Error(t, err)
    require.Contains(t, err.Error(), "failed to create log directory")
}

func TestInit_ReturnsOpenError(t *testing.T) {
    resetLogger(t)
    parent := filepath.Join(t.TempDir(), "not-a-dir")
    require.NoError(t, os.WriteFile(parent, nil, 0644))

    err := Init(Config{Output: filepath.Join(parent, "app.log")})
    require.Error(t, err)
}

func resetLogger(t *testing.T) {
    t.Helper()
    once = sync.Once{}
    t.Cleanup(func() { once = sync.Once{} })
}
