package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTemp(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs", "arkmgr.log")
	require.NoError(t, Init(path))
	t.Cleanup(func() {
		SetDebug(false)
		_ = Close()
	})
	return path
}

func TestInitCreatesFile(t *testing.T) {
	path := initTemp(t)
	assert.Equal(t, path, Path())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "logger initialized")
}

func TestDebugRespectsLevel(t *testing.T) {
	path := initTemp(t)

	Debug("hidden %d", 1)
	SetDebug(true)
	Debug("visible %d", 2)
	Info("plain")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.NotContains(t, text, "hidden 1")
	assert.Contains(t, text, "visible 2")
	assert.Contains(t, text, "plain")
}

func TestWithComponentCreatedBeforeInit(t *testing.T) {
	log := WithComponent("nav")
	path := initTemp(t)

	log.Warn("cursor clamped", "from", 3, "to", 1)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "component=nav")
	assert.Contains(t, text, "cursor clamped")
	assert.Contains(t, text, "from=3")
}

func TestLoggingWithoutInitIsSilent(t *testing.T) {
	require.NoError(t, Close())
	assert.NotPanics(t, func() {
		Error("nowhere %s", "x")
		WithComponent("ui").Error("nowhere")
	})
	assert.Equal(t, "", Path())
}
