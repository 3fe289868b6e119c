package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesSessionTaggedRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	SetDebug(true)
	t.Cleanup(func() {
		Close()
		SetDebug(false)
	})

	require.NoError(t, Init(path))
	Get().Debug("conversation selected", "id", 3)
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "Logger initialized")
	assert.Contains(t, out, "conversation selected")
	assert.Contains(t, out, "id=3")
	assert.Contains(t, out, "session=")
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "info.log")
	SetDebug(false)
	t.Cleanup(Close)

	require.NoError(t, Init(path))
	Get().Debug("hidden")
	Get().Info("shown")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestInitBadPath(t *testing.T) {
	err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file")
}

func TestGetBeforeInitDiscards(t *testing.T) {
	Close()
	require.NotNil(t, Get())
	Get().Info("goes nowhere")
}
