package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("warn"))
	assert.Equal(t, LevelWarn, ParseLevel("WARNING"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelInfo, ParseLevel("banana"))
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stdout)
		SetLevel("info")
	})

	SetLevel("warn")
	Debug("quiet at %d", 1)
	Info("also quiet")
	Warn("warn shows up")
	Error("error shows up")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "warn shows up")
	assert.Contains(t, out, "error shows up")

	buf.Reset()
	SetLevel("debug")
	Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}
