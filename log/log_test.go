package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, lvl)

	lvl, err = ParseLevel("WARNING")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestModuleFiltering(t *testing.T) {
	var buf bytes.Buffer
	prev := Root()
	SetDefault(NewLogger(NewTextHandler(&buf, LevelTrace)))
	defer SetDefault(prev)

	Debug("test_mod", "hidden")
	assert.Empty(t, buf.String())

	EnableModules(" test_mod, ")
	defer DisableModule("test_mod")
	Debug("test_mod", "shown", "offset", 4)
	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "module=test_mod")
	assert.Contains(t, buf.String(), "offset=4")

	buf.Reset()
	DisableModule("test_mod")
	Trace("test_mod", "hidden")
	Warn("test_mod", "always")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=always")
}

func TestLevelThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(NewTextHandler(&buf, LevelWarn))

	l.Write(LevelInfo, CLI, "quiet")
	assert.Empty(t, buf.String())
	l.With("file", "a.bin").Write(LevelError, CLI, "loud")
	assert.Contains(t, buf.String(), "file=a.bin")
	assert.Contains(t, buf.String(), "level=error")
}
