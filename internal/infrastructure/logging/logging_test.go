package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	prev := log.Default()
	defer log.SetDefault(prev)

	var buf bytes.Buffer
	l, err := Setup(&buf, "warn")
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, l.GetLevel())

	log.Info("hidden")
	log.Warn("scene disposed", "scene", "Playing")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "scene disposed")
	assert.Contains(t, out, "scene=Playing")
	assert.Contains(t, out, "flappy")
}

func TestSetup_InvalidLevel(t *testing.T) {
	_, err := Setup(&bytes.Buffer{}, "loud")
	assert.Error(t, err)
}
