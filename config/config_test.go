package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.False(t, c.Debug)
	assert.False(t, c.Chime)
	assert.Empty(t, c.Lang)
	assert.Equal(t, 100*time.Millisecond, c.TickInterval)
	assert.Equal(t, 50*time.Millisecond, c.PollInterval)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SPLITTIMER_DEBUG", "true")
	t.Setenv("SPLITTIMER_CHIME", "true")
	t.Setenv("SPLITTIMER_LANG", "pt")
	t.Setenv("SPLITTIMER_TICK_INTERVAL", "250ms")
	t.Setenv("SPLITTIMER_POLL_INTERVAL", "20ms")

	c, err := Load()
	require.NoError(t, err)

	assert.True(t, c.Debug)
	assert.True(t, c.Chime)
	assert.Equal(t, "pt", c.Lang)
	assert.Equal(t, 250*time.Millisecond, c.TickInterval)
	assert.Equal(t, 20*time.Millisecond, c.PollInterval)
}

func TestValidate(t *testing.T) {
	c := &Config{TickInterval: 100 * time.Millisecond, PollInterval: 50 * time.Millisecond}
	require.NoError(t, c.Validate())

	c.TickInterval = 0
	assert.ErrorContains(t, c.Validate(), "tick interval")

	c.TickInterval = time.Second
	c.PollInterval = -time.Millisecond
	assert.ErrorContains(t, c.Validate(), "poll interval")
}
