package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	require.NotNil(t, cfg.Controller)
	assert.Equal(t, time.Second, cfg.Controller.AutoInterval)
	assert.Equal(t, time.Millisecond*5, cfg.Controller.PollRate)

	require.NotNil(t, cfg.Button)
	assert.Equal(t, 14, cfg.Button.Pin)
	assert.Equal(t, time.Second, cfg.Button.HoldDuration)
	assert.Equal(t, 2, cfg.Button.DebounceTicks)
	assert.False(t, cfg.Button.Analog)

	require.NotNil(t, cfg.LED)
	assert.Equal(t, 1, cfg.LED.RedPin)
	assert.Equal(t, 2, cfg.LED.GreenPin)
	assert.Equal(t, 3, cfg.LED.BluePin)
	assert.Equal(t, 15, cfg.LED.BacklightPin)

	require.NotNil(t, cfg.Display)
	assert.True(t, cfg.Display.Enabled)

	require.NotNil(t, cfg.MQTT)
	assert.False(t, cfg.MQTT.Enabled)
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("LED_RED_PIN", "17")
	t.Setenv("CONTROLLER_AUTO_INTERVAL", "250ms")
	t.Setenv("BUTTON_ANALOG", "true")

	cfg := New()

	assert.Equal(t, 17, cfg.LED.RedPin)
	assert.Equal(t, time.Millisecond*250, cfg.Controller.AutoInterval)
	assert.True(t, cfg.Button.Analog)
}

func TestDefaultControllerConfig(t *testing.T) {
	cfg := DefaultControllerConfig()
	assert.Equal(t, time.Second, cfg.AutoInterval)
}
