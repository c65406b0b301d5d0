package config_test

import (
	"testing"

	"github.com/bootpad/bootpad/gamepad"
	"github.com/bootpad/bootpad/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverConfigDefaults(t *testing.T) {
	input := config.Input{Deadzone: 64, QueueSize: 16, Controllers: 8}
	cfg, err := input.DriverConfig()
	require.NoError(t, err)
	assert.Equal(t, uint8(64), cfg.Threshold)
	assert.Equal(t, 16, cfg.QueueSize)
	assert.Equal(t, 8, cfg.MaxControllers)
	require.NotNil(t, cfg.Map)
	assert.Equal(t, gamepad.DefaultKeyMap(), *cfg.Map)
}

func TestDriverConfigMappingOverrides(t *testing.T) {
	input := config.Input{
		Mapping: map[string]string{
			"a":     "cancel",
			"b":     "activate",
			"up":    "page-up",
			"start": "none",
		},
	}
	cfg, err := input.DriverConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg.Map)
	assert.Equal(t, gamepad.KeyCancel, cfg.Map.Buttons[gamepad.ButtonA])
	assert.Equal(t, gamepad.KeyActivate, cfg.Map.Buttons[gamepad.ButtonB])
	assert.Equal(t, gamepad.KeyPageUp, cfg.Map.Up)
	assert.Equal(t, gamepad.KeyNone, cfg.Map.Buttons[gamepad.ButtonStart])
	// Untouched controls keep their defaults.
	assert.Equal(t, gamepad.KeyDown, cfg.Map.Down)
	assert.Equal(t, gamepad.KeyEdit, cfg.Map.Buttons[gamepad.ButtonSelect])
}

func TestDriverConfigRejectsUnknownNames(t *testing.T) {
	_, err := config.Input{Mapping: map[string]string{"a": "warp"}}.DriverConfig()
	assert.Error(t, err)

	_, err = config.Input{Mapping: map[string]string{"turbo": "activate"}}.DriverConfig()
	assert.Error(t, err)
}
