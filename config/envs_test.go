package config

import (
	"testing"

	"github.com/beka-birhanu/vinom-paradox/game"
	"github.com/stretchr/testify/assert"
)

func TestGetEnvWithDefault(t *testing.T) {
	t.Run("Unset uses default", func(t *testing.T) {
		assert.Equal(t, "fallback", getEnvWithDefault("PARADOX_TEST_UNSET", "fallback"))
	})

	t.Run("Set value wins", func(t *testing.T) {
		t.Setenv("PARADOX_TEST_STR", "value")
		assert.Equal(t, "value", getEnvWithDefault("PARADOX_TEST_STR", "fallback"))
	})

	t.Run("Empty value is kept", func(t *testing.T) {
		t.Setenv("PARADOX_TEST_EMPTY", "")
		assert.Equal(t, "", getEnvWithDefault("PARADOX_TEST_EMPTY", "fallback"))
	})
}

func TestGetEnvNumbers(t *testing.T) {
	t.Setenv("PARADOX_TEST_INT", "120")
	t.Setenv("PARADOX_TEST_FLOAT", "12.5")

	assert.Equal(t, 120, getEnvAsIntWithDefault("PARADOX_TEST_INT", 60))
	assert.Equal(t, 60, getEnvAsIntWithDefault("PARADOX_TEST_UNSET", 60))
	assert.Equal(t, 12.5, getEnvAsFloatWithDefault("PARADOX_TEST_FLOAT", 25))
	assert.Equal(t, 25.0, getEnvAsFloatWithDefault("PARADOX_TEST_UNSET", 25))
}

func TestConfigTuning(t *testing.T) {
	t.Setenv("RECORDING_WINDOW", "5")
	t.Setenv("SPAWN_MIN_GAP", "10")

	c := initConfig()
	tuning := c.Tuning()

	assert.Equal(t, 5.0, tuning.RecordingWindow)
	assert.Equal(t, 10.0, tuning.SpawnMinGap)
	assert.Equal(t, game.DefaultTuning().PowerDuration, tuning.PowerDuration)
	assert.Equal(t, game.DefaultTuning().PlayerSpeed, tuning.PlayerSpeed)
	assert.NoError(t, tuning.Validate())
}
