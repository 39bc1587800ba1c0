package configuration

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func setupConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	InitConfig()
}

func TestDefaults(t *testing.T) {
	// GIVEN
	setupConfig(t)

	// WHEN
	err := LoadConfig()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 17, CurrentConfig.GpioPin)
	assert.Equal(t, 15*time.Second, CurrentConfig.Interval)
	assert.Equal(t, 60.0, CurrentConfig.OnThreshold)
	assert.Equal(t, 50.0, CurrentConfig.OffThreshold)
	assert.Equal(t, GpioBackendChardev, CurrentConfig.GpioBackend)
	assert.Equal(t, TempSourceCmd, CurrentConfig.TempSource)
	assert.Equal(t, DefaultThermalZonePath, CurrentConfig.TempFile)
	assert.Equal(t, 10, CurrentConfig.MaxFailures)
}

func TestEnvOverrides(t *testing.T) {
	// GIVEN
	t.Setenv("GPIO_PIN", "18")
	t.Setenv("INTERVAL", "5")
	t.Setenv("ON_THRESHOLD", "65.5")
	t.Setenv("OFF_THRESHOLD", "55")
	setupConfig(t)

	// WHEN
	err := LoadConfig()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 18, CurrentConfig.GpioPin)
	assert.Equal(t, 5*time.Second, CurrentConfig.Interval)
	assert.Equal(t, 65.5, CurrentConfig.OnThreshold)
	assert.Equal(t, 55.0, CurrentConfig.OffThreshold)
}

func TestIntervalDurationString(t *testing.T) {
	// GIVEN
	t.Setenv("INTERVAL", "1m30s")
	setupConfig(t)

	// WHEN
	err := LoadConfig()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 90*time.Second, CurrentConfig.Interval)
}

func TestMalformedOnThreshold(t *testing.T) {
	// GIVEN
	t.Setenv("ON_THRESHOLD", "not-a-number")
	setupConfig(t)

	// WHEN
	err := LoadConfig()

	// THEN
	assert.Error(t, err)
}

func TestMalformedInterval(t *testing.T) {
	// GIVEN
	t.Setenv("INTERVAL", "soon")
	setupConfig(t)

	// WHEN
	err := LoadConfig()

	// THEN
	assert.Error(t, err)
}

func TestMalformedGpioPin(t *testing.T) {
	// GIVEN
	t.Setenv("GPIO_PIN", "seventeen")
	setupConfig(t)

	// WHEN
	err := LoadConfig()

	// THEN
	assert.Error(t, err)
}
