package fans

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"fancontrold/internal/configuration"

	"github.com/stretchr/testify/assert"
)

// fakeSysfsGpio creates a fake /sys/class/gpio tree in which the
// exported pin directory already exists.
func fakeSysfsGpio(t *testing.T, pin int) string {
	base := t.TempDir()
	pinDir := filepath.Join(base, "gpio"+strconv.Itoa(pin))
	assert.NoError(t, os.MkdirAll(pinDir, 0755))
	assert.NoError(t, os.WriteFile(filepath.Join(base, "export"), []byte(""), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(pinDir, "direction"), []byte("in"), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(pinDir, "value"), []byte("0"), 0644))
	return base
}

func TestSysfsFanSetOn(t *testing.T) {
	// GIVEN
	base := fakeSysfsGpio(t, 17)
	fan := &SysfsFan{Pin: 17, BasePath: base}
	assert.NoError(t, fan.export())

	// WHEN
	err := fan.SetOn(true)

	// THEN
	assert.NoError(t, err)
	on, err := fan.IsOn()
	assert.NoError(t, err)
	assert.True(t, on)

	// WHEN
	err = fan.SetOn(false)

	// THEN
	assert.NoError(t, err)
	on, err = fan.IsOn()
	assert.NoError(t, err)
	assert.False(t, on)
}

func TestSysfsFanExportSetsDirection(t *testing.T) {
	// GIVEN
	base := fakeSysfsGpio(t, 17)
	fan := &SysfsFan{Pin: 17, BasePath: base}

	// WHEN
	err := fan.export()

	// THEN
	assert.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(base, "gpio17", "direction"))
	assert.NoError(t, err)
	assert.Equal(t, "out", string(data))
}

func TestSysfsFanId(t *testing.T) {
	// GIVEN
	fan := &SysfsFan{Pin: 17}

	// THEN
	assert.Equal(t, "GPIO17", fan.GetId())
}

func TestNewFanUnknownBackend(t *testing.T) {
	// GIVEN
	config := configuration.Configuration{GpioBackend: "i2c"}

	// WHEN
	_, err := NewFan(config)

	// THEN
	assert.Error(t, err)
}
