package fans

import (
	"fmt"

	"fancontrold/internal/configuration"
)

// Consumer tag attached to requested GPIO lines.
const Consumer = "fancontrold"

type Fan interface {
	GetId() string

	// IsOn reports the current logic level of the pin.
	IsOn() (bool, error)

	// SetOn drives the pin high (true) or low (false).
	SetOn(on bool) error

	// Close releases the pin. It does not change the pin level,
	// callers that want the fan off on shutdown set it explicitly.
	Close() error
}

func NewFan(config configuration.Configuration) (Fan, error) {
	switch config.GpioBackend {
	case configuration.GpioBackendChardev:
		return NewGpiodFan(config.GpioPin, config.GpioChip)
	case configuration.GpioBackendSysfs:
		return NewSysfsFan(config.GpioPin)
	}

	return nil, fmt.Errorf("no matching fan type for gpio backend: %s", config.GpioBackend)
}
