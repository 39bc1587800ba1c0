package configuration

import (
	"errors"
	"fmt"
)

func Validate() error {
	return validateConfig(&CurrentConfig)
}

func validateConfig(config *Configuration) error {
	if config.GpioPin < 0 {
		return fmt.Errorf("GPIO_PIN must be >= 0, got %d", config.GpioPin)
	}

	if config.Interval <= 0 {
		return errors.New("INTERVAL must be greater than zero")
	}

	if config.OffThreshold >= config.OnThreshold {
		return fmt.Errorf(
			"OFF_THRESHOLD (%.1f) must be less than ON_THRESHOLD (%.1f)",
			config.OffThreshold, config.OnThreshold,
		)
	}

	if config.MaxFailures < 0 {
		return fmt.Errorf("MAX_FAILURES must be >= 0, got %d", config.MaxFailures)
	}

	switch config.GpioBackend {
	case GpioBackendChardev, GpioBackendSysfs:
	default:
		return fmt.Errorf(
			"unknown GPIO_BACKEND '%s', use one of: %s | %s",
			config.GpioBackend, GpioBackendChardev, GpioBackendSysfs,
		)
	}

	switch config.TempSource {
	case TempSourceCmd, TempSourceFile:
	default:
		return fmt.Errorf(
			"unknown TEMP_SOURCE '%s', use one of: %s | %s",
			config.TempSource, TempSourceCmd, TempSourceFile,
		)
	}

	if config.TempSource == TempSourceFile && len(config.TempFile) <= 0 {
		return errors.New("TEMP_FILE must not be empty")
	}

	return nil
}
