package sensors

import (
	"fmt"

	"fancontrold/internal/configuration"
)

type Sensor interface {
	GetId() string

	// GetValue returns the current temperature reported by this sensor
	GetValue() (float64, error)

	// GetMovingAvg returns the moving average of this sensor's value
	GetMovingAvg() float64
	SetMovingAvg(avg float64)
}

func NewSensor(config configuration.Configuration) (Sensor, error) {
	switch config.TempSource {
	case configuration.TempSourceCmd:
		return &CmdSensor{
			Exec: VcgencmdExecutable,
			Args: []string{VcgencmdMeasureTempArg},
		}, nil
	case configuration.TempSourceFile:
		return &FileSensor{
			Path: config.TempFile,
		}, nil
	}

	return nil, fmt.Errorf("no matching sensor type for temp source: %s", config.TempSource)
}
