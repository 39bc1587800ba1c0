package sensors

import (
	"fancontrold/internal/util"
)

// FileSensor reads a temperature from a sysfs thermal zone file.
// The kernel usually reports milli-degrees (e.g. 52345), some platforms
// report plain degrees. Values above 1000 are treated as milli-degrees.
type FileSensor struct {
	Path      string
	MovingAvg float64
}

func (sensor *FileSensor) GetId() string {
	return sensor.Path
}

func (sensor *FileSensor) GetValue() (float64, error) {
	value, err := util.ReadIntFromFile(sensor.Path)
	if err != nil {
		return 0, err
	}

	if value > 1000 {
		return float64(value) / 1000.0, nil
	}
	return float64(value), nil
}

func (sensor *FileSensor) GetMovingAvg() (avg float64) {
	return sensor.MovingAvg
}

func (sensor *FileSensor) SetMovingAvg(avg float64) {
	sensor.MovingAvg = avg
}
