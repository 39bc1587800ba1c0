package sensors

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fancontrold/internal/util"
)

const (
	VcgencmdExecutable     = "vcgencmd"
	VcgencmdMeasureTempArg = "measure_temp"
)

// CmdSensor reads the SoC temperature by shelling out to the Raspberry Pi
// firmware utility, which prints a line like "temp=48.3'C".
type CmdSensor struct {
	Exec      string
	Args      []string
	MovingAvg float64
}

func (sensor *CmdSensor) GetId() string {
	return sensor.Exec
}

func (sensor *CmdSensor) GetValue() (float64, error) {
	timeout := 2 * time.Second
	result, err := util.SafeCmdExecution(sensor.Exec, sensor.Args, timeout)
	if err != nil {
		return 0, fmt.Errorf("sensor %s: %w", sensor.GetId(), err)
	}

	return ParseVcgencmdTemp(result)
}

func (sensor *CmdSensor) GetMovingAvg() (avg float64) {
	return sensor.MovingAvg
}

func (sensor *CmdSensor) SetMovingAvg(avg float64) {
	sensor.MovingAvg = avg
}

// ParseVcgencmdTemp extracts the temperature value from a
// "temp=48.3'C" measure_temp output line.
func ParseVcgencmdTemp(output string) (float64, error) {
	text := strings.TrimSpace(output)
	text = strings.TrimPrefix(text, "temp=")
	text = strings.TrimSuffix(text, "'C")
	text = strings.TrimSuffix(text, "°C")

	temp, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected measure_temp output %q: %w", output, err)
	}

	return temp, nil
}
