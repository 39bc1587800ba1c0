package fans

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"fancontrold/internal/util"
)

const DefaultSysfsGpioPath = "/sys/class/gpio"

// SysfsFan drives the fan pin through the legacy /sys/class/gpio
// interface. Useful on kernels without the GPIO character device or when
// the gpio group only grants access to the sysfs tree.
type SysfsFan struct {
	Pin int
	// BasePath is the sysfs gpio class directory, overridable for tests.
	BasePath string
}

func NewSysfsFan(pin int) (*SysfsFan, error) {
	fan := &SysfsFan{
		Pin:      pin,
		BasePath: DefaultSysfsGpioPath,
	}
	if err := fan.export(); err != nil {
		return nil, err
	}
	return fan, nil
}

func (fan *SysfsFan) GetId() string {
	return fmt.Sprintf("GPIO%d", fan.Pin)
}

func (fan *SysfsFan) pinPath() string {
	return filepath.Join(fan.BasePath, fmt.Sprintf("gpio%d", fan.Pin))
}

func (fan *SysfsFan) export() error {
	if _, err := os.Stat(fan.pinPath()); err == nil {
		// already exported, possibly by a previous run
		return fan.setDirectionOut()
	}

	exportPath := filepath.Join(fan.BasePath, "export")
	if err := util.WriteStringToFile(strconv.Itoa(fan.Pin), exportPath); err != nil {
		return fmt.Errorf("cannot export %s: %w", fan.GetId(), err)
	}

	// the direction attribute appears shortly after exporting
	var err error
	for i := 0; i < 10; i++ {
		if err = fan.setDirectionOut(); err == nil {
			return nil
		}
		time.Sleep(50 * time.Millisecond)
	}
	return fmt.Errorf("cannot configure %s as output: %w", fan.GetId(), err)
}

func (fan *SysfsFan) setDirectionOut() error {
	return util.WriteStringToFile("out", filepath.Join(fan.pinPath(), "direction"))
}

func (fan *SysfsFan) IsOn() (bool, error) {
	value, err := util.ReadIntFromFile(filepath.Join(fan.pinPath(), "value"))
	if err != nil {
		return false, err
	}
	return value != 0, nil
}

func (fan *SysfsFan) SetOn(on bool) error {
	value := 0
	if on {
		value = 1
	}
	return util.WriteIntToFile(value, filepath.Join(fan.pinPath(), "value"))
}

func (fan *SysfsFan) Close() error {
	// keep the pin exported, re-exporting on every start would reset
	// the pin level before the controller has probed it
	return nil
}
