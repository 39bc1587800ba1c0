package fans

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/warthog618/go-gpiocdev"
)

// GpiodFan drives the fan pin through the Linux GPIO character device.
// Requesting the line as output claims it exclusively and resets it to
// low, so the fan starts in a known "off" state.
type GpiodFan struct {
	Pin  int
	chip *gpiocdev.Chip
	line *gpiocdev.Line
}

// NewGpiodFan requests the line named "GPIO<pin>" on the given chip.
// With an empty chipPath all /dev/gpiochip* devices are scanned, the
// header GPIOs are not always on gpiochip0 (Pi 5).
func NewGpiodFan(pin int, chipPath string) (*GpiodFan, error) {
	lineName := fmt.Sprintf("GPIO%d", pin)

	var candidates []string
	if chipPath != "" {
		candidates = []string{chipPath}
	} else {
		candidates = []string{"/dev/gpiochip0", "/dev/gpiochip4"}
		entries, _ := os.ReadDir("/dev")
		for _, e := range entries {
			name := e.Name()
			if strings.HasPrefix(name, "gpiochip") {
				candidates = append(candidates, filepath.Join("/dev", name))
			}
		}
	}

	for _, candidate := range candidates {
		chip, err := gpiocdev.NewChip(candidate)
		if err != nil {
			continue
		}
		offset, err := chip.FindLine(lineName)
		if err != nil {
			_ = chip.Close()
			continue
		}
		line, err := chip.RequestLine(offset, gpiocdev.AsOutput(0), gpiocdev.WithConsumer(Consumer))
		if err != nil {
			_ = chip.Close()
			continue
		}
		return &GpiodFan{Pin: pin, chip: chip, line: line}, nil
	}

	return nil, fmt.Errorf("gpio line %q not found or busy", lineName)
}

func (fan *GpiodFan) GetId() string {
	return fmt.Sprintf("GPIO%d", fan.Pin)
}

func (fan *GpiodFan) IsOn() (bool, error) {
	if fan.line == nil {
		return false, fmt.Errorf("gpio line %s not initialized", fan.GetId())
	}
	value, err := fan.line.Value()
	if err != nil {
		return false, err
	}
	return value != 0, nil
}

func (fan *GpiodFan) SetOn(on bool) error {
	if fan.line == nil {
		return fmt.Errorf("gpio line %s not initialized", fan.GetId())
	}
	value := 0
	if on {
		value = 1
	}
	return fan.line.SetValue(value)
}

func (fan *GpiodFan) Close() error {
	if fan.line == nil {
		return nil
	}
	err := fan.line.Close()
	fan.line = nil
	if fan.chip != nil {
		_ = fan.chip.Close()
		fan.chip = nil
	}
	return err
}
