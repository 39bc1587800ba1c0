package controller

import (
	"context"
	"fmt"
	"time"

	"fancontrold/internal/control_loop"
	"fancontrold/internal/fans"
	"fancontrold/internal/sensors"
	"fancontrold/internal/ui"
	"fancontrold/internal/util"

	"github.com/asecurityteam/rolling"
)

// TempRollingWindowSize is the number of recent samples kept for the
// moving average shown in transition log messages.
const TempRollingWindowSize = 10

type FanController interface {
	Run(ctx context.Context) error
}

type fanController struct {
	sensor      sensors.Sensor
	fan         fans.Fan
	loop        control_loop.ControlLoop
	tickRate    time.Duration
	maxFailures int

	// fanOn is the remembered fan state, owned by this controller.
	fanOn    bool
	failures int

	tempWindow   *rolling.PointPolicy
	windowPrimed bool
}

func NewFanController(
	sensor sensors.Sensor,
	fan fans.Fan,
	loop control_loop.ControlLoop,
	tickRate time.Duration,
	maxFailures int,
) FanController {
	return &fanController{
		sensor:      sensor,
		fan:         fan,
		loop:        loop,
		tickRate:    tickRate,
		maxFailures: maxFailures,
		tempWindow:  util.CreateRollingWindow(TempRollingWindowSize),
	}
}

func (f *fanController) Run(ctx context.Context) error {
	// probe the initial state where the backend allows it
	if on, err := f.fan.IsOn(); err == nil {
		f.fanOn = on
	} else {
		ui.Warning("Cannot probe state of fan %s, assuming off: %v", f.fan.GetId(), err)
	}

	ui.Info("Starting controller loop for fan '%s'", f.fan.GetId())

	// first sample right away, the ticker only fires after one interval
	if err := f.cycle(); err != nil {
		return err
	}

	tick := time.Tick(f.tickRate)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
			if err := f.cycle(); err != nil {
				return err
			}
		}
	}
}

// cycle runs a single read-compare-write iteration.
// A failed temperature read skips the iteration without touching the fan
// state, the controller never acts on a guessed temperature.
func (f *fanController) cycle() error {
	value, err := f.sensor.GetValue()
	if err != nil {
		ui.Warning("Error reading sensor %s: %v", f.sensor.GetId(), err)
		return f.countFailure(err)
	}

	if !f.windowPrimed {
		// prefill so the average is not skewed by the zeroed window
		util.FillWindow(f.tempWindow, TempRollingWindowSize, value)
		f.windowPrimed = true
	}
	f.tempWindow.Append(value)
	f.sensor.SetMovingAvg(util.UpdateSimpleMovingAvg(
		f.sensor.GetMovingAvg(), TempRollingWindowSize, value))

	ui.Debug("Temperature: %.1f°C (avg %.1f°C)", value, util.GetWindowAvg(f.tempWindow))

	next := f.loop.Loop(f.fanOn, value)
	if next == f.fanOn {
		f.failures = 0
		return nil
	}

	if err := f.fan.SetOn(next); err != nil {
		ui.Error("Error setting fan %s: %v", f.fan.GetId(), err)
		return f.countFailure(err)
	}
	f.fanOn = next
	f.failures = 0

	if next {
		ui.Info("Fan %s turned on (%.1f°C)", f.fan.GetId(), value)
	} else {
		ui.Info("Fan %s turned off (%.1f°C)", f.fan.GetId(), value)
	}
	return nil
}

// countFailure tracks consecutive read/write failures and aborts the
// loop once the configured ceiling is reached. A ceiling of zero means
// log-and-continue forever.
func (f *fanController) countFailure(err error) error {
	f.failures++
	if f.maxFailures > 0 && f.failures >= f.maxFailures {
		return fmt.Errorf("%d consecutive failures, giving up: %w", f.failures, err)
	}
	return nil
}
