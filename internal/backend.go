package internal

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fancontrold/internal/configuration"
	"fancontrold/internal/control_loop"
	"fancontrold/internal/controller"
	"fancontrold/internal/fans"
	"fancontrold/internal/sensors"
	"fancontrold/internal/ui"

	"github.com/oklog/run"
)

func RunDaemon() {
	config := configuration.CurrentConfig

	sensor, err := sensors.NewSensor(config)
	if err != nil {
		ui.FatalWithoutStacktrace("Unable to create temperature sensor: %v", err)
	}

	fan, err := fans.NewFan(config)
	if err != nil {
		ui.FatalWithoutStacktrace(
			"Cannot acquire GPIO pin %d: %v\n"+
				"Make sure the gpio character device is accessible, "+
				"add the user to the 'gpio' group or run fancontrold as root.",
			config.GpioPin, err)
	}

	ui.Info("Fan on %s, on threshold %.1f°C, off threshold %.1f°C, interval %s",
		fan.GetId(), config.OnThreshold, config.OffThreshold, config.Interval)

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		// === fan controller
		loop := control_loop.NewHysteresisLoop(config.OnThreshold, config.OffThreshold)
		fanController := controller.NewFanController(
			sensor, fan, loop, config.Interval, config.MaxFailures)

		g.Add(func() error {
			err := fanController.Run(ctx)
			ui.Info("Fan controller for fan %s stopped.", fan.GetId())
			return err
		}, func(err error) {
			cancel()
		})
	}
	{
		// === signal handling
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			<-sig
			ui.Info("Received termination signal, exiting...")
			return nil
		}, func(err error) {
			signal.Stop(sig)
			close(sig)
			cancel()
		})
	}

	err = g.Run()

	// leave the fan off on shutdown
	if setErr := fan.SetOn(false); setErr != nil {
		ui.Warning("Unable to turn fan %s off on shutdown: %v", fan.GetId(), setErr)
	}
	if closeErr := fan.Close(); closeErr != nil {
		ui.Warning("Error releasing fan %s: %v", fan.GetId(), closeErr)
	}

	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ui.Info("Done.")
	os.Exit(0)
}
