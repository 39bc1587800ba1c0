package sensor

import (
	"fmt"

	"fancontrold/internal/configuration"
	"fancontrold/internal/sensors"
	"fancontrold/internal/ui"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "sensor",
	Short:            "Print the current CPU temperature",
	Long:             ``,
	TraverseChildren: true,
	Args:             cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		sensor, err := getSensor()
		if err != nil {
			return err
		}

		value, err := sensor.GetValue()
		if err != nil {
			return err
		}
		fmt.Printf("%.1f", value)
		return nil
	},
}

func getSensor() (sensors.Sensor, error) {
	if err := configuration.LoadConfig(); err != nil {
		ui.FatalWithoutStacktrace("Configuration error: %v", err)
	}
	if err := configuration.Validate(); err != nil {
		ui.FatalWithoutStacktrace("Configuration error: %v", err)
	}

	return sensors.NewSensor(configuration.CurrentConfig)
}
