package fan

import (
	"fancontrold/internal/configuration"
	"fancontrold/internal/fans"
	"fancontrold/internal/ui"

	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "fan",
	Short:            "Fan related commands",
	Long:             ``,
	TraverseChildren: true,
}

func getFan() (fans.Fan, error) {
	if err := configuration.LoadConfig(); err != nil {
		ui.FatalWithoutStacktrace("Configuration error: %v", err)
	}
	if err := configuration.Validate(); err != nil {
		ui.FatalWithoutStacktrace("Configuration error: %v", err)
	}

	return fans.NewFan(configuration.CurrentConfig)
}
