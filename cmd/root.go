package cmd

import (
	"fmt"
	"os"

	"fancontrold/cmd/fan"
	"fancontrold/cmd/global"
	"fancontrold/cmd/sensor"
	"fancontrold/internal"
	"fancontrold/internal/configuration"
	"fancontrold/internal/ui"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fancontrold",
	Short: "A daemon to control a GPIO fan on the Raspberry Pi.",
	Long: `fancontrold is a simple daemon that switches a GPIO-connected
fan on and off based on the CPU temperature, using hysteresis
thresholds to avoid rapid toggling.`,
	// this is the default command to run when no subcommand is specified
	Run: func(cmd *cobra.Command, args []string) {
		setupUi()
		printHeader()

		if err := configuration.LoadConfig(); err != nil {
			ui.FatalWithoutStacktrace("Configuration error: %v", err)
		}
		if err := configuration.Validate(); err != nil {
			ui.FatalWithoutStacktrace("Configuration error: %v", err)
		}

		internal.RunDaemon()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")

	rootCmd.AddCommand(fan.Command)
	rootCmd.AddCommand(sensor.Command)
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("fan", pterm.NewStyle(pterm.FgLightBlue)),
		pterm.NewLettersFromStringWithStyle("control", pterm.NewStyle(pterm.FgWhite)),
		pterm.NewLettersFromStringWithStyle("d", pterm.NewStyle(pterm.FgLightBlue)),
	).Render()
	if err != nil {
		fmt.Println("fancontrold")
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		configuration.InitConfig()
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
