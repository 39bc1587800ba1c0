package fan

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state [on|off]",
	Short: "Get/Set the fan state",
	Long: `Without an argument the current pin level is printed.
With "on" or "off" the fan is forced to that state. Note that a running
daemon will take over again on its next temperature check.`,
	Args: cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		fan, err := getFan()
		if err != nil {
			return err
		}
		defer func() {
			_ = fan.Close()
		}()

		if len(args) > 0 {
			switch args[0] {
			case "on":
				return fan.SetOn(true)
			case "off":
				return fan.SetOn(false)
			default:
				return fmt.Errorf("invalid state '%s', use on or off", args[0])
			}
		}

		on, err := fan.IsOn()
		if err != nil {
			return err
		}
		if on {
			fmt.Printf("on")
		} else {
			fmt.Printf("off")
		}
		return nil
	},
}

func init() {
	Command.AddCommand(stateCmd)
}
