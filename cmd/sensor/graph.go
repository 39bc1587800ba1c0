package sensor

import (
	"time"

	"fancontrold/internal/ui"
	"fancontrold/internal/util"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	samples       int
	sampleSeconds int
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Sample the temperature and print it as a graph",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		sensor, err := getSensor()
		if err != nil {
			return err
		}

		delay := time.Duration(sampleSeconds) * time.Second
		window := util.CreateRollingWindow(samples)

		values := make([]float64, 0, samples)
		for i := 0; i < samples; i++ {
			if i > 0 {
				time.Sleep(delay)
			}
			value, err := sensor.GetValue()
			if err != nil {
				ui.Warning("Error reading sensor %s: %v", sensor.GetId(), err)
				continue
			}
			if len(values) == 0 {
				// prefill so failed reads don't pull the stats to zero
				util.FillWindow(window, samples, value)
			}
			values = append(values, value)
			window.Append(value)
		}

		if len(values) <= 0 {
			ui.Error("No samples could be read.")
			return nil
		}

		graph := asciigraph.Plot(values,
			asciigraph.Height(15),
			asciigraph.Width(100),
			asciigraph.Caption("°C / sample"),
		)
		ui.Printfln(graph)
		ui.Printfln("min %.1f°C  avg %.1f°C  max %.1f°C",
			util.GetWindowMin(window),
			util.GetWindowAvg(window),
			util.GetWindowMax(window),
		)

		return nil
	},
}

func init() {
	graphCmd.Flags().IntVarP(&samples, "samples", "n", 30, "Number of samples to read")
	graphCmd.Flags().IntVarP(&sampleSeconds, "delay", "d", 1, "Delay between samples in seconds")

	Command.AddCommand(graphCmd)
}
