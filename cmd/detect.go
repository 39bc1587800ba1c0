package cmd

import (
	"bytes"
	"path/filepath"
	"strconv"

	"fancontrold/cmd/global"
	"fancontrold/internal/ui"
	"fancontrold/internal/util"

	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
	"github.com/warthog618/go-gpiocdev"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect GPIO chips and thermal zones",
	Long:  `Lists the available GPIO character devices and thermal zones with their current readings`,
	Run: func(cmd *cobra.Command, args []string) {
		tableConfig := &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+buf"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		}

		printGpioChips(tableConfig)
		printThermalZones(tableConfig)
	},
}

func printGpioChips(tableConfig *table.Config) {
	var rows [][]string
	for _, name := range gpiocdev.Chips() {
		chip, err := gpiocdev.NewChip(name)
		if err != nil {
			ui.Warning("Cannot open gpio chip %s: %v", name, err)
			continue
		}
		rows = append(rows, []string{
			chip.Name, chip.Label, strconv.Itoa(chip.Lines()),
		})
		_ = chip.Close()
	}

	if len(rows) <= 0 {
		ui.Warning("No GPIO character devices found.")
		return
	}

	ui.Printfln("> GPIO chips")
	printTable(table.Table{
		Headers: []string{"Chip", "Label", "Lines"},
		Rows:    rows,
	}, tableConfig)
}

func printThermalZones(tableConfig *table.Config) {
	zones, _ := filepath.Glob("/sys/class/thermal/thermal_zone*")

	var rows [][]string
	for _, zone := range zones {
		zoneType, err := util.ReadStringFromFile(filepath.Join(zone, "type"))
		if err != nil {
			zoneType = "N/A"
		}

		tempText := "N/A"
		if milli, err := util.ReadIntFromFile(filepath.Join(zone, "temp")); err == nil {
			tempText = strconv.FormatFloat(float64(milli)/1000.0, 'f', 1, 64)
		}

		rows = append(rows, []string{
			filepath.Base(zone), zoneType, tempText,
		})
	}

	if len(rows) <= 0 {
		ui.Warning("No thermal zones found.")
		return
	}

	ui.Printfln("> Thermal zones")
	printTable(table.Table{
		Headers: []string{"Zone", "Type", "Temp"},
		Rows:    rows,
	}, tableConfig)
}

func printTable(tab table.Table, tableConfig *table.Config) {
	var buf bytes.Buffer
	if err := tab.WriteTable(&buf, tableConfig); err != nil {
		ui.Error("Error rendering table: %v", err)
		return
	}
	ui.Printfln(buf.String())
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
