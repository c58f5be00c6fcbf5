// ABOUTME: CLI command exporting the diary as CSV or the full state as JSON.
// ABOUTME: Writes to stdout by default, or to a file with --output.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export your diary and profile",
	Long: `Export your data.

FORMATS:

  csv    One row per logged meal across all dates
         (Date, Meal, Calories, Protein(g), Carbs(g), Fats(g), Score)
  json   Full state export, suitable for backup

EXAMPLES:

  sehat export csv                      # print diary as CSV
  sehat export csv -o diary.csv         # save to a file
  sehat export json -o backup.json      # full backup`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"csv", "json"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		switch args[0] {
		case "csv":
			data = []byte(st.ExportCSV())
		case "json":
			var err error
			data, err = st.ExportJSON()
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
		default:
			return fmt.Errorf("unknown format %q (use csv or json)", args[0])
		}

		if exportOutput == "" {
			fmt.Print(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		color.Green("Exported to %s", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
