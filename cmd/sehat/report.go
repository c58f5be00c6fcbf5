// ABOUTME: CLI command extracting lab values from a blood report file.
// ABOUTME: Merges extracted metrics and derived conditions into the profile.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sehatsense/sehat/internal/models"
	"github.com/sehatsense/sehat/internal/store"
)

var reportDryRun bool

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Extract lab values from a blood report image or PDF",
	Long: `Upload a blood report and extract lab values (HbA1c, lipids, liver
enzymes, vitamins). Values above or below their clinical thresholds flag
matching conditions, and both are merged into your profile.

Supported formats: JPEG, PNG, WebP, PDF.

Examples:
  sehat report blood_test.jpg
  sehat report report.pdf --dry-run      # show findings without saving`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		p, err := requireProfile()
		if err != nil {
			return err
		}
		gw, err := newGateway()
		if err != nil {
			return err
		}

		blob, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read report file: %w", err)
		}
		mimeType, err := mimeFromPath(path)
		if err != nil {
			return err
		}

		fmt.Println("Reading your report...")
		data, conditions, err := gw.AnalyzeReport(cmd.Context(), blob, mimeType)
		if err != nil {
			return describeGatewayError(err)
		}

		color.Cyan("\nExtracted values:")
		for _, field := range models.AllLabFields {
			if v, ok := data[field]; ok {
				fmt.Printf("  %-18s %g %s\n", field, v, models.LabUnits[field])
			}
		}

		if len(conditions) > 0 {
			color.Yellow("\nFlagged conditions:")
			for _, c := range conditions {
				detail := models.ConditionDetails[c]
				fmt.Printf("  • %s — %s\n", detail.Label, detail.Description)
			}
		} else {
			color.Green("\nNo conditions flagged by this report.")
		}

		if reportDryRun {
			fmt.Println("\n(dry run - profile not updated)")
			return nil
		}

		metrics := make(map[string]float64, len(data))
		for field, v := range data {
			metrics[string(field)] = v
		}
		merged := p.Clone()
		merged.AddConditions(conditions...)

		err = st.UpdateProfile(store.ProfileUpdate{
			Metrics:    metrics,
			Conditions: merged.Conditions,
		})
		if err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
		color.Green("\nProfile updated with report data.")
		return nil
	},
}

// mimeFromPath infers the attachment mime type from the file extension.
func mimeFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg", nil
	case ".png":
		return "image/png", nil
	case ".webp":
		return "image/webp", nil
	case ".pdf":
		return "application/pdf", nil
	default:
		return "", fmt.Errorf("unsupported report format %q (use JPEG, PNG, WebP, or PDF)", filepath.Ext(path))
	}
}

func init() {
	reportCmd.Flags().BoolVar(&reportDryRun, "dry-run", false, "show findings without updating the profile")
	rootCmd.AddCommand(reportCmd)
}
