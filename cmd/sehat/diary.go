// ABOUTME: CLI commands for viewing and editing the food diary.
// ABOUTME: Lists date buckets newest first; deleting prunes empty dates.
package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var diaryCmd = &cobra.Command{
	Use:   "diary",
	Short: "View your food diary",
	Long: `Show logged meals grouped by date, most recent first.

Examples:
  sehat diary                  # full diary
  sehat diary delete a1b2c3d4  # remove a meal by ID (or ID prefix)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := st.FoodLog()
		if len(log) == 0 {
			fmt.Println("Your diary is empty. Try: sehat log \"what you ate\"")
			return nil
		}

		dates := log.Dates()
		sort.Sort(sort.Reverse(sort.StringSlice(dates)))

		for _, date := range dates {
			color.Cyan("%s", date)
			var calories float64
			for _, m := range log[date] {
				calories += m.Analysis.Calories
				fmt.Printf("  %s  %s  %-9s %-34s %.0f kcal  score %d/100\n",
					m.ID[:8], m.Timestamp.Local().Format("15:04"), m.MealType,
					truncate(m.Name, 34), m.Analysis.Calories, m.Analysis.OverallScore)
			}
			fmt.Printf("  total: %d meal(s), %.0f kcal\n\n", len(log[date]), calories)
		}
		return nil
	},
}

var diaryDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a meal from the diary",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveMealID(args[0])
		if err != nil {
			return err
		}
		if err := st.DeleteMeal(id); err != nil {
			return fmt.Errorf("failed to delete meal: %w", err)
		}
		color.Green("Deleted meal %s", id[:8])
		return nil
	},
}

// resolveMealID expands an ID prefix to the full meal ID.
func resolveMealID(idOrPrefix string) (string, error) {
	var matches []string
	for _, meals := range st.FoodLog() {
		for _, m := range meals {
			if strings.HasPrefix(m.ID, idOrPrefix) {
				matches = append(matches, m.ID)
			}
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no meal found with ID %s", idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ID prefix %s is ambiguous (%d matches)", idOrPrefix, len(matches))
	}
}

func init() {
	diaryCmd.AddCommand(diaryDeleteCmd)
	rootCmd.AddCommand(diaryCmd)
}
