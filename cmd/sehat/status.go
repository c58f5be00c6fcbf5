// ABOUTME: Dashboard command summarizing profile and today's meals.
// ABOUTME: Read-only view over the store.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sehatsense/sehat/internal/models"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"dashboard"},
	Short:   "Show your profile summary and today's meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := requireProfile()
		if err != nil {
			return err
		}

		color.Cyan("Hello, %s!", p.Name)
		fmt.Printf("Age %d · %s · %s diet\n", p.Age, p.Gender, p.DietaryPreference)
		if p.BMI > 0 {
			fmt.Printf("Weight %.1f kg · Height %.0f cm · BMI %.1f\n", p.CurrentWeight, p.Height, p.BMI)
		}
		if p.WeightLossGoal && p.TargetWeight > 0 {
			fmt.Printf("Goal: reach %.1f kg\n", p.TargetWeight)
		}

		if len(p.Conditions) > 0 {
			fmt.Println("\nTracking:")
			for _, c := range p.Conditions {
				detail := models.ConditionDetails[c]
				fmt.Printf("  • %s — %s\n", detail.Label, detail.Description)
			}
		}

		today := models.DateKey(time.Now())
		meals := st.FoodLog()[today]

		fmt.Println()
		if len(meals) == 0 {
			fmt.Println("No meals logged today. Try: sehat log \"what you ate\"")
			return nil
		}

		var calories, protein float64
		for _, m := range meals {
			calories += m.Analysis.Calories
			protein += m.Analysis.Protein
		}
		color.Green("Today: %d meal(s), %.0f kcal, %.0fg protein", len(meals), calories, protein)
		for _, m := range meals {
			fmt.Printf("  %s  %-9s %-30s score %d/100\n",
				m.Timestamp.Local().Format("15:04"), m.MealType, truncate(m.Name, 30), m.Analysis.OverallScore)
		}
		return nil
	},
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n-1]) + "…"
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
