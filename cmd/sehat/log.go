// ABOUTME: CLI command analyzing a described meal and logging it.
// ABOUTME: Analysis results are discarded, not stored, on any failure.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sehatsense/sehat/internal/gateway"
	"github.com/sehatsense/sehat/internal/models"
)

var (
	logMealType string
	logDryRun   bool
)

var logCmd = &cobra.Command{
	Use:     "log <description>",
	Aliases: []string{"analyze"},
	Short:   "Analyze a meal and add it to your diary",
	Long: `Describe what you ate in plain words. The meal is analyzed against
your health profile and added to today's diary.

Examples:
  sehat log "2 rotis with palak paneer and a bowl of dal"
  sehat log "masala dosa with sambar" --type Breakfast
  sehat log "aloo samosa" --dry-run        # analyze without logging`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := strings.Join(args, " ")

		if !models.IsValidMealType(logMealType) {
			return fmt.Errorf("unknown meal type: %s (valid: Breakfast, Lunch, Dinner, Snack)", logMealType)
		}

		p, err := requireProfile()
		if err != nil {
			return err
		}
		gw, err := newGateway()
		if err != nil {
			return err
		}

		fmt.Println("Analyzing your meal...")
		analysis, err := gw.AnalyzeFood(cmd.Context(), description, p)
		if err != nil {
			return describeGatewayError(err)
		}

		printAnalysis(description, analysis)

		if logDryRun {
			fmt.Println("\n(dry run - not added to your diary)")
			return nil
		}

		meal := models.NewLoggedMeal(description, models.MealType(logMealType), *analysis)
		if err := st.AddMeal(meal); err != nil {
			return fmt.Errorf("failed to log meal: %w", err)
		}
		color.Green("\nAdded to your diary (ID: %s)", meal.ID[:8])
		return nil
	},
}

func printAnalysis(name string, a *models.FoodAnalysis) {
	color.Cyan("\n%s", name)
	fmt.Printf("Overall score: %d/100\n", a.OverallScore)
	fmt.Printf("%.0f kcal · %.0fg protein · %.0fg carbs · %.0fg fats · %.0fg fiber\n",
		a.Calories, a.Protein, a.Carbs, a.Fats, a.Fiber)

	fmt.Printf("\nBlood sugar impact: %s\n  %s\n  Tip: %s\n",
		a.BloodSugarImpact.Level, a.BloodSugarImpact.Explanation, a.BloodSugarImpact.Tip)
	fmt.Printf("Liver health: %d/10\n  %s\n  Tip: %s\n",
		a.LiverHealth.Score, a.LiverHealth.Explanation, a.LiverHealth.Tip)
	fmt.Printf("Cholesterol: %s\n  %s\n  Tip: %s\n",
		a.CholesterolImpact.Effect, a.CholesterolImpact.Explanation, a.CholesterolImpact.Tip)
	fmt.Printf("Weight loss alignment: %d%%\n  %s\n  Tip: %s\n",
		a.WeightLossAlignment.Percentage, a.WeightLossAlignment.Explanation, a.WeightLossAlignment.Tip)

	if len(a.SmartSuggestions) > 0 {
		fmt.Println("\nSuggestions:")
		for _, s := range a.SmartSuggestions {
			fmt.Printf("  • %s\n", s)
		}
	}
}

// describeGatewayError maps gateway failures to user-facing messages.
func describeGatewayError(err error) error {
	var parseErr *gateway.ParseError
	var svcErr *gateway.ServiceError
	switch {
	case errors.Is(err, gateway.ErrExtraction):
		return fmt.Errorf("could not read the report; try a clearer image or enter values manually")
	case errors.As(err, &parseErr):
		return fmt.Errorf("couldn't process the AI response; please try again")
	case errors.As(err, &svcErr):
		return fmt.Errorf("the AI service is unreachable right now; check your connection and try again")
	default:
		return err
	}
}

func init() {
	logCmd.Flags().StringVar(&logMealType, "type", string(models.MealLunch), "meal type (Breakfast, Lunch, Dinner, Snack)")
	logCmd.Flags().BoolVar(&logDryRun, "dry-run", false, "analyze without adding to the diary")
	rootCmd.AddCommand(logCmd)
}
