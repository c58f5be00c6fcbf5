// ABOUTME: CLI commands for personalized meal and drink suggestions.
// ABOUTME: Thin views over the gateway's planner operations.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sehatsense/sehat/internal/models"
)

var (
	suggestMealType string
	suggestTime     string
	suggestCuisine  string

	suggestDrinkType string
	suggestTimeOfDay string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Get personalized meal and drink ideas",
}

var suggestMealsCmd = &cobra.Command{
	Use:   "meals",
	Short: "Suggest three meals tailored to your profile",
	Long: `Generate three meal ideas matched to your conditions, preferences,
and goals.

Examples:
  sehat suggest meals
  sehat suggest meals --meal-type Breakfast --cuisine "South Indian"
  sehat suggest meals --time "Quick (under 15 min)"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := requireProfile()
		if err != nil {
			return err
		}
		gw, err := newGateway()
		if err != nil {
			return err
		}

		fmt.Println("Cooking up some ideas...")
		ideas, err := gw.MealIdeas(cmd.Context(), p, models.MealFilters{
			MealType: suggestMealType,
			Time:     suggestTime,
			Cuisine:  suggestCuisine,
		})
		if err != nil {
			return describeGatewayError(err)
		}

		for i, idea := range ideas {
			color.Cyan("\n%d. %s  (%s, %s)", i+1, idea.Name, idea.PrepTime, idea.Difficulty)
			fmt.Println(idea.Description)
			fmt.Printf("%.0f kcal · %.0fg protein · %.0fg carbs · %.0fg fats\n",
				idea.Nutrition.Calories, idea.Nutrition.Protein, idea.Nutrition.Carbs, idea.Nutrition.Fats)
			for _, hs := range idea.HealthScores {
				fmt.Printf("  %s: %d/10\n", hs.Condition, hs.Score)
			}
			fmt.Println("\nIngredients:")
			for _, ing := range idea.Ingredients {
				fmt.Printf("  • %s\n", ing)
			}
			fmt.Println("Steps:")
			for j, step := range idea.Recipe {
				fmt.Printf("  %d. %s\n", j+1, step)
			}
			fmt.Printf("Why it's good: %s\n", idea.WhyItsGood)
			fmt.Printf("Image: %s\n", idea.Image)
		}
		return nil
	},
}

var suggestDrinksCmd = &cobra.Command{
	Use:   "drinks",
	Short: "Suggest six healthy drinks tailored to your profile",
	Long: `Generate six drink recommendations matched to your conditions.

Examples:
  sehat suggest drinks
  sehat suggest drinks --drink-type smoothie --time morning`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := requireProfile()
		if err != nil {
			return err
		}
		gw, err := newGateway()
		if err != nil {
			return err
		}

		fmt.Println("Mixing some ideas...")
		drinks, err := gw.DrinkIdeas(cmd.Context(), p, models.DrinkFilters{
			DrinkType: suggestDrinkType,
			TimeOfDay: suggestTimeOfDay,
		})
		if err != nil {
			return describeGatewayError(err)
		}

		for i, d := range drinks {
			color.Cyan("\n%d. %s  (%.0f kcal, sugar %s)", i+1, d.Name, d.Calories, d.Sugar)
			if len(d.PerfectFor) > 0 {
				fmt.Printf("Perfect for: %v\n", d.PerfectFor)
			}
			fmt.Printf("Nutrients: %s\n", d.KeyNutrients)
			fmt.Printf("Why it works: %s\n", d.WhyItWorks)
			fmt.Println("Ingredients:")
			for _, ing := range d.Ingredients {
				fmt.Printf("  • %s\n", ing)
			}
			fmt.Printf("Recipe: %s\n", d.Recipe)
			fmt.Printf("Best time: %s · Prep: %s\n", d.BestTime, d.PrepTime)
			if d.Warnings != "" {
				color.Yellow("Warning: %s", d.Warnings)
			}
		}
		return nil
	},
}

func init() {
	suggestMealsCmd.Flags().StringVar(&suggestMealType, "meal-type", "Lunch", "meal type to suggest")
	suggestMealsCmd.Flags().StringVar(&suggestTime, "time", "Moderate (20-30 min)", "prep time preference")
	suggestMealsCmd.Flags().StringVar(&suggestCuisine, "cuisine", "North Indian", "cuisine preference")

	suggestDrinksCmd.Flags().StringVar(&suggestDrinkType, "drink-type", "all", "drink type preference")
	suggestDrinksCmd.Flags().StringVar(&suggestTimeOfDay, "time", "any", "time of day")

	suggestCmd.AddCommand(suggestMealsCmd)
	suggestCmd.AddCommand(suggestDrinksCmd)
	rootCmd.AddCommand(suggestCmd)
}
