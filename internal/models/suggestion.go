// ABOUTME: Meal and drink suggestion models plus their request filters.
// ABOUTME: Shapes mirror the JSON the planner asks the model to return.
package models

// MealFilters narrows meal suggestions.
type MealFilters struct {
	MealType string `json:"mealType"`
	Time     string `json:"time"`
	Cuisine  string `json:"cuisine"`
}

// DrinkFilters narrows drink suggestions.
type DrinkFilters struct {
	DrinkType string `json:"drinkType"`
	TimeOfDay string `json:"timeOfDay"`
}

// HealthScore rates a suggestion against one condition.
type HealthScore struct {
	Condition string `json:"condition"`
	Score     int    `json:"score"`
}

// Nutrition is the macro breakdown of a suggestion.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// MealSuggestion is one generated meal idea.
// Image is derived from ImageSearchTerm after parsing; it is never
// requested from the model directly.
type MealSuggestion struct {
	Name            string        `json:"name"`
	ImageSearchTerm string        `json:"imageSearchTerm"`
	Image           string        `json:"image,omitempty"`
	Description     string        `json:"description"`
	HealthScores    []HealthScore `json:"healthScores"`
	Nutrition       Nutrition     `json:"nutrition"`
	PrepTime        string        `json:"prepTime"`
	Difficulty      string        `json:"difficulty"`
	Ingredients     []string      `json:"ingredients"`
	Recipe          []string      `json:"recipe"`
	WhyItsGood      string        `json:"whyItsGood"`
}

// DrinkSuggestion is one generated drink recommendation.
type DrinkSuggestion struct {
	Name         string   `json:"name"`
	PerfectFor   []string `json:"perfectFor"`
	Calories     float64  `json:"calories"`
	Sugar        string   `json:"sugar"`
	KeyNutrients string   `json:"keyNutrients"`
	WhyItWorks   string   `json:"whyItWorks"`
	Ingredients  []string `json:"ingredients"`
	PrepTime     string   `json:"prepTime"`
	BestTime     string   `json:"bestTime"`
	Recipe       string   `json:"recipe"`
	Warnings     string   `json:"warnings"`
}
