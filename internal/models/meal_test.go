// ABOUTME: Tests for meal models and analysis shape validation.
// ABOUTME: Covers date bucketing and FoodAnalysis range/enum checks.
package models

import (
	"testing"
	"time"
)

func validAnalysis() FoodAnalysis {
	return FoodAnalysis{
		OverallScore: 85,
		Calories:     420, Protein: 18, Carbs: 52, Fats: 12, Fiber: 8,
		BloodSugarImpact:    BloodSugarImpact{Level: ImpactModerate, Explanation: "x", Tip: "y"},
		LiverHealth:         LiverHealth{Score: 7, Explanation: "x", Tip: "y"},
		CholesterolImpact:   CholesterolImpact{Effect: EffectNeutral, Explanation: "x", Tip: "y"},
		WeightLossAlignment: WeightLossAlignment{Percentage: 85, Explanation: "x", Tip: "y"},
		SmartSuggestions:    []string{"drink water"},
	}
}

func TestFoodAnalysisValidate(t *testing.T) {
	a := validAnalysis()
	if err := a.Validate(); err != nil {
		t.Fatalf("valid analysis rejected: %v", err)
	}

	mutations := []func(*FoodAnalysis){
		func(a *FoodAnalysis) { a.OverallScore = 101 },
		func(a *FoodAnalysis) { a.OverallScore = -1 },
		func(a *FoodAnalysis) { a.Calories = -5 },
		func(a *FoodAnalysis) { a.BloodSugarImpact.Level = "extreme" },
		func(a *FoodAnalysis) { a.LiverHealth.Score = 11 },
		func(a *FoodAnalysis) { a.CholesterolImpact.Effect = "great" },
		func(a *FoodAnalysis) { a.WeightLossAlignment.Percentage = 150 },
	}
	for i, mutate := range mutations {
		bad := validAnalysis()
		mutate(&bad)
		if err := bad.Validate(); err == nil {
			t.Errorf("mutation %d should fail validation", i)
		}
	}
}

func TestNewLoggedMeal(t *testing.T) {
	m := NewLoggedMeal("dal and rice", MealLunch, validAnalysis())
	if m.ID == "" {
		t.Error("expected generated ID")
	}
	if m.MealType != MealLunch {
		t.Errorf("MealType = %s, want Lunch", m.MealType)
	}
	if time.Since(m.Timestamp) > time.Minute {
		t.Error("timestamp should be recent")
	}
}

func TestDateKey(t *testing.T) {
	ts := time.Date(2025, 3, 14, 23, 30, 0, 0, time.Local)
	if got := DateKey(ts); got != "2025-03-14" {
		t.Errorf("DateKey = %s, want 2025-03-14", got)
	}
}

func TestFoodLogClone(t *testing.T) {
	log := FoodLog{"2025-03-14": {*NewLoggedMeal("idli", MealBreakfast, validAnalysis())}}
	cp := log.Clone()
	cp["2025-03-14"][0].Name = "dosa"
	if log["2025-03-14"][0].Name != "idli" {
		t.Error("clone shares meal slice")
	}
}
