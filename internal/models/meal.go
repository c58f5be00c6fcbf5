// ABOUTME: LoggedMeal, FoodAnalysis, and FoodLog models.
// ABOUTME: The food log buckets meals by local calendar date, newest first.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MealType categorizes a logged meal.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

// AllMealTypes lists the valid meal types.
var AllMealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// IsValidMealType checks if a string is a valid meal type.
func IsValidMealType(s string) bool {
	for _, mt := range AllMealTypes {
		if string(mt) == s {
			return true
		}
	}
	return false
}

// ImpactLevel grades blood sugar impact.
type ImpactLevel string

const (
	ImpactLow      ImpactLevel = "low"
	ImpactModerate ImpactLevel = "moderate"
	ImpactHigh     ImpactLevel = "high"
)

// CholesterolEffect grades the effect of a meal on cholesterol.
type CholesterolEffect string

const (
	EffectPositive CholesterolEffect = "positive"
	EffectNeutral  CholesterolEffect = "neutral"
	EffectNegative CholesterolEffect = "negative"
)

// BloodSugarImpact is the blood sugar assessment block of an analysis.
type BloodSugarImpact struct {
	Level       ImpactLevel `json:"level"`
	Explanation string      `json:"explanation"`
	Tip         string      `json:"tip"`
}

// LiverHealth is the liver assessment block of an analysis.
type LiverHealth struct {
	Score       int    `json:"score"` // 0-10
	Explanation string `json:"explanation"`
	Tip         string `json:"tip"`
}

// CholesterolImpact is the cholesterol assessment block of an analysis.
type CholesterolImpact struct {
	Effect      CholesterolEffect `json:"effect"`
	Explanation string            `json:"explanation"`
	Tip         string            `json:"tip"`
}

// WeightLossAlignment is the weight-loss assessment block of an analysis.
type WeightLossAlignment struct {
	Percentage  int    `json:"percentage"` // 0-100
	Explanation string `json:"explanation"`
	Tip         string `json:"tip"`
}

// FoodAnalysis is the model's assessment of a described meal.
type FoodAnalysis struct {
	OverallScore        int                 `json:"overallScore"` // 0-100
	Calories            float64             `json:"calories"`
	Protein             float64             `json:"protein"`
	Carbs               float64             `json:"carbs"`
	Fats                float64             `json:"fats"`
	Fiber               float64             `json:"fiber"`
	BloodSugarImpact    BloodSugarImpact    `json:"bloodSugarImpact"`
	LiverHealth         LiverHealth         `json:"liverHealth"`
	CholesterolImpact   CholesterolImpact   `json:"cholesterolImpact"`
	WeightLossAlignment WeightLossAlignment `json:"weightLossAlignment"`
	SmartSuggestions    []string            `json:"smartSuggestions"`
}

// Validate checks that a decoded analysis has the expected shape.
// The model is an untrusted text source; anything out of range is rejected.
func (a *FoodAnalysis) Validate() error {
	if a.OverallScore < 0 || a.OverallScore > 100 {
		return fmt.Errorf("overallScore %d out of range", a.OverallScore)
	}
	for name, v := range map[string]float64{
		"calories": a.Calories, "protein": a.Protein, "carbs": a.Carbs,
		"fats": a.Fats, "fiber": a.Fiber,
	} {
		if v < 0 {
			return fmt.Errorf("%s is negative", name)
		}
	}
	switch a.BloodSugarImpact.Level {
	case ImpactLow, ImpactModerate, ImpactHigh:
	default:
		return fmt.Errorf("unknown blood sugar impact level %q", a.BloodSugarImpact.Level)
	}
	if a.LiverHealth.Score < 0 || a.LiverHealth.Score > 10 {
		return fmt.Errorf("liver score %d out of range", a.LiverHealth.Score)
	}
	switch a.CholesterolImpact.Effect {
	case EffectPositive, EffectNeutral, EffectNegative:
	default:
		return fmt.Errorf("unknown cholesterol effect %q", a.CholesterolImpact.Effect)
	}
	if a.WeightLossAlignment.Percentage < 0 || a.WeightLossAlignment.Percentage > 100 {
		return fmt.Errorf("weight loss alignment %d out of range", a.WeightLossAlignment.Percentage)
	}
	return nil
}

// LoggedMeal is one diary entry. Immutable once created except for deletion.
type LoggedMeal struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Timestamp time.Time    `json:"timestamp"`
	MealType  MealType     `json:"mealType"`
	Analysis  FoodAnalysis `json:"analysis"`
}

// NewLoggedMeal creates a meal entry with a fresh ID and the current time.
func NewLoggedMeal(name string, mealType MealType, analysis FoodAnalysis) *LoggedMeal {
	return &LoggedMeal{
		ID:        uuid.NewString(),
		Name:      name,
		Timestamp: time.Now(),
		MealType:  mealType,
		Analysis:  analysis,
	}
}

// DateKey returns the local calendar date bucket for a timestamp.
func DateKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// FoodLog maps local calendar dates (YYYY-MM-DD) to meals, newest first.
// Invariant: no date maps to an empty list.
type FoodLog map[string][]LoggedMeal

// Clone returns a deep copy of the log.
func (l FoodLog) Clone() FoodLog {
	cp := make(FoodLog, len(l))
	for date, meals := range l {
		cp[date] = append([]LoggedMeal(nil), meals...)
	}
	return cp
}

// Dates returns the bucket keys, unsorted.
func (l FoodLog) Dates() []string {
	dates := make([]string, 0, len(l))
	for d := range l {
		dates = append(dates, d)
	}
	return dates
}
