// ABOUTME: UserProfile model with derived-field normalization.
// ABOUTME: BMI and the weight-loss-goal flag are recomputed, never trusted.
package models

import (
	"fmt"
	"math"
	"strings"
)

// Gender of the user. Empty means not set.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// DietaryPreference of the user.
type DietaryPreference string

const (
	DietVegetarian    DietaryPreference = "vegetarian"
	DietNonVegetarian DietaryPreference = "non-vegetarian"
	DietVegan         DietaryPreference = "vegan"
	DietEggetarian    DietaryPreference = "eggetarian"
)

// ActivityLevel of the user. Empty means not set.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
)

// UserProfile is the singleton profile for the installation.
// BMI and WeightLossGoal are derived; call Normalize after any change
// to weight, height, or conditions.
type UserProfile struct {
	Name              string             `json:"name"`
	Age               int                `json:"age,omitempty"`
	Gender            Gender             `json:"gender,omitempty"`
	Conditions        []Condition        `json:"conditions"`
	Metrics           map[string]float64 `json:"metrics"`
	DietaryPreference DietaryPreference  `json:"dietaryPreference"`
	Allergies         []string           `json:"allergies"`
	WeightLossGoal    bool               `json:"weightLossGoal"`
	CurrentWeight     float64            `json:"currentWeight,omitempty"` // kg
	TargetWeight      float64            `json:"targetWeight,omitempty"`  // kg
	Height            float64            `json:"height,omitempty"`        // cm
	BMI               float64            `json:"bmi,omitempty"`
	WaterIntake       int                `json:"waterIntake,omitempty"` // liters/day
	ActivityLevel     ActivityLevel      `json:"activityLevel,omitempty"`
	SleepHours        float64            `json:"sleepHours,omitempty"`
}

// ComputeBMI returns weight/(height/100)^2 rounded to one decimal place,
// or 0 when either input is unset.
func ComputeBMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return math.Round(weightKg/(m*m)*10) / 10
}

// Normalize recomputes the derived fields from their inputs.
func (p *UserProfile) Normalize() {
	p.BMI = ComputeBMI(p.CurrentWeight, p.Height)
	p.WeightLossGoal = p.HasCondition(ConditionWeightLossGoal)
	if p.Metrics == nil {
		p.Metrics = map[string]float64{}
	}
	if p.Conditions == nil {
		p.Conditions = []Condition{}
	}
	if p.Allergies == nil {
		p.Allergies = []string{}
	}
}

// HasCondition reports whether the profile includes the given condition.
func (p *UserProfile) HasCondition(c Condition) bool {
	for _, pc := range p.Conditions {
		if pc == c {
			return true
		}
	}
	return false
}

// AddConditions appends conditions not already present, preserving order.
func (p *UserProfile) AddConditions(conditions ...Condition) {
	for _, c := range conditions {
		if !p.HasCondition(c) {
			p.Conditions = append(p.Conditions, c)
		}
	}
}

// Clone returns a deep copy of the profile.
func (p *UserProfile) Clone() *UserProfile {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Conditions = append([]Condition(nil), p.Conditions...)
	cp.Allergies = append([]string(nil), p.Allergies...)
	cp.Metrics = make(map[string]float64, len(p.Metrics))
	for k, v := range p.Metrics {
		cp.Metrics[k] = v
	}
	return &cp
}

// SetupSteps is the number of steps in the onboarding wizard.
const SetupSteps = 4

// ValidateSetupStep checks the fields collected by one wizard step.
// Failures are local validation errors; they never reach the store or gateway.
func (p *UserProfile) ValidateSetupStep(step int) error {
	switch step {
	case 1:
		if strings.TrimSpace(p.Name) == "" || p.Age <= 0 || p.Gender == "" {
			return fmt.Errorf("please fill in all personal details")
		}
	case 2:
		if len(p.Conditions) == 0 {
			return fmt.Errorf("please select at least one health condition or goal")
		}
	case 3:
		if p.Height <= 0 || p.CurrentWeight <= 0 {
			return fmt.Errorf("please provide your height and current weight")
		}
		if p.HasCondition(ConditionWeightLossGoal) && p.TargetWeight <= 0 {
			return fmt.Errorf("please enter your target weight")
		}
	case 4:
		if p.WaterIntake <= 0 || p.ActivityLevel == "" || p.SleepHours <= 0 {
			return fmt.Errorf("please provide all your lifestyle details")
		}
	default:
		return fmt.Errorf("unknown setup step %d", step)
	}
	return nil
}
