// ABOUTME: Condition enum for tracked health concerns and goals.
// ABOUTME: Closed set of 9 values with a static display-detail lookup table.
package models

// Condition is a health concern or goal used to personalize advice.
type Condition string

const (
	ConditionPrediabetes        Condition = "prediabetes"
	ConditionDiabetes           Condition = "diabetes"
	ConditionFattyLiver         Condition = "fatty_liver"
	ConditionHighCholesterol    Condition = "high_cholesterol"
	ConditionHighBloodPressure  Condition = "high_blood_pressure"
	ConditionVitaminDDeficiency Condition = "vitamin_d_deficiency"
	ConditionB12Deficiency      Condition = "vitamin_b12_deficiency"
	ConditionPCOS               Condition = "pcos_hormonal_imbalance"
	ConditionWeightLossGoal     Condition = "weight_loss_goal"
)

// AllConditions lists every valid condition in display order.
var AllConditions = []Condition{
	ConditionPrediabetes, ConditionDiabetes, ConditionFattyLiver,
	ConditionHighCholesterol, ConditionHighBloodPressure,
	ConditionVitaminDDeficiency, ConditionB12Deficiency,
	ConditionPCOS, ConditionWeightLossGoal,
}

// IsValidCondition checks if a string is a valid condition.
func IsValidCondition(s string) bool {
	for _, c := range AllConditions {
		if string(c) == s {
			return true
		}
	}
	return false
}

// ConditionDetail holds static display metadata for a condition.
type ConditionDetail struct {
	Label       string
	Description string
	Icon        string
}

// ConditionDetails maps each condition to its display metadata.
var ConditionDetails = map[Condition]ConditionDetail{
	ConditionPrediabetes: {
		Label:       "Pre-diabetes",
		Description: "Managing blood sugar levels.",
		Icon:        "droplet",
	},
	ConditionDiabetes: {
		Label:       "Diabetes",
		Description: "Strict blood sugar control.",
		Icon:        "droplet",
	},
	ConditionFattyLiver: {
		Label:       "Fatty Liver",
		Description: "Focusing on a low-fat diet.",
		Icon:        "test-tube",
	},
	ConditionHighCholesterol: {
		Label:       "High Cholesterol",
		Description: "Limiting saturated fats.",
		Icon:        "activity",
	},
	ConditionHighBloodPressure: {
		Label:       "High Blood Pressure",
		Description: "Managing sodium and potassium.",
		Icon:        "heart",
	},
	ConditionVitaminDDeficiency: {
		Label:       "Vitamin D Deficiency",
		Description: "Needs Vitamin D rich foods.",
		Icon:        "sun",
	},
	ConditionB12Deficiency: {
		Label:       "Vitamin B12 Deficiency",
		Description: "Needs Vitamin B12 sources.",
		Icon:        "beaker",
	},
	ConditionPCOS: {
		Label:       "PCOS/Hormonal",
		Description: "Balancing hormones via diet.",
		Icon:        "sliders",
	},
	ConditionWeightLossGoal: {
		Label:       "Weight Loss Goal",
		Description: "Calorie and macro management.",
		Icon:        "scale",
	},
}
