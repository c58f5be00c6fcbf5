// ABOUTME: Threshold rules deriving conditions from extracted lab values.
// ABOUTME: Each rule evaluates independently; absent fields never trigger.
package gateway

import "github.com/sehatsense/sehat/internal/models"

// DeriveConditions classifies report values into condition flags.
// Diabetes takes priority over prediabetes; the result may be empty.
func DeriveConditions(data models.ReportData) []models.Condition {
	var conditions []models.Condition

	if hba1c, ok := data[models.LabHbA1c]; ok {
		switch {
		case hba1c >= 6.5:
			conditions = append(conditions, models.ConditionDiabetes)
		case hba1c >= 5.7:
			conditions = append(conditions, models.ConditionPrediabetes)
		}
	}

	ldl, hasLDL := data[models.LabLDL]
	trig, hasTrig := data[models.LabTriglycerides]
	if (hasLDL && ldl >= 130) || (hasTrig && trig >= 150) {
		conditions = append(conditions, models.ConditionHighCholesterol)
	}

	if sgpt, ok := data[models.LabSGPT]; ok && sgpt > 40 {
		conditions = append(conditions, models.ConditionFattyLiver)
	}
	if vitD, ok := data[models.LabVitaminD]; ok && vitD < 20 {
		conditions = append(conditions, models.ConditionVitaminDDeficiency)
	}
	if b12, ok := data[models.LabVitaminB12]; ok && b12 < 200 {
		conditions = append(conditions, models.ConditionB12Deficiency)
	}

	return conditions
}
