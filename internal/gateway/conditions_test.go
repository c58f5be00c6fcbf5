// ABOUTME: Tests for threshold-based condition derivation.
// ABOUTME: Covers priority, boundaries, absent fields, and emptiness.
package gateway

import (
	"testing"

	"github.com/sehatsense/sehat/internal/models"
)

func hasCondition(set []models.Condition, c models.Condition) bool {
	for _, got := range set {
		if got == c {
			return true
		}
	}
	return false
}

func TestDeriveConditionsScenario(t *testing.T) {
	data := models.ReportData{
		models.LabHbA1c: 6.6,
		models.LabLDL:   140,
		models.LabSGPT:  10,
	}
	got := DeriveConditions(data)

	if len(got) != 2 {
		t.Fatalf("expected 2 conditions, got %v", got)
	}
	if !hasCondition(got, models.ConditionDiabetes) {
		t.Error("hba1c 6.6 should derive diabetes")
	}
	if hasCondition(got, models.ConditionPrediabetes) {
		t.Error("diabetes and prediabetes are mutually exclusive")
	}
	if !hasCondition(got, models.ConditionHighCholesterol) {
		t.Error("ldl 140 should derive high cholesterol")
	}
	if hasCondition(got, models.ConditionFattyLiver) {
		t.Error("sgpt 10 should not derive fatty liver")
	}
}

func TestDeriveConditionsBoundaries(t *testing.T) {
	tests := []struct {
		name string
		data models.ReportData
		want models.Condition
		hit  bool
	}{
		{"hba1c at 6.5 is diabetes", models.ReportData{models.LabHbA1c: 6.5}, models.ConditionDiabetes, true},
		{"hba1c at 5.7 is prediabetes", models.ReportData{models.LabHbA1c: 5.7}, models.ConditionPrediabetes, true},
		{"hba1c below 5.7 is clean", models.ReportData{models.LabHbA1c: 5.6}, models.ConditionPrediabetes, false},
		{"triglycerides at 150", models.ReportData{models.LabTriglycerides: 150}, models.ConditionHighCholesterol, true},
		{"ldl below 130", models.ReportData{models.LabLDL: 129}, models.ConditionHighCholesterol, false},
		{"sgpt above 40", models.ReportData{models.LabSGPT: 41}, models.ConditionFattyLiver, true},
		{"sgpt at 40 is clean", models.ReportData{models.LabSGPT: 40}, models.ConditionFattyLiver, false},
		{"vitamin d below 20", models.ReportData{models.LabVitaminD: 19.9}, models.ConditionVitaminDDeficiency, true},
		{"vitamin d at 20 is clean", models.ReportData{models.LabVitaminD: 20}, models.ConditionVitaminDDeficiency, false},
		{"b12 below 200", models.ReportData{models.LabVitaminB12: 150}, models.ConditionB12Deficiency, true},
		{"b12 at 200 is clean", models.ReportData{models.LabVitaminB12: 200}, models.ConditionB12Deficiency, false},
	}
	for _, tt := range tests {
		got := DeriveConditions(tt.data)
		if hasCondition(got, tt.want) != tt.hit {
			t.Errorf("%s: DeriveConditions(%v) = %v", tt.name, tt.data, got)
		}
	}
}

func TestDeriveConditionsEmptyReport(t *testing.T) {
	if got := DeriveConditions(models.ReportData{}); len(got) != 0 {
		t.Errorf("empty report should derive no conditions, got %v", got)
	}
}

func TestDeriveConditionsIndependentRules(t *testing.T) {
	// Every rule firing at once; result must contain all of them.
	data := models.ReportData{
		models.LabHbA1c:         7.0,
		models.LabLDL:           160,
		models.LabTriglycerides: 200,
		models.LabSGPT:          55,
		models.LabVitaminD:      10,
		models.LabVitaminB12:    120,
	}
	got := DeriveConditions(data)
	want := []models.Condition{
		models.ConditionDiabetes,
		models.ConditionHighCholesterol,
		models.ConditionFattyLiver,
		models.ConditionVitaminDDeficiency,
		models.ConditionB12Deficiency,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d conditions, got %v", len(want), got)
	}
	for _, c := range want {
		if !hasCondition(got, c) {
			t.Errorf("missing %s", c)
		}
	}
	// high_cholesterol must not be duplicated when both ldl and
	// triglycerides exceed their thresholds.
	count := 0
	for _, c := range got {
		if c == models.ConditionHighCholesterol {
			count++
		}
	}
	if count != 1 {
		t.Errorf("high_cholesterol appeared %d times", count)
	}
}
