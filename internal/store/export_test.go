// ABOUTME: Tests for CSV and JSON export of the food diary.
// ABOUTME: Verifies header, row format, and comma stripping in names.
package store

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestExportCSV(t *testing.T) {
	s := setupTestStore(t)
	if err := s.SetProfile(testProfile()); err != nil {
		t.Fatalf("SetProfile failed: %v", err)
	}

	m := testMeal("dal, rice and salad")
	if err := s.AddMeal(m); err != nil {
		t.Fatalf("AddMeal failed: %v", err)
	}

	csv := s.ExportCSV()
	lines := strings.Split(strings.TrimSpace(csv), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if lines[0] != "Date,Meal,Calories,Protein(g),Carbs(g),Fats(g),Score" {
		t.Errorf("unexpected header: %s", lines[0])
	}

	row := strings.TrimSpace(lines[1])
	if strings.Contains(strings.SplitN(row, ",", 3)[1], ",") {
		t.Error("commas in meal names should be stripped")
	}
	if !strings.Contains(row, "dal rice and salad") {
		t.Errorf("expected stripped meal name in row: %s", row)
	}
	if !strings.HasSuffix(row, ",70") {
		t.Errorf("row should end with score: %s", row)
	}
}

func TestExportCSVEmptyLog(t *testing.T) {
	s := setupTestStore(t)
	csv := s.ExportCSV()
	if csv != "Date,Meal,Calories,Protein(g),Carbs(g),Fats(g),Score\n" {
		t.Errorf("empty log should export header only, got %q", csv)
	}
}

func TestExportJSON(t *testing.T) {
	s := setupTestStore(t)
	if err := s.SetProfile(testProfile()); err != nil {
		t.Fatalf("SetProfile failed: %v", err)
	}

	raw, err := s.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if data.Tool != "sehat" || data.Version != "1.0" {
		t.Errorf("unexpected export metadata: %+v", data)
	}
	if data.State.Profile == nil || data.State.Profile.Name != "Asha" {
		t.Error("export should contain the profile")
	}
}
