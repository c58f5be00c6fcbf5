// ABOUTME: Export functionality for the food diary and full state.
// ABOUTME: CSV one row per meal across all dates, plus JSON backup format.
package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ExportData is the full JSON export format.
type ExportData struct {
	Version    string    `json:"version"`
	ExportedAt time.Time `json:"exported_at"`
	Tool       string    `json:"tool"`
	State      State     `json:"state"`
}

// ExportJSON exports the full state as indented JSON.
func (s *Store) ExportJSON() ([]byte, error) {
	data := ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "sehat",
		State:      s.Snapshot(),
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportCSV renders the food diary as CSV, one row per logged meal.
// Commas in meal names are stripped, not escaped, to match the diary's
// import expectations elsewhere.
func (s *Store) ExportCSV() string {
	log := s.FoodLog()

	dates := log.Dates()
	sort.Strings(dates)

	var sb strings.Builder
	sb.WriteString("Date,Meal,Calories,Protein(g),Carbs(g),Fats(g),Score\n")
	for _, date := range dates {
		for _, meal := range log[date] {
			row := []string{
				date,
				strings.ReplaceAll(meal.Name, ",", ""),
				formatNumber(meal.Analysis.Calories),
				formatNumber(meal.Analysis.Protein),
				formatNumber(meal.Analysis.Carbs),
				formatNumber(meal.Analysis.Fats),
				fmt.Sprintf("%d", meal.Analysis.OverallScore),
			}
			sb.WriteString(strings.Join(row, ","))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
