// ABOUTME: Response parsing: "Key: Value" report lines and JSON span extraction.
// ABOUTME: Treats the model as an untrusted text source throughout.
package gateway

import (
	"math"
	"strconv"
	"strings"

	"github.com/sehatsense/sehat/internal/models"
)

// labLabels maps the labels the extraction prompt asks for to lab fields.
var labLabels = map[string]models.LabField{
	"HbA1c":             models.LabHbA1c,
	"Fasting Glucose":   models.LabGlucose,
	"LDL":               models.LabLDL,
	"HDL":               models.LabHDL,
	"Total Cholesterol": models.LabTotalCholesterol,
	"Triglycerides":     models.LabTriglycerides,
	"Vitamin D":         models.LabVitaminD,
	"Vitamin B12":       models.LabVitaminB12,
	"SGPT":              models.LabSGPT,
	"SGOT":              models.LabSGOT,
}

// parseReportLines extracts lab values from "Key: Value" lines.
// Unrecognized labels and non-numeric values (including the "Not found"
// sentinel) are silently dropped.
func parseReportLines(text string) models.ReportData {
	data := models.ReportData{}
	for _, line := range strings.Split(text, "\n") {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		field, ok := labLabels[strings.TrimSpace(parts[0])]
		if !ok {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}
		data[field] = value
	}
	return data
}

// extractJSONObject returns the first balanced {...} span in s.
func extractJSONObject(s string) (string, bool) {
	return extractSpan(s, '{', '}')
}

// extractJSONArray returns the first balanced [...] span in s.
func extractJSONArray(s string) (string, bool) {
	return extractSpan(s, '[', ']')
}

// extractSpan scans from the first opening delimiter to its balanced
// closing one, ignoring delimiters inside JSON string literals.
func extractSpan(s string, opening, closing byte) (string, bool) {
	start := strings.IndexByte(s, opening)
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case opening:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
