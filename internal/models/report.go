// ABOUTME: ReportData model for lab values extracted from blood reports.
// ABOUTME: Sparse map keyed by a fixed set of lab fields; absence = not found.
package models

// LabField identifies one of the lab tests the report analyzer looks for.
type LabField string

const (
	LabHbA1c            LabField = "hba1c"
	LabGlucose          LabField = "glucose"
	LabLDL              LabField = "ldl"
	LabHDL              LabField = "hdl"
	LabTotalCholesterol LabField = "totalCholesterol"
	LabTriglycerides    LabField = "triglycerides"
	LabVitaminD         LabField = "vitaminD"
	LabVitaminB12       LabField = "vitaminB12"
	LabSGPT             LabField = "sgpt"
	LabSGOT             LabField = "sgot"
)

// AllLabFields lists every recognized lab field in report order.
var AllLabFields = []LabField{
	LabHbA1c, LabGlucose, LabLDL, LabHDL, LabTotalCholesterol,
	LabTriglycerides, LabVitaminD, LabVitaminB12, LabSGPT, LabSGOT,
}

// LabUnits maps lab fields to their reporting units.
var LabUnits = map[LabField]string{
	LabHbA1c:            "%",
	LabGlucose:          "mg/dL",
	LabLDL:              "mg/dL",
	LabHDL:              "mg/dL",
	LabTotalCholesterol: "mg/dL",
	LabTriglycerides:    "mg/dL",
	LabVitaminD:         "ng/mL",
	LabVitaminB12:       "pg/mL",
	LabSGPT:             "U/L",
	LabSGOT:             "U/L",
}

// ReportData holds the lab values found in an uploaded report.
// A missing key means the value was not found in the source document.
type ReportData map[LabField]float64
