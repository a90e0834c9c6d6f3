package models

import (
	"biomass-report/internal/model"
	"biomass-report/internal/report"
)

// SummaryResponse is the report content as JSON: the same sections the workbook
// holds, already formatted for display.
type SummaryResponse struct {
	RequestID      string                `json:"request_id"`
	TeaModel       string                `json:"tea_model"`
	FacilityType   string                `json:"facility_type"`
	OperatingYears int                   `json:"operating_years"`
	Sections       []report.Section      `json:"sections"`
	Escalation     []report.LabeledValue `json:"escalation"`
}

type TreatmentsResponse struct {
	Treatments []model.Treatment `json:"treatments"`
}

type AssumptionsResponse struct {
	Assumptions [][]any `json:"assumptions"`
}

// PresetResponse carries a default TEA input set for one facility type.
type PresetResponse struct {
	Model      string                `json:"model"`
	Label      string                `json:"label"`
	Inputs     model.TeaInputs       `json:"inputs"`
	Escalation []report.LabeledValue `json:"escalation"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
