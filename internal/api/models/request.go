package models

import "encoding/json"

// ReportRequest is the body of POST /api/v1/report and POST /api/v1/summary.
// Exactly one of Run or RunID is set.
type ReportRequest struct {
	// Run is the run document inline, with an optional "sensitivity" object.
	Run json.RawMessage `json:"run,omitempty"`
	// RunID names a run on the results service instead.
	RunID   string        `json:"run_id,omitempty"`
	Options ReportOptions `json:"options,omitempty"`
}

// ReportOptions override the server's report settings for one request. Zero values
// keep the server default.
type ReportOptions struct {
	YearsToRun  int  `json:"years_to_run,omitempty" binding:"gte=0"`
	ChartWidth  int  `json:"chart_width,omitempty" binding:"gte=0,lte=4000"`
	ChartHeight int  `json:"chart_height,omitempty" binding:"gte=0,lte=4000"`
	NoChart     bool `json:"no_chart,omitempty"`
}
