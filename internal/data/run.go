package data

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"biomass-report/internal/chart"
	"biomass-report/internal/model"
	"biomass-report/internal/report"
)

// RunDocument is a completed run as delivered by the results service, optionally
// with the sensitivity series the chart is drawn from.
type RunDocument struct {
	Run         *model.AllYearsResults
	Sensitivity *chart.Sensitivity
}

// Chart returns the sensitivity chart, or nil when the document has none.
// The result is an untyped nil so it can be handed straight to the report builder.
func (d *RunDocument) Chart() report.Chart {
	if d == nil || d.Sensitivity == nil {
		return nil
	}
	return d.Sensitivity
}

func LoadRun(path string) (*RunDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := DecodeRun(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// DecodeRun reads one run document. The run's fields sit at the top level next to
// an optional "sensitivity" object.
func DecodeRun(r io.Reader) (*RunDocument, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseRun(raw)
}

func ParseRun(raw []byte) (*RunDocument, error) {
	var run model.AllYearsResults
	if err := json.Unmarshal(raw, &run); err != nil {
		return nil, fmt.Errorf("decode run: %w", err)
	}
	var extra struct {
		Sensitivity *chart.Sensitivity `json:"sensitivity"`
	}
	if err := json.Unmarshal(raw, &extra); err != nil {
		return nil, fmt.Errorf("decode sensitivity: %w", err)
	}
	return &RunDocument{Run: &run, Sensitivity: extra.Sensitivity}, nil
}
