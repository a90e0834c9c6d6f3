package model

import (
	"encoding/json"
	"fmt"
)

// FrcsInputs are the feedstock-simulator settings the run used.
type FrcsInputs struct {
	TreatmentID int     `json:"treatmentid"`
	System      string  `json:"system"`
	Radius      float64 `json:"radius"`
}

// AllYearsResults is a completed run: the inputs actually used, site-derived values,
// the across-year TEA summary and the chronological per-year results.
// It is built once per run and only read afterwards.
type AllYearsResults struct {
	TeaModel   FacilityType
	TeaInputs  TeaInputs
	FrcsInputs FrcsInputs

	// DistanceToNearestSubstation is in km.
	DistanceToNearestSubstation float64

	TeaResults    TeaResults
	YearlyResults []YearlyResult
}

type allYearsWire struct {
	TeaModel                    string          `json:"teaModel"`
	TeaInputs                   json.RawMessage `json:"teaInputs"`
	FrcsInputs                  FrcsInputs      `json:"frcsInputs"`
	DistanceToNearestSubstation float64         `json:"distanceToNearestSubstation"`
	TeaResults                  TeaResults      `json:"teaResults"`
	YearlyResults               []YearlyResult  `json:"yearlyResults"`
}

func (r *AllYearsResults) UnmarshalJSON(raw []byte) error {
	var w allYearsWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return err
	}
	ft, err := ParseFacilityType(w.TeaModel)
	if err != nil {
		return err
	}
	var inputs TeaInputs
	if len(w.TeaInputs) > 0 && string(w.TeaInputs) != "null" {
		inputs, err = DecodeTeaInputs(ft, w.TeaInputs)
		if err != nil {
			return fmt.Errorf("teaInputs: %w", err)
		}
	} else {
		inputs = TeaInputs{Model: ft}
	}
	*r = AllYearsResults{
		TeaModel:                    ft,
		TeaInputs:                   inputs,
		FrcsInputs:                  w.FrcsInputs,
		DistanceToNearestSubstation: w.DistanceToNearestSubstation,
		TeaResults:                  w.TeaResults,
		YearlyResults:               w.YearlyResults,
	}
	return nil
}

func (r AllYearsResults) MarshalJSON() ([]byte, error) {
	inputs, err := json.Marshal(r.TeaInputs)
	if err != nil {
		return nil, err
	}
	return json.Marshal(allYearsWire{
		TeaModel:                    string(r.TeaModel),
		TeaInputs:                   inputs,
		FrcsInputs:                  r.FrcsInputs,
		DistanceToNearestSubstation: r.DistanceToNearestSubstation,
		TeaResults:                  r.TeaResults,
		YearlyResults:               r.YearlyResults,
	})
}

// OperatingYears is the number of years a complete run covers.
func (r *AllYearsResults) OperatingYears() int {
	return r.TeaInputs.Financing.EconomicLife
}
