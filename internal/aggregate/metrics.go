package aggregate

import "biomass-report/internal/model"

// Metric is one summed row of the environmental tables. Factor converts the
// collaborator's unit into the display unit (e.g. gal -> mGal, kg -> g); it is applied
// to the total and to every per-year value.
type Metric struct {
	Label  string
	Unit   string
	Factor float64
	Value  func(model.YearlyResult) float64
}

// ToDisplay converts a raw value into the metric's display unit.
func (m Metric) ToDisplay(v float64) float64 { return v * m.Factor }

// FromDisplay inverts ToDisplay.
func (m Metric) FromDisplay(v float64) float64 { return v / m.Factor }

const (
	thousand = 1000
	unity    = 1
)

// EnvironmentalInputs are the harvest and haul inputs to the life-cycle model.
var EnvironmentalInputs = []Metric{
	{Label: "Diesel", Unit: "mGal", Factor: thousand, Value: func(y model.YearlyResult) float64 { return y.LcaResults.Inputs.Diesel }},
	{Label: "Gasoline", Unit: "mGal", Factor: thousand, Value: func(y model.YearlyResult) float64 { return y.LcaResults.Inputs.Gasoline }},
	{Label: "Jet Fuel", Unit: "mGal", Factor: thousand, Value: func(y model.YearlyResult) float64 { return y.LcaResults.Inputs.JetFuel }},
	{Label: "Transport Distance", Unit: "m", Factor: thousand, Value: func(y model.YearlyResult) float64 { return y.LcaResults.Inputs.Distance }},
}

// LCIMetrics are the life-cycle inventory rows. Carbon Intensity repeats CO2e.
var LCIMetrics = []Metric{
	{Label: "CO2", Unit: "kg", Factor: unity, Value: func(y model.YearlyResult) float64 { return y.LcaResults.LciResults.CO2 }},
	{Label: "CH4", Unit: "g", Factor: unity, Value: func(y model.YearlyResult) float64 { return y.LcaResults.LciResults.CH4 }},
	{Label: "N2O", Unit: "g", Factor: unity, Value: func(y model.YearlyResult) float64 { return y.LcaResults.LciResults.N2O }},
	{Label: "CO2e", Unit: "kg", Factor: unity, Value: func(y model.YearlyResult) float64 { return y.LcaResults.LciResults.CO2e }},
	{Label: "CO", Unit: "g", Factor: thousand, Value: func(y model.YearlyResult) float64 { return y.LcaResults.LciResults.CO }},
	{Label: "NOx", Unit: "g", Factor: unity, Value: func(y model.YearlyResult) float64 { return y.LcaResults.LciResults.NOx }},
	{Label: "NH3", Unit: "mg", Factor: thousand, Value: func(y model.YearlyResult) float64 { return y.LcaResults.LciResults.NH3 }},
	{Label: "PM10", Unit: "mg", Factor: thousand, Value: func(y model.YearlyResult) float64 { return y.LcaResults.LciResults.PM10 }},
	{Label: "PM2.5", Unit: "mg", Factor: thousand, Value: func(y model.YearlyResult) float64 { return y.LcaResults.LciResults.PM25 }},
	{Label: "SO2", Unit: "g", Factor: unity, Value: func(y model.YearlyResult) float64 { return y.LcaResults.LciResults.SO2 }},
	{Label: "SOx", Unit: "mg", Factor: thousand, Value: func(y model.YearlyResult) float64 { return y.LcaResults.LciResults.SOx }},
	{Label: "VOCs", Unit: "mg", Factor: thousand, Value: func(y model.YearlyResult) float64 { return y.LcaResults.LciResults.VOCs }},
	{Label: "Carbon Intensity", Unit: "kg CO2e", Factor: unity, Value: func(y model.YearlyResult) float64 { return y.LcaResults.LciResults.CO2e }},
}

// LCIAMetrics are the impact-assessment rows.
var LCIAMetrics = []Metric{
	{Label: "Global Warming Air", Unit: "kg CO2 eq", Factor: unity, Value: func(y model.YearlyResult) float64 { return y.LcaResults.LciaResults.GlobalWarmingAir }},
	{Label: "Acidification Air", Unit: "g SO2 eq", Factor: thousand, Value: func(y model.YearlyResult) float64 { return y.LcaResults.LciaResults.AcidificationAir }},
	{Label: "HH Particulate Air", Unit: "g PM2.5 eq", Factor: thousand, Value: func(y model.YearlyResult) float64 { return y.LcaResults.LciaResults.HHParticulateAir }},
	{Label: "Eutrophication Air", Unit: "g N eq", Factor: thousand, Value: func(y model.YearlyResult) float64 { return y.LcaResults.LciaResults.EutrophicationAir }},
	{Label: "Eutrophication Water", Unit: "g N eq", Factor: thousand, Value: func(y model.YearlyResult) float64 { return y.LcaResults.LciaResults.EutrophicationWater }},
	{Label: "Smog Air", Unit: "kg O3 eq", Factor: unity, Value: func(y model.YearlyResult) float64 { return y.LcaResults.LciaResults.SmogAir }},
}
