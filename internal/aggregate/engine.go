// Package aggregate rolls a run's per-year results up into the totals, unit costs
// and line-item sums the report displays.
package aggregate

import (
	"biomass-report/internal/model"
)

// Row is one aggregated metric: a total plus the value for each operating year.
type Row struct {
	Label   string
	Unit    string
	Total   float64
	PerYear []float64
}

// Summary is everything the report derives from a complete run.
type Summary struct {
	Years []int

	Feedstock Row
	Coproduct Row

	Environmental []Row
	LCI           []Row
	LCIA          []Row

	HarvestCost   Row
	TransportCost Row
	MoveInCost    Row
	FeedstockCost Row

	CashFlow     []Row
	PresentWorth Row

	CurrentLCOE  float64
	ConstantLCOE float64
}

// Complete reports whether results cover every operating year. Partial runs
// produce no summary and no report.
func Complete(results []model.YearlyResult, operatingYears int) bool {
	return operatingYears > 0 && len(results) == operatingYears
}

// Summarize aggregates a run. ok is false when the run is incomplete.
//
// Unit costs ($/ton) are weighted by feedstock volume: Σcost / Σfeedstock.
// A zero feedstock total yields NaN or ±Inf, which is passed through untouched.
func Summarize(run *model.AllYearsResults, operatingYears int) (summary *Summary, ok bool) {
	if run == nil || !Complete(run.YearlyResults, operatingYears) {
		return nil, false
	}
	years := run.YearlyResults

	s := &Summary{
		Years:        make([]int, len(years)),
		CurrentLCOE:  run.TeaResults.CurrentLAC.CurrentLACofEnergy,
		ConstantLCOE: run.TeaResults.ConstantLAC.ConstantLACofEnergy,
	}
	for i, y := range years {
		s.Years[i] = y.Year
	}

	s.Feedstock = sumRow(years, "Feedstock", "ton", func(y model.YearlyResult) float64 { return y.TotalFeedstock })
	s.Coproduct = sumRow(years, "Coproduct", "ton", func(y model.YearlyResult) float64 { return y.TotalCoproduct })

	s.Environmental = SumMetrics(years, EnvironmentalInputs)
	s.LCI = SumMetrics(years, LCIMetrics)
	s.LCIA = SumMetrics(years, LCIAMetrics)

	s.HarvestCost = perTonRow(years, "Harvest Cost", func(y model.YearlyResult) float64 { return y.TotalFeedstockCost })
	s.TransportCost = perTonRow(years, "Transport Cost", func(y model.YearlyResult) float64 { return y.TotalTransportationCost })
	s.MoveInCost = perTonRow(years, "Move-in Cost", func(y model.YearlyResult) float64 { return y.TotalMoveInCost })
	s.FeedstockCost = averageRow(years, "Feedstock Cost", "$/ton", func(y model.YearlyResult) float64 { return y.FuelCost })

	s.CashFlow = make([]Row, 0, len(model.LineItems()))
	for _, li := range model.LineItems() {
		li := li
		s.CashFlow = append(s.CashFlow, sumRow(years, li.String(), "$", func(y model.YearlyResult) float64 {
			return y.CashFlow.Value(li)
		}))
	}

	pw := run.TeaResults.CurrentLAC.PresentWorth
	s.PresentWorth = Row{
		Label:   "Energy Revenue Required (PW)",
		Unit:    "$",
		Total:   Sum(pw),
		PerYear: append([]float64(nil), pw...),
	}

	return s, true
}

// SumMetric totals one metric across years and converts to display units.
func SumMetric(years []model.YearlyResult, m Metric) Row {
	row := Row{Label: m.Label, Unit: m.Unit, PerYear: make([]float64, len(years))}
	total := 0.0
	for i, y := range years {
		v := m.Value(y)
		total += v
		row.PerYear[i] = m.ToDisplay(v)
	}
	row.Total = m.ToDisplay(total)
	return row
}

// SumMetrics applies SumMetric to each metric in order.
func SumMetrics(years []model.YearlyResult, metrics []Metric) []Row {
	out := make([]Row, len(metrics))
	for i, m := range metrics {
		out[i] = SumMetric(years, m)
	}
	return out
}

// WeightedUnitCost is Σcost / Σfeedstock across years.
func WeightedUnitCost(years []model.YearlyResult, cost func(model.YearlyResult) float64) float64 {
	var costSum, tons float64
	for _, y := range years {
		costSum += cost(y)
		tons += y.TotalFeedstock
	}
	return costSum / tons
}

// Sum adds a plain sequence.
func Sum(xs []float64) float64 {
	total := 0.0
	for _, x := range xs {
		total += x
	}
	return total
}

func sumRow(years []model.YearlyResult, label, unit string, value func(model.YearlyResult) float64) Row {
	return SumMetric(years, Metric{Label: label, Unit: unit, Factor: unity, Value: value})
}

func perTonRow(years []model.YearlyResult, label string, cost func(model.YearlyResult) float64) Row {
	row := Row{Label: label, Unit: "$/ton", PerYear: make([]float64, len(years))}
	for i, y := range years {
		row.PerYear[i] = cost(y) / y.TotalFeedstock
	}
	row.Total = WeightedUnitCost(years, cost)
	return row
}

// averageRow is Σvalue / N; years weigh equally.
func averageRow(years []model.YearlyResult, label, unit string, value func(model.YearlyResult) float64) Row {
	row := Row{Label: label, Unit: unit, PerYear: make([]float64, len(years))}
	total := 0.0
	for i, y := range years {
		v := value(y)
		total += v
		row.PerYear[i] = v
	}
	row.Total = total / float64(len(years))
	return row
}
