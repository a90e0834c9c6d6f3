package report

import (
	"context"
	"fmt"
	"strconv"

	"biomass-report/internal/aggregate"
	"biomass-report/internal/chart"
	"biomass-report/internal/format"
	"biomass-report/internal/model"

	"github.com/apex/log"
)

// Chart is a chart that can be rasterized to PNG. Rasterize may block; the builder
// waits for it without imposing its own deadline.
type Chart interface {
	Rasterize(ctx context.Context, width, height int) ([]byte, error)
}

// Builder turns a completed run into a Layout.
type Builder struct {
	// OperatingYears is the year count a complete run must have. Zero means the run's
	// own economic life.
	OperatingYears int

	ChartWidth  int
	ChartHeight int

	// Legend produces the static legend image embedded under the chart.
	Legend func() ([]byte, error)
}

func NewBuilder(operatingYears int) *Builder {
	return &Builder{
		OperatingYears: operatingYears,
		ChartWidth:     ChartWidth,
		ChartHeight:    ChartHeight,
		Legend:         chart.LegendPNG,
	}
}

// Build lays out the report. A nil Layout with a nil error means the run is
// incomplete and nothing should be offered for download. ch may be nil, in which
// case no images are embedded.
func (b *Builder) Build(ctx context.Context, run *model.AllYearsResults, ch Chart) (*Layout, error) {
	if run == nil {
		return nil, nil
	}
	years := b.YearsFor(run)
	summary, ok := aggregate.Summarize(run, years)
	if !ok {
		log.WithFields(log.Fields{
			"have": len(run.YearlyResults),
			"want": years,
		}).Debug("report skipped: run incomplete")
		return nil, nil
	}

	l := compose(run, summary)
	if ch == nil {
		return l, nil
	}

	width, height := b.ChartWidth, b.ChartHeight
	if width <= 0 || height <= 0 {
		width, height = ChartWidth, ChartHeight
	}
	png, err := ch.Rasterize(ctx, width, height)
	if err != nil {
		return nil, fmt.Errorf("rasterize chart: %w", err)
	}
	l.Images = append(l.Images, Image{Name: "sensitivity", Range: RangeChart, Width: width, Height: height, PNG: png})

	if b.Legend != nil {
		legend, err := b.Legend()
		if err != nil {
			return nil, fmt.Errorf("render legend: %w", err)
		}
		l.Images = append(l.Images, Image{Name: "legend", Range: RangeLegend, Width: chart.LegendWidth, Height: chart.LegendHeight, PNG: legend})
	}
	return l, nil
}

// YearsFor is the year count run must cover to be reported.
func (b *Builder) YearsFor(run *model.AllYearsResults) int {
	if b.OperatingYears > 0 {
		return b.OperatingYears
	}
	return run.OperatingYears()
}

func compose(run *model.AllYearsResults, s *aggregate.Summary) *Layout {
	yearCols := yearColumns(s.Years)
	return &Layout{
		SheetName:    SheetName,
		ColumnWidths: map[string]float64{"B": NameColumnWidth},
		Sections: []Section{
			{Title: "Technical Performance", Tables: []Table{techPerfTable(run)}},
			{Title: "Resource Supply", Tables: []Table{supplyTable(s, yearCols)}},
			{Title: "Environmental Analysis", Tables: []Table{metricTable("analysis", AnchorAnalysis, "Environmental Analysis", s.Environmental, yearCols)}},
			{Title: "LCI Results", Tables: []Table{metricTable("lci", AnchorLCI, "LCI Results", s.LCI, yearCols)}},
			{Title: "LCIA Results", Tables: []Table{metricTable("lcia", AnchorLCIA, "LCIA Results", s.LCIA, yearCols)}},
			{Title: "Technoeconomic Analysis", Tables: []Table{technoeconomicTable(s, yearCols)}},
			{Title: "LCOE", Tables: []Table{lcoeTable(s)}},
			{Title: "Assumptions", Tables: []Table{assumptionsTable()}},
			{Title: "References", Tables: referenceTables()},
		},
	}
}

func yearColumns(years []int) []string {
	cols := make([]string, len(years))
	for i, y := range years {
		cols[i] = "Y" + strconv.Itoa(y)
	}
	return cols
}

func techPerfTable(run *model.AllYearsResults) Table {
	in := run.TeaInputs
	return Table{
		Name:      "TechPerf",
		Anchor:    AnchorTechPerf,
		HeaderRow: true,
		Columns:   []string{"Technical Performance", " "},
		Rows: [][]any{
			{"Project Prescription", model.TreatmentName(run.FrcsInputs.TreatmentID)},
			{"Facility Type", string(run.TeaModel)},
			{"Capital Cost ($)", format.Currency(in.CapitalCost())},
			{"Net Electrical Capacity (kWe)", in.ElectricalFuelBaseYear.NetElectricalCapacity},
			{"Net Station Efficiency (%)", in.ElectricalFuelBaseYear.NetStationEfficiency},
			{"Economic Life (y)", in.Financing.EconomicLife},
			{"Proximity to substation (km)", run.DistanceToNearestSubstation},
		},
	}
}

func supplyTable(s *aggregate.Summary, yearCols []string) Table {
	raw := func(r aggregate.Row, label string) []any {
		cells := []any{label, r.Total}
		for _, v := range r.PerYear {
			cells = append(cells, v)
		}
		return cells
	}
	return Table{
		Name:      "supply",
		Anchor:    AnchorSupply,
		HeaderRow: true,
		Columns:   append([]string{"Resource Supply (ton)", "Total"}, yearCols...),
		Rows: [][]any{
			raw(s.Feedstock, "Feedstock"),
			raw(s.Coproduct, "Coproduct"),
		},
	}
}

func metricTable(name, anchor, title string, rows []aggregate.Row, yearCols []string) Table {
	t := Table{
		Name:      name,
		Anchor:    anchor,
		HeaderRow: true,
		Columns:   append([]string{title, "Unit", "Total"}, yearCols...),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, formattedRow(r, len(yearCols), func(v float64) string {
			return format.Number(v, format.DefaultDecimals)
		}))
	}
	return t
}

func technoeconomicTable(s *aggregate.Summary, yearCols []string) Table {
	t := Table{
		Name:      "technoeconomic",
		Anchor:    AnchorTechnoeconomic,
		HeaderRow: true,
		Columns:   append([]string{"Technoeconomic Analysis", "Unit", "Total"}, yearCols...),
	}
	n := len(yearCols)
	for _, r := range []aggregate.Row{s.HarvestCost, s.TransportCost, s.MoveInCost, s.FeedstockCost} {
		t.Rows = append(t.Rows, formattedRow(r, n, format.UnitCurrency))
	}
	for _, r := range s.CashFlow {
		t.Rows = append(t.Rows, formattedRow(r, n, format.Currency))
	}
	t.Rows = append(t.Rows, formattedRow(s.PresentWorth, n, format.Currency))
	return t
}

func lcoeTable(s *aggregate.Summary) Table {
	return Table{
		Name:      "lcoe",
		Anchor:    AnchorLCOE,
		HeaderRow: true,
		Columns:   []string{"LCOE", "Result"},
		Rows: [][]any{
			{"Current $ LCOE", format.Number(s.CurrentLCOE, format.LCOEDecimals)},
			{"Constant $ LCOE", format.Number(s.ConstantLCOE, format.LCOEDecimals)},
		},
	}
}

// formattedRow renders label, unit, total and exactly n per-year cells. Per-year
// values beyond n are dropped and missing ones left blank so the row fits the table.
func formattedRow(r aggregate.Row, n int, f func(float64) string) []any {
	cells := make([]any, 0, 3+n)
	cells = append(cells, r.Label, r.Unit, f(r.Total))
	for i := 0; i < n; i++ {
		if i < len(r.PerYear) {
			cells = append(cells, f(r.PerYear[i]))
		} else {
			cells = append(cells, "")
		}
	}
	return cells
}
