// Package report lays a run's aggregated results out as named tables on one sheet.
//
// The layout is a fixed contract: every table has a stable name and anchor cell, and
// the year count only ever widens tables. Anchors leave headroom for the longest
// table above them, so blocks never collide.
package report

// Table anchors and image ranges on the results sheet.
const (
	SheetName = "Results"

	AnchorTechPerf       = "B2"
	AnchorSupply         = "B13"
	AnchorAnalysis       = "B17"
	AnchorLCI            = "B23"
	AnchorLCIA           = "B38"
	AnchorTechnoeconomic = "B46"
	AnchorLCOE           = "B70"
	RangeChart           = "B75:J100"
	RangeLegend          = "B103:J106"
	AnchorAssumptions    = "B108"
	AnchorKeyReferences  = "B128"
	AnchorDisclaimer     = "B136"

	ChartWidth  = 800
	ChartHeight = 600

	// NameColumnWidth is the width of column B, which holds the metric names.
	NameColumnWidth = 38.0
)

// Table is one named block. Columns are header names; each row holds one cell per
// column, either a display string or a raw number.
type Table struct {
	Name      string   `json:"name"`
	Anchor    string   `json:"anchor"`
	HeaderRow bool     `json:"header_row"`
	Columns   []string `json:"columns"`
	Rows      [][]any  `json:"rows"`
}

// Section groups the tables that make up one part of the report.
type Section struct {
	Title  string  `json:"title"`
	Tables []Table `json:"tables"`
}

// Image is a PNG embedded over a cell range.
type Image struct {
	Name   string `json:"name"`
	Range  string `json:"range"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	PNG    []byte `json:"-"`
}

// Layout is the complete sheet: sections in display order, column width overrides
// and embedded images.
type Layout struct {
	SheetName    string             `json:"sheet_name"`
	ColumnWidths map[string]float64 `json:"column_widths"`
	Sections     []Section          `json:"sections"`
	Images       []Image            `json:"images"`
}

// Tables flattens the sections in order.
func (l *Layout) Tables() []Table {
	var out []Table
	for _, s := range l.Sections {
		out = append(out, s.Tables...)
	}
	return out
}

// Table finds a table by name.
func (l *Layout) Table(name string) (Table, bool) {
	for _, t := range l.Tables() {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}
