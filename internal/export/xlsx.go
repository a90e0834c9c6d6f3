// Package export serializes a report layout to an xlsx workbook.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"biomass-report/internal/format"
	"biomass-report/internal/report"

	"github.com/xuri/excelize/v2"
)

// DefaultFileName is the name offered for the downloaded workbook.
const DefaultFileName = "cecdata.xlsx"

const tableStyle = "TableStyleMedium2"

var ErrNilLayout = errors.New("nil layout")

// Render serializes l into xlsx bytes.
func Render(l *report.Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, l); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteXLSX writes l as a single-sheet workbook to w.
func WriteXLSX(w io.Writer, l *report.Layout) error {
	f, err := Workbook(l)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Workbook builds the in-memory workbook. The caller closes it.
func Workbook(l *report.Layout) (*excelize.File, error) {
	if l == nil {
		return nil, ErrNilLayout
	}
	f := excelize.NewFile()
	sheet := l.SheetName
	if sheet == "" {
		sheet = report.SheetName
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	for col, width := range l.ColumnWidths {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			f.Close()
			return nil, fmt.Errorf("set width of column %s: %w", col, err)
		}
	}

	for _, t := range l.Tables() {
		if err := writeTable(f, sheet, t); err != nil {
			f.Close()
			return nil, fmt.Errorf("table %s: %w", t.Name, err)
		}
	}

	for _, img := range l.Images {
		if err := addImage(f, sheet, img); err != nil {
			f.Close()
			return nil, fmt.Errorf("image %s: %w", img.Name, err)
		}
	}
	return f, nil
}

func writeTable(f *excelize.File, sheet string, t report.Table) error {
	col, row, err := excelize.CellNameToCoordinates(t.Anchor)
	if err != nil {
		return err
	}

	r := row
	if t.HeaderRow {
		header := make([]any, len(t.Columns))
		for i, c := range t.Columns {
			header[i] = c
		}
		if err := setRow(f, sheet, col, r, header); err != nil {
			return err
		}
		r++
	}
	for _, cells := range t.Rows {
		if err := setRow(f, sheet, col, r, cellValues(cells)); err != nil {
			return err
		}
		r++
	}

	last := r - 1
	if last <= row || len(t.Columns) == 0 {
		return nil
	}
	end, err := excelize.CoordinatesToCellName(col+len(t.Columns)-1, last)
	if err != nil {
		return err
	}
	showHeader := t.HeaderRow
	return f.AddTable(sheet, &excelize.Table{
		Range:         t.Anchor + ":" + end,
		Name:          t.Name,
		StyleName:     tableStyle,
		ShowHeaderRow: &showHeader,
	})
}

func setRow(f *excelize.File, sheet string, col, row int, cells []any) error {
	start, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, start, &cells)
}

// cellValues keeps numbers numeric but renders NaN and infinities as text, which
// a worksheet cannot hold as a number.
func cellValues(cells []any) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		if v, ok := c.(float64); ok && (math.IsNaN(v) || math.IsInf(v, 0)) {
			out[i] = format.Number(v, 0)
			continue
		}
		out[i] = c
	}
	return out
}

func addImage(f *excelize.File, sheet string, img report.Image) error {
	from, to, ok := strings.Cut(img.Range, ":")
	if !ok {
		return fmt.Errorf("range %q is not a cell range", img.Range)
	}
	wantW, wantH, err := rangePixels(f, sheet, from, to)
	if err != nil {
		return err
	}
	opts := &excelize.GraphicOptions{ScaleX: 1, ScaleY: 1}
	if img.Width > 0 && img.Height > 0 {
		opts.ScaleX = wantW / float64(img.Width)
		opts.ScaleY = wantH / float64(img.Height)
	}
	return f.AddPictureFromBytes(sheet, from, &excelize.Picture{
		Extension: ".png",
		File:      img.PNG,
		Format:    opts,
	})
}

// rangePixels measures a cell range with the widths and heights currently set on the
// sheet. Column width converts at 7px per character plus padding, row height at 4/3 px
// per point.
func rangePixels(f *excelize.File, sheet, from, to string) (w, h float64, err error) {
	c1, r1, err := excelize.CellNameToCoordinates(from)
	if err != nil {
		return 0, 0, err
	}
	c2, r2, err := excelize.CellNameToCoordinates(to)
	if err != nil {
		return 0, 0, err
	}
	for c := c1; c <= c2; c++ {
		name, err := excelize.ColumnNumberToName(c)
		if err != nil {
			return 0, 0, err
		}
		width, err := f.GetColWidth(sheet, name)
		if err != nil {
			return 0, 0, err
		}
		w += math.Floor(width*7 + 0.5)
	}
	for r := r1; r <= r2; r++ {
		height, err := f.GetRowHeight(sheet, r)
		if err != nil {
			return 0, 0, err
		}
		h += height * 4 / 3
	}
	return w, h, nil
}
