package chart

import (
	"image/color"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Legend image size in pixels. It is drawn for the B103:J106 range.
const (
	LegendWidth  = 576
	LegendHeight = 80
)

// Parameters are the inputs the sensitivity analysis varies, in legend order.
var Parameters = []string{
	"Capital Cost",
	"Biomass Fuel Cost",
	"Debt Ratio",
	"Interest Rate on Debt",
	"Cost of Equity",
	"Net Station Efficiency",
	"Capacity Factor",
	"Labor Cost",
}

var (
	legendOnce sync.Once
	legendPNG  []byte
	legendErr  error
)

// LegendPNG returns the static legend. It is rendered on first use and shared
// read-only afterwards; callers must not modify the returned slice.
func LegendPNG() ([]byte, error) {
	legendOnce.Do(func() {
		legendPNG, legendErr = drawLegend()
	})
	return legendPNG, legendErr
}

func drawLegend() ([]byte, error) {
	dc := gg.NewContext(LegendWidth, LegendHeight)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	const (
		cols   = 4
		cellW  = LegendWidth / cols
		rowH   = 28
		swatch = 12
	)
	for i, name := range Parameters {
		x := float64((i%cols)*cellW + 8)
		y := float64((i/cols)*rowH + 14)
		dc.SetColor(ColorFor(name, i))
		dc.DrawRectangle(x, y, swatch, swatch)
		dc.Fill()
		dc.SetColor(color.Black)
		dc.DrawStringAnchored(name, x+swatch+6, y+swatch/2, 0, 0.5)
	}
	return encode(dc)
}
