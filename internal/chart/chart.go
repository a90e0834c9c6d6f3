// Package chart rasterizes the LCOE sensitivity chart and its legend to PNG.
package chart

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Point is one sample: X is the percent change applied to a parameter, Y the LCOE
// that resulted ($/kWh).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series is the LCOE response to one input parameter.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Sensitivity is a line chart of LCOE against parameter change.
type Sensitivity struct {
	Title  string   `json:"title"`
	XLabel string   `json:"xLabel"`
	YLabel string   `json:"yLabel"`
	Series []Series `json:"series"`
}

var ErrBadSize = errors.New("chart size must be positive")

const margin = 60

// palette is shared with the legend so a parameter keeps its colour in both images.
var palette = []color.RGBA{
	{31, 119, 180, 255},
	{255, 127, 14, 255},
	{44, 160, 44, 255},
	{214, 39, 40, 255},
	{148, 103, 189, 255},
	{140, 86, 75, 255},
	{227, 119, 194, 255},
	{127, 127, 127, 255},
	{188, 189, 34, 255},
	{23, 190, 207, 255},
}

// ColorFor returns the colour used for a parameter name. Names in the static legend
// keep their legend colour; others fall back to their series index.
func ColorFor(name string, index int) color.RGBA {
	for i, p := range Parameters {
		if p == name {
			return palette[i%len(palette)]
		}
	}
	return palette[index%len(palette)]
}

// Rasterize draws the chart on a white background and encodes it as PNG.
func (s *Sensitivity) Rasterize(ctx context.Context, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, width, height)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	plotW := float64(width - 2*margin)
	plotH := float64(height - 2*margin)
	if plotW <= 0 || plotH <= 0 {
		return encode(dc)
	}

	xmin, xmax, ymin, ymax := s.bounds()
	toX := func(x float64) float64 { return margin + (x-xmin)/(xmax-xmin)*plotW }
	toY := func(y float64) float64 { return float64(height-margin) - (y-ymin)/(ymax-ymin)*plotH }

	// axes
	dc.SetColor(color.Black)
	dc.SetLineWidth(1)
	dc.DrawLine(margin, float64(height-margin), float64(width-margin), float64(height-margin))
	dc.DrawLine(margin, margin, margin, float64(height-margin))
	dc.Stroke()

	const ticks = 5
	for i := 0; i <= ticks; i++ {
		fx := xmin + (xmax-xmin)*float64(i)/ticks
		fy := ymin + (ymax-ymin)*float64(i)/ticks
		dc.DrawStringAnchored(fmt.Sprintf("%.0f%%", fx), toX(fx), float64(height-margin)+14, 0.5, 0.5)
		dc.DrawStringAnchored(fmt.Sprintf("%.3f", fy), margin-6, toY(fy), 1, 0.5)
	}
	if s.Title != "" {
		dc.DrawStringAnchored(s.Title, float64(width)/2, margin/2, 0.5, 0.5)
	}
	if s.XLabel != "" {
		dc.DrawStringAnchored(s.XLabel, float64(width)/2, float64(height)-margin/3, 0.5, 0.5)
	}
	if s.YLabel != "" {
		dc.Push()
		dc.RotateAbout(-math.Pi/2, 14, float64(height)/2)
		dc.DrawStringAnchored(s.YLabel, 14, float64(height)/2, 0.5, 0.5)
		dc.Pop()
	}

	for i, ser := range s.Series {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		dc.SetColor(ColorFor(ser.Name, i))
		dc.SetLineWidth(2)
		started := false
		for _, p := range ser.Points {
			if !finite(p.X) || !finite(p.Y) {
				started = false
				continue
			}
			if !started {
				dc.MoveTo(toX(p.X), toY(p.Y))
				started = true
				continue
			}
			dc.LineTo(toX(p.X), toY(p.Y))
		}
		dc.Stroke()
	}

	return encode(dc)
}

// bounds spans every finite point. Degenerate spans are widened so the scale never
// divides by zero.
func (s *Sensitivity) bounds() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, ser := range s.Series {
		for _, p := range ser.Points {
			if !finite(p.X) || !finite(p.Y) {
				continue
			}
			xmin, xmax = math.Min(xmin, p.X), math.Max(xmax, p.X)
			ymin, ymax = math.Min(ymin, p.Y), math.Max(ymax, p.Y)
		}
	}
	if math.IsInf(xmin, 1) {
		return -1, 1, 0, 1
	}
	if xmax == xmin {
		xmin, xmax = xmin-1, xmax+1
	}
	if ymax == ymin {
		ymin, ymax = ymin-1, ymax+1
	}
	return xmin, xmax, ymin, ymax
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func encode(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
