package chart

import (
	"errors"
	"fmt"
	"io"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ImageFormat selects the encoding for RenderImage.
type ImageFormat string

const (
	FormatSVG ImageFormat = "svg"
	FormatPNG ImageFormat = "png"
)

// ErrEmptyChart indicates a chart with nothing to draw into an image.
var ErrEmptyChart = errors.New("chart has no drawable values")

const (
	defaultImageWidth  = 1024
	defaultImageHeight = 480
)

// RenderImage writes c as an SVG or PNG image. Column charts become bar
// charts, pie charts stay pies and timelines become stacked bars whose
// transparent first and last segments place each span on a 24h scale.
func RenderImage(w io.Writer, c Chart, format ImageFormat, width, height int) error {
	provider, err := rendererFor(format)
	if err != nil {
		return err
	}
	if width <= 0 {
		width = defaultImageWidth
	}
	if height <= 0 {
		height = defaultImageHeight
	}

	switch ch := c.(type) {
	case *columnChart:
		return ch.image(w, provider, width, height)
	case *pieChart:
		return ch.image(w, provider, width, height)
	case *timelineChart:
		return ch.image(w, provider, width, height)
	}
	return fmt.Errorf("%w: %T", ErrUnsupportedData, c)
}

func rendererFor(format ImageFormat) (gochart.RendererProvider, error) {
	switch format {
	case FormatSVG:
		return gochart.SVG, nil
	case FormatPNG:
		return gochart.PNG, nil
	}
	return nil, fmt.Errorf("unsupported image format %q", format)
}

func imageStyle(i int) gochart.Style {
	col := gochart.GetDefaultColor(i)
	return gochart.Style{FillColor: col, StrokeColor: col}
}

func (c *columnChart) image(w io.Writer, provider gochart.RendererProvider, width, height int) error {
	if len(c.bars) == 0 {
		return ErrEmptyChart
	}
	bars := make([]gochart.Value, 0, len(c.bars))
	maxV := 0.0
	for _, b := range c.bars {
		bars = append(bars, gochart.Value{Label: b.label, Value: b.value, Style: imageStyle(0)})
		maxV = max(maxV, b.value)
	}
	if maxV <= 0 {
		maxV = 1
	}

	bc := gochart.BarChart{
		Title:    c.opts.Title,
		Width:    width,
		Height:   height,
		BarWidth: max(width/(2*len(bars)+1), 8),
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		YAxis: gochart.YAxis{
			Name:  c.opts.VAxisTitle,
			Range: &gochart.ContinuousRange{Min: 0, Max: maxV * 1.1},
			ValueFormatter: func(v interface{}) string {
				f, ok := v.(float64)
				if !ok {
					return ""
				}
				if c.clock {
					return time.Time{}.Add(time.Duration(f) * time.Second).Format("15:04")
				}
				return fmt.Sprintf("%.0f", f)
			},
		},
		Bars: bars,
	}
	return bc.Render(provider, w)
}

func (c *pieChart) image(w io.Writer, provider gochart.RendererProvider, width, height int) error {
	if c.total() <= 0 {
		return ErrEmptyChart
	}
	values := make([]gochart.Value, 0, len(c.slices))
	for i, s := range c.slices {
		if s.value <= 0 {
			continue
		}
		values = append(values, gochart.Value{Label: s.label, Value: s.value, Style: imageStyle(i)})
	}
	pc := gochart.PieChart{
		Title:  c.opts.Title,
		Width:  width,
		Height: height,
		Values: values,
	}
	return pc.Render(provider, w)
}

func (c *timelineChart) image(w io.Writer, provider gochart.RendererProvider, width, height int) error {
	if len(c.lanes) == 0 {
		return ErrEmptyChart
	}
	day := (24 * time.Hour).Hours()
	hidden := gochart.Style{
		FillColor:   drawing.ColorTransparent,
		StrokeColor: drawing.ColorTransparent,
	}
	bars := make([]gochart.StackedBar, 0, len(c.lanes))
	for i, l := range c.lanes {
		start := l.start.Duration().Hours()
		end := max(l.end.Duration().Hours(), start)
		bars = append(bars, gochart.StackedBar{
			Name: l.label,
			Values: []gochart.Value{
				{Value: start, Style: hidden},
				{Value: end - start, Label: fmt.Sprintf("%s-%s", l.start, l.end), Style: imageStyle(i)},
				{Value: max(day-end, 0), Style: hidden},
			},
		})
	}
	sbc := gochart.StackedBarChart{
		Title:  c.opts.Title,
		Width:  width,
		Height: height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40},
		},
		Bars: bars,
	}
	return sbc.Render(provider, w)
}
