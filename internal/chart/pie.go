package chart

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/presence/internal/cli/formatter"
)

type pieSlice struct {
	label string
	value float64
	text  string
}

// pieChart shows each category's share of the total.
type pieChart struct {
	opts   Options
	slices []pieSlice
}

func newPieChart(data *DataTable, opts Options) (*pieChart, error) {
	if err := requireColumns(data, KindPie,
		types(ColumnString),
		types(ColumnNumber),
	); err != nil {
		return nil, err
	}
	c := &pieChart{opts: opts}
	for r := 0; r < data.NumRows(); r++ {
		c.slices = append(c.slices, pieSlice{
			label: data.String(r, 0),
			value: data.Number(r, 1),
			text:  data.FormattedValue(r, 1),
		})
	}
	return c, nil
}

func (c *pieChart) Kind() Kind { return KindPie }

// total sums the non-negative slice values.
func (c *pieChart) total() float64 {
	sum := 0.0
	for _, s := range c.slices {
		if s.value > 0 {
			sum += s.value
		}
	}
	return sum
}

// Shares returns each slice's fraction of the total, in row order.
func (c *pieChart) Shares() []float64 {
	total := c.total()
	out := make([]float64, len(c.slices))
	for i, s := range c.slices {
		if total > 0 && s.value > 0 {
			out[i] = s.value / total
		}
	}
	return out
}

func (c *pieChart) Render(width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	labels := make([]string, len(c.slices))
	texts := make([]string, len(c.slices))
	for i, s := range c.slices {
		labels[i] = s.label
		texts[i] = s.text
	}
	labelW := widest(labels)
	textW := widest(texts)
	const pctW = 6
	barW := max(width-labelW-textW-pctW-6, minBarWidth)

	var b strings.Builder
	renderTitle(&b, c.opts)
	for i, share := range c.Shares() {
		style := paletteStyle(i)
		b.WriteString(style.Render("●"))
		b.WriteString(" ")
		b.WriteString(formatter.StyleFg.Render(padRight(labels[i], labelW)))
		b.WriteString(" ")
		b.WriteString(formatter.RenderBar(share, barW, style))
		b.WriteString(" ")
		b.WriteString(padLeft(fmt.Sprintf("%.1f%%", share*100), pctW))
		b.WriteString(" ")
		b.WriteString(formatter.Dim(padLeft(texts[i], textW)))
		b.WriteString("\n")
	}
	return b.String()
}
