package chart

import (
	"strings"

	"github.com/alexanderramin/presence/internal/cli/formatter"
)

type columnBar struct {
	label string
	value float64
	text  string
}

// columnChart compares one value per category. Columns are laid out as
// horizontal bars so long category labels (user names) stay readable.
type columnChart struct {
	opts      Options
	valueName string
	clock     bool
	bars      []columnBar
}

func newColumnChart(data *DataTable, opts Options) (*columnChart, error) {
	if err := requireColumns(data, KindColumn,
		types(ColumnString),
		types(ColumnNumber, ColumnTimeOfDay),
	); err != nil {
		return nil, err
	}
	c := &columnChart{
		opts:      opts,
		valueName: data.Column(1).Name(),
		clock:     data.Column(1).Type == ColumnTimeOfDay,
	}
	for r := 0; r < data.NumRows(); r++ {
		c.bars = append(c.bars, columnBar{
			label: data.String(r, 0),
			value: data.Number(r, 1),
			text:  data.FormattedValue(r, 1),
		})
	}
	return c, nil
}

func (c *columnChart) Kind() Kind { return KindColumn }

func (c *columnChart) Render(width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	labels := make([]string, len(c.bars))
	texts := make([]string, len(c.bars))
	maxV := 0.0
	for i, b := range c.bars {
		labels[i] = b.label
		texts[i] = b.text
		if b.value > maxV {
			maxV = b.value
		}
	}
	labelW := max(widest(labels), len(c.opts.HAxisTitle))
	textW := widest(texts)
	barW := max(width-labelW-textW-2, minBarWidth)

	var b strings.Builder
	renderTitle(&b, c.opts)
	vTitle := c.opts.VAxisTitle
	if vTitle == "" {
		vTitle = c.valueName
	}
	b.WriteString(formatter.Dim(padRight(c.opts.HAxisTitle, labelW) + " " + vTitle))
	b.WriteString("\n")

	for i, cb := range c.bars {
		frac := 0.0
		if maxV > 0 {
			frac = cb.value / maxV
		}
		b.WriteString(formatter.StyleFg.Render(padRight(cb.label, labelW)))
		b.WriteString(" ")
		b.WriteString(formatter.RenderBar(frac, barW, formatter.StyleGreen))
		b.WriteString(" ")
		b.WriteString(padLeft(texts[i], textW))
		b.WriteString("\n")
	}
	return b.String()
}
