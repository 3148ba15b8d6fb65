package chart

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/presence/internal/cli/formatter"
	"github.com/alexanderramin/presence/internal/domain"
)

type timelineLane struct {
	label      string
	start, end domain.TimeOfDay
}

// timelineChart draws one start→end span per row on a shared clock axis.
type timelineChart struct {
	opts  Options
	lanes []timelineLane
}

func newTimelineChart(data *DataTable, opts Options) (*timelineChart, error) {
	if err := requireColumns(data, KindTimeline,
		types(ColumnString),
		types(ColumnTimeOfDay),
		types(ColumnTimeOfDay),
	); err != nil {
		return nil, err
	}
	c := &timelineChart{opts: opts}
	for r := 0; r < data.NumRows(); r++ {
		c.lanes = append(c.lanes, timelineLane{
			label: data.String(r, 0),
			start: data.TimeOfDay(r, 1),
			end:   data.TimeOfDay(r, 2),
		})
	}
	return c, nil
}

func (c *timelineChart) Kind() Kind { return KindTimeline }

// axis returns whole-hour bounds covering every lane.
func (c *timelineChart) axis() (lo, hi time.Duration) {
	if len(c.lanes) == 0 {
		return 0, 24 * time.Hour
	}
	lo, hi = c.lanes[0].start.Duration(), c.lanes[0].end.Duration()
	for _, l := range c.lanes {
		lo = min(lo, l.start.Duration(), l.end.Duration())
		hi = max(hi, l.start.Duration(), l.end.Duration())
	}
	lo = lo.Truncate(time.Hour)
	if hi.Truncate(time.Hour) != hi {
		hi = hi.Truncate(time.Hour) + time.Hour
	}
	if hi <= lo {
		hi = lo + time.Hour
	}
	return lo, hi
}

func (c *timelineChart) Render(width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	labels := make([]string, len(c.lanes))
	spans := make([]string, len(c.lanes))
	for i, l := range c.lanes {
		labels[i] = l.label
		spans[i] = fmt.Sprintf("%s–%s", l.start, l.end)
	}
	labelW := widest(labels)
	spanW := widest(spans)
	barW := max(width-labelW-spanW-2, minBarWidth)
	lo, hi := c.axis()
	scale := func(d time.Duration) int {
		pos := int(float64(d-lo) / float64(hi-lo) * float64(barW))
		return min(max(pos, 0), barW)
	}

	var b strings.Builder
	renderTitle(&b, c.opts)

	for i, l := range c.lanes {
		ps, pe := scale(l.start.Duration()), scale(l.end.Duration())
		if pe < ps {
			ps, pe = pe, ps
		}
		if pe == ps && pe < barW {
			pe++
		}
		b.WriteString(formatter.StyleFg.Render(padRight(l.label, labelW)))
		b.WriteString(" ")
		b.WriteString(strings.Repeat(" ", ps))
		b.WriteString(paletteStyle(i).Render(strings.Repeat(filledBlock, pe-ps)))
		b.WriteString(strings.Repeat(" ", barW-pe))
		b.WriteString(" ")
		b.WriteString(formatter.Dim(spans[i]))
		b.WriteString("\n")
	}

	from := clockLabel(lo)
	to := clockLabel(hi)
	gap := max(barW-len(from)-len(to), 1)
	b.WriteString(strings.Repeat(" ", labelW+1))
	b.WriteString(formatter.Dim(from + strings.Repeat("─", gap) + to))
	b.WriteString("\n")
	return b.String()
}

func clockLabel(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}
