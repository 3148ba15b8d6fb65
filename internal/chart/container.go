package chart

import "github.com/alexanderramin/presence/internal/cli/formatter"

// Container is the region a panel draws its chart or placeholder into.
// It holds at most one chart or one message; drawing replaces whatever
// was there before.
type Container struct {
	chart   Chart
	message string
	visible bool
}

// Draw replaces the container content with c.
func (ct *Container) Draw(c Chart) {
	ct.chart = c
	ct.message = ""
}

// ShowMessage empties the container, puts a text placeholder in it and
// reveals it.
func (ct *Container) ShowMessage(text string) {
	ct.Clear()
	ct.message = text
	ct.visible = true
}

// Clear removes any chart or message.
func (ct *Container) Clear() {
	ct.chart = nil
	ct.message = ""
}

func (ct *Container) Show()           { ct.visible = true }
func (ct *Container) Hide()           { ct.visible = false }
func (ct *Container) Visible() bool   { return ct.visible }
func (ct *Container) Chart() Chart    { return ct.chart }
func (ct *Container) Message() string { return ct.message }

// Render returns the container content, or "" while hidden.
func (ct *Container) Render(width int) string {
	if !ct.visible {
		return ""
	}
	if ct.chart != nil {
		return ct.chart.Render(width)
	}
	if ct.message != "" {
		return formatter.Dim(ct.message) + "\n"
	}
	return ""
}
