package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatStatus_ListsSelections(t *testing.T) {
	out := stripANSI(FormatStatus(StatusView{
		BaseURL:   "http://localhost:5000",
		Available: true,
		Selections: []SelectionView{
			{Report: "mean-time", Entity: "Adam", UpdatedAt: time.Now().Add(-2 * time.Hour)},
			{Report: "overtime", Entity: "2013 Q2", UpdatedAt: time.Now()},
		},
	}))

	assert.Contains(t, out, "● ONLINE")
	assert.Contains(t, out, "http://localhost:5000")
	assert.Contains(t, out, "mean-time")
	assert.Contains(t, out, "2h ago")
	assert.Contains(t, out, "2013 Q2")
}

func TestFormatStatus_OfflineWithoutSelections(t *testing.T) {
	out := stripANSI(FormatStatus(StatusView{BaseURL: "http://api"}))

	assert.Contains(t, out, "● OFFLINE")
	assert.Contains(t, out, "Nothing selected yet.")
}
