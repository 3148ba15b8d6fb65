package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderBar(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		width    int
		filled   int
	}{
		{"empty", 0.0, 10, 0},
		{"half", 0.5, 10, 5},
		{"full", 1.0, 10, 10},
		{"rounds to nearest", 0.26, 10, 3},
		{"over one clamps", 1.5, 10, 10},
		{"negative clamps", -0.5, 10, 0},
		{"zero width becomes one", 1.0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderBar(tt.fraction, tt.width, StyleGreen))
			assert.Equal(t, tt.filled, strings.Count(got, filledBlock))
			assert.Equal(t, max(tt.width, 1), strings.Count(got, filledBlock)+strings.Count(got, emptyBlock))
		})
	}
}
