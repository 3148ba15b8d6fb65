package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinner_FastRequestDrawsNothing(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Fetching report...", time.Hour)
	s.Start()
	s.Stop()

	assert.Empty(t, buf.String())
}

func TestSpinner_DrawsAfterDelayAndClearsLine(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Fetching report...", 0)
	s.Start()
	time.Sleep(2 * spinnerInterval)
	s.Stop()
	s.Stop()

	out := buf.String()
	assert.Contains(t, out, "Fetching report...")
	assert.True(t, strings.HasSuffix(out, "\r\033[K"))
	assert.Equal(t, 1, strings.Count(out, "\r\033[K"))
}
