package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alexanderramin/presence/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		in   string
		want domain.TimeOfDay
	}{
		{"2:30:15", domain.NewTimeOfDay(2, 30, 15)},
		{"09:05:00", domain.NewTimeOfDay(9, 5, 0)},
		{"17:45", domain.NewTimeOfDay(17, 45, 0)},
		{"0:00:00", 0},
		{"30047", domain.NewTimeOfDay(8, 20, 47)},
		{"30047.9", domain.NewTimeOfDay(8, 20, 47)},
		{" 8:00:00 ", domain.NewTimeOfDay(8, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInterval(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInterval_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1:2:3:4", "8:75:00", "8:00:61", "-5", "x:10"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseInterval(in)
			assert.ErrorIs(t, err, ErrInvalidInterval)
		})
	}
}

func TestDecodeInterval_NumberOrString(t *testing.T) {
	got, err := decodeInterval(json.RawMessage(`32400.5`))
	require.NoError(t, err)
	assert.Equal(t, 9*time.Hour, got.Duration())

	got, err = decodeInterval(json.RawMessage(`"9:00:00"`))
	require.NoError(t, err)
	assert.Equal(t, 9*time.Hour, got.Duration())

	_, err = decodeInterval(json.RawMessage(`-1`))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = decodeInterval(json.RawMessage(`{"h": 9}`))
	assert.ErrorIs(t, err, ErrInvalidInterval)
}
