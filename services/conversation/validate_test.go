package conversation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHotelPrice(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"100", 100, true},
		{"0", 0, true},
		{" 250 ", 250, true},
		{"12.5", 0, false},
		{"12,5", 0, false},
		{"-5", 0, false},
		{"abc", 0, false},
		{"100 usd", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		got, err := ParseHotelPrice(tc.input)
		if tc.ok {
			require.NoError(t, err, "input %q", tc.input)
			assert.Equal(t, tc.want, got, "input %q", tc.input)
		} else {
			assert.Error(t, err, "input %q", tc.input)
		}
	}
}

func TestParseDistanceInput(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"12", 12, true},
		{"12.5", 12.5, true},
		{"12,5", 12.5, true},
		{" 0,25 ", 0.25, true},
		{"12.5 km", 0, false},
		{"12.", 0, false},
		{".5", 0, false},
		{"-1", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		got, err := ParseDistanceInput(tc.input)
		if tc.ok {
			require.NoError(t, err, "input %q", tc.input)
			assert.Equal(t, tc.want, got, "input %q", tc.input)
		} else {
			assert.Error(t, err, "input %q", tc.input)
		}
	}
}

func TestParseFlowDate(t *testing.T) {
	date, err := ParseFlowDate("2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseFlowDate("10.09.2026")
	assert.Error(t, err)
	_, err = ParseFlowDate("2026-13-40")
	assert.Error(t, err)
	_, err = ParseFlowDate("tomorrow")
	assert.Error(t, err)
}

func TestNightsBetween(t *testing.T) {
	in := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	out := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, NightsBetween(in, out))
	assert.Equal(t, 1, NightsBetween(in, in.AddDate(0, 0, 1)))
}
