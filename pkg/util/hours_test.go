package util

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatHours(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "1.5", want: "1h 30m"},
		{in: "0.25", want: "15m"},
		{in: "2.0", want: "2h"},
		{in: "0", want: "0m"},
		{in: "2.5", want: "2h 30m"},
		{in: "1.9999", want: "2h"},
		{in: "0.999", want: "1h"},
		{in: "10.1", want: "10h 6m"},
		{in: "-3", want: "0m"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatHours(decimal.RequireFromString(tc.in)))
		})
	}
}

func TestRoundHours(t *testing.T) {
	assert.Equal(t, "0.13", RoundHours(decimal.RequireFromString("0.125")).String())
	assert.Equal(t, "1.5", RoundHours(decimal.RequireFromString("1.5")).String())
	assert.Equal(t, "2.34", RoundHours(decimal.RequireFromString("2.3351")).String())
}
