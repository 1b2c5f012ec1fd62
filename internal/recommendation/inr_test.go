package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		rupees int64
		want   string
	}{
		{rupees: 0, want: "₹0"},
		{rupees: 7, want: "₹7"},
		{rupees: 999, want: "₹999"},
		{rupees: 1000, want: "₹1,000"},
		{rupees: 16500, want: "₹16,500"},
		{rupees: 100000, want: "₹1,00,000"},
		{rupees: 123456, want: "₹1,23,456"},
		{rupees: 1234567, want: "₹12,34,567"},
		{rupees: 123456789, want: "₹12,34,56,789"},
		{rupees: -16500, want: "-₹16,500"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatINR(tt.rupees), "rupees %d", tt.rupees)
	}
}
