package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{5823, "₹5823"},
		{5823.4, "₹5823"},
		{9999.5, "₹10,000"},
		{12345, "₹12,345"},
		{123456, "₹1,23,456"},
		{1234567, "₹12,34,567"},
		{-4500, "-₹4500"},
		{-123456, "-₹1,23,456"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatINR(tt.amount), "amount %v", tt.amount)
	}
}
