package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceLevel(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{0, LevelLow},
		{4999.99, LevelLow},
		{5000, LevelMedium},
		{5823, LevelMedium},
		{9999, LevelMedium},
		{10000, LevelHigh},
		{54000, LevelHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PriceLevel(tt.price), "price %v", tt.price)
	}
}
