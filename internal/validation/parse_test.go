package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    float64
		wantErr bool
	}{
		{"float", 2.5, 2.5, false},
		{"int", 3, 3, false},
		{"padded string", " 4.25 ", 4.25, false},
		{"json number", json.Number("6.5"), 6.5, false},
		{"bool true", true, 0, true},
		{"bool false", false, 0, true},
		{"list", []any{1.0}, 0, true},
		{"object", map[string]any{"v": 1}, 0, true},
		{"infinity", "Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumber(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    int
		wantErr bool
	}{
		{"int", 15, 15, false},
		{"int64", int64(20), 20, false},
		{"whole float", 30.0, 30, false},
		{"string", "42", 42, false},
		{"json number", json.Number("7"), 7, false},
		{"fraction", 1.5, 0, true},
		{"bool", true, 0, true},
		{"list", []any{1}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInteger(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsBlankAndIsText(t *testing.T) {
	assert.True(t, IsBlank(nil))
	assert.True(t, IsBlank("   "))
	assert.False(t, IsBlank("Delhi"))
	assert.False(t, IsBlank([]any{"Delhi"}))

	assert.True(t, IsText("Delhi"))
	assert.False(t, IsText(" "))
	assert.False(t, IsText(nil))
	assert.False(t, IsText([]any{"Delhi"}))
}
