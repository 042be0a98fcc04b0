package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimAndValidate(t *testing.T) {
	value, ok := TrimAndValidate("  Recife ")
	assert.True(t, ok)
	assert.Equal(t, "Recife", value)

	_, ok = TrimAndValidate(" \t ")
	assert.False(t, ok)

	assert.True(t, IsNotEmpty("x"))
	assert.False(t, IsNotEmpty(""))
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"20.2976", 20.2976, true},
		{"-90", -90, true},
		{"+45.5", 45.5, true},
		{" 10 ", 10, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"1e2", 100, true},
		{"41 25 01N", 0, false},
		{"120 58 57W", 0, false},
		{"", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"0x1p-2", 0, false},
		{"1e400", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, ok := ParseDecimal(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, value, 1e-9)
			}
		})
	}
}
