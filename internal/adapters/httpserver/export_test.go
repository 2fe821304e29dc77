package httpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{52499, "₹52,499"},
		{123456, "₹1,23,456"},
		{1234567, "₹12,34,567"},
		{-1500, "-₹1,500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatINR(tt.in), "input %d", tt.in)
	}
}

func TestJoinHighlights(t *testing.T) {
	assert.Equal(t, "", joinHighlights(nil))
	assert.Equal(t, "ANC", joinHighlights([]string{"ANC"}))
	assert.Equal(t, "ANC, 40H Battery", joinHighlights([]string{"ANC", "40H Battery"}))
}
