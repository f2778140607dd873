package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_FormatINR(t *testing.T) {
	tests := []struct {
		amount   float64
		decimals int
		want     string
	}{
		{0, 0, "₹0"},
		{999, 0, "₹999"},
		{75000, 0, "₹75,000"},
		{193000, 0, "₹1,93,000"},
		{579000, 2, "₹5,79,000.00"},
		{12345678.5, 2, "₹1,23,45,678.50"},
		{-1500, 0, "-₹1,500"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatINR(tt.amount, tt.decimals))
		})
	}
}
