package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "Zero", value: 0, want: "₹0"},
		{name: "Sem agrupamento", value: 950, want: "₹950"},
		{name: "Um grupo de milhar", value: 1234, want: "₹1,234"},
		{name: "Dois grupos", value: 1234567, want: "₹1,234,567"},
		{name: "Arredonda os centavos", value: 190000.49, want: "₹190,000"},
		{name: "Arredonda para cima", value: 999.5, want: "₹1,000"},
		{name: "Negativo", value: -52000, want: "-₹52,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatINR(tt.value))
		})
	}
}

func TestRoundN(t *testing.T) {
	assert.Equal(t, 12.346, RoundN(12.34567, 3))
	assert.Equal(t, 12.3, RoundN(12.34, 1))
	assert.Equal(t, 0.0, RoundN(0, 2))
	assert.Equal(t, 12.0, RoundN(12.0, 0))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 12.35, RoundWithTwoDecimalPlace(12.346))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}
