package utils

import (
	"fmt"
	"math"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundN arredonda para n casas decimais.
func RoundN(f float64, n int) float64 {
	if f == 0 {
		return 0
	}

	factor := math.Pow(10, float64(n))
	return math.Round(f*factor) / factor
}

// FormatINR formata um valor monetário em rúpias sem casas decimais,
// com separador de milhar: ₹1,234,567.
func FormatINR(v float64) string {
	rounded := int64(math.Round(v))

	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}

	digits := fmt.Sprintf("%d", rounded)

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + "₹" + strings.Join(groups, ",")
}
