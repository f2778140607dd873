package utils

import (
	"strconv"
	"strings"
)

// FormatINR renders an amount with Indian digit grouping (1,93,000) and the
// given number of decimals, prefixed with the rupee sign.
func FormatINR(amount float64, decimals int) string {
	s := strconv.FormatFloat(amount, 'f', decimals, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	return sign + "₹" + groupIndian(intPart) + frac
}

func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	head, tail := digits[:n-3], digits[n-3:]
	result := ""
	for i, digit := range head {
		if i > 0 && (len(head)-i)%2 == 0 {
			result += ","
		}
		result += string(digit)
	}
	return result + "," + tail
}
