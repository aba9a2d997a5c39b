package currency

import (
	"fmt"
	"math"
)

// FormatINR renders whole rupees with Indian digit grouping (12,34,567).
// Four-digit amounts are left ungrouped.
func FormatINR(amount float64) string {
	rounded := math.Round(amount)

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	intStr := fmt.Sprintf("%.0f", rounded)
	formatted := intStr
	if len(intStr) > 4 {
		formatted = addIndianSeparators(intStr, ",")
	}

	result := "₹" + formatted
	if negative {
		result = "-" + result
	}

	return result
}

// addIndianSeparators groups the last three digits, then every two.
func addIndianSeparators(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	head, tail := s[:n-3], s[n-3:]
	result := make([]byte, 0, n+n/2)

	lead := len(head) % 2
	if lead > 0 {
		result = append(result, head[:lead]...)
	}
	for i := lead; i < len(head); i += 2 {
		if len(result) > 0 {
			result = append(result, sep...)
		}
		result = append(result, head[i:i+2]...)
	}

	result = append(result, sep...)
	result = append(result, tail...)
	return string(result)
}
