// Package format provides string formatting helpers for monetary values.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	if amount < 0 {
		return "-$" + groupedCents(math.Abs(amount))
	}
	return "$" + groupedCents(amount)
}

// NumericCurrency returns a currency string without a currency symbol but
// with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	if amount < 0 {
		return "-" + groupedCents(math.Abs(amount))
	}
	return groupedCents(amount)
}

// Percent renders a fractional rate as a percentage string (e.g., 0.055
// becomes "5.5%"). Trailing zeros are trimmed.
func Percent(rate float64) string {
	s := strconvTrim(fmt.Sprintf("%.4f", rate*100))
	return s + "%"
}

func strconvTrim(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// groupedCents formats a non-negative value with two decimals and inserts
// comma separators every three integer digits, counting from the right.
func groupedCents(value float64) string {
	s := fmt.Sprintf("%.2f", value)
	dot := strings.IndexByte(s, '.')
	intPart, decPart := s[:dot], s[dot+1:]

	n := len(intPart)
	if n <= 3 {
		return intPart + "." + decPart
	}

	var b strings.Builder
	b.Grow(n + (n-1)/3 + 3)
	lead := n % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + "." + decPart
}
