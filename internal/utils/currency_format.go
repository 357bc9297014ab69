package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR formats an amount in rupees with two decimals and Indian digit grouping.
// Example: 250000 returns "₹2,50,000.00"
// Example: -1234567.891 returns "-₹12,34,567.89"
func FormatINR(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	fixed := amount.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	return sign + "₹" + groupIndian(whole) + "." + frac
}

// groupIndian inserts separators after the last three digits, then every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	parts := make([]string, 0, len(head)/2+2)
	if len(head)%2 == 1 {
		parts = append(parts, head[:1])
		head = head[1:]
	}
	for len(head) > 0 {
		parts = append(parts, head[:2])
		head = head[2:]
	}
	parts = append(parts, tail)
	return strings.Join(parts, ",")
}
