package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatWithPrecision formats an amount with the given precision
// Example: 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatINR formats an amount with two decimals and Indian digit grouping.
// Example: 1234567.5 returns "12,34,567.50"
func FormatINR(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)
	intPart, frac := fixed, ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, frac = fixed[:i], fixed[i:]
	}

	var groups []string
	if len(intPart) > 3 {
		groups = append(groups, intPart[len(intPart)-3:])
		intPart = intPart[:len(intPart)-3]
		for len(intPart) > 2 {
			groups = append(groups, intPart[len(intPart)-2:])
			intPart = intPart[:len(intPart)-2]
		}
	}
	groups = append(groups, intPart)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i := len(groups) - 1; i >= 0; i-- {
		b.WriteString(groups[i])
		if i > 0 {
			b.WriteByte(',')
		}
	}
	b.WriteString(frac)
	return b.String()
}

var (
	onesWords = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tensWords = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// AmountInWords spells a rupee amount using the Indian system (lakh, crore).
// Example: 1234.50 returns "Rupees One Thousand Two Hundred Thirty Four and Fifty Paise Only"
func AmountInWords(amount decimal.Decimal) string {
	amount = amount.Abs()
	whole := amount.Truncate(0)
	rupees := whole.IntPart()
	paise := amount.Sub(whole).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if paise >= 100 {
		rupees++
		paise -= 100
	}

	var b strings.Builder
	b.WriteString("Rupees ")
	b.WriteString(NumberInWords(rupees))
	if paise > 0 {
		b.WriteString(" and ")
		b.WriteString(belowHundred(paise))
		b.WriteString(" Paise")
	}
	b.WriteString(" Only")
	return b.String()
}

// NumberInWords spells a non-negative integer using the Indian system.
func NumberInWords(n int64) string {
	if n <= 0 {
		return "Zero"
	}
	var parts []string
	if n >= 10000000 {
		parts = append(parts, NumberInWords(n/10000000)+" Crore")
		n %= 10000000
	}
	if n >= 100000 {
		parts = append(parts, belowHundred(n/100000)+" Lakh")
		n %= 100000
	}
	if n >= 1000 {
		parts = append(parts, belowHundred(n/1000)+" Thousand")
		n %= 1000
	}
	if n >= 100 {
		parts = append(parts, onesWords[n/100]+" Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, belowHundred(n))
	}
	return strings.Join(parts, " ")
}

func belowHundred(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	if n%10 == 0 {
		return tensWords[n/10]
	}
	return tensWords[n/10] + " " + onesWords[n%10]
}
