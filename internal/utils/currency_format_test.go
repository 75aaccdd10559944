package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := map[string]string{
		"0":          "0.00",
		"999":        "999.00",
		"1000":       "1,000.00",
		"123456.789": "1,23,456.79",
		"1234567.5":  "12,34,567.50",
		"-98765432":  "-9,87,65,432.00",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatINR(decimal.RequireFromString(in)), in)
	}
}

func TestAmountInWords(t *testing.T) {
	tests := map[string]string{
		"0":          "Rupees Zero Only",
		"1234.50":    "Rupees One Thousand Two Hundred Thirty Four and Fifty Paise Only",
		"100000":     "Rupees One Lakh Only",
		"2500000.05": "Rupees Twenty Five Lakh and Five Paise Only",
		"123456789":  "Rupees Twelve Crore Thirty Four Lakh Fifty Six Thousand Seven Hundred Eighty Nine Only",
		"19.999":     "Rupees Twenty Only",
	}
	for in, want := range tests {
		assert.Equal(t, want, AmountInWords(decimal.RequireFromString(in)), in)
	}
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", FormatWithPrecision(decimal.RequireFromString("12.3456"), 2))
	assert.Equal(t, "12", FormatWithPrecision(decimal.RequireFromString("12.3456"), 0))
}
