package domain

import (
	"regexp"
	"strings"
)

// 2 digit state code, 10 character PAN, entity number, 'Z', check character.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// NormalizeGSTIN upper-cases and trims a GSTIN.
func NormalizeGSTIN(gstin string) string {
	return strings.ToUpper(strings.TrimSpace(gstin))
}

// IsValidGSTIN reports whether gstin has the 15 character GSTIN shape.
func IsValidGSTIN(gstin string) bool {
	return gstinPattern.MatchString(NormalizeGSTIN(gstin))
}

// ExtractPANFromGSTIN returns characters 3 to 12 of a GSTIN, which hold the
// holder's PAN. Short input yields "".
func ExtractPANFromGSTIN(gstin string) string {
	gstin = NormalizeGSTIN(gstin)
	if len(gstin) < 12 {
		return ""
	}
	return gstin[2:12]
}

// StateFromGSTIN resolves the registration state from the first two digits.
func StateFromGSTIN(gstin string) (State, bool) {
	gstin = NormalizeGSTIN(gstin)
	if len(gstin) < 2 {
		return State{}, false
	}
	return StateByCode(gstin[:2])
}
