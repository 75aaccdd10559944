package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPANFromGSTIN(t *testing.T) {
	assert.Equal(t, "AABCU9603R", domain.ExtractPANFromGSTIN("29AABCU9603R1ZX"))
	assert.Equal(t, "AABCU9603R", domain.ExtractPANFromGSTIN(" 29aabcu9603r1zx "))
	assert.Equal(t, "", domain.ExtractPANFromGSTIN("29AAB"))
}

func TestIsValidGSTIN(t *testing.T) {
	assert.True(t, domain.IsValidGSTIN("29AABCU9603R1ZX"))
	assert.True(t, domain.IsValidGSTIN("27AAPFU0939F1ZV"))
	assert.False(t, domain.IsValidGSTIN("29AABCU9603R1YX"))
	assert.False(t, domain.IsValidGSTIN("AABCU9603R"))
	assert.False(t, domain.IsValidGSTIN(""))
}

func TestStateFromGSTIN(t *testing.T) {
	st, ok := domain.StateFromGSTIN("29AABCU9603R1ZX")
	require.True(t, ok)
	assert.Equal(t, domain.State{Code: "29", Name: "Karnataka"}, st)

	_, ok = domain.StateFromGSTIN("99AABCU9603R1ZX")
	assert.False(t, ok)
}

func TestParty_ApplyGSTINDefaults(t *testing.T) {
	p := domain.Party{CompanyDetails: domain.CompanyDetails{GSTIN: "27aapfu0939f1zv"}}
	p.ApplyGSTINDefaults()

	assert.Equal(t, "27AAPFU0939F1ZV", p.CompanyDetails.GSTIN)
	assert.Equal(t, "AAPFU0939F", p.Other.PAN)
	assert.Equal(t, "Maharashtra", p.BillingAddress.State.Name)

	keep := domain.Party{
		CompanyDetails: domain.CompanyDetails{GSTIN: "27AAPFU0939F1ZV"},
		Other:          domain.PartyOther{PAN: "EXISTING1X"},
		BillingAddress: domain.Address{State: domain.State{Code: "24", Name: "Gujarat"}},
	}
	keep.ApplyGSTINDefaults()
	assert.Equal(t, "EXISTING1X", keep.Other.PAN)
	assert.Equal(t, "Gujarat", keep.BillingAddress.State.Name)
}

func TestState_UnmarshalAcceptsAllForms(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.State
	}{
		{"object", `{"code":"33","name":"Tamil Nadu"}`, domain.State{Code: "33", Name: "Tamil Nadu"}},
		{"plain known name", `"kerala"`, domain.State{Code: "32", Name: "Kerala"}},
		{"plain unknown name", `"Atlantis"`, domain.State{Name: "Atlantis"}},
		{"json in string", `"{\"code\":\"07\",\"name\":\"Delhi\"}"`, domain.State{Code: "07", Name: "Delhi"}},
		{"null", `null`, domain.State{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var st domain.State
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &st))
			assert.Equal(t, tt.want, st)
		})
	}
}

func TestParty_ApplyPayment(t *testing.T) {
	p := domain.Party{Account: domain.PartyAccount{Balance: dec("1000"), Type: domain.BalanceDebit}}

	p.ApplyPayment(domain.PaymentIn, dec("1500"))
	assert.Equal(t, domain.BalanceCredit, p.Account.Type)
	assert.True(t, dec("500").Equal(p.Account.Balance))

	p.ApplyPayment(domain.PaymentOut, dec("700"))
	assert.Equal(t, domain.BalanceDebit, p.Account.Type)
	assert.True(t, dec("200").Equal(p.Account.Balance))
}
