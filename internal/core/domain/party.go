package domain

import (
	"github.com/shopspring/decimal"
)

// PartyKind distinguishes the two tabs a party can live on.
type PartyKind string

const (
	PartyCustomer PartyKind = "customer"
	PartyVendor   PartyKind = "vendor"
)

// IsValid reports whether k is a known party kind.
func (k PartyKind) IsValid() bool {
	return k == PartyCustomer || k == PartyVendor
}

// BalanceType tells which way a party's balance points. Debit means the party owes us.
type BalanceType string

const (
	BalanceDebit  BalanceType = "debit"
	BalanceCredit BalanceType = "credit"
)

// CompanyDetails holds a party's GST registration.
type CompanyDetails struct {
	GSTIN       string `json:"gstin,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
}

// PartyAccount is the running balance held against a party.
type PartyAccount struct {
	Balance decimal.Decimal `json:"balance"`
	Type    BalanceType     `json:"type"`
}

// Signed returns the balance as a receivable: positive when the party owes us.
func (a PartyAccount) Signed() decimal.Decimal {
	if a.Type == BalanceCredit {
		return a.Balance.Neg()
	}
	return a.Balance
}

// FromSigned stores a signed receivable back as magnitude plus direction.
func FromSigned(v decimal.Decimal) PartyAccount {
	if v.IsNegative() {
		return PartyAccount{Balance: v.Neg(), Type: BalanceCredit}
	}
	return PartyAccount{Balance: v, Type: BalanceDebit}
}

// TaxDefaults are the withholding flags pre-selected when invoicing the party.
type TaxDefaults struct {
	TDS         bool `json:"tds"`
	TDSUnderGST bool `json:"tdsUnderGst"`
	TCS         bool `json:"tcs"`
}

// PartyOther collects the less used party attributes kept in one JSON cell.
type PartyOther struct {
	PAN         string          `json:"pan,omitempty"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
	Notes       string          `json:"notes,omitempty"`
	TaxDefaults TaxDefaults     `json:"taxDefaults"`
}

// Party is a customer or a vendor.
type Party struct {
	ID              string         `json:"id"`
	Kind            PartyKind      `json:"kind"`
	Name            string         `json:"name"`
	Email           string         `json:"email,omitempty"`
	Phone           string         `json:"phone,omitempty"`
	BillingAddress  Address        `json:"billingAddress"`
	ShippingAddress Address        `json:"shippingAddress"`
	CompanyDetails  CompanyDetails `json:"companyDetails"`
	Account         PartyAccount   `json:"account"`
	Other           PartyOther     `json:"other"`
	Status          RecordStatus   `json:"status"`
	AuditFields
}

// ApplyGSTINDefaults normalizes the GSTIN and fills PAN and billing state from it
// when they are missing.
func (p *Party) ApplyGSTINDefaults() {
	if p.CompanyDetails.GSTIN == "" {
		return
	}
	p.CompanyDetails.GSTIN = NormalizeGSTIN(p.CompanyDetails.GSTIN)
	if p.Other.PAN == "" {
		p.Other.PAN = ExtractPANFromGSTIN(p.CompanyDetails.GSTIN)
	}
	if p.BillingAddress.State.Code == "" {
		if st, ok := StateFromGSTIN(p.CompanyDetails.GSTIN); ok {
			p.BillingAddress.State = st
		}
	}
}

// ApplyPayment moves the party balance for a recorded payment. A payment in
// reduces what the party owes, a payment out increases it.
func (p *Party) ApplyPayment(t PaymentType, amount decimal.Decimal) {
	signed := p.Account.Signed()
	switch t {
	case PaymentIn:
		signed = signed.Sub(amount)
	case PaymentOut:
		signed = signed.Add(amount)
	}
	p.Account = FromSigned(signed)
}

// ChargeInvoice adds an invoice amount to what the party owes. A negative
// amount takes a charge back, as when an invoice is cancelled.
func (p *Party) ChargeInvoice(amount decimal.Decimal) {
	p.Account = FromSigned(p.Account.Signed().Add(amount))
}

// Archive marks the party inactive.
func (p *Party) Archive() {
	p.Status = RecordInactive
}
