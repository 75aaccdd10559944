package dto

import (
	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePartyRequest defines the data needed to create a customer or vendor.
type CreatePartyRequest struct {
	Name            string              `json:"name" binding:"required"`
	Email           string              `json:"email" binding:"omitempty,email"`
	Phone           string              `json:"phone"`
	BillingAddress  domain.Address      `json:"billingAddress"`
	ShippingAddress *domain.Address     `json:"shippingAddress"`
	GSTIN           string              `json:"gstin" binding:"omitempty,gstin"`
	CompanyName     string              `json:"companyName"`
	PAN             string              `json:"pan"`
	OpeningBalance  decimal.Decimal     `json:"openingBalance"`
	BalanceType     domain.BalanceType  `json:"balanceType" binding:"omitempty,oneof=debit credit"`
	CreditLimit     decimal.Decimal     `json:"creditLimit"`
	Notes           string              `json:"notes"`
	TaxDefaults     *domain.TaxDefaults `json:"taxDefaults"`
}

// UpdatePartyRequest carries a partial update. Nil fields keep the stored value.
type UpdatePartyRequest struct {
	Name            *string              `json:"name" binding:"omitempty,min=1"`
	Email           *string              `json:"email" binding:"omitempty,email"`
	Phone           *string              `json:"phone"`
	BillingAddress  *domain.Address      `json:"billingAddress"`
	ShippingAddress *domain.Address      `json:"shippingAddress"`
	GSTIN           *string              `json:"gstin" binding:"omitempty,gstin"`
	CompanyName     *string              `json:"companyName"`
	PAN             *string              `json:"pan"`
	CreditLimit     *decimal.Decimal     `json:"creditLimit"`
	Notes           *string              `json:"notes"`
	TaxDefaults     *domain.TaxDefaults  `json:"taxDefaults"`
	Status          *domain.RecordStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ListPartiesParams filters the party list.
type ListPartiesParams struct {
	IncludeInactive bool   `form:"includeInactive"`
	Search          string `form:"q"`
}

// ListPartiesResponse wraps a customer or vendor list.
type ListPartiesResponse struct {
	Parties []domain.Party `json:"parties"`
	Count   int            `json:"count"`
}

// ToListPartiesResponse builds the list response, never returning a null array.
func ToListPartiesResponse(parties []domain.Party) ListPartiesResponse {
	if parties == nil {
		parties = []domain.Party{}
	}
	return ListPartiesResponse{Parties: parties, Count: len(parties)}
}

// GSTINDetailsResponse is what can be derived offline from a GSTIN.
type GSTINDetailsResponse struct {
	GSTIN string       `json:"gstin"`
	Valid bool         `json:"valid"`
	PAN   string       `json:"pan"`
	State domain.State `json:"state"`
}
