package dto

import (
	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest defines a payment received from a customer or paid to a vendor.
type RecordPaymentRequest struct {
	PartyID     string             `json:"partyId" binding:"required"`
	PartyKind   domain.PartyKind   `json:"partyKind" binding:"omitempty,oneof=customer vendor"`
	InvoiceID   string             `json:"invoiceId"`
	Type        domain.PaymentType `json:"type" binding:"required"`
	Amount      decimal.Decimal    `json:"amount"`
	Date        string             `json:"date" binding:"omitempty,datetime=2006-01-02"`
	PaymentMode string             `json:"paymentMode" binding:"required"`
	BankAccount string             `json:"bankAccount"`
	Notes       string             `json:"notes"`
}

// RecordPaymentResponse reports every write of a payment. The writes are
// independent, so Warnings lists the follow-up updates that failed.
type RecordPaymentResponse struct {
	Payment  domain.Payment  `json:"payment"`
	Invoice  *domain.Invoice `json:"invoice,omitempty"`
	Party    *domain.Party   `json:"party,omitempty"`
	Warnings []string        `json:"warnings,omitempty"`
}

// ListPaymentsResponse wraps the payment list.
type ListPaymentsResponse struct {
	Payments []domain.Payment `json:"payments"`
	Count    int              `json:"count"`
}

// ToListPaymentsResponse builds the list response, never returning a null array.
func ToListPaymentsResponse(payments []domain.Payment) ListPaymentsResponse {
	if payments == nil {
		payments = []domain.Payment{}
	}
	return ListPaymentsResponse{Payments: payments, Count: len(payments)}
}

// LedgerResponse is a party statement.
type LedgerResponse struct {
	PartyID        string               `json:"partyId"`
	PartyName      string               `json:"partyName"`
	OpeningBalance decimal.Decimal      `json:"openingBalance"`
	ClosingBalance decimal.Decimal      `json:"closingBalance"`
	Entries        []domain.LedgerEntry `json:"entries"`
}
