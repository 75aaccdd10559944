package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType is the direction of money relative to the business.
type PaymentType string

const (
	PaymentIn  PaymentType = "Payment In"
	PaymentOut PaymentType = "Payment Out"
)

// InvoiceCharge marks a ledger entry raised by an invoice. Payment rows
// never carry it.
const InvoiceCharge PaymentType = "Invoice"

// IsValid reports whether t is a known payment type.
func (t PaymentType) IsValid() bool {
	return t == PaymentIn || t == PaymentOut
}

// Payment is one row of the Payments tab.
type Payment struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	PartyID     string          `json:"partyId"`
	PartyKind   PartyKind       `json:"partyKind"`
	InvoiceID   string          `json:"invoiceId,omitempty"`
	Type        PaymentType     `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentMode string          `json:"paymentMode"`
	BankAccount string          `json:"bankAccount,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// LedgerEntry is one line of a party statement with the balance after it.
type LedgerEntry struct {
	RowID       string          `json:"rowId"`
	Date        time.Time       `json:"date"`
	Type        PaymentType     `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
	Status      string          `json:"status"`
	PaymentMode string          `json:"paymentMode"`
	BankAccount string          `json:"bankAccount,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	InvoiceID   string          `json:"invoiceId,omitempty"`
}

// InvoiceCharges turns the invoices of a customer into ledger charges.
// Cancelled invoices were charged and taken back, so they are left out.
func InvoiceCharges(invoices []Invoice) []Payment {
	out := make([]Payment, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Status == InvoiceCancelled {
			continue
		}
		out = append(out, Payment{
			ID:        inv.ID,
			Date:      inv.InvoiceDate,
			PartyID:   inv.CustomerID,
			PartyKind: PartyCustomer,
			InvoiceID: inv.ID,
			Type:      InvoiceCharge,
			Amount:    inv.Total,
			Status:    string(inv.Status),
		})
	}
	return out
}

// BuildLedger orders entries by date and computes the running receivable
// starting at opening. Entries on the same date keep their input order.
func BuildLedger(payments []Payment, opening decimal.Decimal) []LedgerEntry {
	sorted := make([]Payment, len(payments))
	copy(sorted, payments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	balance := opening
	entries := make([]LedgerEntry, 0, len(sorted))
	for _, p := range sorted {
		switch p.Type {
		case PaymentIn:
			balance = balance.Sub(p.Amount)
		case PaymentOut, InvoiceCharge:
			balance = balance.Add(p.Amount)
		}
		entries = append(entries, LedgerEntry{
			RowID:       p.ID,
			Date:        p.Date,
			Type:        p.Type,
			Amount:      p.Amount,
			Balance:     balance,
			Status:      p.Status,
			PaymentMode: p.PaymentMode,
			BankAccount: p.BankAccount,
			Notes:       p.Notes,
			InvoiceID:   p.InvoiceID,
		})
	}
	return entries
}
