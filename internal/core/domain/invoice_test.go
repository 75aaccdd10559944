package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestInvoiceStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from domain.InvoiceStatus
		to   domain.InvoiceStatus
		want bool
	}{
		{domain.InvoiceDraft, domain.InvoiceSent, true},
		{domain.InvoiceSent, domain.InvoicePaid, true},
		{domain.InvoiceSent, domain.InvoiceOverdue, true},
		{domain.InvoiceOverdue, domain.InvoicePaid, true},
		{domain.InvoicePaid, domain.InvoiceCancelled, true},
		{domain.InvoiceDraft, domain.InvoiceCancelled, true},
		{domain.InvoiceSent, domain.InvoiceSent, true},
		{domain.InvoicePaid, domain.InvoiceDraft, false},
		{domain.InvoiceOverdue, domain.InvoiceSent, false},
		{domain.InvoiceCancelled, domain.InvoiceDraft, false},
		{domain.InvoiceCancelled, domain.InvoicePaid, false},
		{domain.InvoiceDraft, domain.InvoiceStatus("Archived"), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestLineItem_Compute(t *testing.T) {
	li := domain.LineItem{
		Quantity:        dec("3"),
		Price:           dec("199.99"),
		DiscountPercent: dec("10"),
		TaxRate:         dec("18"),
	}
	li.Compute()

	assert.True(t, dec("539.97").Equal(li.TaxableValue), li.TaxableValue.String())
	assert.True(t, dec("97.19").Equal(li.TaxAmount), li.TaxAmount.String())
	assert.True(t, dec("637.16").Equal(li.Amount), li.Amount.String())
}

func TestInvoice_Recalculate(t *testing.T) {
	inv := domain.Invoice{
		Items: []domain.LineItem{
			{Name: "Widget", Quantity: dec("2"), Price: dec("500"), TaxRate: dec("18")},
			{Name: "Service", Quantity: dec("1"), Price: dec("250.50"), TaxRate: dec("0")},
		},
		AdditionalCharges: []domain.Charge{{Name: "Freight", Amount: dec("100"), TaxRate: dec("18")}},
		GlobalDiscount:    domain.Discount{Type: domain.DiscountAmount, Value: dec("50")},
		AmountPaid:        dec("500"),
	}

	inv.Recalculate(domain.RoundNearest)

	// subtotal 1250.50, tax 180 + 18, charges 100, discount 50 => 1498.50 => 1499 (rounded half up)
	assert.True(t, dec("1250.50").Equal(inv.Subtotal), inv.Subtotal.String())
	assert.True(t, dec("198").Equal(inv.TaxAmount), inv.TaxAmount.String())
	assert.True(t, dec("1499").Equal(inv.Total), inv.Total.String())
	assert.True(t, dec("0.5").Equal(inv.RoundOff), inv.RoundOff.String())
	assert.True(t, dec("999").Equal(inv.BalanceDue), inv.BalanceDue.String())
}

func TestInvoice_RecalculateWithholding(t *testing.T) {
	inv := domain.Invoice{
		Items: []domain.LineItem{{Name: "Consulting", Quantity: dec("1"), Price: dec("10000"), TaxRate: dec("18")}},
		TDS:   domain.TaxWithholding{Enabled: true, Rate: dec("10"), Section: "194J"},
		TCS:   domain.TaxWithholding{Enabled: false, Rate: dec("1")},
	}

	inv.Recalculate(domain.RoundNone)

	assert.True(t, dec("11800").Equal(inv.Total))
	assert.True(t, dec("1000").Equal(inv.TDS.Amount))
	assert.True(t, inv.TCS.Amount.IsZero())
	assert.True(t, dec("10800").Equal(inv.BalanceDue))
	assert.True(t, inv.RoundOff.IsZero())
}

func TestInvoice_ApplyPayment(t *testing.T) {
	inv := domain.Invoice{ID: "INV-1", Status: domain.InvoiceSent, Total: dec("1000"), BalanceDue: dec("1000")}

	require.NoError(t, inv.ApplyPayment(dec("400")))
	assert.Equal(t, domain.InvoiceSent, inv.Status)
	assert.True(t, dec("600").Equal(inv.BalanceDue))

	require.NoError(t, inv.ApplyPayment(dec("600")))
	assert.Equal(t, domain.InvoicePaid, inv.Status)
	assert.True(t, inv.BalanceDue.IsZero())

	cancelled := domain.Invoice{ID: "INV-2", Status: domain.InvoiceCancelled}
	assert.Error(t, cancelled.ApplyPayment(dec("1")))
}

func TestInvoice_PaymentState(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	due := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Paid", (&domain.Invoice{Total: dec("10"), BalanceDue: decimal.Zero}).PaymentState(now))
	assert.Equal(t, "Overdue", (&domain.Invoice{Total: dec("10"), BalanceDue: dec("10"), DueDate: due}).PaymentState(now))
	assert.Equal(t, "Partially Paid", (&domain.Invoice{Total: dec("10"), AmountPaid: dec("4"), BalanceDue: dec("6")}).PaymentState(now))
	assert.Equal(t, "Unpaid", (&domain.Invoice{Total: dec("10"), BalanceDue: dec("10")}).PaymentState(now))
}

func TestNextInvoiceNumber(t *testing.T) {
	existing := []domain.Invoice{
		{ID: "INV-7", Prefix: "INV-", Number: 7},
		{ID: "INV-12", Prefix: "INV-", Number: 12},
		{ID: "INV-15"},
		{ID: "QT-40", Prefix: "QT-", Number: 40},
		{ID: "INV-abc"},
	}
	assert.Equal(t, 16, domain.NextInvoiceNumber(existing, "INV-"))
	assert.Equal(t, 41, domain.NextInvoiceNumber(existing, "QT-"))
	assert.Equal(t, 1, domain.NextInvoiceNumber(existing, "CN-"))
	assert.Equal(t, "INV-16", domain.InvoiceID("INV-", 16))
}
