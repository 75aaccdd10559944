package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParty_InvoiceChargeAndReceiptCancelOut(t *testing.T) {
	p := domain.Party{Account: domain.PartyAccount{Balance: decimal.Zero, Type: domain.BalanceDebit}}

	p.ChargeInvoice(decimal.NewFromInt(236))
	assert.True(t, p.Account.Balance.Equal(decimal.NewFromInt(236)))
	assert.Equal(t, domain.BalanceDebit, p.Account.Type)

	p.ApplyPayment(domain.PaymentIn, decimal.NewFromInt(236))
	assert.True(t, p.Account.Signed().IsZero())
}

func TestParty_ChargeReversalCanGoToCredit(t *testing.T) {
	p := domain.Party{Account: domain.PartyAccount{Balance: decimal.NewFromInt(100), Type: domain.BalanceDebit}}

	p.ChargeInvoice(decimal.NewFromInt(-236))

	assert.True(t, p.Account.Balance.Equal(decimal.NewFromInt(136)))
	assert.Equal(t, domain.BalanceCredit, p.Account.Type)
}

func TestBuildLedger_InvoiceChargesRaiseBalance(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }
	charges := domain.InvoiceCharges([]domain.Invoice{
		{ID: "INV-1", CustomerID: "c", InvoiceDate: day(2), Total: decimal.NewFromInt(500), Status: domain.InvoiceSent},
		{ID: "INV-2", CustomerID: "c", InvoiceDate: day(1), Total: decimal.NewFromInt(900), Status: domain.InvoiceCancelled},
	})
	require.Len(t, charges, 1)
	assert.Equal(t, domain.InvoiceCharge, charges[0].Type)
	assert.False(t, charges[0].Type.IsValid())

	entries := domain.BuildLedger(append(charges,
		domain.Payment{ID: "p-1", Date: day(3), Type: domain.PaymentIn, Amount: decimal.NewFromInt(200)},
	), decimal.NewFromInt(50))

	require.Len(t, entries, 2)
	assert.Equal(t, "INV-1", entries[0].RowID)
	assert.Equal(t, "INV-1", entries[0].InvoiceID)
	assert.True(t, entries[0].Balance.Equal(decimal.NewFromInt(550)))
	assert.True(t, entries[1].Balance.Equal(decimal.NewFromInt(350)))
}
