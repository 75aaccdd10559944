package repositories

import (
	"context"

	"github.com/SscSPs/sheetbill/internal/core/domain"
)

// PaymentRepositoryFacade reads and appends rows of the Payments tab.
type PaymentRepositoryFacade interface {
	SavePayment(ctx context.Context, payment domain.Payment) error
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	// ListPaymentsByParty returns the party's payments in sheet order.
	ListPaymentsByParty(ctx context.Context, partyID string) ([]domain.Payment, error)
}
