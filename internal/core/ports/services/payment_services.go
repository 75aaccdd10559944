package services

import (
	"context"

	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/SscSPs/sheetbill/internal/dto"
)

// PaymentSvcFacade records payments and builds party statements.
type PaymentSvcFacade interface {
	RecordPayment(ctx context.Context, userID string, req dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error)
	ListPayments(ctx context.Context, userID string) ([]domain.Payment, error)
	GetLedger(ctx context.Context, userID string, kind domain.PartyKind, partyID string) (*dto.LedgerResponse, error)
}
