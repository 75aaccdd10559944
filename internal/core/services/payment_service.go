package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/SscSPs/sheetbill/internal/core/domain"
	portsrepo "github.com/SscSPs/sheetbill/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sheetbill/internal/core/ports/services"
	"github.com/SscSPs/sheetbill/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentCompleted is the status of every recorded payment.
const PaymentCompleted = "Completed"

type paymentService struct {
	BaseService
}

// NewPaymentService creates a new instance of paymentService.
func NewPaymentService(stores portsrepo.StoreProvider, opts ...Option) portssvc.PaymentSvcFacade {
	return &paymentService{BaseService: newBase(stores, opts)}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// defaultPartyKind infers the party tab from the payment direction.
func defaultPartyKind(t domain.PaymentType) domain.PartyKind {
	if t == domain.PaymentOut {
		return domain.PartyVendor
	}
	return domain.PartyCustomer
}

// RecordPayment appends the payment, then applies it to the invoice and the
// party balance. Everything that can fail validation is checked before the
// first write. The follow-up writes are independent: a failure is logged and
// reported in Warnings, and the payment row stays.
func (s *paymentService) RecordPayment(ctx context.Context, userID string, req dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error) {
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: type must be %q or %q", apperrors.ErrValidation, domain.PaymentIn, domain.PaymentOut)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	kind := req.PartyKind
	if kind == "" {
		kind = defaultPartyKind(req.Type)
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown party kind %q", apperrors.ErrValidation, kind)
	}
	date := s.today()
	if req.Date != "" {
		var err error
		if date, err = parseDate("date", req.Date); err != nil {
			return nil, err
		}
	}

	repos, err := s.OpenStores(ctx, userID)
	if err != nil {
		return nil, err
	}
	parties := partyRepo(repos, kind)
	party, err := parties.FindPartyByID(ctx, req.PartyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s %s does not exist", apperrors.ErrValidation, kind, req.PartyID)
		}
		return nil, err
	}

	var invoice *domain.Invoice
	if req.InvoiceID != "" {
		if kind != domain.PartyCustomer || req.Type != domain.PaymentIn {
			return nil, fmt.Errorf("%w: only customer receipts can settle an invoice", apperrors.ErrValidation)
		}
		invoice, err = repos.Invoices.FindInvoiceByID(ctx, req.InvoiceID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: invoice %s does not exist", apperrors.ErrValidation, req.InvoiceID)
			}
			return nil, err
		}
		if invoice.CustomerID != party.ID {
			return nil, fmt.Errorf("%w: invoice %s belongs to another customer", apperrors.ErrValidation, req.InvoiceID)
		}
		if invoice.Status == domain.InvoiceCancelled {
			return nil, fmt.Errorf("%w: invoice %s is cancelled", apperrors.ErrConflict, req.InvoiceID)
		}
	}

	now := s.Now().UTC()
	payment := domain.Payment{
		ID:          uuid.NewString(),
		Date:        date,
		PartyID:     party.ID,
		PartyKind:   kind,
		InvoiceID:   req.InvoiceID,
		Type:        req.Type,
		Amount:      req.Amount,
		PaymentMode: strings.TrimSpace(req.PaymentMode),
		BankAccount: req.BankAccount,
		Notes:       req.Notes,
		Status:      PaymentCompleted,
		CreatedAt:   now,
	}
	if err := repos.Payments.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("user_id", userID))
		return nil, err
	}
	resp := &dto.RecordPaymentResponse{Payment: payment}

	if invoice != nil {
		if err := invoice.ApplyPayment(payment.Amount); err != nil {
			resp.Warnings = append(resp.Warnings, err.Error())
		} else {
			invoice.UpdatedAt = now
			if err := repos.Invoices.UpdateInvoice(ctx, *invoice); err != nil {
				s.LogWarn(ctx, "Payment saved but invoice update failed",
					slog.String("payment_id", payment.ID),
					slog.String("invoice_id", invoice.ID),
					slog.String("error", err.Error()))
				resp.Warnings = append(resp.Warnings, fmt.Sprintf("invoice %s was not updated: %v", invoice.ID, err))
			} else {
				resp.Invoice = invoice
			}
		}
	}

	party.ApplyPayment(payment.Type, payment.Amount)
	party.UpdatedAt = now
	if err := parties.UpdateParty(ctx, *party); err != nil {
		s.LogWarn(ctx, "Payment saved but party balance update failed",
			slog.String("payment_id", payment.ID),
			slog.String("party_id", party.ID),
			slog.String("error", err.Error()))
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("balance of %s was not updated: %v", party.Name, err))
	} else {
		resp.Party = party
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("user_id", userID),
		slog.String("payment_id", payment.ID),
		slog.String("amount", payment.Amount.StringFixed(2)),
		slog.Int("warnings", len(resp.Warnings)))
	return resp, nil
}

func (s *paymentService) ListPayments(ctx context.Context, userID string) ([]domain.Payment, error) {
	repos, err := s.OpenStores(ctx, userID)
	if err != nil {
		return nil, err
	}
	payments, err := repos.Payments.ListPayments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("user_id", userID))
		return nil, err
	}
	return payments, nil
}

// GetLedger builds the party statement. The party row holds the balance after
// every invoice and payment, so the opening balance is that balance with
// their effect taken back out. Customer statements list invoices as charges.
func (s *paymentService) GetLedger(ctx context.Context, userID string, kind domain.PartyKind, partyID string) (*dto.LedgerResponse, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown party kind %q", apperrors.ErrValidation, kind)
	}
	repos, err := s.OpenStores(ctx, userID)
	if err != nil {
		return nil, err
	}
	party, err := partyRepo(repos, kind).FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}
	all, err := repos.Payments.ListPaymentsByParty(ctx, partyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read party payments",
			slog.String("user_id", userID),
			slog.String("party_id", partyID))
		return nil, err
	}

	var entries []domain.Payment
	if kind == domain.PartyCustomer {
		invoices, err := repos.Invoices.ListInvoices(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to read customer invoices",
				slog.String("user_id", userID),
				slog.String("party_id", partyID))
			return nil, err
		}
		var own []domain.Invoice
		for _, inv := range invoices {
			if inv.CustomerID == partyID {
				own = append(own, inv)
			}
		}
		entries = domain.InvoiceCharges(own)
	}
	for _, p := range all {
		if p.PartyKind != "" && p.PartyKind != kind {
			continue
		}
		entries = append(entries, p)
	}

	effect := decimal.Zero
	for _, e := range entries {
		switch e.Type {
		case domain.PaymentIn:
			effect = effect.Sub(e.Amount)
		case domain.PaymentOut, domain.InvoiceCharge:
			effect = effect.Add(e.Amount)
		}
	}

	closing := party.Account.Signed()
	opening := closing.Sub(effect)
	return &dto.LedgerResponse{
		PartyID:        party.ID,
		PartyName:      party.Name,
		OpeningBalance: opening,
		ClosingBalance: closing,
		Entries:        domain.BuildLedger(entries, opening),
	}, nil
}
