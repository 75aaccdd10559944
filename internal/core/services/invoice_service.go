package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/SscSPs/sheetbill/internal/core/domain"
	portsrepo "github.com/SscSPs/sheetbill/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sheetbill/internal/core/ports/services"
	"github.com/SscSPs/sheetbill/internal/dto"
	"github.com/shopspring/decimal"
)

const defaultInvoicePrefix = "INV-"

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
}

// NewInvoiceService creates a new instance of invoiceService.
func NewInvoiceService(stores portsrepo.StoreProvider, opts ...Option) portssvc.InvoiceSvcFacade {
	return &invoiceService{BaseService: newBase(stores, opts)}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", apperrors.ErrValidation, field)
	}
	return t, nil
}

// invoiceCustomer loads an active customer to bill.
func invoiceCustomer(ctx context.Context, repos *portsrepo.RepositoryProvider, customerID string) (*domain.Party, error) {
	customer, err := repos.Customers.FindPartyByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, customerID)
		}
		return nil, err
	}
	if customer.Status == domain.RecordInactive {
		return nil, fmt.Errorf("%w: customer %s is archived", apperrors.ErrValidation, customerID)
	}
	return customer, nil
}

// chargeCustomer moves the customer balance by amount after an invoice write.
// The invoice row is already stored, so a failed balance write is logged and
// the invoice result still stands.
func (s *invoiceService) chargeCustomer(ctx context.Context, repos *portsrepo.RepositoryProvider, customer *domain.Party, invoiceID string, amount decimal.Decimal) {
	if amount.IsZero() {
		return
	}
	customer.ChargeInvoice(amount)
	customer.UpdatedAt = s.Now().UTC()
	if err := repos.Customers.UpdateParty(ctx, *customer); err != nil {
		s.LogWarn(ctx, "Invoice saved but customer balance was not updated",
			slog.String("invoice_id", invoiceID),
			slog.String("customer_id", customer.ID),
			slog.String("amount", amount.StringFixed(2)),
			slog.String("error", err.Error()))
	}
}

// chargeCustomerByID is chargeCustomer for a customer that is not loaded yet.
func (s *invoiceService) chargeCustomerByID(ctx context.Context, repos *portsrepo.RepositoryProvider, customerID, invoiceID string, amount decimal.Decimal) {
	if amount.IsZero() {
		return
	}
	customer, err := repos.Customers.FindPartyByID(ctx, customerID)
	if err != nil {
		s.LogWarn(ctx, "Invoice saved but customer balance was not updated",
			slog.String("invoice_id", invoiceID),
			slog.String("customer_id", customerID),
			slog.String("amount", amount.StringFixed(2)),
			slog.String("error", err.Error()))
		return
	}
	s.chargeCustomer(ctx, repos, customer, invoiceID, amount)
}

func selectBank(settings domain.Settings, bankID string) (*domain.BankAccount, error) {
	if bankID == "" {
		if acc, ok := settings.Banks.Default(); ok {
			return &acc, nil
		}
		return nil, nil
	}
	acc, ok := settings.Banks.Find(bankID)
	if !ok {
		return nil, fmt.Errorf("%w: bank account %s does not exist", apperrors.ErrValidation, bankID)
	}
	return &acc, nil
}

func (s *invoiceService) CreateInvoice(ctx context.Context, userID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	repos, err := s.OpenStores(ctx, userID)
	if err != nil {
		return nil, err
	}
	settings, _, err := s.loadSettings(ctx, repos)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings for invoice", slog.String("user_id", userID))
		return nil, err
	}
	customer, err := invoiceCustomer(ctx, repos, req.CustomerID)
	if err != nil {
		return nil, err
	}

	prefix := strings.TrimSpace(req.Prefix)
	if prefix == "" {
		prefix = settings.Preferences.InvoicePrefix
	}
	if prefix == "" {
		prefix = defaultInvoicePrefix
	}
	number := req.Number
	if number == 0 {
		existing, err := repos.Invoices.ListInvoices(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to list invoices for numbering", slog.String("user_id", userID))
			return nil, err
		}
		number = domain.NextInvoiceNumber(existing, prefix)
	}

	invoiceDate := s.today()
	if req.InvoiceDate != "" {
		if invoiceDate, err = parseDate("invoiceDate", req.InvoiceDate); err != nil {
			return nil, err
		}
	}
	dueDate := invoiceDate.AddDate(0, 0, settings.Preferences.DueDays)
	if req.DueDate != "" {
		if dueDate, err = parseDate("dueDate", req.DueDate); err != nil {
			return nil, err
		}
	}
	if dueDate.Before(invoiceDate) {
		return nil, fmt.Errorf("%w: dueDate is before invoiceDate", apperrors.ErrValidation)
	}

	bank, err := selectBank(settings, req.BankAccountID)
	if err != nil {
		return nil, err
	}

	now := s.Now().UTC()
	inv := domain.Invoice{
		ID:                  domain.InvoiceID(prefix, number),
		Prefix:              prefix,
		Number:              number,
		CustomerID:          customer.ID,
		Customer:            *customer,
		InvoiceDate:         invoiceDate,
		DueDate:             dueDate,
		PlaceOfSupply:       customer.BillingAddress.State,
		Items:               dto.ToLineItems(req.Items),
		AdditionalCharges:   req.AdditionalCharges,
		GlobalDiscount:      domain.Discount{Type: settings.Preferences.DiscountType},
		Status:              domain.InvoiceDraft,
		PaymentModes:        req.PaymentModes,
		BankAccount:         bank,
		Notes:               settings.NotesTerms.InvoiceNotes,
		Terms:               settings.NotesTerms.InvoiceTerms,
		Attachments:         req.Attachments,
		DispatchFromAddress: settings.CompanyDetails.Address,
		Shipping:            domain.Shipping{Address: customer.ShippingAddress},
		Signature: domain.SignatureRef{
			Name:   settings.Signatures.SignatoryName,
			FileID: settings.Signatures.DefaultFileID,
			URL:    settings.Signatures.DefaultURL,
		},
		Reference:   req.Reference,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if req.PlaceOfSupply != nil && !req.PlaceOfSupply.IsZero() {
		inv.PlaceOfSupply = *req.PlaceOfSupply
	}
	if req.GlobalDiscount != nil {
		inv.GlobalDiscount = *req.GlobalDiscount
	}
	if req.TDS != nil {
		inv.TDS = *req.TDS
	}
	if req.TDSUnderGST != nil {
		inv.TDSUnderGST = *req.TDSUnderGST
	}
	if req.TCS != nil {
		inv.TCS = *req.TCS
	}
	if req.Notes != nil {
		inv.Notes = *req.Notes
	}
	if req.Terms != nil {
		inv.Terms = *req.Terms
	}
	if req.DispatchFromAddress != nil {
		inv.DispatchFromAddress = *req.DispatchFromAddress
	}
	if req.Shipping != nil {
		inv.Shipping = *req.Shipping
	}
	if req.Signature != nil {
		inv.Signature = *req.Signature
	}
	if req.Status != "" {
		if req.Status != domain.InvoiceDraft && req.Status != domain.InvoiceSent {
			return nil, fmt.Errorf("%w: a new invoice must be Draft or Sent, got %q", apperrors.ErrValidation, req.Status)
		}
		inv.Status = req.Status
	}
	inv.Recalculate(settings.Preferences.Rounding)

	if err := repos.Invoices.SaveInvoice(ctx, inv); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save invoice",
				slog.String("user_id", userID),
				slog.String("invoice_id", inv.ID))
		}
		return nil, err
	}
	s.chargeCustomer(ctx, repos, customer, inv.ID, inv.Total)

	s.LogInfo(ctx, "Invoice created",
		slog.String("user_id", userID),
		slog.String("invoice_id", inv.ID),
		slog.String("total", inv.Total.StringFixed(2)))
	return &inv, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, userID string, params dto.ListInvoicesParams) ([]domain.Invoice, error) {
	repos, err := s.OpenStores(ctx, userID)
	if err != nil {
		return nil, err
	}
	invoices, err := repos.Invoices.ListInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices", slog.String("user_id", userID))
		return nil, err
	}
	if params.Status == "" && params.CustomerID == "" {
		return invoices, nil
	}

	filtered := make([]domain.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if params.Status != "" && !strings.EqualFold(string(inv.Status), params.Status) {
			continue
		}
		if params.CustomerID != "" && inv.CustomerID != params.CustomerID {
			continue
		}
		filtered = append(filtered, inv)
	}
	return filtered, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error) {
	repos, err := s.OpenStores(ctx, userID)
	if err != nil {
		return nil, err
	}
	return repos.Invoices.FindInvoiceByID(ctx, invoiceID)
}

func (s *invoiceService) GetInvoiceByRow(ctx context.Context, userID string, row int) (*domain.Invoice, error) {
	repos, err := s.OpenStores(ctx, userID)
	if err != nil {
		return nil, err
	}
	return repos.Invoices.FindInvoiceByRow(ctx, row)
}

// UpdateInvoice merges req into the stored invoice and recomputes its totals.
func (s *invoiceService) UpdateInvoice(ctx context.Context, userID, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	repos, err := s.OpenStores(ctx, userID)
	if err != nil {
		return nil, err
	}
	inv, err := repos.Invoices.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status == domain.InvoiceCancelled {
		return nil, fmt.Errorf("%w: invoice %s is cancelled", apperrors.ErrConflict, invoiceID)
	}
	settings, _, err := s.loadSettings(ctx, repos)
	if err != nil {
		return nil, err
	}
	previousCustomer, previousTotal := inv.CustomerID, inv.Total
	var newCustomer *domain.Party

	if req.CustomerID != nil && *req.CustomerID != inv.CustomerID {
		customer, err := invoiceCustomer(ctx, repos, *req.CustomerID)
		if err != nil {
			return nil, err
		}
		inv.CustomerID = customer.ID
		inv.Customer = *customer
		newCustomer = customer
		if req.PlaceOfSupply == nil {
			inv.PlaceOfSupply = customer.BillingAddress.State
		}
	}
	if req.InvoiceDate != nil {
		if inv.InvoiceDate, err = parseDate("invoiceDate", *req.InvoiceDate); err != nil {
			return nil, err
		}
	}
	if req.DueDate != nil {
		if inv.DueDate, err = parseDate("dueDate", *req.DueDate); err != nil {
			return nil, err
		}
	}
	if !inv.DueDate.IsZero() && inv.DueDate.Before(inv.InvoiceDate) {
		return nil, fmt.Errorf("%w: dueDate is before invoiceDate", apperrors.ErrValidation)
	}
	if req.BankAccountID != nil {
		if inv.BankAccount, err = selectBank(settings, *req.BankAccountID); err != nil {
			return nil, err
		}
	}
	applyInvoicePatch(inv, req)
	inv.Recalculate(settings.Preferences.Rounding)
	inv.UpdatedAt = s.Now().UTC()

	if err := repos.Invoices.UpdateInvoice(ctx, *inv); err != nil {
		s.LogError(ctx, err, "Failed to update invoice",
			slog.String("user_id", userID),
			slog.String("invoice_id", invoiceID))
		return nil, err
	}
	if newCustomer != nil {
		s.chargeCustomerByID(ctx, repos, previousCustomer, inv.ID, previousTotal.Neg())
		s.chargeCustomer(ctx, repos, newCustomer, inv.ID, inv.Total)
	} else {
		s.chargeCustomerByID(ctx, repos, inv.CustomerID, inv.ID, inv.Total.Sub(previousTotal))
	}
	return inv, nil
}

func applyInvoicePatch(inv *domain.Invoice, req dto.UpdateInvoiceRequest) {
	if req.PlaceOfSupply != nil {
		inv.PlaceOfSupply = *req.PlaceOfSupply
	}
	if req.Items != nil {
		inv.Items = dto.ToLineItems(*req.Items)
	}
	if req.AdditionalCharges != nil {
		inv.AdditionalCharges = *req.AdditionalCharges
	}
	if req.GlobalDiscount != nil {
		inv.GlobalDiscount = *req.GlobalDiscount
	}
	if req.PaymentModes != nil {
		inv.PaymentModes = *req.PaymentModes
	}
	if req.TDS != nil {
		inv.TDS = *req.TDS
	}
	if req.TDSUnderGST != nil {
		inv.TDSUnderGST = *req.TDSUnderGST
	}
	if req.TCS != nil {
		inv.TCS = *req.TCS
	}
	if req.Notes != nil {
		inv.Notes = *req.Notes
	}
	if req.Terms != nil {
		inv.Terms = *req.Terms
	}
	if req.Reference != nil {
		inv.Reference = *req.Reference
	}
	if req.Attachments != nil {
		inv.Attachments = *req.Attachments
	}
	if req.DispatchFromAddress != nil {
		inv.DispatchFromAddress = *req.DispatchFromAddress
	}
	if req.Shipping != nil {
		inv.Shipping = *req.Shipping
	}
	if req.Signature != nil {
		inv.Signature = *req.Signature
	}
	if req.PDFURL != nil {
		inv.PDFURL = *req.PDFURL
	}
}

func (s *invoiceService) UpdateInvoiceStatus(ctx context.Context, userID, invoiceID string, status domain.InvoiceStatus) (*domain.Invoice, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, status)
	}
	repos, err := s.OpenStores(ctx, userID)
	if err != nil {
		return nil, err
	}
	inv, err := repos.Invoices.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if !inv.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s to %s", apperrors.ErrInvalidTransition, inv.Status, status)
	}
	if inv.Status == status {
		return inv, nil
	}

	previous := inv.Status
	inv.Status = status
	inv.UpdatedAt = s.Now().UTC()
	if err := repos.Invoices.UpdateInvoice(ctx, *inv); err != nil {
		s.LogError(ctx, err, "Failed to update invoice status",
			slog.String("user_id", userID),
			slog.String("invoice_id", invoiceID))
		return nil, err
	}
	if status == domain.InvoiceCancelled {
		s.chargeCustomerByID(ctx, repos, inv.CustomerID, inv.ID, inv.Total.Neg())
	}
	s.LogInfo(ctx, "Invoice status changed",
		slog.String("invoice_id", invoiceID),
		slog.String("from", string(previous)),
		slog.String("to", string(status)))
	return inv, nil
}

// DeleteInvoice cancels the invoice and takes its total back off the customer
// balance. Cancelling twice is a no-op.
func (s *invoiceService) DeleteInvoice(ctx context.Context, userID, invoiceID string) error {
	_, err := s.UpdateInvoiceStatus(ctx, userID, invoiceID, domain.InvoiceCancelled)
	return err
}
