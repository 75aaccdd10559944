package handlers_test

import (
	"context"

	"github.com/SscSPs/sheetbill/internal/core/domain"
	portssvc "github.com/SscSPs/sheetbill/internal/core/ports/services"
	"github.com/SscSPs/sheetbill/internal/dto"
	"github.com/SscSPs/sheetbill/internal/render"
	"github.com/stretchr/testify/mock"
)

type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) ListInvoices(ctx context.Context, userID string, params dto.ListInvoicesParams) ([]domain.Invoice, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, userID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) GetInvoiceByRow(ctx context.Context, userID string, row int) (*domain.Invoice, error) {
	args := m.Called(ctx, userID, row)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) CreateInvoice(ctx context.Context, userID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) UpdateInvoice(ctx context.Context, userID, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	args := m.Called(ctx, userID, invoiceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) UpdateInvoiceStatus(ctx context.Context, userID, invoiceID string, status domain.InvoiceStatus) (*domain.Invoice, error) {
	args := m.Called(ctx, userID, invoiceID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) DeleteInvoice(ctx context.Context, userID, invoiceID string) error {
	return m.Called(ctx, userID, invoiceID).Error(0)
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

type MockPartyService struct {
	mock.Mock
	kind domain.PartyKind
}

func (m *MockPartyService) Kind() domain.PartyKind { return m.kind }
func (m *MockPartyService) CreateParty(ctx context.Context, userID string, req dto.CreatePartyRequest) (*domain.Party, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}
func (m *MockPartyService) ListParties(ctx context.Context, userID string, params dto.ListPartiesParams) ([]domain.Party, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}
func (m *MockPartyService) GetParty(ctx context.Context, userID, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, userID, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}
func (m *MockPartyService) UpdateParty(ctx context.Context, userID, partyID string, req dto.UpdatePartyRequest) (*domain.Party, error) {
	args := m.Called(ctx, userID, partyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}
func (m *MockPartyService) ArchiveParty(ctx context.Context, userID, partyID string) error {
	return m.Called(ctx, userID, partyID).Error(0)
}

var _ portssvc.PartySvcFacade = (*MockPartyService)(nil)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) CreateProduct(ctx context.Context, userID string, req dto.CreateProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductService) ListProducts(ctx context.Context, userID string, includeInactive bool) ([]domain.Product, error) {
	args := m.Called(ctx, userID, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockProductService) GetProduct(ctx context.Context, userID, productID string) (*domain.Product, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductService) UpdateProduct(ctx context.Context, userID, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, userID, productID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductService) ArchiveProduct(ctx context.Context, userID, productID string) error {
	return m.Called(ctx, userID, productID).Error(0)
}

var _ portssvc.ProductSvcFacade = (*MockProductService)(nil)

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) RecordPayment(ctx context.Context, userID string, req dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RecordPaymentResponse), args.Error(1)
}
func (m *MockPaymentService) ListPayments(ctx context.Context, userID string) ([]domain.Payment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentService) GetLedger(ctx context.Context, userID string, kind domain.PartyKind, partyID string) (*dto.LedgerResponse, error) {
	args := m.Called(ctx, userID, kind, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LedgerResponse), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetSettings(ctx context.Context, userID string) (*domain.Settings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}
func (m *MockSettingsService) UpdateSection(ctx context.Context, userID, section string, values domain.SectionValues) (*domain.Settings, error) {
	args := m.Called(ctx, userID, section, values)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}
func (m *MockSettingsService) CreateSection(ctx context.Context, userID, section string, values domain.SectionValues) (*domain.Settings, error) {
	args := m.Called(ctx, userID, section, values)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}
func (m *MockSettingsService) DeleteSection(ctx context.Context, userID, section string) error {
	return m.Called(ctx, userID, section).Error(0)
}
func (m *MockSettingsService) AddBank(ctx context.Context, userID string, req dto.AddBankRequest) (domain.BankAccounts, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.BankAccounts), args.Error(1)
}
func (m *MockSettingsService) RemoveBank(ctx context.Context, userID, bankID string) (domain.BankAccounts, error) {
	args := m.Called(ctx, userID, bankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.BankAccounts), args.Error(1)
}
func (m *MockSettingsService) SetDefaultBank(ctx context.Context, userID, bankID string) (domain.BankAccounts, error) {
	args := m.Called(ctx, userID, bankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.BankAccounts), args.Error(1)
}
func (m *MockSettingsService) UploadSignature(ctx context.Context, userID, name, mimeType string, data []byte) (*domain.StoredFile, error) {
	args := m.Called(ctx, userID, name, mimeType, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoredFile), args.Error(1)
}

var _ portssvc.SettingsSvcFacade = (*MockSettingsService)(nil)

type MockRenderService struct {
	mock.Mock
}

func (m *MockRenderService) RenderInvoice(ctx context.Context, userID, invoiceID string, format render.Format) (*render.Output, error) {
	args := m.Called(ctx, userID, invoiceID, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*render.Output), args.Error(1)
}

var _ portssvc.RenderSvc = (*MockRenderService)(nil)

type MockSpreadsheetService struct {
	mock.Mock
}

func (m *MockSpreadsheetService) InitializeSpreadsheet(ctx context.Context, userID, title string) (*portssvc.SpreadsheetInfo, error) {
	args := m.Called(ctx, userID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.SpreadsheetInfo), args.Error(1)
}

var _ portssvc.SpreadsheetSvc = (*MockSpreadsheetService)(nil)

type MockGoogleTokenService struct {
	mock.Mock
}

func (m *MockGoogleTokenService) AccessToken(ctx context.Context, userID string) (*domain.GoogleToken, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoogleToken), args.Error(1)
}
func (m *MockGoogleTokenService) RefreshGoogleToken(ctx context.Context, userID string) (*domain.GoogleToken, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoogleToken), args.Error(1)
}
func (m *MockGoogleTokenService) ExchangeCode(ctx context.Context, userID, email, code string) (*dto.GoogleLinkResponse, error) {
	args := m.Called(ctx, userID, email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GoogleLinkResponse), args.Error(1)
}

var _ portssvc.GoogleTokenSvcFacade = (*MockGoogleTokenService)(nil)

type MockUserProfileService struct {
	mock.Mock
}

func (m *MockUserProfileService) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}
func (m *MockUserProfileService) EnsureProfile(ctx context.Context, userID, email string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

var _ portssvc.UserProfileSvc = (*MockUserProfileService)(nil)
