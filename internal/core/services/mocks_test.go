package services_test

import (
	"context"

	"github.com/SscSPs/sheetbill/internal/core/domain"
	portsrepo "github.com/SscSPs/sheetbill/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// MockStoreProvider hands out a fixed RepositoryProvider.
type MockStoreProvider struct {
	mock.Mock
}

func (m *MockStoreProvider) ForUser(ctx context.Context, userID string) (*portsrepo.RepositoryProvider, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.RepositoryProvider), args.Error(1)
}

func (m *MockStoreProvider) CreateSpreadsheet(ctx context.Context, userID, title string) (string, error) {
	args := m.Called(ctx, userID, title)
	return args.String(0), args.Error(1)
}

// MockInvoiceRepository is a mock type for the InvoiceRepositoryFacade interface
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Copy so the service cannot mutate the fixture between calls.
	inv := *args.Get(0).(*domain.Invoice)
	return &inv, args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceByRow(ctx context.Context, row int) (*domain.Invoice, error) {
	args := m.Called(ctx, row)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

// MockPartyRepository is a mock type for the PartyRepositoryFacade interface
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) ListParties(ctx context.Context) ([]domain.Party, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	p := *args.Get(0).(*domain.Party)
	return &p, args.Error(1)
}

func (m *MockPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

// MockProductRepository is a mock type for the ProductRepositoryFacade interface
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	p := *args.Get(0).(*domain.Product)
	return &p, args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// MockPaymentRepository is a mock type for the PaymentRepositoryFacade interface
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByParty(ctx context.Context, partyID string) ([]domain.Payment, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// MockSettingsRepository is a mock type for the SettingsRepositoryFacade interface
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) ListSections(ctx context.Context) ([]domain.SettingsSection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SettingsSection), args.Error(1)
}

func (m *MockSettingsRepository) UpdateSection(ctx context.Context, name string, values domain.SectionValues) error {
	args := m.Called(ctx, name, values)
	return args.Error(0)
}

func (m *MockSettingsRepository) CreateSection(ctx context.Context, name string, values domain.SectionValues) error {
	args := m.Called(ctx, name, values)
	return args.Error(0)
}

func (m *MockSettingsRepository) DeleteSection(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

// MockFileStore is a mock type for the FileStore interface
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Fetch(ctx context.Context, fileID string) ([]byte, string, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *MockFileStore) UploadPublic(ctx context.Context, name, mimeType string, data []byte) (*domain.StoredFile, error) {
	args := m.Called(ctx, name, mimeType, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoredFile), args.Error(1)
}

// MockUserProfileRepository is a mock type for the UserProfileRepositoryFacade interface
type MockUserProfileRepository struct {
	mock.Mock
}

func (m *MockUserProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	p := *args.Get(0).(*domain.UserProfile)
	return &p, args.Error(1)
}

func (m *MockUserProfileRepository) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) UpdateGoogleToken(ctx context.Context, userID string, token domain.GoogleToken) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockUserProfileRepository) UpdateSpreadsheetID(ctx context.Context, userID, spreadsheetID string) error {
	args := m.Called(ctx, userID, spreadsheetID)
	return args.Error(0)
}

// MockGoogleOAuth is a mock type for the GoogleOAuthSvcFacade interface
type MockGoogleOAuth struct {
	mock.Mock
}

func (m *MockGoogleOAuth) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockGoogleOAuth) RefreshAccessToken(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockGoogleOAuth) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

// stores bundles one set of repository mocks behind a MockStoreProvider.
type stores struct {
	provider  *MockStoreProvider
	invoices  *MockInvoiceRepository
	customers *MockPartyRepository
	vendors   *MockPartyRepository
	products  *MockProductRepository
	payments  *MockPaymentRepository
	settings  *MockSettingsRepository
	files     *MockFileStore
}

func newStores(userID string) *stores {
	s := &stores{
		provider:  new(MockStoreProvider),
		invoices:  new(MockInvoiceRepository),
		customers: new(MockPartyRepository),
		vendors:   new(MockPartyRepository),
		products:  new(MockProductRepository),
		payments:  new(MockPaymentRepository),
		settings:  new(MockSettingsRepository),
		files:     new(MockFileStore),
	}
	s.provider.On("ForUser", mock.Anything, userID).Return(&portsrepo.RepositoryProvider{
		Invoices:  s.invoices,
		Customers: s.customers,
		Vendors:   s.vendors,
		Products:  s.products,
		Payments:  s.payments,
		Settings:  s.settings,
		Files:     s.files,
	}, nil).Maybe()
	return s
}

// withSettings makes ListSections return the sections of settings.
func (s *stores) withSettings(settings domain.Settings) {
	var sections []domain.SettingsSection
	for _, name := range domain.KnownSections {
		values, err := settings.EncodeSection(name)
		if err != nil {
			panic(err)
		}
		sections = append(sections, domain.SettingsSection{Name: name, Values: values})
	}
	s.settings.On("ListSections", mock.Anything).Return(sections, nil).Maybe()
}

func (s *stores) assertExpectations(t mock.TestingT) {
	s.provider.AssertExpectations(t)
	s.invoices.AssertExpectations(t)
	s.customers.AssertExpectations(t)
	s.vendors.AssertExpectations(t)
	s.products.AssertExpectations(t)
	s.payments.AssertExpectations(t)
	s.settings.AssertExpectations(t)
	s.files.AssertExpectations(t)
}
