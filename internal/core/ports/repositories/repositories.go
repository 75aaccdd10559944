package repositories

import "context"

// RepositoryProvider holds the repositories bound to one tenant's spreadsheet
// and Drive. A provider is built per request by a StoreProvider.
type RepositoryProvider struct {
	Invoices  InvoiceRepositoryFacade
	Customers PartyRepositoryFacade
	Vendors   PartyRepositoryFacade
	Products  ProductRepositoryFacade
	Payments  PaymentRepositoryFacade
	Settings  SettingsRepositoryFacade
	Files     FileStore
}

// StoreProvider opens the spreadsheet-backed repositories of a user.
type StoreProvider interface {
	// ForUser resolves the user's spreadsheet and a valid Google token.
	// It fails with apperrors.ErrNotConfigured when no spreadsheet is linked.
	ForUser(ctx context.Context, userID string) (*RepositoryProvider, error)

	// CreateSpreadsheet creates and initialises a new tenant spreadsheet owned
	// by the user's Google account and returns its id.
	CreateSpreadsheet(ctx context.Context, userID, title string) (string, error)
}
