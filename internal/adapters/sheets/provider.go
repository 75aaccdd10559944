package sheets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/sheetbill/internal/adapters/drive"
	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/SscSPs/sheetbill/internal/core/domain"
	portsrepo "github.com/SscSPs/sheetbill/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sheetbill/internal/core/ports/services"
	"golang.org/x/oauth2"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// Provider opens the Sheets and Drive backed repositories of a user with
// the user's own Google token.
type Provider struct {
	profiles portsrepo.UserProfileReader
	tokens   portssvc.GoogleTokenReaderSvc
	opts     []option.ClientOption
	now      func() time.Time
}

// NewProvider returns a StoreProvider. opts are appended to every Google
// client and exist mainly to point the clients at a test server.
func NewProvider(profiles portsrepo.UserProfileReader, tokens portssvc.GoogleTokenReaderSvc, opts ...option.ClientOption) *Provider {
	return &Provider{profiles: profiles, tokens: tokens, opts: opts, now: time.Now}
}

var _ portsrepo.StoreProvider = (*Provider)(nil)

func (p *Provider) ForUser(ctx context.Context, userID string) (*portsrepo.RepositoryProvider, error) {
	profile, err := p.profiles.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no profile for user", apperrors.ErrNotConfigured)
		}
		return nil, err
	}
	if !profile.HasSpreadsheet() {
		return nil, fmt.Errorf("%w: no spreadsheet linked", apperrors.ErrNotConfigured)
	}

	sheetsSvc, driveSvc, err := p.services(ctx, userID)
	if err != nil {
		return nil, err
	}

	updatedBy := profile.Email
	if updatedBy == "" {
		updatedBy = userID
	}
	client := NewClient(sheetsSvc, profile.SpreadsheetID)
	return &portsrepo.RepositoryProvider{
		Invoices:  NewInvoiceRepository(client),
		Customers: NewPartyRepository(client, domain.PartyCustomer),
		Vendors:   NewPartyRepository(client, domain.PartyVendor),
		Products:  NewProductRepository(client),
		Payments:  NewPaymentRepository(client),
		Settings:  NewSettingsRepository(client, updatedBy),
		Files:     drive.NewFileStore(driveSvc),
	}, nil
}

func (p *Provider) CreateSpreadsheet(ctx context.Context, userID, title string) (string, error) {
	sheetsSvc, _, err := p.services(ctx, userID)
	if err != nil {
		return "", err
	}
	updatedBy := userID
	if profile, err := p.profiles.FindProfileByUserID(ctx, userID); err == nil && profile.Email != "" {
		updatedBy = profile.Email
	}
	return Bootstrap(ctx, sheetsSvc, title, updatedBy, p.now())
}

func (p *Provider) services(ctx context.Context, userID string) (*gsheets.Service, *gdrive.Service, error) {
	token, err := p.tokens.AccessToken(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		Expiry:      token.Expiry,
	})
	opts := append([]option.ClientOption{option.WithTokenSource(src)}, p.opts...)

	sheetsSvc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("create sheets client: %w", err)
	}
	driveSvc, err := gdrive.NewService(ctx, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("create drive client: %w", err)
	}
	return sheetsSvc, driveSvc, nil
}
