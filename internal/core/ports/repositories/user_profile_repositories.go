package repositories

import (
	"context"

	"github.com/SscSPs/sheetbill/internal/core/domain"
)

// UserProfileReader defines read operations for user profiles.
type UserProfileReader interface {
	// FindProfileByUserID returns apperrors.ErrNotFound when the user has no profile yet.
	FindProfileByUserID(ctx context.Context, userID string) (*domain.UserProfile, error)
}

// UserProfileWriter defines write operations for user profiles.
type UserProfileWriter interface {
	// SaveProfile inserts the profile or updates email, spreadsheet and tokens.
	SaveProfile(ctx context.Context, profile domain.UserProfile) error

	// UpdateGoogleToken stores a refreshed token. An empty refresh token keeps the stored one.
	UpdateGoogleToken(ctx context.Context, userID string, token domain.GoogleToken) error

	// UpdateSpreadsheetID links the user to a spreadsheet.
	UpdateSpreadsheetID(ctx context.Context, userID, spreadsheetID string) error
}

// UserProfileRepositoryFacade combines all user profile repository interfaces.
type UserProfileRepositoryFacade interface {
	UserProfileReader
	UserProfileWriter
}
