package services

import (
	"context"

	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/SscSPs/sheetbill/internal/dto"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// GoogleOAuthSvcFacade talks to Google's OAuth endpoints.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// RefreshAccessToken trades a refresh token for a new access token.
	RefreshAccessToken(ctx context.Context, refreshToken string) (*oauth2.Token, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}

// GoogleTokenReaderSvc hands out a usable Google access token.
type GoogleTokenReaderSvc interface {
	// AccessToken returns the stored token, refreshing it when it expires within
	// domain.TokenExpiryBuffer.
	AccessToken(ctx context.Context, userID string) (*domain.GoogleToken, error)
}

// GoogleTokenSvcFacade manages the Google tokens stored on user profiles.
type GoogleTokenSvcFacade interface {
	GoogleTokenReaderSvc
	// RefreshGoogleToken forces a refresh. Concurrent calls for one user share a single request.
	RefreshGoogleToken(ctx context.Context, userID string) (*domain.GoogleToken, error)
	// ExchangeCode links a Google account to the user.
	ExchangeCode(ctx context.Context, userID, email, code string) (*dto.GoogleLinkResponse, error)
}

// UserProfileSvc reads and provisions user profiles.
type UserProfileSvc interface {
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
	// EnsureProfile returns the profile, creating an empty one on first sight.
	EnsureProfile(ctx context.Context, userID, email string) (*domain.UserProfile, error)
}
