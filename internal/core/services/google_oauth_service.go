package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	portssvc "github.com/SscSPs/sheetbill/internal/core/ports/services"
	"github.com/SscSPs/sheetbill/internal/platform/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/idtoken"
	"google.golang.org/api/sheets/v4"
)

// GoogleScopes are requested by the consent popup. drive.file limits Drive
// access to files the app created or the user picked.
var GoogleScopes = []string{
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",
	sheets.SpreadsheetsScope,
	drive.DriveFileScope,
}

// googleOAuthService implements the GoogleOAuthSvcFacade.
type googleOAuthService struct {
	cfg *config.Config
	// oauth2Config is configured at initialization time
	oauth2Config *oauth2.Config
	httpClient   *http.Client
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       GoogleScopes,
			Endpoint:     google.Endpoint,
		},
		httpClient: &http.Client{Timeout: cfg.GoogleAPITimeout},
	}
}

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
func (s *googleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", classifyOAuthError(err, apperrors.ErrValidation))
	}
	return token, nil
}

// RefreshAccessToken trades a refresh token for a new access token, through
// the refresh proxy when one is configured.
func (s *googleOAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	if refreshToken == "" {
		return nil, apperrors.ErrRefreshTokenExpired
	}
	if s.cfg.GoogleTokenRefreshURL != "" {
		return s.refreshViaProxy(ctx, refreshToken)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	// An expired token forces the source to hit the token endpoint.
	src := s.oauth2Config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken, Expiry: time.Unix(1, 0)})
	token, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh google token: %w", classifyOAuthError(err, apperrors.ErrRefreshTokenExpired))
	}
	return token, nil
}

type proxyRefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type proxyRefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Error        string `json:"error"`
}

func (s *googleOAuthService) refreshViaProxy(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	body, err := json.Marshal(proxyRefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.GoogleTokenRefreshURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("refresh proxy request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read refresh proxy response: %w", err)
	}
	var out proxyRefreshResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode refresh proxy response (%s): %w", resp.Status, err)
	}

	switch {
	case out.Error == "invalid_grant", resp.StatusCode == http.StatusBadRequest && out.AccessToken == "":
		return nil, apperrors.ErrRefreshTokenExpired
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("refresh proxy returned %s", resp.Status)
	case out.AccessToken == "":
		return nil, errors.New("refresh proxy returned no access token")
	}

	token := &oauth2.Token{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		TokenType:    out.TokenType,
	}
	if out.ExpiresIn > 0 {
		token.Expiry = time.Now().Add(time.Duration(out.ExpiresIn) * time.Second)
	}
	return token, nil
}

// ValidateGoogleIDToken validates an ID token received from Google and returns the payload if valid.
func (s *googleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, fmt.Errorf("%w: google client ID", apperrors.ErrNotConfigured)
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return payload, nil
}

// classifyOAuthError wraps Google's invalid_grant answer in sentinel.
func classifyOAuthError(err, sentinel error) error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) && re.ErrorCode == "invalid_grant" {
		return fmt.Errorf("%w: %s", sentinel, re.ErrorDescription)
	}
	return err
}
