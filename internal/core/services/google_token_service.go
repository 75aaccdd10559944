package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/SscSPs/sheetbill/internal/core/domain"
	portsrepo "github.com/SscSPs/sheetbill/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sheetbill/internal/core/ports/services"
	"github.com/SscSPs/sheetbill/internal/dto"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

const defaultRefreshTimeout = 30 * time.Second

type googleTokenService struct {
	BaseService
	profiles portsrepo.UserProfileRepositoryFacade
	oauth    portssvc.GoogleOAuthSvcFacade
	timeout  time.Duration
	group    singleflight.Group
}

// NewGoogleTokenService creates the service that keeps users' Google tokens fresh.
func NewGoogleTokenService(profiles portsrepo.UserProfileRepositoryFacade, oauth portssvc.GoogleOAuthSvcFacade, timeout time.Duration, opts ...Option) portssvc.GoogleTokenSvcFacade {
	if timeout <= 0 {
		timeout = defaultRefreshTimeout
	}
	return &googleTokenService{BaseService: newBase(nil, opts), profiles: profiles, oauth: oauth, timeout: timeout}
}

var _ portssvc.GoogleTokenSvcFacade = (*googleTokenService)(nil)

func (s *googleTokenService) linkedProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.profiles.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: google account not linked", apperrors.ErrNotConfigured)
		}
		return nil, err
	}
	if profile.GoogleToken.AccessToken == "" && !profile.HasGoogleLink() {
		return nil, fmt.Errorf("%w: google account not linked", apperrors.ErrNotConfigured)
	}
	return profile, nil
}

func (s *googleTokenService) AccessToken(ctx context.Context, userID string) (*domain.GoogleToken, error) {
	profile, err := s.linkedProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.GoogleToken.NeedsRefresh(s.Now()) {
		token := profile.GoogleToken
		return &token, nil
	}
	return s.RefreshGoogleToken(ctx, userID)
}

func (s *googleTokenService) RefreshGoogleToken(ctx context.Context, userID string) (*domain.GoogleToken, error) {
	// The refresh outlives a cancelled caller so waiters sharing it still get
	// a result, and the new token is stored either way.
	detached, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()
	v, err, shared := s.group.Do(userID, func() (any, error) {
		return s.refresh(detached, userID)
	})
	if shared {
		s.LogDebug(ctx, "Shared in-flight Google token refresh", slog.String("user_id", userID))
	}
	if err != nil {
		return nil, err
	}
	token := *v.(*domain.GoogleToken)
	return &token, nil
}

func (s *googleTokenService) refresh(ctx context.Context, userID string) (*domain.GoogleToken, error) {
	profile, err := s.linkedProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.HasGoogleLink() {
		return nil, apperrors.ErrRefreshTokenExpired
	}

	fresh, err := s.oauth.RefreshAccessToken(ctx, profile.GoogleToken.RefreshToken)
	if err != nil {
		s.LogError(ctx, err, "Google token refresh failed", slog.String("user_id", userID))
		return nil, err
	}

	token := toGoogleToken(fresh)
	if err := s.profiles.UpdateGoogleToken(ctx, userID, token); err != nil {
		s.LogError(ctx, err, "Failed to store refreshed Google token", slog.String("user_id", userID))
		return nil, err
	}
	if token.RefreshToken == "" {
		token.RefreshToken = profile.GoogleToken.RefreshToken
	}
	s.LogInfo(ctx, "Google token refreshed", slog.String("user_id", userID), slog.Time("expiry", token.Expiry))
	return &token, nil
}

func (s *googleTokenService) ExchangeCode(ctx context.Context, userID, email, code string) (*dto.GoogleLinkResponse, error) {
	fresh, err := s.oauth.ExchangeCodeForToken(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Google code exchange failed", slog.String("user_id", userID))
		return nil, err
	}

	if raw, ok := fresh.Extra("id_token").(string); ok && raw != "" {
		payload, err := s.oauth.ValidateGoogleIDToken(ctx, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
		}
		if googleEmail, ok := payload.Claims["email"].(string); ok && googleEmail != "" {
			email = googleEmail
		}
	}

	token := toGoogleToken(fresh)
	profile := domain.UserProfile{UserID: userID, Email: email, GoogleToken: token}
	if err := s.profiles.SaveProfile(ctx, profile); err != nil {
		s.LogError(ctx, err, "Failed to store Google link", slog.String("user_id", userID))
		return nil, err
	}
	s.LogInfo(ctx, "Google account linked", slog.String("user_id", userID), slog.Bool("refresh_token", token.RefreshToken != ""))
	return &dto.GoogleLinkResponse{Linked: true, Email: email, ExpiresAt: token.Expiry}, nil
}

func toGoogleToken(t *oauth2.Token) domain.GoogleToken {
	return domain.GoogleToken{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
		Expiry:       t.Expiry,
	}
}
