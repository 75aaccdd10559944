package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/SscSPs/sheetbill/internal/core/domain"
	portsrepo "github.com/SscSPs/sheetbill/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sheetbill/internal/core/ports/services"
)

type userProfileService struct {
	BaseService
	profiles portsrepo.UserProfileRepositoryFacade
}

// NewUserProfileService creates a new instance of userProfileService.
func NewUserProfileService(profiles portsrepo.UserProfileRepositoryFacade, opts ...Option) portssvc.UserProfileSvc {
	return &userProfileService{BaseService: newBase(nil, opts), profiles: profiles}
}

var _ portssvc.UserProfileSvc = (*userProfileService)(nil)

func (s *userProfileService) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.profiles.FindProfileByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load user profile", slog.String("user_id", userID))
		}
		return nil, err
	}
	return profile, nil
}

func (s *userProfileService) EnsureProfile(ctx context.Context, userID, email string) (*domain.UserProfile, error) {
	profile, err := s.profiles.FindProfileByUserID(ctx, userID)
	switch {
	case err == nil:
		if email == "" || profile.Email == email {
			return profile, nil
		}
		profile.Email = email
	case errors.Is(err, apperrors.ErrNotFound):
		now := s.Now()
		profile = &domain.UserProfile{UserID: userID, Email: email}
		profile.CreatedAt, profile.UpdatedAt = now, now
		s.LogInfo(ctx, "Creating user profile", slog.String("user_id", userID))
	default:
		s.LogError(ctx, err, "Failed to load user profile", slog.String("user_id", userID))
		return nil, err
	}

	if err := s.profiles.SaveProfile(ctx, *profile); err != nil {
		s.LogError(ctx, err, "Failed to save user profile", slog.String("user_id", userID))
		return nil, err
	}
	return profile, nil
}
