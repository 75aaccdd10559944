package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/SscSPs/sheetbill/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInitializeSpreadsheet_ExistingIsReused(t *testing.T) {
	provider := new(MockStoreProvider)
	profiles := new(MockUserProfileRepository)
	profiles.On("FindProfileByUserID", mock.Anything, testUserID).Return(linkedProfile(fixedNow), nil).Once()
	svc := services.NewSpreadsheetService(provider, profiles)

	info, err := svc.InitializeSpreadsheet(context.Background(), testUserID, "")

	require.NoError(t, err)
	assert.Equal(t, "sheet-1", info.SpreadsheetID)
	assert.False(t, info.Created)
	provider.AssertNotCalled(t, "CreateSpreadsheet", mock.Anything, mock.Anything, mock.Anything)
}

func TestInitializeSpreadsheet_CreatesAndLinks(t *testing.T) {
	provider := new(MockStoreProvider)
	profiles := new(MockUserProfileRepository)
	profile := linkedProfile(fixedNow)
	profile.SpreadsheetID = ""
	profiles.On("FindProfileByUserID", mock.Anything, testUserID).Return(profile, nil).Once()
	provider.On("CreateSpreadsheet", mock.Anything, testUserID, "SheetBill - owner@example.com").Return("sheet-new", nil).Once()
	profiles.On("UpdateSpreadsheetID", mock.Anything, testUserID, "sheet-new").Return(nil).Once()
	svc := services.NewSpreadsheetService(provider, profiles)

	info, err := svc.InitializeSpreadsheet(context.Background(), testUserID, "  ")

	require.NoError(t, err)
	assert.Equal(t, "sheet-new", info.SpreadsheetID)
	assert.True(t, info.Created)
	provider.AssertExpectations(t)
	profiles.AssertExpectations(t)
}

func TestInitializeSpreadsheet_CreateFails(t *testing.T) {
	provider := new(MockStoreProvider)
	profiles := new(MockUserProfileRepository)
	profile := linkedProfile(fixedNow)
	profile.SpreadsheetID = ""
	profiles.On("FindProfileByUserID", mock.Anything, testUserID).Return(profile, nil).Once()
	provider.On("CreateSpreadsheet", mock.Anything, testUserID, "Books 2024").Return("", errors.New("drive quota")).Once()
	svc := services.NewSpreadsheetService(provider, profiles)

	_, err := svc.InitializeSpreadsheet(context.Background(), testUserID, "Books 2024")

	assert.EqualError(t, err, "drive quota")
	profiles.AssertNotCalled(t, "UpdateSpreadsheetID", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnsureProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("creates on first sight", func(t *testing.T) {
		profiles := new(MockUserProfileRepository)
		profiles.On("FindProfileByUserID", mock.Anything, "new-user").Return(nil, apperrors.ErrNotFound).Once()
		profiles.On("SaveProfile", mock.Anything, mock.MatchedBy(func(p domain.UserProfile) bool {
			return p.UserID == "new-user" && p.Email == "new@example.com" && p.CreatedAt.Equal(fixedNow)
		})).Return(nil).Once()
		svc := services.NewUserProfileService(profiles, services.WithClock(fixedClock))

		profile, err := svc.EnsureProfile(ctx, "new-user", "new@example.com")

		require.NoError(t, err)
		assert.False(t, profile.HasSpreadsheet())
		profiles.AssertExpectations(t)
	})

	t.Run("unchanged profile is not written", func(t *testing.T) {
		profiles := new(MockUserProfileRepository)
		profiles.On("FindProfileByUserID", mock.Anything, testUserID).Return(linkedProfile(fixedNow), nil).Once()
		svc := services.NewUserProfileService(profiles)

		profile, err := svc.EnsureProfile(ctx, testUserID, "owner@example.com")

		require.NoError(t, err)
		assert.Equal(t, "sheet-1", profile.SpreadsheetID)
		profiles.AssertNotCalled(t, "SaveProfile", mock.Anything, mock.Anything)
	})

	t.Run("email change is saved", func(t *testing.T) {
		profiles := new(MockUserProfileRepository)
		profiles.On("FindProfileByUserID", mock.Anything, testUserID).Return(linkedProfile(fixedNow), nil).Once()
		profiles.On("SaveProfile", mock.Anything, mock.MatchedBy(func(p domain.UserProfile) bool {
			return p.Email == "renamed@example.com"
		})).Return(nil).Once()
		svc := services.NewUserProfileService(profiles)

		_, err := svc.EnsureProfile(ctx, testUserID, "renamed@example.com")

		require.NoError(t, err)
		profiles.AssertExpectations(t)
	})
}
