package services_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/SscSPs/sheetbill/internal/core/domain"
	portssvc "github.com/SscSPs/sheetbill/internal/core/ports/services"
	"github.com/SscSPs/sheetbill/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

type GoogleTokenServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	profiles *MockUserProfileRepository
	oauth    *MockGoogleOAuth
	service  portssvc.GoogleTokenSvcFacade
}

func (suite *GoogleTokenServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.profiles = new(MockUserProfileRepository)
	suite.oauth = new(MockGoogleOAuth)
	suite.service = services.NewGoogleTokenService(suite.profiles, suite.oauth, time.Second, services.WithClock(fixedClock))
}

func (suite *GoogleTokenServiceTestSuite) TearDownTest() {
	suite.profiles.AssertExpectations(suite.T())
	suite.oauth.AssertExpectations(suite.T())
}

func TestGoogleTokenService(t *testing.T) {
	suite.Run(t, new(GoogleTokenServiceTestSuite))
}

func linkedProfile(expiry time.Time) *domain.UserProfile {
	return &domain.UserProfile{
		UserID:        testUserID,
		Email:         "owner@example.com",
		SpreadsheetID: "sheet-1",
		GoogleToken: domain.GoogleToken{
			AccessToken:  "stale-access",
			RefreshToken: "refresh-1",
			TokenType:    "Bearer",
			Expiry:       expiry,
		},
	}
}

func (suite *GoogleTokenServiceTestSuite) TestAccessToken_FreshTokenIsReturned() {
	suite.profiles.On("FindProfileByUserID", mock.Anything, testUserID).Return(linkedProfile(fixedNow.Add(time.Hour)), nil).Once()

	token, err := suite.service.AccessToken(suite.ctx, testUserID)

	suite.Require().NoError(err)
	suite.Equal("stale-access", token.AccessToken)
	suite.oauth.AssertNotCalled(suite.T(), "RefreshAccessToken", mock.Anything, mock.Anything)
}

func (suite *GoogleTokenServiceTestSuite) TestAccessToken_RefreshesInsideExpiryBuffer() {
	profile := linkedProfile(fixedNow.Add(2 * time.Minute))
	suite.profiles.On("FindProfileByUserID", mock.Anything, testUserID).Return(profile, nil).Twice()
	fresh := &oauth2.Token{AccessToken: "new-access", TokenType: "Bearer", Expiry: fixedNow.Add(time.Hour)}
	suite.oauth.On("RefreshAccessToken", mock.Anything, "refresh-1").Return(fresh, nil).Once()
	suite.profiles.On("UpdateGoogleToken", mock.Anything, testUserID, domain.GoogleToken{
		AccessToken: "new-access",
		TokenType:   "Bearer",
		Expiry:      fixedNow.Add(time.Hour),
	}).Return(nil).Once()

	token, err := suite.service.AccessToken(suite.ctx, testUserID)

	suite.Require().NoError(err)
	suite.Equal("new-access", token.AccessToken)
	suite.Equal("refresh-1", token.RefreshToken)
}

func (suite *GoogleTokenServiceTestSuite) TestAccessToken_NoProfileIsNotConfigured() {
	suite.profiles.On("FindProfileByUserID", mock.Anything, testUserID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AccessToken(suite.ctx, testUserID)

	suite.ErrorIs(err, apperrors.ErrNotConfigured)
}

func (suite *GoogleTokenServiceTestSuite) TestRefreshGoogleToken_RevokedGrant() {
	suite.profiles.On("FindProfileByUserID", mock.Anything, testUserID).Return(linkedProfile(fixedNow), nil).Once()
	suite.oauth.On("RefreshAccessToken", mock.Anything, "refresh-1").Return(nil, apperrors.ErrRefreshTokenExpired).Once()

	_, err := suite.service.RefreshGoogleToken(suite.ctx, testUserID)

	suite.ErrorIs(err, apperrors.ErrRefreshTokenExpired)
	suite.profiles.AssertNotCalled(suite.T(), "UpdateGoogleToken", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoogleTokenServiceTestSuite) TestRefreshGoogleToken_ConcurrentCallersShareOneRefresh() {
	suite.profiles.On("FindProfileByUserID", mock.Anything, testUserID).Return(linkedProfile(fixedNow), nil)
	suite.profiles.On("UpdateGoogleToken", mock.Anything, testUserID, mock.AnythingOfType("domain.GoogleToken")).Return(nil)

	var upstream atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	suite.oauth.On("RefreshAccessToken", mock.Anything, "refresh-1").
		Run(func(mock.Arguments) {
			if upstream.Add(1) == 1 {
				close(started)
			}
			<-release
		}).
		Return(&oauth2.Token{AccessToken: "shared-access", Expiry: fixedNow.Add(time.Hour)}, nil)

	const callers = 8
	results := make([]string, callers)
	var wg sync.WaitGroup
	call := func(i int) {
		defer wg.Done()
		token, err := suite.service.RefreshGoogleToken(suite.ctx, testUserID)
		if err == nil {
			results[i] = token.AccessToken
		}
	}

	wg.Add(1)
	go call(0)
	<-started
	for i := 1; i < callers; i++ {
		wg.Add(1)
		go call(i)
	}
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	suite.Equal(int32(1), upstream.Load())
	for _, got := range results {
		suite.Equal("shared-access", got)
	}
}

func (suite *GoogleTokenServiceTestSuite) TestExchangeCode_StoresTokensAndGoogleEmail() {
	token := (&oauth2.Token{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		TokenType:    "Bearer",
		Expiry:       fixedNow.Add(time.Hour),
	}).WithExtra(map[string]any{"id_token": "header.payload.sig"})
	suite.oauth.On("ExchangeCodeForToken", mock.Anything, "auth-code").Return(token, nil).Once()
	suite.oauth.On("ValidateGoogleIDToken", mock.Anything, "header.payload.sig").
		Return(&idtoken.Payload{Claims: map[string]any{"email": "owner@gmail.com"}}, nil).Once()
	suite.profiles.On("SaveProfile", mock.Anything, mock.MatchedBy(func(p domain.UserProfile) bool {
		return p.UserID == testUserID && p.Email == "owner@gmail.com" &&
			p.GoogleToken.AccessToken == "access-1" && p.GoogleToken.RefreshToken == "refresh-1"
	})).Return(nil).Once()

	resp, err := suite.service.ExchangeCode(suite.ctx, testUserID, "owner@example.com", "auth-code")

	suite.Require().NoError(err)
	suite.True(resp.Linked)
	suite.Equal("owner@gmail.com", resp.Email)
	suite.Equal(fixedNow.Add(time.Hour), resp.ExpiresAt)
}

func (suite *GoogleTokenServiceTestSuite) TestExchangeCode_BadCode() {
	suite.oauth.On("ExchangeCodeForToken", mock.Anything, "used-code").Return(nil, apperrors.ErrValidation).Once()

	_, err := suite.service.ExchangeCode(suite.ctx, testUserID, "", "used-code")

	suite.ErrorIs(err, apperrors.ErrValidation)
}
