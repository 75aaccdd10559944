package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/SscSPs/sheetbill/internal/core/domain"
	portssvc "github.com/SscSPs/sheetbill/internal/core/ports/services"
	"github.com/SscSPs/sheetbill/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestInitializeSpreadsheet_UsesTokenEmail() {
	suite.profiles.On("EnsureProfile", mock.Anything, testUserID, testEmail).Return(&domain.UserProfile{UserID: testUserID}, nil).Once()
	suite.spreadsheets.On("InitializeSpreadsheet", mock.Anything, testUserID, "Books").
		Return(&portssvc.SpreadsheetInfo{SpreadsheetID: "sheet-9", Created: true}, nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/spreadsheet", dto.CreateSpreadsheetRequest{Title: "Books"})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.SpreadsheetResponse
	suite.decode(w, &resp)
	suite.Equal("https://docs.google.com/spreadsheets/d/sheet-9", resp.URL)
}

func (suite *HandlerTestSuite) TestInitializeSpreadsheet_ExistingNoBody() {
	suite.profiles.On("EnsureProfile", mock.Anything, testUserID, testEmail).Return(&domain.UserProfile{UserID: testUserID}, nil).Once()
	suite.spreadsheets.On("InitializeSpreadsheet", mock.Anything, testUserID, "").
		Return(&portssvc.SpreadsheetInfo{SpreadsheetID: "sheet-1"}, nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/spreadsheet", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestExchangeCode() {
	suite.tokens.On("ExchangeCode", mock.Anything, testUserID, testEmail, "auth-code").
		Return(&dto.GoogleLinkResponse{Linked: true, Email: "owner@gmail.com"}, nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/google/exchange-code", dto.ExchangeCodeRequest{Code: "auth-code"})
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodPost, "/api/v1/google/exchange-code", map[string]string{})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestRefresh() {
	expiry := time.Date(2024, 3, 10, 16, 0, 0, 0, time.UTC)
	suite.tokens.On("RefreshGoogleToken", mock.Anything, testUserID).
		Return(&domain.GoogleToken{AccessToken: "ya29.fresh", TokenType: "Bearer", Expiry: expiry}, nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/google/refresh", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.GoogleAccessTokenResponse
	suite.decode(w, &resp)
	suite.Equal("ya29.fresh", resp.AccessToken)
	suite.True(resp.ExpiresAt.Equal(expiry))
}

func (suite *HandlerTestSuite) TestRefresh_RevokedGrantAsksForReauth() {
	suite.tokens.On("RefreshGoogleToken", mock.Anything, testUserID).Return(nil, apperrors.ErrRefreshTokenExpired).Once()

	w := suite.request(http.MethodPost, "/api/v1/google/refresh", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), `"code":"google_reauth_required"`)
}
