package dto

import "time"

// ExchangeCodeRequest carries the authorization code returned by the Google consent popup.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// GoogleLinkResponse describes the stored Google link without exposing tokens.
type GoogleLinkResponse struct {
	Linked    bool      `json:"linked"`
	Email     string    `json:"email,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// CreateSpreadsheetRequest names the spreadsheet created at bootstrap.
type CreateSpreadsheetRequest struct {
	Title string `json:"title"`
}

// SpreadsheetResponse identifies the tenant spreadsheet.
type SpreadsheetResponse struct {
	SpreadsheetID string `json:"spreadsheetId"`
	URL           string `json:"url"`
	Created       bool   `json:"created"`
}

// GoogleAccessTokenResponse hands the browser a short-lived access token, e.g. for the Drive picker.
type GoogleAccessTokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
