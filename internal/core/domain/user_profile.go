package domain

import "time"

// TokenExpiryBuffer is how long before expiry a Google access token is
// treated as stale and refreshed.
const TokenExpiryBuffer = 5 * time.Minute

// GoogleToken is the OAuth token pair stored for a user.
type GoogleToken struct {
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	TokenType    string    `json:"tokenType,omitempty"`
	Expiry       time.Time `json:"expiry"`
}

// NeedsRefresh reports whether the token is missing or expires within the buffer.
func (t GoogleToken) NeedsRefresh(now time.Time) bool {
	if t.AccessToken == "" {
		return true
	}
	if t.Expiry.IsZero() {
		return false
	}
	return !t.Expiry.After(now.Add(TokenExpiryBuffer))
}

// UserProfile links a Supabase user to their spreadsheet and Google tokens.
type UserProfile struct {
	UserID        string      `json:"userId"`
	Email         string      `json:"email"`
	SpreadsheetID string      `json:"spreadsheetId,omitempty"`
	GoogleToken   GoogleToken `json:"googleToken"`
	AuditFields
}

// HasSpreadsheet reports whether the user finished bootstrapping.
func (p UserProfile) HasSpreadsheet() bool {
	return p.SpreadsheetID != ""
}

// HasGoogleLink reports whether a refresh token is on file.
func (p UserProfile) HasGoogleLink() bool {
	return p.GoogleToken.RefreshToken != ""
}
