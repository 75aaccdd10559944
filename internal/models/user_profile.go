package models

import (
	"database/sql"
	"time"
)

// UserProfile is a row of user_profiles. Token columns hold ciphertext when
// an encryption key is configured.
type UserProfile struct {
	UserID             string       `db:"user_id"`
	Email              string       `db:"email"`
	SpreadsheetID      string       `db:"spreadsheet_id"`
	GoogleAccessToken  string       `db:"google_access_token"`
	GoogleRefreshToken string       `db:"google_refresh_token"`
	GoogleTokenType    string       `db:"google_token_type"`
	GoogleTokenExpiry  sql.NullTime `db:"google_token_expiry"`
	CreatedAt          time.Time    `db:"created_at"`
	UpdatedAt          time.Time    `db:"updated_at"`
}
