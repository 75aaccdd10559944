package mapping

import (
	"database/sql"

	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/SscSPs/sheetbill/internal/models"
)

// ToModelUserProfile converts a domain UserProfile to a model UserProfile.
// Token values are copied as given; callers encrypt them first.
func ToModelUserProfile(d domain.UserProfile) models.UserProfile {
	return models.UserProfile{
		UserID:             d.UserID,
		Email:              d.Email,
		SpreadsheetID:      d.SpreadsheetID,
		GoogleAccessToken:  d.GoogleToken.AccessToken,
		GoogleRefreshToken: d.GoogleToken.RefreshToken,
		GoogleTokenType:    d.GoogleToken.TokenType,
		GoogleTokenExpiry:  sql.NullTime{Time: d.GoogleToken.Expiry, Valid: !d.GoogleToken.Expiry.IsZero()},
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

// ToDomainUserProfile converts a model UserProfile to a domain UserProfile
func ToDomainUserProfile(m models.UserProfile) domain.UserProfile {
	d := domain.UserProfile{
		UserID:        m.UserID,
		Email:         m.Email,
		SpreadsheetID: m.SpreadsheetID,
		GoogleToken: domain.GoogleToken{
			AccessToken:  m.GoogleAccessToken,
			RefreshToken: m.GoogleRefreshToken,
			TokenType:    m.GoogleTokenType,
		},
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
	if m.GoogleTokenExpiry.Valid {
		d.GoogleToken.Expiry = m.GoogleTokenExpiry.Time
	}
	return d
}
