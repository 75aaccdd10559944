package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/SscSPs/sheetbill/internal/core/domain"
	portsrepo "github.com/SscSPs/sheetbill/internal/core/ports/repositories"
	"github.com/SscSPs/sheetbill/internal/models"
	"github.com/SscSPs/sheetbill/internal/utils"
	"github.com/SscSPs/sheetbill/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserProfileRepository struct {
	BaseRepository
	cipher *utils.TokenCipher
	now    func() time.Time
}

func newPgxUserProfileRepository(db *pgxpool.Pool, cipher *utils.TokenCipher) *PgxUserProfileRepository {
	if cipher == nil {
		cipher = &utils.TokenCipher{}
	}
	return &PgxUserProfileRepository{
		BaseRepository: BaseRepository{Pool: db},
		cipher:         cipher,
		now:            time.Now,
	}
}

var _ portsrepo.UserProfileRepositoryFacade = (*PgxUserProfileRepository)(nil)

const (
	userProfilesTable = "user_profiles"

	selectUserProfileFields = `
		user_id, email, spreadsheet_id, google_access_token, google_refresh_token,
		google_token_type, google_token_expiry, created_at, updated_at
	`

	findUserProfileQuery = `
		SELECT ` + selectUserProfileFields + `
		FROM ` + userProfilesTable + `
		WHERE user_id = $1
	`

	// Empty incoming values never overwrite stored ones, so a partial save
	// cannot unlink a spreadsheet or drop a refresh token.
	upsertUserProfileQuery = `
		INSERT INTO ` + userProfilesTable + ` (
			user_id, email, spreadsheet_id, google_access_token, google_refresh_token,
			google_token_type, google_token_expiry, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			email = COALESCE(NULLIF(EXCLUDED.email, ''), ` + userProfilesTable + `.email),
			spreadsheet_id = COALESCE(NULLIF(EXCLUDED.spreadsheet_id, ''), ` + userProfilesTable + `.spreadsheet_id),
			google_access_token = COALESCE(NULLIF(EXCLUDED.google_access_token, ''), ` + userProfilesTable + `.google_access_token),
			google_refresh_token = COALESCE(NULLIF(EXCLUDED.google_refresh_token, ''), ` + userProfilesTable + `.google_refresh_token),
			google_token_type = COALESCE(NULLIF(EXCLUDED.google_token_type, ''), ` + userProfilesTable + `.google_token_type),
			google_token_expiry = COALESCE(EXCLUDED.google_token_expiry, ` + userProfilesTable + `.google_token_expiry),
			updated_at = EXCLUDED.updated_at
	`

	updateGoogleTokenQuery = `
		UPDATE ` + userProfilesTable + `
		SET google_access_token = $2,
			google_refresh_token = COALESCE(NULLIF($3, ''), google_refresh_token),
			google_token_type = $4,
			google_token_expiry = $5,
			updated_at = $6
		WHERE user_id = $1
	`

	updateSpreadsheetIDQuery = `
		UPDATE ` + userProfilesTable + `
		SET spreadsheet_id = $2, updated_at = $3
		WHERE user_id = $1
	`
)

func (r *PgxUserProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var m models.UserProfile
	err := r.queryRow(ctx, findUserProfileQuery, userID).Scan(
		&m.UserID,
		&m.Email,
		&m.SpreadsheetID,
		&m.GoogleAccessToken,
		&m.GoogleRefreshToken,
		&m.GoogleTokenType,
		&m.GoogleTokenExpiry,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("find profile %s: %w", userID, notFound(err))
	}

	if m.GoogleAccessToken, err = r.cipher.Open(m.GoogleAccessToken); err != nil {
		return nil, fmt.Errorf("decrypt access token for %s: %w", userID, err)
	}
	if m.GoogleRefreshToken, err = r.cipher.Open(m.GoogleRefreshToken); err != nil {
		return nil, fmt.Errorf("decrypt refresh token for %s: %w", userID, err)
	}
	profile := mapping.ToDomainUserProfile(m)
	return &profile, nil
}

func (r *PgxUserProfileRepository) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	m := mapping.ToModelUserProfile(profile)
	if err := r.sealTokens(&m); err != nil {
		return err
	}
	now := r.now().UTC()
	_, err := r.exec(ctx, upsertUserProfileQuery,
		m.UserID,
		m.Email,
		m.SpreadsheetID,
		m.GoogleAccessToken,
		m.GoogleRefreshToken,
		m.GoogleTokenType,
		m.GoogleTokenExpiry,
		now,
	)
	if err != nil {
		return fmt.Errorf("save profile %s: %w", profile.UserID, err)
	}
	return nil
}

func (r *PgxUserProfileRepository) UpdateGoogleToken(ctx context.Context, userID string, token domain.GoogleToken) error {
	m := mapping.ToModelUserProfile(domain.UserProfile{UserID: userID, GoogleToken: token})
	if err := r.sealTokens(&m); err != nil {
		return err
	}
	tag, err := r.exec(ctx, updateGoogleTokenQuery,
		userID,
		m.GoogleAccessToken,
		m.GoogleRefreshToken,
		m.GoogleTokenType,
		m.GoogleTokenExpiry,
		r.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("update google token for %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update google token for %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserProfileRepository) UpdateSpreadsheetID(ctx context.Context, userID, spreadsheetID string) error {
	tag, err := r.exec(ctx, updateSpreadsheetIDQuery, userID, spreadsheetID, r.now().UTC())
	if err != nil {
		return fmt.Errorf("update spreadsheet for %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update spreadsheet for %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserProfileRepository) sealTokens(m *models.UserProfile) error {
	var err error
	if m.GoogleAccessToken, err = r.cipher.Seal(m.GoogleAccessToken); err != nil {
		return fmt.Errorf("encrypt access token: %w", err)
	}
	if m.GoogleRefreshToken, err = r.cipher.Seal(m.GoogleRefreshToken); err != nil {
		return fmt.Errorf("encrypt refresh token: %w", err)
	}
	return nil
}
