package pgsql

import (
	portsrepo "github.com/SscSPs/sheetbill/internal/core/ports/repositories"
	"github.com/SscSPs/sheetbill/internal/utils"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewUserProfileRepository returns the Postgres-backed profile store. Tokens
// are sealed with cipher before they are written.
func NewUserProfileRepository(dbPool *pgxpool.Pool, cipher *utils.TokenCipher) portsrepo.UserProfileRepositoryFacade {
	return newPgxUserProfileRepository(dbPool, cipher)
}
