package repositories

import (
	"context"

	"github.com/SscSPs/sheetbill/internal/core/domain"
)

// PartyReader defines read operations for customers or vendors.
type PartyReader interface {
	ListParties(ctx context.Context) ([]domain.Party, error)
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)
}

// PartyWriter defines write operations for customers or vendors.
type PartyWriter interface {
	SaveParty(ctx context.Context, party domain.Party) error
	UpdateParty(ctx context.Context, party domain.Party) error
}

// PartyRepositoryFacade combines all party repository interfaces.
// One instance serves exactly one tab, customers or vendors.
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}
