package services

import (
	"context"

	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/SscSPs/sheetbill/internal/dto"
)

// PartySvcFacade manages either customers or vendors, depending on the instance.
type PartySvcFacade interface {
	Kind() domain.PartyKind
	CreateParty(ctx context.Context, userID string, req dto.CreatePartyRequest) (*domain.Party, error)
	ListParties(ctx context.Context, userID string, params dto.ListPartiesParams) ([]domain.Party, error)
	GetParty(ctx context.Context, userID, partyID string) (*domain.Party, error)
	UpdateParty(ctx context.Context, userID, partyID string, req dto.UpdatePartyRequest) (*domain.Party, error)
	// ArchiveParty marks the party inactive; parties are never removed.
	ArchiveParty(ctx context.Context, userID, partyID string) error
}

// ProductSvcFacade manages the product catalog.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, userID string, req dto.CreateProductRequest) (*domain.Product, error)
	ListProducts(ctx context.Context, userID string, includeInactive bool) ([]domain.Product, error)
	GetProduct(ctx context.Context, userID, productID string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, userID, productID string, req dto.UpdateProductRequest) (*domain.Product, error)
	ArchiveProduct(ctx context.Context, userID, productID string) error
}
