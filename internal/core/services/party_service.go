package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/SscSPs/sheetbill/internal/core/domain"
	portsrepo "github.com/SscSPs/sheetbill/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sheetbill/internal/core/ports/services"
	"github.com/SscSPs/sheetbill/internal/dto"
	"github.com/google/uuid"
)

// partyService serves either the Customers or the Vendors tab.
type partyService struct {
	BaseService
	kind domain.PartyKind
}

// NewPartyService creates the service for one kind of party.
func NewPartyService(stores portsrepo.StoreProvider, kind domain.PartyKind, opts ...Option) portssvc.PartySvcFacade {
	return &partyService{BaseService: newBase(stores, opts), kind: kind}
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

func (s *partyService) Kind() domain.PartyKind {
	return s.kind
}

func partyRepo(repos *portsrepo.RepositoryProvider, kind domain.PartyKind) portsrepo.PartyRepositoryFacade {
	if kind == domain.PartyVendor {
		return repos.Vendors
	}
	return repos.Customers
}

func (s *partyService) repo(ctx context.Context, userID string) (portsrepo.PartyRepositoryFacade, error) {
	repos, err := s.OpenStores(ctx, userID)
	if err != nil {
		return nil, err
	}
	return partyRepo(repos, s.kind), nil
}

func validateGSTIN(gstin string) error {
	if gstin != "" && !domain.IsValidGSTIN(gstin) {
		return fmt.Errorf("%w: invalid GSTIN %q", apperrors.ErrValidation, gstin)
	}
	return nil
}

func (s *partyService) CreateParty(ctx context.Context, userID string, req dto.CreatePartyRequest) (*domain.Party, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if err := validateGSTIN(req.GSTIN); err != nil {
		return nil, err
	}
	if req.OpeningBalance.IsNegative() {
		return nil, fmt.Errorf("%w: openingBalance must not be negative, use balanceType", apperrors.ErrValidation)
	}
	repo, err := s.repo(ctx, userID)
	if err != nil {
		return nil, err
	}

	balanceType := req.BalanceType
	if balanceType == "" {
		balanceType = domain.BalanceDebit
	}
	now := s.Now().UTC()
	party := domain.Party{
		ID:             uuid.NewString(),
		Kind:           s.kind,
		Name:           name,
		Email:          strings.TrimSpace(req.Email),
		Phone:          strings.TrimSpace(req.Phone),
		BillingAddress: req.BillingAddress,
		CompanyDetails: domain.CompanyDetails{
			GSTIN:       req.GSTIN,
			CompanyName: req.CompanyName,
		},
		Account: domain.PartyAccount{Balance: req.OpeningBalance, Type: balanceType},
		Other: domain.PartyOther{
			PAN:         strings.ToUpper(strings.TrimSpace(req.PAN)),
			CreditLimit: req.CreditLimit,
			Notes:       req.Notes,
		},
		Status:      domain.RecordActive,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if req.ShippingAddress != nil {
		party.ShippingAddress = *req.ShippingAddress
	} else {
		party.ShippingAddress = req.BillingAddress
	}
	if req.TaxDefaults != nil {
		party.Other.TaxDefaults = *req.TaxDefaults
	}
	party.ApplyGSTINDefaults()

	if err := repo.SaveParty(ctx, party); err != nil {
		s.LogError(ctx, err, "Failed to save party",
			slog.String("user_id", userID),
			slog.String("kind", string(s.kind)))
		return nil, err
	}
	s.LogInfo(ctx, "Party created",
		slog.String("user_id", userID),
		slog.String("kind", string(s.kind)),
		slog.String("party_id", party.ID))
	return &party, nil
}

// ListParties hides archived parties unless asked and matches Search against
// name, company, email, phone and GSTIN.
func (s *partyService) ListParties(ctx context.Context, userID string, params dto.ListPartiesParams) ([]domain.Party, error) {
	repo, err := s.repo(ctx, userID)
	if err != nil {
		return nil, err
	}
	parties, err := repo.ListParties(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list parties",
			slog.String("user_id", userID),
			slog.String("kind", string(s.kind)))
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(params.Search))
	out := make([]domain.Party, 0, len(parties))
	for _, p := range parties {
		if !params.IncludeInactive && p.Status == domain.RecordInactive {
			continue
		}
		if query != "" && !partyMatches(p, query) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func partyMatches(p domain.Party, query string) bool {
	for _, field := range []string{p.Name, p.CompanyDetails.CompanyName, p.Email, p.Phone, p.CompanyDetails.GSTIN} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func (s *partyService) GetParty(ctx context.Context, userID, partyID string) (*domain.Party, error) {
	repo, err := s.repo(ctx, userID)
	if err != nil {
		return nil, err
	}
	return repo.FindPartyByID(ctx, partyID)
}

func (s *partyService) UpdateParty(ctx context.Context, userID, partyID string, req dto.UpdatePartyRequest) (*domain.Party, error) {
	if req.GSTIN != nil {
		if err := validateGSTIN(*req.GSTIN); err != nil {
			return nil, err
		}
	}
	repo, err := s.repo(ctx, userID)
	if err != nil {
		return nil, err
	}
	party, err := repo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
		}
		party.Name = name
	}
	if req.Email != nil {
		party.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		party.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.BillingAddress != nil {
		party.BillingAddress = *req.BillingAddress
	}
	if req.ShippingAddress != nil {
		party.ShippingAddress = *req.ShippingAddress
	}
	if req.GSTIN != nil {
		party.CompanyDetails.GSTIN = *req.GSTIN
	}
	if req.CompanyName != nil {
		party.CompanyDetails.CompanyName = *req.CompanyName
	}
	if req.PAN != nil {
		party.Other.PAN = strings.ToUpper(strings.TrimSpace(*req.PAN))
	}
	if req.CreditLimit != nil {
		party.Other.CreditLimit = *req.CreditLimit
	}
	if req.Notes != nil {
		party.Other.Notes = *req.Notes
	}
	if req.TaxDefaults != nil {
		party.Other.TaxDefaults = *req.TaxDefaults
	}
	if req.Status != nil {
		party.Status = *req.Status
	}
	party.ApplyGSTINDefaults()
	party.UpdatedAt = s.Now().UTC()

	if err := repo.UpdateParty(ctx, *party); err != nil {
		s.LogError(ctx, err, "Failed to update party",
			slog.String("user_id", userID),
			slog.String("party_id", partyID))
		return nil, err
	}
	return party, nil
}

func (s *partyService) ArchiveParty(ctx context.Context, userID, partyID string) error {
	repo, err := s.repo(ctx, userID)
	if err != nil {
		return err
	}
	party, err := repo.FindPartyByID(ctx, partyID)
	if err != nil {
		return err
	}
	if party.Status == domain.RecordInactive {
		return nil
	}
	party.Archive()
	party.UpdatedAt = s.Now().UTC()
	if err := repo.UpdateParty(ctx, *party); err != nil {
		s.LogError(ctx, err, "Failed to archive party",
			slog.String("user_id", userID),
			slog.String("party_id", partyID))
		return err
	}
	s.LogInfo(ctx, "Party archived", slog.String("kind", string(s.kind)), slog.String("party_id", partyID))
	return nil
}
