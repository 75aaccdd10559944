package services

import (
	"context"
	"errors"
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

const maxSignatureBytes = 2 << 20

var signatureMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
}

type settingsService struct {
	BaseService
}

// NewSettingsService creates the service managing the Settings tab.
func NewSettingsService(stores portsrepo.StoreProvider, opts ...Option) portssvc.SettingsSvcFacade {
	return &settingsService{BaseService: newBase(stores, opts)}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// loadSettings reads every section and decodes the typed settings. Cells
// that do not decode are logged and left at their zero value.
func (s *BaseService) loadSettings(ctx context.Context, repos *portsrepo.RepositoryProvider) (domain.Settings, []domain.SettingsSection, error) {
	sections, err := repos.Settings.ListSections(ctx)
	if err != nil {
		return domain.Settings{}, nil, err
	}
	settings, issues := domain.SettingsFromSections(sections)
	s.logSettingsIssues(ctx, issues)
	return settings, sections, nil
}

func (s *BaseService) logSettingsIssues(ctx context.Context, issues []domain.SettingsIssue) {
	for _, issue := range issues {
		s.LogWarn(ctx, "Ignoring malformed settings value",
			slog.String("section", issue.Section),
			slog.String("key", issue.Key),
			slog.String("error", issue.Err.Error()))
	}
}

func sectionValues(sections []domain.SettingsSection, name string) (domain.SectionValues, bool) {
	for _, sec := range sections {
		if sec.Name == name {
			return sec.Values, true
		}
	}
	return nil, false
}

// validSectionName rejects names that cannot be told apart from marker rows.
// The bank list only changes through the bank operations, which keep one default.
func validSectionName(name string) error {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "", trimmed != name, strings.EqualFold(trimmed, "section"):
		return fmt.Errorf("%w: invalid section name %q", apperrors.ErrValidation, name)
	case trimmed == domain.SectionBanks:
		return fmt.Errorf("%w: bank accounts are managed through the bank endpoints", apperrors.ErrValidation)
	}
	return nil
}

func (s *settingsService) GetSettings(ctx context.Context, userID string) (*domain.Settings, error) {
	repos, err := s.OpenStores(ctx, userID)
	if err != nil {
		return nil, err
	}
	settings, _, err := s.loadSettings(ctx, repos)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings", slog.String("user_id", userID))
		return nil, err
	}
	return &settings, nil
}

// UpdateSection merges values into the stored section. The incoming values
// must decode; stored values that do not are left for the caller to repair.
func (s *settingsService) UpdateSection(ctx context.Context, userID, section string, values domain.SectionValues) (*domain.Settings, error) {
	if err := validSectionName(section); err != nil {
		return nil, err
	}
	if err := domain.ValidateSectionValues(section, values); err != nil {
		return nil, fmt.Errorf("%w: section %s: %v", apperrors.ErrValidation, section, err)
	}
	repos, err := s.OpenStores(ctx, userID)
	if err != nil {
		return nil, err
	}
	settings, sections, err := s.loadSettings(ctx, repos)
	if err != nil {
		return nil, err
	}

	current, _ := sectionValues(sections, section)
	merged := make(domain.SectionValues, len(current)+len(values))
	for k, v := range current {
		merged[k] = v
	}
	for k, v := range values {
		merged[k] = v
	}
	s.logSettingsIssues(ctx, settings.LoadSection(section, merged))

	if err := repos.Settings.UpdateSection(ctx, section, values); err != nil {
		s.LogError(ctx, err, "Failed to update settings section",
			slog.String("user_id", userID),
			slog.String("section", section))
		return nil, err
	}
	s.LogInfo(ctx, "Settings section updated", slog.String("user_id", userID), slog.String("section", section))
	return &settings, nil
}

func (s *settingsService) CreateSection(ctx context.Context, userID, section string, values domain.SectionValues) (*domain.Settings, error) {
	if err := validSectionName(section); err != nil {
		return nil, err
	}
	if err := domain.ValidateSectionValues(section, values); err != nil {
		return nil, fmt.Errorf("%w: section %s: %v", apperrors.ErrValidation, section, err)
	}
	repos, err := s.OpenStores(ctx, userID)
	if err != nil {
		return nil, err
	}
	settings, sections, err := s.loadSettings(ctx, repos)
	if err != nil {
		return nil, err
	}
	if _, exists := sectionValues(sections, section); exists {
		return nil, fmt.Errorf("%w: section %s already exists", apperrors.ErrDuplicate, section)
	}
	settings.LoadSection(section, values)

	if err := repos.Settings.CreateSection(ctx, section, values); err != nil {
		s.LogError(ctx, err, "Failed to create settings section",
			slog.String("user_id", userID),
			slog.String("section", section))
		return nil, err
	}
	return &settings, nil
}

func (s *settingsService) DeleteSection(ctx context.Context, userID, section string) error {
	if err := validSectionName(section); err != nil {
		return err
	}
	repos, err := s.OpenStores(ctx, userID)
	if err != nil {
		return err
	}
	if err := repos.Settings.DeleteSection(ctx, section); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete settings section",
				slog.String("user_id", userID),
				slog.String("section", section))
		}
		return err
	}
	s.LogInfo(ctx, "Settings section deleted", slog.String("user_id", userID), slog.String("section", section))
	return nil
}

func (s *settingsService) AddBank(ctx context.Context, userID string, req dto.AddBankRequest) (domain.BankAccounts, error) {
	acc := domain.BankAccount{
		ID:            uuid.NewString(),
		BankName:      strings.TrimSpace(req.BankName),
		AccountName:   strings.TrimSpace(req.AccountName),
		AccountNumber: strings.TrimSpace(req.AccountNumber),
		IFSC:          strings.ToUpper(strings.TrimSpace(req.IFSC)),
		Branch:        req.Branch,
		UPIID:         strings.TrimSpace(req.UPIID),
		IsDefault:     req.IsDefault,
	}
	return s.changeBanks(ctx, userID, func(banks domain.BankAccounts) (domain.BankAccounts, error) {
		return banks.Add(acc), nil
	})
}

func (s *settingsService) RemoveBank(ctx context.Context, userID, bankID string) (domain.BankAccounts, error) {
	return s.changeBanks(ctx, userID, func(banks domain.BankAccounts) (domain.BankAccounts, error) {
		out, found := banks.Remove(bankID)
		if !found {
			return nil, fmt.Errorf("bank account %s: %w", bankID, apperrors.ErrNotFound)
		}
		return out, nil
	})
}

func (s *settingsService) SetDefaultBank(ctx context.Context, userID, bankID string) (domain.BankAccounts, error) {
	return s.changeBanks(ctx, userID, func(banks domain.BankAccounts) (domain.BankAccounts, error) {
		out, found := banks.SetDefault(bankID)
		if !found {
			return nil, fmt.Errorf("bank account %s: %w", bankID, apperrors.ErrNotFound)
		}
		return out, nil
	})
}

// changeBanks reads the bank list, applies change and writes the whole list back.
func (s *settingsService) changeBanks(ctx context.Context, userID string, change func(domain.BankAccounts) (domain.BankAccounts, error)) (domain.BankAccounts, error) {
	repos, err := s.OpenStores(ctx, userID)
	if err != nil {
		return nil, err
	}
	settings, _, err := s.loadSettings(ctx, repos)
	if err != nil {
		return nil, err
	}

	banks, err := change(settings.Banks)
	if err != nil {
		return nil, err
	}
	settings.Banks = banks
	values, err := settings.EncodeSection(domain.SectionBanks)
	if err != nil {
		return nil, fmt.Errorf("encode bank accounts: %w", err)
	}
	if err := repos.Settings.UpdateSection(ctx, domain.SectionBanks, values); err != nil {
		s.LogError(ctx, err, "Failed to store bank accounts", slog.String("user_id", userID))
		return nil, err
	}
	return banks, nil
}

func (s *settingsService) UploadSignature(ctx context.Context, userID, name, mimeType string, data []byte) (*domain.StoredFile, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty signature file", apperrors.ErrValidation)
	}
	if len(data) > maxSignatureBytes {
		return nil, fmt.Errorf("%w: signature larger than %d bytes", apperrors.ErrValidation, maxSignatureBytes)
	}
	if !signatureMimeTypes[mimeType] {
		return nil, fmt.Errorf("%w: unsupported signature type %q", apperrors.ErrValidation, mimeType)
	}

	repos, err := s.OpenStores(ctx, userID)
	if err != nil {
		return nil, err
	}
	file, err := repos.Files.UploadPublic(ctx, name, mimeType, data)
	if err != nil {
		s.LogError(ctx, err, "Failed to upload signature", slog.String("user_id", userID))
		return nil, err
	}

	values := domain.SectionValues{"defaultFileId": file.ID, "defaultUrl": file.URL}
	if err := repos.Settings.UpdateSection(ctx, domain.SectionSignatures, values); err != nil {
		// The file is already public; only the default pointer is missing.
		s.LogError(ctx, err, "Failed to store signature reference",
			slog.String("user_id", userID),
			slog.String("file_id", file.ID))
		return nil, err
	}
	s.LogInfo(ctx, "Signature uploaded", slog.String("user_id", userID), slog.String("file_id", file.ID))
	return file, nil
}
