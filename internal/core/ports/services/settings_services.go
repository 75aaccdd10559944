package services

import (
	"context"

	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/SscSPs/sheetbill/internal/dto"
)

// SettingsReaderSvc reads the settings singleton.
type SettingsReaderSvc interface {
	GetSettings(ctx context.Context, userID string) (*domain.Settings, error)
}

// SettingsWriterSvc changes sections of the settings singleton.
type SettingsWriterSvc interface {
	UpdateSection(ctx context.Context, userID, section string, values domain.SectionValues) (*domain.Settings, error)
	CreateSection(ctx context.Context, userID, section string, values domain.SectionValues) (*domain.Settings, error)
	DeleteSection(ctx context.Context, userID, section string) error
}

// BankSvc maintains the bank list with exactly one default account.
type BankSvc interface {
	AddBank(ctx context.Context, userID string, req dto.AddBankRequest) (domain.BankAccounts, error)
	RemoveBank(ctx context.Context, userID, bankID string) (domain.BankAccounts, error)
	SetDefaultBank(ctx context.Context, userID, bankID string) (domain.BankAccounts, error)
}

// SettingsSvcFacade combines all settings service interfaces.
type SettingsSvcFacade interface {
	SettingsReaderSvc
	SettingsWriterSvc
	BankSvc
	// UploadSignature publishes the image and makes it the default signature.
	UploadSignature(ctx context.Context, userID, name, mimeType string, data []byte) (*domain.StoredFile, error)
}
