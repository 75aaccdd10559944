package repositories

import (
	"context"

	"github.com/SscSPs/sheetbill/internal/core/domain"
)

// SettingsRepositoryFacade manages the sectioned key/value rows of the Settings tab.
type SettingsRepositoryFacade interface {
	// ListSections groups rows under their section markers, in sheet order.
	ListSections(ctx context.Context) ([]domain.SettingsSection, error)

	// UpdateSection writes existing keys in place and adds rows for new keys.
	// An empty value blanks the key's row. A missing section is created.
	UpdateSection(ctx context.Context, name string, values domain.SectionValues) error

	// CreateSection appends a marker row followed by the values.
	// It fails with apperrors.ErrDuplicate when the section exists.
	CreateSection(ctx context.Context, name string, values domain.SectionValues) error

	// DeleteSection blanks the marker and every row of the section.
	DeleteSection(ctx context.Context, name string) error
}
