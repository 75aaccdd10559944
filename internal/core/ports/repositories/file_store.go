package repositories

import (
	"context"

	"github.com/SscSPs/sheetbill/internal/core/domain"
)

// FileStore reads and publishes binary assets such as logos and signatures.
type FileStore interface {
	// Fetch downloads a file's content and reports its MIME type.
	Fetch(ctx context.Context, fileID string) ([]byte, string, error)

	// UploadPublic stores data and makes it readable by anyone with the link.
	UploadPublic(ctx context.Context, name, mimeType string, data []byte) (*domain.StoredFile, error)
}
