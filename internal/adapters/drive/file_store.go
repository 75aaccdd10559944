// Package drive stores logos and signatures in the user's Google Drive.
package drive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/SscSPs/sheetbill/internal/core/domain"
	portsrepo "github.com/SscSPs/sheetbill/internal/core/ports/repositories"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

// MaxFileBytes caps downloads; invoice images are small.
const MaxFileBytes = 5 << 20

type fileStore struct {
	svc *gdrive.Service
}

// NewFileStore returns a FileStore backed by Drive.
func NewFileStore(svc *gdrive.Service) portsrepo.FileStore {
	return &fileStore{svc: svc}
}

var _ portsrepo.FileStore = (*fileStore)(nil)

func (s *fileStore) Fetch(ctx context.Context, fileID string) ([]byte, string, error) {
	if fileID == "" {
		return nil, "", fmt.Errorf("%w: empty file id", apperrors.ErrValidation)
	}
	resp, err := s.svc.Files.Get(fileID).SupportsAllDrives(true).Context(ctx).Download()
	if err != nil {
		return nil, "", fmt.Errorf("download %s: %w", fileID, mapDriveError(err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxFileBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", fileID, err)
	}
	if len(data) > MaxFileBytes {
		return nil, "", fmt.Errorf("%w: file %s exceeds %d bytes", apperrors.ErrValidation, fileID, MaxFileBytes)
	}

	mime := resp.Header.Get("Content-Type")
	if mime == "" || mime == "application/octet-stream" {
		mime = http.DetectContentType(data)
	}
	return data, mime, nil
}

func (s *fileStore) UploadPublic(ctx context.Context, name, mimeType string, data []byte) (*domain.StoredFile, error) {
	f, err := s.svc.Files.Create(&gdrive.File{Name: name, MimeType: mimeType}).
		Media(bytes.NewReader(data), googleapi.ContentType(mimeType)).
		Fields("id", "name", "mimeType", "webContentLink").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", name, mapDriveError(err))
	}

	perm := &gdrive.Permission{Type: "anyone", Role: "reader"}
	if _, err := s.svc.Permissions.Create(f.Id, perm).Context(ctx).Do(); err != nil {
		return nil, fmt.Errorf("share %s: %w", f.Id, mapDriveError(err))
	}

	url := f.WebContentLink
	if url == "" {
		url = PublicURL(f.Id)
	}
	return &domain.StoredFile{ID: f.Id, Name: f.Name, MimeType: f.MimeType, URL: url}, nil
}

// PublicURL is the direct view link of a publicly shared file.
func PublicURL(fileID string) string {
	return "https://drive.google.com/uc?export=view&id=" + fileID
}

func mapDriveError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", apperrors.ErrNotFound, gerr.Message)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s", apperrors.ErrUnauthorized, gerr.Message)
		}
	}
	return err
}
