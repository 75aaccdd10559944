package services

import (
	"context"
	"log/slog"

	portsrepo "github.com/SscSPs/sheetbill/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sheetbill/internal/core/ports/services"
	"github.com/SscSPs/sheetbill/internal/render"
	"golang.org/x/sync/errgroup"
)

type renderService struct {
	BaseService
	renderer *render.Renderer
}

// NewRenderService creates the service that exports invoices as documents.
func NewRenderService(stores portsrepo.StoreProvider, renderer *render.Renderer, opts ...Option) portssvc.RenderSvc {
	return &renderService{BaseService: newBase(stores, opts), renderer: renderer}
}

var _ portssvc.RenderSvc = (*renderService)(nil)

func (s *renderService) RenderInvoice(ctx context.Context, userID, invoiceID string, format render.Format) (*render.Output, error) {
	repos, err := s.OpenStores(ctx, userID)
	if err != nil {
		return nil, err
	}
	inv, err := repos.Invoices.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	settings, _, err := s.loadSettings(ctx, repos)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings for render", slog.String("user_id", userID))
		return nil, err
	}

	signatureID := inv.Signature.FileID
	if signatureID == "" {
		signatureID = settings.Signatures.DefaultFileID
	}
	var logo, signature *render.Image
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logo = s.fetchImage(gctx, repos.Files, settings.CompanyDetails.LogoFileID, "logo")
		return nil
	})
	g.Go(func() error {
		signature = s.fetchImage(gctx, repos.Files, signatureID, "signature")
		return nil
	})
	_ = g.Wait()

	out, err := s.renderer.Render(ctx, *inv, settings, logo, signature, format)
	if err != nil {
		s.LogError(ctx, err, "Failed to render invoice",
			slog.String("invoice_id", invoiceID),
			slog.String("format", string(format)))
		return nil, err
	}
	s.LogInfo(ctx, "Invoice rendered",
		slog.String("invoice_id", invoiceID),
		slog.String("format", string(format)),
		slog.Int("pages", out.Pages))
	return out, nil
}

// fetchImage downloads an image from Drive. Failures print the placeholder
// and are not retried; an unset id prints nothing.
func (s *renderService) fetchImage(ctx context.Context, files portsrepo.FileStore, fileID, what string) *render.Image {
	if fileID == "" || files == nil {
		return nil
	}
	data, mime, err := files.Fetch(ctx, fileID)
	if err != nil {
		s.LogWarn(ctx, "Image fetch failed, using placeholder",
			slog.String("image", what),
			slog.String("file_id", fileID),
			slog.String("error", err.Error()))
		return render.Placeholder()
	}
	format, ok := render.ImageFormatFromMime(mime)
	if !ok {
		s.LogWarn(ctx, "Unsupported image type, using placeholder",
			slog.String("image", what),
			slog.String("mime_type", mime))
		return render.Placeholder()
	}
	return &render.Image{Data: data, Format: format}
}

