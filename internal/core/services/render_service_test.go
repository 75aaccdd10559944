package services_test

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/SscSPs/sheetbill/internal/core/services"
	"github.com/SscSPs/sheetbill/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRenderer() *render.Renderer {
	return render.NewRenderer(render.NewEngine(render.NewTextMeasurer(), 0))
}

func TestRenderInvoice_FallsBackToPlaceholderImages(t *testing.T) {
	st := newStores(testUserID)
	settings := testSettings()
	settings.CompanyDetails.LogoFileID = "logo-1"
	st.withSettings(settings)
	inv := storedInvoice("Sent")
	inv.Signature.FileID = "sig-7"
	st.invoices.On("FindInvoiceByID", mock.Anything, "INV-7").Return(inv, nil).Once()
	st.files.On("Fetch", mock.Anything, "logo-1").Return(nil, "", errors.New("drive down")).Once()
	st.files.On("Fetch", mock.Anything, "sig-7").Return([]byte("GIF89a"), "image/gif", nil).Once()
	svc := services.NewRenderService(st.provider, newRenderer())

	out, err := svc.RenderInvoice(context.Background(), testUserID, "INV-7", render.FormatPrint)

	require.NoError(t, err)
	assert.Equal(t, "INV-7.html", out.Filename)
	assert.Equal(t, 1, out.Pages)
	placeholder := base64.StdEncoding.EncodeToString(render.Placeholder().Data)
	assert.Equal(t, 2, strings.Count(string(out.Data), placeholder))
	st.assertExpectations(t)
}

func TestRenderInvoice_NoImagesConfigured(t *testing.T) {
	st := newStores(testUserID)
	settings := testSettings()
	settings.Signatures.DefaultFileID = ""
	st.withSettings(settings)
	st.invoices.On("FindInvoiceByID", mock.Anything, "INV-7").Return(storedInvoice("Draft"), nil).Once()
	svc := services.NewRenderService(st.provider, newRenderer())

	out, err := svc.RenderInvoice(context.Background(), testUserID, "INV-7", render.FormatPDF)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out.Data), "%PDF"))
	st.files.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
}

func TestRenderInvoice_UnknownInvoice(t *testing.T) {
	st := newStores(testUserID)
	st.invoices.On("FindInvoiceByID", mock.Anything, "INV-404").Return(nil, apperrors.ErrNotFound).Once()
	svc := services.NewRenderService(st.provider, newRenderer())

	_, err := svc.RenderInvoice(context.Background(), testUserID, "INV-404", render.FormatPDF)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
