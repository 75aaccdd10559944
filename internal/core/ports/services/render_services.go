package services

import (
	"context"

	"github.com/SscSPs/sheetbill/internal/render"
)

// RenderSvc exports an invoice as a document.
type RenderSvc interface {
	RenderInvoice(ctx context.Context, userID, invoiceID string, format render.Format) (*render.Output, error)
}

// SpreadsheetSvc bootstraps the tenant spreadsheet.
type SpreadsheetSvc interface {
	// InitializeSpreadsheet creates the spreadsheet unless the user already has one.
	InitializeSpreadsheet(ctx context.Context, userID, title string) (*SpreadsheetInfo, error)
}

// SpreadsheetInfo identifies the tenant spreadsheet.
type SpreadsheetInfo struct {
	SpreadsheetID string
	Created       bool
}
