package sheets

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/sheetbill/internal/core/domain"
	gsheets "google.golang.org/api/sheets/v4"
)

// Bootstrap creates a tenant spreadsheet with every tab, the header rows of
// the schema-backed tabs and the default settings sections.
func Bootstrap(ctx context.Context, svc *gsheets.Service, title, updatedBy string, now time.Time) (string, error) {
	id, err := CreateSpreadsheet(ctx, svc, title, Tabs)
	if err != nil {
		return "", err
	}

	settings, err := settingsRows(domain.DefaultSettings(), updatedBy, now)
	if err != nil {
		return "", fmt.Errorf("encode default settings: %w", err)
	}

	invoices := InvoiceSchema()
	quotations, creditNotes := invoices, invoices
	quotations.Sheet, creditNotes.Sheet = TabQuotations, TabCreditNotes

	data := []*gsheets.ValueRange{
		headerRange(invoices),
		headerRange(quotations),
		headerRange(creditNotes),
		headerRange(ProductSchema()),
		headerRange(PartySchema(domain.PartyCustomer)),
		headerRange(PartySchema(domain.PartyVendor)),
		headerRange(PaymentSchema()),
		{
			Range:  fmt.Sprintf("%s!A1:%s1", TabExpenses, columnLetter(len(expenseHeaders))),
			Values: [][]any{expenseHeaders},
		},
		{
			Range:  fmt.Sprintf("%s!A1:E%d", TabSettings, len(settings)),
			Values: settings,
		},
	}
	if err := NewClient(svc, id).BatchUpdate(ctx, data); err != nil {
		return "", fmt.Errorf("initialise spreadsheet %s: %w", id, err)
	}
	return id, nil
}

func headerRange[T any](s Schema[T]) *gsheets.ValueRange {
	return &gsheets.ValueRange{
		Range:  fmt.Sprintf("%s!A1:%s1", quoteSheet(s.Sheet), s.LastColumn()),
		Values: [][]any{s.Headers()},
	}
}
