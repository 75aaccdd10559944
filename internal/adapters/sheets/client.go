package sheets

import (
	"context"
	"fmt"
	"strconv"

	gsheets "google.golang.org/api/sheets/v4"
)

const (
	// RAW keeps cell text exactly as written; USER_ENTERED would turn ids
	// and dates into numbers.
	valueInputOption = "RAW"
	insertRows       = "INSERT_ROWS"
)

// Client is a thin wrapper over the Sheets values API for one spreadsheet.
type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
}

// NewClient binds svc to spreadsheetID.
func NewClient(svc *gsheets.Service, spreadsheetID string) *Client {
	return &Client{svc: svc, spreadsheetID: spreadsheetID}
}

// SpreadsheetID returns the bound spreadsheet.
func (c *Client) SpreadsheetID() string {
	return c.spreadsheetID
}

// Get reads a range as strings. Trailing empty rows and cells are omitted by
// the API, so rows may be ragged.
func (c *Client) Get(ctx context.Context, rng string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", rng, err)
	}
	out := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = cellString(v)
		}
		out[i] = cells
	}
	return out, nil
}

// Append adds rows after the last row of the table found in rng.
func (c *Client) Append(ctx context.Context, rng string, rows [][]any) error {
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, &gsheets.ValueRange{Values: rows}).
		ValueInputOption(valueInputOption).
		InsertDataOption(insertRows).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append %s: %w", rng, err)
	}
	return nil
}

// Update overwrites rng with rows.
func (c *Client) Update(ctx context.Context, rng string, rows [][]any) error {
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, &gsheets.ValueRange{Values: rows}).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("update %s: %w", rng, err)
	}
	return nil
}

// BatchUpdate writes several ranges in one request.
func (c *Client) BatchUpdate(ctx context.Context, data []*gsheets.ValueRange) error {
	if len(data) == 0 {
		return nil
	}
	req := &gsheets.BatchUpdateValuesRequest{ValueInputOption: valueInputOption, Data: data}
	if _, err := c.svc.Spreadsheets.Values.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("batch update %d ranges: %w", len(data), err)
	}
	return nil
}

// Clear blanks rng without deleting rows.
func (c *Client) Clear(ctx context.Context, rng string) error {
	if _, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, rng, &gsheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear %s: %w", rng, err)
	}
	return nil
}

// SheetID resolves a tab title to its numeric id.
func (c *Client) SheetID(ctx context.Context, title string) (int64, error) {
	ss, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("get spreadsheet: %w", err)
	}
	for _, s := range ss.Sheets {
		if s.Properties != nil && s.Properties.Title == title {
			return s.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("tab %q not found", title)
}

// InsertRows inserts count empty rows before the 0-based row index start.
func (c *Client) InsertRows(ctx context.Context, title string, start, count int) error {
	sheetID, err := c.SheetID(ctx, title)
	if err != nil {
		return err
	}
	req := &gsheets.BatchUpdateSpreadsheetRequest{Requests: []*gsheets.Request{{
		InsertDimension: &gsheets.InsertDimensionRequest{
			Range: &gsheets.DimensionRange{
				SheetId:    sheetID,
				Dimension:  "ROWS",
				StartIndex: int64(start),
				EndIndex:   int64(start + count),
			},
			InheritFromBefore: start > 0,
		},
	}}}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("insert %d rows into %s: %w", count, title, err)
	}
	return nil
}

// CreateSpreadsheet creates a spreadsheet with the given tabs and returns its id.
func CreateSpreadsheet(ctx context.Context, svc *gsheets.Service, title string, tabs []string) (string, error) {
	ss := &gsheets.Spreadsheet{Properties: &gsheets.SpreadsheetProperties{Title: title}}
	for i, tab := range tabs {
		ss.Sheets = append(ss.Sheets, &gsheets.Sheet{Properties: &gsheets.SheetProperties{Title: tab, Index: int64(i)}})
	}
	created, err := svc.Spreadsheets.Create(ss).Fields("spreadsheetId").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create spreadsheet: %w", err)
	}
	return created.SpreadsheetId, nil
}

func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return fmt.Sprint(v)
}
