package sheets

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/SscSPs/sheetbill/internal/core/domain"
	portsrepo "github.com/SscSPs/sheetbill/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	gsheets "google.golang.org/api/sheets/v4"
)

// SectionMarker in column A starts a section named by column B.
const SectionMarker = "Section"

var settingsHeaders = []any{"Key", "Value", "Type", "Updated At", "Updated By"}

// settingsRepository stores settings as key/value rows in Settings!A:E,
// grouped under marker rows. Rows are blanked, never deleted.
type settingsRepository struct {
	client    *Client
	updatedBy string
	now       func() time.Time
}

// NewSettingsRepository returns the Settings tab repository. updatedBy is
// written to column E of every row it touches.
func NewSettingsRepository(client *Client, updatedBy string) portsrepo.SettingsRepositoryFacade {
	return &settingsRepository{client: client, updatedBy: updatedBy, now: time.Now}
}

var _ portsrepo.SettingsRepositoryFacade = (*settingsRepository)(nil)

// sectionBounds are 0-based indexes into the rows read from A1: the marker
// row and the first row after the section.
type sectionBounds struct {
	marker int
	end    int
}

func (r *settingsRepository) rows(ctx context.Context) ([][]string, error) {
	rows, err := r.client.Get(ctx, TabSettings+"!A1:E")
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	return rows, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func isMarker(row []string) bool {
	return cell(row, 0) == SectionMarker && cell(row, 1) != ""
}

func findSection(rows [][]string, name string) (sectionBounds, bool) {
	for i, row := range rows {
		if !isMarker(row) || cell(row, 1) != name {
			continue
		}
		end := len(rows)
		for j := i + 1; j < len(rows); j++ {
			if isMarker(rows[j]) {
				end = j
				break
			}
		}
		return sectionBounds{marker: i, end: end}, true
	}
	return sectionBounds{}, false
}

func (r *settingsRepository) ListSections(ctx context.Context) ([]domain.SettingsSection, error) {
	rows, err := r.rows(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.SettingsSection
	var current *domain.SettingsSection
	for _, row := range rows {
		if isMarker(row) {
			out = append(out, domain.SettingsSection{Name: cell(row, 1), Values: domain.SectionValues{}})
			current = &out[len(out)-1]
			continue
		}
		key := cell(row, 0)
		if current == nil || key == "" {
			continue
		}
		value := ""
		if len(row) > 1 {
			value = row[1]
		}
		current.Values[key] = value
	}
	return out, nil
}

func (r *settingsRepository) UpdateSection(ctx context.Context, name string, values domain.SectionValues) error {
	rows, err := r.rows(ctx)
	if err != nil {
		return err
	}
	bounds, ok := findSection(rows, name)
	if !ok {
		return r.appendSection(ctx, name, values)
	}

	existing := map[string]int{}
	var free []int
	for i := bounds.marker + 1; i < bounds.end; i++ {
		if key := cell(rows[i], 0); key != "" {
			existing[key] = i
		} else {
			free = append(free, i)
		}
	}

	stamp := r.now().UTC().Format(time.RFC3339)
	var data []*gsheets.ValueRange
	write := func(idx int, cells []any) {
		data = append(data, &gsheets.ValueRange{
			Range:  fmt.Sprintf("%s!A%d:E%d", TabSettings, idx+1, idx+1),
			Values: [][]any{cells},
		})
	}

	var added []string
	for _, key := range sortedKeys(values) {
		value := values[key]
		if idx, ok := existing[key]; ok {
			if value == "" {
				write(idx, []any{"", "", "", "", ""})
				continue
			}
			write(idx, r.keyRow(key, value, stamp))
			continue
		}
		if value != "" {
			added = append(added, key)
		}
	}

	// New keys fill blank rows inside the section first, then rows are
	// inserted before the next section. The last section grows into the
	// empty rows below it.
	next := bounds.end
	inserted := 0
	for _, key := range added {
		var idx int
		if len(free) > 0 {
			idx, free = free[0], free[1:]
		} else {
			idx = next
			next++
			inserted++
		}
		write(idx, r.keyRow(key, values[key], stamp))
	}
	if inserted > 0 && bounds.end < len(rows) {
		if err := r.client.InsertRows(ctx, TabSettings, bounds.end, inserted); err != nil {
			return fmt.Errorf("grow settings section %s: %w", name, err)
		}
	}
	if err := r.client.BatchUpdate(ctx, data); err != nil {
		return fmt.Errorf("update settings section %s: %w", name, err)
	}
	return nil
}

func (r *settingsRepository) CreateSection(ctx context.Context, name string, values domain.SectionValues) error {
	rows, err := r.rows(ctx)
	if err != nil {
		return err
	}
	if _, ok := findSection(rows, name); ok {
		return fmt.Errorf("settings section %q: %w", name, apperrors.ErrDuplicate)
	}
	return r.appendSection(ctx, name, values)
}

func (r *settingsRepository) appendSection(ctx context.Context, name string, values domain.SectionValues) error {
	stamp := r.now().UTC().Format(time.RFC3339)
	rows := [][]any{{SectionMarker, name, "", stamp, r.updatedBy}}
	for _, key := range sortedKeys(values) {
		if values[key] != "" {
			rows = append(rows, r.keyRow(key, values[key], stamp))
		}
	}
	if err := r.client.Append(ctx, TabSettings+"!A:E", rows); err != nil {
		return fmt.Errorf("create settings section %s: %w", name, err)
	}
	return nil
}

func (r *settingsRepository) DeleteSection(ctx context.Context, name string) error {
	rows, err := r.rows(ctx)
	if err != nil {
		return err
	}
	bounds, ok := findSection(rows, name)
	if !ok {
		return fmt.Errorf("settings section %q: %w", name, apperrors.ErrNotFound)
	}
	rng := fmt.Sprintf("%s!A%d:E%d", TabSettings, bounds.marker+1, bounds.end)
	if err := r.client.Clear(ctx, rng); err != nil {
		return fmt.Errorf("delete settings section %s: %w", name, err)
	}
	return nil
}

func (r *settingsRepository) keyRow(key, value, stamp string) []any {
	return []any{key, value, valueType(value), stamp, r.updatedBy}
}

// valueType fills the informational Type column.
func valueType(v string) string {
	t := strings.TrimSpace(v)
	switch {
	case strings.HasPrefix(t, "{") || strings.HasPrefix(t, "["):
		return "json"
	case t == "true" || t == "false":
		return "boolean"
	}
	if _, err := decimal.NewFromString(t); err == nil {
		return "number"
	}
	return "string"
}

func sortedKeys(values domain.SectionValues) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// settingsRows renders default settings for a new spreadsheet, header first.
func settingsRows(s domain.Settings, updatedBy string, now time.Time) ([][]any, error) {
	stamp := now.UTC().Format(time.RFC3339)
	rows := [][]any{settingsHeaders}
	r := &settingsRepository{updatedBy: updatedBy}
	for _, name := range domain.KnownSections {
		values, err := s.EncodeSection(name)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []any{SectionMarker, name, "", stamp, updatedBy})
		for _, key := range sortedKeys(values) {
			if values[key] != "" {
				rows = append(rows, r.keyRow(key, values[key], stamp))
			}
		}
	}
	return rows, nil
}
