package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/SscSPs/sheetbill/internal/middleware"
)

// record is a decoded row and its absolute (1-based) sheet row.
type record[T any] struct {
	row   int
	cells []string
	value T
}

type snapshot[T any] struct {
	layout  layout
	records []record[T]
	empty   bool
}

// table implements list, find, append and rewrite for a schema-backed tab.
type table[T any] struct {
	client *Client
	schema Schema[T]
}

func newTable[T any](client *Client, schema Schema[T]) *table[T] {
	return &table[T]{client: client, schema: schema}
}

// load reads the whole tab. Rows without an id are skipped, and cells that
// fail to decode are logged and left at their zero value.
func (t *table[T]) load(ctx context.Context) (*snapshot[T], error) {
	rows, err := t.client.Get(ctx, quoteSheet(t.schema.Sheet))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", t.schema.Sheet, err)
	}

	var first []string
	if len(rows) > 0 {
		first = rows[0]
	}
	snap := &snapshot[T]{layout: t.schema.layoutFor(first), empty: len(rows) == 0}
	start := 0
	if snap.layout.header {
		start = 1
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	idCol := snap.layout.index[0]
	for i := start; i < len(rows); i++ {
		cells := rows[i]
		if idCol < 0 || idCol >= len(cells) || strings.TrimSpace(cells[idCol]) == "" {
			continue
		}
		value, errs := t.schema.Decode(snap.layout, cells)
		if len(errs) > 0 {
			logger.Warn("Malformed cells in sheet row",
				slog.String("sheet", t.schema.Sheet),
				slog.Int("row", i+1),
				slog.String("error", errors.Join(errs...).Error()))
		}
		snap.records = append(snap.records, record[T]{row: i + 1, cells: cells, value: value})
	}
	return snap, nil
}

func (t *table[T]) list(ctx context.Context) ([]T, error) {
	snap, err := t.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(snap.records))
	for _, r := range snap.records {
		out = append(out, r.value)
	}
	return out, nil
}

func (snap *snapshot[T]) find(schema Schema[T], id string) (*record[T], bool) {
	for i := range snap.records {
		if schema.ID(&snap.records[i].value) == id {
			return &snap.records[i], true
		}
	}
	return nil, false
}

func (t *table[T]) find(ctx context.Context, id string) (*T, error) {
	snap, err := t.load(ctx)
	if err != nil {
		return nil, err
	}
	rec, ok := snap.find(t.schema, id)
	if !ok {
		return nil, fmt.Errorf("%s %q: %w", t.schema.Sheet, id, apperrors.ErrNotFound)
	}
	v := rec.value
	return &v, nil
}

// readRow decodes one absolute row. The header row and rows without an id
// are reported as not found.
func (t *table[T]) readRow(ctx context.Context, row int) (*T, error) {
	if row < 1 {
		return nil, fmt.Errorf("%w: row must be positive", apperrors.ErrValidation)
	}
	snap, err := t.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range snap.records {
		if r.row == row {
			v := r.value
			return &v, nil
		}
	}
	return nil, fmt.Errorf("%s row %d: %w", t.schema.Sheet, row, apperrors.ErrNotFound)
}

// append adds v as a new row. Duplicate ids are rejected.
func (t *table[T]) append(ctx context.Context, v T) error {
	snap, err := t.load(ctx)
	if err != nil {
		return err
	}
	id := t.schema.ID(&v)
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %s row needs an id", apperrors.ErrValidation, t.schema.Sheet)
	}
	if _, exists := snap.find(t.schema, id); exists {
		return fmt.Errorf("%s %q: %w", t.schema.Sheet, id, apperrors.ErrDuplicate)
	}
	if snap.empty {
		if err := t.writeHeader(ctx, &snap.layout); err != nil {
			return err
		}
	} else if err := t.ensureHeader(ctx, &snap.layout); err != nil {
		return err
	}
	row, err := t.schema.EncodeInto(snap.layout, nil, &v)
	if err != nil {
		return err
	}
	return t.client.Append(ctx, fmt.Sprintf("%s!A:%s", quoteSheet(t.schema.Sheet), columnLetter(snap.layout.width)), [][]any{row})
}

// rewrite locates v's row by id and overwrites it in full.
func (t *table[T]) rewrite(ctx context.Context, v T) error {
	snap, err := t.load(ctx)
	if err != nil {
		return err
	}
	id := t.schema.ID(&v)
	rec, ok := snap.find(t.schema, id)
	if !ok {
		return fmt.Errorf("%s %q: %w", t.schema.Sheet, id, apperrors.ErrNotFound)
	}
	if err := t.ensureHeader(ctx, &snap.layout); err != nil {
		return err
	}
	row, err := t.schema.EncodeInto(snap.layout, rec.cells, &v)
	if err != nil {
		return err
	}
	rng := fmt.Sprintf("%s!A%d:%s%d", quoteSheet(t.schema.Sheet), rec.row, columnLetter(snap.layout.width), rec.row)
	return t.client.Update(ctx, rng, [][]any{row})
}

// writeHeader starts an empty tab with the schema's header row.
func (t *table[T]) writeHeader(ctx context.Context, l *layout) error {
	rng := fmt.Sprintf("%s!A1:%s1", quoteSheet(t.schema.Sheet), t.schema.LastColumn())
	if err := t.client.Update(ctx, rng, [][]any{t.schema.Headers()}); err != nil {
		return fmt.Errorf("write %s header: %w", t.schema.Sheet, err)
	}
	*l = positionalLayout(t.schema.Width())
	l.header = true
	return nil
}

// ensureHeader adds header cells for schema columns a header-mapped tab is
// missing, so rows written by a newer schema version stay addressable.
func (t *table[T]) ensureHeader(ctx context.Context, l *layout) error {
	if !l.header || (len(l.missing) == 0 && l.version >= 0) {
		return nil
	}
	added := t.schema.extend(l)
	// Nil cells are skipped by the API, so existing header text is untouched.
	header := make([]any, l.width)
	for idx, name := range added {
		header[idx] = name
	}
	rng := fmt.Sprintf("%s!A1:%s1", quoteSheet(t.schema.Sheet), columnLetter(l.width))
	if err := t.client.Update(ctx, rng, [][]any{header}); err != nil {
		return fmt.Errorf("extend %s header: %w", t.schema.Sheet, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Extended sheet header", slog.String("sheet", t.schema.Sheet), slog.Int("columns", len(added)))
	return nil
}
