package sheets

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// VersionColumn is the name of the trailing column that records which schema
// version wrote a row.
const VersionColumn = "schema_version"

// Column maps one field of T to one sheet column.
type Column[T any] struct {
	Name   string
	Encode func(v *T) (string, error)
	Decode func(cell string, v *T) error
}

// Schema is the ordered, versioned column map of one tab. Columns are written
// in order followed by the version column. New fields are appended to the end
// together with a version bump, never inserted.
type Schema[T any] struct {
	Sheet   string
	Version int
	Columns []Column[T]
	ID      func(v *T) string
}

// Width is the number of columns a row occupies, including the version.
func (s Schema[T]) Width() int {
	return len(s.Columns) + 1
}

// Headers is the header row of the tab.
func (s Schema[T]) Headers() []any {
	out := make([]any, 0, s.Width())
	for _, c := range s.Columns {
		out = append(out, c.Name)
	}
	return append(out, VersionColumn)
}

// LastColumn is the letter of the version column.
func (s Schema[T]) LastColumn() string {
	return columnLetter(s.Width())
}

// RowRange addresses one absolute row, e.g. Invoices!A5:AH5.
func (s Schema[T]) RowRange(row int) string {
	return fmt.Sprintf("%s!A%d:%s%d", quoteSheet(s.Sheet), row, s.LastColumn(), row)
}

// AppendRange is the range used to append rows.
func (s Schema[T]) AppendRange() string {
	return fmt.Sprintf("%s!A:%s", quoteSheet(s.Sheet), s.LastColumn())
}

// layout tells where each schema column lives in the sheet. It is derived
// from the header row when one exists so reordered columns still decode.
type layout struct {
	index   []int
	version int
	width   int
	header  bool
	missing []int
}

func positionalLayout(width int) layout {
	l := layout{index: make([]int, width-1), version: width - 1, width: width}
	for i := range l.index {
		l.index[i] = i
	}
	return l
}

// layoutFor inspects the first row. When it holds the schema's id column name
// it is treated as a header and columns are matched by name.
func (s Schema[T]) layoutFor(first []string) layout {
	if len(first) == 0 || len(s.Columns) == 0 || !strings.EqualFold(strings.TrimSpace(first[0]), s.Columns[0].Name) {
		return positionalLayout(s.Width())
	}
	byName := make(map[string]int, len(first))
	for i, name := range first {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, dup := byName[name]; name != "" && !dup {
			byName[name] = i
		}
	}
	l := layout{index: make([]int, len(s.Columns)), version: -1, width: len(first), header: true}
	for i, c := range s.Columns {
		idx, ok := byName[strings.ToLower(c.Name)]
		if !ok {
			idx = -1
			l.missing = append(l.missing, i)
		}
		l.index[i] = idx
	}
	if idx, ok := byName[VersionColumn]; ok {
		l.version = idx
	}
	return l
}

// extend appends columns the header lacks and returns the header cells that
// must be written for them.
func (s Schema[T]) extend(l *layout) map[int]string {
	added := map[int]string{}
	for _, i := range l.missing {
		l.index[i] = l.width
		added[l.width] = s.Columns[i].Name
		l.width++
	}
	l.missing = nil
	if l.version < 0 {
		l.version = l.width
		added[l.width] = VersionColumn
		l.width++
	}
	return added
}

// Decode reads a row. Cell errors do not abort decoding: the field keeps its
// zero value and the errors are returned together.
func (s Schema[T]) Decode(l layout, cells []string) (T, []error) {
	var v T
	var errs []error
	for i, c := range s.Columns {
		idx := l.index[i]
		if idx < 0 || idx >= len(cells) || c.Decode == nil {
			continue
		}
		cell := cells[idx]
		if strings.TrimSpace(cell) == "" {
			continue
		}
		if err := c.Decode(cell, &v); err != nil {
			errs = append(errs, fmt.Errorf("column %s: %w", c.Name, err))
		}
	}
	return v, errs
}

// EncodeInto writes v over existing row cells. Cells of columns unknown to
// the schema are kept.
func (s Schema[T]) EncodeInto(l layout, existing []string, v *T) ([]any, error) {
	row := make([]any, l.width)
	for i := range row {
		row[i] = ""
		if i < len(existing) {
			row[i] = existing[i]
		}
	}
	for i, c := range s.Columns {
		idx := l.index[i]
		if idx < 0 {
			continue
		}
		cell, err := c.Encode(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s.%s: %w", s.Sheet, c.Name, err)
		}
		row[idx] = cell
	}
	if l.version >= 0 {
		row[l.version] = strconv.Itoa(s.Version)
	}
	return row, nil
}

// Encode writes v positionally.
func (s Schema[T]) Encode(v *T) ([]any, error) {
	return s.EncodeInto(positionalLayout(s.Width()), nil, v)
}

// columnLetter converts a 1-based column number to A1 notation letters.
func columnLetter(n int) string {
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('A' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}

func quoteSheet(name string) string {
	if strings.ContainsAny(name, " '!") {
		return "'" + strings.ReplaceAll(name, "'", "''") + "'"
	}
	return name
}

// Column builders. Each takes an accessor returning a pointer to the field.

func stringCol[T any](name string, field func(*T) *string) Column[T] {
	return Column[T]{
		Name:   name,
		Encode: func(v *T) (string, error) { return *field(v), nil },
		Decode: func(cell string, v *T) error { *field(v) = cell; return nil },
	}
}

// typedStringCol stores string-kinded enums.
func typedStringCol[T any, S ~string](name string, field func(*T) *S) Column[T] {
	return Column[T]{
		Name:   name,
		Encode: func(v *T) (string, error) { return string(*field(v)), nil },
		Decode: func(cell string, v *T) error { *field(v) = S(strings.TrimSpace(cell)); return nil },
	}
}

func jsonCol[T any, V any](name string, field func(*T) *V) Column[T] {
	return Column[T]{
		Name: name,
		Encode: func(v *T) (string, error) {
			b, err := json.Marshal(field(v))
			if err != nil {
				return "", err
			}
			return string(b), nil
		},
		Decode: func(cell string, v *T) error {
			var out V
			if err := json.Unmarshal([]byte(cell), &out); err != nil {
				return err
			}
			*field(v) = out
			return nil
		},
	}
}

func decimalCol[T any](name string, field func(*T) *decimal.Decimal) Column[T] {
	return Column[T]{
		Name:   name,
		Encode: func(v *T) (string, error) { return field(v).String(), nil },
		Decode: func(cell string, v *T) error {
			d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(cell), ",", ""))
			if err != nil {
				return err
			}
			*field(v) = d
			return nil
		},
	}
}

func intCol[T any](name string, field func(*T) *int) Column[T] {
	return Column[T]{
		Name: name,
		Encode: func(v *T) (string, error) {
			if *field(v) == 0 {
				return "", nil
			}
			return strconv.Itoa(*field(v)), nil
		},
		Decode: func(cell string, v *T) error {
			n, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return err
			}
			*field(v) = n
			return nil
		},
	}
}

// timeCol keeps full precision. dateCol keeps calendar dates only.
func timeCol[T any](name string, field func(*T) *time.Time) Column[T] {
	return timeLayoutCol(name, time.RFC3339Nano, field)
}

func dateCol[T any](name string, field func(*T) *time.Time) Column[T] {
	return timeLayoutCol(name, dateLayout, field)
}

const dateLayout = "2006-01-02"

func timeLayoutCol[T any](name, layout string, field func(*T) *time.Time) Column[T] {
	return Column[T]{
		Name: name,
		Encode: func(v *T) (string, error) {
			if field(v).IsZero() {
				return "", nil
			}
			return field(v).UTC().Format(layout), nil
		},
		Decode: func(cell string, v *T) error {
			cell = strings.TrimSpace(cell)
			t, err := time.Parse(layout, cell)
			if err != nil {
				// Rows written by hand may use the other layout.
				var alt error
				if t, alt = time.Parse(time.RFC3339Nano, cell); alt != nil {
					if t, alt = time.Parse(dateLayout, cell); alt != nil {
						return err
					}
				}
			}
			*field(v) = t
			return nil
		},
	}
}
