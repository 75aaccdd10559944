package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// fakeSpreadsheet is an in-memory stand-in for the Sheets v4 REST API. It
// implements the subset of endpoints the adapter calls.
type fakeSpreadsheet struct {
	mu       sync.Mutex
	id       string
	tabs     map[string][][]string
	sheetIDs map[string]int64
	requests []string
}

func newFakeSpreadsheet(id string) *fakeSpreadsheet {
	return &fakeSpreadsheet{id: id, tabs: map[string][][]string{}, sheetIDs: map[string]int64{}}
}

func (f *fakeSpreadsheet) addTab(name string, rows ...[]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tabs[name] = rows
	if _, ok := f.sheetIDs[name]; !ok {
		f.sheetIDs[name] = int64(len(f.sheetIDs) + 1)
	}
}

func (f *fakeSpreadsheet) tab(name string) [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return trimRows(f.tabs[name])
}

// start serves the fake and returns a client bound to it.
func (f *fakeSpreadsheet) start(t *testing.T) (*gsheets.Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(srv.Close)
	svc, err := gsheets.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return svc, srv
}

func (f *fakeSpreadsheet) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)

	path := strings.TrimPrefix(r.URL.Path, "/v4/spreadsheets")
	if path == "" && r.Method == http.MethodPost {
		var ss gsheets.Spreadsheet
		if !decodeBody(w, r, &ss) {
			return
		}
		for _, s := range ss.Sheets {
			f.tabs[s.Properties.Title] = nil
			f.sheetIDs[s.Properties.Title] = int64(len(f.sheetIDs) + 1)
		}
		writeJSON(w, gsheets.Spreadsheet{SpreadsheetId: f.id})
		return
	}

	rest, ok := strings.CutPrefix(path, "/"+f.id)
	if !ok {
		http.Error(w, `{"error":{"code":404,"message":"spreadsheet not found"}}`, http.StatusNotFound)
		return
	}
	switch {
	case rest == "" && r.Method == http.MethodGet:
		ss := gsheets.Spreadsheet{SpreadsheetId: f.id}
		for title, id := range f.sheetIDs {
			ss.Sheets = append(ss.Sheets, &gsheets.Sheet{Properties: &gsheets.SheetProperties{Title: title, SheetId: id}})
		}
		writeJSON(w, ss)
	case rest == ":batchUpdate":
		var req gsheets.BatchUpdateSpreadsheetRequest
		if !decodeBody(w, r, &req) {
			return
		}
		for _, q := range req.Requests {
			if q.InsertDimension != nil {
				f.insertRows(q.InsertDimension.Range)
			}
		}
		writeJSON(w, gsheets.BatchUpdateSpreadsheetResponse{SpreadsheetId: f.id})
	case rest == "/values:batchUpdate":
		var req gsheets.BatchUpdateValuesRequest
		if !decodeBody(w, r, &req) {
			return
		}
		for _, vr := range req.Data {
			f.write(vr.Range, vr.Values)
		}
		writeJSON(w, gsheets.BatchUpdateValuesResponse{SpreadsheetId: f.id})
	case strings.HasPrefix(rest, "/values/"):
		f.serveValues(w, r, strings.TrimPrefix(rest, "/values/"))
	default:
		http.Error(w, "unexpected request "+r.Method+" "+r.URL.Path, http.StatusNotImplemented)
	}
}

func (f *fakeSpreadsheet) serveValues(w http.ResponseWriter, r *http.Request, rng string) {
	switch {
	case strings.HasSuffix(rng, ":append"):
		var vr gsheets.ValueRange
		if !decodeBody(w, r, &vr) {
			return
		}
		a := parseA1(strings.TrimSuffix(rng, ":append"))
		rows := trimRows(f.tabs[a.tab])
		f.tabs[a.tab] = rows
		f.write(fmt.Sprintf("%s!A%d", a.tab, len(rows)+1), vr.Values)
		writeJSON(w, gsheets.AppendValuesResponse{SpreadsheetId: f.id})
	case strings.HasSuffix(rng, ":clear"):
		a := parseA1(strings.TrimSuffix(rng, ":clear"))
		rows := f.tabs[a.tab]
		for i := a.startRow - 1; i < a.endRow && i < len(rows); i++ {
			for j := a.startCol; j <= a.endCol && j < len(rows[i]); j++ {
				rows[i][j] = ""
			}
		}
		writeJSON(w, gsheets.ClearValuesResponse{SpreadsheetId: f.id})
	case r.Method == http.MethodGet:
		a := parseA1(rng)
		rows, ok := f.tabs[a.tab]
		if !ok {
			http.Error(w, `{"error":{"code":400,"message":"Unable to parse range"}}`, http.StatusBadRequest)
			return
		}
		values := make([][]any, 0, len(rows))
		for _, row := range trimRows(rows) {
			cells := make([]any, 0, len(row))
			for _, c := range trimCells(row) {
				cells = append(cells, c)
			}
			values = append(values, cells)
		}
		writeJSON(w, gsheets.ValueRange{Range: rng, MajorDimension: "ROWS", Values: values})
	case r.Method == http.MethodPut:
		var vr gsheets.ValueRange
		if !decodeBody(w, r, &vr) {
			return
		}
		f.write(rng, vr.Values)
		writeJSON(w, gsheets.UpdateValuesResponse{SpreadsheetId: f.id})
	default:
		http.Error(w, "unexpected values request", http.StatusNotImplemented)
	}
}

// write stores values at the top-left cell of rng. Nil cells are skipped.
func (f *fakeSpreadsheet) write(rng string, values [][]any) {
	a := parseA1(rng)
	rows := f.tabs[a.tab]
	for i, vals := range values {
		r := a.startRow - 1 + i
		for len(rows) <= r {
			rows = append(rows, nil)
		}
		for j, v := range vals {
			if v == nil {
				continue
			}
			c := a.startCol + j
			for len(rows[r]) <= c {
				rows[r] = append(rows[r], "")
			}
			rows[r][c] = fmt.Sprint(v)
		}
	}
	f.tabs[a.tab] = rows
}

func (f *fakeSpreadsheet) insertRows(dr *gsheets.DimensionRange) {
	for title, id := range f.sheetIDs {
		if id != dr.SheetId {
			continue
		}
		rows := f.tabs[title]
		start := int(dr.StartIndex)
		for len(rows) < start {
			rows = append(rows, nil)
		}
		blank := make([][]string, dr.EndIndex-dr.StartIndex)
		rows = append(rows[:start], append(blank, rows[start:]...)...)
		f.tabs[title] = rows
	}
}

type a1 struct {
	tab      string
	startCol int
	endCol   int
	startRow int
	endRow   int
}

// parseA1 understands Tab, 'Tab'!A1, Tab!A:E and Tab!A2:E9.
func parseA1(rng string) a1 {
	tab, cells, _ := strings.Cut(rng, "!")
	if strings.HasPrefix(tab, "'") {
		tab = strings.ReplaceAll(strings.Trim(tab, "'"), "''", "'")
	}
	out := a1{tab: tab, startRow: 1, endRow: 1 << 20, endCol: 1 << 10}
	if cells == "" {
		return out
	}
	from, to, hasTo := strings.Cut(cells, ":")
	out.startCol, out.startRow = splitCell(from, 1)
	if hasTo {
		out.endCol, out.endRow = splitCell(to, 1<<20)
	} else {
		out.endCol, out.endRow = out.startCol, out.startRow
	}
	return out
}

func splitCell(ref string, defaultRow int) (int, int) {
	i := 0
	col := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		col = col*26 + int(ref[i]-'A'+1)
		i++
	}
	row := defaultRow
	if n, err := strconv.Atoi(ref[i:]); err == nil {
		row = n
	}
	return col - 1, row
}

func trimRows(rows [][]string) [][]string {
	end := len(rows)
	for end > 0 && len(trimCells(rows[end-1])) == 0 {
		end--
	}
	return rows[:end]
}

func trimCells(row []string) []string {
	end := len(row)
	for end > 0 && row[end-1] == "" {
		end--
	}
	return row[:end]
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
