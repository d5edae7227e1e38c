// Package table holds a small row-oriented table for data whose column set is
// only known at runtime, such as the scraped wiki launch list. Typed records
// use struct-based CSV marshalling instead; this type exists for the stages
// that must tolerate schema drift.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Table is a header plus string rows. Rows always have exactly len(Header)
// cells; readers pad or truncate ragged input.
type Table struct {
	Header []string
	Rows   [][]string
}

// New creates an empty table with the given header.
func New(header []string) *Table {
	return &Table{Header: append([]string(nil), header...)}
}

// Read parses CSV into a Table. Ragged rows are normalized to the header
// width rather than rejected, since scraped tables are rarely rectangular.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read csv: empty input")
	}

	t := New(records[0])
	for _, rec := range records[1:] {
		t.AppendRow(rec)
	}
	return t, nil
}

// ReadFile reads a CSV file into a Table.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Write serializes the table as CSV.
func (t *Table) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the table as CSV, creating parent directories as needed.
func (t *Table) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := t.Write(f); err != nil {
		return err
	}
	return f.Close()
}

// AppendRow adds a row, padding or truncating it to the header width.
func (t *Table) AppendRow(row []string) {
	normalized := make([]string, len(t.Header))
	copy(normalized, row)
	t.Rows = append(t.Rows, normalized)
}

// ColumnIndex returns the position of the named column, -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column is present.
func (t *Table) HasColumn(name string) bool { return t.ColumnIndex(name) >= 0 }

// Column returns the values of the named column, nil if absent.
func (t *Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out
}

// SetColumn replaces or appends the named column. Values shorter than the row
// count are padded with empty strings; extra values are dropped.
func (t *Table) SetColumn(name string, values []string) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		idx = len(t.Header)
		t.Header = append(t.Header, name)
		for i, row := range t.Rows {
			t.Rows[i] = append(row, "")
		}
	}
	for i := range t.Rows {
		if i < len(values) {
			t.Rows[i][idx] = values[i]
		} else {
			t.Rows[i][idx] = ""
		}
	}
}

// EnsureColumn synthesizes the named column, empty, if it is absent.
// Renaming a column that never existed in the source must not fail; this is
// how downstream consumers get their optional canonical columns.
func (t *Table) EnsureColumn(name string) {
	if t.HasColumn(name) {
		return
	}
	t.SetColumn(name, nil)
}

// Rename applies a source-to-canonical header mapping. Source columns that
// are absent are skipped silently.
func (t *Table) Rename(mapping map[string]string) {
	for i, h := range t.Header {
		if canonical, ok := mapping[h]; ok {
			t.Header[i] = canonical
		}
	}
}

// TrimSpace strips leading and trailing whitespace from every header and cell.
func (t *Table) TrimSpace() {
	for i, h := range t.Header {
		t.Header[i] = strings.TrimSpace(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			row[i] = strings.TrimSpace(cell)
		}
	}
}

// Dedupe removes exact duplicate rows, keeping first occurrences in order.
// Returns the number of rows removed. Running it twice is a no-op.
func (t *Table) Dedupe() int {
	seen := make(map[string]bool, len(t.Rows))
	kept := t.Rows[:0]
	removed := 0
	for _, row := range t.Rows {
		key := strings.Join(row, "\x1f")
		if seen[key] {
			removed++
			continue
		}
		seen[key] = true
		kept = append(kept, row)
	}
	t.Rows = kept
	return removed
}

// DropEmptyRows removes rows whose cells are all empty. Returns the count.
func (t *Table) DropEmptyRows() int {
	kept := t.Rows[:0]
	removed := 0
	for _, row := range t.Rows {
		if rowEmpty(row) {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	t.Rows = kept
	return removed
}

// DropUniformRows removes rows where every cell equals the first cell, a
// corruption pattern produced by merged cells in the source table. The
// heuristic can in principle drop a legitimate all-identical row; it is kept
// because the scrape emits such rows for section separators.
func (t *Table) DropUniformRows() int {
	kept := t.Rows[:0]
	removed := 0
	for _, row := range t.Rows {
		if len(row) > 1 && rowUniform(row) {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	t.Rows = kept
	return removed
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func rowUniform(row []string) bool {
	for _, cell := range row[1:] {
		if cell != row[0] {
			return false
		}
	}
	return true
}
