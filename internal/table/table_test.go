package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	t.Run("normalizes ragged rows", func(t *testing.T) {
		in := "a,b,c\n1,2,3\n4,5\n6,7,8,9\n"
		tbl, err := Read(strings.NewReader(in))

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, tbl.Header)
		require.Len(t, tbl.Rows, 3)
		assert.Equal(t, []string{"4", "5", ""}, tbl.Rows[1])
		assert.Equal(t, []string{"6", "7", "8"}, tbl.Rows[2])
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := Read(strings.NewReader(""))
		require.Error(t, err)
	})
}

func TestWriteRoundTrip(t *testing.T) {
	tbl := New([]string{"x", "y"})
	tbl.AppendRow([]string{"1", "two"})

	var buf bytes.Buffer
	require.NoError(t, tbl.Write(&buf))

	again, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, tbl.Header, again.Header)
	assert.Equal(t, tbl.Rows, again.Rows)
}

func TestColumnOperations(t *testing.T) {
	tbl := New([]string{"a", "b"})
	tbl.AppendRow([]string{"1", "2"})
	tbl.AppendRow([]string{"3", "4"})

	t.Run("column lookup", func(t *testing.T) {
		assert.Equal(t, []string{"2", "4"}, tbl.Column("b"))
		assert.Nil(t, tbl.Column("missing"))
		assert.Equal(t, -1, tbl.ColumnIndex("missing"))
	})

	t.Run("set existing column", func(t *testing.T) {
		tbl.SetColumn("b", []string{"x", "y"})
		assert.Equal(t, []string{"x", "y"}, tbl.Column("b"))
	})

	t.Run("set new column pads short values", func(t *testing.T) {
		tbl.SetColumn("c", []string{"only-first"})
		assert.Equal(t, []string{"only-first", ""}, tbl.Column("c"))
	})

	t.Run("ensure absent column synthesizes empty", func(t *testing.T) {
		tbl.EnsureColumn("d")
		assert.True(t, tbl.HasColumn("d"))
		assert.Equal(t, []string{"", ""}, tbl.Column("d"))
	})

	t.Run("ensure present column is a no-op", func(t *testing.T) {
		tbl.EnsureColumn("a")
		assert.Equal(t, []string{"1", "3"}, tbl.Column("a"))
	})
}

func TestRename(t *testing.T) {
	tbl := New([]string{"Flight No.", "Orbit", "Extra"})
	tbl.AppendRow([]string{"1", "LEO", "x"})

	// Mapping mentions a column that is not present; must not fail.
	tbl.Rename(map[string]string{
		"Flight No.": "flight_number",
		"Customer":   "customer",
	})

	assert.Equal(t, []string{"flight_number", "Orbit", "Extra"}, tbl.Header)
}

func TestTrimSpace(t *testing.T) {
	tbl := New([]string{" a ", "b\t"})
	tbl.AppendRow([]string{" 1 ", " two "})

	tbl.TrimSpace()

	assert.Equal(t, []string{"a", "b"}, tbl.Header)
	assert.Equal(t, []string{"1", "two"}, tbl.Rows[0])
}

func TestDedupe(t *testing.T) {
	tbl := New([]string{"a", "b"})
	tbl.AppendRow([]string{"1", "2"})
	tbl.AppendRow([]string{"1", "2"})
	tbl.AppendRow([]string{"3", "4"})

	removed := tbl.Dedupe()
	assert.Equal(t, 1, removed)
	assert.Len(t, tbl.Rows, 2)

	// Idempotent: a second pass removes nothing.
	assert.Equal(t, 0, tbl.Dedupe())
	assert.Len(t, tbl.Rows, 2)
}

func TestDropEmptyRows(t *testing.T) {
	tbl := New([]string{"a", "b"})
	tbl.AppendRow([]string{"", "  "})
	tbl.AppendRow([]string{"1", ""})

	assert.Equal(t, 1, tbl.DropEmptyRows())
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "1", tbl.Rows[0][0])
}

func TestDropUniformRows(t *testing.T) {
	tbl := New([]string{"a", "b", "c"})
	tbl.AppendRow([]string{"Second stage", "Second stage", "Second stage"})
	tbl.AppendRow([]string{"1", "LEO", "Success"})

	assert.Equal(t, 1, tbl.DropUniformRows())
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "1", tbl.Rows[0][0])
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/nested/out.csv"

	tbl := New([]string{"a"})
	tbl.AppendRow([]string{"1"})
	require.NoError(t, tbl.WriteFile(path))

	again, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, tbl.Rows, again.Rows)
}
