// Package tables provides the in-memory sheet model for crosscheck: a named
// rectangular grid of string cells with a header row, plus the column
// operations the reconciliation engine relies on. Rectangularity is the
// producer's contract and is only checked where an operation would otherwise
// read past the end of a row.
package tables

import (
	"github.com/rs/zerolog"

	"github.com/crosscheckhq/crosscheck/pkg/errors"
)

// Table is a loaded sheet. Row 0 is the header row, rows 1..N are data rows.
type Table struct {
	// Name identifies the sheet in diagnostics, typically the file basename.
	Name string

	// Rows holds every non-blank row, header first.
	Rows [][]string
}

// Header returns the header row, or nil for an empty table.
func (t *Table) Header() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// NumRows returns the total number of rows including the header.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// Column returns the position of the named column in the header.
func (t *Table) Column(name string) (int, error) {
	for i, h := range t.Header() {
		if h == name {
			return i, nil
		}
	}
	return 0, errors.NewColumnNotFoundError(t.Name, name)
}

// RequiredColumns resolves every given name to its header position.
// It fails with a MissingColumnError naming the first absent column.
func (t *Table) RequiredColumns(names ...string) (map[string]int, error) {
	positions := make(map[string]int, len(names))
	for _, name := range names {
		pos, err := t.Column(name)
		if err != nil {
			return nil, errors.NewMissingColumnError(t.Name, name)
		}
		positions[name] = pos
	}
	return positions, nil
}

// DeleteColumn removes the selected column from every row.
// It fails with a RowTooShortError when a row has fewer cells than the
// resolved position, which signals a non-rectangular sheet.
func (t *Table) DeleteColumn(sel Selector) error {
	pos, err := sel.Resolve(t)
	if err != nil {
		return err
	}
	return t.deleteAt(pos)
}

// deleteAt removes the cell at pos from every row.
func (t *Table) deleteAt(pos int) error {
	for i, row := range t.Rows {
		if pos >= len(row) {
			return &errors.RowTooShortError{
				Sheet:    t.Name,
				Row:      i,
				Width:    len(row),
				Position: pos,
			}
		}
		t.Rows[i] = append(row[:pos], row[pos+1:]...)
	}
	return nil
}

// Whitelist deletes every column whose header name is not in keep. Names
// resolve against this table's own header, and columns are removed in
// descending position order so earlier deletions cannot shift later ones.
// Applying the same whitelist twice is a no-op the second time.
func (t *Table) Whitelist(keep []string, logger *zerolog.Logger) error {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	keepSet := make(map[string]struct{}, len(keep))
	for _, name := range keep {
		keepSet[name] = struct{}{}
	}

	header := t.Header()
	for pos := len(header) - 1; pos >= 0; pos-- {
		name := header[pos]
		if _, ok := keepSet[name]; ok {
			continue
		}
		if err := t.deleteAt(pos); err != nil {
			return err
		}
		logger.Info().
			Str("sheet", t.Name).
			Str("column", name).
			Msg("Deleted column, not in whitelist")
	}
	return nil
}
