package tables

import (
	"fmt"
)

// Selector identifies a column either by header name or by position.
// A name is resolved against a specific table's header exactly once, at
// setup time; positions are never re-resolved per row.
type Selector struct {
	name   string
	pos    int
	byName bool
}

// ByName selects a column by its header name.
func ByName(name string) Selector {
	return Selector{name: name, byName: true}
}

// ByPosition selects a column by its zero-based position.
func ByPosition(pos int) Selector {
	return Selector{pos: pos}
}

// Resolve returns the column position of the selector in the given table.
func (s Selector) Resolve(t *Table) (int, error) {
	if s.byName {
		return t.Column(s.name)
	}
	return s.pos, nil
}

// String describes the selector for diagnostics.
func (s Selector) String() string {
	if s.byName {
		return fmt.Sprintf("column %q", s.name)
	}
	return fmt.Sprintf("column #%d", s.pos)
}
