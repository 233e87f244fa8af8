package reconcile

// CellDiff holds the two disagreeing values of a single cell. Row is the
// data row index, counting the header as row 0.
type CellDiff struct {
	Row int
	A   string
	B   string
}

// ColumnDiffs groups the recorded differences of one column.
type ColumnDiffs struct {
	Column int
	Cells  []CellDiff
}

// Diffs is a two-level ordered record of cell differences: the outer level
// iterates columns in header order, the inner level iterates rows in
// ascending row number. Both orderings are a contract, not an accident of
// the backing maps.
type Diffs struct {
	order []int
	cells map[int][]CellDiff
	total int
}

// NewDiffs creates an empty difference record for a table with the given
// number of columns. Every column gets an outer slot up front so that
// iteration order equals header order no matter which column records a
// difference first.
func NewDiffs(columns int) *Diffs {
	d := &Diffs{
		order: make([]int, columns),
		cells: make(map[int][]CellDiff, columns),
	}
	for i := range d.order {
		d.order[i] = i
	}
	return d
}

// Add records a difference at (column, row). Rows must be added in
// ascending order per column; the engine's row loop guarantees this.
func (d *Diffs) Add(column, row int, a, b string) {
	d.cells[column] = append(d.cells[column], CellDiff{Row: row, A: a, B: b})
	d.total++
}

// Columns returns the columns that recorded at least one difference, in
// header order. Columns where every row matched are omitted entirely.
func (d *Diffs) Columns() []ColumnDiffs {
	var cols []ColumnDiffs
	for _, pos := range d.order {
		if len(d.cells[pos]) == 0 {
			continue
		}
		cols = append(cols, ColumnDiffs{Column: pos, Cells: d.cells[pos]})
	}
	return cols
}

// Total returns the number of recorded cell differences.
func (d *Diffs) Total() int {
	return d.total
}

// Empty reports whether no differences were recorded.
func (d *Diffs) Empty() bool {
	return d.total == 0
}
