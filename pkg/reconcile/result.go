package reconcile

// Result holds everything a run produced: the ordered cell differences of
// the comparable rows, the suspicious rows excluded from cell diffing, and
// the row accounting for operator logs. Nothing in a Result is mutated
// after Run returns.
type Result struct {
	SheetA string
	SheetB string

	RowsA int
	RowsB int

	// Processed counts the comparable data rows that went through
	// cell-level comparison.
	Processed int

	Diffs      *Diffs
	Suspicious []Suspicious
}

// Summary is the flat, serializable digest of a run.
type Summary struct {
	SheetA          string `json:"sheet_a"`
	SheetB          string `json:"sheet_b"`
	RowsA           int    `json:"rows_a"`
	RowsB           int    `json:"rows_b"`
	ProcessedRows   int    `json:"processed_rows"`
	SuspiciousRows  int    `json:"suspicious_rows"`
	DifferingCols   int    `json:"differing_columns"`
	CellDifferences int    `json:"cell_differences"`
}

// Summary digests the result for display.
func (r *Result) Summary() Summary {
	return Summary{
		SheetA:          r.SheetA,
		SheetB:          r.SheetB,
		RowsA:           r.RowsA,
		RowsB:           r.RowsB,
		ProcessedRows:   r.Processed,
		SuspiciousRows:  len(r.Suspicious),
		DifferingCols:   len(r.Diffs.Columns()),
		CellDifferences: r.Diffs.Total(),
	}
}
