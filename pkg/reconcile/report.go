package reconcile

import (
	"fmt"
	"strconv"

	"github.com/crosscheckhq/crosscheck/pkg/tables"
)

// Reporter renders a Result into CSV-shaped output tables, annotating every
// reported difference with cross-reference identifiers looked up in the
// original sheet. The lookup assumes the original's row numbering is
// positionally aligned with both compared sheets; that alignment is an
// input invariant, not verified here.
//
// Column labels consistently use sheet A's header names; B's variant names
// from a synonym group appear only in header diagnostics.
type Reporter struct {
	a        *tables.Table
	b        *tables.Table
	original *tables.Table
	origKeys Keys
}

// NewReporter creates a Reporter over the two compared sheets and the
// original they were derived from. origKeys are the identifying column
// positions resolved against the original's own header.
func NewReporter(a, b, original *tables.Table, origKeys Keys) *Reporter {
	return &Reporter{a: a, b: b, original: original, origKeys: origKeys}
}

// Differences renders the differences report. For each column with at
// least one recorded difference it emits a labeled sub-header row, one row
// per difference, and a blank separator row. Row numbers are emitted
// 1-based counting the header line, matching spreadsheet row numbering.
func (rp *Reporter) Differences(result *Result) [][]string {
	header := rp.a.Header()

	var out [][]string
	for _, col := range result.Diffs.Columns() {
		out = append(out, []string{
			"Row #",
			fmt.Sprintf("%s %s", rp.a.Name, header[col.Column]),
			fmt.Sprintf("%s %s", rp.b.Name, header[col.Column]),
			fmt.Sprintf("%s %s", rp.original.Name, ColumnPMCID),
			fmt.Sprintf("%s %s", rp.original.Name, ColumnPMID),
			fmt.Sprintf("%s %s", rp.original.Name, ColumnDOI),
			fmt.Sprintf("%s %s", rp.original.Name, ColumnTitle),
		})
		for _, cell := range col.Cells {
			origRow := rp.original.Rows[cell.Row]
			out = append(out, []string{
				strconv.Itoa(cell.Row + 1),
				cell.A,
				cell.B,
				origRow[rp.origKeys.PMCID],
				origRow[rp.origKeys.PMID],
				origRow[rp.origKeys.DOI],
				origRow[rp.origKeys.Title],
			})
		}
		out = append(out, []string{})
	}
	return out
}

// Suspicious renders the suspicious-row report: a fixed header plus one
// row per record whose identifiers all disagreed.
func (rp *Reporter) Suspicious(result *Result) [][]string {
	out := [][]string{{
		"Row #",
		fmt.Sprintf("%s %s", rp.a.Name, ColumnPMCID),
		fmt.Sprintf("%s %s", rp.b.Name, ColumnPMCID),
		fmt.Sprintf("%s %s", rp.a.Name, ColumnPMID),
		fmt.Sprintf("%s %s", rp.b.Name, ColumnPMID),
		fmt.Sprintf("%s %s", rp.a.Name, ColumnDOI),
		fmt.Sprintf("%s %s", rp.b.Name, ColumnDOI),
		fmt.Sprintf("%s %s", rp.a.Name, ColumnTitle),
		fmt.Sprintf("%s %s", rp.b.Name, ColumnTitle),
	}}
	for _, s := range result.Suspicious {
		out = append(out, []string{
			strconv.Itoa(s.Row),
			s.APMCID, s.BPMCID,
			s.APMID, s.BPMID,
			s.ADOI, s.BDOI,
			s.ATitle, s.BTitle,
		})
	}
	return out
}
