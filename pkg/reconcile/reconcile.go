// Package reconcile implements the crosscheck engine: it aligns the headers
// of two derivative sheets under known column synonyms, classifies each data
// row by whether the record-identifying columns corroborate a row match, and
// aggregates per-cell differences of the comparable rows into an ordered
// report structure.
//
// Processing is strictly sequential and fail-fast: a run either completes
// deterministically or aborts on the first structural inconsistency. Cell
// value mismatches are never errors, only report content.
package reconcile

import (
	"github.com/rs/zerolog"

	"github.com/crosscheckhq/crosscheck/pkg/errors"
	"github.com/crosscheckhq/crosscheck/pkg/logging"
	"github.com/crosscheckhq/crosscheck/pkg/tables"
)

// Required header columns. They must be present by exact name in sheet A
// and in the original sheet.
const (
	ColumnDOI   = "DOI"
	ColumnPMID  = "PMID"
	ColumnPMCID = "PMCID"
	ColumnTitle = "Article title"
)

// RequiredColumns lists the identifying columns every sheet must carry.
var RequiredColumns = []string{ColumnDOI, ColumnPMID, ColumnPMCID, ColumnTitle}

// Keys holds the resolved positions of the identifying columns in a header.
type Keys struct {
	DOI   int
	PMID  int
	PMCID int
	Title int
}

// ResolveKeys locates the required columns in the sheet's header.
func ResolveKeys(t *tables.Table) (Keys, error) {
	positions, err := t.RequiredColumns(RequiredColumns...)
	if err != nil {
		return Keys{}, err
	}
	return Keys{
		DOI:   positions[ColumnDOI],
		PMID:  positions[ColumnPMID],
		PMCID: positions[ColumnPMCID],
		Title: positions[ColumnTitle],
	}, nil
}

// Suspicious records a data row where every identifier disagreed between
// the two sheets. The raw, non-normalized identifier and title cells from
// both sides are kept for human review.
type Suspicious struct {
	Row    int
	APMCID string
	BPMCID string
	APMID  string
	BPMID  string
	ADOI   string
	BDOI   string
	ATitle string
	BTitle string
}

// Reconciler runs the comparison of two sheets. It is built once per run;
// the comparator registry is read-only after construction.
type Reconciler struct {
	registry *Registry
	synonyms SynonymMap
	keys     Keys
	logger   *zerolog.Logger
}

// Option customizes a Reconciler.
type Option func(*Reconciler)

// WithSynonyms sets the expected header differences.
func WithSynonyms(groups SynonymGroups) Option {
	return func(r *Reconciler) {
		r.synonyms = groups.Map()
	}
}

// WithRegistry replaces the comparator registry.
func WithRegistry(registry *Registry) Option {
	return func(r *Reconciler) {
		r.registry = registry
	}
}

// WithComparator registers a comparator override for a column position.
func WithComparator(pos int, cmp Comparator) Option {
	return func(r *Reconciler) {
		r.registry.Register(pos, cmp)
	}
}

// WithLogger sets the logger used for progress diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(r *Reconciler) {
		r.logger = logger
	}
}

// New creates a Reconciler for sheets whose identifying columns sit at the
// given positions. The PMCID column gets the accession-prefix comparator by
// default; an explicit WithComparator for the same position wins.
func New(keys Keys, opts ...Option) *Reconciler {
	r := &Reconciler{
		registry: NewRegistry(),
		synonyms: SynonymMap{},
		keys:     keys,
		logger:   logging.Default(),
	}
	r.registry.Register(keys.PMCID, PMCIDComparator)

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Registry exposes the comparator registry, e.g. for tests.
func (r *Reconciler) Registry() *Registry {
	return r.registry
}

// Run compares sheet B against sheet A row by row. Row N in A is always
// compared to row N in B; rows are never matched or reordered.
//
// Sheet A having strictly more rows than B is fatal; the reverse is
// tolerated with a warning, comparison stops at the end of A.
func (r *Reconciler) Run(a, b *tables.Table) (*Result, error) {
	if a.NumRows() < b.NumRows() {
		r.logger.Warn().
			Str("sheet_a", a.Name).
			Str("sheet_b", b.Name).
			Int("ignored_rows", b.NumRows()-a.NumRows()).
			Msg("Sheets have a different number of rows; comparison will only go as far as the end of the first sheet, the remaining rows of the second will be ignored")
	}
	if a.NumRows() > b.NumRows() {
		return nil, &errors.RowCountError{
			SheetA: a.Name,
			SheetB: b.Name,
			RowsA:  a.NumRows(),
			RowsB:  b.NumRows(),
		}
	}

	if err := ReconcileHeaders(a, b, r.synonyms); err != nil {
		return nil, err
	}

	result := &Result{
		SheetA: a.Name,
		SheetB: b.Name,
		RowsA:  a.NumRows(),
		RowsB:  b.NumRows(),
		Diffs:  NewDiffs(len(a.Header())),
	}

	for rowNum := 1; rowNum < a.NumRows(); rowNum++ {
		aRow := a.Rows[rowNum]
		bRow := b.Rows[rowNum]

		// One disagreeing identifier is common: maybe one tool found it
		// and the other didn't. All of them disagreeing means the rows
		// likely describe different records, so a cell diff would be
		// meaningless noise.
		if !r.comparable(aRow, bRow) {
			result.Suspicious = append(result.Suspicious, Suspicious{
				Row:    rowNum,
				APMCID: aRow[r.keys.PMCID],
				BPMCID: bRow[r.keys.PMCID],
				APMID:  aRow[r.keys.PMID],
				BPMID:  bRow[r.keys.PMID],
				ADOI:   aRow[r.keys.DOI],
				BDOI:   bRow[r.keys.DOI],
				ATitle: aRow[r.keys.Title],
				BTitle: bRow[r.keys.Title],
			})
			continue
		}

		for pos := range aRow {
			if !r.registry.Compare(pos, aRow[pos], bRow[pos]) {
				result.Diffs.Add(pos, rowNum, aRow[pos], bRow[pos])
			}
		}
		result.Processed++
	}

	r.logger.Info().
		Str("sheet_a", a.Name).
		Str("sheet_b", b.Name).
		Int("processed_rows", result.Processed).
		Int("suspicious_rows", len(result.Suspicious)).
		Int("cell_differences", result.Diffs.Total()).
		Msg("Comparison finished")

	return result, nil
}

// comparable reports whether at least one identifying column matches
// between the two rows under its comparator.
func (r *Reconciler) comparable(aRow, bRow []string) bool {
	return r.registry.Compare(r.keys.PMCID, aRow[r.keys.PMCID], bRow[r.keys.PMCID]) ||
		r.registry.Compare(r.keys.PMID, aRow[r.keys.PMID], bRow[r.keys.PMID]) ||
		r.registry.Compare(r.keys.DOI, aRow[r.keys.DOI], bRow[r.keys.DOI])
}
