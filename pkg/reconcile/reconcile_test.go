package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/crosscheckhq/crosscheck/pkg/errors"
	"github.com/crosscheckhq/crosscheck/pkg/logging"
	"github.com/crosscheckhq/crosscheck/pkg/reconcile"
	"github.com/crosscheckhq/crosscheck/pkg/tables"
)

// sheet builds a test table with the standard identifying header.
func sheet(name string, rows ...[]string) *tables.Table {
	t := &tables.Table{Name: name}
	t.Rows = append(t.Rows, []string{"DOI", "PMID", "PMCID", "Article title"})
	t.Rows = append(t.Rows, rows...)
	return t
}

func testKeys(t *testing.T, table *tables.Table) reconcile.Keys {
	t.Helper()
	keys, err := reconcile.ResolveKeys(table)
	require.NoError(t, err)
	return keys
}

func TestResolveKeys(t *testing.T) {
	t.Run("resolves the identifying columns", func(t *testing.T) {
		table := sheet("a.csv")
		keys, err := reconcile.ResolveKeys(table)
		require.NoError(t, err)
		assert.Equal(t, reconcile.Keys{DOI: 0, PMID: 1, PMCID: 2, Title: 3}, keys)
	})

	t.Run("missing required column", func(t *testing.T) {
		table := &tables.Table{Name: "a.csv", Rows: [][]string{{"DOI", "PMID", "PMCID"}}}
		_, err := reconcile.ResolveKeys(table)
		require.Error(t, err)
		var missing *pkgerrors.MissingColumnError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "Article title", missing.Column)
	})
}

func TestRunIdenticalSheets(t *testing.T) {
	a := sheet("a.csv",
		[]string{"d1", "p1", "PMC1", "T1"},
		[]string{"d2", "p2", "PMC2", "T2"},
	)
	b := sheet("b.csv",
		[]string{"d1", "p1", "PMC1", "T1"},
		[]string{"d2", "p2", "PMC2", "T2"},
	)

	r := reconcile.New(testKeys(t, a))
	result, err := r.Run(a, b)
	require.NoError(t, err)

	assert.True(t, result.Diffs.Empty())
	assert.Empty(t, result.Diffs.Columns())
	assert.Empty(t, result.Suspicious)
	assert.Equal(t, 2, result.Processed)
}

func TestRunSuspiciousRow(t *testing.T) {
	a := sheet("a.csv", []string{"d1", "p1", "PMC1", "T1"})
	b := sheet("b.csv", []string{"dX", "pX", "PMC9", "T1"})

	r := reconcile.New(testKeys(t, a))
	result, err := r.Run(a, b)
	require.NoError(t, err)

	// All three identifiers disagree: the row is flagged and excluded from
	// cell diffing even though the titles match.
	require.Len(t, result.Suspicious, 1)
	s := result.Suspicious[0]
	assert.Equal(t, 1, s.Row)
	assert.Equal(t, "PMC1", s.APMCID)
	assert.Equal(t, "PMC9", s.BPMCID)
	assert.Equal(t, "d1", s.ADOI)
	assert.Equal(t, "dX", s.BDOI)
	assert.Equal(t, "T1", s.ATitle)
	assert.Equal(t, "T1", s.BTitle)

	assert.True(t, result.Diffs.Empty())
	assert.Equal(t, 0, result.Processed)
}

func TestRunComparableRowRecordsDifferences(t *testing.T) {
	// Concrete scenario: PMCID matches under the prefix rule, so the row is
	// comparable; only the differing title cell produces a record.
	a := sheet("a.csv", []string{"d1", "p1", "PMC1", "T1"})
	b := sheet("b.csv", []string{"d1", "p1", "1", "T1-typo"})

	r := reconcile.New(testKeys(t, a))
	result, err := r.Run(a, b)
	require.NoError(t, err)

	assert.Empty(t, result.Suspicious)
	assert.Equal(t, 1, result.Processed)

	cols := result.Diffs.Columns()
	require.Len(t, cols, 1)
	assert.Equal(t, 3, cols[0].Column)
	require.Len(t, cols[0].Cells, 1)
	assert.Equal(t, reconcile.CellDiff{Row: 1, A: "T1", B: "T1-typo"}, cols[0].Cells[0])
}

func TestRunSingleMatchingIdentifierIsEnough(t *testing.T) {
	// DOI and PMID disagree, but the PMCID corroborates the row match.
	a := sheet("a.csv", []string{"d1", "p1", "PMC1", "T1"})
	b := sheet("b.csv", []string{"d9", "p9", "pmc1", "T1"})

	r := reconcile.New(testKeys(t, a))
	result, err := r.Run(a, b)
	require.NoError(t, err)

	assert.Empty(t, result.Suspicious)
	assert.Equal(t, 1, result.Processed)

	cols := result.Diffs.Columns()
	require.Len(t, cols, 2)
	assert.Equal(t, 0, cols[0].Column) // DOI
	assert.Equal(t, 1, cols[1].Column) // PMID
}

func TestRunRowCountRules(t *testing.T) {
	t.Run("first sheet longer is fatal", func(t *testing.T) {
		a := sheet("a.csv",
			[]string{"d1", "p1", "PMC1", "T1"},
			[]string{"d2", "p2", "PMC2", "T2"},
		)
		b := sheet("b.csv", []string{"d1", "p1", "PMC1", "T1"})

		r := reconcile.New(testKeys(t, a))
		_, err := r.Run(a, b)
		require.Error(t, err)
		assert.True(t, pkgerrors.IsRowCount(err))
		var rowCount *pkgerrors.RowCountError
		require.ErrorAs(t, err, &rowCount)
		assert.Equal(t, "a.csv", rowCount.SheetA)
		assert.Equal(t, "b.csv", rowCount.SheetB)
		assert.Equal(t, 3, rowCount.RowsA)
		assert.Equal(t, 2, rowCount.RowsB)
	})

	t.Run("second sheet longer is a warning", func(t *testing.T) {
		a := sheet("a.csv", []string{"d1", "p1", "PMC1", "T1"})
		b := sheet("b.csv",
			[]string{"d1", "p1", "PMC1", "T1"},
			[]string{"d2", "p2", "PMC2", "T2"},
			[]string{"d3", "p3", "PMC3", "T3"},
		)

		log := logging.NewTestLogger(t)
		r := reconcile.New(testKeys(t, a), reconcile.WithLogger(log.Logger))
		result, err := r.Run(a, b)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Processed)
		assert.True(t, log.Contains("ignored"))
	})
}

func TestRunHeaderMismatchAborts(t *testing.T) {
	a := sheet("a.csv", []string{"d1", "p1", "PMC1", "T1"})
	b := &tables.Table{Name: "b.csv", Rows: [][]string{
		{"DOI", "PMID", "PMCID", "Title"},
		{"d1", "p1", "PMC1", "T1"},
	}}

	r := reconcile.New(testKeys(t, a))
	_, err := r.Run(a, b)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsHeaderMismatch(err))
}

func TestRunWithSynonyms(t *testing.T) {
	a := &tables.Table{Name: "a.csv", Rows: [][]string{
		{"DOI", "PMID", "PMCID", "Article title", "Authors"},
		{"d1", "p1", "PMC1", "T1", "Smith"},
	}}
	b := &tables.Table{Name: "b.csv", Rows: [][]string{
		{"DOI", "PMID", "PMCID", "Article title", "Author(s)"},
		{"d1", "p1", "PMC1", "T1", "Smith J"},
	}}

	r := reconcile.New(testKeys(t, a),
		reconcile.WithSynonyms(reconcile.SynonymGroups{{"Authors", "Author(s)"}}))
	result, err := r.Run(a, b)
	require.NoError(t, err)

	cols := result.Diffs.Columns()
	require.Len(t, cols, 1)
	assert.Equal(t, 4, cols[0].Column)
	assert.Equal(t, "Smith", cols[0].Cells[0].A)
	assert.Equal(t, "Smith J", cols[0].Cells[0].B)
}

func TestRunComparatorOverride(t *testing.T) {
	// An explicit override for the PMCID position replaces the built-in
	// prefix comparator.
	a := sheet("a.csv", []string{"d9", "p9", "PMC1", "T1"})
	b := sheet("b.csv", []string{"d1", "p1", "1", "T1"})

	keys := testKeys(t, a)
	exact := func(x, y string) bool { return x == y }
	r := reconcile.New(keys, reconcile.WithComparator(keys.PMCID, exact))

	result, err := r.Run(a, b)
	require.NoError(t, err)
	require.Len(t, result.Suspicious, 1)
	assert.True(t, result.Diffs.Empty())
}

func TestSummary(t *testing.T) {
	a := sheet("a.csv",
		[]string{"d1", "p1", "PMC1", "T1"},
		[]string{"dX", "pX", "PMCX", "T2"},
	)
	b := sheet("b.csv",
		[]string{"d1", "p1", "PMC1", "T1-typo"},
		[]string{"dY", "pY", "PMCY", "T2"},
	)

	r := reconcile.New(testKeys(t, a))
	result, err := r.Run(a, b)
	require.NoError(t, err)

	summary := result.Summary()
	assert.Equal(t, "a.csv", summary.SheetA)
	assert.Equal(t, "b.csv", summary.SheetB)
	assert.Equal(t, 3, summary.RowsA)
	assert.Equal(t, 1, summary.ProcessedRows)
	assert.Equal(t, 1, summary.SuspiciousRows)
	assert.Equal(t, 1, summary.DifferingCols)
	assert.Equal(t, 1, summary.CellDifferences)
}
