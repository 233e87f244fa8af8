package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosscheckhq/crosscheck/pkg/reconcile"
)

func TestDiffsOrdering(t *testing.T) {
	d := reconcile.NewDiffs(4)

	// Insert out of header order; rows per column arrive ascending, as the
	// engine's row loop guarantees.
	d.Add(3, 1, "a1", "b1")
	d.Add(1, 2, "a2", "b2")
	d.Add(3, 5, "a5", "b5")
	d.Add(1, 7, "a7", "b7")

	cols := d.Columns()
	require.Len(t, cols, 2)

	// Outer order follows the header, not insertion.
	assert.Equal(t, 1, cols[0].Column)
	assert.Equal(t, 3, cols[1].Column)

	assert.Equal(t, []reconcile.CellDiff{
		{Row: 2, A: "a2", B: "b2"},
		{Row: 7, A: "a7", B: "b7"},
	}, cols[0].Cells)
	assert.Equal(t, []reconcile.CellDiff{
		{Row: 1, A: "a1", B: "b1"},
		{Row: 5, A: "a5", B: "b5"},
	}, cols[1].Cells)

	assert.Equal(t, 4, d.Total())
	assert.False(t, d.Empty())
}

func TestDiffsEmpty(t *testing.T) {
	d := reconcile.NewDiffs(6)
	assert.True(t, d.Empty())
	assert.Zero(t, d.Total())
	assert.Empty(t, d.Columns())
}
