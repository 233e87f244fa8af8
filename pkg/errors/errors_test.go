package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/crosscheckhq/crosscheck/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestConfigError(t *testing.T) {
	t.Run("with file", func(t *testing.T) {
		err := pkgerrors.NewConfigError("settings.json", "contains invalid JSON", nil)
		assert.Contains(t, err.Error(), "settings.json")
		assert.Contains(t, err.Error(), "invalid JSON")
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
		assert.True(t, pkgerrors.IsConfig(err))
	})

	t.Run("wrapped", func(t *testing.T) {
		base := errors.New("unexpected end of JSON input")
		err := pkgerrors.WrapConfig("export.csv.json", base)
		require.Error(t, err)
		assert.True(t, pkgerrors.IsConfig(err))
		assert.Equal(t, base, errors.Unwrap(err))
	})
}

func TestMissingColumnError(t *testing.T) {
	err := pkgerrors.NewMissingColumnError("a.csv", "Article title")
	assert.Equal(t, `sheet a.csv is missing required column "Article title"`, err.Error())
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestColumnNotFoundError(t *testing.T) {
	err := pkgerrors.NewColumnNotFoundError("b.csv", "Journal")
	assert.Contains(t, err.Error(), "Journal")
	assert.Contains(t, err.Error(), "b.csv")
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestRowTooShortError(t *testing.T) {
	err := &pkgerrors.RowTooShortError{Sheet: "a.csv", Row: 7, Width: 3, Position: 5}
	assert.Contains(t, err.Error(), "row 7")
	assert.Contains(t, err.Error(), "3 cells")
	assert.Contains(t, err.Error(), "position 5")
	assert.True(t, pkgerrors.IsNotRectangular(err))
}

func TestHeaderErrors(t *testing.T) {
	t.Run("column count", func(t *testing.T) {
		err := &pkgerrors.ColumnCountError{
			SheetA:  "a.csv",
			SheetB:  "b.csv",
			CountA:  5,
			CountB:  4,
			OnlyInA: []string{"Funder"},
		}
		assert.Contains(t, err.Error(), "5 vs 4")
		assert.Contains(t, err.Error(), "Funder")
		assert.True(t, pkgerrors.IsHeaderMismatch(err))
	})

	t.Run("unexpected difference", func(t *testing.T) {
		err := &pkgerrors.HeaderMismatchError{
			Sheet:       "a.csv",
			OtherSheet:  "b.csv",
			Column:      "Authors",
			Counterpart: "Funder",
			Position:    2,
		}
		// Positions are reported 1-based for the operator.
		assert.Contains(t, err.Error(), "position 3")
		assert.Contains(t, err.Error(), `"Authors"`)
		assert.Contains(t, err.Error(), `"Funder"`)
		assert.True(t, pkgerrors.IsHeaderMismatch(err))
	})

	t.Run("synonym count", func(t *testing.T) {
		err := &pkgerrors.SynonymCountError{
			SheetA:     "a.csv",
			SheetB:     "b.csv",
			RemainingA: []string{"DOI", "PMID"},
			RemainingB: []string{"DOI"},
		}
		assert.Contains(t, err.Error(), "synonym groups")
		assert.True(t, pkgerrors.IsHeaderMismatch(err))
	})

	t.Run("unreconciled", func(t *testing.T) {
		err := &pkgerrors.UnreconciledHeaderError{
			SheetA:   "a.csv",
			SheetB:   "b.csv",
			ColumnA:  "DOI",
			ColumnB:  "PMID",
			Position: 0,
		}
		assert.Contains(t, err.Error(), `"DOI"`)
		assert.Contains(t, err.Error(), `"PMID"`)
		assert.True(t, pkgerrors.IsHeaderMismatch(err))
	})
}

func TestRowCountError(t *testing.T) {
	err := &pkgerrors.RowCountError{SheetA: "a.csv", SheetB: "b.csv", RowsA: 10, RowsB: 8}
	assert.Contains(t, err.Error(), "a.csv")
	assert.Contains(t, err.Error(), "b.csv")
	assert.Contains(t, err.Error(), "10 vs 8")
	assert.True(t, pkgerrors.IsRowCount(err))
	assert.False(t, pkgerrors.IsHeaderMismatch(err))
}

func TestWrapHelpersNilPassthrough(t *testing.T) {
	assert.NoError(t, pkgerrors.WrapIO("read", "a.csv", nil))
	assert.NoError(t, pkgerrors.WrapParse("csv", "a.csv", nil))
	assert.NoError(t, pkgerrors.WrapConfig("settings.json", nil))
}
