package reconcile

import (
	"sort"

	"github.com/crosscheckhq/crosscheck/pkg/errors"
	"github.com/crosscheckhq/crosscheck/pkg/tables"
)

// ReconcileHeaders checks whether the two sheets can be compared
// position-by-position. It is pure validation: on success the caller keeps
// using sheet A's header names, nothing is rewritten.
//
// The check proceeds in stages:
//  1. the headers must have the same number of columns,
//  2. positionally identical headers pass trivially,
//  3. every name covered by a synonym group must face the identical name or
//     a declared synonym at the same position in the other header (checked
//     in both directions),
//  4. after removing every synonym-covered name from both headers, the two
//     remainders must be equal in length and positionally identical.
func ReconcileHeaders(a, b *tables.Table, syn SynonymMap) error {
	aHeader := a.Header()
	bHeader := b.Header()

	if len(aHeader) != len(bHeader) {
		return &errors.ColumnCountError{
			SheetA:  a.Name,
			SheetB:  b.Name,
			CountA:  len(aHeader),
			CountB:  len(bHeader),
			OnlyInA: nameSetDifference(aHeader, bHeader),
			OnlyInB: nameSetDifference(bHeader, aHeader),
		}
	}

	if equalHeaders(aHeader, bHeader) {
		return nil
	}

	if err := checkExpectedDifferences(a.Name, aHeader, b.Name, bHeader, syn); err != nil {
		return err
	}
	if err := checkExpectedDifferences(b.Name, bHeader, a.Name, aHeader, syn); err != nil {
		return err
	}

	remainingA := withoutSynonyms(aHeader, syn)
	remainingB := withoutSynonyms(bHeader, syn)

	if len(remainingA) != len(remainingB) {
		return &errors.SynonymCountError{
			SheetA:     a.Name,
			SheetB:     b.Name,
			RemainingA: remainingA,
			RemainingB: remainingB,
		}
	}

	for i := range remainingA {
		if remainingA[i] != remainingB[i] {
			return &errors.UnreconciledHeaderError{
				SheetA:   a.Name,
				SheetB:   b.Name,
				ColumnA:  remainingA[i],
				ColumnB:  remainingB[i],
				Position: i,
			}
		}
	}

	return nil
}

// checkExpectedDifferences verifies that every synonym-covered name in
// header faces the identical name or a declared synonym at the same
// position in the other header.
func checkExpectedDifferences(sheet string, header []string, otherSheet string, otherHeader []string, syn SynonymMap) error {
	for pos, name := range header {
		if !syn.Covers(name) {
			continue
		}
		counterpart := otherHeader[pos]
		if counterpart == name || syn.Allows(name, counterpart) {
			continue
		}
		return &errors.HeaderMismatchError{
			Sheet:       sheet,
			OtherSheet:  otherSheet,
			Column:      name,
			Counterpart: counterpart,
			Position:    pos,
		}
	}
	return nil
}

// withoutSynonyms returns header with every synonym-covered name removed,
// preserving the order of the remaining names.
func withoutSynonyms(header []string, syn SynonymMap) []string {
	remaining := make([]string, 0, len(header))
	for _, name := range header {
		if syn.Covers(name) {
			continue
		}
		remaining = append(remaining, name)
	}
	return remaining
}

// equalHeaders reports positional equality of two headers.
func equalHeaders(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// nameSetDifference returns the names present in a but not in b, sorted.
func nameSetDifference(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, name := range b {
		inB[name] = struct{}{}
	}

	var diff []string
	seen := make(map[string]struct{})
	for _, name := range a {
		if _, ok := inB[name]; ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		diff = append(diff, name)
	}
	sort.Strings(diff)
	return diff
}
