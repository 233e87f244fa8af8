package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crosscheckhq/crosscheck/pkg/reconcile"
)

func TestSynonymGroupsMap(t *testing.T) {
	groups := reconcile.SynonymGroups{
		{"Authors", "Author(s)"},
		{"Publisher", "Publisher name", "Journal publisher"},
	}
	m := groups.Map()

	assert.Equal(t, []string{"Author(s)"}, m["Authors"])
	assert.Equal(t, []string{"Authors"}, m["Author(s)"])
	assert.ElementsMatch(t, []string{"Publisher name", "Journal publisher"}, m["Publisher"])

	assert.True(t, m.Covers("Authors"))
	assert.False(t, m.Covers("DOI"))

	assert.True(t, m.Allows("Authors", "Author(s)"))
	assert.False(t, m.Allows("Authors", "Authors")) // identity is not a synonym
	assert.False(t, m.Allows("Authors", "Publisher"))
	assert.False(t, m.Allows("DOI", "PMID"))
}

func TestSynonymGroupsMapEmpty(t *testing.T) {
	m := reconcile.SynonymGroups{}.Map()
	assert.Empty(t, m)
	assert.False(t, m.Covers("anything"))
}
