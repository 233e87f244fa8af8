package reconcile

// SynonymGroups is the raw configuration form of expected header
// differences: each group lists column names that different producing tools
// use for the same underlying column, e.g. {"Authors", "Author(s)"}.
type SynonymGroups [][]string

// SynonymMap maps each name that belongs to some group to the other names
// in its group it may legitimately be matched against.
type SynonymMap map[string][]string

// Map derives the SynonymMap from the raw groups.
func (g SynonymGroups) Map() SynonymMap {
	m := make(SynonymMap)
	for _, group := range g {
		for i, variant := range group {
			others := make([]string, 0, len(group)-1)
			for j, other := range group {
				if j != i {
					others = append(others, other)
				}
			}
			m[variant] = others
		}
	}
	return m
}

// Allows reports whether counterpart is a declared synonym of name.
func (m SynonymMap) Allows(name, counterpart string) bool {
	for _, other := range m[name] {
		if other == counterpart {
			return true
		}
	}
	return false
}

// Covers reports whether name belongs to any synonym group.
func (m SynonymMap) Covers(name string) bool {
	_, ok := m[name]
	return ok
}
