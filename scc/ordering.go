// File: ordering.go
// Role: Strict vertex order by finish time from a prior search.
package scc

import "sort"

// OrderByVisitationTime arranges vertices by their finish time in table,
// ascending or descending per dir. Vertices absent from the table (never
// visited in the prior run, e.g. excluded by a chooser) are dropped from the
// result. Finish times come from a single monotonic clock, so the order is
// strict; no tie-breaking is needed.
//
// The input slice is not mutated.
//
// Complexity: O(V log V).
func OrderByVisitationTime[V comparable](vertices []V, table map[V]int, dir Direction) []V {
	ordered := make([]V, 0, len(vertices))
	for _, v := range vertices {
		if _, ok := table[v]; ok {
			ordered = append(ordered, v)
		}
	}

	sort.Slice(ordered, func(i, j int) bool {
		if dir == Descending {
			return table[ordered[i]] > table[ordered[j]]
		}

		return table[ordered[i]] < table[ordered[j]]
	})

	return ordered
}
