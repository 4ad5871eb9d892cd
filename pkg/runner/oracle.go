package runner

import "github.com/LyteFM/overlap-components/pkg/core/overlap"

// oracleComponents computes connected components of the full (quadratic)
// overlap graph using only overlap's public API. This is a separate,
// runner-local implementation of the same reference check pkg/core/overlap
// keeps internal to its own tests -- the core package deliberately never
// exports its quadratic oracle (spec.md P4), so opts.Oracle here pays the
// quadratic cost again rather than reaching into core internals.
func oracleComponents(f *overlap.Family) []int {
	sets := f.Sets()
	n := len(sets)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[rb] = ra
		}
	}

	membership := make([]map[int]bool, n)
	for i, s := range sets {
		m := make(map[int]bool, s.Size())
		for _, e := range s.Members {
			m[e] = true
		}
		membership[i] = m
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if overlaps(sets[i].Members, sets[j].Members, membership[i], membership[j]) {
				union(i, j)
			}
		}
	}

	out := make([]int, n)
	labels := make(map[int]int)
	next := 1
	for i := 0; i < n; i++ {
		root := find(i)
		lbl, ok := labels[root]
		if !ok {
			lbl = next
			labels[root] = lbl
			next++
		}
		out[i] = lbl
	}
	return out
}

// overlaps reports whether x and y overlap: x∩y, x\y, y\x all non-empty.
func overlaps(x, y []int, mx, my map[int]bool) bool {
	var hasIntersection, hasXOnly, hasYOnly bool
	for _, e := range x {
		if my[e] {
			hasIntersection = true
		} else {
			hasXOnly = true
		}
	}
	for _, e := range y {
		if !mx[e] {
			hasYOnly = true
		}
	}
	return hasIntersection && hasXOnly && hasYOnly
}
