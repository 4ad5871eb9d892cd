package overlap

// slIndex is the SL index (C4): for every ground element e, the list of
// set IDs containing e, ordered ascending by family index. Since the
// family is sorted non-increasing by size before this index is built
// (ComputeMax's first step), ascending family index is equivalent to
// non-increasing size -- the "<_LF" order used by both graph builders.
type slIndex struct {
	lists [][]int // lists[e] = set IDs containing e, in <_LF order
}

// newSLIndex builds the SL index by pushing each membership as it is
// encountered in family order, which already yields ascending-index lists
// because sets are processed in non-increasing size order. Complexity
// O(G + sum of set sizes).
func newSLIndex(sets []*Set, groundSize int) *slIndex {
	idx := &slIndex{lists: make([][]int, groundSize)}
	for _, s := range sets {
		for _, e := range s.Members {
			idx.lists[e] = append(idx.lists[e], s.ID)
		}
	}
	return idx
}

// List returns the sets containing ground element e, in <_LF order. The
// returned slice aliases internal storage and must not be mutated.
func (idx *slIndex) List(e int) []int { return idx.lists[e] }
