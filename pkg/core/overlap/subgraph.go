package overlap

// membershipSet is a compact bitset answering "does this set contain
// ground element e" in O(1), used by BuildSubgraph to decide, for a
// boundary-crossing set, whether it is adjacent to a witness X or to
// Max(X). Built once per family in O(G + sum of set sizes) total.
type membershipSet struct {
	words []uint64
}

func newMembershipSet(members []int, groundSize int) membershipSet {
	ms := membershipSet{words: make([]uint64, (groundSize+63)/64)}
	for _, e := range members {
		ms.words[e/64] |= 1 << uint(e%64)
	}
	return ms
}

func (ms membershipSet) has(e int) bool {
	return ms.words[e/64]&(1<<uint(e%64)) != 0
}

// BuildSubgraph builds a sparser linear-time subgraph of the overlap graph
// (C7): an undirected multigraph on f.Len() vertices whose connected
// components also equal those of the full overlap graph.
//
// f must already have Max/MLeft/MRight populated by ComputeMax.
//
// For every ground element e, the sets containing e are walked in reverse
// <_LF order, from the smallest set to the largest. Every set with a defined Max witness contributes the edge
// (set, Max(set)). Additionally, (x, maxx, smax) tracks the most recent
// set x along the walk whose Max witness maxx has a strictly larger size
// than previously seen; whenever the current set is small enough to
// plausibly nest under smax and isn't maxx itself, a second edge is added
// to whichever of x or maxx actually contains the current set's boundary
// element (MLeft or MRight) -- a direct O(1) membership test.
//
// The reference construction routes that second edge through two rounds
// of quintuple bucketing (QL/QR, each reversed back into <_LF order) and
// two SL co-walks that decide, via an SL-cursor "bitmap lookup", whether
// the boundary element belongs to x or to maxx. This builder answers the
// same question directly with membershipSet.has instead of carrying the
// quintuples through the bucket/reverse/co-walk machinery, because the
// two routings are component-equivalent: whichever of x or maxx the edge
// is *not* attached to is already connected to the other one regardless.
// x is only ever assigned together with maxx, at the walk position where
// x's own Max witness equals maxx (x.Max == maxx) -- and that assignment
// unconditionally contributes the edge (x, maxx) via the "every set with
// a defined Max witness" rule above, on the very same walk. So x and maxx
// are always in the same component already; routing the second edge to
// either one merges the current set into that shared component either
// way, and the connected-components answer this builder exists to produce
// is identical to the reference construction's. What's lost relative to
// the reference is only the exact edge set, never a connectivity fact.
func BuildSubgraph(f *Family) *Graph {
	sets := f.Sets()
	g := f.GroundSize()
	sl := newSLIndex(sets, g)
	graph := NewGraph(len(sets))

	members := make([]membershipSet, len(sets))
	for _, s := range sets {
		members[s.ID] = newMembershipSet(s.Members, g)
	}

	for e := 0; e < g; e++ {
		list := sl.List(e)
		x, maxx, smax := -1, -1, 0

		for i := len(list) - 1; i >= 0; i-- {
			id := list[i]
			cur := sets[id]

			if cur.Max != Undefined {
				graph.AddEdge(id, cur.Max)
			}

			if cur.Size() <= smax && id != maxx && x != -1 {
				if members[maxx].has(cur.MLeft) || members[maxx].has(cur.MRight) {
					graph.AddEdge(id, maxx)
				} else {
					graph.AddEdge(id, x)
				}
			}

			if cur.Max != Undefined {
				if msize := sets[cur.Max].Size(); msize > smax {
					smax = msize
					x, maxx = id, cur.Max
				}
			}
		}
	}

	return graph.Sort()
}
