package overlap

// BuildDahlhaus builds the Dahlhaus graph (C6): an undirected multigraph on
// f.Len() vertices whose connected components equal those of the full
// overlap graph, built in O(GroundSize() + sum of set sizes).
//
// f must already have Max populated by ComputeMax.
//
// For every ground element e, the sets containing e (via a fresh SL index)
// are walked in reverse <_LF order, from the smallest set to the largest;
// smax tracks the largest size of any Max witness among the sets already
// walked, and a consecutive pair (set, set') in the walk is connected
// whenever set' is small enough to plausibly nest inside whatever produced
// smax.
func BuildDahlhaus(f *Family) *Graph {
	sets := f.Sets()
	sl := newSLIndex(sets, f.GroundSize())
	g := NewGraph(len(sets))

	for e := 0; e < f.GroundSize(); e++ {
		list := sl.List(e)
		smax := 0
		for i := len(list) - 1; i >= 0; i-- {
			id := list[i]
			cur := sets[id]
			if i < len(list)-1 && cur.Size() <= smax {
				g.AddEdge(list[i+1], id)
			}
			if cur.Max != Undefined {
				if msize := sets[cur.Max].Size(); msize > smax {
					smax = msize
				}
			}
		}
	}

	return g.Sort()
}
