package overlap

// amEntry is one slot of the AM index: a candidate set and whether it is
// still eligible to receive a Max assignment.
type amEntry struct {
	setID  int
	active bool
}

// amIndex is the "active maxima" index (C3): sets bucketed by Right, with
// ties broken by ascending Left, plus one cursor per distinct Right value
// that only ever advances forward. Construction and every cursor advance
// together cost O(family size + G).
type amIndex struct {
	t  []amEntry
	ti []int // ti[r] = next candidate slot in t whose Right == r
}

// newAMIndex builds the AM index over sets (already sorted by decreasing
// size, with Left/Right populated by the first refinement pass) via a
// two-pass bucket sort: first by Left (to serialize ordering within equal
// Right), then by Right.
func newAMIndex(sets []*Set, groundSize int) *amIndex {
	byLeft := make([][]int, groundSize)
	for _, s := range sets {
		byLeft[s.Left] = append(byLeft[s.Left], s.ID)
	}

	byRight := make([][]int, groundSize)
	for left := 0; left < groundSize; left++ {
		for _, id := range byLeft[left] {
			r := sets[id].Right
			byRight[r] = append(byRight[r], id)
		}
	}

	idx := &amIndex{
		t:  make([]amEntry, 0, len(sets)),
		ti: make([]int, groundSize),
	}
	for right := 0; right < groundSize; right++ {
		idx.ti[right] = len(idx.t)
		for _, id := range byRight[right] {
			idx.t = append(idx.t, amEntry{setID: id, active: true})
			sets[id].ampos = len(idx.t) - 1
		}
	}
	return idx
}

// deactivate removes a set from future Max candidacy without moving it.
func (idx *amIndex) deactivate(s *Set) {
	idx.t[s.ampos].active = false
}

// assignMax walks the candidates in the bucket for Right == bucketPos,
// starting from that bucket's cursor, assigning witness (the set whose
// refinement just produced this split) as Max to every candidate Y with
// Y.Right == bucketPos and Y.Left <= boundary (i.e. Y spans across the
// split boundary). The cursor ti[bucketPos] only ever advances forward
// (never rewound), which is what keeps construction plus every assignMax
// call together linear: each slot is visited once as a live candidate and
// at most once more while being skipped as deactivated/exhausted.
func (idx *amIndex) assignMax(sets []*Set, bucketPos, boundary, witness int) {
	for idx.ti[bucketPos] < len(idx.t) {
		cand := idx.t[idx.ti[bucketPos]]
		y := sets[cand.setID]
		if y.Right != bucketPos {
			// Bucket exhausted: the composite array is sorted by ascending
			// Right, so once we see a different Right we have walked off
			// the end of this bucket and must not advance further.
			break
		}
		if !cand.active {
			idx.ti[bucketPos]++
			continue
		}
		if y.Left > boundary {
			break
		}
		y.Max = witness
		idx.ti[bucketPos]++
	}
}
