package overlap

// ComputeMax runs the two partition-refinement passes (C5) that decorate
// every set of f with Left, Right, MLeft, MRight, and Max.
//
// It first calls f.Sort to ensure non-increasing size order (I4), then:
//
//  1. First pass: a fresh Refiner is refined once per set, in family order;
//     afterwards Left/Right/MLeft/MRight are read off the final position
//     table (I2).
//  2. Second pass: a second fresh Refiner is refined once per set, again in
//     family order, alongside the AM index (C3); each proper split assigns
//     Max to every AM candidate whose positions the split separates (I3).
//     A size-class barrier deactivates an entire size class from the AM
//     index as soon as the next (strictly smaller) size begins, so that a
//     smaller set's refinement can never claim Max of an equal-or-larger
//     one.
//
// Complexity is linear in GroundSize() + the sum of set sizes.
func ComputeMax(f *Family) {
	f.Sort()
	g := f.GroundSize()
	sets := f.Sets()

	firstPass(sets, g)
	secondPass(sets, g)
}

// firstPass computes Left/Right/MLeft/MRight (I2).
func firstPass(sets []*Set, g int) {
	r := NewRefiner(g)
	for _, s := range sets {
		r.Refine(s.Members, nil)
	}

	for _, s := range sets {
		left, right := -1, -1
		mleft, mright := Undefined, Undefined
		for _, e := range s.Members {
			p := r.Pos(e)
			if left == -1 || p < left {
				left, mleft = p, e
			}
			if right == -1 || p > right {
				right, mright = p, e
			}
		}
		s.Left, s.Right = left, right
		s.MLeft, s.MRight = mleft, mright
	}
}

// secondPass computes Max (I3) using a fresh Refiner and the AM index.
func secondPass(sets []*Set, g int) {
	r := NewRefiner(g)
	am := newAMIndex(sets, g)

	classStart := 0
	for i, x := range sets {
		witness := x.ID
		r.Refine(x.Members, func(start, boundary, end int) {
			for p := boundary + 1; p <= end; p++ {
				am.assignMax(sets, p, boundary, witness)
			}
		})

		last := i == len(sets)-1
		if last || sets[i+1].Size() != x.Size() {
			for j := classStart; j <= i; j++ {
				am.deactivate(sets[j])
			}
			classStart = i + 1
		}
	}
}
