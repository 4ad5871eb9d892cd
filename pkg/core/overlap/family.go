// Package overlap computes the overlap graph of a family of subsets of a
// finite ground set in time linear in the size of the family encoding.
//
// Two sets X and Y overlap when X∩Y, X∖Y, and Y∖X are all non-empty. The
// package does not enumerate overlapping pairs; instead [ComputeMax] decorates
// every set with left/right/max witnesses via two partition-refinement
// passes, and [BuildDahlhaus] / [BuildSubgraph] use those witnesses to build
// a sparse graph whose connected components equal those of the full overlap
// graph (see [Graph.ConnectedComponents]).
package overlap

// Undefined marks a Set field (Left, Right, Max) that has not yet been
// computed by [ComputeMax].
const Undefined = -1

// Set is one member of a [Family]. Its Left/Right/MLeft/MRight/Max fields
// are undefined (Left == Undefined) until [ComputeMax] runs, and are reset
// to undefined by [Family.Clear].
type Set struct {
	// ID is this set's position in the family. It is stable across Clear,
	// but reassigned by Sort to match the new position.
	ID int

	// Members is the ordered sequence of distinct ground-set elements.
	// Order within a set carries no semantic meaning but is preserved.
	Members []int

	// Left, Right are the extremal positions of Members in the refinement
	// ordering produced by ComputeMax's first pass: 0 <= Left <= Right < G.
	// Undefined until ComputeMax runs.
	Left, Right int

	// MLeft, MRight are the ground elements occupying positions Left and
	// Right respectively.
	MLeft, MRight int

	// Max is the ID of the Max(X) witness set (see spec: the first set
	// whose second-pass refinement separates Left from Right), or
	// Undefined if no such witness exists.
	Max int

	// ampos is this set's slot in the AM index once built by ComputeMax's
	// second pass; internal bookkeeping for C3.
	ampos int
}

// Size returns the set's cardinality.
func (s *Set) Size() int { return len(s.Members) }

func newSet(id int, members []int) *Set {
	return &Set{
		ID:      id,
		Members: members,
		Left:    Undefined,
		Right:   Undefined,
		MLeft:   Undefined,
		MRight:  Undefined,
		Max:     Undefined,
		ampos:   Undefined,
	}
}

func (s *Set) clear() {
	s.Left, s.Right = Undefined, Undefined
	s.MLeft, s.MRight = Undefined, Undefined
	s.Max = Undefined
	s.ampos = Undefined
}

// Family is an indexed collection of subsets of a fixed ground set
// {0, ..., GroundSize-1}. The family owns every Set and its Members; it
// exclusively allocates the scratch buffer other operations borrow (see
// [Family.Borrow]).
//
// The zero value is not usable; construct with [New].
type Family struct {
	groundSize int
	sets       []*Set

	// scratch backs Borrow; every cell must read 0 whenever no Scratch is
	// outstanding (P6 in spec.md).
	scratch  []int
	borrowed bool
}

// New creates an empty family over the ground set {0, ..., groundSize-1}.
func New(groundSize int) *Family {
	return &Family{
		groundSize: groundSize,
		scratch:    make([]int, groundSize),
	}
}

// GroundSize returns G, the size of the ground set.
func (f *Family) GroundSize() int { return f.groundSize }

// Len returns the number of sets in the family.
func (f *Family) Len() int { return len(f.sets) }

// Set returns the set at position id. Panics if id is out of range, the
// same contract as indexing a slice.
func (f *Family) Set(id int) *Set { return f.sets[id] }

// Sets returns the family's sets in current (family) order. The returned
// slice aliases internal storage and must not be mutated in length.
func (f *Family) Sets() []*Set { return f.sets }

// AddSet appends a set with the given members and returns its ID.
//
// Fails with ErrInvalidMember if any element lies outside [0, GroundSize),
// or ErrDuplicateMember if members repeats an element. Complexity
// O(len(members)).
func (f *Family) AddSet(members []int) (int, error) {
	scratch := f.Borrow()
	defer scratch.Release()

	for _, e := range members {
		if e < 0 || e >= f.groundSize {
			scratch.clear(members)
			return 0, ErrInvalidMember
		}
		if scratch.Get(e) != 0 {
			scratch.clear(members)
			return 0, ErrDuplicateMember
		}
		scratch.Set(e, 1)
	}
	scratch.clear(members)

	id := len(f.sets)
	own := make([]int, len(members))
	copy(own, members)
	f.sets = append(f.sets, newSet(id, own))
	return id, nil
}

// clear zeroes scratch cells touched by members, tolerating an early exit
// (invalid/duplicate member) where only a prefix of members was marked.
func (s *Scratch) clear(members []int) {
	for _, e := range members {
		if e >= 0 && e < s.f.groundSize {
			s.f.scratch[e] = 0
		}
	}
}

// Clear resets every set's derived fields (Left, Right, MLeft, MRight, Max)
// to undefined, preserving membership and IDs. Call before re-running
// ComputeMax on a mutated family.
func (f *Family) Clear() {
	for _, s := range f.sets {
		s.clear()
	}
}

// CheckSort reports whether set sizes are non-increasing in ID order.
func (f *Family) CheckSort() bool {
	for i := 1; i < len(f.sets); i++ {
		if f.sets[i].Size() > f.sets[i-1].Size() {
			return false
		}
	}
	return true
}

// Sort reorders the family into non-increasing order of size, via a bucket
// sort keyed by size in [1, GroundSize] (sets of size 0 are not produced by
// AddSet with non-empty input, but are tolerated and sorted last). IDs are
// reassigned to match the new positions: after Sort, a set's ID equals its
// position. Complexity O(Len() + GroundSize). Ties are broken by previous
// relative order (stable), though no algorithm downstream relies on this.
func (f *Family) Sort() {
	if f.CheckSort() {
		return
	}

	buckets := make([][]*Set, f.groundSize+1)
	for _, s := range f.sets {
		sz := s.Size()
		if sz > f.groundSize {
			sz = f.groundSize
		}
		buckets[sz] = append(buckets[sz], s)
	}

	sorted := make([]*Set, 0, len(f.sets))
	for sz := f.groundSize; sz >= 0; sz-- {
		sorted = append(sorted, buckets[sz]...)
	}
	for i, s := range sorted {
		s.ID = i
	}
	f.sets = sorted
}

// Scratch is a borrowed handle onto the family's shared grnd_count scratch
// buffer of length GroundSize. Every cell must be restored to 0 before
// Release, which panics otherwise (P6). Only one Scratch may be
// outstanding at a time.
type Scratch struct {
	f *Family

	// touched records every cell index written through Set, so Release
	// only has to re-check the cells this borrow actually touched
	// instead of scanning the whole length-G buffer. A cell may appear
	// more than once (Set is idempotent to revisit); that only costs a
	// redundant check, never correctness.
	touched []int
}

// Borrow checks out the family's scratch buffer. Panics if already
// borrowed, since the buffer is a single shared resource (spec.md §5).
func (f *Family) Borrow() *Scratch {
	if f.borrowed {
		panic("overlap: scratch buffer already borrowed")
	}
	f.borrowed = true
	return &Scratch{f: f}
}

// Get returns the scratch cell for ground element e.
func (s *Scratch) Get(e int) int { return s.f.scratch[e] }

// Set writes the scratch cell for ground element e.
func (s *Scratch) Set(e, v int) {
	s.f.scratch[e] = v
	s.touched = append(s.touched, e)
}

// Release returns the buffer to the family, panicking if any cell this
// borrow touched was left non-zero (the cleanliness invariant every
// caller must uphold). Checking only the touched cells, rather than the
// full length-G buffer, keeps Release O(cells touched by this borrow)
// instead of O(GroundSize) -- the difference between AddSet costing
// O(len(members)) and O(GroundSize) per call.
func (s *Scratch) Release() {
	for _, e := range s.touched {
		if s.f.scratch[e] != 0 {
			panic("overlap: scratch buffer released dirty")
		}
	}
	s.f.borrowed = false
}
