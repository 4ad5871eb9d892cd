package overlap

import (
	"reflect"
	"sort"
	"testing"
)

// classesOf returns, for the current state of r over {0,...,g-1}, the
// partition as a slice of element slices, each sorted and ordered by
// position so tests can assert on partition shape without depending on
// internal class indices.
func classesOf(r *Refiner, g int) [][]int {
	type span struct{ start, end int }
	seen := make(map[int]bool)
	var spans []span
	for p := 0; p < g; p++ {
		ci := r.t[p].class
		if seen[ci] {
			continue
		}
		seen[ci] = true
		c := r.classes[ci]
		spans = append(spans, span{c.start, c.end})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	out := make([][]int, 0, len(spans))
	for _, sp := range spans {
		var members []int
		for p := sp.start; p <= sp.end; p++ {
			members = append(members, r.t[p].member)
		}
		sort.Ints(members)
		out = append(out, members)
	}
	return out
}

func TestRefineNoSplitWhenWholeClassHit(t *testing.T) {
	r := NewRefiner(4)
	fired := false
	r.Refine([]int{0, 1, 2, 3}, func(start, boundary, end int) { fired = true })
	if fired {
		t.Fatal("callback fired when X covered the whole class")
	}
	got := classesOf(r, 4)
	want := [][]int{{0, 1, 2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("classes = %v, want %v", got, want)
	}
}

func TestRefineSplitsProperSubset(t *testing.T) {
	r := NewRefiner(4)
	var gotStart, gotBoundary, gotEnd int
	calls := 0
	r.Refine([]int{1, 2}, func(start, boundary, end int) {
		calls++
		gotStart, gotBoundary, gotEnd = start, boundary, end
	})
	if calls != 1 {
		t.Fatalf("callback fired %d times, want 1", calls)
	}
	if gotStart != 0 || gotEnd != 3 {
		t.Fatalf("got start=%d end=%d, want start=0 end=3", gotStart, gotEnd)
	}
	// the split-off part (outside X) has 2 elements, so boundary marks
	// position 1 (2 elements at [0,1], split at [2,3]).
	if gotBoundary != 1 {
		t.Fatalf("got boundary=%d, want 1", gotBoundary)
	}

	got := classesOf(r, 4)
	want := [][]int{{0, 3}, {1, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("classes = %v, want %v", got, want)
	}
}

func TestRefineIdempotentOnAlreadySplitClass(t *testing.T) {
	r := NewRefiner(6)
	r.Refine([]int{0, 1, 2}, nil)
	before := classesOf(r, 6)

	fired := false
	r.Refine([]int{0, 1, 2}, func(start, boundary, end int) { fired = true })
	after := classesOf(r, 6)

	if fired {
		t.Fatal("callback fired refining by a set that exactly matches an existing class")
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("partition changed on idempotent refine: %v -> %v", before, after)
	}
}

func TestPosIsConsistentWithClasses(t *testing.T) {
	r := NewRefiner(5)
	r.Refine([]int{0, 2, 4}, nil)
	for e := 0; e < 5; e++ {
		p := r.Pos(e)
		if r.t[p].member != e {
			t.Fatalf("Pos(%d) = %d but t[%d].member = %d", e, p, p, r.t[p].member)
		}
	}
}
