package overlap

import "testing"

func TestComputeMaxSortsFamilyFirst(t *testing.T) {
	f := buildFamily(5, [][]int{
		{0, 1},
		{0, 1, 2, 3, 4},
	})
	ComputeMax(f)
	if !f.CheckSort() {
		t.Fatal("ComputeMax did not leave the family sorted")
	}
	if f.Sets()[0].Size() != 5 {
		t.Fatalf("largest set not first after ComputeMax")
	}
}

func TestComputeMaxMutualOverlapGivesSymmetricMax(t *testing.T) {
	// {0,1,2} and {1,2,3} overlap; each should witness the other's Max
	// since both have equal size (I3 allows size(Y) >= size(X)).
	f := buildFamily(4, [][]int{
		{0, 1, 2},
		{1, 2, 3},
	})
	ComputeMax(f)

	a, b := f.Sets()[0], f.Sets()[1]
	if a.Max == Undefined || b.Max == Undefined {
		t.Fatalf("expected both sets to get a Max witness, got a.Max=%d b.Max=%d", a.Max, b.Max)
	}
	if a.Max != b.ID || b.Max != a.ID {
		t.Fatalf("expected each set to witness the other: a.Max=%d (want %d), b.Max=%d (want %d)",
			a.Max, b.ID, b.Max, a.ID)
	}
}

func TestComputeMaxSmallerSetNeverWitnessesLargerSet(t *testing.T) {
	// The universal set {0,1,2,3} can never receive a Max witness from a
	// strictly smaller set (I3), even though smaller sets nested inside it
	// technically separate its Left/Right positions once refined.
	f := buildFamily(4, [][]int{
		{0, 1, 2, 3},
		{0, 1},
		{2, 3},
	})
	ComputeMax(f)

	universal := f.Set(0) // largest set keeps ID 0 after sort
	if universal.Size() != 4 {
		t.Fatalf("expected the universal set at position 0, got size %d", universal.Size())
	}
	if universal.Max != Undefined {
		got := f.Set(universal.Max)
		if got.Size() < universal.Size() {
			t.Fatalf("universal set's Max witness %v is smaller than the universal set itself", got)
		}
	}
}

func TestComputeMaxLeftRightBoundMembership(t *testing.T) {
	f := buildFamily(6, [][]int{
		{0, 2, 4},
		{1, 3, 5},
		{0, 1, 2, 3},
	})
	ComputeMax(f)

	for _, s := range f.Sets() {
		if s.Left < 0 || s.Right < 0 || s.Left > s.Right {
			t.Fatalf("set %+v has invalid Left/Right", s)
		}
		foundLeft, foundRight := false, false
		for _, e := range s.Members {
			if e == s.MLeft {
				foundLeft = true
			}
			if e == s.MRight {
				foundRight = true
			}
		}
		if !foundLeft || !foundRight {
			t.Fatalf("set %+v: MLeft/MRight not members of the set", s)
		}
	}
}
