package overlap

import (
	"errors"
	"testing"
)

func mustAdd(t *testing.T, f *Family, members []int) int {
	t.Helper()
	id, err := f.AddSet(members)
	if err != nil {
		t.Fatalf("AddSet(%v): %v", members, err)
	}
	return id
}

func TestAddSetRejectsOutOfRange(t *testing.T) {
	f := New(4)
	if _, err := f.AddSet([]int{0, 4}); !errors.Is(err, ErrInvalidMember) {
		t.Fatalf("want ErrInvalidMember, got %v", err)
	}
	if _, err := f.AddSet([]int{-1, 1}); !errors.Is(err, ErrInvalidMember) {
		t.Fatalf("want ErrInvalidMember, got %v", err)
	}
}

func TestAddSetRejectsDuplicate(t *testing.T) {
	f := New(4)
	if _, err := f.AddSet([]int{1, 2, 1}); !errors.Is(err, ErrDuplicateMember) {
		t.Fatalf("want ErrDuplicateMember, got %v", err)
	}
}

func TestAddSetAssignsSequentialIDs(t *testing.T) {
	f := New(4)
	id0 := mustAdd(t, f, []int{0, 1})
	id1 := mustAdd(t, f, []int{2, 3})
	if id0 != 0 || id1 != 1 {
		t.Fatalf("got ids %d, %d want 0, 1", id0, id1)
	}
	if f.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", f.Len())
	}
}

func TestScratchBorrowExclusive(t *testing.T) {
	f := New(4)
	_ = f.Borrow()
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on double borrow")
		}
	}()
	f.Borrow() // second borrow without releasing the first: panics
}

func TestScratchReleaseDirtyPanics(t *testing.T) {
	f := New(4)
	s := f.Borrow()
	s.Set(0, 1)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic releasing a dirty scratch buffer")
		}
	}()
	s.Release()
}

func TestSortOrdersByNonIncreasingSize(t *testing.T) {
	f := New(6)
	mustAdd(t, f, []int{0, 1})          // size 2
	mustAdd(t, f, []int{0, 1, 2, 3, 4}) // size 5
	mustAdd(t, f, []int{0})             // size 1
	mustAdd(t, f, []int{2, 3, 4})       // size 3

	if f.CheckSort() {
		t.Fatal("CheckSort() = true before Sort, want false")
	}
	f.Sort()
	if !f.CheckSort() {
		t.Fatal("CheckSort() = false after Sort")
	}

	want := []int{5, 3, 2, 1}
	for i, s := range f.Sets() {
		if s.Size() != want[i] {
			t.Fatalf("position %d has size %d, want %d", i, s.Size(), want[i])
		}
		if s.ID != i {
			t.Fatalf("position %d has ID %d, want %d", i, s.ID, i)
		}
	}
}

func TestClearResetsDerivedFields(t *testing.T) {
	f := New(4)
	mustAdd(t, f, []int{0, 1, 2})
	mustAdd(t, f, []int{1, 2, 3})
	ComputeMax(f)

	for _, s := range f.Sets() {
		if s.Left == Undefined {
			t.Fatal("expected ComputeMax to populate Left")
		}
	}

	f.Clear()
	for _, s := range f.Sets() {
		if s.Left != Undefined || s.Right != Undefined || s.Max != Undefined {
			t.Fatalf("Clear left derived fields set: %+v", s)
		}
	}
}
