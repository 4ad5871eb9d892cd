package overlap

import (
	"reflect"
	"testing"
)

func TestSLIndexOrderMatchesFamilyOrder(t *testing.T) {
	f := buildFamily(4, [][]int{
		{0, 1, 2},
		{1, 2, 3},
	})
	ComputeMax(f) // sorts the family (both same size, order preserved here)

	sl := newSLIndex(f.Sets(), f.GroundSize())
	if got, want := sl.List(0), []int{0}; !reflect.DeepEqual(got, want) {
		t.Fatalf("List(0) = %v, want %v", got, want)
	}
	if got, want := sl.List(1), []int{0, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("List(1) = %v, want %v", got, want)
	}
	if got, want := sl.List(3), []int{1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("List(3) = %v, want %v", got, want)
	}
}

func TestSLIndexEmptyElementHasNoLists(t *testing.T) {
	f := buildFamily(3, [][]int{{0}})
	sl := newSLIndex(f.Sets(), f.GroundSize())
	if got := sl.List(1); len(got) != 0 {
		t.Fatalf("List(1) = %v, want empty", got)
	}
}
