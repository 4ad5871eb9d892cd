package overlap

// buildFamily constructs a family over {0,...,groundSize-1} from a list of
// member slices, panicking on any AddSet error (every call site below uses
// known-valid fixtures).
func buildFamily(groundSize int, sets [][]int) *Family {
	f := New(groundSize)
	for _, members := range sets {
		if _, err := f.AddSet(members); err != nil {
			panic(err)
		}
	}
	return f
}
