// Package familyio parses the whitespace-separated-integer family input
// format from spec.md §6: a non-negative integer joins the set currently
// being assembled; a negative integer (or EOF) terminates it, committing
// the set to the family if non-empty.
package familyio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/LyteFM/overlap-components/pkg/core/overlap"
)

// Parse reads the whitespace-integer format from r and returns the family
// it describes. The ground set size is inferred as 1 + the largest
// element seen across every set.
//
// Errors wrap overlap.ErrInputParse.
func Parse(r io.Reader) (*overlap.Family, error) {
	var tokens []int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	for sc.Scan() {
		var v int
		if _, err := fmt.Sscanf(sc.Text(), "%d", &v); err != nil {
			return nil, fmt.Errorf("familyio: invalid token %q: %w", sc.Text(), overlap.ErrInputParse)
		}
		tokens = append(tokens, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("familyio: %w: %w", overlap.ErrInputParse, err)
	}

	groundSize := 0
	rawSets := make([][]int, 0)
	var current []int
	for _, v := range tokens {
		if v < 0 {
			if len(current) > 0 {
				rawSets = append(rawSets, current)
				current = nil
			}
			continue
		}
		if v+1 > groundSize {
			groundSize = v + 1
		}
		current = append(current, v)
	}
	if len(current) > 0 {
		rawSets = append(rawSets, current)
	}

	f := overlap.New(groundSize)
	for _, members := range rawSets {
		if _, err := f.AddSet(members); err != nil {
			return nil, fmt.Errorf("familyio: %w: %w", overlap.ErrInputParse, err)
		}
	}
	return f, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*overlap.Family, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file)
}
