// Package generate builds pseudorandom families of subsets for stress
// testing and benchmarking pkg/core/overlap. It replaces the original
// program's randtab2 generator (explicitly out of scope per spec.md) with
// an original implementation over math/rand/v2: each of NumSets candidate
// sets independently includes each ground element with probability
// Density, and is kept only if non-empty.
package generate

import (
	"math/rand/v2"

	"github.com/montanaflynn/stats"

	"github.com/LyteFM/overlap-components/pkg/core/overlap"
)

// Defaults mirror spec.md §6's "prog G SEED" surface.
const (
	DefaultDegree  = 30.0
	DefaultDensity = 0.05
)

// Options configures the generator. NumSets defaults to GroundSize when
// zero; Degree is informational only (used to derive Density when Density
// is zero: Density = Degree / GroundSize) since the underlying process is
// Bernoulli-per-element, not "pick exactly Degree members".
type Options struct {
	GroundSize int
	NumSets    int
	Degree     float64
	Density    float64
	Seed       uint64
}

// Stats summarizes the size distribution of a generated family.
type Stats struct {
	Mean             float64
	Median           float64
	PopulationStdDev float64
	MinSize, MaxSize int
	EmptySetsSkipped int
}

// Generate builds a family per opts, returning it alongside descriptive
// statistics of its set-size distribution.
//
// A partition of size 1 (a lone ground element, i.e. Density so low that
// most candidate sets come up with zero or one member) is not special
// cased: the original's randtab2 appears to single out size-1 partitions,
// but spec.md's own open question flags this as unclear and asks for an
// explicit, tested distribution rather than a transliteration. Here,
// every candidate set -- regardless of the size it lands on -- is kept
// unless it is empty, so the only special case is "discard empty sets",
// which keeps the family's actual invariant (every set is non-empty)
// without guessing at undocumented behavior.
func Generate(opts Options) (*overlap.Family, Stats) {
	if opts.NumSets == 0 {
		opts.NumSets = opts.GroundSize
	}
	density := opts.Density
	if density == 0 {
		degree := opts.Degree
		if degree == 0 {
			degree = DefaultDegree
		}
		density = degree / float64(opts.GroundSize)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	f := overlap.New(opts.GroundSize)

	var sizes []float64
	skipped := 0
	for i := 0; i < opts.NumSets; i++ {
		var members []int
		for e := 0; e < opts.GroundSize; e++ {
			if rng.Float64() < density {
				members = append(members, e)
			}
		}
		if len(members) == 0 {
			skipped++
			continue
		}
		if _, err := f.AddSet(members); err != nil {
			// Construction above only ever produces distinct, in-range
			// elements, so this can only indicate a programming error.
			panic(err)
		}
		sizes = append(sizes, float64(len(members)))
	}

	return f, computeStats(sizes, skipped)
}

func computeStats(sizes []float64, skipped int) Stats {
	if len(sizes) == 0 {
		return Stats{EmptySetsSkipped: skipped}
	}
	data := stats.Float64Data(sizes)
	mean, _ := data.Mean()
	median, _ := data.Median()
	stddev, _ := data.StandardDeviationPopulation()

	minSize, maxSize := int(sizes[0]), int(sizes[0])
	for _, s := range sizes {
		if int(s) < minSize {
			minSize = int(s)
		}
		if int(s) > maxSize {
			maxSize = int(s)
		}
	}

	return Stats{
		Mean:             mean,
		Median:           median,
		PopulationStdDev: stddev,
		MinSize:          minSize,
		MaxSize:          maxSize,
		EmptySetsSkipped: skipped,
	}
}
