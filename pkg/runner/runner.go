// Package runner orchestrates pkg/core/overlap end to end: compute_max,
// then the two independent graph builders fanned out concurrently, then
// component extraction and a cross-check between them. It is the pipeline
// the CLI, HTTP API, and audit log all share: a small struct holding a
// cache, an optional audit sink, and a logger, with one Run entry point.
package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/LyteFM/overlap-components/pkg/audit"
	"github.com/LyteFM/overlap-components/pkg/cache"
	"github.com/LyteFM/overlap-components/pkg/core/overlap"
)

// resultTTL is how long a cached Result survives. A run's family content
// never changes for a given hash, so staleness isn't a correctness concern;
// this just bounds how long a stopped instance's cache entries linger.
const resultTTL = time.Hour

func newRunID() string { return uuid.NewString() }

// Options configures one pipeline run.
type Options struct {
	// Oracle additionally runs the quadratic reference builder and
	// cross-checks it against the two linear builders (P4, scenario 6).
	// Intended for tests and stress runs, not production traffic.
	Oracle bool
}

// BuilderResult captures one graph builder's output.
type BuilderResult struct {
	Components int
	Labels     []int
	Duration   time.Duration
}

// Result is the outcome of one pipeline run, serialized to JSON for the
// cache and the audit log.
type Result struct {
	RunID      string        `json:"run_id"`
	FamilyHash string        `json:"family_hash"`
	NumSets    int           `json:"num_sets"`
	GroundSize int           `json:"ground_size"`
	Dahlhaus   BuilderResult `json:"dahlhaus"`
	Subgraph   BuilderResult `json:"subgraph"`
	ComputeMax time.Duration `json:"compute_max_duration"`
	Total      time.Duration `json:"total_duration"`
}

// Runner is stateless except for its cache, audit store, and logger;
// multiple goroutines may share one Runner across different families.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Audit  audit.Store
	Logger *log.Logger
}

// New creates a Runner. A nil cache disables caching (cache.NullCache), a
// nil audit store disables auditing, and a nil logger uses log.Default.
func New(c cache.Cache, keyer cache.Keyer, store audit.Store, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Audit: store, Logger: logger}
}

// Run executes compute_max, then fans out the Dahlhaus and sparse-subgraph
// builders concurrently (they depend only on compute_max's output), then
// compares their component labelings. A third, optional oracle pass
// (opts.Oracle) adds the quadratic reference to the comparison.
//
// Returns overlap.ErrConsistency if any two labelings disagree on which
// sets share a component -- a correctness bug, never a user input error.
func (r *Runner) Run(ctx context.Context, f *overlap.Family, hash string, opts Options) (*Result, error) {
	key := r.Keyer.RunKey(hash, cache.RunKeyOpts{Oracle: opts.Oracle})
	if hash != "" {
		if raw, hit, err := r.Cache.Get(ctx, key); err != nil {
			r.Logger.Warn("result cache get failed", "key", key, "err", err)
		} else if hit {
			var cached Result
			if err := json.Unmarshal(raw, &cached); err == nil {
				r.Logger.Debug("result cache hit", "family_hash", hash, "run_id", cached.RunID)
				return &cached, nil
			}
		}
	}

	start := time.Now()
	runID := newRunID()

	cmStart := time.Now()
	overlap.ComputeMax(f)
	cmDuration := time.Since(cmStart)
	r.Logger.Debug("compute_max done", "run_id", runID, "duration", cmDuration)

	var dahlhaus, subgraph BuilderResult
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t0 := time.Now()
		graph := overlap.BuildDahlhaus(f)
		labels := make([]int, f.Len())
		n := graph.ConnectedComponents(labels)
		dahlhaus = BuilderResult{Components: n, Labels: labels, Duration: time.Since(t0)}
		return nil
	})
	g.Go(func() error {
		t0 := time.Now()
		graph := overlap.BuildSubgraph(f)
		labels := make([]int, f.Len())
		n := graph.ConnectedComponents(labels)
		subgraph = BuilderResult{Components: n, Labels: labels, Duration: time.Since(t0)}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !sameComponents(dahlhaus.Labels, subgraph.Labels) {
		return nil, fmt.Errorf("dahlhaus vs subgraph: %w", overlap.ErrConsistency)
	}

	if opts.Oracle {
		oracleLabels := oracleComponents(f)
		if !sameComponents(dahlhaus.Labels, oracleLabels) {
			return nil, fmt.Errorf("builders vs oracle: %w", overlap.ErrConsistency)
		}
	}

	result := &Result{
		RunID:      runID,
		FamilyHash: hash,
		NumSets:    f.Len(),
		GroundSize: f.GroundSize(),
		Dahlhaus:   dahlhaus,
		Subgraph:   subgraph,
		ComputeMax: cmDuration,
		Total:      time.Since(start),
	}

	r.Logger.Info("run complete",
		"run_id", runID,
		"sets", f.Len(),
		"components", dahlhaus.Components,
		"duration", result.Total,
	)

	if hash != "" {
		if raw, err := json.Marshal(result); err != nil {
			r.Logger.Warn("result marshal failed", "run_id", runID, "err", err)
		} else if err := r.Cache.Set(ctx, key, raw, resultTTL); err != nil {
			r.Logger.Warn("result cache set failed", "run_id", runID, "err", err)
		}
	}

	if r.Audit != nil {
		if err := r.Audit.Record(ctx, audit.Record{
			RunID:          runID,
			FamilyHash:     hash,
			NumSets:        f.Len(),
			GroundSize:     f.GroundSize(),
			Components:     dahlhaus.Components,
			ConsistentWith: consistencyTag(opts),
			Duration:       result.Total,
		}); err != nil {
			r.Logger.Warn("audit record failed", "run_id", runID, "err", err)
		}
	}

	return result, nil
}

// sameComponents reports whether two label slices induce the same
// partition of {0, ..., len-1}, independent of the numeric label values
// each builder happened to assign.
func sameComponents(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	mapAB := make(map[int]int)
	mapBA := make(map[int]int)
	for i := range a {
		if want, ok := mapAB[a[i]]; ok {
			if want != b[i] {
				return false
			}
		} else {
			mapAB[a[i]] = b[i]
		}
		if want, ok := mapBA[b[i]]; ok {
			if want != a[i] {
				return false
			}
		} else {
			mapBA[b[i]] = a[i]
		}
	}
	return true
}

func consistencyTag(opts Options) string {
	if opts.Oracle {
		return "dahlhaus+subgraph+oracle"
	}
	return "dahlhaus+subgraph"
}
