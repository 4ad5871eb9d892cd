// Package pkg provides the core libraries for computing and serving the
// overlap graph of a family of subsets of a finite ground set.
//
// # Overview
//
// Two sets X and Y overlap when neither contains the other and their
// intersection is non-empty. The overlap graph connects sets that overlap;
// [core/overlap] computes its connected components in time linear in the
// total input size, using the Dahlhaus graph and a sparse overlap subgraph
// construction that cross-check each other.
//
// # Main packages
//
// [core/overlap] - the family/set types, compute_max witnesses, the
// Dahlhaus and sparse subgraph builders, and connected-component labeling.
//
// [familyio] - parses the whitespace/newline-delimited family input format.
//
// [generate] - generates random families for benchmarking and fuzz testing.
//
// [runner] - orchestrates a run: parse, compute_max, fan the two builders
// out concurrently, cross-check, cache, and audit.
//
// [cache] - the result-cache abstraction ([cache.Cache]) with file,
// null, and [cache/rediscache] Redis-backed implementations.
//
// [audit] - per-run audit records, with in-memory and MongoDB-backed
// stores.
//
// [httpapi] - an HTTP API exposing family submission and run lookup.
//
// [render] - Graphviz-based SVG rendering of the overlap subgraph.
//
// [core/overlap]: https://pkg.go.dev/github.com/LyteFM/overlap-components/pkg/core/overlap
// [familyio]: https://pkg.go.dev/github.com/LyteFM/overlap-components/pkg/familyio
// [generate]: https://pkg.go.dev/github.com/LyteFM/overlap-components/pkg/generate
// [runner]: https://pkg.go.dev/github.com/LyteFM/overlap-components/pkg/runner
// [cache]: https://pkg.go.dev/github.com/LyteFM/overlap-components/pkg/cache
// [cache/rediscache]: https://pkg.go.dev/github.com/LyteFM/overlap-components/pkg/cache/rediscache
// [audit]: https://pkg.go.dev/github.com/LyteFM/overlap-components/pkg/audit
// [httpapi]: https://pkg.go.dev/github.com/LyteFM/overlap-components/pkg/httpapi
// [render]: https://pkg.go.dev/github.com/LyteFM/overlap-components/pkg/render
package pkg
