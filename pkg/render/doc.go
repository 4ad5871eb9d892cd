// Package render provides visualization rendering for overlap graphs.
//
// The [overlapviz] subpackage renders the sparse overlap subgraph as a
// Graphviz node-link diagram, coloring vertices by connected component.
//
// [overlapviz]: github.com/LyteFM/overlap-components/pkg/render/overlapviz
package render
