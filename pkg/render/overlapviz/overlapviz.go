// Package overlapviz renders an overlap graph (C8) to SVG via
// github.com/goccy/go-graphviz: build a DOT string, then parse and render
// it, following the same ToDOT-then-RenderSVG shape as perm.PQTree and
// nodelink's graph renderer.
package overlapviz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/LyteFM/overlap-components/pkg/core/overlap"
)

// palette assigns a deterministic fill color to each component label by
// index modulo its length, so small instances stay readable without a
// dependency on how many components happen to exist.
var palette = []string{
	"#8ecae6", "#ffb703", "#fb8500", "#219ebc", "#8338ec",
	"#06d6a0", "#ef476f", "#ffd166", "#118ab2", "#073b4c",
}

// ToDOT renders g as an undirected DOT graph, one node per vertex, colored
// by its component label from labels (labels[v] is v's component; len(labels)
// must equal g.N()).
func ToDOT(g *overlap.Graph, labels []int) (string, error) {
	if len(labels) != g.N() {
		return "", fmt.Errorf("overlapviz: len(labels)=%d != graph has %d vertices", len(labels), g.N())
	}

	var buf bytes.Buffer
	buf.WriteString("graph Overlap {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, style=filled];\n\n")

	for v := 0; v < g.N(); v++ {
		color := palette[labels[v]%len(palette)]
		fmt.Fprintf(&buf, "  n%d [label=%q, fillcolor=%q];\n", v, fmt.Sprintf("%d", v), color)
	}
	buf.WriteString("\n")

	seen := make(map[[2]int]bool)
	for v := 0; v < g.N(); v++ {
		for _, nb := range g.Neighbors(v) {
			edge := [2]int{v, nb}
			if v > nb {
				edge = [2]int{nb, v}
			}
			if seen[edge] {
				continue
			}
			seen[edge] = true
			fmt.Fprintf(&buf, "  n%d -- n%d;\n", edge[0], edge[1])
		}
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// Render builds g's DOT representation and renders it to SVG.
func Render(g *overlap.Graph, labels []int) ([]byte, error) {
	dot, err := ToDOT(g, labels)
	if err != nil {
		return nil, err
	}
	return renderDOT(dot)
}

// RenderLabels renders just the component structure implied by labels: one
// isolated vertex per entry, colored by component, with no edges drawn.
// Used by pkg/httpapi when only a cached run's labeling (not its full
// graph) survived in the cache.
func RenderLabels(labels []int) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("graph Overlap {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, style=filled];\n\n")
	for v, label := range labels {
		color := palette[label%len(palette)]
		fmt.Fprintf(&buf, "  n%d [label=%q, fillcolor=%q];\n", v, fmt.Sprintf("%d", v), color)
	}
	buf.WriteString("}\n")
	return renderDOT(buf.String())
}

func renderDOT(dot string) ([]byte, error) {
	gv, err := graphviz.New(context.Background())
	if err != nil {
		return nil, fmt.Errorf("overlapviz: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("overlapviz: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(context.Background(), g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("overlapviz: render: %w", err)
	}
	return buf.Bytes(), nil
}
