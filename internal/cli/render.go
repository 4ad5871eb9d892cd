package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LyteFM/overlap-components/pkg/core/overlap"
	"github.com/LyteFM/overlap-components/pkg/familyio"
	"github.com/LyteFM/overlap-components/pkg/render/overlapviz"
)

// renderCommand creates the "render" command: read a family, compute its
// sparse overlap subgraph and component labeling, and render the colored
// graph to SVG.
func (c *CLI) renderCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a family's overlap graph to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOverlapRender(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output SVG file (defaults to FILE with .svg extension)")
	return cmd
}

func (c *CLI) runOverlapRender(path, output string) error {
	f, err := familyio.ParseFile(path)
	if err != nil {
		return err
	}
	overlap.ComputeMax(f)
	g := overlap.BuildSubgraph(f)

	labels := make([]int, f.Len())
	n := g.ConnectedComponents(labels)
	c.Logger.Infof("rendering %d sets, %d connected components", f.Len(), n)

	svg, err := overlapviz.Render(g, labels)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if output == "" {
		output = strings.TrimSuffix(path, filepath.Ext(path)) + ".svg"
	}
	if err := os.WriteFile(output, svg, 0o644); err != nil {
		return err
	}
	c.Logger.Infof("wrote %s", output)
	return nil
}
