package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LyteFM/overlap-components/pkg/cache"
	"github.com/LyteFM/overlap-components/pkg/familyio"
	"github.com/LyteFM/overlap-components/pkg/runner"
)

// runCommand creates the "run" command: read a family from a file, run the
// pipeline, and print the stdout banner the collaborator's CLI expects
// (§6): phase banners, "++ N connected components ++", and "++ OK ++" or
// "++ Something bad happens... ++" on the cross-check.
func (c *CLI) runCommand() *cobra.Command {
	var (
		oracle     bool
		printGraph bool
		printCC    bool
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run the overlap pipeline on a family read from FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOverlap(cmd.Context(), args[0], runOverlapOpts{
				Oracle:     oracle,
				PrintGraph: printGraph,
				PrintCC:    printCC,
				NoCache:    noCache,
			})
		},
	}

	cmd.Flags().BoolVar(&oracle, "oracle", false, "cross-check against the quadratic reference builder")
	cmd.Flags().BoolVar(&printGraph, "printgraph", false, "print the sparse subgraph's component label array (its adjacency is not printed)")
	cmd.Flags().BoolVar(&printCC, "printCC", false, "print the per-vertex component label array")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result caching")

	return cmd
}

type runOverlapOpts struct {
	Oracle     bool
	PrintGraph bool
	PrintCC    bool
	NoCache    bool
}

func (c *CLI) runOverlap(ctx context.Context, path string, opts runOverlapOpts) error {
	c.Logger.Infof("++ reading family from %s ++", path)
	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("++ Something bad happens, and the CLI terminates with a useful error message ++")
		return err
	}
	f, err := familyio.Parse(bytes.NewReader(raw))
	if err != nil {
		fmt.Println("++ Something bad happens, and the CLI terminates with a useful error message ++")
		return err
	}
	c.Logger.Infof("++ %d sets over ground set [0, %d) ++", f.Len(), f.GroundSize())

	cacheImpl, err := newResultCache(opts.NoCache)
	if err != nil {
		return fmt.Errorf("result cache: %w", err)
	}
	defer cacheImpl.Close()

	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "cli:")
	r := runner.New(cacheImpl, keyer, nil, c.Logger)

	c.Logger.Info("++ computing max witnesses ++")
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("running overlap pipeline on %d sets", f.Len()))
	spinner.Start()
	result, err := r.Run(ctx, f, cache.Hash(raw), runner.Options{Oracle: opts.Oracle})
	if err != nil {
		spinner.StopWithError("pipeline failed")
		fmt.Println("++ Something bad happens, and the CLI terminates with a useful error message ++")
		return err
	}
	spinner.StopWithSuccess("pipeline complete")

	if opts.PrintGraph {
		c.Logger.Info("++ printing sparse subgraph component labels in place of adjacency ++")
	}
	if opts.PrintGraph || opts.PrintCC {
		fmt.Println(result.Subgraph.Labels)
	}

	fmt.Printf("++ %d connected components ++\n", result.Dahlhaus.Components)
	fmt.Println("++ OK ++")
	return nil
}

// newResultCache builds the runner's result cache: file-backed by default,
// matching the teacher's default CLI cache, or disabled with --no-cache.
func newResultCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}
