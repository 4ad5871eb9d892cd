package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/LyteFM/overlap-components/pkg/generate"
)

// generateCommand creates the "generate" command: "prog G SEED" from §6,
// producing a pseudorandom family over ground set [0, G) and printing it in
// the whitespace-integer format so it can be piped straight into "run".
func (c *CLI) generateCommand() *cobra.Command {
	var degree, density float64

	cmd := &cobra.Command{
		Use:   "generate G SEED",
		Short: "Generate a pseudorandom family and print it in the input format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid ground set size %q: %w", args[0], err)
			}
			seed, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed %q: %w", args[1], err)
			}
			return c.runGenerate(g, seed, degree, density)
		},
	}

	cmd.Flags().Float64Var(&degree, "degree", 30, "expected set size")
	cmd.Flags().Float64Var(&density, "density", 0.05, "per-element membership probability (0 derives it from --degree)")

	return cmd
}

func (c *CLI) runGenerate(groundSize int, seed uint64, degree, density float64) error {
	f, stats := generate.Generate(generate.Options{
		GroundSize: groundSize,
		Degree:     degree,
		Density:    density,
		Seed:       seed,
	})

	c.Logger.Infof("++ generated %d sets over ground set [0, %d) ++", f.Len(), groundSize)
	c.Logger.Infof("set size mean=%.2f median=%.2f stddev=%.2f (skipped %d empty)",
		stats.Mean, stats.Median, stats.PopulationStdDev, stats.EmptySetsSkipped)

	for _, s := range f.Sets() {
		for _, m := range s.Members {
			fmt.Printf("%d ", m)
		}
		fmt.Println("-1")
	}
	return nil
}
