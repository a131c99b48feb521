package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphedit/pkg/algorithm"
	"github.com/matzehuels/graphedit/pkg/graph"
)

// colorOpts holds the command-line flags for the color command.
type colorOpts struct {
	by       string // size, degree or value
	min, max string // ramp endpoints as hex colors
	output   string // output file; empty rewrites the input
}

// colorCommand creates the color command.
func (c *CLI) colorCommand() *cobra.Command {
	opts := colorOpts{by: "value", min: "#0000ff", max: "#ff0000"}

	cmd := &cobra.Command{
		Use:   "color [graph.json]",
		Short: "Color vertices along a ramp by size, degree or value",
		Long: `Color every vertex by linear interpolation between --min and --max.

Vertices holding the smallest metric get exactly --min, those holding the
largest get exactly --max.`,
		Example: `  graphedit color drawing.json --by degree --min "#ffffff" --max "#000000"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prop, err := algorithm.ParseProperty(opts.by)
			if err != nil {
				return err
			}
			lo, err := graph.ParseColor(opts.min)
			if err != nil {
				return err
			}
			hi, err := graph.ParseColor(opts.max)
			if err != nil {
				return err
			}
			return c.runPass(cmd.Context(), args[0], opts.output, algorithm.Coloring{Property: prop, Min: lo, Max: hi})
		},
	}

	cmd.Flags().StringVar(&opts.by, "by", opts.by, "metric: size, degree, value")
	cmd.Flags().StringVar(&opts.min, "min", opts.min, "color for the smallest metric")
	cmd.Flags().StringVar(&opts.max, "max", opts.max, "color for the largest metric")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: rewrite input)")

	return cmd
}
