package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	gerrors "github.com/matzehuels/graphedit/pkg/errors"
	gio "github.com/matzehuels/graphedit/pkg/io"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	format string // xml, json, dot or svg; empty means the configured default
	output string // output file; empty derives it from the input path
}

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export [graph.json]",
		Short: "Export a graph to XML, JSON, DOT or SVG",
		Long: `Export a graph document to another format.

Formats:
  xml   <Vertexes> document with one <vertex> per vertex (default)
  json  graph document, re-importable
  dot   Graphviz source with vertices pinned at their positions
  svg   rendered drawing`,
		Example: `  graphedit export drawing.json
  graphedit export drawing.json -f svg -o drawing.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: xml, json, dot, svg (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input path with the format's extension)")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, input string, opts exportOpts) error {
	logger := loggerFromContext(ctx)

	format := strings.ToLower(opts.format)
	if format == "" {
		format = c.cfg.Export.Format
	}
	if err := gerrors.ValidateFormat(format, gio.Formats); err != nil {
		return err
	}
	output := opts.output
	if output == "" {
		output = outputPath(input, format)
	}

	g, err := c.loadGraph(ctx, input)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	write := func() error { return gio.Export(ctx, g, format, output, gio.DOTOptions{}) }
	if format == gio.FormatSVG {
		err = withSpinner(ctx, "Rendering SVG...", write)
	} else {
		err = write()
	}
	if err != nil {
		return err
	}
	prog.debug("Exported " + format)

	printSuccess("Exported %s as %s", StyleHighlight.Render(g.Name()), strings.ToUpper(format))
	printStats(g)
	printFile(output)
	return nil
}
