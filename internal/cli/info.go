package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphedit/pkg/graph"
)

// infoCommand creates the info command.
func (c *CLI) infoCommand() *cobra.Command {
	var listVertices bool

	cmd := &cobra.Command{
		Use:   "info [graph.json]",
		Short: "Show a summary of a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInfo(cmd.Context(), args[0], listVertices)
		},
	}

	cmd.Flags().BoolVarP(&listVertices, "vertices", "l", false, "list every vertex")

	return cmd
}

func (c *CLI) runInfo(ctx context.Context, input string, listVertices bool) error {
	g, err := c.loadGraph(ctx, input)
	if err != nil {
		return err
	}
	if err := g.Validate(); err != nil {
		return err
	}

	printInfo("%s", StyleTitle.Render(g.Name()))
	printKeyValue("Document", g.DocumentID().String())
	printKeyValue("Vertices", strconv.Itoa(g.VertexCount()))
	printKeyValue("Edges", strconv.Itoa(g.EdgeCount()))
	if lo, hi, ok := graph.Bounds(g.Elements()); ok {
		printKeyValue("Bounds", fmt.Sprintf("%s to %s", lo, hi))
	}

	if listVertices && g.VertexCount() > 0 {
		fmt.Fprintln(stdout, vertexTable(g, nil, -1))
	}
	return nil
}

// vertexTable renders the vertices of g. Rows of selected vertices are
// marked and the row at cursor is highlighted; pass a nil selection and a
// negative cursor for a plain listing.
func vertexTable(g *graph.Graph, sel *graph.Selection, cursor int) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	vertices := g.Vertices()

	rows := make([][]string, 0, len(vertices))
	for i, v := range vertices {
		mark := "  "
		if i == cursor {
			mark = "▸ "
		}
		if sel != nil && sel.Contains(v) {
			mark = mark[:len(mark)-1] + "*"
		}
		rows = append(rows, []string{
			mark,
			strconv.FormatUint(uint64(v.ID()), 10),
			v.Label,
			v.Shape.String(),
			strconv.Itoa(v.Size),
			v.Position.String(),
			strconv.Itoa(v.Degree()),
			strconv.Itoa(v.Value),
			swatch(v.Color),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Label", "Shape", "Size", "Position", "Degree", "Value", "Color").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			if sel != nil && row < len(vertices) && sel.Contains(vertices[row]) {
				return lipgloss.NewStyle().Foreground(colorGreen)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	return t.Render()
}
