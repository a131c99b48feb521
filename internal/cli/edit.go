package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	gerrors "github.com/matzehuels/graphedit/pkg/errors"
)

// editCommand creates the interactive edit command.
func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [graph.json]",
		Short: "Edit vertices interactively with undo and redo",
		Long: `Open an interactive session to move and restyle vertices.

Every change is recorded and can be undone with u and redone with ctrl+r.
The history depth is set by history.limit in the config file.`,
		Example: `  graphedit edit drawing.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runEdit(ctx context.Context, path string) error {
	g, err := c.loadGraph(ctx, path)
	if err != nil {
		return err
	}
	defer g.Close()

	m := NewEditModel(g, path, c.cfg.History.Limit)
	defer m.Close()

	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return gerrors.Wrap(gerrors.ErrCodeInternal, err, "edit session")
	}

	fm, ok := final.(*EditModel)
	if !ok {
		return nil
	}
	switch {
	case fm.Dirty:
		printWarning("Quit with unsaved changes")
		printNextStep("Continue editing", appName+" edit "+path)
	case fm.Saved:
		printSuccess("Saved %s", path)
		printStats(g)
	default:
		printDetail("No changes")
	}
	return nil
}
