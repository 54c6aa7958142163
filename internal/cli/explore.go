package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/citypaths/pkg/pipeline"
)

// exploreCommand creates the explore command, an interactive route browser.
func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore <file>",
		Short: "Browse cheapest routes interactively",
		Long: `Explore loads every test case of an input file and shows, for a selected
source city, the cheapest cost and route to each city of the case.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExplore(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runExplore(ctx context.Context, path string) error {
	in, err := openInput(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	_, cases, err := pipeline.ReadAll(in)
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("loaded cases", "cases", len(cases))

	opts := c.cfg.Options()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	p := tea.NewProgram(NewExploreModel(cases, opts.Unreachable), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("explore: %w", err)
	}
	return nil
}
