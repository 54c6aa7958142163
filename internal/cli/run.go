package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/citypaths/pkg/pipeline"
)

// runCommand creates the run command, which executes the full input protocol.
func (c *CLI) runCommand() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Answer every query in an input file (or stdin)",
		Long: `Run reads the input protocol from a file, or from stdin when the file is
omitted or "-". It prints catalan(N), the digit sum of 100!, and one line per
query with the cheapest cost, or the unreachable token when no route exists.

catalan(N) uses the plain exponential recurrence, which stalls for large N.
Inputs above max_catalan (default 16) are therefore refused with an error.
Pass --memo to use the memoized recurrence for any N, or --max-catalan 0 to
lift the limit.`,
		Example: `  citypaths run cities.txt
  citypaths run --route --format json < cities.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return c.runRun(cmd.Context(), path, c.options(cmd, &flags))
		},
	}

	flags.register(cmd)
	return cmd
}

func (c *CLI) runRun(ctx context.Context, path string, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)

	in, err := openInput(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	runner := pipeline.NewRunner(logger)
	sink := pipeline.NewSink(c.Out, opts, runner.RunID)
	result, err := runner.Execute(ctx, in, sink, opts)
	if err != nil {
		return err
	}

	logger.Debug("stats",
		"cities", result.Stats.Cities,
		"edges", result.Stats.Edges,
		"run", result.RunID)
	return nil
}
