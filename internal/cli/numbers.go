package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/citypaths/pkg/errors"
	"github.com/matzehuels/citypaths/pkg/numtheory"
	"github.com/matzehuels/citypaths/pkg/pipeline"
)

// catalanCommand creates the catalan command.
func (c *CLI) catalanCommand() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "catalan <n>",
		Short: "Print the nth Catalan number",
		Example: `  citypaths catalan 10
  citypaths catalan --memo 200`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseNonNegative(args[0])
			if err != nil {
				return err
			}
			opts := c.options(cmd, &flags)
			if err := opts.CheckCatalan(n); err != nil {
				return err
			}

			p := newProgress(loggerFromContext(cmd.Context()))
			value := numtheory.Catalan
			if opts.Memo {
				value = numtheory.CatalanMemo
			}
			fmt.Fprintln(c.Out, value(n))
			p.logger.Debug("catalan", "n", n, "memo", opts.Memo, "elapsed", p.elapsed())
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.memo, "memo", false, "use the memoized recurrence")
	cmd.Flags().IntVar(&flags.maxCatalan, "max-catalan", pipeline.DefaultMaxCatalan, "largest n for the plain recurrence (0 = unbounded)")
	return cmd
}

// digitSumCommand creates the digitsum command.
func (c *CLI) digitSumCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "digitsum [n]",
		Short: "Print the digit sum of n! (default from config, 100)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.cfg.Options()
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			n := opts.FactorialBase
			if len(args) == 1 {
				v, err := parseNonNegative(args[0])
				if err != nil {
					return err
				}
				n = v
			}
			fmt.Fprintln(c.Out, numtheory.FactorialDigitSum(n))
			return nil
		},
	}
}

func parseNonNegative(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.Wrap(errs.ErrCodeInvalidInput, err, "expected an integer, got %q", s)
	}
	if n < 0 {
		return 0, errs.New(errs.ErrCodeInvalidInput, "expected a non-negative integer, got %d", n)
	}
	return n, nil
}
