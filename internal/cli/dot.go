package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/citypaths/pkg/citygraph"
	errs "github.com/matzehuels/citypaths/pkg/errors"
	"github.com/matzehuels/citypaths/pkg/pipeline"
	"github.com/matzehuels/citypaths/pkg/render/nodelink"
	"github.com/matzehuels/citypaths/pkg/shortest"
)

// dotOpts holds the command-line flags for the dot command.
type dotOpts struct {
	output  string // output file; extension picks the format, empty = DOT on stdout
	caseNo  int    // 1-based test case to export
	from    string // route start to highlight
	to      string // route end to highlight
	indices bool   // prefix labels with city indices
}

// dotFormats maps output extensions to formats.
var dotFormats = map[string]string{
	".dot": "dot",
	".gv":  "dot",
	".svg": "svg",
	".png": "png",
}

// dotCommand creates the dot command for exporting a test case graph.
func (c *CLI) dotCommand() *cobra.Command {
	opts := dotOpts{caseNo: 1}

	cmd := &cobra.Command{
		Use:   "dot [file]",
		Short: "Export a test case graph as Graphviz DOT, SVG, or PNG",
		Example: `  citypaths dot cities.txt > case1.dot
  citypaths dot cities.txt --case 2 -o case2.svg
  citypaths dot cities.txt --from gdansk --to warszawa -o route.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (opts.from == "") != (opts.to == "") {
				return fmt.Errorf("--from and --to must be given together")
			}
			if _, err := outputFormat(opts.output); err != nil {
				return err
			}
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return c.runDot(cmd.Context(), path, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.dot, .gv, .svg, .png); DOT on stdout if empty")
	cmd.Flags().IntVar(&opts.caseNo, "case", opts.caseNo, "test case to export (1-based)")
	cmd.Flags().StringVar(&opts.from, "from", "", "highlight the cheapest route starting at this city")
	cmd.Flags().StringVar(&opts.to, "to", "", "highlight the cheapest route ending at this city")
	cmd.Flags().BoolVar(&opts.indices, "indices", false, "prefix city labels with their index")

	return cmd
}

// outputFormat derives the render format from an output path.
func outputFormat(output string) (string, error) {
	if output == "" {
		return "dot", nil
	}
	ext := strings.ToLower(filepath.Ext(output))
	if f, ok := dotFormats[ext]; ok {
		return f, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "unsupported output extension %q (must be .dot, .gv, .svg, or .png)", ext)
}

func (c *CLI) runDot(ctx context.Context, path string, opts *dotOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	in, err := openInput(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	_, cases, err := pipeline.ReadAll(in)
	if err != nil {
		return err
	}
	if opts.caseNo < 1 || opts.caseNo > len(cases) {
		return errs.New(errs.ErrCodeInvalidIndex, "test case %d out of range [1, %d]", opts.caseNo, len(cases))
	}
	tc := cases[opts.caseNo-1]
	g := tc.Graph
	logger.Debug("loaded case", "case", tc.No, "cities", g.NodeCount(), "edges", g.EdgeCount())

	route, err := highlightRoute(g, opts.from, opts.to)
	if err != nil {
		return err
	}

	dot := nodelink.ToDOT(g, nodelink.Options{
		Title:   fmt.Sprintf("case %d", tc.No),
		Indices: opts.indices,
		Route:   route,
	})

	format, _ := outputFormat(opts.output)
	if opts.output == "" {
		_, err := fmt.Fprint(c.Out, dot)
		return err
	}

	data := []byte(dot)
	if format != "dot" {
		spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s...", strings.ToUpper(format)))
		spinner.Start()
		if format == "svg" {
			data, err = nodelink.RenderSVG(dot)
		} else {
			data, err = nodelink.RenderPNG(dot)
		}
		if spinner.Cancelled() {
			spinner.Stop()
			return ctx.Err()
		}
		if err != nil {
			spinner.StopWithError("Render failed")
			return err
		}
		spinner.StopWithSuccess("Rendered %s", strings.ToUpper(format))
	}

	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	prog.done(fmt.Sprintf("Exported case %d", tc.No))
	printSuccess("Exported case %d", tc.No)
	printStats(g.NodeCount(), g.EdgeCount(), len(tc.Queries))
	printFile(opts.output)
	if format == "dot" {
		printNextStep("Render it", "dot -Tsvg "+opts.output)
	}
	return nil
}

// highlightRoute resolves the cheapest route between two named cities.
// It returns nil when no route was requested or none exists.
func highlightRoute(g *citygraph.Graph, from, to string) ([]int, error) {
	if from == "" {
		return nil, nil
	}
	src, err := g.Resolve(from)
	if err != nil {
		return nil, err
	}
	dst, err := g.Resolve(to)
	if err != nil {
		return nil, err
	}
	cost, route, err := shortest.Route(g, src, dst)
	if err != nil {
		return nil, err
	}
	if !cost.Reachable {
		printWarning("No route from %s to %s", from, to)
		return nil, nil
	}
	printInfo("Cheapest route %s -> %s costs %s", from, to, cost)
	printDetail("%s", strings.Join(routeNames(g, route), " > "))
	return route, nil
}

func routeNames(g *citygraph.Graph, route []int) []string {
	names := make([]string, len(route))
	for i, c := range route {
		names[i] = g.Name(c)
	}
	return names
}
