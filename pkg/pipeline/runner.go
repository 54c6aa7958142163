package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/citypaths/pkg/citygraph"
	errs "github.com/matzehuels/citypaths/pkg/errors"
	"github.com/matzehuels/citypaths/pkg/numtheory"
	"github.com/matzehuels/citypaths/pkg/observability"
	"github.com/matzehuels/citypaths/pkg/shortest"
)

// Runner executes runs of the input protocol.
//
// A Runner keeps no state between runs besides its logger and ID, and the
// graph of a case never outlives that case.
type Runner struct {
	Logger *log.Logger
	RunID  string
}

// NewRunner creates a runner with a fresh run ID.
// If logger is nil, output is discarded.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	id := uuid.NewString()
	return &Runner{
		Logger: logger.With("run", id[:8]),
		RunID:  id,
	}
}

// Execute reads the whole protocol from in and reports every result to sink.
// It stops at the first error; results already sent to sink stay valid.
// ctx is checked between test cases and between queries.
func (r *Runner) Execute(ctx context.Context, in io.Reader, sink Sink, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	start := time.Now()
	result := &Result{RunID: r.RunID}
	d := NewDecoder(in)

	// Stage 1: Numbers
	if err := r.numbers(ctx, d, sink, opts); err != nil {
		return nil, err
	}

	// Stage 2: Test cases
	cases, err := d.CaseCount()
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("reading test cases", "cases", cases)

	for no := 1; no <= cases; no++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := r.runCase(ctx, d, sink, opts, no, &result.Stats); err != nil {
			r.Logger.Debug("test case failed", "case", no, "code", errs.GetCode(err), "line", errs.GetLine(err))
			return nil, fmt.Errorf("test case %d: %w", no, err)
		}
		result.Stats.Cases++
	}

	result.Stats.Duration = time.Since(start)
	r.Logger.Info("run complete",
		"cases", result.Stats.Cases,
		"queries", result.Stats.Queries,
		"unreachable", result.Stats.Unreachable,
		"duration", result.Stats.Duration)
	return result, nil
}

func (r *Runner) numbers(ctx context.Context, d *Decoder, sink Sink, opts Options) error {
	n, err := d.CatalanInput()
	if err != nil {
		return err
	}
	if err := opts.CheckCatalan(n); err != nil {
		return errs.AtLine(err, d.r.LineNo())
	}

	t := time.Now()
	catalan := numtheory.Catalan
	if opts.Memo {
		catalan = numtheory.CatalanMemo
	}
	value := catalan(n)
	observability.Pipeline().OnNumber(ctx, "catalan", n, time.Since(t))
	r.Logger.Debug("computed catalan", "n", n, "memo", opts.Memo, "duration", time.Since(t))
	if err := sink.Catalan(n, value); err != nil {
		return fmt.Errorf("write catalan: %w", err)
	}

	t = time.Now()
	sum := numtheory.FactorialDigitSum(opts.FactorialBase)
	observability.Pipeline().OnNumber(ctx, "digitsum", opts.FactorialBase, time.Since(t))
	if err := sink.DigitSum(opts.FactorialBase, sum); err != nil {
		return fmt.Errorf("write digit sum: %w", err)
	}
	return nil
}

func (r *Runner) runCase(ctx context.Context, d *Decoder, sink Sink, opts Options, no int, stats *Stats) error {
	hooks := observability.Pipeline()

	hooks.OnCaseStart(ctx, no)
	t := time.Now()
	g, err := d.Graph()
	if err != nil {
		hooks.OnGraphBuilt(ctx, no, 0, 0, time.Since(t), err)
		return err
	}
	hooks.OnGraphBuilt(ctx, no, g.NodeCount(), g.EdgeCount(), time.Since(t), nil)
	stats.Cities += g.NodeCount()
	stats.Edges += g.EdgeCount()
	r.Logger.Debug("built graph", "case", no, "cities", g.NodeCount(), "edges", g.EdgeCount())

	queries, err := d.QueryCount()
	if err != nil {
		return err
	}
	for i := 0; i < queries; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		q, err := d.Query()
		if err != nil {
			return err
		}

		t := time.Now()
		res, err := answer(g, q, opts.Route)
		hooks.OnQuery(ctx, no, q.From, q.To, res.Cost.Reachable, time.Since(t), err)
		if err != nil {
			return errs.AtLine(err, q.Line)
		}
		res.Case = no

		stats.Queries++
		if !res.Cost.Reachable {
			stats.Unreachable++
		}
		if err := sink.Query(res); err != nil {
			return fmt.Errorf("write query result: %w", err)
		}
	}
	return nil
}

// answer resolves a query against g.
func answer(g *citygraph.Graph, q Query, withRoute bool) (QueryResult, error) {
	res := QueryResult{From: q.From, To: q.To}
	source, err := g.Resolve(q.From)
	if err != nil {
		return res, err
	}
	target, err := g.Resolve(q.To)
	if err != nil {
		return res, err
	}

	if !withRoute {
		res.Cost, err = shortest.PathCost(g, source, target)
		return res, err
	}

	cost, path, err := shortest.Route(g, source, target)
	if err != nil {
		return res, err
	}
	res.Cost = cost
	for _, i := range path {
		res.Route = append(res.Route, g.Name(i))
	}
	return res, nil
}
