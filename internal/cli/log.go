package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/citypaths/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}

// done logs msg along with the elapsed time, e.g. "Rendered case 2 (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, p.elapsed())
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Pipeline Hooks
// =============================================================================

// logHooks reports pipeline events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

var _ observability.PipelineHooks = (*logHooks)(nil)

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnNumber(_ context.Context, kind string, n int, d time.Duration) {
	h.logger.Debug("number", "kind", kind, "n", n, "duration", d)
}

func (h *logHooks) OnCaseStart(_ context.Context, caseNo int) {
	h.logger.Debug("case start", "case", caseNo)
}

func (h *logHooks) OnGraphBuilt(_ context.Context, caseNo, nodes, edges int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("graph failed", "case", caseNo, "err", err)
		return
	}
	h.logger.Debug("graph built", "case", caseNo, "cities", nodes, "edges", edges, "duration", d)
}

func (h *logHooks) OnQuery(_ context.Context, caseNo int, from, to string, reachable bool, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("query failed", "case", caseNo, "from", from, "to", to, "err", err)
		return
	}
	h.logger.Debug("query", "case", caseNo, "from", from, "to", to, "reachable", reachable, "duration", d)
}
