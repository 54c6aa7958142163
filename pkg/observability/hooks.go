// Package observability provides hooks for instrumenting a citypaths run.
//
// Libraries emit events through the registered hooks; nothing here depends
// on a concrete backend. The default hooks do nothing. The CLI registers a
// logging implementation when --verbose is set.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnCaseStart(ctx, 1)
//	// ... build graph ...
//	observability.Pipeline().OnGraphBuilt(ctx, 1, nodes, edges, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the input pipeline.
type PipelineHooks interface {
	// Number theory events
	OnNumber(ctx context.Context, kind string, n int, duration time.Duration)

	// Graph events
	OnCaseStart(ctx context.Context, caseNo int)
	OnGraphBuilt(ctx context.Context, caseNo, nodeCount, edgeCount int, duration time.Duration, err error)

	// Query events
	OnQuery(ctx context.Context, caseNo int, from, to string, reachable bool, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnNumber(context.Context, string, int, time.Duration)              {}
func (NoopPipelineHooks) OnCaseStart(context.Context, int)                                  {}
func (NoopPipelineHooks) OnGraphBuilt(context.Context, int, int, int, time.Duration, error) {}
func (NoopPipelineHooks) OnQuery(context.Context, int, string, string, bool, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline runs.
// A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
