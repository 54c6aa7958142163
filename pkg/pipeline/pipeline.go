// Package pipeline runs the citypaths input protocol end to end.
//
// A run reads, in order: the Catalan input N, the number of test cases, and
// for every case a city graph followed by its queries. Results go to a [Sink]
// as soon as they are known, so a malformed query late in the stream does not
// swallow earlier answers.
//
// # Architecture
//
//  1. Numbers: Catalan(N) and the digit sum of FactorialBase!
//  2. Graph: each case is decoded into a citygraph.Builder and frozen
//  3. Queries: each query resolves both names and runs shortest.PathCost
//
// The CLI and tests share this package so the protocol is implemented once.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{Format: pipeline.FormatText}
//	result, err := runner.Execute(ctx, os.Stdin, pipeline.NewSink(os.Stdout, opts, runner.RunID), opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Stats.Queries)
package pipeline

import (
	"time"

	errs "github.com/matzehuels/citypaths/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and tests
// =============================================================================

const (
	// DefaultFactorialBase is n in the "digit sum of n!" line.
	DefaultFactorialBase = 100

	// DefaultMaxCatalan bounds N for the exponential recurrence.
	// Larger inputs need Options.Memo.
	DefaultMaxCatalan = 16

	// DefaultUnreachable is printed for queries without a path.
	DefaultUnreachable = "-1"
)

// Format constants for output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a run.
type Options struct {
	Format        string `json:"format,omitempty" toml:"format"`
	Unreachable   string `json:"unreachable,omitempty" toml:"unreachable"`
	Route         bool   `json:"route,omitempty" toml:"route"`
	Memo          bool   `json:"memo,omitempty" toml:"memo"`
	MaxCatalan    int    `json:"max_catalan,omitempty" toml:"max_catalan"` // 0 = unbounded
	FactorialBase int    `json:"factorial_base,omitempty" toml:"factorial_base"`
}

// =============================================================================
// Result - Run Output
// =============================================================================

// Result holds statistics about a completed run.
type Result struct {
	RunID string
	Stats Stats
}

// Stats contains counters and timing for a run.
type Stats struct {
	Cases       int
	Cities      int
	Edges       int
	Queries     int
	Unreachable int
	Duration    time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: text, json)", format)
	}
	return nil
}

// ValidateAndSetDefaults checks option values and fills unset fields.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Format == "" {
		o.Format = FormatText
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Unreachable == "" {
		o.Unreachable = DefaultUnreachable
	}
	if o.FactorialBase == 0 {
		o.FactorialBase = DefaultFactorialBase
	}
	if o.FactorialBase < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "factorial base must not be negative, got %d", o.FactorialBase)
	}
	if o.MaxCatalan < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "max catalan must not be negative, got %d", o.MaxCatalan)
	}
	return nil
}

// CheckCatalan reports whether n may be computed under these options.
func (o *Options) CheckCatalan(n int) error {
	if o.Memo || o.MaxCatalan == 0 || n <= o.MaxCatalan {
		return nil
	}
	return errs.New(errs.ErrCodeInvalidInput,
		"catalan input %d exceeds limit %d for the plain recurrence (use memo or raise max_catalan)", n, o.MaxCatalan)
}
