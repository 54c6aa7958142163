package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/matzehuels/citypaths/pkg/shortest"
)

// Sink receives results in input order.
type Sink interface {
	Catalan(n int, value *big.Int) error
	DigitSum(n, sum int) error
	Query(r QueryResult) error
}

// QueryResult is the answer to one query.
type QueryResult struct {
	Case  int
	From  string
	To    string
	Cost  shortest.Cost
	Route []string // city names of one minimal path; set only with Options.Route
}

// NewSink returns the sink for opts.Format writing to w.
// opts must have been validated.
func NewSink(w io.Writer, opts Options, runID string) Sink {
	if opts.Format == FormatJSON {
		return &JSONSink{enc: json.NewEncoder(w), runID: runID}
	}
	return &TextSink{w: w, unreachable: opts.Unreachable}
}

// =============================================================================
// Text
// =============================================================================

// TextSink writes one human-readable line per result.
type TextSink struct {
	w           io.Writer
	unreachable string
}

// Catalan implements Sink.
func (s *TextSink) Catalan(n int, value *big.Int) error {
	_, err := fmt.Fprintf(s.w, "catalan(%d) = %s\n", n, value)
	return err
}

// DigitSum implements Sink.
func (s *TextSink) DigitSum(n, sum int) error {
	_, err := fmt.Fprintf(s.w, "digitsum(%d!) = %d\n", n, sum)
	return err
}

// Query implements Sink.
func (s *TextSink) Query(r QueryResult) error {
	line := fmt.Sprintf("%s -> %s: %s", r.From, r.To, r.Cost.Format(s.unreachable))
	if len(r.Route) > 0 {
		line += " via " + strings.Join(r.Route, " > ")
	}
	_, err := fmt.Fprintln(s.w, line)
	return err
}

// =============================================================================
// JSON Lines
// =============================================================================

// JSONSink writes one JSON object per line.
type JSONSink struct {
	enc   *json.Encoder
	runID string
}

type jsonRecord struct {
	Kind      string   `json:"kind"`
	Run       string   `json:"run,omitempty"`
	Case      int      `json:"case,omitempty"`
	N         *int     `json:"n,omitempty"`
	Value     string   `json:"value,omitempty"`
	From      string   `json:"from,omitempty"`
	To        string   `json:"to,omitempty"`
	Cost      *int64   `json:"cost,omitempty"`
	Reachable *bool    `json:"reachable,omitempty"`
	Route     []string `json:"route,omitempty"`
}

// Catalan implements Sink. The value is a decimal string since it may exceed
// the range of JSON numbers.
func (s *JSONSink) Catalan(n int, value *big.Int) error {
	return s.enc.Encode(jsonRecord{Kind: "catalan", Run: s.runID, N: &n, Value: value.String()})
}

// DigitSum implements Sink.
func (s *JSONSink) DigitSum(n, sum int) error {
	return s.enc.Encode(jsonRecord{Kind: "digitsum", Run: s.runID, N: &n, Value: fmt.Sprint(sum)})
}

// Query implements Sink. Unreachable queries carry no cost.
func (s *JSONSink) Query(r QueryResult) error {
	rec := jsonRecord{
		Kind:      "query",
		Run:       s.runID,
		Case:      r.Case,
		From:      r.From,
		To:        r.To,
		Reachable: &r.Cost.Reachable,
		Route:     r.Route,
	}
	if r.Cost.Reachable {
		rec.Cost = &r.Cost.Value
	}
	return s.enc.Encode(rec)
}
