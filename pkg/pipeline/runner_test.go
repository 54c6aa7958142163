package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/matzehuels/citypaths/pkg/errors"
	"github.com/matzehuels/citypaths/pkg/observability"
)

const sampleInput = `5
1
4
gdansk
2
2 1
3 3
bydgoszcz
3
1 1
3 1
4 4
torun
3
1 3
2 1
4 1
warszawa
2
2 4
3 1
2
gdansk warszawa
bydgoszcz warszawa
`

func run(t *testing.T, in string, opts Options) (string, *Result, error) {
	t.Helper()
	var out bytes.Buffer
	r := NewRunner(nil)
	require.NoError(t, opts.ValidateAndSetDefaults())
	res, err := r.Execute(context.Background(), strings.NewReader(in), NewSink(&out, opts, r.RunID), opts)
	return out.String(), res, err
}

func TestExecuteSample(t *testing.T) {
	out, res, err := run(t, sampleInput, Options{})
	require.NoError(t, err)

	assert.Equal(t, "catalan(5) = 42\n"+
		"digitsum(100!) = 648\n"+
		"gdansk -> warszawa: 3\n"+
		"bydgoszcz -> warszawa: 2\n", out)

	assert.Equal(t, 1, res.Stats.Cases)
	assert.Equal(t, 4, res.Stats.Cities)
	assert.Equal(t, 10, res.Stats.Edges)
	assert.Equal(t, 2, res.Stats.Queries)
	assert.Equal(t, 0, res.Stats.Unreachable)
	assert.NotEmpty(t, res.RunID)
}

func TestExecuteRoute(t *testing.T) {
	out, _, err := run(t, sampleInput, Options{Route: true})
	require.NoError(t, err)
	assert.Contains(t, out, "gdansk -> warszawa: 3 via gdansk > bydgoszcz > torun > warszawa\n")
}

func TestExecuteMultipleCasesAndUnreachable(t *testing.T) {
	in := `3
2

2
New York
1
2 10
Boston
0
1
Boston Boston

3
A
2
2 3
2 7
B
0
C
1
1 1
3
A B
B C
C B
`
	out, res, err := run(t, in, Options{Unreachable: "unreachable"})
	require.NoError(t, err)
	assert.Equal(t, "catalan(3) = 5\n"+
		"digitsum(100!) = 648\n"+
		"Boston -> Boston: 0\n"+
		"A -> B: 3\n"+
		"B -> C: unreachable\n"+
		"C -> B: 4\n", out)
	assert.Equal(t, 2, res.Stats.Cases)
	assert.Equal(t, 1, res.Stats.Unreachable)
}

func TestExecuteJSON(t *testing.T) {
	out, res, err := run(t, sampleInput, Options{Format: FormatJSON, Route: true})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "catalan", first["kind"])
	assert.Equal(t, "42", first["value"])
	assert.Equal(t, res.RunID, first["run"])

	var q struct {
		Kind      string   `json:"kind"`
		Case      int      `json:"case"`
		From      string   `json:"from"`
		To        string   `json:"to"`
		Cost      *int64   `json:"cost"`
		Reachable bool     `json:"reachable"`
		Route     []string `json:"route"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &q))
	assert.Equal(t, "query", q.Kind)
	assert.Equal(t, 1, q.Case)
	assert.Equal(t, "bydgoszcz", q.From)
	require.NotNil(t, q.Cost)
	assert.Equal(t, int64(2), *q.Cost)
	assert.True(t, q.Reachable)
	assert.Equal(t, []string{"bydgoszcz", "torun", "warszawa"}, q.Route)
}

func TestExecuteJSONUnreachableHasNoCost(t *testing.T) {
	in := "0\n1\n2\nA\n0\nB\n0\n1\nA B\n"
	out, _, err := run(t, in, Options{Format: FormatJSON})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	var q map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &q))
	assert.Equal(t, false, q["reachable"])
	_, hasCost := q["cost"]
	assert.False(t, hasCost)
}

func TestExecuteErrors(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		opts     Options
		code     errs.Code
		line     int
		contains string
	}{
		{
			name: "unknown city",
			in:   "1\n1\n2\nA\n1\n2 1\nB\n0\n2\nA B\nA Z\n",
			code: errs.ErrCodeUnknownCity,
			line: 11,
		},
		{
			name: "neighbor index out of range",
			in:   "1\n1\n2\nA\n1\n3 1\nB\n0\n0\n",
			code: errs.ErrCodeInvalidIndex,
			line: 6,
		},
		{
			name: "neighbor index zero",
			in:   "1\n1\n1\nA\n1\n0 1\n0\n",
			code: errs.ErrCodeInvalidIndex,
			line: 6,
		},
		{
			name:     "not a number",
			in:       "1\n1\n2\nA\nx\n",
			code:     errs.ErrCodeMalformedInput,
			line:     5,
			contains: `neighbor count (integer), got "x"`,
		},
		{
			name: "truncated",
			in:   "1\n1\n2\nA\n0\n",
			code: errs.ErrCodeMalformedInput,
			line: 5,
		},
		{
			name: "duplicate city",
			in:   "1\n1\n2\nA\n0\nA\n0\n0\n",
			code: errs.ErrCodeInvalidInput,
			line: 6,
		},
		{
			name: "negative cost",
			in:   "1\n1\n2\nA\n1\n2 -4\nB\n0\n0\n",
			code: errs.ErrCodeInvalidInput,
			line: 6,
		},
		{
			name:     "cost above maximum",
			in:       "1\n1\n3\nA\n1\n2 9223372036854775806\nB\n1\n3 5\nC\n0\n1\nA C\n",
			code:     errs.ErrCodeInvalidInput,
			line:     6,
			contains: "exceeds maximum",
		},
		{
			name: "catalan over limit",
			in:   "30\n0\n",
			opts: Options{MaxCatalan: 16},
			code: errs.ErrCodeInvalidInput,
			line: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.in, tt.opts)
			require.Error(t, err)
			assert.Equal(t, tt.code, errs.GetCode(err), "error: %v", err)
			assert.Equal(t, tt.line, errs.GetLine(err), "error: %v", err)
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}

func TestExecuteKeepsEarlierResults(t *testing.T) {
	out, _, err := run(t, "1\n1\n2\nA\n1\n2 1\nB\n0\n2\nA B\nA Z\n", Options{})
	require.Error(t, err)
	assert.Contains(t, out, "A -> B: 1\n")
}

func TestExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := Options{}
	require.NoError(t, opts.ValidateAndSetDefaults())
	var out bytes.Buffer
	r := NewRunner(nil)
	_, err := r.Execute(ctx, strings.NewReader(sampleInput), NewSink(&out, opts, r.RunID), opts)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecuteInvalidOptions(t *testing.T) {
	r := NewRunner(nil)
	_, err := r.Execute(context.Background(), strings.NewReader(sampleInput), &TextSink{w: &bytes.Buffer{}}, Options{Format: "xml"})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidFormat))
}

func TestExecuteMemo(t *testing.T) {
	out, _, err := run(t, "40\n0\n", Options{Memo: true, MaxCatalan: 16})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "catalan(40) = 2622127042276492108820\n"), out)
}

func TestExecuteFactorialBase(t *testing.T) {
	out, _, err := run(t, "0\n0\n", Options{FactorialBase: 10})
	require.NoError(t, err)
	assert.Equal(t, "catalan(0) = 1\ndigitsum(10!) = 27\n", out)
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	cases   []int
	built   int
	queries int
	numbers []string
}

func (h *recordingHooks) OnNumber(_ context.Context, kind string, _ int, _ time.Duration) {
	h.numbers = append(h.numbers, kind)
}
func (h *recordingHooks) OnCaseStart(_ context.Context, no int) { h.cases = append(h.cases, no) }
func (h *recordingHooks) OnGraphBuilt(context.Context, int, int, int, time.Duration, error) {
	h.built++
}
func (h *recordingHooks) OnQuery(context.Context, int, string, string, bool, time.Duration, error) {
	h.queries++
}

func TestExecuteEmitsHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetPipelineHooks(h)
	t.Cleanup(observability.Reset)

	_, _, err := run(t, sampleInput, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"catalan", "digitsum"}, h.numbers)
	assert.Equal(t, []int{1}, h.cases)
	assert.Equal(t, 1, h.built)
	assert.Equal(t, 2, h.queries)
}

func TestReadAll(t *testing.T) {
	n, cases, err := ReadAll(strings.NewReader(sampleInput))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	require.Len(t, cases, 1)
	assert.Equal(t, 1, cases[0].No)
	assert.Equal(t, 4, cases[0].Graph.NodeCount())
	assert.Equal(t, []Query{
		{From: "gdansk", To: "warszawa", Line: 23},
		{From: "bydgoszcz", To: "warszawa", Line: 24},
	}, cases[0].Queries)
}
