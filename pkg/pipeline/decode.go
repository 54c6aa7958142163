package pipeline

import (
	"io"

	"github.com/matzehuels/citypaths/pkg/citygraph"
	errs "github.com/matzehuels/citypaths/pkg/errors"
	"github.com/matzehuels/citypaths/pkg/input"
)

// Query is one (start, end) pair read from input.
type Query struct {
	From string
	To   string
	Line int // input line of the pair, for diagnostics
}

// Decoder reads protocol items in order. Callers must follow the protocol
// sequence: CatalanInput, CaseCount, then per case Graph, QueryCount, and
// Query repeatedly.
type Decoder struct {
	r *input.Reader
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: input.NewReader(r)}
}

// CatalanInput reads N.
func (d *Decoder) CatalanInput() (int, error) {
	return d.r.Count("catalan input N")
}

// CaseCount reads the number of test cases.
func (d *Decoder) CaseCount() (int, error) {
	return d.r.Count("test case count")
}

// Graph reads one test case's cities and returns the frozen graph.
// Edge targets are checked against the declared city count as they are read,
// so INVALID_INDEX errors point at the offending line.
func (d *Decoder) Graph() (*citygraph.Graph, error) {
	count, err := d.r.Count("city count")
	if err != nil {
		return nil, err
	}
	b, err := citygraph.NewBuilder(count)
	if err != nil {
		return nil, errs.AtLine(err, d.r.LineNo())
	}

	for i := 1; i <= b.Expected(); i++ {
		name, err := d.r.Line("city name")
		if err != nil {
			return nil, err
		}
		nameLine := d.r.LineNo()

		neighbors, err := d.r.Count("neighbor count")
		if err != nil {
			return nil, err
		}
		edges := make([]citygraph.Edge, 0, neighbors)
		for j := 0; j < neighbors; j++ {
			to, err := d.r.Int("neighbor index")
			if err != nil {
				return nil, err
			}
			if to < 1 || to > count {
				return nil, errs.AtLine(errs.New(errs.ErrCodeInvalidIndex,
					"city %q: neighbor index %d out of range [1, %d]", name, to, count), d.r.LineNo())
			}
			cost, err := d.r.Int("edge cost")
			if err != nil {
				return nil, err
			}
			if err := citygraph.CheckCost(int64(cost)); err != nil {
				return nil, errs.AtLine(errs.New(errs.ErrCodeInvalidInput,
					"city %q: edge to %d: %s", name, to, errs.UserMessage(err)), d.r.LineNo())
			}
			edges = append(edges, citygraph.Edge{To: to, Cost: int64(cost)})
		}

		if _, err := b.Declare(name, edges...); err != nil {
			return nil, errs.AtLine(err, nameLine)
		}
	}

	g, err := b.Freeze()
	if err != nil {
		return nil, errs.AtLine(err, d.r.LineNo())
	}
	return g, nil
}

// QueryCount reads the number of queries for the current case.
func (d *Decoder) QueryCount() (int, error) {
	return d.r.Count("query count")
}

// Query reads one (start, end) pair.
func (d *Decoder) Query() (Query, error) {
	from, err := d.r.Token("start city")
	if err != nil {
		return Query{}, err
	}
	line := d.r.LineNo()
	to, err := d.r.Token("end city")
	if err != nil {
		return Query{}, err
	}
	return Query{From: from, To: to, Line: line}, nil
}

// Case is a fully decoded test case: its graph and all of its queries.
type Case struct {
	No      int
	Graph   *citygraph.Graph
	Queries []Query
}

// ReadAll decodes the whole stream without answering any query.
// It returns the Catalan input and every case; tools that inspect graphs
// (such as DOT export) use it instead of a Runner.
func ReadAll(r io.Reader) (int, []Case, error) {
	d := NewDecoder(r)
	n, err := d.CatalanInput()
	if err != nil {
		return 0, nil, err
	}
	count, err := d.CaseCount()
	if err != nil {
		return 0, nil, err
	}

	cases := make([]Case, 0, count)
	for no := 1; no <= count; no++ {
		g, err := d.Graph()
		if err != nil {
			return 0, nil, err
		}
		qn, err := d.QueryCount()
		if err != nil {
			return 0, nil, err
		}
		c := Case{No: no, Graph: g, Queries: make([]Query, 0, qn)}
		for i := 0; i < qn; i++ {
			q, err := d.Query()
			if err != nil {
				return 0, nil, err
			}
			c.Queries = append(c.Queries, q)
		}
		cases = append(cases, c)
	}
	return n, cases, nil
}
