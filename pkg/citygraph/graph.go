package citygraph

import (
	"math"

	errs "github.com/matzehuels/citypaths/pkg/errors"
)

// MaxCost is the largest accepted edge cost. Any path over at most
// math.MaxInt32 edges then sums to less than math.MaxInt64.
const MaxCost = math.MaxInt32

// CheckCost fails with INVALID_INPUT unless cost lies in [0, MaxCost].
func CheckCost(cost int64) error {
	if cost < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "negative cost %d", cost)
	}
	if cost > MaxCost {
		return errs.New(errs.ErrCodeInvalidInput, "cost %d exceeds maximum %d", cost, MaxCost)
	}
	return nil
}

// Edge is a directed, weighted connection owned by its source city.
type Edge struct {
	To   int   // 1-based index of the target city
	Cost int64 // Non-negative traversal cost
}

// Graph is the frozen graph of one test case.
// The zero value is an empty graph with no cities.
type Graph struct {
	names    []string       // index -> name; names[0] unused
	index    map[string]int // name -> index
	outgoing [][]Edge       // index -> edges in input order; outgoing[0] unused
	edges    int
}

// NodeCount returns the number of declared cities.
func (g *Graph) NodeCount() int {
	if len(g.names) == 0 {
		return 0
	}
	return len(g.names) - 1
}

// EdgeCount returns the total number of edges, parallel edges included.
func (g *Graph) EdgeCount() int { return g.edges }

// Contains reports whether i is a valid city index.
func (g *Graph) Contains(i int) bool { return i >= 1 && i <= g.NodeCount() }

// Name returns the display name of city i, or "" if i is out of range.
func (g *Graph) Name(i int) string {
	if !g.Contains(i) {
		return ""
	}
	return g.names[i]
}

// Names returns city names in index order (index 1 first).
func (g *Graph) Names() []string {
	if len(g.names) == 0 {
		return nil
	}
	return append([]string(nil), g.names[1:]...)
}

// Resolve returns the index assigned to name.
// Names are matched exactly; an undeclared name fails with UNKNOWN_CITY.
func (g *Graph) Resolve(name string) (int, error) {
	i, ok := g.index[name]
	if !ok {
		return 0, errs.New(errs.ErrCodeUnknownCity, "unknown city %q", name)
	}
	return i, nil
}

// Edges returns the outgoing edges of city i in input order.
// The returned slice must not be modified. Out-of-range indices have no edges.
func (g *Graph) Edges(i int) []Edge {
	if !g.Contains(i) {
		return nil
	}
	return g.outgoing[i]
}

// CheckIndex fails with INVALID_INDEX unless i lies in [1, NodeCount].
func (g *Graph) CheckIndex(i int) error {
	if !g.Contains(i) {
		return errs.New(errs.ErrCodeInvalidIndex, "index %d out of range [1, %d]", i, g.NodeCount())
	}
	return nil
}
