package shortest

import (
	"container/heap"
	"math"

	"github.com/matzehuels/citypaths/pkg/citygraph"
	errs "github.com/matzehuels/citypaths/pkg/errors"
)

const infinity = math.MaxInt64

// PathCost returns the minimal cost of a directed path from source to target.
// Both indices must lie in [1, g.NodeCount()], otherwise INVALID_INDEX is
// returned. Querying a city against itself costs 0.
func PathCost(g *citygraph.Graph, source, target int) (Cost, error) {
	r, err := newRun(g, source, target, false)
	if err != nil {
		return Unreachable, err
	}
	return r.search(), nil
}

// Route is PathCost plus the city indices of one minimal path, source first.
// The path is nil when the target is unreachable.
func Route(g *citygraph.Graph, source, target int) (Cost, []int, error) {
	r, err := newRun(g, source, target, true)
	if err != nil {
		return Unreachable, nil, err
	}
	c := r.search()
	if !c.Reachable {
		return c, nil, nil
	}
	return c, r.path(), nil
}

// PathCostByName resolves both city names in g and runs PathCost.
func PathCostByName(g *citygraph.Graph, from, to string) (Cost, error) {
	source, err := g.Resolve(from)
	if err != nil {
		return Unreachable, err
	}
	target, err := g.Resolve(to)
	if err != nil {
		return Unreachable, err
	}
	return PathCost(g, source, target)
}

// run holds the state of a single query. Nothing in it outlives the query.
type run struct {
	g      *citygraph.Graph
	source int
	target int
	dist   []int64
	prev   []int // nil unless a route was requested
	pq     frontier
}

func newRun(g *citygraph.Graph, source, target int, withPrev bool) (*run, error) {
	if g == nil {
		return nil, errs.New(errs.ErrCodeInvalidInput, "graph is nil")
	}
	if err := g.CheckIndex(source); err != nil {
		return nil, err
	}
	if err := g.CheckIndex(target); err != nil {
		return nil, err
	}

	n := g.NodeCount()
	dist := make([]int64, n+1)
	for i := range dist {
		dist[i] = infinity
	}
	dist[source] = 0

	r := &run{g: g, source: source, target: target, dist: dist}
	if withPrev {
		r.prev = make([]int, n+1)
	}
	return r, nil
}

func (r *run) search() Cost {
	heap.Push(&r.pq, entry{city: r.source, dist: 0})

	for r.pq.Len() > 0 {
		cur := heap.Pop(&r.pq).(entry)
		if cur.city == r.target {
			return Reached(r.dist[r.target])
		}
		r.relax(cur.city)
	}
	return Unreachable
}

// relax tries every outgoing edge of city, parallel edges included.
func (r *run) relax(city int) {
	base := r.dist[city]
	for _, e := range r.g.Edges(city) {
		if e.Cost >= infinity-base {
			continue // sum would overflow
		}
		newDist := base + e.Cost
		if newDist < r.dist[e.To] {
			r.dist[e.To] = newDist
			if r.prev != nil {
				r.prev[e.To] = city
			}
			heap.Push(&r.pq, entry{city: e.To, dist: newDist})
		}
	}
}

// path walks predecessors back from the target.
func (r *run) path() []int {
	var rev []int
	for c := r.target; c != r.source; c = r.prev[c] {
		rev = append(rev, c)
	}
	rev = append(rev, r.source)

	out := make([]int, len(rev))
	for i, c := range rev {
		out[len(rev)-1-i] = c
	}
	return out
}
