package citygraph

import (
	errs "github.com/matzehuels/citypaths/pkg/errors"
)

// Builder accumulates city declarations for one test case.
// The zero value is not usable; use NewBuilder.
type Builder struct {
	expected int
	g        *Graph
	frozen   bool
}

// NewBuilder starts a graph that expects exactly nodeCount declarations.
func NewBuilder(nodeCount int) (*Builder, error) {
	if nodeCount < 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "negative city count %d", nodeCount)
	}
	g := &Graph{
		names:    make([]string, 1, nodeCount+1),
		index:    make(map[string]int, nodeCount),
		outgoing: make([][]Edge, 1, nodeCount+1),
	}
	return &Builder{expected: nodeCount, g: g}, nil
}

// Expected returns the number of declarations the builder waits for.
func (b *Builder) Expected() int { return b.expected }

// Declared returns the number of cities declared so far.
func (b *Builder) Declared() int { return b.g.NodeCount() }

// Declare assigns the next index to name and records its outgoing edges.
// Edge targets may reference cities declared later; they are checked by Freeze.
func (b *Builder) Declare(name string, edges ...Edge) (int, error) {
	if b.frozen {
		return 0, errs.New(errs.ErrCodeInvalidInput, "graph is frozen")
	}
	if b.Declared() >= b.expected {
		return 0, errs.New(errs.ErrCodeInvalidInput, "city %q exceeds declared count %d", name, b.expected)
	}
	if err := errs.ValidateCityName(name); err != nil {
		return 0, err
	}
	if _, dup := b.g.index[name]; dup {
		return 0, errs.New(errs.ErrCodeInvalidInput, "duplicate city %q", name)
	}
	for _, e := range edges {
		if err := CheckCost(e.Cost); err != nil {
			return 0, errs.New(errs.ErrCodeInvalidInput, "edge %q -> %d: %s", name, e.To, errs.UserMessage(err))
		}
	}

	i := len(b.g.names)
	b.g.names = append(b.g.names, name)
	b.g.index[name] = i
	b.g.outgoing = append(b.g.outgoing, append([]Edge(nil), edges...))
	b.g.edges += len(edges)
	return i, nil
}

// Resolve returns the index already assigned to name.
func (b *Builder) Resolve(name string) (int, error) {
	return b.g.Resolve(name)
}

// Freeze ends the build phase and returns the immutable graph.
// It fails if fewer cities than expected were declared, or with INVALID_INDEX
// if an edge points outside [1, nodeCount].
func (b *Builder) Freeze() (*Graph, error) {
	if b.frozen {
		return nil, errs.New(errs.ErrCodeInvalidInput, "graph is already frozen")
	}
	if got := b.Declared(); got != b.expected {
		return nil, errs.New(errs.ErrCodeInvalidInput, "declared %d of %d cities", got, b.expected)
	}
	for from := 1; from < len(b.g.outgoing); from++ {
		for _, e := range b.g.outgoing[from] {
			if !b.g.Contains(e.To) {
				return nil, errs.New(errs.ErrCodeInvalidIndex,
					"edge %q -> %d: target out of range [1, %d]", b.g.names[from], e.To, b.expected)
			}
		}
	}
	b.frozen = true
	return b.g, nil
}
