// Package citygraph builds the weighted directed city graph of one test case.
//
// Graphs are assembled in two phases. A [Builder] accepts node declarations in
// input order, assigning each city the next 1-based index and recording its
// outgoing edges. [Builder.Freeze] checks the declaration count and every edge
// target, then hands back an immutable [Graph] that queries only read.
//
//	b, _ := citygraph.NewBuilder(3)
//	b.Declare("A", citygraph.Edge{To: 2, Cost: 1}, citygraph.Edge{To: 3, Cost: 5})
//	b.Declare("B", citygraph.Edge{To: 3, Cost: 1})
//	b.Declare("C")
//	g, err := b.Freeze()
//
// # Indices
//
// Index 0 is never assigned so that edge targets read from input can be used
// directly. Parallel edges between the same pair are kept in input order.
//
// # Concurrency
//
// A Builder is not safe for concurrent use. A frozen Graph is safe for
// concurrent reads.
package citygraph
