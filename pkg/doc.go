// Package pkg holds the libraries behind the citypaths command.
//
// # Overview
//
// citypaths reads a stream of test cases, each a weighted directed graph of
// named cities followed by route queries, and answers every query with the
// cheapest total cost. Two number-theory results are printed first.
//
//  1. [numtheory] - Catalan numbers and factorial digit sums on math/big
//  2. [citygraph] - two-phase graph construction (declare, then freeze)
//  3. [shortest] - Dijkstra search with early exit and optional routes
//  4. [input] - line and token reader for the input protocol
//  5. [pipeline] - end-to-end runs with text or JSON output
//  6. [render] - Graphviz export of a single test case
//
// # Architecture
//
//	input stream
//	     ↓
//	[input] tokens and lines, with line numbers
//	     ↓
//	[pipeline] decode ──→ [citygraph] Builder.Declare ... Freeze
//	     ↓
//	[shortest] PathCost per query
//	     ↓
//	[pipeline] Sink (text or JSON lines)
//
// # Quick Start
//
//	b, _ := citygraph.NewBuilder(2)
//	b.Declare("gdansk", citygraph.Edge{To: 2, Cost: 4})
//	b.Declare("torun")
//	g, _ := b.Freeze()
//
//	cost, _ := shortest.PathCostByName(g, "gdansk", "torun")
//	fmt.Println(cost) // 4
//
// Errors carry a code from [errors] and, for input problems, the 1-based line
// they were found on.
package pkg
