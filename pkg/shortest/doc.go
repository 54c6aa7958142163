// Package shortest answers minimum-cost queries on a frozen [citygraph.Graph].
//
// Each query runs a single-source Dijkstra from scratch and stops as soon as
// the target leaves the frontier:
//
//  1. dist[source] = 0, every other entry is infinite.
//  2. The frontier is a binary min-heap keyed by tentative distance, seeded
//     with (source, 0).
//  3. Pop the minimum. If it is the target, return dist[target]. Otherwise
//     relax each outgoing edge and push (to, newDist) whenever newDist is
//     strictly smaller than dist[to].
//  4. An empty frontier means the target is unreachable.
//
// No visited set is kept. Stale frontier entries are tolerated (lazy
// deletion): a node may be popped more than once, but relaxing it again
// cannot improve any distance, so later pops do no work.
//
// Complexity per query is O((V + E) log E) time and O(V + E) space.
//
// Results are [Cost] values. An unreachable target is the [Unreachable]
// sentinel, never an error; errors are reserved for invalid indices
// (INVALID_INDEX) and unknown names (UNKNOWN_CITY).
//
// Edge costs must be non-negative; [citygraph.Builder] rejects negative ones.
package shortest
