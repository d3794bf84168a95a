// Package basegraph turns a validated core.Config into the first, simplest
// graph of the delivery network: a pruned, capacity-carrying, undirected
// adjacency structure that is proven to hold at least one path from the
// start hub to the end hub.
//
// Pipeline (FromConfig)
//
//  1. PruneHubs drops every blocked hub and produces a fresh compacted hub
//     set with dense zero-based ids, preserving relative order. The input
//     slice is never mutated, so pruning is idempotent and repeat-safe.
//  2. PruneConnections keeps only connections whose both endpoints survive,
//     decided by name-set membership, independent of the renumbering.
//  3. BuildAdjacency resolves endpoint names to the new ids and records two
//     directed BaseEdge entries per connection (id1→id2 and id2→id1), each
//     carrying the connection's capacity. Nothing is merged: duplicate
//     connections contribute independent edge pairs, and a self-loop (which
//     the directive parser rejects, but this layer represents) contributes
//     exactly two edges from the hub to itself.
//  4. HasPath proves reachability from start to end by breadth-first search.
//     Existence only; no path is recorded.
//
// Every stage fails fast with a sentinel error; a BaseGraph is returned only
// after the reachability proof succeeds. The structure is never mutated
// afterwards: downstream flow solvers build their own residual graphs on top.
//
// Complexity: O(V + E) time and memory end to end.
package basegraph
