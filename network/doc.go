// Package network defines the capacitated flow network consumed and updated
// by the mpm engine.
//
// A Network is a directed graph whose arcs carry an integer capacity and an
// integer flow with 0 ≤ flow ≤ capacity. Both endpoints of every arc are
// always present in the node key space, so algorithms may index any endpoint
// without existence checks.
//
// Design points:
//
//   - Node IDs are strings; any non-empty token is a valid ID.
//   - All enumeration surfaces (Nodes, Successors) return IDs sorted
//     lexicographically ascending, so traversals over a Network are
//     reproducible run to run.
//   - The Network is a single-owner structure: the mpm driver mutates arc
//     flows in place between phases, and no internal locking is performed.
//     Callers needing concurrent reads must Clone first.
//
// Errors:
//
//	ErrEmptyNodeID  - node ID is the empty string.
//	ErrNodeNotFound - an arc endpoint is missing from the node key space.
//	ErrSelfLoop     - arc from a node to itself.
//	ArcError        - capacity/flow bounds violated on an arc.
package network
