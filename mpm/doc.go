// Package mpm implements the Malhotra–Kumar–Maheshwari maximum-flow
// algorithm over a *network.Network in O(V³) worst-case time.
//
// The algorithm proceeds in phases. Each phase:
//
//  1. Builds the residual graph of the current flow assignment: a forward
//     edge u→v with capacity cap−flow for every unsaturated arc, and a
//     backward edge v→u with capacity flow for every arc carrying flow.
//  2. Layers the residual graph breadth-first from the source and keeps
//     only edges advancing one layer, truncated at the sink's layer. If
//     the sink is unreachable, the current flow is maximum and the driver
//     stops — this is the sole termination condition.
//  3. Finds a blocking flow in the layered network: repeatedly select the
//     node with minimum throughput (the smaller of its total incoming and
//     total outgoing residual capacity), push that amount breadth-first
//     toward the sink and pull the same amount from the source side,
//     saturating edges as it goes. Nodes whose throughput drops to zero
//     are pruned to a fixpoint between selections.
//  4. Merges the phase's signed flow deltas back onto the network. A delta
//     over a backward edge cancels previously assigned flow on the
//     original arc rather than adding new flow.
//
// Every phase strictly increases the source-to-sink distance in the
// residual graph, so at most V−1 phases run; each blocking-flow iteration
// saturates at least one edge, giving the cubic total bound.
//
// # API
//
// The single entry point is
//
//	func MaxFlow(net *network.Network, source, sink string, opts Options) (int64, error)
//
// The network's flows are updated in place and the returned value equals
// the total flow leaving the source. Options carries a context (checked
// once per phase) and an Observer whose hooks fire at phase start/end,
// node pruning, and edge saturation; the default observer is a no-op, so
// the engine itself never logs.
//
// All order-sensitive choices (breadth-first discovery, pruning scans,
// minimum-throughput tie-breaks) iterate node IDs in sorted order. Which
// blocking flow is found therefore depends only on the input, though any
// deterministic order would yield the same max-flow value.
//
// # Errors
//
//	ErrSourceNotFound / ErrSinkNotFound — endpoint absent from the network.
//	ErrSourceIsSink                     — source == sink is rejected up front.
//	network.ErrNodeNotFound, network.ErrSelfLoop, network.ArcError —
//	                                      surfaced by the pre-flight Validate.
//	context.Canceled / context.DeadlineExceeded — opts.Ctx canceled.
package mpm
