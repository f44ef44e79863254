// Package mpmflow computes maximum flows in directed capacitated networks
// using the Malhotra–Kumar–Maheshwari (MPM) algorithm — the classic O(V³)
// method built on layered networks and throughput-driven blocking flows.
//
// The repository is organized into three small packages plus a thin CLI:
//
//	network/    — the capacitated network model: arcs with capacity and
//	              flow, deterministic accessors, validation and cloning
//	mpm/        — the engine: residual graph, layered auxiliary network,
//	              per-node throughput, push/pull blocking flows, and the
//	              phase-driven driver mpm.MaxFlow
//	netio/      — reader/writer for the plain "from to capacity [flow]"
//	              record format
//	cmd/mpmflow — command-line front end over netio + mpm
//
// Quick start:
//
//	net := network.New()
//	_ = net.AddArc("s", "a", 10, 0)
//	_ = net.AddArc("a", "t", 10, 0)
//	value, err := mpm.MaxFlow(net, "s", "t", mpm.DefaultOptions())
//
// The network is updated in place: after MaxFlow returns, every arc carries
// its share of a maximum feasible flow, and value equals the total flow
// leaving the source.
package mpmflow
