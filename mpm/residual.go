package mpm

import (
	"sort"

	"github.com/katalvlaran/mpmflow/network"
)

// residualEdge is one edge of the per-phase residual graph.
type residualEdge struct {
	cap int64
	dir direction
}

// residualGraph maps node → node → edge. Every node reachable from the
// source has an entry, possibly with an empty inner map.
type residualGraph map[string]map[string]*residualEdge

// buildResidual derives the residual graph of net under its current flow
// assignment, traversing breadth-first from source over the network's
// adjacency so nodes unreachable from the source are excluded.
//
// For each arc (u,v): cap−flow > 0 yields a forward edge u→v with the
// residual capacity; flow > 0 yields a backward edge v→u with capacity equal
// to the flow. When opposite arcs make both a forward and a backward edge
// claim the same ordered pair, the forward edge wins the slot; deltas always
// attach to original arcs, so feasibility is unaffected.
//
// Assumes a loop-free network whose referenced nodes all exist (enforced by
// the driver's pre-flight Validate).
// Complexity: O(V log V + E log d_max) for the sorted traversal.
func buildResidual(source string, net *network.Network) residualGraph {
	nr := make(residualGraph)
	nr.ensure(source)

	queue := []string{source}
	visited := map[string]bool{source: true}
	for len(queue) > 0 {
		now := queue[0]
		queue = queue[1:]
		for _, to := range net.Successors(now) {
			a, _ := net.Arc(now, to)
			nr.ensure(to)
			if r := a.Cap - a.Flow; r > 0 {
				nr[now][to] = &residualEdge{cap: r, dir: forward}
			}
			if a.Flow > 0 {
				// forward priority on collision with an opposite arc
				if _, taken := nr[to][now]; !taken {
					nr[to][now] = &residualEdge{cap: a.Flow, dir: backward}
				}
			}
			if !visited[to] {
				visited[to] = true
				queue = append(queue, to)
			}
		}
	}

	return nr
}

// ensure bootstraps the inner map for id.
func (nr residualGraph) ensure(id string) {
	if _, ok := nr[id]; !ok {
		nr[id] = make(map[string]*residualEdge)
	}
}

// successorIDs returns the residual successors of id sorted ascending.
func (nr residualGraph) successorIDs(id string) []string {
	out := make([]string, 0, len(nr[id]))
	for to := range nr[id] {
		out = append(out, to)
	}
	sort.Strings(out)

	return out
}
