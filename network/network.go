package network

import "sort"

// AddNode inserts a node if missing (idempotent).
// Returns ErrEmptyNodeID if id is empty.
// Complexity: O(1).
func (n *Network) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, ok := n.adj[id]; !ok {
		n.adj[id] = make(map[string]*Arc)
	}

	return nil
}

// AddArc inserts a directed arc from→to with the given capacity and initial
// flow, registering both endpoints in the node key space. Adding an arc that
// already exists aggregates capacities and flows, mirroring how parallel
// records in an input file describe one combined arc.
//
// Returns ErrEmptyNodeID, ErrSelfLoop, or ArcError when cap < 0 or
// flow ∉ [0, cap].
// Complexity: O(1) amortized.
func (n *Network) AddArc(from, to string, capacity, flow int64) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if from == to {
		return ErrSelfLoop
	}
	if capacity < 0 || flow < 0 || flow > capacity {
		return ArcError{From: from, To: to, Cap: capacity, Flow: flow}
	}
	if err := n.AddNode(from); err != nil {
		return err
	}
	if err := n.AddNode(to); err != nil {
		return err
	}

	if a, ok := n.adj[from][to]; ok {
		a.Cap += capacity
		a.Flow += flow
	} else {
		n.adj[from][to] = &Arc{Cap: capacity, Flow: flow}
	}

	return nil
}

// HasNode reports whether id is present in the node key space.
func (n *Network) HasNode(id string) bool {
	_, ok := n.adj[id]

	return ok
}

// HasArc reports whether the arc from→to exists.
func (n *Network) HasArc(from, to string) bool {
	_, ok := n.adj[from][to]

	return ok
}

// Arc returns the arc from→to, or (nil, false) if absent.
// The returned pointer aliases internal state; mutating Flow through it is
// how the mpm merger applies phase deltas.
func (n *Network) Arc(from, to string) (*Arc, bool) {
	a, ok := n.adj[from][to]

	return a, ok
}

// Nodes returns all node IDs sorted lexicographically ascending.
// Complexity: O(V log V).
func (n *Network) Nodes() []string {
	ids := make([]string, 0, len(n.adj))
	for id := range n.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Successors returns the IDs of all arc targets of id, sorted
// lexicographically ascending. Unknown IDs yield an empty slice.
// Complexity: O(deg log deg).
func (n *Network) Successors(id string) []string {
	out := make([]string, 0, len(n.adj[id]))
	for to := range n.adj[id] {
		out = append(out, to)
	}
	sort.Strings(out)

	return out
}

// NodeCount returns the number of nodes.
func (n *Network) NodeCount() int { return len(n.adj) }

// ArcCount returns the number of arcs.
func (n *Network) ArcCount() int {
	var c int
	for _, succ := range n.adj {
		c += len(succ)
	}

	return c
}

// OutgoingFlow returns the total flow on arcs leaving id.
// After mpm.MaxFlow completes, OutgoingFlow(source) is the max-flow value.
// Complexity: O(deg).
func (n *Network) OutgoingFlow(id string) int64 {
	var total int64
	for _, a := range n.adj[id] {
		total += a.Flow
	}

	return total
}

// IncomingFlow returns the total flow on arcs entering id.
// Complexity: O(V + E).
func (n *Network) IncomingFlow(id string) int64 {
	var total int64
	for _, succ := range n.adj {
		if a, ok := succ[id]; ok {
			total += a.Flow
		}
	}

	return total
}

// Validate checks the structural invariants the flow engine relies on:
// every arc endpoint has a node entry, no self-loops, and
// 0 ≤ flow ≤ capacity on every arc.
//
// Returns the first violation found (ErrNodeNotFound, ErrSelfLoop, or
// ArcError), scanning nodes and successors in sorted order so the reported
// violation is deterministic.
// Complexity: O(V log V + E log d_max).
func (n *Network) Validate() error {
	for _, from := range n.Nodes() {
		for _, to := range n.Successors(from) {
			if from == to {
				return ErrSelfLoop
			}
			if _, ok := n.adj[to]; !ok {
				return ErrNodeNotFound
			}
			a := n.adj[from][to]
			if a.Cap < 0 || a.Flow < 0 || a.Flow > a.Cap {
				return ArcError{From: from, To: to, Cap: a.Cap, Flow: a.Flow}
			}
		}
	}

	return nil
}

// Clone returns a deep copy of the network. The copy shares no state with
// the receiver, so one of them may be handed to mpm.MaxFlow while the other
// keeps the original flow assignment.
// Complexity: O(V + E).
func (n *Network) Clone() *Network {
	clone := New()
	for from, succ := range n.adj {
		clone.adj[from] = make(map[string]*Arc, len(succ))
		for to, a := range succ {
			clone.adj[from][to] = &Arc{Cap: a.Cap, Flow: a.Flow}
		}
	}

	return clone
}
