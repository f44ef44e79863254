package mpm

import "sort"

// auxEdge is one edge of the layered auxiliary network. cap shrinks as flow
// is pushed through; used flips when cap reaches zero and permanently
// excludes the edge for the rest of the phase (index-stable storage — no
// physical removal happens while a traversal is live).
type auxEdge struct {
	cap  int64
	dir  direction
	used bool
}

// auxNetwork is the layered auxiliary network of one phase: a DAG whose
// edges advance exactly one layer from the source. Successor and
// predecessor indexes share *auxEdge values so capacity updates are visible
// from both sides.
type auxNetwork struct {
	succ  map[string]map[string]*auxEdge
	pred  map[string]map[string]*auxEdge
	layer map[string]int
}

// buildAuxiliary layers the residual graph breadth-first from source and
// truncates it at the sink's layer.
//
// Discovery assigns each new node layer = predecessor's layer + 1; only
// edges advancing to a not-yet-layered node are retained, except edges into
// the already-layered sink, which join the network without touching the
// sink's fixed layer. After traversal every node with layer ≥ sink's layer,
// other than the sink itself, is removed with its incident edges.
//
// Returns nil when the sink was never reached: the global termination
// signal meaning the current flow is maximum.
// Complexity: O(V log V + E log d_max).
func buildAuxiliary(source, sink string, nr residualGraph) *auxNetwork {
	aux := &auxNetwork{
		succ:  make(map[string]map[string]*auxEdge),
		pred:  make(map[string]map[string]*auxEdge),
		layer: make(map[string]int),
	}
	aux.addNode(source)
	aux.layer[source] = 0

	queue := []string{source}
	for len(queue) > 0 {
		now := queue[0]
		queue = queue[1:]
		for _, to := range nr.successorIDs(now) {
			if _, seen := aux.layer[to]; seen {
				if to != sink {
					continue
				}
				// late edge into the sink keeps the sink's fixed layer
				aux.addEdge(now, to, nr[now][to])

				continue
			}
			aux.layer[to] = aux.layer[now] + 1
			aux.addEdge(now, to, nr[now][to])
			if to != sink {
				queue = append(queue, to)
			}
		}
	}

	sinkLayer, reached := aux.layer[sink]
	if !reached {
		return nil
	}
	for _, n := range aux.nodes() {
		if n != sink && aux.layer[n] >= sinkLayer {
			aux.removeNode(n)
		}
	}

	return aux
}

// addNode bootstraps the index maps for id.
func (a *auxNetwork) addNode(id string) {
	if _, ok := a.succ[id]; !ok {
		a.succ[id] = make(map[string]*auxEdge)
	}
	if _, ok := a.pred[id]; !ok {
		a.pred[id] = make(map[string]*auxEdge)
	}
}

// addEdge copies a residual edge into the layered network, indexing it from
// both endpoints.
func (a *auxNetwork) addEdge(from, to string, re *residualEdge) {
	a.addNode(from)
	a.addNode(to)
	e := &auxEdge{cap: re.cap, dir: re.dir}
	a.succ[from][to] = e
	a.pred[to][from] = e
}

// removeNode drops id and every incident edge from both indexes.
func (a *auxNetwork) removeNode(id string) {
	for to := range a.succ[id] {
		delete(a.pred[to], id)
	}
	for from := range a.pred[id] {
		delete(a.succ[from], id)
	}
	delete(a.succ, id)
	delete(a.pred, id)
	delete(a.layer, id)
}

// has reports whether id is still part of the layered network.
func (a *auxNetwork) has(id string) bool {
	_, ok := a.succ[id]

	return ok
}

// nodes returns the current node set sorted ascending.
func (a *auxNetwork) nodes() []string {
	ids := make([]string, 0, len(a.succ))
	for id := range a.succ {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// successorIDs returns the downstream neighbors of id sorted ascending.
func (a *auxNetwork) successorIDs(id string) []string {
	out := make([]string, 0, len(a.succ[id]))
	for to := range a.succ[id] {
		out = append(out, to)
	}
	sort.Strings(out)

	return out
}

// predecessorIDs returns the upstream neighbors of id sorted ascending.
func (a *auxNetwork) predecessorIDs(id string) []string {
	out := make([]string, 0, len(a.pred[id]))
	for from := range a.pred[id] {
		out = append(out, from)
	}
	sort.Strings(out)

	return out
}
