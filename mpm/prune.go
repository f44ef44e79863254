package mpm

// pruneZeroThroughput removes zero-throughput nodes from the layered network
// to a fixpoint, keeping the throughput table consistent: a removed node's
// remaining edge capacities are subtracted from its neighbors' in/out sums.
//
// Returns false when the source or sink itself reaches zero throughput —
// the signal that the phase's blocking flow is already maximal and no more
// pushes may happen this phase. Source and sink are never removed.
// Complexity: O(V² log V) worst case across one phase.
func pruneZeroThroughput(source, sink string, aux *auxNetwork, tt throughputTable, obs Observer) bool {
	for {
		removed := false
		for _, n := range tt.nodes() {
			t, ok := tt[n]
			if !ok || !t.value().isZero() {
				continue
			}
			if n == source || n == sink {
				return false
			}
			for to, e := range aux.succ[n] {
				tt[to].in = tt[to].in.sub(e.cap)
			}
			for from, e := range aux.pred[n] {
				tt[from].out = tt[from].out.sub(e.cap)
			}
			aux.removeNode(n)
			delete(tt, n)
			obs.NodePruned(n)
			removed = true
		}
		if !removed {
			return true
		}
	}
}
