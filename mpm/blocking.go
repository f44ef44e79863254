package mpm

// constructBlockingFlow drives one phase to a blocking flow on the layered
// network and returns the accumulated flow deltas.
//
// Loop: recompute the throughput table, prune zero-throughput nodes (which
// may end the phase), stop if source or sink fell out of the network,
// otherwise select the node with globally minimum throughput (first in
// sorted order on ties), push that amount toward the sink and pull the same
// amount from the source side. Every iteration saturates at least one edge,
// so the loop runs at most E times.
//
// The layered network is consumed destructively and must be discarded
// afterwards.
func constructBlockingFlow(source, sink string, aux *auxNetwork, obs Observer) flowDelta {
	delta := make(flowDelta)
	for {
		tt := computeThroughput(source, sink, aux)
		if !pruneZeroThroughput(source, sink, aux, tt, obs) {
			return delta
		}
		if !aux.has(source) || !aux.has(sink) {
			return delta
		}

		var minNode string
		minVal := unbounded
		for _, n := range tt.nodes() {
			if v := tt[n].value(); v.less(minVal) {
				minNode, minVal = n, v
			}
		}

		push(minNode, minVal.value, sink, aux, tt, delta, obs)
		pull(minNode, minVal.value, source, aux, tt, delta, obs)
	}
}
