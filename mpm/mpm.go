package mpm

import (
	"sort"

	"github.com/katalvlaran/mpmflow/network"
)

// MaxFlow computes the maximum flow from source to sink in net using the
// MPM algorithm, updating arc flows in place.
//
// It returns:
//   - value: the total flow leaving source once no augmenting path remains
//   - err:   ErrSourceNotFound, ErrSinkNotFound, ErrSourceIsSink, a
//     validation error from the network package, or a context error
//
// Steps:
//  1. Normalize options; reject source == sink and missing endpoints.
//  2. Validate the network's preconditions (O(V log V + E log d_max)).
//  3. Repeat per phase: check cancellation, build the residual graph, layer
//     it from the source; if the sink is unreachable the flow is maximum
//     and the loop ends. Otherwise compute a blocking flow on the layered
//     network and merge its deltas onto net.
//  4. Return the flow total on arcs leaving source.
//
// A network that already carries a feasible flow is continued from that
// assignment; re-running on an already-maximal network changes nothing.
//
// Complexity:
//
//	Time:   O(V³) — at most V−1 phases, O(V²) per blocking flow.
//	Memory: O(V + E) per phase for the residual and layered structures.
func MaxFlow(net *network.Network, source, sink string, opts Options) (int64, error) {
	opts.normalize()

	if source == sink {
		return 0, ErrSourceIsSink
	}
	if !net.HasNode(source) {
		return 0, ErrSourceNotFound
	}
	if !net.HasNode(sink) {
		return 0, ErrSinkNotFound
	}
	if err := net.Validate(); err != nil {
		return 0, err
	}

	phase := 0
	for {
		if err := opts.Ctx.Err(); err != nil {
			return 0, err
		}

		aux := buildAuxiliary(source, sink, buildResidual(source, net))
		if aux == nil {
			break
		}

		phase++
		opts.Observer.PhaseStart(phase)
		delta := constructBlockingFlow(source, sink, aux, opts.Observer)
		mergeDelta(net, delta)
		opts.Observer.PhaseEnd(phase)
	}

	return net.OutgoingFlow(source), nil
}

// mergeDelta applies a phase's signed deltas onto the network. Every delta
// key is an original arc (record guarantees this), so positive amounts add
// assigned flow and negative amounts net out earlier assignments.
func mergeDelta(net *network.Network, delta flowDelta) {
	froms := make([]string, 0, len(delta))
	for from := range delta {
		froms = append(froms, from)
	}
	sort.Strings(froms)
	for _, from := range froms {
		for _, to := range sortedKeys(delta[from]) {
			if a, ok := net.Arc(from, to); ok {
				a.Flow += delta[from][to]
			}
		}
	}
}

// sortedKeys returns m's keys sorted ascending.
func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
