package mpm

// flowDelta accumulates one phase's signed flow changes:
// delta[u][v] > 0 adds flow to arc (u,v), delta[u][v] < 0 cancels flow
// previously assigned to it. Keys are always original arcs, never synthetic
// reverse pairs.
type flowDelta map[string]map[string]int64

// add accumulates amount onto the (from,to) entry.
func (d flowDelta) add(from, to string, amount int64) {
	inner, ok := d[from]
	if !ok {
		inner = make(map[string]int64)
		d[from] = inner
	}
	inner[to] += amount
}

// record attributes a transfer of amount over a layered-network edge
// from→to back to its original arc: a forward edge assigns +amount on
// (from,to); a backward edge cancels amount on the reversed pair (to,from).
func (d flowDelta) record(from, to string, dir direction, amount int64) {
	if dir == backward {
		d.add(to, from, -amount)

		return
	}
	d.add(from, to, amount)
}

// push distributes h units breadth-first from y toward the sink.
//
// Each frontier node v with outstanding requirement req[v] > 0 forwards as
// much as its still-usable outgoing edges allow: a transfer of m decrements
// the edge capacity (marking it used at zero), moves m from req[v] to
// req[n], and records m on the delta map with the edge's direction
// semantics. The cumulative amount leaving y never exceeds h, because y's
// throughput at selection time bounds what its edges can absorb.
func push(y string, h int64, sink string, aux *auxNetwork, tt throughputTable, delta flowDelta, obs Observer) {
	req := map[string]int64{y: h}
	queue := []string{y}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, n := range aux.successorIDs(v) {
			if req[v] == 0 {
				break
			}
			e := aux.succ[v][n]
			if e.used {
				continue
			}
			m := min(e.cap, req[v])
			if m == 0 {
				continue
			}
			e.cap -= m
			tt[v].out = tt[v].out.sub(m)
			tt[n].in = tt[n].in.sub(m)
			if e.cap == 0 {
				e.used = true
				obs.EdgeSaturated(v, n)
			}
			req[v] -= m
			req[n] += m
			if n != sink {
				queue = append(queue, n)
			}
			delta.record(v, n, e.dir, m)
		}
	}
}

// pull is the mirror of push: it draws h units into y from the source side,
// traversing predecessors instead of successors with the same saturation
// and bookkeeping rules.
func pull(y string, h int64, source string, aux *auxNetwork, tt throughputTable, delta flowDelta, obs Observer) {
	req := map[string]int64{y: h}
	queue := []string{y}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, p := range aux.predecessorIDs(v) {
			if req[v] == 0 {
				break
			}
			e := aux.pred[v][p]
			if e.used {
				continue
			}
			m := min(e.cap, req[v])
			if m == 0 {
				continue
			}
			e.cap -= m
			tt[p].out = tt[p].out.sub(m)
			tt[v].in = tt[v].in.sub(m)
			if e.cap == 0 {
				e.used = true
				obs.EdgeSaturated(p, v)
			}
			req[v] -= m
			req[p] += m
			if p != source {
				queue = append(queue, p)
			}
			delta.record(p, v, e.dir, m)
		}
	}
}
