package mpm

import "sort"

// capValue is a capacity sum that may be unbounded. The source's in-capacity
// and the sink's out-capacity are unbounded by definition; a tagged value
// avoids the overflow and comparison pitfalls of a numeric maximum.
type capValue struct {
	infinite bool
	value    int64
}

// unbounded is the tagged infinity.
var unbounded = capValue{infinite: true}

// finite wraps a concrete capacity sum.
func finite(v int64) capValue { return capValue{value: v} }

// sub decrements a finite value; unbounded values are unaffected.
func (c capValue) sub(v int64) capValue {
	if c.infinite {
		return c
	}

	return finite(c.value - v)
}

// isZero reports whether c is exactly zero (never true for unbounded).
func (c capValue) isZero() bool { return !c.infinite && c.value == 0 }

// less reports c < o under unbounded semantics.
func (c capValue) less(o capValue) bool {
	switch {
	case c.infinite:
		return false
	case o.infinite:
		return true
	default:
		return c.value < o.value
	}
}

// minCap returns the smaller of a and b.
func minCap(a, b capValue) capValue {
	if b.less(a) {
		return b
	}

	return a
}

// throughput holds a node's total incoming and outgoing residual capacity
// within the layered network.
type throughput struct {
	in  capValue
	out capValue
}

// value is the node's bottleneck: min(in, out).
func (t *throughput) value() capValue { return minCap(t.in, t.out) }

// throughputTable maps node → throughput. Built once per blocking-flow
// iteration, then kept consistent incrementally by pruning and push/pull.
type throughputTable map[string]*throughput

// computeThroughput tabulates every layered-network node. Saturated edges
// carry zero capacity, so they contribute nothing.
// Complexity: O(V + E).
func computeThroughput(source, sink string, aux *auxNetwork) throughputTable {
	tt := make(throughputTable, len(aux.succ))
	for id := range aux.succ {
		t := &throughput{}
		if id == source {
			t.in = unbounded
		} else {
			var in int64
			for _, e := range aux.pred[id] {
				in += e.cap
			}
			t.in = finite(in)
		}
		if id == sink {
			t.out = unbounded
		} else {
			var out int64
			for _, e := range aux.succ[id] {
				out += e.cap
			}
			t.out = finite(out)
		}
		tt[id] = t
	}

	return tt
}

// nodes returns the tabulated node IDs sorted ascending.
func (tt throughputTable) nodes() []string {
	ids := make([]string, 0, len(tt))
	for id := range tt {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
