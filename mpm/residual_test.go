package mpm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mpmflow/network"
)

// testArc is a compact arc literal for white-box tests.
type testArc struct {
	from, to  string
	cap, flow int64
}

// buildNet assembles a network from arc literals, failing on construction errors.
func buildNet(t *testing.T, arcs ...testArc) *network.Network {
	t.Helper()
	net := network.New()
	for _, a := range arcs {
		require.NoError(t, net.AddArc(a.from, a.to, a.cap, a.flow))
	}

	return net
}

// TestResidualFreshFlow checks pure forward edges when no flow is assigned.
func TestResidualFreshFlow(t *testing.T) {
	net := buildNet(t,
		testArc{"s", "a", 5, 0},
		testArc{"a", "t", 3, 0},
	)

	nr := buildResidual("s", net)

	require.Equal(t, int64(5), nr["s"]["a"].cap)
	require.Equal(t, forward, nr["s"]["a"].dir)
	require.Equal(t, int64(3), nr["a"]["t"].cap)
	require.Empty(t, nr["t"])
}

// TestResidualPartialFlow checks the forward/backward split of a part-used arc.
func TestResidualPartialFlow(t *testing.T) {
	net := buildNet(t, testArc{"s", "a", 5, 2})

	nr := buildResidual("s", net)

	require.Equal(t, int64(3), nr["s"]["a"].cap)
	require.Equal(t, forward, nr["s"]["a"].dir)
	require.Equal(t, int64(2), nr["a"]["s"].cap)
	require.Equal(t, backward, nr["a"]["s"].dir)
}

// TestResidualSaturatedArc checks a saturated arc leaves only a backward edge.
func TestResidualSaturatedArc(t *testing.T) {
	net := buildNet(t, testArc{"s", "a", 4, 4})

	nr := buildResidual("s", net)

	require.NotContains(t, nr["s"], "a")
	require.Equal(t, int64(4), nr["a"]["s"].cap)
	require.Equal(t, backward, nr["a"]["s"].dir)
}

// TestResidualUnreachableExcluded verifies nodes the source cannot reach
// never enter the residual graph.
func TestResidualUnreachableExcluded(t *testing.T) {
	net := buildNet(t,
		testArc{"s", "a", 5, 0},
		testArc{"x", "y", 7, 0},
	)

	nr := buildResidual("s", net)

	require.Contains(t, nr, "a")
	require.NotContains(t, nr, "x")
	require.NotContains(t, nr, "y")
}

// TestResidualOppositeArcsForwardPriority pins the forward-wins rule when an
// opposite arc pair would put two residual edges on the same ordered pair.
func TestResidualOppositeArcsForwardPriority(t *testing.T) {
	net := buildNet(t,
		testArc{"a", "b", 2, 1},
		testArc{"b", "a", 3, 0},
	)

	nr := buildResidual("a", net)

	// a→b: residual of the part-used forward arc
	require.Equal(t, int64(1), nr["a"]["b"].cap)
	require.Equal(t, forward, nr["a"]["b"].dir)
	// b→a: the untouched forward arc beats the backward edge of a→b
	require.Equal(t, int64(3), nr["b"]["a"].cap)
	require.Equal(t, forward, nr["b"]["a"].dir)
}
