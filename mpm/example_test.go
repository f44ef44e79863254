package mpm_test

import (
	"fmt"

	"github.com/katalvlaran/mpmflow/mpm"
	"github.com/katalvlaran/mpmflow/network"
)

// ExampleMaxFlow demonstrates max-flow on two disjoint paths.
// Network:
//
//	0→1(10)→3
//	0→2(10)→3
//
// Expected max flow = 10 + 10 = 20
func ExampleMaxFlow() {
	net := network.New()
	_ = net.AddArc("0", "1", 10, 0)
	_ = net.AddArc("0", "2", 10, 0)
	_ = net.AddArc("1", "3", 10, 0)
	_ = net.AddArc("2", "3", 10, 0)

	value, _ := mpm.MaxFlow(net, "0", "3", mpm.DefaultOptions())
	fmt.Println(value)
	// Output:
	// 20
}

// ExampleMaxFlow_bottleneck shows a chain limited by its narrowest arc.
// Network: 0→1(5), 1→2(2), 2→3(5); the middle arc caps the flow at 2.
func ExampleMaxFlow_bottleneck() {
	net := network.New()
	_ = net.AddArc("0", "1", 5, 0)
	_ = net.AddArc("1", "2", 2, 0)
	_ = net.AddArc("2", "3", 5, 0)

	value, _ := mpm.MaxFlow(net, "0", "3", mpm.DefaultOptions())
	fmt.Println(value)
	// Output:
	// 2
}

// ExampleMaxFlow_unreachable yields zero when no path reaches the sink.
func ExampleMaxFlow_unreachable() {
	net := network.New()
	_ = net.AddArc("0", "1", 5, 0)
	_ = net.AddArc("2", "3", 5, 0)

	value, _ := mpm.MaxFlow(net, "0", "3", mpm.DefaultOptions())
	fmt.Println(value)
	// Output:
	// 0
}
