package network

import (
	"errors"
	"fmt"
)

// Sentinel errors for network construction and validation.
var (
	// ErrEmptyNodeID indicates an empty string was used as a node ID.
	ErrEmptyNodeID = errors.New("network: node ID is empty")

	// ErrNodeNotFound indicates an arc endpoint absent from the node key space.
	// The mpm engine treats this as a fatal precondition fault.
	ErrNodeNotFound = errors.New("network: node not found")

	// ErrSelfLoop indicates an arc whose endpoints coincide. The flow engine
	// assumes loop-free networks, so loops are rejected at construction.
	ErrSelfLoop = errors.New("network: self-loop not allowed")
)

// ArcError reports an arc whose capacity or flow violates
// 0 ≤ flow ≤ capacity.
type ArcError struct {
	From, To  string
	Cap, Flow int64
}

func (e ArcError) Error() string {
	return fmt.Sprintf("network: invalid arc %q→%q: cap=%d flow=%d", e.From, e.To, e.Cap, e.Flow)
}

// Arc is a directed capacitated connection between two nodes.
// Flow is mutated in place by the mpm driver; Cap is fixed after creation.
type Arc struct {
	// Cap is the arc capacity. Never negative.
	Cap int64

	// Flow is the current flow assignment, kept within [0, Cap]
	// between computation phases.
	Flow int64
}

// Network is a directed capacitated graph: node → successor → arc.
//
// The zero value is not usable; construct with New.
type Network struct {
	// adj[(from)node][(to)node] = arc
	adj map[string]map[string]*Arc
}

// New creates an empty Network.
// Complexity: O(1).
func New() *Network {
	return &Network{adj: make(map[string]map[string]*Arc)}
}
