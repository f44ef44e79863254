package mpm

import (
	"context"
	"errors"
)

// Sentinel errors for max-flow computation.
var (
	// ErrSourceNotFound is returned when the source node is missing.
	ErrSourceNotFound = errors.New("mpm: source node not found")

	// ErrSinkNotFound is returned when the sink node is missing.
	ErrSinkNotFound = errors.New("mpm: sink node not found")

	// ErrSourceIsSink is returned when source == sink; the computation is
	// undefined for that case and callers must not request it.
	ErrSourceIsSink = errors.New("mpm: source equals sink")
)

// Observer receives trace callbacks from the engine. It replaces in-core
// logging: the engine stays pure and a caller wires whatever sink it wants.
// Implementations must be cheap; hooks are invoked synchronously on the
// computation path.
type Observer interface {
	// PhaseStart fires after the layered network for phase (1-based) is
	// built and before its blocking flow is computed.
	PhaseStart(phase int)

	// PhaseEnd fires after the phase's deltas are merged into the network.
	PhaseEnd(phase int)

	// NodePruned fires when a zero-throughput node leaves the layered network.
	NodePruned(node string)

	// EdgeSaturated fires when a layered-network edge reaches zero residual
	// capacity and is excluded for the rest of the phase. from→to is the
	// edge's orientation in the layered network.
	EdgeSaturated(from, to string)
}

// NopObserver is the default Observer; every hook is a no-op.
type NopObserver struct{}

func (NopObserver) PhaseStart(int) {}

func (NopObserver) PhaseEnd(int) {}

func (NopObserver) NodePruned(string) {}

func (NopObserver) EdgeSaturated(_, _ string) {}

// Options configures MaxFlow.
//   - Ctx: cancellation/deadline; checked once per phase.
//   - Observer: trace hooks (NopObserver when nil).
type Options struct {
	Ctx      context.Context
	Observer Observer
}

// DefaultOptions returns production-safe defaults:
// background context and no-op observer.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Observer: NopObserver{},
	}
}

// normalize fills nil fields so the engine never branches on them.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Observer == nil {
		o.Observer = NopObserver{}
	}
}

// direction tags a residual edge: forward edges represent unused arc
// capacity, backward edges represent cancellable assigned flow.
type direction uint8

const (
	forward direction = iota
	backward
)
