package mpm

// recordingObserver captures trace points for white-box assertions.
type recordingObserver struct {
	started   []int
	ended     []int
	pruned    []string
	saturated [][2]string
}

func (r *recordingObserver) PhaseStart(phase int) { r.started = append(r.started, phase) }
func (r *recordingObserver) PhaseEnd(phase int)   { r.ended = append(r.ended, phase) }
func (r *recordingObserver) NodePruned(node string) {
	r.pruned = append(r.pruned, node)
}
func (r *recordingObserver) EdgeSaturated(from, to string) {
	r.saturated = append(r.saturated, [2]string{from, to})
}
