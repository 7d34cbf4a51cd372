package urdf

// JointSample is one recorded joint value.
type JointSample struct {
	Seq   uint64
	Value float64
}

// JointHistory keeps a bounded trajectory of values per joint, oldest
// first. It is fed from DragControls.OnJointChange via Track.
type JointHistory struct {
	limit   int
	seq     uint64
	samples map[uint32][]JointSample
	handle  CallbackHandle
	tracked bool
}

// NewJointHistory creates a history that keeps at most limit samples per
// joint. A non-positive limit falls back to DefaultTrajectoryLength.
func NewJointHistory(limit int) *JointHistory {
	if limit <= 0 {
		limit = DefaultTrajectoryLength
	}
	return &JointHistory{limit: limit, samples: make(map[uint32][]JointSample)}
}

// Record appends value for joint, dropping the oldest sample once the
// trajectory is full.
func (h *JointHistory) Record(joint *Node, value float64) {
	if joint == nil {
		return
	}
	h.seq++
	s := h.samples[joint.ID]
	if len(s) >= h.limit {
		copy(s, s[1:])
		s = s[:len(s)-1]
	}
	h.samples[joint.ID] = append(s, JointSample{Seq: h.seq, Value: value})
}

// Samples returns a copy of the recorded trajectory for joint.
func (h *JointHistory) Samples(joint *Node) []JointSample {
	if joint == nil {
		return nil
	}
	s := h.samples[joint.ID]
	out := make([]JointSample, len(s))
	copy(out, s)
	return out
}

// Len returns the number of samples held for joint.
func (h *JointHistory) Len(joint *Node) int {
	if joint == nil {
		return 0
	}
	return len(h.samples[joint.ID])
}

// Clear drops every recorded sample.
func (h *JointHistory) Clear() {
	clear(h.samples)
}

// Track records every joint change reported by ctl. Calling Track again
// moves the subscription to the new controls.
func (h *JointHistory) Track(ctl *DragControls) {
	h.Untrack()
	h.handle = ctl.OnJointChange(func(ctx JointContext) {
		h.Record(ctx.Joint, ctx.Value)
	})
	h.tracked = true
}

// Untrack stops recording from the tracked controls.
func (h *JointHistory) Untrack() {
	if h.tracked {
		h.handle.Remove()
		h.tracked = false
	}
}
