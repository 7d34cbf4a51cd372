package urdf

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// JointTween animates a single joint value toward a target. Call
// Update(dt) each frame; values go through SetJointValue so limits and
// mimic couplings are honored.
//
// There is no global animation manager; users call Update themselves.
type JointTween struct {
	tween  *gween.Tween
	target *Node
	to     float64
	Done   bool

	// OnChange, if set, is called after an Update for the joint and for
	// each mimic follower whose value that Update changed.
	OnChange func(joint *Node)
}

// TweenJoint creates a JointTween that moves joint from its current value
// to to over duration seconds using the easing function. Returns nil if
// joint is not movable.
func TweenJoint(joint *Node, to float64, duration float32, fn ease.TweenFunc) *JointTween {
	if joint == nil || !joint.IsMovableJoint() {
		return nil
	}
	if fn == nil {
		fn = ease.Linear
	}
	return &JointTween{
		tween:  gween.New(float32(joint.value), float32(to), duration, fn),
		target: joint,
		to:     to,
	}
}

// Joint returns the joint being animated.
func (t *JointTween) Joint() *Node {
	return t.target
}

// Update advances the tween by dt seconds and writes the value to the
// joint. Once finished the exact target is applied and Done is set.
func (t *JointTween) Update(dt float32) {
	if t.Done {
		return
	}
	val, finished := t.tween.Update(dt)
	v := float64(val)
	if finished {
		v = t.to
	}
	var followers []jointValue
	if t.OnChange != nil {
		followers = mimicSnapshot(t.target, nil)
	}
	if t.target.SetJointValue(v) && t.OnChange != nil {
		t.OnChange(t.target)
		for _, f := range followers {
			if f.changed() {
				t.OnChange(f.joint)
			}
		}
	}
	t.Done = finished
}

// ResetPose creates tweens that return every movable joint under root to
// its rest value: zero, clamped into its limits. Mimic followers are left
// to their leaders and joints already at rest are skipped.
func ResetPose(root *Node, duration float32, fn ease.TweenFunc) []*JointTween {
	var out []*JointTween
	for _, j := range root.Joints() {
		if !j.IsMovableJoint() || j.mimicLeader != nil {
			continue
		}
		rest := 0.0
		if j.JointType != JointContinuous && !j.IgnoreLimits {
			rest = j.Limits.Clamp(rest)
		}
		if j.value == rest {
			continue
		}
		out = append(out, TweenJoint(j, rest, duration, fn))
	}
	return out
}
