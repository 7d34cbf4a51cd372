package urdf

import (
	"math"
)

// JointValue returns the joint's current value: radians for rotational
// joints, length for prismatic joints.
func (n *Node) JointValue() float64 {
	return n.value
}

// SetJointValue applies a new value to a movable joint. Revolute and
// prismatic joints clamp to Limits unless IgnoreLimits is set; continuous
// joints never clamp. It returns true only if the stored value changed;
// fixed, planar and floating joints always return false. Mimic followers
// are updated along with the leader.
func (n *Node) SetJointValue(v float64) bool {
	if !n.IsMovableJoint() || math.IsNaN(v) {
		return false
	}
	if n.JointType != JointContinuous && !n.IgnoreLimits {
		v = n.Limits.Clamp(v)
	}
	if v == n.value {
		return false
	}
	n.value = v
	for _, f := range n.mimicFollowers {
		f.SetJointValue(v*f.mimicMultiplier + f.mimicOffset)
	}
	return true
}

// SetMimic makes n follow leader: value = leader*multiplier + offset. The
// follower is brought in line with the leader's current value immediately.
// Passing a nil leader removes the coupling.
func (n *Node) SetMimic(leader *Node, multiplier, offset float64) {
	if leader != nil && isMimicLeader(n, leader) {
		panic("urdf: mimic coupling would create a cycle")
	}
	if n.mimicLeader != nil {
		n.mimicLeader.mimicFollowers = removeNode(n.mimicLeader.mimicFollowers, n)
	}
	n.mimicLeader = leader
	if leader == nil {
		return
	}
	n.mimicMultiplier = multiplier
	n.mimicOffset = offset
	leader.mimicFollowers = append(leader.mimicFollowers, n)
	n.SetJointValue(leader.value*multiplier + offset)
}

// MimicLeader returns the joint n follows, or nil.
func (n *Node) MimicLeader() *Node {
	return n.mimicLeader
}

// isMimicLeader reports whether candidate leads node, directly or transitively.
func isMimicLeader(candidate, node *Node) bool {
	for p := node; p != nil; p = p.mimicLeader {
		if p == candidate {
			return true
		}
	}
	return false
}

// jointValue pairs a joint with a value it held.
type jointValue struct {
	joint *Node
	value float64
}

// mimicSnapshot appends the current value of every joint following n,
// directly or transitively, to dst.
func mimicSnapshot(n *Node, dst []jointValue) []jointValue {
	for _, f := range n.mimicFollowers {
		dst = append(dst, jointValue{joint: f, value: f.value})
		dst = mimicSnapshot(f, dst)
	}
	return dst
}

// changed reports whether the joint no longer holds the snapshot value.
func (jv jointValue) changed() bool {
	return jv.joint.value != jv.value
}

func removeNode(s []*Node, n *Node) []*Node {
	for i := range s {
		if s[i] == n {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			return s[:len(s)-1]
		}
	}
	return s
}
