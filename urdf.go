package urdf

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"zappem.net/pub/math/geom"
)

// Ray is a world-space picking ray. Direction is unit length when built
// with NewRay.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewRay returns a ray from origin along dir. The direction is normalized;
// a zero direction yields a zero ray direction, which never hits anything.
func NewRay(origin, dir mgl64.Vec3) Ray {
	if d, ok := unitVector(dir); ok {
		return Ray{Origin: origin, Direction: d}
	}
	return Ray{Origin: origin}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Hit is a single ray/surface intersection reported by a SceneQuery.
type Hit struct {
	Point    mgl64.Vec3 // world-space intersection point
	Distance float64    // distance from the ray origin
	Node     *Node      // node whose shape was hit
}

// Rect is an axis-aligned screen rectangle. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Limits bounds the value of a revolute or prismatic joint. Radians for
// rotational joints, length units for prismatic joints.
type Limits struct {
	Lower, Upper float64
}

// Unbounded is the default for newly created joints.
var Unbounded = Limits{Lower: math.Inf(-1), Upper: math.Inf(1)}

// DegreeLimits builds rotational limits from bounds given in degrees.
func DegreeLimits(lower, upper float64) Limits {
	return Limits{Lower: geom.Degrees(lower).Rad(), Upper: geom.Degrees(upper).Rad()}
}

// Clamp returns v restricted to [Lower, Upper].
func (l Limits) Clamp(v float64) float64 {
	return math.Max(l.Lower, math.Min(l.Upper, v))
}

// NodeType distinguishes the role a Node plays in a robot hierarchy.
type NodeType uint8

const (
	NodeTypeLink   NodeType = iota // rigid body grouping visuals and child joints
	NodeTypeJoint                  // articulation between a parent and child link
	NodeTypeRobot                  // root of a manipulable model
	NodeTypeVisual                 // renderable/pickable geometry
)

// JointType is the URDF joint kind.
type JointType uint8

const (
	JointFixed      JointType = iota // immovable, never a drag target
	JointRevolute                    // bounded rotation about Axis
	JointContinuous                  // unbounded rotation about Axis
	JointPrismatic                   // translation along Axis
	JointPlanar                      // not manipulable by a 1-DOF drag
	JointFloating                    // not manipulable by a 1-DOF drag
)

var jointTypeNames = [...]string{"fixed", "revolute", "continuous", "prismatic", "planar", "floating"}

func (t JointType) String() string {
	if int(t) < len(jointTypeNames) {
		return jointTypeNames[t]
	}
	return "unknown"
}

// Rotational reports whether the joint value is an angle.
func (t JointType) Rotational() bool {
	return t == JointRevolute || t == JointContinuous
}

// EventType identifies a kind of manipulation event.
type EventType uint8

const (
	EventHover       EventType = iota // a movable joint became hovered
	EventUnhover                      // the hovered joint lost hover
	EventDragStart                    // the hovered joint was grabbed
	EventDragEnd                      // the manipulated joint was released
	EventClick                        // press and release without movement over a joint
	EventJointChange                  // a drag applied a new joint value
)

var eventTypeNames = [...]string{"hover", "unhover", "drag-start", "drag-end", "click", "joint-change"}

func (e EventType) String() string {
	if int(e) < len(eventTypeNames) {
		return eventTypeNames[e]
	}
	return "unknown"
}
