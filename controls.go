package urdf

import (
	"github.com/go-gl/mathgl/mgl64"
)

// UpdateJointFunc applies a new value to the manipulated joint and reports
// whether anything changed. It is the seam for custom validation or
// animation; see DragControls.SetUpdateJoint.
type UpdateJointFunc func(joint *Node, value float64, robot *Node) bool

// applyJointValue is the default UpdateJointFunc.
func applyJointValue(joint *Node, value float64, _ *Node) bool {
	return joint.SetJointValue(value)
}

// DragControls resolves which joint a picking ray points at and turns ray
// motion into joint motion while a joint is grabbed.
//
// States: idle (nothing hovered), hovering (a movable joint under the ray)
// and manipulating (the hovered joint was grabbed). Hover tracking is
// suspended while manipulating. DragControls is not safe for concurrent use.
type DragControls struct {
	query    SceneQuery
	solver   DeltaSolver
	update   UpdateJointFunc
	store    EventStore
	handlers handlerRegistry
	debug    bool

	ray    Ray
	hasRay bool
	hitBuf []Hit

	hovered      *Node
	hoveredRobot *Node
	manipulating *Node

	// hoveredPoint is in hovered's local frame; valid when hasHoveredPoint.
	hoveredPoint    mgl64.Vec3
	hasHoveredPoint bool

	grabPoint   mgl64.Vec3
	hitDistance float64
}

// NewDragControls creates controls that pick through query and convert
// drags with solver. A nil solver selects PlaneAngleSolver.
func NewDragControls(query SceneQuery, solver DeltaSolver) *DragControls {
	if solver == nil {
		solver = PlaneAngleSolver{}
	}
	return &DragControls{
		query:  query,
		solver: solver,
		update: applyJointValue,
	}
}

// SetUpdateJoint replaces the seam that applies drag results. A nil fn
// restores the default, which calls Node.SetJointValue.
func (c *DragControls) SetUpdateJoint(fn UpdateJointFunc) {
	if fn == nil {
		fn = applyJointValue
	}
	c.update = fn
}

// Hovered returns the hovered joint, or nil.
func (c *DragControls) Hovered() *Node { return c.hovered }

// HoveredRobot returns the robot root above the last hit, or nil.
func (c *DragControls) HoveredRobot() *Node { return c.hoveredRobot }

// Manipulating returns the grabbed joint, or nil.
func (c *DragControls) Manipulating() *Node { return c.manipulating }

// HoveredPoint returns the last hit point in the hovered joint's local
// frame. ok is false when no joint is hovered.
func (c *DragControls) HoveredPoint() (p mgl64.Vec3, ok bool) {
	return c.hoveredPoint, c.hasHoveredPoint
}

// GrabPoint returns the world point of the most recent hit.
func (c *DragControls) GrabPoint() mgl64.Vec3 { return c.grabPoint }

// HitDistance returns the ray distance of the most recent hit.
func (c *DragControls) HitDistance() float64 { return c.hitDistance }

// LastRay returns the most recent ray passed to Update or MoveRay.
func (c *DragControls) LastRay() (Ray, bool) { return c.ray, c.hasRay }

// Update records ray as the current ray and runs a hover pass. It does
// nothing else while a joint is grabbed.
func (c *DragControls) Update(ray Ray) {
	c.ray, c.hasRay = ray, true
	c.resolveHover()
}

// MoveRay advances the current ray. While a joint is grabbed the points at
// the grab distance along the old and new rays are converted into a joint
// delta and applied; otherwise it is a hover pass.
func (c *DragControls) MoveRay(ray Ray) {
	if j := c.manipulating; j != nil && c.hasRay {
		seg := DragSegment{
			Joint: j,
			Prev:  c.ray.At(c.hitDistance),
			Curr:  ray.At(c.hitDistance),
			Grab:  c.grabPoint,
		}
		if delta := c.solver.Delta(seg); delta != 0 {
			c.applyDelta(j, delta)
		}
	}
	c.ray, c.hasRay = ray, true
	c.resolveHover()
}

// applyDelta runs the update seam and reports the joint and every mimic
// follower it moved.
func (c *DragControls) applyDelta(j *Node, delta float64) {
	followers := mimicSnapshot(j, nil)
	if c.update(j, j.JointValue()+delta, c.hoveredRobot) {
		c.fire(EventJointChange, JointContext{Joint: j, Robot: c.hoveredRobot})
		for _, f := range followers {
			if f.changed() {
				c.fire(EventJointChange, JointContext{Joint: f.joint, Robot: f.joint.NearestRobot()})
			}
		}
		return
	}
	c.debugf("joint %q rejected value %.4f", j.Name, j.JointValue()+delta)
}

// resolveHover picks with the current ray. Only the nearest hit counts.
func (c *DragControls) resolveHover() {
	if c.manipulating != nil || !c.hasRay || c.query == nil {
		return
	}

	prev, prevRobot := c.hovered, c.hoveredRobot
	var joint, robot *Node

	c.hitBuf = c.query.CastRay(c.ray, c.hitBuf[:0])
	if len(c.hitBuf) > 0 {
		hit := c.hitBuf[0]
		c.hitDistance = hit.Distance
		c.grabPoint = hit.Point
		if hit.Node != nil {
			joint = hit.Node.NearestMovableJoint()
			robot = hit.Node.NearestRobot()
		}
		if joint != nil {
			c.hoveredPoint = joint.WorldToLocal(hit.Point)
		}
	}
	c.hovered = joint
	c.hoveredRobot = robot
	c.hasHoveredPoint = joint != nil
	if joint == nil {
		c.hoveredPoint = mgl64.Vec3{}
	}

	if joint != prev {
		if prev != nil {
			c.debugf("unhover %q", prev.Name)
			c.fire(EventUnhover, JointContext{Joint: prev, Robot: prevRobot})
		}
		if joint != nil {
			c.debugf("hover %q", joint.Name)
			c.fire(EventHover, JointContext{Joint: joint, Robot: robot})
		}
	}
}

// SetGrabbed starts (true) or ends (false) a manipulation. Grabbing only
// succeeds while a joint is hovered and none is grabbed. Releasing fires
// OnDragEnd and then immediately re-runs the hover pass with the last ray.
func (c *DragControls) SetGrabbed(grabbed bool) {
	if grabbed {
		if c.manipulating != nil || c.hovered == nil {
			return
		}
		c.manipulating = c.hovered
		c.debugf("drag start %q", c.manipulating.Name)
		c.fire(EventDragStart, JointContext{Joint: c.manipulating, Robot: c.hoveredRobot})
		return
	}

	j := c.manipulating
	if j == nil {
		return
	}
	c.debugf("drag end %q", j.Name)
	c.fire(EventDragEnd, JointContext{Joint: j, Robot: c.hoveredRobot})
	c.manipulating = nil
	c.resolveHover()
}

// Click fires OnClick for the hovered joint with the hovered point in the
// joint's local frame. Callers detect a press/release without movement.
// Grab state is untouched.
func (c *DragControls) Click() {
	if c.hovered == nil || !c.hasHoveredPoint {
		return
	}
	c.fire(EventClick, JointContext{Joint: c.hovered, Robot: c.hoveredRobot, Point: c.hoveredPoint})
}
