package urdf

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"zappem.net/pub/math/geom"
)

// DragSegment is one frame of a drag against a joint.
type DragSegment struct {
	Joint *Node
	Prev  mgl64.Vec3 // world point under the previous ray
	Curr  mgl64.Vec3 // world point under the current ray
	Grab  mgl64.Vec3 // world point where the grab began
}

// DeltaSolver converts a drag segment into a joint value delta. Solvers are
// chosen when a DragControls is constructed.
type DeltaSolver interface {
	Delta(seg DragSegment) float64
}

// DeltaFunc adapts a plain function to DeltaSolver.
type DeltaFunc func(seg DragSegment) float64

// Delta calls f(seg).
func (f DeltaFunc) Delta(seg DragSegment) float64 {
	return f(seg)
}

// PlaneAngleSolver measures rotational drags as the angle swept about the
// joint axis and prismatic drags as displacement along the axis.
type PlaneAngleSolver struct{}

// Delta implements DeltaSolver.
func (PlaneAngleSolver) Delta(seg DragSegment) float64 {
	return StandardDelta(seg)
}

// StandardDelta dispatches on the joint kind. Non-movable joints yield 0.
func StandardDelta(seg DragSegment) float64 {
	j := seg.Joint
	switch {
	case j == nil:
		return 0
	case j.JointType.Rotational():
		return RevoluteDelta(j, seg.Prev, seg.Curr)
	case j.JointType == JointPrismatic:
		return PrismaticDelta(j, seg.Prev, seg.Curr)
	}
	return 0
}

// rotationPlane returns the plane through the joint pivot whose normal is
// the joint axis in world space.
func rotationPlane(j *Node) (plane Plane, pivot mgl64.Vec3, ok bool) {
	world := j.WorldTransform()
	axis, ok := unitVector(transformDir(world, j.Axis))
	if !ok {
		return Plane{}, mgl64.Vec3{}, false
	}
	pivot = world.Col(3).Vec3()
	return NewPlane(axis, pivot), pivot, true
}

// RevoluteDelta returns the signed angle (radians) that carries prev to
// curr about the joint axis. Both points are projected onto the rotation
// plane first; the sign follows the right-hand rule about the world axis.
// Degenerate input (zero axis, a point on the axis) yields 0.
func RevoluteDelta(j *Node, prev, curr mgl64.Vec3) float64 {
	plane, pivot, ok := rotationPlane(j)
	if !ok {
		return 0
	}
	return planeAngle(plane, pivot, prev, curr)
}

func planeAngle(plane Plane, pivot, prev, curr mgl64.Vec3) float64 {
	a := plane.Project(prev).Sub(pivot)
	b := plane.Project(curr).Sub(pivot)
	la, lb := a.Len(), b.Len()
	if geom.Zeroish(la) || geom.Zeroish(lb) {
		return 0
	}
	angle := math.Acos(math.Max(-1, math.Min(1, a.Dot(b)/(la*lb))))
	switch s := a.Cross(b).Dot(plane.Normal); {
	case s > 0:
		return angle
	case s < 0:
		return -angle
	}
	return 0
}

// PrismaticDelta returns the displacement curr-prev projected onto the
// joint's slide axis. The axis is expressed in the parent frame (origin
// rotation applied) since the offset is measured there.
func PrismaticDelta(j *Node, prev, curr mgl64.Vec3) float64 {
	m := j.ParentWorldTransform().Mul4(originTransform(j))
	axis, ok := unitVector(transformDir(m, j.Axis))
	if !ok {
		return 0
	}
	return curr.Sub(prev).Dot(axis)
}

// CameraAwareSolver is the pointer-driven solver. When the viewer looks
// nearly edge-on into a revolute joint's rotation plane the swept angle is
// unstable, so it switches to a screen-aligned measure proportional to the
// drag length. Prismatic joints use the standard measure.
type CameraAwareSolver struct {
	Camera *Camera
	// Threshold is the minimum |cos| between the view vector and the axis
	// for the angle measure to be used. See DefaultCoplanarThreshold.
	Threshold float64
}

// NewCameraAwareSolver returns a solver for cam with the given threshold.
func NewCameraAwareSolver(cam *Camera, threshold float64) *CameraAwareSolver {
	return &CameraAwareSolver{Camera: cam, Threshold: threshold}
}

// Delta implements DeltaSolver.
func (s *CameraAwareSolver) Delta(seg DragSegment) float64 {
	j := seg.Joint
	if j == nil || s.Camera == nil || !j.JointType.Rotational() {
		return StandardDelta(seg)
	}
	plane, pivot, ok := rotationPlane(j)
	if !ok {
		return 0
	}
	view, ok := unitVector(s.Camera.Position().Sub(seg.Grab))
	if !ok || facingPlane(view.Dot(plane.Normal), s.Threshold) {
		return planeAngle(plane, pivot, seg.Prev, seg.Curr)
	}
	dir := s.Camera.Forward().Cross(plane.Normal)
	return dir.Dot(plane.Project(seg.Curr).Sub(plane.Project(seg.Prev)))
}

// facingPlane reports whether the view is face-on enough for the angle
// measure. The boundary itself counts as face-on.
func facingPlane(cos, threshold float64) bool {
	return math.Abs(cos) >= threshold
}
