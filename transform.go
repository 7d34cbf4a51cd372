package urdf

import (
	"github.com/go-gl/mathgl/mgl64"
)

var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
	axisZ = mgl64.Vec3{0, 0, 1}
)

// originTransform computes the node's fixed origin relative to its parent:
//
//	Translate(Position) -> Rotate(Rotation)
func originTransform(n *Node) mgl64.Mat4 {
	m := mgl64.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	if n.Rotation == (mgl64.Quat{}) {
		return m
	}
	return m.Mul4(n.Rotation.Mat4())
}

// computeLocalTransform composes the origin with the joint motion for the
// current value. Non-joint nodes only carry their origin.
//
//	Origin -> Rotate(Axis, value)      revolute, continuous
//	Origin -> Translate(Axis * value)  prismatic
func computeLocalTransform(n *Node) mgl64.Mat4 {
	m := originTransform(n)
	if n.Type != NodeTypeJoint || n.value == 0 {
		return m
	}
	axis, ok := unitVector(n.Axis)
	if !ok {
		return m
	}
	switch n.JointType {
	case JointRevolute, JointContinuous:
		m = m.Mul4(mgl64.HomogRotate3D(n.value, axis))
	case JointPrismatic:
		d := axis.Mul(n.value)
		m = m.Mul4(mgl64.Translate3D(d[0], d[1], d[2]))
	}
	return m
}

// WorldTransform returns the node's local-to-world matrix, including the
// motion of every joint on the path to the root.
func (n *Node) WorldTransform() mgl64.Mat4 {
	m := computeLocalTransform(n)
	for p := n.Parent; p != nil; p = p.Parent {
		m = computeLocalTransform(p).Mul4(m)
	}
	return m
}

// ParentWorldTransform returns the parent's local-to-world matrix, or the
// identity for a root node.
func (n *Node) ParentWorldTransform() mgl64.Mat4 {
	if n.Parent == nil {
		return mgl64.Ident4()
	}
	return n.Parent.WorldTransform()
}

// WorldPosition returns the world-space origin of the node.
func (n *Node) WorldPosition() mgl64.Vec3 {
	return n.WorldTransform().Col(3).Vec3()
}

// --- Transform property setters ---

// SetPosition sets the node's origin translation.
func (n *Node) SetPosition(x, y, z float64) {
	n.Position = mgl64.Vec3{x, y, z}
}

// SetOriginRPY sets the origin rotation from URDF fixed-axis roll, pitch
// and yaw (radians): R = Rz(yaw) * Ry(pitch) * Rx(roll).
func (n *Node) SetOriginRPY(roll, pitch, yaw float64) {
	n.Rotation = mgl64.QuatRotate(yaw, axisZ).
		Mul(mgl64.QuatRotate(pitch, axisY)).
		Mul(mgl64.QuatRotate(roll, axisX)).
		Normalize()
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(p mgl64.Vec3) mgl64.Vec3 {
	return transformPoint(n.WorldTransform().Inv(), p)
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(p mgl64.Vec3) mgl64.Vec3 {
	return transformPoint(n.WorldTransform(), p)
}
