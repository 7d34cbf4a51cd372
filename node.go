package urdf

import (
	"github.com/go-gl/mathgl/mgl64"
)

// --- ID counter ---

// nodeIDCounter is a plain counter; manipulation is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the element of a robot hierarchy. A single flat struct is used for
// robots, links, joints and visuals so that ancestor walks need no type
// switches.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Origin relative to the parent frame.
	Position mgl64.Vec3
	Rotation mgl64.Quat

	// Joint fields (NodeTypeJoint)
	JointType    JointType
	Axis         mgl64.Vec3 // unit vector in joint-local space
	Limits       Limits
	IgnoreLimits bool
	value        float64

	// Mimic coupling: this joint follows mimicLeader as leader*multiplier+offset.
	mimicLeader     *Node
	mimicMultiplier float64
	mimicOffset     float64
	mimicFollowers  []*Node

	// Picking
	Shape        Shape
	Visible      bool
	Interactable bool

	// Metadata
	UserData any
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Rotation = mgl64.QuatIdent()
	n.Visible = true
	n.Interactable = true
}

// NewRobot creates the root node of a manipulable model.
func NewRobot(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeRobot}
	nodeDefaults(n)
	return n
}

// NewLink creates a rigid link node.
func NewLink(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeLink}
	nodeDefaults(n)
	return n
}

// NewJoint creates a joint of the given kind. A zero axis defaults to +X as
// in URDF. Limits start unbounded.
func NewJoint(name string, typ JointType, axis mgl64.Vec3) *Node {
	n := &Node{Name: name, Type: NodeTypeJoint, JointType: typ, Limits: Unbounded}
	nodeDefaults(n)
	if u, ok := unitVector(axis); ok {
		n.Axis = u
	} else {
		n.Axis = mgl64.Vec3{1, 0, 0}
	}
	return n
}

// NewVisual creates a pickable geometry node.
func NewVisual(name string, shape Shape) *Node {
	n := &Node{Name: name, Type: NodeTypeVisual, Shape: shape}
	nodeDefaults(n)
	return n
}

// IsRobot reports whether n is a robot root.
func (n *Node) IsRobot() bool {
	return n.Type == NodeTypeRobot
}

// IsMovableJoint reports whether n is a joint a 1-DOF drag can move:
// revolute, continuous or prismatic.
func (n *Node) IsMovableJoint() bool {
	if n.Type != NodeTypeJoint {
		return false
	}
	switch n.JointType {
	case JointRevolute, JointContinuous, JointPrismatic:
		return true
	}
	return false
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("urdf: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("urdf: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("urdf: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Walk calls fn for n and every descendant in depth-first order. Returning
// false from fn skips that node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		child.Walk(fn)
	}
}

// FindByName returns the first node in the subtree with the given name.
func (n *Node) FindByName(name string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Name == name {
			found = c
			return false
		}
		return true
	})
	return found
}

// Joints returns every joint in the subtree, movable or not.
func (n *Node) Joints() []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if c.Type == NodeTypeJoint {
			out = append(out, c)
		}
		return true
	})
	return out
}

// NearestMovableJoint walks outward from n (inclusive) and returns the
// first ancestor that is a revolute, continuous or prismatic joint.
func (n *Node) NearestMovableJoint() *Node {
	for p := n; p != nil; p = p.Parent {
		if p.IsMovableJoint() {
			return p
		}
	}
	return nil
}

// NearestRobot walks outward from n (inclusive) and returns the first
// robot root, or nil.
func (n *Node) NearestRobot() *Node {
	for p := n; p != nil; p = p.Parent {
		if p.IsRobot() {
			return p
		}
	}
	return nil
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
