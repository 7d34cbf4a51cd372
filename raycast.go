package urdf

import (
	"sort"
)

// SceneQuery casts picking rays into a scene. CastRay appends hits to buf
// (which may be nil) and returns them ordered by increasing distance.
type SceneQuery interface {
	CastRay(ray Ray, buf []Hit) []Hit
}

// Raycaster is the built-in SceneQuery. It tests the Shape of every visible,
// interactable node under its roots. Several robots may share one
// Raycaster.
type Raycaster struct {
	roots  []*Node
	hitBuf []*Node
}

// NewRaycaster creates a Raycaster over the given roots.
func NewRaycaster(roots ...*Node) *Raycaster {
	return &Raycaster{roots: roots}
}

// Add registers another root.
func (r *Raycaster) Add(root *Node) {
	r.roots = append(r.roots, root)
}

// Remove unregisters a root. No-op if root was never added.
func (r *Raycaster) Remove(root *Node) {
	r.roots = removeNode(r.roots, root)
}

// collectInteractable walks the tree depth-first, appending nodes with a
// Shape to buf. Skips Visible=false or Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.Shape != nil {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// CastRay implements SceneQuery.
func (r *Raycaster) CastRay(ray Ray, buf []Hit) []Hit {
	buf = buf[:0]
	r.hitBuf = r.hitBuf[:0]
	for _, root := range r.roots {
		r.hitBuf = collectInteractable(root, r.hitBuf)
	}

	for _, n := range r.hitBuf {
		// The ray is mapped into local space without renormalizing, so the
		// local parameter t is still the world distance.
		inv := n.WorldTransform().Inv()
		o := transformPoint(inv, ray.Origin)
		d := transformDir(inv, ray.Direction)
		t, ok := n.Shape.IntersectRay(o, d)
		if !ok {
			continue
		}
		buf = append(buf, Hit{Point: ray.At(t), Distance: t, Node: n})
	}

	sort.SliceStable(buf, func(i, j int) bool {
		return buf[i].Distance < buf[j].Distance
	})
	return buf
}
