package urdf

import (
	"github.com/go-gl/mathgl/mgl64"
	"zappem.net/pub/math/geom"
)

// unitVector returns v scaled to unit length. ok is false when v is too
// short to have a direction.
func unitVector(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if geom.Zeroish(l) {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// Plane is the set of points p with Normal·p + Constant = 0.
type Plane struct {
	Normal   mgl64.Vec3
	Constant float64
}

// NewPlane returns the plane with the given unit normal passing through point.
func NewPlane(normal, point mgl64.Vec3) Plane {
	return Plane{Normal: normal, Constant: -point.Dot(normal)}
}

// Distance returns the signed distance from p to the plane.
func (pl Plane) Distance(p mgl64.Vec3) float64 {
	return pl.Normal.Dot(p) + pl.Constant
}

// Project returns the orthogonal projection of p onto the plane.
func (pl Plane) Project(p mgl64.Vec3) mgl64.Vec3 {
	return p.Sub(pl.Normal.Mul(pl.Distance(p)))
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// transformDir applies the linear part of m to a direction.
func transformDir(m mgl64.Mat4, v mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(v.Vec4(0)).Vec3()
}
