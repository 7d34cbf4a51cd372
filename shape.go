package urdf

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Shape is a pickable volume in node-local coordinates. IntersectRay
// receives the ray in local space, with a direction that need not be unit
// length, and returns the smallest non-negative parameter t at which
// origin + t*dir touches the shape.
type Shape interface {
	IntersectRay(origin, dir mgl64.Vec3) (t float64, ok bool)
}

// --- Built-in Shape types ---

// Sphere is a sphere centered on the node origin.
type Sphere struct {
	Radius float64
}

// IntersectRay solves |o + t*d|^2 = r^2 for the nearest t >= 0.
func (s Sphere) IntersectRay(o, d mgl64.Vec3) (float64, bool) {
	a := d.Dot(d)
	if a == 0 {
		return 0, false
	}
	b := 2 * o.Dot(d)
	c := o.Dot(o) - s.Radius*s.Radius
	return nearestRoot(a, b, c)
}

// Box is an axis-aligned box centered on the node origin. Size holds the
// full extents along X, Y and Z, as in URDF.
type Box struct {
	Size mgl64.Vec3
}

// IntersectRay uses the slab method.
func (b Box) IntersectRay(o, d mgl64.Vec3) (float64, bool) {
	tMin, tMax := math.Inf(-1), math.Inf(1)
	for i := 0; i < 3; i++ {
		half := b.Size[i] / 2
		if d[i] == 0 {
			// Parallel to this slab: must already lie inside it.
			if o[i] < -half || o[i] > half {
				return 0, false
			}
			continue
		}
		t1 := (-half - o[i]) / d[i]
		t2 := (half - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	if tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		return tMax, true
	}
	return tMin, true
}

// Cylinder is a capped cylinder centered on the node origin with its axis
// along local Z, as in URDF.
type Cylinder struct {
	Radius, Length float64
}

// IntersectRay tests the curved side and both caps.
func (c Cylinder) IntersectRay(o, d mgl64.Vec3) (float64, bool) {
	half := c.Length / 2
	r2 := c.Radius * c.Radius
	best, found := math.Inf(1), false

	consider := func(t float64) {
		if t >= 0 && t < best {
			best, found = t, true
		}
	}

	// Side: x^2 + y^2 = r^2 with |z| <= half.
	a := d[0]*d[0] + d[1]*d[1]
	if a != 0 {
		b := 2 * (o[0]*d[0] + o[1]*d[1])
		cc := o[0]*o[0] + o[1]*o[1] - r2
		if disc := b*b - 4*a*cc; disc >= 0 {
			sq := math.Sqrt(disc)
			for _, t := range [2]float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
				if z := o[2] + t*d[2]; z >= -half && z <= half {
					consider(t)
				}
			}
		}
	}

	// Caps: z = ±half with x^2 + y^2 <= r^2.
	if d[2] != 0 {
		for _, z := range [2]float64{-half, half} {
			t := (z - o[2]) / d[2]
			x := o[0] + t*d[0]
			y := o[1] + t*d[1]
			if x*x+y*y <= r2 {
				consider(t)
			}
		}
	}
	return best, found
}

// nearestRoot returns the smallest non-negative root of a*t^2 + b*t + c.
func nearestRoot(a, b, c float64) (float64, bool) {
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)
	if t0 >= 0 {
		return t0, true
	}
	if t1 >= 0 {
		return t1, true
	}
	return 0, false
}
