package urdf

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera looking down its local -Z axis with +Y up.
// It converts screen positions into picking rays and supplies the viewer
// position and basis the camera-aware solver needs.
type Camera struct {
	// World is the camera-to-world matrix.
	World mgl64.Mat4
	// FovY is the vertical field of view in radians.
	FovY float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect
}

// NewPerspectiveCamera creates a camera at the world origin looking down -Z.
func NewPerspectiveCamera(fovY float64, viewport Rect) *Camera {
	return &Camera{
		World:    mgl64.Ident4(),
		FovY:     fovY,
		Viewport: viewport,
	}
}

// LookAt places the camera at eye facing target.
func (c *Camera) LookAt(eye, target, up mgl64.Vec3) {
	c.World = mgl64.LookAtV(eye, target, up).Inv()
}

// Position returns the camera's world position.
func (c *Camera) Position() mgl64.Vec3 {
	return c.World.Col(3).Vec3()
}

// Forward returns the world-space viewing direction (local -Z).
func (c *Camera) Forward() mgl64.Vec3 {
	v, _ := unitVector(transformDir(c.World, mgl64.Vec3{0, 0, -1}))
	return v
}

func (c *Camera) aspect() float64 {
	if c.Viewport.Height == 0 {
		return 1
	}
	return c.Viewport.Width / c.Viewport.Height
}

// ScreenToNDC converts screen coordinates to normalized device coordinates
// in [-1, 1], with +Y up.
func (c *Camera) ScreenToNDC(sx, sy float64) (x, y float64) {
	vp := c.Viewport
	if vp.Width == 0 || vp.Height == 0 {
		return 0, 0
	}
	x = (sx-vp.X)/vp.Width*2 - 1
	y = -((sy-vp.Y)/vp.Height*2 - 1)
	return x, y
}

// RayFromNDC returns the world-space picking ray through the given
// normalized device coordinates.
func (c *Camera) RayFromNDC(x, y float64) Ray {
	t := math.Tan(c.FovY / 2)
	local := mgl64.Vec3{x * t * c.aspect(), y * t, -1}
	return NewRay(c.Position(), transformDir(c.World, local))
}

// ScreenToRay returns the picking ray under a screen position.
func (c *Camera) ScreenToRay(sx, sy float64) Ray {
	return c.RayFromNDC(c.ScreenToNDC(sx, sy))
}

// WorldToScreen projects a world point to screen coordinates. ok is false
// for points at or behind the camera plane.
func (c *Camera) WorldToScreen(p mgl64.Vec3) (sx, sy float64, ok bool) {
	local := transformPoint(c.World.Inv(), p)
	if local[2] >= 0 {
		return 0, 0, false
	}
	t := math.Tan(c.FovY / 2)
	depth := -local[2]
	x := local[0] / (depth * t * c.aspect())
	y := local[1] / (depth * t)
	vp := c.Viewport
	sx = vp.X + (x+1)/2*vp.Width
	sy = vp.Y + (1-y)/2*vp.Height
	return sx, sy, true
}
