package urdf

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pointerRig wires the arm scene to PointerControls under a top-down camera.
type pointerRig struct {
	armScene
	cam *Camera
	p   *PointerControls
	log eventLog
}

func newPointerRig(t *testing.T) *pointerRig {
	t.Helper()
	r := &pointerRig{armScene: newArmScene(), cam: topDownCamera()}
	r.p = NewPointerControls(NewRaycaster(r.robot), r.cam, DefaultConfig())
	r.log.attach(r.p.Controls())
	return r
}

// screen returns the screen position of a world point on the link's top face.
func (r *pointerRig) screen(t *testing.T, x, y float64) (float64, float64) {
	t.Helper()
	sx, sy, ok := r.cam.WorldToScreen(mgl64.Vec3{x, y, 0.25})
	require.True(t, ok)
	return sx, sy
}

func (r *pointerRig) drain() {
	for r.p.Update() {
	}
}

func TestNewPointerControlsUsesCameraAwareSolver(t *testing.T) {
	r := newPointerRig(t)
	s, ok := r.p.Controls().solver.(*CameraAwareSolver)
	require.True(t, ok)
	assert.Same(t, r.cam, s.Camera)
	assert.Equal(t, DefaultCoplanarThreshold, s.Threshold)
	assert.Same(t, r.cam, r.p.Camera())
}

func TestProcessPointerHover(t *testing.T) {
	r := newPointerRig(t)
	sx, sy := r.screen(t, 2, 0)

	r.p.ProcessPointer(sx, sy, false)
	assert.Same(t, r.hinge, r.p.Controls().Hovered())
	r.p.ProcessPointer(0, 0, false)
	assert.Nil(t, r.p.Controls().Hovered())
	assert.Equal(t, "hover:hinge,unhover:hinge", r.log.String())
}

func TestProcessPointerDrag(t *testing.T) {
	r := newPointerRig(t)
	fx, fy := r.screen(t, 2, 0)
	tx, ty := r.screen(t, 0, 2)

	r.p.ProcessPointer(fx, fy, false)
	r.p.ProcessPointer(fx, fy, true)
	require.Same(t, r.hinge, r.p.Controls().Manipulating())
	r.p.ProcessPointer((fx+tx)/2, (fy+ty)/2, true)
	r.p.ProcessPointer(tx, ty, true)
	r.p.ProcessPointer(tx, ty, false)

	assert.InDelta(t, math.Pi/2, r.hinge.JointValue(), 1e-9)
	assert.Nil(t, r.p.Controls().Manipulating())
	got := r.log.String()
	assert.True(t, strings.HasPrefix(got, "hover:hinge,drag-start:hinge,joint-change:hinge"), got)
	assert.True(t, strings.HasSuffix(got, "drag-end:hinge"), got)
	assert.NotContains(t, got, "click")
}

func TestProcessPointerClick(t *testing.T) {
	r := newPointerRig(t)
	sx, sy := r.screen(t, 2, 0)

	r.p.ProcessPointer(sx, sy, false)
	r.p.ProcessPointer(sx, sy, true)
	r.p.ProcessPointer(sx, sy, false)

	assert.Equal(t, "hover:hinge,drag-start:hinge,drag-end:hinge,click:hinge", r.log.String())
	assert.Zero(t, r.hinge.JointValue())
}

func TestProcessPointerDeadZone(t *testing.T) {
	r := newPointerRig(t)
	sx, sy := r.screen(t, 2, 0)

	// Wandering inside the dead zone still clicks.
	r.p.ProcessPointer(sx, sy, true)
	r.p.ProcessPointer(sx+1, sy+1, true)
	r.p.ProcessPointer(sx+1, sy+1, false)
	assert.Equal(t, 1, strings.Count(r.log.String(), "click"))

	// Leaving the dead zone latches a drag even if the pointer comes back.
	r.p.ProcessPointer(sx, sy, true)
	r.p.ProcessPointer(sx+10, sy, true)
	r.p.ProcessPointer(sx, sy, true)
	r.p.ProcessPointer(sx, sy, false)
	assert.Equal(t, 1, strings.Count(r.log.String(), "click"))
}

func TestProcessPointerPressOnNothing(t *testing.T) {
	r := newPointerRig(t)
	r.p.ProcessPointer(0, 0, true)
	r.p.ProcessPointer(5, 5, true)
	r.p.ProcessPointer(5, 5, false)
	assert.Empty(t, r.log.String())
}

func TestSetDragDeadZone(t *testing.T) {
	r := newPointerRig(t)
	r.p.SetDragDeadZone(50)
	sx, sy := r.screen(t, 2, 0)

	// Radial motion along the link leaves the hinge still and the link
	// under the pointer.
	r.p.ProcessPointer(sx, sy, true)
	r.p.ProcessPointer(sx+5, sy, true)
	r.p.ProcessPointer(sx+5, sy, false)
	assert.Contains(t, r.log.String(), "click:hinge")
}

func TestProcessPointerIgnoresPressOutsideViewport(t *testing.T) {
	s := newArmScene()
	// Close enough that the link projects past the right edge of the viewport.
	cam := testCamera(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
	p := NewPointerControls(NewRaycaster(s.robot), cam, DefaultConfig())
	var log eventLog
	log.attach(p.Controls())

	sx, sy, ok := cam.WorldToScreen(mgl64.Vec3{2, 0, 0.25})
	require.True(t, ok)
	require.False(t, cam.Viewport.Contains(sx, sy))

	p.ProcessPointer(sx, sy, false)
	require.Same(t, s.hinge, p.Controls().Hovered(), "hover still tracks the pointer")

	p.ProcessPointer(sx, sy, true)
	assert.Nil(t, p.Controls().Manipulating())
	p.ProcessPointer(sx, sy-1, true)
	p.ProcessPointer(sx, sy-1, false)
	assert.Zero(t, s.hinge.JointValue())
	assert.Equal(t, "hover:hinge", log.String(), "no grab or click")

	// The ignored gesture is fully reset by the release.
	p.ProcessPointer(sx, sy, true)
	p.ProcessPointer(sx, sy, false)
	assert.Equal(t, "hover:hinge", log.String())
}

func TestProcessPointerEmptyViewportAcceptsPress(t *testing.T) {
	r := newPointerRig(t)
	sx, sy := r.screen(t, 2, 0)
	r.p.ProcessPointer(sx, sy, false)
	r.cam.Viewport = Rect{}
	r.p.ProcessPointer(sx, sy, true)
	assert.Same(t, r.hinge, r.p.Controls().Manipulating())
}
