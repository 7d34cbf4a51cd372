package urdf

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestShapeIntersectRay(t *testing.T) {
	down := mgl64.Vec3{0, 0, -1}
	tests := []struct {
		name   string
		shape  Shape
		origin mgl64.Vec3
		dir    mgl64.Vec3
		want   float64
		ok     bool
	}{
		{"sphere hit", Sphere{Radius: 1}, mgl64.Vec3{0, 0, 5}, down, 4, true},
		{"sphere miss", Sphere{Radius: 1}, mgl64.Vec3{2, 0, 5}, down, 0, false},
		{"sphere from inside", Sphere{Radius: 1}, mgl64.Vec3{}, down, 1, true},
		{"sphere behind", Sphere{Radius: 1}, mgl64.Vec3{0, 0, -5}, down, 0, false},
		{"box hit", Box{Size: mgl64.Vec3{2, 2, 2}}, mgl64.Vec3{0.5, 0.5, 5}, down, 4, true},
		{"box miss", Box{Size: mgl64.Vec3{2, 2, 2}}, mgl64.Vec3{1.5, 0, 5}, down, 0, false},
		{"box slanted", Box{Size: mgl64.Vec3{2, 2, 2}}, mgl64.Vec3{-5, 0, 0}, mgl64.Vec3{1, 0, 0}, 4, true},
		{"box from inside", Box{Size: mgl64.Vec3{2, 2, 2}}, mgl64.Vec3{}, down, 1, true},
		{"cylinder cap", Cylinder{Radius: 1, Length: 2}, mgl64.Vec3{0, 0, 5}, down, 4, true},
		{"cylinder side", Cylinder{Radius: 1, Length: 2}, mgl64.Vec3{5, 0, 0}, mgl64.Vec3{-1, 0, 0}, 4, true},
		{"cylinder above side", Cylinder{Radius: 1, Length: 2}, mgl64.Vec3{5, 0, 1.5}, mgl64.Vec3{-1, 0, 0}, 0, false},
		{"cylinder miss", Cylinder{Radius: 1, Length: 2}, mgl64.Vec3{1.5, 0, 5}, down, 0, false},
		{"zero direction", Sphere{Radius: 1}, mgl64.Vec3{0, 0, 5}, mgl64.Vec3{}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.shape.IntersectRay(tt.origin, tt.dir)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}
