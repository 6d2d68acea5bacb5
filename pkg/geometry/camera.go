package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Camera is a pinhole camera looking down -Z in its own frame.
// Rotation holds yaw, pitch and roll in degrees.
type Camera struct {
	Position core.Vec3
	Rotation core.Vec3
}

// NewCamera creates a new camera
func NewCamera(position, rotation core.Vec3) *Camera {
	return &Camera{
		Position: position,
		Rotation: rotation,
	}
}

// RotationMatrix returns Rz(yaw) · Ry(pitch) · Rx(roll)
func (c *Camera) RotationMatrix() core.Mat3 {
	return core.RotationZ(c.Rotation.X).
		Multiply(core.RotationY(c.Rotation.Y)).
		Multiply(core.RotationX(c.Rotation.Z))
}

// GetRay generates a jittered primary ray through pixel (x, y) of a width x height image.
// Row 0 is the top of the image.
func (c *Camera) GetRay(x, y, width, height int, random *rand.Rand) core.Ray {
	// Box-filter antialiasing: jitter uniformly inside the pixel
	jitteredX := float64(x) + random.Float64()
	jitteredY := float64(y) + random.Float64()

	// Normalized device coordinates in [-1, 1]
	x0 := (jitteredX/float64(width))*2 - 1
	y0 := (jitteredY/float64(height))*2 - 1
	aspect := float64(width) / float64(height)

	direction := core.NewVec3(x0*aspect, -y0, -1)
	direction = c.RotationMatrix().MultiplyVec(direction).Normalize()

	return core.NewRay(c.Position, direction)
}
