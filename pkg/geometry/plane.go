package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Plane represents an infinite one-sided plane defined by a point and normal
type Plane struct {
	Point    core.Vec3  // A point on the plane
	Normal   core.Vec3  // Unit normal vector
	Material MaterialID // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material MaterialID) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Hit tests if a ray intersects with the plane.
// Plane hits always report the stored normal and FrontFace = true.
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	denominator := p.Normal.Dot(ray.Direction)

	// Ray (nearly) parallel to the plane
	if math.Abs(denominator) <= 1e-6 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	return &HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    p.Normal,
		FrontFace: true,
		Material:  p.Material,
	}, true
}
