package geometry

import "github.com/df07/go-pathtracer/pkg/core"

// MaterialID is a handle into the owning scene's material table
type MaterialID int

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3  // Point of intersection
	Normal    core.Vec3  // Unit surface normal, facing against the incoming ray
	T         float64    // Parameter t along the ray
	FrontFace bool       // Whether ray hit the front face
	Material  MaterialID // Material of the hit object
	UV        core.Vec2  // Surface coordinates, valid only when HasUV is set
	HasUV     bool       // Whether the shape has a surface parametrization
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// SetUV records surface coordinates on the hit
func (h *HitRecord) SetUV(uv core.Vec2) {
	h.UV = uv
	h.HasUV = true
}

// Shape interface for objects that can be hit by rays.
// Implementations are immutable after construction and safe for concurrent use.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
}
