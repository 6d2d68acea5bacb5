package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Quad represents a planar quadrilateral with corners A, B, C, D in order
type Quad struct {
	A, B, C, D core.Vec3
	Infinite   bool       // Skip the [0,1] bounds test, treating the quad as its supporting plane
	Scale      core.Vec2  // Multiplier applied to the surface UV
	Material   MaterialID // Material of the quad
	normal     core.Vec3  // Cached unit normal of (B-A) × (C-A)
}

// NewQuad creates a new bounded quad from four corners
func NewQuad(a, b, c, d core.Vec3, material MaterialID) *Quad {
	return &Quad{
		A:        a,
		B:        b,
		C:        c,
		D:        d,
		Scale:    core.NewVec2(1, 1),
		Material: material,
		normal:   b.Subtract(a).Cross(c.Subtract(a)).Normalize(),
	}
}

// NewInfiniteQuad creates a quad whose bounds are ignored; uv tiles with scale
func NewInfiniteQuad(a, b, c, d core.Vec3, scale core.Vec2, material MaterialID) *Quad {
	q := NewQuad(a, b, c, d, material)
	q.Infinite = true
	q.Scale = scale
	return q
}

// Normal returns the quad's outward unit normal
func (q *Quad) Normal() core.Vec3 {
	return q.normal
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	denominator := ray.Direction.Dot(q.normal)

	// Parallel ray or degenerate quad (zero normal)
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := q.A.Subtract(ray.Origin).Dot(q.normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	ap := hitPoint.Subtract(q.A)

	// Project onto the two edges leaving A
	ad := q.D.Subtract(q.A)
	ab := q.B.Subtract(q.A)
	u := ad.Dot(ap) / ad.LengthSquared()
	v := ab.Dot(ap) / ab.LengthSquared()

	if !q.Infinite && (u < 0 || u > 1 || v < 0 || v > 1) {
		return nil, false
	}

	hitRecord := &HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: q.Material,
	}
	hitRecord.SetFaceNormal(ray, q.normal)
	hitRecord.SetUV(core.NewVec2(u, v).MultiplyVec(q.Scale))

	return hitRecord, true
}
