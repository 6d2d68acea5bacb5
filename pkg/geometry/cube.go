package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Cube represents an axis-aligned box between Min and Max
type Cube struct {
	Min      core.Vec3
	Max      core.Vec3
	Material MaterialID
}

// NewCube creates a new axis-aligned cube; corners are reordered so Min <= Max
func NewCube(a, b core.Vec3, material MaterialID) *Cube {
	return &Cube{
		Min:      core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)),
		Max:      core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)),
		Material: material,
	}
}

// Hit tests if a ray intersects with the cube using the slab method
func (c *Cube) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	entry := math.Inf(-1)
	exit := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Get(axis)
		direction := ray.Direction.Get(axis)
		lo, hi := c.Min.Get(axis), c.Max.Get(axis)

		// Ray parallel to this slab: miss unless the origin lies between its faces
		if math.Abs(direction) < 1e-12 {
			if origin < lo || origin > hi {
				return nil, false
			}
			continue
		}

		invD := 1.0 / direction
		t0 := (lo - origin) * invD
		t1 := (hi - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		entry = math.Max(entry, t0)
		exit = math.Min(exit, t1)

		// Slab intervals do not overlap inside the query range
		if math.Min(exit, tMax) <= math.Max(entry, tMin) {
			return nil, false
		}
	}

	// Enter through the nearest face unless the origin is inside the cube
	t := entry
	if t < tMin {
		t = exit
	}
	if t < tMin || t > tMax {
		return nil, false
	}

	hitRecord := &HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: c.Material,
	}
	hitRecord.SetFaceNormal(ray, c.outwardNormal(hitRecord.Point))

	return hitRecord, true
}

// outwardNormal returns the normal of the face closest to point
func (c *Cube) outwardNormal(point core.Vec3) core.Vec3 {
	bestDistance := math.Inf(1)
	var normal core.Vec3

	for axis := 0; axis < 3; axis++ {
		p := point.Get(axis)
		if d := math.Abs(p - c.Min.Get(axis)); d < bestDistance {
			bestDistance = d
			normal = axisVector(axis, -1)
		}
		if d := math.Abs(c.Max.Get(axis) - p); d < bestDistance {
			bestDistance = d
			normal = axisVector(axis, 1)
		}
	}
	return normal
}

func axisVector(axis int, sign float64) core.Vec3 {
	switch axis {
	case 0:
		return core.NewVec3(sign, 0, 0)
	case 1:
		return core.NewVec3(0, sign, 0)
	default:
		return core.NewVec3(0, 0, sign)
	}
}
