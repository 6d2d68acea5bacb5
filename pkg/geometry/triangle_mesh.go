package geometry

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// TriangleMesh represents a collection of triangles sharing one material.
// Intersection is a linear scan over all triangles.
type TriangleMesh struct {
	triangles []*Triangle
	material  MaterialID
}

// NewTriangleMesh creates a new triangle mesh from vertices and face indices
// vertices: array of 3D points
// faces: array of triangle indices (each group of 3 indices forms a triangle)
func NewTriangleMesh(vertices []core.Vec3, faces []int, material MaterialID) (*TriangleMesh, error) {
	if len(faces) == 0 {
		return nil, fmt.Errorf("triangle mesh has no faces")
	}
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must be a multiple of 3, got %d", len(faces))
	}

	triangles := make([]*Triangle, 0, len(faces)/3)
	for i := 0; i < len(faces); i += 3 {
		i0, i1, i2 := faces[i], faces[i+1], faces[i+2]
		for _, idx := range []int{i0, i1, i2} {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("face %d: vertex index %d out of bounds (%d vertices)", i/3, idx, len(vertices))
			}
		}
		triangles = append(triangles, NewTriangle(vertices[i0], vertices[i1], vertices[i2], material))
	}

	return &TriangleMesh{triangles: triangles, material: material}, nil
}

// TriangleCount returns the number of triangles in the mesh
func (tm *TriangleMesh) TriangleCount() int {
	return len(tm.triangles)
}

// Hit returns the nearest triangle hit; the first triangle wins at equal t
func (tm *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closestHit *HitRecord
	closestT := tMax

	for _, triangle := range tm.triangles {
		if hit, isHit := triangle.Hit(ray, tMin, closestT); isHit {
			if closestHit == nil || hit.T < closestT {
				closestT = hit.T
				closestHit = hit
			}
		}
	}

	return closestHit, closestHit != nil
}
