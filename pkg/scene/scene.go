package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ShadowEpsilon is the minimum t accepted along shadow and bounce rays
const ShadowEpsilon = 0.001

// ErrNoCamera is returned when a scene is rendered without a camera
var ErrNoCamera = errors.New("scene has no camera")

// Scene contains all the elements needed for rendering.
// A scene is built once and is read-only while it is being rendered.
type Scene struct {
	Camera      *geometry.Camera
	Shapes      []geometry.Shape    // Objects in the scene, intersected in order
	Lights      []lights.Light      // Lights in the scene
	Materials   []material.Material // Material table indexed by geometry.MaterialID
	SkyboxColor core.Vec3           // Radiance returned for escaping rays
}

// New creates an empty scene with the given camera and background color
func New(camera *geometry.Camera, skybox core.Vec3) *Scene {
	return &Scene{
		Camera:      camera,
		Shapes:      make([]geometry.Shape, 0),
		Lights:      make([]lights.Light, 0),
		Materials:   make([]material.Material, 0),
		SkyboxColor: skybox,
	}
}

// AddMaterial registers m and returns its handle
func (s *Scene) AddMaterial(m material.Material) geometry.MaterialID {
	s.Materials = append(s.Materials, m)
	return geometry.MaterialID(len(s.Materials) - 1)
}

// Material returns the material for id; an unknown handle is a construction bug and panics
func (s *Scene) Material(id geometry.MaterialID) material.Material {
	if id < 0 || int(id) >= len(s.Materials) {
		panic(fmt.Sprintf("scene: material id %d out of range (%d materials)", id, len(s.Materials)))
	}
	return s.Materials[id]
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(l ...lights.Light) {
	s.Lights = append(s.Lights, l...)
}

// Validate checks that the scene can be rendered
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return ErrNoCamera
	}
	return nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		switch obj := shape.(type) {
		case *geometry.TriangleMesh:
			// Triangle meshes contain multiple triangles
			count += obj.TriangleCount()
		default:
			count++
		}
	}
	return count
}

// Hit returns the nearest intersection in [tMin, tMax] over all shapes.
// At equal t the shape added first wins.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*geometry.HitRecord, bool) {
	var closestHit *geometry.HitRecord
	closestSoFar := tMax

	for _, shape := range s.Shapes {
		hit, isHit := shape.Hit(ray, tMin, closestSoFar)
		if !isHit {
			continue
		}
		if closestHit == nil || hit.T < closestSoFar {
			closestHit = hit
			closestSoFar = hit.T
		}
	}

	return closestHit, closestHit != nil
}

// Occluded reports whether any shape blocks the segment from point along direction up to distance
func (s *Scene) Occluded(point, direction core.Vec3, distance float64) bool {
	shadowRay := core.NewRay(point, direction)
	for _, shape := range s.Shapes {
		if _, isHit := shape.Hit(shadowRay, ShadowEpsilon, distance); isHit {
			return true
		}
	}
	return false
}

// closestHit intersects ray against the scene over (ShadowEpsilon, ∞)
func (s *Scene) closestHit(ray core.Ray) (*geometry.HitRecord, bool) {
	return s.Hit(ray, ShadowEpsilon, math.Inf(1))
}
