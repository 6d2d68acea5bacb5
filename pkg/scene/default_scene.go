package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewDefaultScene creates a mirror sphere between two red spheres on a checkered floor
func NewDefaultScene() *Scene {
	camera := geometry.NewCamera(
		core.NewVec3(0, 2, 7),    // Slightly above the floor, looking back down -Z
		core.NewVec3(0, 0, -10), // Tilt down towards the spheres
	)
	s := New(camera, core.NewVec3(0.1, 0.1, 0.1))

	// Create materials
	mirror := s.AddMaterial(material.Reflective())
	red := s.AddMaterial(material.Red())
	checkered := s.AddMaterial(material.Checkered())

	// Floor spans [-4, 4] on X and Z; UV scale doubles the number of checks
	floor := geometry.NewQuad(
		core.NewVec3(4, 0, 4),
		core.NewVec3(4, 0, -4),
		core.NewVec3(-4, 0, -4),
		core.NewVec3(-4, 0, 4),
		checkered,
	)
	floor.Scale = core.NewVec2(2, 2)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1.5, 0), 1.0, mirror),
		geometry.NewSphere(core.NewVec3(2, 1, 0), 1.0, red),
		geometry.NewSphere(core.NewVec3(-2, 1, 0), 1.0, red),
		floor,
	)

	s.AddLight(lights.NewPointLight(core.NewVec3(0, 5, 2), core.NewVec3(30, 30, 30)))

	return s
}
