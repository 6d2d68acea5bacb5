package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewCornellScene creates a Cornell box with its front side left open towards the camera
func NewCornellScene() *Scene {
	camera := geometry.NewCamera(core.NewVec3(0, 2.5, 7), core.NewVec3(0, 0, 0))

	// Black background so only the point light illuminates the box
	s := New(camera, core.NewVec3(0, 0, 0))

	// Create materials
	white := s.AddMaterial(material.FromColor(core.NewVec3(0.73, 0.73, 0.73)))
	red := s.AddMaterial(material.FromColor(core.NewVec3(0.65, 0.05, 0.05)))
	green := s.AddMaterial(material.FromColor(core.NewVec3(0.12, 0.45, 0.15)))

	// Box spans x ∈ [-2.5, 2.5], y ∈ [0, 5], z ∈ [-5, 0]
	const half = 2.5
	const size = 5.0

	// Floor (white) - XZ plane at y=0
	floor := geometry.NewQuad(
		core.NewVec3(-half, 0, 0),
		core.NewVec3(half, 0, 0),
		core.NewVec3(half, 0, -size),
		core.NewVec3(-half, 0, -size),
		white,
	)

	// Ceiling (white) - XZ plane at y=size
	ceiling := geometry.NewQuad(
		core.NewVec3(-half, size, 0),
		core.NewVec3(-half, size, -size),
		core.NewVec3(half, size, -size),
		core.NewVec3(half, size, 0),
		white,
	)

	// Back wall (white) - XY plane at z=-size
	backWall := geometry.NewQuad(
		core.NewVec3(-half, 0, -size),
		core.NewVec3(half, 0, -size),
		core.NewVec3(half, size, -size),
		core.NewVec3(-half, size, -size),
		white,
	)

	// Left wall (red) - YZ plane at x=-half
	leftWall := geometry.NewQuad(
		core.NewVec3(-half, 0, 0),
		core.NewVec3(-half, 0, -size),
		core.NewVec3(-half, size, -size),
		core.NewVec3(-half, size, 0),
		red,
	)

	// Right wall (green) - YZ plane at x=half
	rightWall := geometry.NewQuad(
		core.NewVec3(half, 0, -size),
		core.NewVec3(half, 0, 0),
		core.NewVec3(half, size, 0),
		core.NewVec3(half, size, -size),
		green,
	)

	// Tall and short blocks
	tallBlock := geometry.NewCube(core.NewVec3(-1.6, 0, -4.2), core.NewVec3(-0.4, 3, -2.8), white)
	shortBlock := geometry.NewCube(core.NewVec3(0.4, 0, -2.6), core.NewVec3(1.6, 1.5, -1.4), white)

	s.Add(floor, ceiling, backWall, leftWall, rightWall, tallBlock, shortBlock)

	s.AddLight(lights.NewPointLight(core.NewVec3(0, 4.5, -2.5), core.NewVec3(12, 12, 12)))

	return s
}
