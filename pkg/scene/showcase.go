package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewShowcaseScene places one of every primitive kind on an infinite checkered ground
func NewShowcaseScene() *Scene {
	camera := geometry.NewCamera(core.NewVec3(0, 2.5, 8), core.NewVec3(0, 0, -12))
	s := New(camera, core.NewVec3(0.05, 0.07, 0.1))

	mirror := s.AddMaterial(material.Reflective())
	red := s.AddMaterial(material.Red())
	green := s.AddMaterial(material.Green())
	blue := s.AddMaterial(material.Blue())
	white := s.AddMaterial(material.White())
	checkered := s.AddMaterial(material.Checkered())

	ground := geometry.NewInfiniteQuad(
		core.NewVec3(1, 0, 1),
		core.NewVec3(1, 0, -1),
		core.NewVec3(-1, 0, -1),
		core.NewVec3(-1, 0, 1),
		core.NewVec2(0.1, 0.1),
		checkered,
	)
	backdrop := geometry.NewPlane(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1), blue)

	pyramid, err := geometry.NewTriangleMesh(
		[]core.Vec3{
			core.NewVec3(2.2, 0, -1.2),
			core.NewVec3(3.8, 0, -1.2),
			core.NewVec3(3.8, 0, 0.4),
			core.NewVec3(2.2, 0, 0.4),
			core.NewVec3(3, 1.6, -0.4),
		},
		[]int{0, 1, 4, 1, 2, 4, 2, 3, 4, 3, 0, 4},
		white,
	)
	if err != nil {
		panic("scene: showcase pyramid: " + err.Error())
	}

	s.Add(
		ground,
		backdrop,
		geometry.NewSphere(core.NewVec3(0, 1.2, -2), 1.2, mirror),
		geometry.NewCube(core.NewVec3(-3.6, 0, -1.4), core.NewVec3(-2.2, 1.4, 0), red),
		geometry.NewTriangle(core.NewVec3(-1, 0, 1), core.NewVec3(0, 0, 1.5), core.NewVec3(-0.5, 1, 1.2), green),
		pyramid,
	)

	s.AddLight(
		lights.NewPointLight(core.NewVec3(-3, 6, 3), core.NewVec3(40, 38, 34)),
		lights.NewPointLight(core.NewVec3(4, 3, 2), core.NewVec3(6, 6, 8)),
	)

	return s
}
