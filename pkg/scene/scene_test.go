package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
)

func newTestScene() *Scene {
	return New(geometry.NewCamera(core.NewVec3(0, 0, 5), core.Vec3{}), core.NewVec3(0, 0, 0))
}

func TestScene_Hit_Nearest(t *testing.T) {
	s := newTestScene()
	far := s.AddMaterial(material.Red())
	near := s.AddMaterial(material.Green())

	// Added far-first so the scan must keep narrowing
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -5), 1, far),
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, near),
	)

	hit, isHit := s.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected nearest hit at t=4, got t=%f", hit.T)
	}
	if hit.Material != near {
		t.Errorf("Expected material %d, got %d", near, hit.Material)
	}
}

func TestScene_Hit_TieFirstFoundWins(t *testing.T) {
	s := newTestScene()
	first := s.AddMaterial(material.Red())
	second := s.AddMaterial(material.Blue())

	// Coincident planes: both report the same t
	s.Add(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), first),
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), second),
	)

	hit, isHit := s.Hit(core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.Material != first {
		t.Errorf("Expected first shape's material %d at equal t, got %d", first, hit.Material)
	}
}

func TestScene_Hit_Empty(t *testing.T) {
	s := newTestScene()
	if _, isHit := s.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1)); isHit {
		t.Error("Expected empty scene to miss")
	}
}

func TestScene_Occluded(t *testing.T) {
	s := newTestScene()
	white := s.AddMaterial(material.White())
	s.Add(geometry.NewSphere(core.NewVec3(0, 2, 0), 0.5, white))

	up := core.NewVec3(0, 1, 0)
	if !s.Occluded(core.NewVec3(0, 0, 0), up, 4) {
		t.Error("Expected sphere to block segment up to distance 4")
	}
	if s.Occluded(core.NewVec3(0, 0, 0), up, 1) {
		t.Error("Expected segment ending before the sphere to be clear")
	}
	if s.Occluded(core.NewVec3(3, 0, 0), up, 4) {
		t.Error("Expected segment beside the sphere to be clear")
	}
}

func TestScene_MaterialOutOfRangePanics(t *testing.T) {
	s := newTestScene()
	s.AddMaterial(material.White())

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for unknown material id")
		}
	}()
	s.Material(5)
}

func TestScene_Validate(t *testing.T) {
	s := &Scene{}
	if err := s.Validate(); !errors.Is(err, ErrNoCamera) {
		t.Errorf("Expected ErrNoCamera, got %v", err)
	}
	if err := newTestScene().Validate(); err != nil {
		t.Errorf("Expected valid scene, got %v", err)
	}
}

func TestScene_GetPrimitiveCount(t *testing.T) {
	s := newTestScene()
	m := s.AddMaterial(material.White())
	mesh, err := geometry.NewTriangleMesh(
		[]core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(1, 1, 0), core.NewVec3(0, 1, 0)},
		[]int{0, 1, 2, 0, 2, 3},
		m,
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	s.Add(geometry.NewSphere(core.Vec3{}, 1, m), mesh)

	if got := s.GetPrimitiveCount(); got != 3 {
		t.Errorf("Expected 3 primitives, got %d", got)
	}
}

func TestScene_DirectLight_Shadowing(t *testing.T) {
	hit := &geometry.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
	}
	throughput := core.NewVec3(1, 1, 1)

	tests := []struct {
		name     string
		lightPos core.Vec3
		blocker  bool
		expected float64
	}{
		// 16 / 4² with cosθ = 1
		{"overhead unobstructed", core.NewVec3(0, 4, 0), false, 1.0},
		// 16 * 0.8 / 5²
		{"oblique unobstructed", core.NewVec3(3, 4, 0), false, 0.512},
		{"overhead blocked", core.NewVec3(0, 4, 0), true, 0.0},
		// Behind the surface: cosθ clamps to zero
		{"below surface", core.NewVec3(0, -4, 0), false, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScene()
			white := s.AddMaterial(material.White())
			if tt.blocker {
				s.Add(geometry.NewSphere(core.NewVec3(0, 2, 0), 0.5, white))
			}
			s.AddLight(lights.NewPointLight(tt.lightPos, core.NewVec3(16, 16, 16)))

			got := s.DirectLight(hit, throughput)
			if tt.expected == 0 {
				if got != (core.Vec3{}) {
					t.Errorf("Expected exactly zero contribution, got %v", got)
				}
				return
			}
			for _, c := range []float64{got.X, got.Y, got.Z} {
				if math.Abs(c-tt.expected) > 1e-9 {
					t.Errorf("Expected %f per channel, got %v", tt.expected, got)
					break
				}
			}
		})
	}
}

func TestScene_DirectLight_SumsLights(t *testing.T) {
	s := newTestScene()
	s.AddLight(
		lights.NewPointLight(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0)),
		lights.NewPointLight(core.NewVec3(0, 2, 0), core.NewVec3(0, 4, 0)),
	)
	hit := &geometry.HitRecord{Normal: core.NewVec3(0, 1, 0)}

	got := s.DirectLight(hit, core.NewVec3(0.5, 0.5, 0.5))
	expected := core.NewVec3(0.5, 0.5, 0)
	if got.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestScene_DirectLight_UnimplementedLightPanics(t *testing.T) {
	s := newTestScene()
	s.AddLight(&lights.AreaLight{})
	hit := &geometry.HitRecord{Normal: core.NewVec3(0, 1, 0)}

	defer func() {
		if recover() == nil {
			t.Error("Expected area light to panic during direct lighting")
		}
	}()
	s.DirectLight(hit, core.NewVec3(1, 1, 1))
}
