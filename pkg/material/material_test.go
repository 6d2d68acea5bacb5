package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

func TestParseMaterial(t *testing.T) {
	tests := []struct {
		name     string
		expected Material
		wantErr  bool
	}{
		{"reflective", Reflective(), false},
		{"Red", Red(), false},
		{" green ", Green(), false},
		{"blue", Blue(), false},
		{"white", White(), false},
		{"black", Black(), false},
		{"checkered", Checkered(), false},
		{"velvet", Material{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMaterial(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if !tt.wantErr && m != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, m)
			}
		})
	}
}

func TestMaterial_IsMirror(t *testing.T) {
	if !Reflective().IsMirror() {
		t.Error("Reflective preset should be a mirror")
	}
	if New(core.NewVec3(1, 1, 1), 0.99, false).IsMirror() {
		t.Error("Reflectivity below 1.0 should be diffuse")
	}
	if Red().IsMirror() {
		t.Error("Red preset should be diffuse")
	}
}

func TestMaterial_Color(t *testing.T) {
	black := core.NewVec3(0, 0, 0)
	white := core.NewVec3(1, 1, 1)
	checker := Checkered()

	tests := []struct {
		name     string
		material Material
		uv       core.Vec2
		hasUV    bool
		expected core.Vec3
	}{
		{"solid ignores uv", Red(), core.NewVec2(0.55, 0.55), true, core.NewVec3(1, 0, 0)},
		{"checker without uv uses albedo", checker, core.Vec2{}, false, white},
		{"first cell is black", checker, core.NewVec2(0.05, 0.05), true, black},
		{"neighbour cell is white", checker, core.NewVec2(0.15, 0.05), true, white},
		{"diagonal cell is black", checker, core.NewVec2(0.15, 0.15), true, black},
		{"wraps above one", checker, core.NewVec2(1.15, 0.05), true, white},
		{"wraps negative", checker, core.NewVec2(-0.05, 0.05), true, white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.material.Color(tt.uv, tt.hasUV)
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMaterial_Scatter(t *testing.T) {
	m := White()
	random := rand.New(rand.NewSource(42))
	hit := &geometry.HitRecord{
		Point:  core.NewVec3(1, 2, 3),
		Normal: core.NewVec3(0, 0, 1),
	}

	strategies := []core.SamplingStrategy{core.CosineWeightedDisk, core.CosineWeightedAngle, core.UniformSphere}
	for _, strategy := range strategies {
		t.Run(strategy.String(), func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				ray, pdf := m.Scatter(hit, random, strategy)

				cosTheta := ray.Direction.Dot(hit.Normal)
				if cosTheta < 0 {
					t.Fatalf("Scattered direction below surface: %v", ray.Direction)
				}
				if pdf < 0 {
					t.Fatalf("Negative pdf %f", pdf)
				}
				if math.Abs(ray.Direction.Length()-1) > 1e-9 {
					t.Fatalf("Expected unit direction, got length %f", ray.Direction.Length())
				}

				expectedOrigin := hit.Point.Add(ray.Direction.Multiply(0.001))
				if ray.Origin.Subtract(expectedOrigin).Length() > 1e-12 {
					t.Fatalf("Expected origin offset along direction, got %v", ray.Origin)
				}
			}
		})
	}
}

func TestReflect_MirrorRoundTrip(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	normal := core.NewVec3(0, 1, 0)

	for i := 0; i < 100; i++ {
		incoming := core.NewVec3(random.Float64()*2-1, -random.Float64()-0.01, random.Float64()*2-1).Normalize()
		reflected := Reflect(incoming, normal)

		// Angle of incidence equals angle of reflection
		if math.Abs(incoming.Dot(normal)+reflected.Dot(normal)) > 1e-12 {
			t.Fatalf("Incidence %f does not mirror reflection %f", incoming.Dot(normal), reflected.Dot(normal))
		}

		// Outgoing direction is in the plane spanned by incoming and normal
		planeNormal := incoming.Cross(normal)
		if math.Abs(reflected.Dot(planeNormal)) > 1e-12 {
			t.Fatalf("Reflected direction %v leaves the plane of incidence", reflected)
		}

		if math.Abs(reflected.Length()-1) > 1e-12 {
			t.Fatalf("Reflection should preserve length, got %f", reflected.Length())
		}
	}
}

func TestReflectRay(t *testing.T) {
	hit := &geometry.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1))

	ray := ReflectRay(rayIn, hit)

	// Incident (0, -1, -1) normalized reflects to (0, -0.707, 0.707)
	expected := core.NewVec3(0, -1, 1).Normalize()
	if ray.Direction.Subtract(expected).Length() > 1e-10 {
		t.Errorf("Expected direction %v, got %v", expected, ray.Direction)
	}
	if ray.Origin.Subtract(expected.Multiply(0.001)).Length() > 1e-12 {
		t.Errorf("Expected offset origin, got %v", ray.Origin)
	}
}
