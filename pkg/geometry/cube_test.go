package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCube_Hit_Faces(t *testing.T) {
	cube := NewCube(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), 0)

	tests := []struct {
		name           string
		origin         core.Vec3
		direction      core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{"from +Z", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 4, core.NewVec3(0, 0, 1)},
		{"from -Z", core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 4, core.NewVec3(0, 0, -1)},
		{"from +X", core.NewVec3(3, 0.2, 0.1), core.NewVec3(-1, 0, 0), 2, core.NewVec3(1, 0, 0)},
		{"from -Y", core.NewVec3(0.3, -4, 0), core.NewVec3(0, 1, 0), 3, core.NewVec3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := cube.Hit(core.NewRay(tt.origin, tt.direction), 0.001, 1000.0)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			assertVec(t, "normal", hit.Normal, tt.expectedNormal)
			if !hit.FrontFace {
				t.Error("Expected front face hit")
			}
			if hit.HasUV {
				t.Error("Cube hits should not carry UV coordinates")
			}
		})
	}
}

func TestCube_Hit_Miss(t *testing.T) {
	cube := NewCube(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), 0)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		tMax      float64
	}{
		{"passes beside", core.NewVec3(2, 0, 5), core.NewVec3(0, 0, -1), 1000},
		{"pointing away", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1), 1000},
		{"parallel outside slab", core.NewVec3(0, 3, 5), core.NewVec3(0, 0, -1), 1000},
		{"beyond tMax", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := cube.Hit(core.NewRay(tt.origin, tt.direction), 0.001, tt.tMax)
			if isHit {
				t.Errorf("Expected miss, got hit at t=%f", hit.T)
			}
		})
	}
}

func TestCube_Hit_FromInside(t *testing.T) {
	cube := NewCube(core.NewVec3(1, 1, 1), core.NewVec3(-1, -1, -1), 0)

	hit, isHit := cube.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected exit hit from inside the cube")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected exit at t=1, got t=%f", hit.T)
	}
	if hit.FrontFace {
		t.Error("Expected back face hit from inside")
	}
	assertVec(t, "normal", hit.Normal, core.NewVec3(0, -1, 0))
}
