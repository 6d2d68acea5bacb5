package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCamera_GetRay_CenterPixel(t *testing.T) {
	camera := NewCamera(core.NewVec3(1, 2, 3), core.NewVec3(0, 0, 0))
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		ray := camera.GetRay(50, 50, 101, 101, random)

		if ray.Origin != camera.Position {
			t.Fatalf("Expected origin %v, got %v", camera.Position, ray.Origin)
		}
		if math.Abs(ray.Direction.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %f", ray.Direction.Length())
		}
		// Center pixel of an odd-sized image looks (almost) straight down -Z
		if ray.Direction.Z > -0.99 {
			t.Fatalf("Expected direction close to -Z, got %v", ray.Direction)
		}
	}
}

func TestCamera_GetRay_Orientation(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0))
	random := rand.New(rand.NewSource(1))

	topLeft := camera.GetRay(0, 0, 100, 50, random)
	if topLeft.Direction.X >= 0 || topLeft.Direction.Y <= 0 {
		t.Errorf("Expected top-left pixel to look left and up, got %v", topLeft.Direction)
	}

	bottomRight := camera.GetRay(99, 49, 100, 50, random)
	if bottomRight.Direction.X <= 0 || bottomRight.Direction.Y >= 0 {
		t.Errorf("Expected bottom-right pixel to look right and down, got %v", bottomRight.Direction)
	}
}

func TestCamera_GetRay_Rotation(t *testing.T) {
	// Pitch 90° about Y turns the -Z view axis to -X
	camera := NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 90, 0))
	random := rand.New(rand.NewSource(5))

	ray := camera.GetRay(500, 500, 1001, 1001, random)
	if ray.Direction.X > -0.99 {
		t.Errorf("Expected direction close to -X, got %v", ray.Direction)
	}
}

func TestCamera_RotationMatrixOrder(t *testing.T) {
	camera := NewCamera(core.Vec3{}, core.NewVec3(30, 45, 60))
	expected := core.RotationZ(30).Multiply(core.RotationY(45)).Multiply(core.RotationX(60))

	got := camera.RotationMatrix()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(got[i][j]-expected[i][j]) > 1e-12 {
				t.Fatalf("Rotation matrix mismatch at [%d][%d]: %f vs %f", i, j, got[i][j], expected[i][j])
			}
		}
	}
}
