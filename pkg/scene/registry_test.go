package scene

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestNames(t *testing.T) {
	names := Names()
	expected := []string{"cornell", "default", "showcase"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d names, got %v", len(expected), names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Expected %q at %d, got %q", expected[i], i, names[i])
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := ByName(name)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Built-in scene invalid: %v", err)
			}
			if len(s.Shapes) == 0 {
				t.Error("Expected shapes")
			}
			if len(s.Lights) == 0 {
				t.Error("Expected lights")
			}
			// A few camera rays must trace without touching an unknown material
			random := rand.New(rand.NewSource(42))
			for i := 0; i < 20; i++ {
				ray := s.Camera.GetRay(i*3, 10+i, 64, 36, random)
				if radiance := s.TraceRay(ray, 10, random, core.CosineWeightedDisk); !radiance.IsFinite() {
					t.Fatalf("Non-finite radiance %v", radiance)
				}
			}
		})
	}

	if _, err := ByName("nope"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}
