package lights

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestPointLight(t *testing.T) {
	light := NewPointLight(core.NewVec3(1, 2, 3), core.NewVec3(3, 4, 0))

	if light.Type() != LightTypePoint {
		t.Errorf("Expected type %q, got %q", LightTypePoint, light.Type())
	}
	if light.Position() != core.NewVec3(1, 2, 3) {
		t.Errorf("Unexpected position %v", light.Position())
	}
	if light.Color() != core.NewVec3(3, 4, 0) {
		t.Errorf("Unexpected color %v", light.Color())
	}
	if math.Abs(light.Intensity()-5) > 1e-12 {
		t.Errorf("Expected intensity 5, got %f", light.Intensity())
	}
}

func TestUnimplementedLights_Panic(t *testing.T) {
	tests := []struct {
		name  string
		light Light
		kind  LightType
	}{
		{"area", &AreaLight{}, LightTypeArea},
		{"object", &ObjectLight{Name: "lamp"}, LightTypeObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.light.Type() != tt.kind {
				t.Errorf("Expected type %q, got %q", tt.kind, tt.light.Type())
			}

			calls := map[string]func(){
				"Position":  func() { tt.light.Position() },
				"Color":     func() { tt.light.Color() },
				"Intensity": func() { tt.light.Intensity() },
			}
			for method, call := range calls {
				func() {
					defer func() {
						if recover() == nil {
							t.Errorf("Expected %s to panic", method)
						}
					}()
					call()
				}()
			}
		})
	}
}
