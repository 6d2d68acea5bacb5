package lights

import "github.com/df07/go-pathtracer/pkg/core"

type LightType string

const (
	LightTypePoint  LightType = "point"
	LightTypeArea   LightType = "area"
	LightTypeObject LightType = "object"
)

// Light interface for sources sampled by direct lighting
type Light interface {
	Type() LightType

	// Position returns the point shadow rays are aimed at
	Position() core.Vec3

	// Color returns the emitted radiance before distance falloff
	Color() core.Vec3

	// Intensity returns the scalar strength of the light
	Intensity() float64
}
