package lights

import "github.com/df07/go-pathtracer/pkg/core"

// PointLight emits from a single point in all directions
type PointLight struct {
	position core.Vec3
	color    core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3) *PointLight {
	return &PointLight{position: position, color: color}
}

func (p *PointLight) Type() LightType {
	return LightTypePoint
}

func (p *PointLight) Position() core.Vec3 {
	return p.position
}

func (p *PointLight) Color() core.Vec3 {
	return p.color
}

// Intensity is the length of the color vector
func (p *PointLight) Intensity() float64 {
	return p.color.Length()
}
