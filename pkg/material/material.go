package material

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// scatterOffset pushes new ray origins off the surface to avoid self-intersection
const scatterOffset = 0.001

// Material describes how a surface reflects light.
// Reflectivity is a binary switch: 1.0 is a perfect mirror, anything else is diffuse.
type Material struct {
	Albedo       core.Vec3 // Linear diffuse color
	Reflectivity float64   // 1.0 = mirror
	Checkered    bool      // Replace albedo with a black/white checkerboard where UV is available
}

// New creates a new material
func New(albedo core.Vec3, reflectivity float64, checkered bool) Material {
	return Material{Albedo: albedo, Reflectivity: reflectivity, Checkered: checkered}
}

// FromColor creates a plain diffuse material
func FromColor(albedo core.Vec3) Material {
	return Material{Albedo: albedo}
}

// Reflective returns a perfect mirror
func Reflective() Material { return Material{Albedo: core.NewVec3(1, 1, 1), Reflectivity: 1.0} }

// Red returns a diffuse red material
func Red() Material { return FromColor(core.NewVec3(1, 0, 0)) }

// Green returns a diffuse green material
func Green() Material { return FromColor(core.NewVec3(0, 1, 0)) }

// Blue returns a diffuse blue material
func Blue() Material { return FromColor(core.NewVec3(0, 0, 1)) }

// White returns a diffuse white material
func White() Material { return FromColor(core.NewVec3(1, 1, 1)) }

// Black returns a diffuse black material
func Black() Material { return FromColor(core.NewVec3(0, 0, 0)) }

// Checkered returns a black/white checkerboard material
func Checkered() Material {
	return Material{Albedo: core.NewVec3(1, 1, 1), Checkered: true}
}

var presets = map[string]func() Material{
	"reflective": Reflective,
	"red":        Red,
	"green":      Green,
	"blue":       Blue,
	"white":      White,
	"black":      Black,
	"checkered":  Checkered,
}

// ParseMaterial returns the preset with the given name (case-insensitive)
func ParseMaterial(name string) (Material, error) {
	preset, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Material{}, fmt.Errorf("unknown material preset %q", name)
	}
	return preset(), nil
}

// IsMirror reports whether the material reflects specularly
func (m Material) IsMirror() bool {
	return m.Reflectivity == 1.0
}

// Color returns the surface color at uv.
// Checkered materials tile a 10x10 grid per unit of UV; without UV they fall back to the albedo.
func (m Material) Color(uv core.Vec2, hasUV bool) core.Vec3 {
	if !m.Checkered || !hasUV {
		return m.Albedo
	}

	u := wrap(uv.X)
	v := wrap(uv.Y)
	cell := int(math.Floor(u*10)) + int(math.Floor(v*10))
	if cell%2 == 0 {
		return core.NewVec3(0, 0, 0)
	}
	return core.NewVec3(1, 1, 1)
}

// wrap maps x into [0, 1)
func wrap(x float64) float64 {
	x -= math.Floor(x)
	if x >= 1 {
		return 0
	}
	return x
}

// Scatter samples a diffuse bounce direction around the hit normal with the given strategy.
// Directions below the surface are flipped into the normal's hemisphere.
// Returns the new ray and the pdf of its direction.
func (m Material) Scatter(hit *geometry.HitRecord, random *rand.Rand, strategy core.SamplingStrategy) (core.Ray, float64) {
	sample := core.NewVec2(random.Float64(), random.Float64())
	direction, pdf := core.SampleDirection(strategy, hit.Normal, sample)

	if direction.Dot(hit.Normal) < 0 {
		direction = direction.Negate()
	}

	origin := hit.Point.Add(direction.Multiply(scatterOffset))
	return core.NewRay(origin, direction), pdf
}

// ReflectRay returns the mirror bounce of an incoming ray at hit
func ReflectRay(rayIn core.Ray, hit *geometry.HitRecord) core.Ray {
	direction := Reflect(rayIn.Direction.Normalize(), hit.Normal)
	origin := hit.Point.Add(direction.Multiply(scatterOffset))
	return core.NewRay(origin, direction)
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
