package core

import (
	"fmt"
	"math"
)

// SamplingStrategy selects how diffuse bounce directions are drawn
type SamplingStrategy int

const (
	// CosineWeightedDisk samples a unit disk and projects up onto the hemisphere
	CosineWeightedDisk SamplingStrategy = iota
	// CosineWeightedAngle inverts the cosine CDF directly (cosθ = √r1)
	CosineWeightedAngle
	// UniformSphere draws θ and φ uniformly; kept as a comparison baseline
	UniformSphere
)

var strategyNames = map[SamplingStrategy]string{
	CosineWeightedDisk:  "cosine-disk",
	CosineWeightedAngle: "cosine-angle",
	UniformSphere:       "uniform-sphere",
}

// String returns the flag name of the strategy
func (s SamplingStrategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SamplingStrategy(%d)", int(s))
}

// ParseSamplingStrategy returns the strategy with the given flag name
func ParseSamplingStrategy(name string) (SamplingStrategy, error) {
	for strategy, n := range strategyNames {
		if n == name {
			return strategy, nil
		}
	}
	return 0, fmt.Errorf("unknown sampling strategy %q", name)
}

// OrthonormalBasis returns two unit tangents u, v such that (u, normal, v) is orthonormal
func OrthonormalBasis(normal Vec3) (u, v Vec3) {
	a := NewVec3(1, 0, 0)
	if math.Abs(normal.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	}
	u = normal.Cross(a).Normalize()
	v = normal.Cross(u)
	return u, v
}

// toWorld maps a local sample whose Y axis is the normal into world space
func toWorld(normal, local Vec3) Vec3 {
	u, v := OrthonormalBasis(normal)
	return NewMat3FromColumns(u, normal, v).MultiplyVec(local)
}

// SampleUniformSphere draws θ ∈ [0, π) and φ ∈ [0, 2π) uniformly.
// The returned pdf is the constant 1/(4π).
func SampleUniformSphere(sample Vec2) (Vec3, float64) {
	theta := math.Pi * sample.X
	phi := 2.0 * math.Pi * sample.Y

	sinTheta, cosTheta := math.Sincos(theta)
	sinPhi, cosPhi := math.Sincos(phi)

	direction := NewVec3(sinTheta*cosPhi, sinTheta*sinPhi, cosTheta)
	return direction, 1.0 / (4.0 * math.Pi)
}

// SampleCosineHemisphereDisk generates a cosine-weighted direction around normal
// by sampling a unit disk (r = √r2, φ = 2π·r1) and projecting it onto the hemisphere
func SampleCosineHemisphereDisk(normal Vec3, sample Vec2) (Vec3, float64) {
	phi := 2.0 * math.Pi * sample.X
	r := math.Sqrt(sample.Y)
	cosTheta := math.Sqrt(1.0 - sample.Y)

	local := NewVec3(r*math.Cos(phi), cosTheta, r*math.Sin(phi))
	return toWorld(normal, local), cosTheta / math.Pi
}

// SampleCosineHemisphereAngle generates a cosine-weighted direction around normal
// by inverting the cosine distribution (cosθ = √r1, φ = 2π·r2)
func SampleCosineHemisphereAngle(normal Vec3, sample Vec2) (Vec3, float64) {
	cosTheta := math.Sqrt(sample.X)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)
	phi := 2.0 * math.Pi * sample.Y

	local := NewVec3(sinTheta*math.Cos(phi), cosTheta, sinTheta*math.Sin(phi))
	return toWorld(normal, local), cosTheta / math.Pi
}

// SampleDirection dispatches to the sampler selected by strategy
func SampleDirection(strategy SamplingStrategy, normal Vec3, sample Vec2) (Vec3, float64) {
	switch strategy {
	case CosineWeightedAngle:
		return SampleCosineHemisphereAngle(normal, sample)
	case UniformSphere:
		return SampleUniformSphere(sample)
	default:
		return SampleCosineHemisphereDisk(normal, sample)
	}
}
