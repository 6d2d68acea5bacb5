package scene

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// TraceRay estimates the radiance arriving along ray with at most depth bounces.
//
// Mirror bounces leave the path weight untouched. Diffuse bounces sample a new
// direction with strategy and weight the path by the Lambertian BRDF times
// cosθ/pdf, then gather direct light from every light that is not shadowed.
// A ray that escapes returns the gathered light plus the weighted skybox; a path
// that runs out of bounces returns black.
func (s *Scene) TraceRay(ray core.Ray, depth int, random *rand.Rand, strategy core.SamplingStrategy) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)
	emitted := core.NewVec3(0, 0, 0)

	for bounce := 0; bounce < depth; bounce++ {
		hit, isHit := s.closestHit(ray)
		if !isHit {
			return emitted.Add(throughput.MultiplyVec(s.SkyboxColor))
		}

		mat := s.Material(hit.Material)
		if mat.IsMirror() {
			ray = material.ReflectRay(ray, hit)
			continue
		}

		scattered, pdf := mat.Scatter(hit, random, strategy)
		cosTheta := scattered.Direction.Dot(hit.Normal)

		// Nothing left to carry: stop with what has been gathered
		if pdf <= 0 || cosTheta <= 0 {
			return emitted
		}

		brdf := mat.Color(hit.UV, hit.HasUV).Multiply(1.0 / math.Pi)
		throughput = throughput.MultiplyVec(brdf).Multiply(cosTheta / pdf)

		emitted = emitted.Add(s.DirectLight(hit, throughput))
		ray = scattered
	}

	return core.NewVec3(0, 0, 0)
}

// DirectLight sums the unshadowed contribution of every light at hit, weighted by throughput.
// Each light falls off with the inverse square of its distance.
func (s *Scene) DirectLight(hit *geometry.HitRecord, throughput core.Vec3) core.Vec3 {
	total := core.NewVec3(0, 0, 0)

	for _, light := range s.Lights {
		toLight := light.Position().Subtract(hit.Point)
		distanceSquared := toLight.LengthSquared()
		if distanceSquared == 0 {
			continue
		}
		distance := math.Sqrt(distanceSquared)
		direction := toLight.Multiply(1.0 / distance)

		if s.Occluded(hit.Point, direction, distance) {
			continue
		}

		cosTheta := math.Max(0, hit.Normal.Dot(direction))
		contribution := throughput.MultiplyVec(light.Color()).Multiply(cosTheta / distanceSquared)
		total = total.Add(contribution)
	}

	return total
}
