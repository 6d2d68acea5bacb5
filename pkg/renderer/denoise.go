package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrDenoiseShape is returned when a buffer does not hold width*height RGB triples
var ErrDenoiseShape = errors.New("buffer shape mismatch")

// Denoiser filters a finished render.
// pixels holds width*height RGB triples; the result must have the same shape.
type Denoiser interface {
	Denoise(pixels []float32, width, height int) ([]float32, error)
}

// GaussianDenoiser is a separable Gaussian blur with clamped edges
type GaussianDenoiser struct {
	Radius int     // Kernel half-width in pixels; 0 leaves the image unchanged
	Sigma  float64 // Standard deviation in pixels; defaults to Radius/2
}

// NewGaussianDenoiser creates a denoiser with the given kernel radius
func NewGaussianDenoiser(radius int) *GaussianDenoiser {
	return &GaussianDenoiser{Radius: radius, Sigma: float64(radius) / 2}
}

// Denoise blurs the buffer horizontally then vertically
func (g *GaussianDenoiser) Denoise(pixels []float32, width, height int) ([]float32, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*3 {
		return nil, fmt.Errorf("%w: %d values for %dx%d", ErrDenoiseShape, len(pixels), width, height)
	}

	out := make([]float32, len(pixels))
	if g.Radius <= 0 {
		copy(out, pixels)
		return out, nil
	}

	kernel := g.kernel()
	tmp := make([]float32, len(pixels))

	// Horizontal pass
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for c := 0; c < 3; c++ {
				var sum float64
				for k := -g.Radius; k <= g.Radius; k++ {
					sx := clampIndex(x+k, width)
					sum += kernel[k+g.Radius] * float64(pixels[(y*width+sx)*3+c])
				}
				tmp[(y*width+x)*3+c] = float32(sum)
			}
		}
	}

	// Vertical pass
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for c := 0; c < 3; c++ {
				var sum float64
				for k := -g.Radius; k <= g.Radius; k++ {
					sy := clampIndex(y+k, height)
					sum += kernel[k+g.Radius] * float64(tmp[(sy*width+x)*3+c])
				}
				out[(y*width+x)*3+c] = float32(sum)
			}
		}
	}

	return out, nil
}

// kernel returns normalized 1-D Gaussian weights of length 2*Radius+1
func (g *GaussianDenoiser) kernel() []float64 {
	sigma := g.Sigma
	if sigma <= 0 {
		sigma = math.Max(float64(g.Radius)/2, 0.5)
	}

	weights := make([]float64, 2*g.Radius+1)
	var total float64
	for i := range weights {
		d := float64(i - g.Radius)
		weights[i] = math.Exp(-d * d / (2 * sigma * sigma))
		total += weights[i]
	}
	for i := range weights {
		weights[i] /= total
	}
	return weights
}

func clampIndex(i, n int) int {
	return max(0, min(n-1, i))
}

// Flatten converts colors to interleaved float32 RGB
func Flatten(pixels []core.Vec3) []float32 {
	flat := make([]float32, len(pixels)*3)
	for i, p := range pixels {
		flat[i*3] = float32(p.X)
		flat[i*3+1] = float32(p.Y)
		flat[i*3+2] = float32(p.Z)
	}
	return flat
}

// Unflatten converts interleaved float32 RGB back to colors; a trailing partial triple is dropped
func Unflatten(flat []float32) []core.Vec3 {
	pixels := make([]core.Vec3, len(flat)/3)
	for i := range pixels {
		pixels[i] = core.NewVec3(float64(flat[i*3]), float64(flat[i*3+1]), float64(flat[i*3+2]))
	}
	return pixels
}
