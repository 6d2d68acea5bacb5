package renderer

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// ErrNilScene is returned when Trace is called without a scene
var ErrNilScene = errors.New("nil scene")

// PathTracer renders scenes into linear RGB buffers.
// It does not own the scene, so one tracer can render many scenes.
type PathTracer struct {
	config   Config
	denoiser Denoiser
	logger   core.Logger
}

// NewPathTracer creates a path tracer with default settings for the given resolution and sample count
func NewPathTracer(width, height, samplesPerPixel int) *PathTracer {
	config := DefaultConfig()
	config.Width = width
	config.Height = height
	config.SamplesPerPixel = samplesPerPixel

	return &PathTracer{
		config: config,
		logger: NewDefaultLogger(),
	}
}

// Config returns the current configuration
func (pt *PathTracer) Config() Config {
	return pt.config
}

// SetConfig replaces the configuration after validating it
func (pt *PathTracer) SetConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	pt.config = config
	return nil
}

// SetDenoiser installs a post-process run once after sampling; nil disables it
func (pt *PathTracer) SetDenoiser(denoiser Denoiser) {
	pt.denoiser = denoiser
}

// SetLogger replaces the logger; nil restores the default
func (pt *PathTracer) SetLogger(logger core.Logger) {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	pt.logger = logger
}

// Trace renders s and returns width*height linear colors in row-major order (index = y*width + x).
// With debug set, the left half of the image samples with UniformSphere and the right half
// with CosineWeightedAngle; otherwise every pixel uses Config.Strategy.
func (pt *PathTracer) Trace(s *scene.Scene, debug bool) ([]core.Vec3, RenderStats, error) {
	if s == nil {
		return nil, RenderStats{}, ErrNilScene
	}
	if err := s.Validate(); err != nil {
		return nil, RenderStats{}, err
	}
	if err := pt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	start := time.Now()
	config := pt.config
	pixels := make([]core.Vec3, config.Width*config.Height)
	numWorkers := config.resolveWorkers()

	strategy := config.Strategy.String()
	if debug {
		strategy = fmt.Sprintf("debug: %s | %s", core.UniformSphere, core.CosineWeightedAngle)
	}
	pt.logger.Printf("Rendering %dx%d at %d spp, depth %d, %d workers (%s)...\n",
		config.Width, config.Height, config.SamplesPerPixel, config.MaxDepth, numWorkers, strategy)

	pool := NewWorkerPool(s, config, debug, pixels, numWorkers)
	pool.Start()

	// Every row gets its own generator; seeded rows depend only on their index
	for row := 0; row < config.Height; row++ {
		seed := rand.Int63()
		if config.Seeded {
			seed = config.Seed + int64(row)
		}
		pool.SubmitTask(RowTask{Row: row, Random: rand.New(rand.NewSource(seed))})
	}

	stats := RenderStats{
		TotalPixels: len(pixels),
		Workers:     pool.GetNumWorkers(),
	}
	for i := 0; i < config.Height; i++ {
		result, ok := pool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		stats.TotalSamples += result.Samples
		stats.NonFiniteSamples += result.NonFiniteSamples
	}
	pool.Stop()

	if pt.denoiser != nil {
		denoised, err := pt.denoise(pixels, config.Width, config.Height)
		if err != nil {
			return nil, RenderStats{}, err
		}
		pixels = denoised
	}

	stats.Duration = time.Since(start)
	pt.logger.Printf("Render completed in %v (%d samples, %d non-finite)\n",
		stats.Duration, stats.TotalSamples, stats.NonFiniteSamples)

	return pixels, stats, nil
}

// denoise runs the installed denoiser over the flattened buffer
func (pt *PathTracer) denoise(pixels []core.Vec3, width, height int) ([]core.Vec3, error) {
	flat := Flatten(pixels)
	out, err := pt.denoiser.Denoise(flat, width, height)
	if err != nil {
		return nil, fmt.Errorf("denoise: %w", err)
	}
	if len(out) != len(flat) {
		return nil, fmt.Errorf("denoise: %w: got %d values, want %d", ErrDenoiseShape, len(out), len(flat))
	}
	return Unflatten(out), nil
}
