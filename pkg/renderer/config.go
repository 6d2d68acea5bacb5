package renderer

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/df07/go-pathtracer/pkg/core"
)

// WorkersEnv overrides the worker count when Config.NumWorkers is 0
const WorkersEnv = "PATHTRACER_WORKERS"

// ErrInvalidConfig is wrapped by every Config validation failure
var ErrInvalidConfig = errors.New("invalid render config")

// Config contains rendering configuration
type Config struct {
	Width           int                   // Image width in pixels
	Height          int                   // Image height in pixels
	SamplesPerPixel int                   // Number of camera rays per pixel
	MaxDepth        int                   // Bounce budget per path
	Strategy        core.SamplingStrategy // Diffuse sampling strategy outside debug mode
	Seeded          bool                  // Derive every row's generator from Seed
	Seed            int64                 // Base seed used when Seeded is set
	NumWorkers      int                   // Number of parallel workers (0 = env or CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           640,
		Height:          360,
		SamplesPerPixel: 64,
		MaxDepth:        10,
		Strategy:        core.CosineWeightedDisk,
		NumWorkers:      0,
	}
}

// Validate reports the first invalid field
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, c.Width)
	case c.Height <= 0:
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidConfig, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidConfig, c.MaxDepth)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: worker count must not be negative, got %d", ErrInvalidConfig, c.NumWorkers)
	}
	if c.Strategy < core.CosineWeightedDisk || c.Strategy > core.UniformSphere {
		return fmt.Errorf("%w: unknown sampling strategy %d", ErrInvalidConfig, int(c.Strategy))
	}
	return nil
}

// resolveWorkers picks the worker count: explicit, then environment, then CPU count
func (c Config) resolveWorkers() int {
	if c.NumWorkers > 0 {
		return c.NumWorkers
	}
	if value := os.Getenv(WorkersEnv); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return runtime.NumCPU()
}
