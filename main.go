package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName string
	width     int
	height    int
	samples   int
	depth     int
	strategy  string
	seed      int64
	debug     bool
	denoise   int
	upscale   int
	workers   int
	output    string
}

func main() {
	defaults := renderer.DefaultConfig()

	var opts options
	flag.StringVar(&opts.sceneName, "scene", "default", "Built-in scene name or path to a .json scene file")
	flag.IntVar(&opts.width, "width", defaults.Width, "Image width in pixels")
	flag.IntVar(&opts.height, "height", defaults.Height, "Image height in pixels")
	flag.IntVar(&opts.samples, "samples", defaults.SamplesPerPixel, "Samples per pixel")
	flag.IntVar(&opts.depth, "depth", defaults.MaxDepth, "Maximum diffuse bounces per path")
	flag.StringVar(&opts.strategy, "strategy", defaults.Strategy.String(), "Diffuse sampling: cosine-disk, cosine-angle or uniform-sphere")
	flag.Int64Var(&opts.seed, "seed", -1, "Base random seed for reproducible renders (negative = unseeded)")
	flag.BoolVar(&opts.debug, "debug", false, "Compare strategies: uniform-sphere on the left half, cosine-angle on the right")
	flag.IntVar(&opts.denoise, "denoise", 0, "Gaussian denoise radius in pixels (0 = off)")
	flag.IntVar(&opts.upscale, "upscale", 1, "Integer nearest-neighbour upscale factor for the saved image")
	flag.IntVar(&opts.workers, "workers", 0, "Number of render workers (0 = "+renderer.WorkersEnv+" or CPU count)")
	flag.StringVar(&opts.output, "output", "", "Output file (.png, .jpg, .bmp, .tiff); default output/<scene>/render_<timestamp>.png")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.Names() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println("  <file>.json - scene description file")
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders one image according to opts and saves it
func run(opts options) error {
	fmt.Println("Starting Path Tracer...")

	selectedScene, err := createScene(opts.sceneName)
	if err != nil {
		return err
	}

	config, err := buildConfig(opts)
	if err != nil {
		return err
	}

	tracer := renderer.NewPathTracer(config.Width, config.Height, config.SamplesPerPixel)
	if err := tracer.SetConfig(config); err != nil {
		return err
	}
	if opts.denoise > 0 {
		tracer.SetDenoiser(renderer.NewGaussianDenoiser(opts.denoise))
	}

	pixels, stats, err := tracer.Trace(selectedScene, opts.debug)
	if err != nil {
		return err
	}

	fmt.Printf("Render completed in %v\n", stats.Duration)
	fmt.Printf("Samples per pixel: %.1f, workers: %d\n", stats.AverageSamples(), stats.Workers)
	if stats.NonFiniteSamples > 0 {
		fmt.Printf("Discarded %d non-finite samples\n", stats.NonFiniteSamples)
	}

	img, err := output.ToImage(pixels, config.Width, config.Height)
	if err != nil {
		return err
	}
	if opts.upscale > 1 {
		img = output.Upscale(img, opts.upscale)
	}

	filename := opts.output
	if filename == "" {
		filename = defaultOutputPath(opts.sceneName, time.Now())
	}
	if err := output.Save(filename, img); err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// buildConfig converts command line options into a render configuration
func buildConfig(opts options) (renderer.Config, error) {
	strategy, err := core.ParseSamplingStrategy(opts.strategy)
	if err != nil {
		return renderer.Config{}, err
	}

	config := renderer.DefaultConfig()
	config.Width = opts.width
	config.Height = opts.height
	config.SamplesPerPixel = opts.samples
	config.MaxDepth = opts.depth
	config.Strategy = strategy
	config.NumWorkers = opts.workers
	if opts.seed >= 0 {
		config.Seeded = true
		config.Seed = opts.seed
	}

	if opts.upscale < 1 {
		return renderer.Config{}, fmt.Errorf("%w: upscale factor must be at least 1, got %d", renderer.ErrInvalidConfig, opts.upscale)
	}
	if opts.denoise < 0 {
		return renderer.Config{}, fmt.Errorf("%w: denoise radius must not be negative, got %d", renderer.ErrInvalidConfig, opts.denoise)
	}

	return config, config.Validate()
}

// createScene returns a built-in scene by name, or loads a .json scene file
func createScene(name string) (*scene.Scene, error) {
	if strings.HasSuffix(strings.ToLower(name), ".json") {
		return loaders.LoadScene(name)
	}
	return scene.ByName(name)
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.png
func defaultOutputPath(sceneName string, now time.Time) string {
	dir := strings.TrimSuffix(filepath.Base(sceneName), filepath.Ext(sceneName))
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", dir, fmt.Sprintf("render_%s.png", timestamp))
}
