package renderer

import (
	"math/rand"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// RowTask represents one image row for the worker pool
type RowTask struct {
	Row    int
	Random *rand.Rand // Owned by the task; never shared between rows
}

// RowResult contains the result from rendering a row
type RowResult struct {
	Row              int
	Samples          int
	NonFiniteSamples int
}

// WorkerPool manages parallel row rendering.
// Each row writes only its own slice of the shared pixel buffer.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	scene       *scene.Scene
	config      Config
	debug       bool
	pixels      []core.Vec3
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool that renders s into pixels
func NewWorkerPool(s *scene.Scene, config Config, debug bool, pixels []core.Vec3, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 1
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, config.Height),   // Buffer for every row
		resultQueue: make(chan RowResult, config.Height), // Buffer for every result
		numWorkers:  numWorkers,
	}

	// Create workers
	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			scene:       s,
			config:      config,
			debug:       debug,
			pixels:      pixels,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		w.resultQueue <- w.renderRow(task)
	}
}

// renderRow samples every pixel of one row and stores the averages
func (w *Worker) renderRow(task RowTask) RowResult {
	width, height := w.config.Width, w.config.Height
	camera := w.scene.Camera
	result := RowResult{Row: task.Row}
	row := w.pixels[task.Row*width : (task.Row+1)*width]

	for x := 0; x < width; x++ {
		strategy := strategyFor(x, width, w.debug, w.config.Strategy)

		var stats PixelStats
		for sample := 0; sample < w.config.SamplesPerPixel; sample++ {
			ray := camera.GetRay(x, task.Row, width, height, task.Random)
			radiance := w.scene.TraceRay(ray, w.config.MaxDepth, task.Random, strategy)

			// One bad sample must not poison the whole pixel
			if !radiance.IsFinite() {
				result.NonFiniteSamples++
				radiance = core.Vec3{}
			}
			stats.AddSample(radiance)
		}

		row[x] = stats.GetColor()
		result.Samples += stats.SampleCount
	}

	return result
}

// strategyFor returns the sampling strategy for column x.
// Debug renders compare uniform-sphere sampling (left half) against cosine-angle sampling (right half).
func strategyFor(x, width int, debug bool, strategy core.SamplingStrategy) core.SamplingStrategy {
	if !debug {
		return strategy
	}
	if x < width/2 {
		return core.UniformSphere
	}
	return core.CosineWeightedAngle
}
