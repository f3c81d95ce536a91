// Package renderer drives image synthesis: camera ray generation and the
// parallel per-tile render loop over an immutable world.
package renderer

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/glintrt/glint/pkg/canvas"
	"github.com/glintrt/glint/pkg/world"
)

// Logger is the minimal logging interface threaded through rendering
type Logger interface {
	Printf(format string, args ...interface{})
}

// stdoutLogger writes progress lines to stdout
type stdoutLogger struct{}

func (stdoutLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger returns a logger writing to stdout
func NewDefaultLogger() Logger {
	return stdoutLogger{}
}

// silentLogger discards everything; used by tests and library callers
type silentLogger struct{}

func (silentLogger) Printf(string, ...interface{}) {}

// NewSilentLogger returns a logger that discards all output
func NewSilentLogger() Logger {
	return silentLogger{}
}

// Options configures a render
type Options struct {
	NumWorkers int // parallel workers; 0 means runtime.NumCPU
	TileRows   int // pixel rows per tile; 0 means 16
	MaxDepth   int // reflection/refraction recursion bound; 0 means world.DefaultMaxDepth
}

// DefaultOptions returns sensible defaults
func DefaultOptions() Options {
	return Options{
		NumWorkers: 0,
		TileRows:   16,
		MaxDepth:   world.DefaultMaxDepth,
	}
}

func (o Options) normalized() Options {
	if o.NumWorkers <= 0 {
		o.NumWorkers = runtime.NumCPU()
	}
	if o.TileRows <= 0 {
		o.TileRows = 16
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = world.DefaultMaxDepth
	}
	return o
}

// Stats summarizes a completed render
type Stats struct {
	TotalPixels int
	TotalTiles  int
	Elapsed     time.Duration
}

// TileResult reports one completed tile to the progress callback
type TileResult struct {
	Index     int             // completion order, starting at 0
	Count     int             // total number of tiles
	Bounds    image.Rectangle // pixel rows covered by this tile
	ElapsedMs int64
}

// ProgressFunc is invoked after each tile completes. Returning an error
// aborts the render.
type ProgressFunc func(TileResult) error

// Renderer renders one camera view of one world. The world and camera
// must be frozen before Render is called; tracing never mutates them,
// which is what makes the tile workers safe without locks.
type Renderer struct {
	camera *Camera
	world  *world.World
	opts   Options
	logger Logger
}

// New creates a renderer
func New(camera *Camera, w *world.World, opts Options, logger Logger) *Renderer {
	if logger == nil {
		logger = NewSilentLogger()
	}
	return &Renderer{camera: camera, world: w, opts: opts.normalized(), logger: logger}
}

// tileTask is one band of pixel rows for a worker
type tileTask struct {
	index  int
	bounds image.Rectangle
}

// Render traces every pixel and returns the finished canvas. Pixels are
// independent, so tiles are distributed over a worker pool; cancellation
// is checked between tiles, never mid-tile.
func (r *Renderer) Render(ctx context.Context) (*canvas.Canvas, Stats, error) {
	return r.RenderProgressive(ctx, nil)
}

// RenderProgressive renders like Render but reports each completed tile
// through onTile. Tiles complete in arbitrary order; each covers a
// disjoint band of rows, so workers write to the shared canvas without
// coordination.
func (r *Renderer) RenderProgressive(ctx context.Context, onTile ProgressFunc) (*canvas.Canvas, Stats, error) {
	start := time.Now()
	img := canvas.NewCanvas(r.camera.HSize, r.camera.VSize)

	tiles := r.makeTiles()
	r.logger.Printf("Rendering %dx%d: %d tiles across %d workers\n",
		r.camera.HSize, r.camera.VSize, len(tiles), r.opts.NumWorkers)

	tasks := make(chan tileTask, len(tiles))
	results := make(chan tileTask, len(tiles))
	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for i := 0; i < r.opts.NumWorkers; i++ {
		go r.worker(workerCtx, img, tasks, results)
	}
	for _, t := range tiles {
		tasks <- t
	}
	close(tasks)

	done := 0
	for done < len(tiles) {
		select {
		case <-ctx.Done():
			return nil, Stats{}, ctx.Err()
		case t := <-results:
			done++
			if onTile != nil {
				result := TileResult{
					Index:     done - 1,
					Count:     len(tiles),
					Bounds:    t.bounds,
					ElapsedMs: time.Since(start).Milliseconds(),
				}
				if err := onTile(result); err != nil {
					cancel()
					return nil, Stats{}, err
				}
			}
		}
	}

	stats := Stats{
		TotalPixels: r.camera.HSize * r.camera.VSize,
		TotalTiles:  len(tiles),
		Elapsed:     time.Since(start),
	}
	r.logger.Printf("Render completed in %v\n", stats.Elapsed)
	return img, stats, nil
}

// makeTiles splits the image into bands of rows
func (r *Renderer) makeTiles() []tileTask {
	var tiles []tileTask
	for y := 0; y < r.camera.VSize; y += r.opts.TileRows {
		end := y + r.opts.TileRows
		if end > r.camera.VSize {
			end = r.camera.VSize
		}
		tiles = append(tiles, tileTask{
			index:  len(tiles),
			bounds: image.Rect(0, y, r.camera.HSize, end),
		})
	}
	return tiles
}

// worker renders tiles until the task queue drains or the context is
// canceled
func (r *Renderer) worker(ctx context.Context, img *canvas.Canvas, tasks <-chan tileTask, results chan<- tileTask) {
	for task := range tasks {
		select {
		case <-ctx.Done():
			return
		default:
		}

		r.renderTile(img, task.bounds)

		select {
		case results <- task:
		case <-ctx.Done():
			return
		}
	}
}

// renderTile traces every pixel in the bounds and writes it to the canvas
func (r *Renderer) renderTile(img *canvas.Canvas, bounds image.Rectangle) {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := r.camera.RayForPixel(x, y)
			color := r.world.ColorAt(ray, r.opts.MaxDepth)
			img.SetPixel(x, y, color)
		}
	}
}
