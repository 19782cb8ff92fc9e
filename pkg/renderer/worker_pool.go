package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TileFunc renders one tile and reports its statistics
type TileFunc func(tile Tile) (RenderStats, error)

// WorkerPool renders tiles concurrently with a bounded number of workers.
// Tiles must cover disjoint pixels; results are merged in tile order.
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders every tile and returns the merged statistics. The first
// error cancels the remaining tiles.
func (wp *WorkerPool) Run(ctx context.Context, tiles []Tile, render TileFunc) (RenderStats, error) {
	results := make([]RenderStats, len(tiles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(wp.numWorkers)

	for i, tile := range tiles {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			stats, err := render(tile)
			if err != nil {
				return err
			}
			results[i] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return RenderStats{}, err
	}
	if err := ctx.Err(); err != nil {
		return RenderStats{}, err
	}

	var total RenderStats
	for _, stats := range results {
		total.merge(stats)
	}
	total.Workers = wp.numWorkers
	return total, nil
}
