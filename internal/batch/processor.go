package batch

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/murmur-wheel/ray-tracing-in-one-weekend/internal/mathutil"
	"github.com/murmur-wheel/ray-tracing-in-one-weekend/internal/raster"
)

// Shader computes the color of one pixel. src is owned by the calling worker
// for the duration of the row and must not be retained.
type Shader func(col, row int, src mathutil.Source) mathutil.Vec3

// Config controls a parallel fill.
type Config struct {
	Workers  int           // <= 0: runtime.NumCPU()
	Seed     uint64        // base seed; each row derives its own generator from it
	Progress io.Writer     // nil disables progress output
	Interval time.Duration // progress period, default 2s
}

// Stats summarizes a finished fill.
type Stats struct {
	Rows    int
	Pixels  int
	Elapsed time.Duration
}

// RowSeed derives the generator seed for a row. Rows draw from independent
// streams, so output depends only on Seed and not on scheduling.
func RowSeed(seed uint64, row int) uint64 {
	// splitmix64 finalizer
	z := seed + uint64(row+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Run fills every pixel of b with shade using a worker pool. Each worker owns
// whole rows, so no two goroutines write the same memory.
func Run(ctx context.Context, cfg Config, b *raster.Bitmap, shade Shader) (Stats, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	total := b.Rows()
	var processed atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	var reporter sync.WaitGroup
	if cfg.Progress != nil {
		reporter.Add(1)
		go func() {
			defer reporter.Done()
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Fprintf(cfg.Progress, "  [%d/%d] %.1f rows/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	rowChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := range rowChan {
				src := mathutil.NewSource(RowSeed(cfg.Seed, r))
				row := b.Row(r)
				for c := range row {
					row[c] = shade(c, r, src)
				}
				processed.Add(1)
			}
		}()
	}

	// Send work
	var err error
send:
	for r := 0; r < total; r++ {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break send
		case rowChan <- r:
		}
	}
	close(rowChan)

	wg.Wait()
	close(done)
	reporter.Wait()

	rows := int(processed.Load())
	stats := Stats{
		Rows:    rows,
		Pixels:  rows * b.Cols(),
		Elapsed: time.Since(start),
	}
	return stats, err
}

// Accumulate averages samples of shade per pixel. It is the usual way to
// build an anti-aliased Shader out of a jittered one.
func Accumulate(samples int, shade Shader) Shader {
	if samples <= 1 {
		return shade
	}
	inv := 1 / float32(samples)
	return func(col, row int, src mathutil.Source) mathutil.Vec3 {
		var sum mathutil.Vec3
		for s := 0; s < samples; s++ {
			sum.AddAssign(shade(col, row, src))
		}
		return sum.Scale(inv)
	}
}
