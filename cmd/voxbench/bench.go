// File: cmd/voxbench/bench.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/momentics/voxkit/control"
	"github.com/momentics/voxkit/core/arena"
	"github.com/momentics/voxkit/core/concurrency"
	"github.com/momentics/voxkit/core/grid"
	"github.com/momentics/voxkit/core/ring"
)

// meshDescriptor stands in for a GPU mesh built from one frame's solid mask.
type meshDescriptor struct {
	Frame int
	Solid int
}

// frameResources is the per-frame state cycled through the ring. The mesh
// stays alive until the ring wraps back to this slot.
type frameResources struct {
	Slot    int
	Frame   int
	Mesh    arena.Handle
	HasMesh bool
}

type report struct {
	Run       string            `json:"run"`
	Version   string            `json:"version"`
	Frames    int               `json:"frames"`
	ElapsedMS float64           `json:"elapsed_ms"`
	Pool      concurrency.Stats `json:"pool"`
	Metrics   map[string]any    `json:"metrics"`
	Probes    map[string]any    `json:"probes"`
}

// density returns a sphere whose radius pulses with the frame number;
// positive values are inside.
func density(x, y, z, nx, ny, nz, frame int) float32 {
	cx, cy, cz := float64(nx)/2, float64(ny)/2, float64(nz)/2
	dx, dy, dz := float64(x)+0.5-cx, float64(y)+0.5-cy, float64(z)+0.5-cz
	r := math.Min(cx, math.Min(cy, cz)) * (0.6 + 0.3*math.Sin(float64(frame)/8))
	return float32(r - math.Sqrt(dx*dx+dy*dy+dz*dz))
}

func run(c control.Config, logger *slog.Logger) (*report, error) {
	start := time.Now()

	pool := concurrency.NewSpinPool(
		concurrency.WithWorkers(c.Workers),
		concurrency.WithPinning(c.PinThreads),
		concurrency.WithSpinBudget(c.SpinBudget),
	)
	defer pool.Close()

	dims := grid.RuntimeDims{c.GridX, c.GridY, c.GridZ}
	field := grid.NewDefault[float32](dims)
	solid := grid.NewBits[uint64](dims)

	frames, err := ring.NewWith(c.FrameDepth, func(i int) frameResources {
		return frameResources{Slot: i, Frame: -1}
	})
	if err != nil {
		return nil, fmt.Errorf("frame ring: %w", err)
	}
	meshes := arena.New[meshDescriptor](c.ArenaCapacity)

	metrics := control.NewMetricsRegistry()
	probes := control.NewDebugProbes()
	control.RegisterPlatformProbes(probes)
	probes.RegisterProbe("arena.live", func() any { return meshes.Len() })
	probes.RegisterProbe("arena.capacity", func() any { return meshes.Cap() })
	probes.RegisterProbe("ring.cursor", func() any { return frames.Cursor() })
	probes.RegisterProbe("grid.words", func() any { return solid.WordCount() })

	nx, ny, nz := field.Dimensions()
	data := field.Data()
	words := solid.Words()
	width := solid.BitsPerWord()
	parts := pool.OptimalDispatchSize()

	for frame := 0; frame < c.Rounds; frame++ {
		frames.MoveNext()
		cur := frames.CurrentPtr()
		if cur.HasMesh {
			// the GPU finished with this slot FrameDepth frames ago
			meshes.Free(cur.Mesh)
			cur.HasMesh = false
		}

		// z slices are disjoint per worker
		err := pool.Dispatch(parts, func(w int) {
			lo, hi := concurrency.Partition(nz, parts, w)
			for z := lo; z < hi; z++ {
				for y := 0; y < ny; y++ {
					for x := 0; x < nx; x++ {
						field.SetUnchecked(x, y, z, density(x, y, z, nx, ny, nz, frame))
					}
				}
			}
		})
		if err != nil {
			return nil, fmt.Errorf("frame %d fill: %w", frame, err)
		}

		// whole words per worker, so no two workers touch the same word
		err = pool.Dispatch(parts, func(w int) {
			lo, hi := concurrency.Partition(len(words), parts, w)
			for wi := lo; wi < hi; wi++ {
				var word uint64
				base := wi * width
				for b := 0; b < width && base+b < len(data); b++ {
					if data[base+b] > 0 {
						word |= 1 << b
					}
				}
				words[wi] = word
			}
		})
		if err != nil {
			return nil, fmt.Errorf("frame %d mask: %w", frame, err)
		}

		n := solid.Count()
		cur.Mesh = meshes.Allocate(meshDescriptor{Frame: frame, Solid: n})
		cur.HasMesh = true
		cur.Frame = frame
		metrics.Add("frames", 1)
		metrics.Set("grid.solid", n)
		logger.Debug("frame", "frame", frame, "slot", cur.Slot, "mesh", cur.Mesh, "solid", n)
	}

	stats := pool.Stats()
	metrics.Set("pool.workers", stats.Workers)
	metrics.Set("pool.rounds", stats.Rounds)
	metrics.Set("pool.tasks", stats.Tasks)
	metrics.Set("pool.panics", stats.Panics)
	metrics.Set("arena.free", meshes.FreeCount())

	elapsed := time.Since(start)
	logger.Info("run complete", "frames", c.Rounds, "elapsed", elapsed, "rounds", stats.Rounds)

	return &report{
		Frames:    c.Rounds,
		ElapsedMS: float64(elapsed.Microseconds()) / 1000,
		Pool:      stats,
		Metrics:   metrics.GetSnapshot(),
		Probes:    probes.DumpState(),
	}, nil
}
