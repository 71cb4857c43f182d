// File: core/concurrency/spin_pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SpinPool runs one data-parallel task body across a chosen prefix of its
// persistent workers per call. Workers poll an armed flag instead of blocking
// on a channel or condition variable, so the latency from Dispatch to task
// start is a cache-line transfer rather than a scheduler wake-up.

package concurrency

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/voxkit/affinity"
	"github.com/momentics/voxkit/api"
)

var _ api.Dispatcher = (*SpinPool)(nil)
var _ api.GracefulShutdown = (*SpinPool)(nil)

// armFlag is one worker's go flag, padded so that arming worker i does not
// invalidate the line worker i+1 is polling.
type armFlag struct {
	armed atomic.Bool
	_     cpu.CacheLinePad
}

// SpinPool is a fixed-size pool of busy-waiting workers.
//
// Each worker is Idle (flag clear), Armed (flag raised by Dispatch) or
// Running (executing the task), and returns to Idle after decrementing the
// shared remaining counter. Dispatch calls are serialized: a round fully
// completes before the next one arms any worker.
type SpinPool struct {
	_         cpu.CacheLinePad
	remaining atomic.Int64
	_         cpu.CacheLinePad

	flags []armFlag
	task  atomic.Pointer[func(worker int)]
	stop  atomic.Bool

	closed atomic.Bool
	mu     sync.Mutex
	wg     sync.WaitGroup

	spinBudget int
	pin        bool

	panicMu sync.Mutex
	panics  []error

	rounds      atomic.Uint64
	tasks       atomic.Uint64
	panicCount  atomic.Uint64
	pinFailures atomic.Uint64
}

// Stats is a snapshot of pool counters.
type Stats struct {
	Workers     int    `json:"workers"`
	Rounds      uint64 `json:"rounds"`
	Tasks       uint64 `json:"tasks"`
	Panics      uint64 `json:"panics"`
	PinFailures uint64 `json:"pin_failures"`
}

// NewSpinPool starts the workers and returns once all of them are spawned.
// Without WithWorkers the pool has max(1, GOMAXPROCS-1) workers.
func NewSpinPool(opts ...Option) *SpinPool {
	cfg := defaultPoolConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &SpinPool{
		flags:      make([]armFlag, cfg.workers),
		spinBudget: cfg.spinBudget,
		pin:        cfg.pin,
	}

	var cpus []int
	if p.pin {
		var err error
		if cpus, err = affinity.AllowedCPUs(); err != nil {
			Logger().Warn("spin pool: cpu set unavailable, pinning disabled", "error", err)
			p.pin = false
		}
	}

	p.wg.Add(cfg.workers)
	for i := 0; i < cfg.workers; i++ {
		go p.run(i, affinity.CPUFor(i, cpus))
	}
	Logger().Info("spin pool started", "workers", cfg.workers, "pin", p.pin, "spin_budget", p.spinBudget)
	return p
}

// run is the worker loop. The goroutine owns its OS thread for its lifetime.
func (p *SpinPool) run(id, cpuID int) {
	defer p.wg.Done()
	runtime.LockOSThread()
	if p.pin {
		if err := affinity.SetAffinity(cpuID); err != nil {
			p.pinFailures.Add(1)
			Logger().Warn("spin pool: pin failed", "worker", id, "cpu", cpuID, "error", err)
		}
		// a pinned thread is discarded on exit instead of returned to the runtime
	} else {
		defer runtime.UnlockOSThread()
	}
	Logger().Debug("spin pool worker started", "worker", id)

	flag := &p.flags[id].armed
	idle := 0
	for {
		if !flag.Load() {
			if idle++; idle >= p.spinBudget {
				idle = 0
				runtime.Gosched()
			}
			continue
		}
		flag.Store(false)
		if p.stop.Load() {
			Logger().Debug("spin pool worker exiting", "worker", id)
			return
		}
		if task := p.task.Load(); task != nil {
			p.execute(id, *task)
		}
		p.remaining.Add(-1)
		idle = 0
	}
}

func (p *SpinPool) execute(id int, task func(int)) {
	defer func() {
		if v := recover(); v != nil {
			err := &TaskPanicError{Worker: id, Value: v, Stack: debug.Stack()}
			p.panicCount.Add(1)
			p.panicMu.Lock()
			p.panics = append(p.panics, err)
			p.panicMu.Unlock()
			Logger().Warn("spin pool: task panic recovered", "worker", id, "panic", v)
		}
	}()
	task(id)
}

// waitDrained spins until every armed worker has finished.
func (p *SpinPool) waitDrained() {
	idle := 0
	for p.remaining.Load() != 0 {
		if idle++; idle >= p.spinBudget {
			idle = 0
			runtime.Gosched()
		}
	}
}

// Dispatch runs task(worker) on workers 0..count-1 and blocks until all of
// them return. count must lie in [0, UsedThreadCount()]; zero is a no-op.
//
// The pool does not partition data. Each invocation must touch only the
// slice of caller state its worker index selects (see Partition).
//
// A task that panics is recovered on its worker; the round still completes
// and Dispatch returns the joined *TaskPanicError values.
func (p *SpinPool) Dispatch(count int, task func(worker int)) error {
	if task == nil {
		return ErrNilTask
	}
	if count < 0 || count > len(p.flags) {
		return fmt.Errorf("%w: %d for %d workers", ErrDispatchSize, count, len(p.flags))
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed.Load() {
		return ErrPoolClosed
	}
	if count == 0 {
		return nil
	}

	p.waitDrained()
	p.task.Store(&task)
	p.remaining.Store(int64(count))
	for i := 0; i < count; i++ {
		p.flags[i].armed.Store(true)
	}
	p.waitDrained()
	p.task.Store(nil)

	p.rounds.Add(1)
	p.tasks.Add(uint64(count))
	return p.takePanics()
}

func (p *SpinPool) takePanics() error {
	p.panicMu.Lock()
	defer p.panicMu.Unlock()
	if len(p.panics) == 0 {
		return nil
	}
	err := errors.Join(p.panics...)
	p.panics = p.panics[:0]
	return err
}

// UsedThreadCount returns the number of workers.
func (p *SpinPool) UsedThreadCount() int { return len(p.flags) }

// OptimalDispatchSize returns max(1, workers-1), the count that leaves one
// worker's core free for the dispatching goroutine.
func (p *SpinPool) OptimalDispatchSize() int { return max(1, len(p.flags)-1) }

// Remaining returns the number of armed or running workers in the current
// round. It is zero whenever no Dispatch is in flight.
func (p *SpinPool) Remaining() int { return int(p.remaining.Load()) }

// Stats returns a snapshot of the pool counters.
func (p *SpinPool) Stats() Stats {
	return Stats{
		Workers:     len(p.flags),
		Rounds:      p.rounds.Load(),
		Tasks:       p.tasks.Load(),
		Panics:      p.panicCount.Load(),
		PinFailures: p.pinFailures.Load(),
	}
}

// Close stops every worker and waits for them to exit. A round in flight
// completes first. Close is idempotent and always returns nil.
func (p *SpinPool) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	p.mu.Lock()
	p.stop.Store(true)
	for i := range p.flags {
		p.flags[i].armed.Store(true)
	}
	p.mu.Unlock()
	p.wg.Wait()
	Logger().Info("spin pool closed", "rounds", p.rounds.Load(), "tasks", p.tasks.Load())
	return nil
}
