package gen

import (
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
)

// Sharing is the strategy a generator uses to guard its state against use
// from multiple goroutines. Both strategies run the same step protocol; they
// only differ in what happens when a second goroutine enters the generator
// while another one is driving it.
type Sharing int8

const (
	// Exclusive generators fail fast: entering one while another goroutine
	// is inside panics with ErrConcurrentUse. This is the default.
	Exclusive Sharing = iota
	// Locked generators serialize entries with a mutex, so a single
	// generator may be shared by reference between goroutines. Calling Next
	// from within the generator's own procedure deadlocks.
	Locked
)

func (s Sharing) String() string {
	switch s {
	case Exclusive:
		return "exclusive"
	case Locked:
		return "locked"
	default:
		return "Sharing(" + strconv.Itoa(int(s)) + ")"
	}
}

type guard interface {
	lock()
	unlock()
}

func newGuard(s Sharing) guard {
	switch s {
	case Exclusive:
		return new(exclusiveGuard)
	case Locked:
		return new(lockedGuard)
	default:
		panic("gen: invalid sharing strategy: " + s.String())
	}
}

type exclusiveGuard struct{ busy atomic.Bool }

func (g *exclusiveGuard) lock() {
	if !g.busy.CompareAndSwap(false, true) {
		panic(ErrConcurrentUse)
	}
}

func (g *exclusiveGuard) unlock() { g.busy.Store(false) }

type lockedGuard struct{ mu sync.Mutex }

func (g *lockedGuard) lock()   { g.mu.Lock() }
func (g *lockedGuard) unlock() { g.mu.Unlock() }

// handle owns the coroutine of a generator and the bookkeeping around it.
// Every access goes through the guard, which makes the handle safe to move or
// lend between goroutines.
type handle[T any] struct {
	guard guard
	co    *coroutine[T]
	log   *slog.Logger
	stats Stats
}

func newHandle[T any](proc func(*Yielder[T]), c *config) *handle[T] {
	return &handle[T]{
		guard: newGuard(c.sharing),
		co:    newCoroutine(proc),
		log:   c.logger.With(slog.String("generator", c.name)),
		stats: Stats{Name: c.name},
	}
}

func (h *handle[T]) step() (T, bool) {
	h.guard.lock()
	defer h.guard.unlock()

	switch h.co.state {
	case Completed:
		var zero T
		return zero, false
	case NotStarted:
		h.log.Debug("generator started")
	}

	h.stats.Resumes++
	v, ok, err := h.co.step()
	h.stats.State = h.co.state
	switch {
	case err != nil:
		h.log.Error("generator panicked", slog.Any("panic", err.Value), slog.Uint64("yields", h.stats.Yields))
		panic(err)
	case ok:
		h.stats.Yields++
	default:
		h.log.Debug("generator completed", slog.Uint64("yields", h.stats.Yields))
	}
	return v, ok
}

func (h *handle[T]) cancel() {
	h.guard.lock()
	defer h.guard.unlock()

	if h.co.state == Completed {
		return
	}
	prev := h.co.state
	err := h.co.cancel()
	h.stats.State = h.co.state
	h.stats.Canceled = true
	if err != nil {
		h.log.Error("generator panicked while canceling", slog.Any("panic", err.Value), slog.Uint64("yields", h.stats.Yields))
		panic(err)
	}
	h.log.Debug("generator canceled", slog.String("from", prev.String()), slog.Uint64("yields", h.stats.Yields))
}

func (h *handle[T]) state() State {
	h.guard.lock()
	defer h.guard.unlock()
	return h.co.state
}

func (h *handle[T]) snapshot() Stats {
	h.guard.lock()
	defer h.guard.unlock()
	return h.stats
}
