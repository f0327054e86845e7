package gen

import (
	"runtime/debug"
	"strconv"
	"sync/atomic"
)

// State is the execution state of a generator.
type State int8

const (
	// NotStarted is the state of a generator whose procedure has not run yet.
	NotStarted State = iota
	// Suspended is the state of a generator whose procedure is parked at a
	// yield point.
	Suspended
	// Completed is the state of a generator whose procedure returned,
	// panicked, or was canceled. No transition leaves this state.
	Completed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Suspended:
		return "suspended"
	case Completed:
		return "completed"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

type signal int8

const (
	yielded signal = iota + 1
	returned
	panicked
)

// coroutine drives the procedure of a generator one step at a time.
//
// The procedure runs on a goroutine used as a call stack. Control is passed
// back and forth over unbuffered channels: the caller blocks on park while the
// procedure runs, and the procedure blocks on resume while the caller runs.
// The goroutine is created by the first step, never by the constructor.
type coroutine[T any] struct {
	proc   func(*Yielder[T])
	state  State
	slot   slot[T]
	resume chan struct{}
	park   chan signal
	// active is set while a step is in progress and cleared by the yield
	// that ends it.
	active atomic.Bool
	stop   bool
	err    *PanicError
}

func newCoroutine[T any](proc func(*Yielder[T])) *coroutine[T] {
	return &coroutine[T]{
		proc:   proc,
		resume: make(chan struct{}),
		park:   make(chan signal),
	}
}

// step advances the procedure from its current suspension point to the next
// one, or to its completion. Each call polls the procedure exactly once.
//
// The returned error is non-nil when the procedure panicked; the coroutine is
// completed in that case.
func (c *coroutine[T]) step() (v T, ok bool, err *PanicError) {
	var sig signal
	switch c.state {
	case Completed:
		return v, false, nil
	case NotStarted:
		c.active.Store(true)
		go c.run()
		sig = <-c.park
	case Suspended:
		c.active.Store(true)
		c.resume <- struct{}{}
		sig = <-c.park
	}

	switch sig {
	case yielded:
		if v, ok = c.slot.take(); !ok {
			panic(ErrSpuriousWakeup)
		}
		c.state = Suspended
		return v, true, nil
	case returned:
		c.complete()
		return v, false, nil
	case panicked:
		c.complete()
		return v, false, c.err
	default:
		panic(ErrSpuriousWakeup)
	}
}

// cancel completes the coroutine without running it any further. A suspended
// procedure is unwound from its yield point so its deferred calls run; a
// procedure that never started is discarded.
func (c *coroutine[T]) cancel() *PanicError {
	switch c.state {
	case NotStarted:
		c.complete()
	case Suspended:
		c.stop = true
		c.resume <- struct{}{}
		sig := <-c.park
		c.complete()
		switch sig {
		case returned:
		case panicked:
			return c.err
		default:
			panic(ErrSpuriousWakeup)
		}
	}
	return nil
}

func (c *coroutine[T]) complete() {
	c.state = Completed
	c.slot.finish()
	c.proc = nil
}

func (c *coroutine[T]) run() {
	sig := returned
	defer func() {
		c.active.Store(false)
		c.park <- sig
	}()
	defer func() {
		if v := recover(); v != nil {
			c.err = &PanicError{Value: v, Stack: debug.Stack()}
			sig = panicked
		}
	}()
	c.proc(&Yielder[T]{co: c})
}
