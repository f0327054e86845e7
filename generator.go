package gen

// Iterator is a pull-driven sequence of the values yielded by the procedure of
// a generator. Iterators are created with Generate and must be closed when no
// longer needed, unless they were drained until Next reported false.
//
// An Iterator may be moved to another goroutine between calls, but must not be
// driven from two goroutines at the same time.
type Iterator[T any] struct {
	h        *handle[T]
	moved    bool
	borrowed bool
}

// Generate creates an iterator over the values that proc passes to Yield.
// The procedure does not run until the first call to Next.
func Generate[T any](proc func(*Yielder[T]), opts ...Option) *Iterator[T] {
	return &Iterator[T]{h: newHandle(proc, newConfig(opts))}
}

// Next runs the procedure until its next yield point and returns the yielded
// value, or returns false once the procedure has completed. After Next has
// returned false once, it keeps returning false without running anything.
//
// If the procedure panics, Next panics with a *PanicError wrapping the panic
// value, and the iterator is completed.
func (it *Iterator[T]) Next() (T, bool) {
	return it.handle().step()
}

// Close stops the generator. A procedure suspended at a yield point is
// unwound from there, running its deferred calls, before Close returns; a
// procedure that never started is never run. Close is idempotent, and closing
// an iterator that was moved has no effect.
func (it *Iterator[T]) Close() {
	if it.borrowed {
		panic(ErrBorrowed)
	}
	if it.moved || it.h == nil {
		return
	}
	it.h.cancel()
}

// Move transfers ownership of the generator to a new Iterator. The receiver
// is invalidated: calling Next on it panics with ErrMoved, and Close becomes
// a no-op.
func (it *Iterator[T]) Move() *Iterator[T] {
	if it.borrowed {
		panic(ErrBorrowed)
	}
	h := it.handle()
	it.h, it.moved = nil, true
	return &Iterator[T]{h: h}
}

// State returns the execution state of the generator.
func (it *Iterator[T]) State() State {
	return it.handle().state()
}

// Stats returns a snapshot of the generator's counters.
func (it *Iterator[T]) Stats() Stats {
	return it.handle().snapshot()
}

func (it *Iterator[T]) handle() *handle[T] {
	if it.moved {
		panic(ErrMoved)
	}
	return it.h
}
