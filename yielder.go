package gen

import "runtime"

// Yielder is the handle through which the procedure of a generator passes
// values to the caller of Next. A Yielder is only valid inside the procedure
// it was given to, and only on the goroutine running that procedure.
type Yielder[T any] struct {
	co *coroutine[T]
}

// Yield hands v to the caller of Next and suspends the procedure until Next
// is called again, at which point Yield returns and the procedure continues
// where it left off.
//
// If the iterator is closed while the procedure is suspended, Yield never
// returns: the procedure goroutine unwinds from the yield point, running its
// deferred calls.
func (y *Yielder[T]) Yield(v T) {
	c := y.co
	if !c.active.CompareAndSwap(true, false) {
		panic(ErrYieldOutsideStep)
	}
	c.slot.put(v)
	c.park <- yielded
	<-c.resume
	if c.stop {
		runtime.Goexit()
	}
}
