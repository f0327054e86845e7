// Package gen turns suspendable computations into pull-driven iterators.
//
// A generator is created from a procedure receiving a *Yielder. Nothing runs
// until the first call to Next; each call then executes the procedure until
// its next call to Yield, or until it returns:
//
//	it := gen.Generate(func(y *gen.Yielder[int]) {
//		for i := 0; i < 4; i++ {
//			y.Yield(i)
//		}
//	})
//	defer it.Close()
//
//	for v, ok := it.Next(); ok; v, ok = it.Next() {
//		fmt.Println(v)
//	}
//
// The procedure executes on a goroutine that is only ever used as a call
// stack: it is parked whenever the caller of Next runs, and the caller is
// parked while the procedure runs. Production never overlaps consumption and
// at most one value is in flight.
//
// Closing an iterator that is suspended at a yield point unwinds the
// procedure from that point, running its deferred calls as if it had returned
// there. No code past the yield point executes.
//
// Iterators may be moved to other goroutines between calls, or lent to a
// goroutine for a bounded scope with Lend. They must never be driven from two
// goroutines at once; the default Exclusive sharing strategy panics with
// ErrConcurrentUse when that happens.
package gen
