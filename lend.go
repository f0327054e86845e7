package gen

import "golang.org/x/sync/errgroup"

// Lend gives a goroutine exclusive use of it for the duration of fn, and
// blocks until fn returns. The iterator passed to fn is a borrowed view: it
// can be advanced but not closed or moved, and it becomes invalid once Lend
// returns. Values consumed by fn are observed by the lender exactly as if it
// had called Next itself.
//
// Lend returns the error returned by fn. A panic raised by fn is re-raised on
// the calling goroutine.
func Lend[T any](it *Iterator[T], fn func(*Iterator[T]) error) error {
	borrowed := &Iterator[T]{h: it.handle(), borrowed: true}
	defer func() { borrowed.h, borrowed.moved = nil, true }()

	var (
		group   errgroup.Group
		problem any
	)
	group.Go(func() error {
		defer func() { problem = recover() }()
		return fn(borrowed)
	})
	err := group.Wait()
	if problem != nil {
		panic(problem)
	}
	return err
}
