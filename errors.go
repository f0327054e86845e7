package gen

import (
	"errors"
	"fmt"
)

var (
	// ErrConcurrentUse is the panic value raised when a generator is entered
	// from a goroutine while another goroutine is driving it.
	ErrConcurrentUse = errors.New("gen: generator used from multiple goroutines at once")

	// ErrMoved is the panic value raised when an iterator is used after its
	// ownership was transferred with Move, or after the scope it was lent for
	// has ended.
	ErrMoved = errors.New("gen: iterator used after being moved")

	// ErrBorrowed is the panic value raised when a borrowed iterator is
	// closed or moved by its borrower.
	ErrBorrowed = errors.New("gen: borrowed iterator cannot be closed or moved")

	// ErrYieldOutsideStep is the panic value raised when Yield is called while
	// the generator is not being stepped, for example from a yielder that
	// escaped its procedure or from a deferred call running during Close.
	ErrYieldOutsideStep = errors.New("gen: yield called outside of an active step")

	// ErrSpuriousWakeup is the panic value raised when a step returns without
	// the procedure having yielded, returned or panicked.
	ErrSpuriousWakeup = errors.New("gen: generator resumed without making progress")
)

// PanicError is the panic value propagated to the caller of Next or Close
// when the procedure of a generator panics. The generator is completed
// afterwards.
type PanicError struct {
	// Value is the value the procedure panicked with.
	Value any
	// Stack is the stack trace of the procedure goroutine at the time of
	// the panic.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("gen: generator panicked: %v\n\n%s", e.Value, e.Stack)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
