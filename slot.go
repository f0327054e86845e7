package gen

// slot is the single-value cell used to hand values from the procedure to the
// caller of Next. It holds at most one value; the driver takes it out before
// returning from a step, so it is empty whenever no step is in progress.
type slot[T any] struct {
	value    T
	full     bool
	finished bool
}

func (s *slot[T]) put(v T) {
	if s.full {
		panic("gen: yield while a value is already pending")
	}
	if s.finished {
		panic("gen: yield after the generator finished")
	}
	s.value, s.full = v, true
}

func (s *slot[T]) take() (v T, ok bool) {
	if !s.full {
		return v, false
	}
	var zero T
	v, s.value, s.full = s.value, zero, false
	return v, true
}

func (s *slot[T]) finish() {
	var zero T
	s.value, s.full, s.finished = zero, false, true
}
