package gen

type Yielder[T any] struct{}

func (y *Yielder[T]) Yield(v T) {}

type Iterator[T any] struct{}

func (it *Iterator[T]) Next() (v T, ok bool) { return }

func Generate[T any](proc func(*Yielder[T])) *Iterator[T] { return new(Iterator[T]) }
