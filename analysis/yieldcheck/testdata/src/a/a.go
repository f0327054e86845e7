package a

import "github.com/stealthrocket/gen"

func goroutineLiteral() {
	gen.Generate(func(y *gen.Yielder[int]) {
		done := make(chan struct{})
		go func() {
			defer close(done)
			y.Yield(1) // want `Yield called from a new goroutine`
		}()
		<-done
	})
}

func goroutineYield() {
	gen.Generate(func(y *gen.Yielder[int]) {
		go y.Yield(1) // want `Yield called from a new goroutine`
	})
}

func goroutineArgument() {
	gen.Generate(func(y *gen.Yielder[int]) {
		go worker(y) // want `yielder passed to a new goroutine`
	})
}

func worker(y *gen.Yielder[int]) {
	y.Yield(2)
}

func deferred() {
	gen.Generate(func(y *gen.Yielder[int]) {
		defer y.Yield(-1) // want `Yield called from a deferred call`
		defer func() {
			y.Yield(-2) // want `Yield called from a deferred call`
		}()
		y.Yield(1)
	})
}

func helper(y *gen.Yielder[int]) int {
	y.Yield(0)
	return 0
}

func allowed() {
	gen.Generate(func(y *gen.Yielder[int]) {
		for i := 0; i < 3; i++ {
			y.Yield(i)
		}
		func() { y.Yield(3) }()
		defer println(helper(y))
	})

	go func() {
		it := gen.Generate(func(y *gen.Yielder[string]) {
			y.Yield("nested")
		})
		it.Next()
	}()
}
