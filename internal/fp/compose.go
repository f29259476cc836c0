package fp

// Compose2 returns x => f(g(x)).
func Compose2[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Compose3 returns x => f(g(h(x))).
func Compose3[A, B, C, D any](f func(C) D, g func(B) C, h func(A) B) func(A) D {
	return func(a A) D {
		return f(g(h(a)))
	}
}

// Compose4 returns x => f(g(h(i(x)))).
func Compose4[A, B, C, D, E any](f func(D) E, g func(C) D, h func(B) C, i func(A) B) func(A) E {
	return func(a A) E {
		return f(g(h(i(a))))
	}
}

// Compose5 returns x => f(g(h(i(j(x))))).
func Compose5[A, B, C, D, E, F any](
	f func(E) F,
	g func(D) E,
	h func(C) D,
	i func(B) C,
	j func(A) B,
) func(A) F {
	return func(a A) F {
		return f(g(h(i(j(a)))))
	}
}

// Compose chains functions of a single type right to left.
// With no functions it behaves as Identity.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			v = fns[i](v)
		}
		return v
	}
}

// Pipe2 returns x => g(f(x)).
func Pipe2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return Compose2(g, f)
}

// Pipe3 returns x => h(g(f(x))).
func Pipe3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return Compose3(h, g, f)
}

// Pipe4 returns x => i(h(g(f(x)))).
func Pipe4[A, B, C, D, E any](f func(A) B, g func(B) C, h func(C) D, i func(D) E) func(A) E {
	return Compose4(i, h, g, f)
}

// Pipe chains functions of a single type left to right.
func Pipe[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for _, fn := range fns {
			v = fn(v)
		}
		return v
	}
}
