package fp

// Curried2 is a binary function taking its arguments one at a time.
type Curried2[A, B, R any] func(A) func(B) R

// Call applies both arguments at once.
func (c Curried2[A, B, R]) Call(a A, b B) R {
	return c(a)(b)
}

// Curried3 is a ternary function taking its arguments one at a time.
type Curried3[A, B, C, R any] func(A) func(B) func(C) R

// Call applies all three arguments at once.
func (c Curried3[A, B, C, R]) Call(a A, b B, cc C) R {
	return c(a)(b)(cc)
}

// Call2 applies the first two arguments and returns a function awaiting the last.
func (c Curried3[A, B, C, R]) Call2(a A, b B) func(C) R {
	return c(a)(b)
}

// Curry2 converts fn into its curried form.
//
// Example:
//
//	modulo := fp.Curry2(func(divisor, dividend int) int { return dividend % divisor })
//	isOdd := modulo(2)
//	isOdd(8) // 0
func Curry2[A, B, R any](fn func(A, B) R) Curried2[A, B, R] {
	return func(a A) func(B) R {
		return func(b B) R {
			return fn(a, b)
		}
	}
}

// Curry3 converts fn into its curried form.
func Curry3[A, B, C, R any](fn func(A, B, C) R) Curried3[A, B, C, R] {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return fn(a, b, c)
			}
		}
	}
}

// Uncurry2 converts a curried binary function back into a plain one.
func Uncurry2[A, B, R any](fn func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return fn(a)(b)
	}
}

// Flip swaps the argument order of a curried binary function.
func Flip[A, B, R any](fn func(A) func(B) R) Curried2[B, A, R] {
	return func(b B) func(A) R {
		return func(a A) R {
			return fn(a)(b)
		}
	}
}

// Partial fixes the first argument of a plain binary function.
func Partial[A, B, R any](fn func(A, B) R, a A) func(B) R {
	return Curry2(fn)(a)
}
