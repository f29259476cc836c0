package fp

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Map returns a function applying fn to every element, preserving order and length.
func Map[A, B any](fn func(A) B) func([]A) []B {
	return func(xs []A) []B {
		return lo.Map(xs, func(x A, _ int) B {
			return fn(x)
		})
	}
}

// Filter returns a function keeping, in order, the elements satisfying pred.
func Filter[T any](pred func(T) bool) func([]T) []T {
	return func(xs []T) []T {
		return lo.Filter(xs, func(x T, _ int) bool {
			return pred(x)
		})
	}
}

// Reject is the complement of Filter.
func Reject[T any](pred func(T) bool) func([]T) []T {
	return func(xs []T) []T {
		return lo.Reject(xs, func(x T, _ int) bool {
			return pred(x)
		})
	}
}

// Reduce returns a left fold of fn over a slice starting from initial.
// An empty slice yields initial.
func Reduce[T, R any](fn func(R, T) R, initial R) func([]T) R {
	return func(xs []T) R {
		return lo.Reduce(xs, func(acc R, x T, _ int) R {
			return fn(acc, x)
		}, initial)
	}
}

// SortBy returns a function ordering a copy of its input ascending by key.
// Equal keys keep their input order.
func SortBy[T any, K cmp.Ordered](key func(T) K) func([]T) []T {
	return Sort(func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
}

// Sort returns a function ordering a copy of its input with compare.
// The sort is stable.
func Sort[T any](compare func(a, b T) int) func([]T) []T {
	return func(xs []T) []T {
		out := slices.Clone(xs)
		slices.SortStableFunc(out, compare)
		return out
	}
}

// Uniq drops repeated elements, keeping the first occurrence.
func Uniq[T comparable](xs []T) []T {
	return lo.Uniq(xs)
}

// Head returns the first element, or the zero value of T for an empty slice.
func Head[T any](xs []T) T {
	return HeadOption(xs).OrEmpty()
}

// Last returns the last element, or the zero value of T for an empty slice.
func Last[T any](xs []T) T {
	return LastOption(xs).OrEmpty()
}

// Nth returns a function picking the element at index i.
// Negative indexes count from the end. Out of range yields the zero value.
func Nth[T any](i int) func([]T) T {
	return func(xs []T) T {
		return NthOption[T](i)(xs).OrEmpty()
	}
}

// HeadOption returns the first element if there is one.
func HeadOption[T any](xs []T) mo.Option[T] {
	return NthOption[T](0)(xs)
}

// LastOption returns the last element if there is one.
func LastOption[T any](xs []T) mo.Option[T] {
	return NthOption[T](-1)(xs)
}

// NthOption is the total form of Nth.
func NthOption[T any](i int) func([]T) mo.Option[T] {
	return func(xs []T) mo.Option[T] {
		idx := i
		if idx < 0 {
			idx += len(xs)
		}
		if idx < 0 || idx >= len(xs) {
			return mo.None[T]()
		}
		return mo.Some(xs[idx])
	}
}

// Len returns the number of elements.
func Len[T any](xs []T) int {
	return len(xs)
}

// Concat joins slices into a fresh slice.
func Concat[T any](xss ...[]T) []T {
	return slices.Concat(xss...)
}
