package fp

import (
	"cmp"
	"strings"
	"unicode/utf8"
)

// Identity returns its argument.
func Identity[T any](v T) T {
	return v
}

// Const returns a function ignoring its argument and always returning v.
func Const[A, T any](v T) func(A) T {
	return func(A) T {
		return v
	}
}

// Prop names a typed field selector so it reads like a property lookup in a pipeline.
func Prop[R, V any](get func(R) V) func(R) V {
	return get
}

// Assoc returns a curried setter: Assoc(set)(v)(r) is a copy of r with v stored by set.
// set receives r by value, so the original record is untouched.
func Assoc[R, V any](set func(R, V) R) Curried2[V, R, R] {
	return func(v V) func(R) R {
		return func(r R) R {
			return set(r, v)
		}
	}
}

// Not negates a predicate.
func Not[T any](pred func(T) bool) func(T) bool {
	return func(v T) bool {
		return !pred(v)
	}
}

// Equals is a curried equality test.
func Equals[T comparable](x T) func(T) bool {
	return func(y T) bool {
		return x == y
	}
}

// Lte reports x <= y, curried on x.
func Lte[T cmp.Ordered](x T) func(T) bool {
	return func(y T) bool {
		return x <= y
	}
}

// Gt reports y > x, curried on x.
func Gt[T cmp.Ordered](x T) func(T) bool {
	return func(y T) bool {
		return y > x
	}
}

// Min returns the smaller of a and b.
func Min[T cmp.Ordered](a, b T) T {
	return min(a, b)
}

// Max returns the larger of a and b.
func Max[T cmp.Ordered](a, b T) T {
	return max(a, b)
}

// Add is curried addition.
func Add[T cmp.Ordered](x T) func(T) T {
	return func(y T) T {
		return x + y
	}
}

// Converge feeds the same input to left and right and combines both results with after.
func Converge[A, B, C, R any](after func(B) func(C) R, left func(A) B, right func(A) C) func(A) R {
	return func(a A) R {
		return after(left(a))(right(a))
	}
}

// Split returns a function splitting a string around sep.
func Split(sep string) func(string) []string {
	return func(s string) []string {
		return strings.Split(s, sep)
	}
}

// Length counts the runes of s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// FirstRune returns the first character of s as a string, or "" when s is empty.
func FirstRune(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(r)
}

// ToUpper is strings.ToUpper, named for use in pipelines.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// ToLower is strings.ToLower, named for use in pipelines.
func ToLower(s string) string {
	return strings.ToLower(s)
}
