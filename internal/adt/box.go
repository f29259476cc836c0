package adt

// Box is the identity functor: a value in a container whose only capability is Map.
type Box[T any] struct {
	value T
}

// NewBox puts v in a Box.
func NewBox[T any](v T) Box[T] {
	return Box[T]{value: v}
}

// Map applies fn to the boxed value.
func (b Box[T]) Map(fn func(T) T) Box[T] {
	return Box[T]{value: fn(b.value)}
}

// Value returns the boxed value.
func (b Box[T]) Value() T {
	return b.value
}

// MapBox is the type-changing, curried form of Box.Map.
func MapBox[A, B any](fn func(A) B) func(Box[A]) Box[B] {
	return func(b Box[A]) Box[B] {
		return Box[B]{value: fn(b.value)}
	}
}
