// Package adt adds the generic combinators samber/mo leaves out: type-changing maps,
// nullable factories, sequencing and a panic-safe parse boundary.
//
// Optional values are mo.Option and disjunctions are mo.Either. Every helper is curried
// so it drops into fp.Compose pipelines.
package adt

import (
	"github.com/samber/mo"
)

// FromNullable lifts a pointer into an Option. nil becomes None.
func FromNullable[T any](v *T) mo.Option[T] {
	return mo.PointerToOption(v)
}

// FromEmpty treats the zero value as absent.
func FromEmpty[T comparable](v T) mo.Option[T] {
	return mo.EmptyableToOption(v)
}

// MapOption applies fn to a present value. fn is never invoked for None.
func MapOption[A, B any](fn func(A) B) func(mo.Option[A]) mo.Option[B] {
	return func(o mo.Option[A]) mo.Option[B] {
		v, ok := o.Get()
		if !ok {
			return mo.None[B]()
		}
		return mo.Some(fn(v))
	}
}

// FlatMapOption chains a function that may itself produce None.
func FlatMapOption[A, B any](fn func(A) mo.Option[B]) func(mo.Option[A]) mo.Option[B] {
	return func(o mo.Option[A]) mo.Option[B] {
		v, ok := o.Get()
		if !ok {
			return mo.None[B]()
		}
		return fn(v)
	}
}

// GetOrElse unwraps a present value or returns def.
func GetOrElse[T any](def T) func(mo.Option[T]) T {
	return func(o mo.Option[T]) T {
		return o.OrElse(def)
	}
}

// IsPresent reports whether o holds a value.
func IsPresent[T any](o mo.Option[T]) bool {
	return o.IsPresent()
}

// Sequence turns a slice of Options into an Option of slice.
// It is None as soon as any element is None.
func Sequence[T any](opts []mo.Option[T]) mo.Option[[]T] {
	out := make([]T, 0, len(opts))
	for _, o := range opts {
		v, ok := o.Get()
		if !ok {
			return mo.None[[]T]()
		}
		out = append(out, v)
	}
	return mo.Some(out)
}

// Compact keeps the present values, in order.
func Compact[T any](opts []mo.Option[T]) []T {
	out := make([]T, 0, len(opts))
	for _, o := range opts {
		if v, ok := o.Get(); ok {
			out = append(out, v)
		}
	}
	return out
}
