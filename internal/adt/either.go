package adt

import (
	"github.com/samber/mo"
)

// EitherOf builds a Right from a present pointer and a Left carrying left otherwise.
//
// Example:
//
//	surname := adt.EitherOf[string]("NotCurry")
//	surname(user.LastName) // Right("Curry") or Left("NotCurry")
func EitherOf[R, L any](left L) func(*R) mo.Either[L, R] {
	return func(v *R) mo.Either[L, R] {
		if v == nil {
			return mo.Left[L, R](left)
		}
		return mo.Right[L](*v)
	}
}

// EitherFromEmpty is EitherOf for values where the zero value means missing.
func EitherFromEmpty[R comparable, L any](left L) func(R) mo.Either[L, R] {
	return func(v R) mo.Either[L, R] {
		var zero R
		if v == zero {
			return mo.Left[L, R](left)
		}
		return mo.Right[L](v)
	}
}

// MapRight applies fn to a Right value and passes a Left through untouched.
func MapRight[L, A, B any](fn func(A) B) func(mo.Either[L, A]) mo.Either[L, B] {
	return func(e mo.Either[L, A]) mo.Either[L, B] {
		if v, ok := e.Right(); ok {
			return mo.Right[L](fn(v))
		}
		l, _ := e.Left()
		return mo.Left[L, B](l)
	}
}

// Fold collapses both sides of e into a single value.
func Fold[L, R, T any](onLeft func(L) T, onRight func(R) T) func(mo.Either[L, R]) T {
	return func(e mo.Either[L, R]) T {
		if v, ok := e.Right(); ok {
			return onRight(v)
		}
		l, _ := e.Left()
		return onLeft(l)
	}
}

// RightOrElse unwraps a Right or returns def.
func RightOrElse[L, R any](def R) func(mo.Either[L, R]) R {
	return func(e mo.Either[L, R]) R {
		return e.RightOrElse(def)
	}
}

// ToOption drops the Left reason.
func ToOption[L, R any](e mo.Either[L, R]) mo.Option[R] {
	return mo.TupleToOption(e.Right())
}
