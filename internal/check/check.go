// Package check compares actual values against expected literals.
package check

import (
	"errors"
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/samber/mo"
)

// ErrMismatch is wrapped by every MismatchError.
var ErrMismatch = errors.New("check: values differ")

// MismatchError reports an expected value that structurally differs from the actual one.
type MismatchError struct {
	Want any
	Got  any
	Diff string
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("expected %v to equal %v (-want +got):\n%s", e.Got, e.Want, e.Diff)
}

// Unwrap allows errors.Is(err, ErrMismatch).
func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}

var equalOpts = []cmp.Option{
	cmpopts.EquateEmpty(),
}

// Equal returns nil when want and got are structurally equal and a *MismatchError otherwise.
// Nil and empty slices or maps compare equal.
func Equal[T any](want, got T) error {
	if cmp.Equal(want, got, equalOpts...) {
		return nil
	}
	return &MismatchError{
		Want: want,
		Got:  got,
		Diff: cmp.Diff(want, got, equalOpts...),
	}
}

// EqualOption compares two Options by presence and, when both are present, by value.
func EqualOption[T any](want, got mo.Option[T]) error {
	wv, wok := want.Get()
	gv, gok := got.Get()

	if wok != gok {
		return &MismatchError{
			Want: describeOption(want),
			Got:  describeOption(got),
			Diff: fmt.Sprintf("-%s\n+%s", describeOption(want), describeOption(got)),
		}
	}
	if !wok {
		return nil
	}

	if err := Equal(wv, gv); err != nil {
		var mismatch *MismatchError
		if errors.As(err, &mismatch) {
			mismatch.Want = describeOption(want)
			mismatch.Got = describeOption(got)
		}
		return err
	}
	return nil
}

// EqualEither compares two Eithers by side and value.
func EqualEither[L, R any](want, got mo.Either[L, R]) error {
	if want.IsRight() != got.IsRight() {
		return &MismatchError{
			Want: describeEither(want),
			Got:  describeEither(got),
			Diff: fmt.Sprintf("-%s\n+%s", describeEither(want), describeEither(got)),
		}
	}

	if want.IsRight() {
		return Equal(want.MustRight(), got.MustRight())
	}
	return Equal(want.MustLeft(), got.MustLeft())
}

// All returns the first non-nil error.
func All(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func describeOption[T any](o mo.Option[T]) string {
	if v, ok := o.Get(); ok {
		return fmt.Sprintf("Some(%v)", v)
	}
	return "None"
}

func describeEither[L, R any](e mo.Either[L, R]) string {
	if v, ok := e.Right(); ok {
		return fmt.Sprintf("Right(%v)", v)
	}
	l, _ := e.Left()
	return fmt.Sprintf("Left(%v)", l)
}
