// Package ro provides reactive stream helpers for curryhoward using samber/ro.
//
// The runner pushes exercises through a stream so that execution, logging and
// collection compose as operators. Bounded slice work elsewhere uses samber/lo.
package ro

import (
	"context"

	"github.com/samber/ro"
)

// StreamFromSlice creates an Observable from a slice.
// Items are emitted in order, then the Observable completes.
//
// Example:
//
//	stream := StreamFromSlice(exercise.Catalogue(lib))
func StreamFromSlice[T any](items []T) ro.Observable[T] {
	return ro.FromSlice(items)
}

// MapStream transforms items from a source Observable using a mapper function.
func MapStream[T, R any](source ro.Observable[T], mapper func(T) R) ro.Observable[R] {
	return ro.Pipe1(source, ro.Map(mapper))
}

// TapStream runs action for each item without modifying the stream.
//
// Example:
//
//	logged := TapStream(results, func(r Result) {
//	    logger.Info().Str("exercise", r.Name).Msg("done")
//	})
func TapStream[T any](source ro.Observable[T], action func(T)) ro.Observable[T] {
	return ro.Pipe1(source, ro.DoOnNext(action))
}

// Collect collects all items from a stream into a slice.
// Blocks until the stream completes or errors.
func Collect[T any](source ro.Observable[T]) ([]T, error) {
	return ro.Collect(source)
}

// CollectWithContext collects all items from a stream with context support.
func CollectWithContext[T any](ctx context.Context, source ro.Observable[T]) ([]T, context.Context, error) {
	return ro.CollectWithContext(ctx, source)
}
