package adt

import (
	"encoding/json"

	"github.com/samber/mo"
	"github.com/tidwall/gjson"
)

// Try runs fn and converts a returned error or a panic into None.
// Nothing raised inside fn escapes Try.
func Try[T any](fn func() (T, error)) (out mo.Option[T]) {
	defer func() {
		if r := recover(); r != nil {
			out = mo.None[T]()
		}
	}()

	v, err := fn()
	if err != nil {
		return mo.None[T]()
	}
	return mo.Some(v)
}

// ParseJSON decodes s into a T. Malformed input yields None.
func ParseJSON[T any](s string) mo.Option[T] {
	if !gjson.Valid(s) {
		return mo.None[T]()
	}

	return Try(func() (T, error) {
		var v T
		err := json.Unmarshal([]byte(s), &v)
		return v, err
	})
}
