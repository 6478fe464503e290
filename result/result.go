// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package result contains a container for computations that may fail with a
// typed reason.
//
// A Result[T, E] holds either a success value of type T or a failure reason
// of type E. Combinators never invoke their function arguments on the Err
// variant, so a failed computation short-circuits the rest of a chain while
// the reason rides along as data. The reason type is unconstrained: a
// descriptive token, a fault.Fault, or an error all work.
package result

import (
	"fmt"

	"gopkg.microglot.org/maybe.go/invariant"
)

// Result is the outcome of a computation: Ok with a value or Err with a
// reason. Instances are immutable and every combinator returns a fresh
// Result. The zero value is Err with a zero reason; use the constructors.
type Result[T any, E any] struct {
	ok     bool
	value  T
	reason E
}

// Ok constructs a successful Result holding v.
func Ok[T any, E any](v T) Result[T, E] {
	return Result[T, E]{
		ok:    true,
		value: v,
	}
}

// Err constructs a failed Result holding reason.
func Err[T any, E any](reason E) Result[T, E] {
	return Result[T, E]{
		reason: reason,
	}
}

// FromTuple lifts Go's native (value, error) pair into a Result. A nil
// error means Ok.
func FromTuple[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](v)
}

// ToTuple lowers a Result back to Go's native (value, error) pair at the
// outward boundary. It is only available when the reason type is an error.
func ToTuple[T any, E error](r Result[T, E]) (T, error) {
	if !r.ok {
		var zero T
		return zero, r.reason
	}
	return r.value, nil
}

// IsOk reports whether the Result holds a value.
func (self Result[T, E]) IsOk() bool {
	return self.ok
}

// IsErr reports whether the Result holds a reason.
func (self Result[T, E]) IsErr() bool {
	return !self.ok
}

// Get returns the value and whether it is present.
func (self Result[T, E]) Get() (T, bool) {
	return self.value, self.ok
}

// MustValue returns the value of an Ok. Calling it on an Err is a broken
// precondition and panics through the invariant guard.
func (self Result[T, E]) MustValue() T {
	invariant.Check(self.ok, "result: MustValue on Err")
	return self.value
}

// MustReason returns the reason of an Err. Calling it on an Ok is a broken
// precondition and panics through the invariant guard.
func (self Result[T, E]) MustReason() E {
	invariant.Check(!self.ok, "result: MustReason on Ok")
	return self.reason
}

// GetOrElse returns the value when Ok, otherwise fallback.
func (self Result[T, E]) GetOrElse(fallback T) T {
	if self.ok {
		return self.value
	}
	return fallback
}

// GetOrElseFunc returns the value when Ok, otherwise the result of fn
// applied to the reason. fn is not invoked on the Ok path.
func (self Result[T, E]) GetOrElseFunc(fn func(E) T) T {
	if self.ok {
		return self.value
	}
	return fn(self.reason)
}

// String renders Ok(v) or Err(reason) for debugging. It is not a
// serialization format.
func (self Result[T, E]) String() string {
	if self.ok {
		return fmt.Sprintf("Ok(%v)", self.value)
	}
	return fmt.Sprintf("Err(%v)", self.reason)
}

// Map applies fn to the value of an Ok and passes an Err through unchanged
// without invoking fn.
func Map[T any, E any, U any](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.reason)
	}
	return Ok[U, E](fn(r.value))
}

// MapErr applies fn to the reason of an Err and passes an Ok through
// unchanged without invoking fn.
func MapErr[T any, E any, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T, F](fn(r.reason))
}

// FlatMap applies fn to the value of an Ok and returns its Result directly,
// already flattened. An Err passes through unchanged without invoking fn.
func FlatMap[T any, E any, U any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.reason)
	}
	return fn(r.value)
}

// Fold collapses the Result into a single value by applying onErr to the
// reason or onOk to the value. It is the extraction path that forces both
// branches to be handled.
func Fold[T any, E any, U any](r Result[T, E], onErr func(E) U, onOk func(T) U) U {
	if !r.ok {
		return onErr(r.reason)
	}
	return onOk(r.value)
}

// Sequence converts a slice of Results into a Result of a slice, failing
// fast with the first reason encountered.
func Sequence[T any, E any](rs []Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		if !r.ok {
			return Err[[]T, E](r.reason)
		}
		values = append(values, r.value)
	}
	return Ok[[]T, E](values)
}

// Partition splits a slice of Results into the values of the Ok entries and
// the reasons of the Err entries, preserving order within each side.
func Partition[T any, E any](rs []Result[T, E]) ([]T, []E) {
	values := make([]T, 0, len(rs))
	reasons := make([]E, 0, len(rs))
	for _, r := range rs {
		if r.ok {
			values = append(values, r.value)
			continue
		}
		reasons = append(reasons, r.reason)
	}
	return values, reasons
}
