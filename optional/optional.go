// Package optional contains a container for values that may be absent.
//
// An Optional[T] either holds a value (Some) or holds nothing (None).
// Absence is a normal, expected state rather than a failure: combinators
// pass None through without invoking their function arguments, and the
// only ways to reach the value are the comma-ok accessor, a fallback, or
// the invariant-guarded MustValue. Optionals convert to and from nil
// pointers at the boundary so the rest of the program never branches on
// nil.
package optional

import (
	"fmt"

	"gopkg.microglot.org/maybe.go/invariant"
	"gopkg.microglot.org/maybe.go/result"
)

// Optional is a container that holds either one value of type T or
// nothing. Instances are immutable and every combinator returns a fresh
// Optional. The zero value is None.
type Optional[T any] struct {
	present bool
	value   T
}

// IsPresent reports whether the Optional holds a value.
func (self Optional[T]) IsPresent() bool {
	return self.present
}

// IsNone reports whether the Optional holds nothing.
func (self Optional[T]) IsNone() bool {
	return !self.present
}

// Get returns the value and whether it is present.
func (self Optional[T]) Get() (T, bool) {
	return self.value, self.present
}

// MustValue returns the value of a Some. Calling it on a None is a broken
// precondition and panics through the invariant guard.
func (self Optional[T]) MustValue() T {
	invariant.Check(self.present, "optional: MustValue on None")
	return self.value
}

// GetOrElse returns the value when present, otherwise fallback.
func (self Optional[T]) GetOrElse(fallback T) T {
	if self.present {
		return self.value
	}
	return fallback
}

// GetOrElseFunc returns the value when present, otherwise the result of
// fn. fn is not invoked on the Some path, so an expensive fallback is
// only computed when it is needed.
func (self Optional[T]) GetOrElseFunc(fn func() T) T {
	if self.present {
		return self.value
	}
	return fn()
}

// OrElse returns the Optional when present, otherwise other.
func (self Optional[T]) OrElse(other Optional[T]) Optional[T] {
	if self.present {
		return self
	}
	return other
}

// OrElseFunc returns the Optional when present, otherwise the result of
// fn. fn is not invoked on the Some path.
func (self Optional[T]) OrElseFunc(fn func() Optional[T]) Optional[T] {
	if self.present {
		return self
	}
	return fn()
}

// Filter returns the Optional unchanged when it is present and keep
// reports true for the value. Otherwise it returns None. keep is not
// invoked on a None.
func (self Optional[T]) Filter(keep func(T) bool) Optional[T] {
	if self.present && keep(self.value) {
		return self
	}
	return None[T]()
}

// ToPtr returns a pointer to a copy of the value, or nil for a None. The
// pointee is a copy, so writes through the pointer never mutate the
// Optional.
func (self Optional[T]) ToPtr() *T {
	if !self.present {
		return nil
	}
	v := self.value
	return &v
}

// String renders Some(v) or None for debugging. It is not a serialization
// format.
func (self Optional[T]) String() string {
	if self.present {
		return fmt.Sprintf("Some(%v)", self.value)
	}
	return "None"
}

// Some constructs an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{
		present: true,
		value:   v,
	}
}

// None constructs an Optional holding nothing.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr adapts a nilable pointer at the boundary: nil becomes None and
// anything else becomes Some of the pointee. The pointee is copied, so
// later writes through p never mutate the Optional.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromOk adapts Go's native comma-ok pair: a false ok becomes None.
func FromOk[T any](v T, ok bool) Optional[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromResult narrows a Result to an Optional by discarding the reason of
// an Err. Use it when downstream code only cares whether a value exists.
func FromResult[T any, E any](r result.Result[T, E]) Optional[T] {
	return FromOk(r.Get())
}

// Map applies fn to the value of a Some and passes a None through
// unchanged without invoking fn.
func Map[T any, U any](o Optional[T], fn func(T) U) Optional[U] {
	if !o.present {
		return None[U]()
	}
	return Some(fn(o.value))
}

// FlatMap applies fn to the value of a Some and returns its Optional
// directly, already flattened. A None passes through unchanged without
// invoking fn.
func FlatMap[T any, U any](o Optional[T], fn func(T) Optional[U]) Optional[U] {
	if !o.present {
		return None[U]()
	}
	return fn(o.value)
}

// Flatten collapses one level of nesting: Some(Some(v)) becomes Some(v)
// and both Some(None) and None become None.
func Flatten[T any](o Optional[Optional[T]]) Optional[T] {
	if !o.present {
		return None[T]()
	}
	return o.value
}

// Fold collapses the Optional into a single value by applying onNone or
// onSome. It is the extraction path that forces both branches to be
// handled.
func Fold[T any, U any](o Optional[T], onNone func() U, onSome func(T) U) U {
	if !o.present {
		return onNone()
	}
	return onSome(o.value)
}

// ToResult widens an Optional to a Result by attaching a reason to the
// None branch. makeErr is only invoked when the Optional is a None.
func ToResult[T any, E any](o Optional[T], makeErr func() E) result.Result[T, E] {
	if !o.present {
		return result.Err[T, E](makeErr())
	}
	return result.Ok[T, E](o.value)
}
