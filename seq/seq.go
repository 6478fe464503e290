// Package seq contains optional-driven iteration over in-memory sequences.
// Exhaustion is reported as None rather than a sentinel error value, so
// consuming loops branch on presence instead of comparing errors.
package seq

import (
	"gopkg.microglot.org/maybe.go/optional"
)

// Iterator produces values one at a time. After the sequence is exhausted
// every call to Next returns None.
type Iterator[T any] interface {
	Next() optional.Optional[T]
}

// FromSlice converts a slice of values into an Iterator implementation.
func FromSlice[T any](vs []T) Iterator[T] {
	return &iteratorSlice[T]{slice: vs, offset: -1}
}

type iteratorSlice[T any] struct {
	slice  []T
	offset int
}

func (it *iteratorSlice[T]) Next() optional.Optional[T] {
	it.offset = it.offset + 1
	if it.offset >= len(it.slice) {
		return optional.None[T]()
	}
	return optional.Some(it.slice[it.offset])
}

// Filter wraps an iterator so that only values for which keep reports true
// are returned.
func Filter[T any](it Iterator[T], keep func(T) bool) Iterator[T] {
	return &iteratorFilter[T]{
		iter: it,
		keep: keep,
	}
}

type iteratorFilter[T any] struct {
	iter Iterator[T]
	keep func(T) bool
}

func (it *iteratorFilter[T]) Next() optional.Optional[T] {
	for {
		next := it.iter.Next()
		v, ok := next.Get()
		if !ok {
			return next
		}
		if it.keep(v) {
			return next
		}
	}
}

// Map wraps an iterator so that every value is transformed by fn as it is
// produced. Exhaustion passes through untransformed.
func Map[T any, U any](it Iterator[T], fn func(T) U) Iterator[U] {
	return &iteratorMap[T, U]{
		iter: it,
		fn:   fn,
	}
}

type iteratorMap[T any, U any] struct {
	iter Iterator[T]
	fn   func(T) U
}

func (it *iteratorMap[T, U]) Next() optional.Optional[U] {
	return optional.Map(it.iter.Next(), it.fn)
}

// Lookahead is an Iterator that can also peek at upcoming values without
// consuming them.
type Lookahead[T any] interface {
	Iterator[T]
	// Peek returns the value that the n-th following call to Next would
	// return, so Peek(0) is the immediate next value. Peeking past the
	// window size given to NewLookahead returns None.
	Peek(n uint8) optional.Optional[T]
}

// NewLookahead wraps an iterator in a Lookahead implementation to enable
// peeking at the next n+1 values.
func NewLookahead[T any](it Iterator[T], n uint8) Lookahead[T] {
	return &lookahead[T]{
		iter: it,
		n:    n,
	}
}

type lookahead[T any] struct {
	iter  Iterator[T]
	n     uint8
	peeks []optional.Optional[T]
}

func (look *lookahead[T]) init() {
	if look.peeks == nil {
		look.peeks = make([]optional.Optional[T], int(look.n)+1)
		for x := 0; x <= int(look.n); x = x + 1 {
			look.peeks[x] = look.iter.Next()
		}
	}
}

func (look *lookahead[T]) Next() optional.Optional[T] {
	look.init()
	next := look.peeks[0]
	copy(look.peeks, look.peeks[1:])
	look.peeks[len(look.peeks)-1] = look.iter.Next()
	return next
}

func (look *lookahead[T]) Peek(n uint8) optional.Optional[T] {
	look.init()
	if n > look.n {
		return optional.None[T]()
	}
	return look.peeks[n]
}

// Collect drains the iterator into a slice. An immediately exhausted
// iterator yields an empty, non-nil slice.
func Collect[T any](it Iterator[T]) []T {
	out := []T{}
	for {
		v, ok := it.Next().Get()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
