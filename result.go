// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package result

// Result holds either a success value of type T or an error of type E.
//
// The discriminant selects the live slot. The other slot always holds its
// zero value: every constructor and every mutation clears the slot it
// leaves, so a result never keeps a stale payload reachable.
//
// The zero Result is error-holding with the zero E as its payload.
type Result[T, E any] struct {
	ok    bool
	value T
	err   E
}

// Ok creates a success result holding v.
// E comes first so that callers can write Ok[string](100).
func Ok[E, T any](v T) Result[T, E] {
	return Result[T, E]{ok: true, value: v}
}

// Fail creates an error result holding e.
func Fail[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// FromTag creates an error result from a tag.
func FromTag[T, E any](t ErrorTag[E]) Result[T, E] {
	return Result[T, E]{err: t.err}
}

// Convert builds a result of other payload types from r.
// Exactly one of fv and fe is called, selected by r's discriminant.
func Convert[T, E, U, F any](r Result[T, E], fv func(T) U, fe func(E) F) Result[U, F] {
	if r.ok {
		return Result[U, F]{ok: true, value: fv(r.value)}
	}
	return Result[U, F]{err: fe(r.err)}
}

// Assign replaces r with a copy of o.
func (r *Result[T, E]) Assign(o Result[T, E]) {
	*r = o
}

// Set makes r a success result holding v, dropping the previous payload.
func (r *Result[T, E]) Set(v T) {
	*r = Result[T, E]{ok: true, value: v}
}

// SetErr makes r an error result holding t's payload, dropping the previous
// payload.
func (r *Result[T, E]) SetErr(t ErrorTag[E]) {
	*r = Result[T, E]{err: t.err}
}

// Swap exchanges the contents of r and o, discriminants included.
func (r *Result[T, E]) Swap(o *Result[T, E]) {
	*r, *o = *o, *r
}

// Swap exchanges the contents of a and b.
func Swap[T, E any](a, b *Result[T, E]) {
	a.Swap(b)
}
