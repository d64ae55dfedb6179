// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package result

// Equal reports whether a and b hold the same kind of payload and the live
// payloads are equal.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return a.value == b.value
	}
	return a.err == b.err
}

// EqualFunc is Equal for payloads of different or non-comparable types.
// Only the comparison matching the shared discriminant is called.
func EqualFunc[T1, E1, T2, E2 any](
	a Result[T1, E1],
	b Result[T2, E2],
	eqv func(T1, T2) bool,
	eqe func(E1, E2) bool,
) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return eqv(a.value, b.value)
	}
	return eqe(a.err, b.err)
}

// EqualValue reports whether r holds a success value equal to v.
// An error result never equals a value.
func EqualValue[T comparable, E any](r Result[T, E], v T) bool {
	return r.ok && r.value == v
}

// EqualTag reports whether r holds an error equal to t's payload.
func EqualTag[T any, E comparable](r Result[T, E], t ErrorTag[E]) bool {
	return !r.ok && r.err == t.err
}
