// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package result

// Combinators for Result.
//
// These are free functions because methods cannot introduce new type
// parameters. Each one inspects the discriminant once and calls at most
// one of its function arguments.

// AndThen sequences r with f (monadic bind).
// If r holds a value, the result is f(value). Otherwise f is not called and
// the error is passed through unchanged.
func AndThen[T, E, U any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return f(r.value)
	}
	return Result[U, E]{err: r.err}
}

// OrElse is the error-side counterpart of AndThen.
// If r holds an error, the result is f(error). Otherwise the value is passed
// through unchanged.
func OrElse[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Result[T, F]{ok: true, value: r.value}
	}
	return f(r.err)
}

// Map applies f to the success value.
//
// Map(r, f) is equivalent to AndThen(r, func(v T) Result[U, E] { return Ok[E](f(v)) }).
func Map[T, E, U any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.ok {
		return Result[U, E]{ok: true, value: f(r.value)}
	}
	return Result[U, E]{err: r.err}
}

// MapErr applies f to the error payload.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Result[T, F]{ok: true, value: r.value}
	}
	return Result[T, F]{err: f(r.err)}
}

// Match pattern matches on r, calling onValue or onErr.
func Match[T, E, U any](r Result[T, E], onValue func(T) U, onErr func(E) U) U {
	if r.ok {
		return onValue(r.value)
	}
	return onErr(r.err)
}

// Flatten removes one level of nesting.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if r.ok {
		return r.value
	}
	return Result[T, E]{err: r.err}
}
