// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package result

// ErrorTag marks a value as the error outcome.
//
// A tag is how an error enters a [Result] without ambiguity: success values
// go through [Ok] or [Result.Set], tags through [FromTag] or [Result.SetErr].
// This holds even when T and E are the same type.
type ErrorTag[E any] struct {
	err E
}

// Tag wraps e as an error.
func Tag[E any](e E) ErrorTag[E] {
	return ErrorTag[E]{err: e}
}

// ConvertTag builds a tag of another error type from t's payload.
func ConvertTag[E, F any](t ErrorTag[E], f func(E) F) ErrorTag[F] {
	return ErrorTag[F]{err: f(t.err)}
}

// Err returns a copy of the wrapped error.
func (t ErrorTag[E]) Err() E {
	return t.err
}

// ErrRef returns a pointer to the wrapped error for in-place mutation.
func (t *ErrorTag[E]) ErrRef() *E {
	return &t.err
}

// Take moves the wrapped error out, leaving the zero E behind.
func (t *ErrorTag[E]) Take() E {
	e := t.err
	var zero E
	t.err = zero
	return e
}
