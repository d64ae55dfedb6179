// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package result

// HasValue reports whether r holds a success value.
func (r Result[T, E]) HasValue() bool {
	return r.ok
}

// IsErr reports whether r holds an error.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Value returns the success value.
// Panics with a [BadAccess] error if r holds an error.
func (r Result[T, E]) Value() T {
	if !r.ok {
		panic(errValueOnErr())
	}
	return r.value
}

// Err returns the error payload.
// Panics with a [BadAccess] error if r holds a success value.
func (r Result[T, E]) Err() E {
	if r.ok {
		panic(errErrOnValue())
	}
	return r.err
}

// TryValue is the non-panicking variant of Value.
func (r Result[T, E]) TryValue() (T, error) {
	if !r.ok {
		var zero T
		return zero, errValueOnErr()
	}
	return r.value, nil
}

// TryErr is the non-panicking variant of Err.
func (r Result[T, E]) TryErr() (E, error) {
	if r.ok {
		var zero E
		return zero, errErrOnValue()
	}
	return r.err, nil
}

// Get returns the success value and true, or zero and false.
func (r Result[T, E]) Get() (T, bool) {
	if r.ok {
		return r.value, true
	}
	var zero T
	return zero, false
}

// GetErr returns the error payload and true, or zero and false.
func (r Result[T, E]) GetErr() (E, bool) {
	if !r.ok {
		return r.err, true
	}
	var zero E
	return zero, false
}

// ValueRef returns a pointer to the live success value.
// Panics with a [BadAccess] error if r holds an error.
func (r *Result[T, E]) ValueRef() *T {
	if !r.ok {
		panic(errValueOnErr())
	}
	return &r.value
}

// ErrRef returns a pointer to the live error payload.
// Panics with a [BadAccess] error if r holds a success value.
func (r *Result[T, E]) ErrRef() *E {
	if r.ok {
		panic(errErrOnValue())
	}
	return &r.err
}

// Unchecked returns the success slot without looking at the discriminant.
// On an error result this is the zero T.
func (r Result[T, E]) Unchecked() T {
	return r.value
}

// UncheckedRef returns a pointer to the success slot without looking at the
// discriminant. Writing through it on an error result leaves a non-zero
// inactive slot behind; callers must check HasValue first.
func (r *Result[T, E]) UncheckedRef() *T {
	return &r.value
}

// ValueOr returns the success value, or d if r holds an error.
func (r Result[T, E]) ValueOr(d T) T {
	if r.ok {
		return r.value
	}
	return d
}

// ErrOr returns the error payload, or d if r holds a success value.
func (r Result[T, E]) ErrOr(d E) E {
	if r.ok {
		return d
	}
	return r.err
}

// ValueOrElse returns the success value, or f() if r holds an error.
// f is only called when its result is needed.
func (r Result[T, E]) ValueOrElse(f func() T) T {
	if r.ok {
		return r.value
	}
	return f()
}

// ErrOrElse returns the error payload, or f() if r holds a success value.
func (r Result[T, E]) ErrOrElse(f func() E) E {
	if r.ok {
		return f()
	}
	return r.err
}
