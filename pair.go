// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package result

// FromPair converts a conventional (value, error) return into a Result.
// A non-nil err wins over v.
func FromPair[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Result[T, error]{err: err}
	}
	return Result[T, error]{ok: true, value: v}
}

// Pair converts r back into a (value, error) pair.
// An error result carrying a nil error reports a [BadAccess] error, so that a
// failure is never mistaken for success.
func Pair[T any](r Result[T, error]) (T, error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	if r.err == nil {
		return zero, errNilPairErr()
	}
	return zero, r.err
}
