// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package result

import (
	"go.uber.org/multierr"
	"golang.org/x/exp/slices"
)

// Collect gathers the values of rs into a single result.
// It returns the first error in rs, or a success holding every value in order.
// An empty rs yields a success holding an empty slice.
func Collect[T, E any](rs []Result[T, E]) Result[[]T, E] {
	if i := slices.IndexFunc(rs, Result[T, E].IsErr); i >= 0 {
		return Result[[]T, E]{err: rs[i].err}
	}
	vals := make([]T, len(rs))
	for i, r := range rs {
		vals[i] = r.value
	}
	return Result[[]T, E]{ok: true, value: vals}
}

// Partition splits rs into its success values and its error payloads,
// preserving order within each group.
func Partition[T, E any](rs []Result[T, E]) ([]T, []E) {
	var (
		vals []T
		errs []E
	)
	for _, r := range rs {
		if r.ok {
			vals = append(vals, r.value)
		} else {
			errs = append(errs, r.err)
		}
	}
	return slices.Clip(vals), slices.Clip(errs)
}

// JoinErrs combines the error payloads of rs into one error.
// It returns nil when every result holds a value. Error results carrying a
// nil error contribute a [BadAccess] error.
func JoinErrs[T any](rs []Result[T, error]) error {
	var err error
	for _, r := range rs {
		if r.ok {
			continue
		}
		if r.err == nil {
			err = multierr.Append(err, errNilPairErr())
			continue
		}
		err = multierr.Append(err, r.err)
	}
	return err
}
