// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package logging

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"code.hybscloud.com/result"
	"code.hybscloud.com/result/resultzap"
)

func Duration[S ~string](s S, d time.Duration) Field {
	return zap.Duration(string(s), d)
}

func Any[S ~string](s S, v any) Field {
	return zap.Any(string(s), v)
}

func Int[S ~string, T constraints.Signed](s S, v T) Field {
	return zap.Int64(string(s), int64(v))
}

func Uint[S ~string, T constraints.Unsigned](s S, v T) Field {
	return zap.Uint64(string(s), uint64(v))
}

func Bool[S ~string](s S, v bool) Field {
	return zap.Bool(string(s), v)
}

func Error(err error) Field {
	return zap.Error(err)
}

func String[U, V ~string](s U, v V) Field {
	return zap.String(string(s), string(v))
}

// Result logs only the live payload of r.
func Result[S ~string, T, E any](s S, r result.Result[T, E]) Field {
	return resultzap.Field(string(s), r)
}
