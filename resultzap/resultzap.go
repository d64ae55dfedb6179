// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package resultzap encodes results as structured zap fields.
//
// Only the live payload is encoded. A success result becomes
// {"ok": true, "value": ...} and an error result {"ok": false, "error": ...}.
// Payloads implementing error are encoded as zap.Error would encode them, payloads
// implementing zapcore.ObjectMarshaler as nested objects, and everything else
// through the encoder's reflection fallback.
package resultzap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"code.hybscloud.com/result"
)

const (
	keyOK    = "ok"
	keyValue = "value"
	keyError = "error"
)

type resultObject[T, E any] struct {
	r result.Result[T, E]
}

func (o resultObject[T, E]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if v, ok := o.r.Get(); ok {
		enc.AddBool(keyOK, true)
		return addPayload(enc, keyValue, v)
	}
	e, _ := o.r.GetErr()
	enc.AddBool(keyOK, false)
	return addPayload(enc, keyError, e)
}

type tagObject[E any] struct {
	t result.ErrorTag[E]
}

func (o tagObject[E]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return addPayload(enc, keyError, o.t.Err())
}

func addPayload(enc zapcore.ObjectEncoder, key string, p any) error {
	switch v := p.(type) {
	case nil:
		return enc.AddReflected(key, nil)
	case error:
		// zap recovers from typed-nil receivers and writes "<nil>".
		zap.NamedError(key, v).AddTo(enc)
		return nil
	case string:
		enc.AddString(key, v)
		return nil
	case zapcore.ObjectMarshaler:
		return enc.AddObject(key, v)
	default:
		return enc.AddReflected(key, v)
	}
}

// Object adapts r to zapcore.ObjectMarshaler.
func Object[T, E any](r result.Result[T, E]) zapcore.ObjectMarshaler {
	return resultObject[T, E]{r: r}
}

// Field returns a zap field holding r under key.
func Field[T, E any](key string, r result.Result[T, E]) zap.Field {
	return zap.Object(key, Object(r))
}

// TagField returns a zap field holding the tag's error under key.
func TagField[E any](key string, t result.ErrorTag[E]) zap.Field {
	return zap.Object(key, tagObject[E]{t: t})
}
