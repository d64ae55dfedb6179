// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package logging_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"code.hybscloud.com/result"
	"code.hybscloud.com/result/internal/logging"
)

type key string

func TestDefaultConfig(t *testing.T) {
	t.Setenv("GO_ENVIRONMENT", "production")
	cfg := logging.DefaultConfig()
	assert.True(t, cfg.Production)
	assert.Equal(t, zapcore.InfoLevel, cfg.Level)

	t.Setenv("GO_ENVIRONMENT", "")
	cfg = logging.DefaultConfig()
	assert.False(t, cfg.Production)
	assert.Equal(t, zapcore.DebugLevel, cfg.Level)
}

func TestBuild(t *testing.T) {
	l, err := logging.Build(logging.Config{Level: zapcore.WarnLevel})
	require.NoError(t, err)
	require.NotNil(t, l)
}

func TestContextRoundTrip(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logging.Wrap(zap.New(core))

	ctx := l.WithContext(context.Background())
	logging.FromContext(ctx).Info("hello")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "hello", logs.All()[0].Message)
}

func TestFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logging.Wrap(zap.New(core)).Named("test").With(logging.String(key("scenario"), "swap"))

	l.Debug("fields",
		logging.Int(key("i"), int8(-3)),
		logging.Uint(key("u"), uint16(3)),
		logging.Bool(key("b"), true),
		logging.Duration(key("d"), time.Second),
		logging.Result(key("r"), result.Ok[string](7)),
	)

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "swap", ctx["scenario"])
	assert.Equal(t, int64(-3), ctx["i"])
	assert.Equal(t, uint64(3), ctx["u"])
	assert.Equal(t, true, ctx["b"])
	assert.Equal(t, time.Second, ctx["d"])
	assert.Equal(t, map[string]interface{}{"ok": true, "value": 7}, ctx["r"])
}
