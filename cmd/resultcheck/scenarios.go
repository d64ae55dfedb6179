// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"code.hybscloud.com/result"
	"code.hybscloud.com/result/internal/check"
	"code.hybscloud.com/result/internal/fixtures"
	"code.hybscloud.com/result/internal/logging"
)

func scenarios() []scenario {
	return []scenario{
		{"construct/value-same-types", constructValueSameTypes},
		{"construct/value-mixed-types", constructValueMixedTypes},
		{"construct/tag", constructFromTag},
		{"construct/zero", constructZero},
		{"convert/copyable", convertCopyable},
		{"convert/unique", convertUnique},
		{"copy/independent", copyIndependent},
		{"assign/transitions", assignTransitions},
		{"swap/round-trip", swapRoundTrip},
		{"access/bad-access", badAccess},
		{"access/fallbacks", fallbacks},
		{"combinators/chain", combinators},
		{"compare/equality", equality},
	}
}

func constructValueSameTypes(s *check.Suite, log *logging.Logger) {
	r := result.Ok[fixtures.Copyable](fixtures.Copyable{Value: 100})
	log.Debug("constructed", logging.Result("result", r))

	s.True("has value", r.HasValue())
	s.Equal("member access", r.UncheckedRef().Value, 100)
}

func constructValueMixedTypes(s *check.Suite, log *logging.Logger) {
	r := result.Ok[fixtures.Copyable](100)
	log.Debug("constructed", logging.Result("result", r))

	s.True("has value", r.HasValue())
	s.Equal("dereference", r.Unchecked(), 100)
	s.Equal("value", r.Value(), 100)
}

func constructFromTag(s *check.Suite, log *logging.Logger) {
	r := result.FromTag[int](result.Tag("fail"))
	log.Debug("constructed", logging.Result("result", r))

	s.False("has value", r.HasValue())
	s.Equal("error", r.Err(), "fail")
	s.True("equals tag", result.EqualTag(r, result.Tag("fail")))
}

func constructZero(s *check.Suite, log *logging.Logger) {
	var r result.Result[fixtures.Copyable, fixtures.Copyable]
	log.Debug("constructed", logging.Result("result", r))

	s.False("has value", r.HasValue())
	s.Equal("error", r.Err(), fixtures.Copyable{})
}

func convertCopyable(s *check.Suite, log *logging.Logger) {
	src := result.Ok[fixtures.Copyable](fixtures.Copyable{Value: 7})
	dst := result.Convert(src, fixtures.DeriveCopyable, fixtures.DeriveCopyable)
	log.Debug("converted", logging.Result("from", src), logging.Result("to", dst))

	s.Equal("value", dst.Value(), fixtures.CopyableDerived{Value: 7})
	s.Equal("source intact", src.Value(), fixtures.Copyable{Value: 7})

	bad := result.Convert(
		result.Fail[fixtures.Copyable](fixtures.Copyable{Value: 1}),
		fixtures.DeriveCopyable,
		fixtures.DeriveCopyable,
	)
	s.Equal("error", bad.Err(), fixtures.CopyableDerived{Value: 1})
}

func convertUnique(s *check.Suite, log *logging.Logger) {
	src := result.Ok[string](fixtures.NewUnique(11))
	// Convert hands derive a copy of the payload; ownership leaves src only
	// through the explicit Move below.
	derive := func(u fixtures.Unique) fixtures.UniqueDerived { return fixtures.DeriveUnique(&u) }
	dst := result.Convert(src, derive, func(e string) string { return e })

	s.True("derived owns cell", dst.Value().Valid())
	s.Equal("derived value", dst.Value().Value(), 11)
	s.True("source kept after convert", src.Value().Valid())

	moved := result.Ok[string](src.ValueRef().Move())
	log.Debug("moved", logging.Int("value", moved.Value().Value()))

	s.False("source emptied", src.Value().Valid())
	s.Equal("moved value", moved.Value().Value(), 11)
}

func copyIndependent(s *check.Suite, log *logging.Logger) {
	orig := result.Ok[string](fixtures.Copyable{Value: 1})
	cp := orig

	orig.ValueRef().Value = 2
	orig.SetErr(result.Tag("gone"))
	log.Debug("copied", logging.Result("original", orig), logging.Result("copy", cp))

	s.Equal("copy keeps value", cp.Value(), fixtures.Copyable{Value: 1})
	s.True("original replaced", orig.IsErr())
}

func assignTransitions(s *check.Suite, log *logging.Logger) {
	r := result.Ok[string](fixtures.Copyable{Value: 1})

	r.Assign(result.Ok[string](fixtures.Copyable{Value: 2}))
	s.Equal("value over value", r.Value(), fixtures.Copyable{Value: 2})

	r.Assign(result.Fail[fixtures.Copyable]("x"))
	s.Equal("error over value", r.Err(), "x")
	s.Equal("value slot cleared", r.Unchecked(), fixtures.Copyable{})

	r.SetErr(result.Tag("y"))
	s.Equal("error over error", r.Err(), "y")

	r.Set(fixtures.Copyable{Value: 3})
	s.Equal("value over error", r.Value(), fixtures.Copyable{Value: 3})
	log.Debug("assigned", logging.Result("result", r))
}

func swapRoundTrip(s *check.Suite, log *logging.Logger) {
	v1, v2 := result.Ok[string](1), result.Ok[string](2)
	e1, e2 := result.Fail[int]("a"), result.Fail[int]("b")

	for _, p := range [][2]result.Result[int, string]{{v1, v2}, {e1, e2}, {v1, e2}, {e1, v2}} {
		a, b := p[0], p[1]
		a.Swap(&b)
		s.True("swapped a", result.Equal(a, p[1]))
		s.True("swapped b", result.Equal(b, p[0]))

		result.Swap(&a, &b)
		s.True("restored a", result.Equal(a, p[0]))
		s.True("restored b", result.Equal(b, p[1]))
		log.Debug("swapped", logging.Result("a", a), logging.Result("b", b))
	}
}

func badAccess(s *check.Suite, _ *logging.Logger) {
	v := result.Ok[string](1)
	e := result.Fail[int]("x")

	s.BadAccess("value on error", func() { _ = e.Value() })
	s.BadAccess("error on value", func() { _ = v.Err() })
	s.BadAccess("value ref on error", func() { _ = e.ValueRef() })
	s.BadAccess("error ref on value", func() { _ = v.ErrRef() })

	_, err := e.TryValue()
	s.True("try value", result.BadAccess.Has(err))
}

func fallbacks(s *check.Suite, _ *logging.Logger) {
	s.Equal("value or on value", result.Ok[string](1).ValueOr(5), 1)
	s.Equal("value or on error", result.Fail[int]("x").ValueOr(5), 5)
	s.Equal("error or on error", result.Fail[int]("x").ErrOr("d"), "x")
	s.Equal("error or on value", result.Ok[string](1).ErrOr("d"), "d")

	called := false
	_ = result.Ok[string](1).ValueOrElse(func() int { called = true; return 0 })
	s.False("lazy fallback", called)
}

func combinators(s *check.Suite, log *logging.Logger) {
	half := func(n int) result.Result[int, string] {
		if n%2 != 0 {
			return result.Fail[int](strconv.Itoa(n) + " is odd")
		}
		return result.Ok[string](n / 2)
	}

	r := result.AndThen(result.AndThen(result.Ok[string](168), half), half)
	log.Debug("chained", logging.Result("result", r))
	s.Equal("and then", r.Value(), 42)
	s.Equal("and then error", result.AndThen(result.Ok[string](7), half).Err(), "7 is odd")

	called := false
	short := result.AndThen(result.Fail[int]("early"), func(n int) result.Result[int, string] {
		called = true
		return half(n)
	})
	s.False("short circuit", called)
	s.Equal("short circuit error", short.Err(), "early")

	s.Equal("map", result.Map(result.Ok[string](2), strconv.Itoa).Value(), "2")
	s.Equal("map err", result.MapErr(result.Fail[int]("abc"), func(e string) int { return len(e) }).Err(), 3)

	recovered := result.OrElse(result.Fail[int]("x"), func(string) result.Result[int, string] {
		return result.Ok[string](0)
	})
	s.Equal("or else", recovered.Value(), 0)
}

func equality(s *check.Suite, _ *logging.Logger) {
	s.True("value equals raw", result.EqualValue(result.Ok[string](5), 5))
	s.False("error never equals raw", result.EqualValue(result.Fail[int](5), 5))
	s.True("error equals tag", result.EqualTag(result.Fail[int]("x"), result.Tag("x")))
	s.False("value never equals tag", result.EqualTag(result.Ok[string]("x"), result.Tag("x")))
	s.True("reflexive", result.Equal(result.Ok[string](1), result.Ok[string](1)))
	s.False("discriminant aware", result.Equal(result.Ok[int](1), result.Fail[int](1)))
}
