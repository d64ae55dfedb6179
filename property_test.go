// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package result_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/result"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randString returns a random ASCII string of length [0, 8].
func randString(rng *rand.Rand) string {
	n := rng.IntN(9)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.IntN(95) + 32) // printable ASCII
	}
	return string(b)
}

// randResult returns a success or an error result with equal probability.
func randResult(rng *rand.Rand) result.Result[int, string] {
	if rng.IntN(2) == 0 {
		return result.Ok[string](randInt(rng))
	}
	return result.Fail[int](randString(rng))
}

// --- Group 1: Construction ---

// TestPropertyOkRoundTrip: Ok(v).HasValue() && Ok(v).Value() == v
func TestPropertyOkRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		v := randInt(rng)
		r := result.Ok[string](v)
		if !r.HasValue() || r.Value() != v {
			t.Fatalf("ok round trip: got %v, want value %d", r, v)
		}
	}
}

// TestPropertyTagRoundTrip: FromTag(Tag(e)).IsErr() && .Err() == e
func TestPropertyTagRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		e := randString(rng)
		r := result.FromTag[int](result.Tag(e))
		if r.HasValue() || r.Err() != e {
			t.Fatalf("tag round trip: got %v, want error %q", r, e)
		}
	}
}

// TestPropertyValueOr: ValueOr(d) is the value on success, d on error
func TestPropertyValueOr(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		r := randResult(rng)
		d := randInt(rng)
		want := d
		if v, ok := r.Get(); ok {
			want = v
		}
		if got := r.ValueOr(d); got != want {
			t.Fatalf("value or: %d != %d (r=%v, d=%d)", got, want, r, d)
		}
	}
}

// --- Group 2: Swap ---

// TestPropertySwapInvolution: Swap(Swap(a, b)) ≡ (a, b)
func TestPropertySwapInvolution(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a0, b0 := randResult(rng), randResult(rng)
		a, b := a0, b0
		result.Swap(&a, &b)
		if !result.Equal(a, b0) || !result.Equal(b, a0) {
			t.Fatalf("swap: got (%v, %v), want (%v, %v)", a, b, b0, a0)
		}
		result.Swap(&a, &b)
		if !result.Equal(a, a0) || !result.Equal(b, b0) {
			t.Fatalf("double swap: got (%v, %v), want (%v, %v)", a, b, a0, b0)
		}
	}
}

// --- Group 3: Monad Laws ---

// TestPropertyLeftIdentity: AndThen(Ok(a), f) ≡ f(a)
func TestPropertyLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) result.Result[int, string] {
		if x%7 == 0 {
			return result.Fail[int]("seven")
		}
		return result.Ok[string](x * 3)
	}
	for range propertyN {
		a := randInt(rng)
		left := result.AndThen(result.Ok[string](a), f)
		right := f(a)
		if !result.Equal(left, right) {
			t.Fatalf("left identity: %v != %v (a=%d)", left, right, a)
		}
	}
}

// TestPropertyRightIdentity: AndThen(m, Ok) ≡ m
func TestPropertyRightIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		m := randResult(rng)
		left := result.AndThen(m, result.Ok[string, int])
		if !result.Equal(left, m) {
			t.Fatalf("right identity: %v != %v", left, m)
		}
	}
}

// TestPropertyAssociativity: AndThen(AndThen(m, f), g) ≡ AndThen(m, func(x) AndThen(f(x), g))
func TestPropertyAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) result.Result[int, string] { return result.Ok[string](x + 3) }
	g := func(x int) result.Result[int, string] {
		if x < 0 {
			return result.Fail[int]("negative")
		}
		return result.Ok[string](x * 2)
	}
	for range propertyN {
		m := randResult(rng)
		left := result.AndThen(result.AndThen(m, f), g)
		right := result.AndThen(m, func(x int) result.Result[int, string] {
			return result.AndThen(f(x), g)
		})
		if !result.Equal(left, right) {
			t.Fatalf("associativity: %v != %v (m=%v)", left, right, m)
		}
	}
}

// TestPropertyErrorPropagation: AndThen(Fail(e), f) ≡ Fail(e) and f is never called
func TestPropertyErrorPropagation(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		e := randString(rng)
		called := false
		got := result.AndThen(result.Fail[int](e), func(x int) result.Result[int, string] {
			called = true
			return result.Ok[string](x)
		})
		if called {
			t.Fatalf("and then called f on error %q", e)
		}
		if !result.EqualTag(got, result.Tag(e)) {
			t.Fatalf("error propagation: %v, want error %q", got, e)
		}
	}
}

// --- Group 4: Functor Laws ---

// TestPropertyFunctorIdentity: Map(m, id) ≡ m
func TestPropertyFunctorIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		m := randResult(rng)
		got := result.Map(m, func(x int) int { return x })
		if !result.Equal(got, m) {
			t.Fatalf("functor identity: %v != %v", got, m)
		}
	}
}

// TestPropertyFunctorComposition: Map(Map(m, f), g) ≡ Map(m, g∘f)
func TestPropertyFunctorComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) int { return x + 3 }
	g := func(x int) int { return x * 2 }
	gf := func(x int) int { return g(f(x)) }
	for range propertyN {
		m := randResult(rng)
		left := result.Map(result.Map(m, f), g)
		right := result.Map(m, gf)
		if !result.Equal(left, right) {
			t.Fatalf("functor composition: %v != %v (m=%v)", left, right, m)
		}
	}
}

// TestPropertyMapErrComposition: MapErr(MapErr(m, f), g) ≡ MapErr(m, g∘f)
func TestPropertyMapErrComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(e string) string { return e + "!" }
	g := func(e string) int { return len(e) }
	gf := func(e string) int { return g(f(e)) }
	for range propertyN {
		m := randResult(rng)
		left := result.MapErr(result.MapErr(m, f), g)
		right := result.MapErr(m, gf)
		if !result.Equal(left, right) {
			t.Fatalf("map err composition: %v != %v (m=%v)", left, right, m)
		}
	}
}

// --- Group 5: Equality ---

// TestPropertyEqualitySymmetric: Equal(a, b) == Equal(b, a), Equal(a, a)
func TestPropertyEqualitySymmetric(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, b := randResult(rng), randResult(rng)
		if !result.Equal(a, a) {
			t.Fatalf("equality not reflexive: %v", a)
		}
		if result.Equal(a, b) != result.Equal(b, a) {
			t.Fatalf("equality not symmetric: %v, %v", a, b)
		}
	}
}

// TestPropertyErrorNeverEqualsValue: EqualValue(Fail(e), v) is false for all v
func TestPropertyErrorNeverEqualsValue(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		v := randInt(rng)
		if result.EqualValue(result.Fail[int](randString(rng)), v) {
			t.Fatalf("error result equals value %d", v)
		}
		if !result.EqualValue(result.Ok[string](v), v) {
			t.Fatalf("success result does not equal its value %d", v)
		}
	}
}
