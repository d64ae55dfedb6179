// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package result provides a generic sum type holding either a success value
// or an error payload.
//
// The core type [Result] carries a discriminant and two payload slots, of
// which exactly one is live. [ErrorTag] marks a value as the error outcome so
// that construction is never ambiguous, even when the success and error types
// coincide.
//
// # Representation
//
// Go has no unions. A [Result] stores both slots side by side and keeps the
// inactive slot at its zero value at all times. Consequently:
//
//   - the inactive payload never keeps memory reachable
//   - built-in == on comparable results agrees with [Equal]
//   - the zero Result is a valid error result whose payload is the zero E
//
// # Construction
//
//   - [Ok]: Success result (E first, so Ok[string](100) infers T)
//   - [Fail]: Error result
//   - [Tag], [FromTag]: Error result through an explicit tag
//   - [ConvertTag]: Tag of another error type
//   - [Convert]: Result of other payload types
//
// # Mutation
//
// Every mutation builds the replacement value first and then stores it
// whole, so a panic raised by a payload function never leaves a receiver
// half-written.
//
//   - [Result.Assign]: Copy another result
//   - [Result.Set]: Become a success result
//   - [Result.SetErr]: Become an error result
//   - [Result.Swap], [Swap]: Exchange two results, discriminants included
//
// # Access
//
// Checked accessors panic with a [BadAccess] error when asked for the payload
// that is not live. Each has a non-panicking twin.
//
//   - [Result.HasValue], [Result.IsErr]: Predicates
//   - [Result.Value], [Result.Err]: Copy out (panic on misuse)
//   - [Result.TryValue], [Result.TryErr]: Copy out (return BadAccess)
//   - [Result.Get], [Result.GetErr]: Comma-ok forms
//   - [Result.ValueRef], [Result.ErrRef]: Mutable borrow (panic on misuse)
//   - [Result.Unchecked], [Result.UncheckedRef]: No discriminant check
//   - [Result.ValueOr], [Result.ErrOr]: Fallback to a default
//   - [Result.ValueOrElse], [Result.ErrOrElse]: Fallback computed on demand
//
// # Combinators
//
//   - [AndThen]: Monadic bind on the success path; short-circuits on error
//   - [OrElse]: Bind on the error path
//   - [Map], [MapErr]: Transform one payload
//   - [Match]: Eliminate into a single value
//   - [Flatten]: Remove one level of nesting
//
// # Comparison
//
//   - [Equal]: Discriminant-aware equality for comparable payloads
//   - [EqualFunc]: Equality across payload types
//   - [EqualValue]: Compare against a raw success value
//   - [EqualTag]: Compare against an [ErrorTag]
//
// # Interop
//
//   - [FromPair], [Pair]: Convert from and to (value, error)
//   - [Collect], [Partition], [JoinErrs]: Work on slices of results
//
// A Result is a plain value. It has no internal synchronization; callers
// sharing one instance across goroutines must provide their own exclusion.
//
// # Example
//
//	parse := func(s string) result.Result[int, string] {
//		n, err := strconv.Atoi(s)
//		if err != nil {
//			return result.Fail[int]("not a number: " + s)
//		}
//		return result.Ok[string](n)
//	}
//
//	r := result.Map(parse("21"), func(n int) int { return n * 2 })
//	// r.Value() == 42
//
//	r = result.AndThen(parse("x"), func(n int) result.Result[int, string] {
//		return result.Ok[string](n + 1) // not called
//	})
//	// r.Err() == "not a number: x"
package result
