// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package check is a small assertion harness for programs that exercise
// results outside of go test.
//
// A Suite records failures instead of stopping at the first one; Err
// combines them.
package check

import (
	"fmt"

	"github.com/stretchr/testify/assert"
	"github.com/zeebo/errs"
	"go.uber.org/multierr"

	"code.hybscloud.com/result"
)

// Failure is the error class of every recorded check failure.
var Failure = errs.Class("check failed")

// Suite collects the outcome of a sequence of checks.
type Suite struct {
	name   string
	checks int
	err    error
}

// New creates an empty suite.
func New(name string) *Suite {
	return &Suite{name: name}
}

// Name returns the suite name.
func (s *Suite) Name() string {
	return s.name
}

// Checks returns the number of checks run so far.
func (s *Suite) Checks() int {
	return s.checks
}

// Failed reports whether any check failed.
func (s *Suite) Failed() bool {
	return s.err != nil
}

// Err returns every failure combined, or nil.
func (s *Suite) Err() error {
	return s.err
}

func (s *Suite) record(ok bool, label, format string, args ...any) bool {
	s.checks++
	if !ok {
		msg := fmt.Sprintf(format, args...)
		s.err = multierr.Append(s.err, Failure.New("%s/%s: %s", s.name, label, msg))
	}
	return ok
}

// Fail records an unconditional failure.
func (s *Suite) Fail(label, format string, args ...any) {
	s.record(false, label, format, args...)
}

// Equal checks that got equals want, comparing as testify does.
func (s *Suite) Equal(label string, got, want any) bool {
	return s.record(assert.ObjectsAreEqual(want, got), label, "got %#v, want %#v", got, want)
}

// True checks that cond holds.
func (s *Suite) True(label string, cond bool) bool {
	return s.record(cond, label, "expected true")
}

// False checks that cond does not hold.
func (s *Suite) False(label string, cond bool) bool {
	return s.record(!cond, label, "expected false")
}

// BadAccess checks that f panics with a result.BadAccess error.
func (s *Suite) BadAccess(label string, f func()) (ok bool) {
	defer func() {
		r := recover()
		err, isErr := r.(error)
		switch {
		case r == nil:
			ok = s.record(false, label, "expected bad access, no panic")
		case !isErr || !result.BadAccess.Has(err):
			ok = s.record(false, label, "expected bad access, got panic %v", r)
		default:
			ok = s.record(true, label, "")
		}
	}()
	f()
	return false
}
