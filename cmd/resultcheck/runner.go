// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"regexp"

	"go.uber.org/multierr"

	"code.hybscloud.com/result/internal/check"
	"code.hybscloud.com/result/internal/logging"
)

type scenario struct {
	name string
	run  func(s *check.Suite, log *logging.Logger)
}

type summary struct {
	ran     int
	failed  int
	skipped int
}

type runner struct {
	log      *logging.Logger
	filter   *regexp.Regexp
	failFast bool
}

func (r runner) run(scenarios []scenario) (summary, error) {
	var (
		sum summary
		err error
	)
	for _, sc := range scenarios {
		if r.filter != nil && !r.filter.MatchString(sc.name) {
			sum.skipped++
			continue
		}
		log := r.log.With(logging.String("scenario", sc.name))
		s := check.New(sc.name)
		runGuarded(sc, s, log)
		sum.ran++

		if s.Failed() {
			sum.failed++
			log.Error("scenario failed", logging.Int("checks", s.Checks()), logging.Error(s.Err()))
			err = multierr.Append(err, s.Err())
			if r.failFast {
				log.Warn("stopping after first failure")
				break
			}
			continue
		}
		log.Info("scenario passed", logging.Int("checks", s.Checks()))
	}
	return sum, err
}

// runGuarded turns a panic escaping the scenario into a failed check.
func runGuarded(sc scenario, s *check.Suite, log *logging.Logger) {
	defer func() {
		if p := recover(); p != nil {
			log.Warn("scenario panicked", logging.Any("panic", p))
			s.Fail("unexpected panic", "%v", p)
		}
	}()
	sc.run(s, log)
}
