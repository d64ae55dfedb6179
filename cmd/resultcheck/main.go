// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command resultcheck runs the result scenarios outside of go test and
// reports each one as a structured log line.
package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap/zapcore"

	"code.hybscloud.com/result/internal/logging"
)

func main() {
	if err := newApp(nil).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp builds the CLI. A nil logger means one is built from the flags.
func newApp(log *logging.Logger) *cli.App {
	return &cli.App{
		Name:  "resultcheck",
		Usage: "run result scenarios and report failures",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log every scenario payload at debug level",
				EnvVars: []string{"RESULTCHECK_VERBOSE"},
			},
			&cli.StringFlag{
				Name:    "run",
				Usage:   "only run scenarios whose name matches this regexp",
				EnvVars: []string{"RESULTCHECK_RUN"},
			},
			&cli.BoolFlag{
				Name:    "fail-fast",
				Usage:   "stop after the first failing scenario",
				EnvVars: []string{"RESULTCHECK_FAIL_FAST"},
			},
		},
		Before: func(c *cli.Context) error {
			l := log
			if l == nil {
				var err error
				if l, err = buildLogger(c.Bool("verbose")); err != nil {
					return cli.Exit(err, 2)
				}
			}
			c.Context = l.WithContext(c.Context)
			return nil
		},
		Action: runChecks,
	}
}

func buildLogger(verbose bool) (*logging.Logger, error) {
	cfg := logging.DefaultConfig()
	cfg.Level = zapcore.InfoLevel
	if verbose {
		cfg.Level = zapcore.DebugLevel
	}
	return logging.Build(cfg)
}

func runChecks(c *cli.Context) error {
	log := logging.FromContext(c.Context)
	defer func() { _ = log.Sync() }()

	r := runner{log: log, failFast: c.Bool("fail-fast")}
	if pattern := c.String("run"); pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return cli.Exit(fmt.Sprintf("invalid --run pattern: %v", err), 2)
		}
		r.filter = re
	}

	sum, err := r.run(scenarios())
	log.Info("checks finished",
		logging.Int("ran", sum.ran),
		logging.Int("failed", sum.failed),
		logging.Int("skipped", sum.skipped),
	)
	if err != nil {
		return cli.Exit(fmt.Sprintf("%d of %d scenarios failed", sum.failed, sum.ran), 1)
	}
	return nil
}
