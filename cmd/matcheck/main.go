// SPDX-License-Identifier: MIT

// Command matcheck validates matrices and vectors described in YAML files.
//
// Usage:
//
//	matcheck [--config matcheck.yaml] [--tolerance 1e-8] [--policy raise|sentinel] [-v] FILE...
//
// Every entry of every file is checked; the command exits non-zero when any
// entry fails.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/lvcheck/check"
	"github.com/katalvlaran/lvcheck/internal/config"
	"github.com/katalvlaran/lvcheck/internal/loader"
	"github.com/katalvlaran/lvcheck/internal/logging"
	"github.com/katalvlaran/lvcheck/internal/suite"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// newLogger builds the command's logger; tests substitute it.
var newLogger = logging.New

// errChecksFailed marks a run where at least one entry failed; the report
// has already been printed.
var errChecksFailed = errors.New("matcheck: checks failed")

type app struct {
	v          *viper.Viper
	configPath string
	verbose    bool
	workers    int

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "matcheck FILE...",
		Short: "Validate covariance, correlation and finite-value constraints",
		Long: `matcheck reads YAML documents of named matrices and vectors and runs
each through its declared check (cov, corr, symmetric, pos_definite, finite, ...).

Failures are reported in the form "function: message", one per entry.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWith(a.v, a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			a.logger, err = newLogger(cfg.LogLevel, a.verbose)
			return err
		},
		RunE: a.run,
	}

	flags := cmd.Flags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file (YAML)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.IntVarP(&a.workers, "workers", "w", suite.DefaultWorkers, "files checked concurrently")
	flags.Float64("tolerance", check.DefaultConstraintTolerance, "approximate-equality tolerance")
	flags.String("policy", config.PolicyRaise, "failure policy: raise or sentinel")
	flags.Float64("sentinel", 0, "substitute value under the sentinel policy")
	flags.String("log-level", "info", "log level: debug, info, warn, error")

	for key, flag := range map[string]string{
		config.KeyTolerance: "tolerance",
		config.KeyPolicy:    "policy",
		config.KeySentinel:  "sentinel",
		config.KeyLogLevel:  "log-level",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	return cmd
}

// run flushes the logger itself: cobra skips PersistentPostRun when RunE
// fails, and failing runs are the ones whose logs matter.
func (a *app) run(cmd *cobra.Command, args []string) error {
	defer func() { _ = a.logger.Sync() }()

	docs := make([]*loader.Document, 0, len(args))
	var loadErr error
	for _, path := range args {
		doc, err := loader.Load(path)
		if err != nil {
			loadErr = multierr.Append(loadErr, err)
			continue
		}
		docs = append(docs, doc)
	}
	if loadErr != nil {
		return loadErr
	}

	v := check.New(a.cfg.CheckOptions(a.logger)...)
	runner := suite.NewRunner(v, a.logger, a.workers)
	all, err := runner.RunAll(cmd.Context(), docs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	total, failed := 0, 0
	for _, results := range all {
		for _, res := range results {
			total++
			if res.Passed() {
				fmt.Fprintf(out, "PASS %s/%s (%s)\n", res.Source, res.Name, res.Check)
				continue
			}
			failed++
			line := fmt.Sprintf("FAIL %s/%s (%s): %v", res.Source, res.Name, res.Check, res.Err)
			if s, ok := check.SentinelOf(res.Err); ok && a.cfg.Policy == config.PolicySentinel {
				line += fmt.Sprintf(" [substitute %g]", s)
			}
			fmt.Fprintln(out, line)
		}
	}
	a.logger.Info("matcheck finished",
		zap.Int("files", len(docs)),
		zap.Int("entries", total),
		zap.Int("failed", failed))

	if failed > 0 {
		fmt.Fprintf(out, "%d of %d entries failed\n", failed, total)
		return errChecksFailed
	}

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errChecksFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
