// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// syncCounter is a log sink that counts flushes.
type syncCounter struct {
	bytes.Buffer
	syncs int
}

func (s *syncCounter) Sync() error {
	s.syncs++
	return nil
}

// useLogger routes the command's logger into sink for the duration of t.
func useLogger(t *testing.T, sink *syncCounter) {
	t.Helper()
	prev := newLogger
	newLogger = func(string, bool) (*zap.Logger, error) {
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		return zap.New(zapcore.NewCore(enc, sink, zapcore.DebugLevel)), nil
	}
	t.Cleanup(func() { newLogger = prev })
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun_AllPass(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "model.yaml", `
entries:
  - {name: Sigma, check: cov, rows: [[2, 1], [1, 2]]}
  - {name: theta, check: finite, values: [1, 2]}
`)

	out, err := execute(t, path)
	require.NoError(t, err)
	require.Contains(t, out, "PASS model/Sigma (cov)")
	require.Contains(t, out, "PASS model/theta (finite)")
}

func TestRun_Failure(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "model.yaml", `
entries:
  - {name: Sigma, check: cov, function: multi_normal, rows: [[1, 2], [3, 1]]}
  - {name: ok, check: not_nan, values: [1]}
`)

	out, err := execute(t, path)
	require.ErrorIs(t, err, errChecksFailed)
	require.Contains(t, out, "FAIL model/Sigma (cov): multi_normal: Sigma is not symmetric. Sigma[0,1] is 2, but Sigma[1,0] element is 3")
	require.Contains(t, out, "PASS model/ok (not_nan)")
	require.Contains(t, out, "1 of 2 entries failed")
}

func TestRun_ToleranceFlag(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "m.yaml", "entries:\n  - {name: S, check: symmetric, rows: [[1, 2.001], [2, 1]]}\n")

	_, err := execute(t, path)
	require.ErrorIs(t, err, errChecksFailed)

	out, err := execute(t, "--tolerance", "0.01", path)
	require.NoError(t, err)
	require.Contains(t, out, "PASS m/S (symmetric)")
}

func TestRun_SentinelPolicyFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "matcheck.yaml", "policy: sentinel\nsentinel: -1\n")
	path := writeFile(t, dir, "m.yaml", "entries:\n  - {name: y, check: not_nan, values: [.nan]}\n")

	out, err := execute(t, "--config", cfg, path)
	require.ErrorIs(t, err, errChecksFailed)
	require.Contains(t, out, "[substitute -1]")
}

func TestRun_BadInputs(t *testing.T) {
	_, err := execute(t)
	require.Error(t, err, "at least one file is required")

	_, err = execute(t, filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	dir := t.TempDir()
	path := writeFile(t, dir, "m.yaml", "entries: []\n")
	_, err = execute(t, "--policy", "ignore", path)
	require.Error(t, err)
	require.NotErrorIs(t, err, errChecksFailed)
}

func TestRun_SyncsLoggerOnFailure(t *testing.T) {
	sink := &syncCounter{}
	useLogger(t, sink)

	dir := t.TempDir()
	path := writeFile(t, dir, "m.yaml", "entries:\n  - {name: y, check: not_nan, values: [.nan]}\n")

	_, err := execute(t, path)
	require.ErrorIs(t, err, errChecksFailed)
	require.GreaterOrEqual(t, sink.syncs, 1)
	require.Contains(t, sink.String(), "matcheck finished")
}

func TestRun_SyncsLoggerOnSuccess(t *testing.T) {
	sink := &syncCounter{}
	useLogger(t, sink)

	dir := t.TempDir()
	path := writeFile(t, dir, "m.yaml", "entries:\n  - {name: y, check: finite, values: [1]}\n")

	_, err := execute(t, path)
	require.NoError(t, err)
	require.Equal(t, 1, sink.syncs)
}
