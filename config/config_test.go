// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xsoniclabs/vcd-toggle/executor"
	"github.com/0xsoniclabs/vcd-toggle/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newTestContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	app := cli.NewApp()
	app.HelpName = "vcd-toggle"
	cmd := &cli.Command{
		Name: "vcd-toggle",
		Flags: []cli.Flag{
			&logger.LogLevelFlag,
			&ConfigFileFlag,
			&OutputFlag,
			&SignalThresholdFlag,
			&ActivityDbFlag,
			&MetricsFileFlag,
			&StatisticsFlag,
			&ProgressIntervalFlag,
			&MemoryProfileFlag,
		},
	}
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range cmd.Flags {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse(args))

	ctx := cli.NewContext(app, set, nil)
	ctx.Command = cmd
	return ctx
}

func writeProfile(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestNewConfig_PositionalArguments(t *testing.T) {
	cfg, err := NewConfig(newTestContext(t, "trace.vcd", "clk"))
	require.NoError(t, err)

	assert.Equal(t, "vcd-toggle", cfg.AppName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "trace.vcd", cfg.TraceFile)
	assert.Equal(t, "clk", cfg.CounterFragment)
	assert.Equal(t, 1, cfg.Threshold)
	assert.Equal(t, 1, cfg.SignalThreshold)
	assert.Empty(t, cfg.Cycles)
	assert.Empty(t, cfg.Output)
	assert.False(t, cfg.Statistics)
}

func TestNewConfig_ThresholdAndCycles(t *testing.T) {
	cfg, err := NewConfig(newTestContext(t, "trace.vcd", "cnt", "0x10", "5", "7", "-1", "9"))
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Threshold)
	assert.Equal(t, 16, cfg.SignalThreshold)
	assert.Equal(t, []int64{5, 7}, cfg.Cycles)
	assert.Equal(t, executor.Params{
		CounterFragment: "cnt",
		Threshold:       16,
		SignalThreshold: 16,
		Cycles:          []int64{5, 7},
	}, cfg.ExecutorParams())
}

func TestNewConfig_Flags(t *testing.T) {
	cfg, err := NewConfig(newTestContext(t,
		"--log", "debug", "--signal-threshold", "3", "--output", "out.txt", "--activity-db", "a.db",
		"--metrics-file", "m.prom", "--stats", "--progress-interval", "100", "trace.vcd", "clk", "8"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8, cfg.Threshold)
	assert.Equal(t, 3, cfg.SignalThreshold)
	assert.Equal(t, "out.txt", cfg.Output)
	assert.Equal(t, "a.db", cfg.ActivityDb)
	assert.Equal(t, "m.prom", cfg.MetricsFile)
	assert.True(t, cfg.Statistics)
	assert.Equal(t, uint64(100), cfg.ProgressInterval)
}

func TestNewConfig_InvalidArguments(t *testing.T) {
	tests := map[string][]string{
		"no arguments":    {},
		"no counter":      {"trace.vcd"},
		"bad threshold":   {"trace.vcd", "clk", "many"},
		"bad cycle":       {"trace.vcd", "clk", "1", "2", "x"},
		"missing profile": {"--config", "/does/not/exist.yaml", "trace.vcd", "clk"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewConfig(newTestContext(t, args...))
			assert.Error(t, err)
		})
	}
}

func TestNewConfig_Profile(t *testing.T) {
	path := writeProfile(t, `
counter: cycle_cnt
threshold: 12
signal-threshold: 4
cycles: [3, 1, -1, 8]
activity-db: profile.db
stats: true
progress-interval: 50
`)
	cfg, err := NewConfig(newTestContext(t, "--config", path, "trace.vcd"))
	require.NoError(t, err)

	assert.Equal(t, "cycle_cnt", cfg.CounterFragment)
	assert.Equal(t, 12, cfg.Threshold)
	assert.Equal(t, 4, cfg.SignalThreshold)
	assert.Equal(t, []int64{3, 1}, cfg.Cycles)
	assert.Equal(t, "profile.db", cfg.ActivityDb)
	assert.True(t, cfg.Statistics)
	assert.Equal(t, uint64(50), cfg.ProgressInterval)
}

func TestNewConfig_ArgumentsOverrideProfile(t *testing.T) {
	path := writeProfile(t, "counter: cycle_cnt\nthreshold: 12\ncycles: [3]\nactivity-db: profile.db\n")
	cfg, err := NewConfig(newTestContext(t, "--config", path, "--activity-db", "flag.db", "trace.vcd", "clk", "2", "9"))
	require.NoError(t, err)

	assert.Equal(t, "clk", cfg.CounterFragment)
	assert.Equal(t, 2, cfg.Threshold)
	assert.Equal(t, 2, cfg.SignalThreshold)
	assert.Equal(t, []int64{9}, cfg.Cycles)
	assert.Equal(t, "flag.db", cfg.ActivityDb)
}

func TestNewConfig_UnknownProfileFieldIsRejected(t *testing.T) {
	path := writeProfile(t, "counter: clk\nthreshhold: 3\n")
	_, err := NewConfig(newTestContext(t, "--config", path, "trace.vcd"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot decode profile")
}
