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
	"fmt"
	"strconv"

	"github.com/0xsoniclabs/vcd-toggle/executor"
	"github.com/0xsoniclabs/vcd-toggle/logger"
	"github.com/urfave/cli/v2"
)

const defaultThreshold = 1

// Config holds all parameters of an analysis run.
type Config struct {
	AppName  string
	LogLevel string

	TraceFile       string  // value change dump to analyse
	CounterFragment string  // selects the cycle counter signal
	Threshold       int     // minimum toggles of a reported cycle
	SignalThreshold int     // minimum toggles of a reported change
	Cycles          []int64 // cycles with per-signal reports

	ConfigFile       string // YAML profile
	Output           string // report file, stdout if empty
	ActivityDb       string // sqlite3 activity database
	MetricsFile      string // prometheus textfile
	Statistics       bool   // log per-cycle toggle distribution
	ProgressInterval uint64 // cycles between progress reports
	MemoryProfile    string // heap profile written at the end of the run
}

// NewConfig creates a Config from the command line. Flag defaults are
// overridden by the profile given with --config, which in turn is
// overridden by explicit flags and by the positional arguments
// <trace-file> <counter-fragment> [threshold] [cycle...].
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := createConfigFromFlags(ctx)

	if cfg.ConfigFile != "" {
		p, err := loadProfile(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		p.apply(cfg, ctx)
	}

	if err := cfg.parseArgs(ctx.Args().Slice()); err != nil {
		return nil, err
	}

	if cfg.SignalThreshold < 0 {
		cfg.SignalThreshold = cfg.Threshold
	}
	return cfg, nil
}

// createConfigFromFlags returns Config instance with user specified values or the default ones
func createConfigFromFlags(ctx *cli.Context) *Config {
	return &Config{
		AppName:          ctx.App.HelpName,
		LogLevel:         getFlagValue(ctx, logger.LogLevelFlag).(string),
		Threshold:        defaultThreshold,
		SignalThreshold:  int(getFlagValue(ctx, SignalThresholdFlag).(int64)),
		ConfigFile:       getFlagValue(ctx, ConfigFileFlag).(string),
		Output:           getFlagValue(ctx, OutputFlag).(string),
		ActivityDb:       getFlagValue(ctx, ActivityDbFlag).(string),
		MetricsFile:      getFlagValue(ctx, MetricsFileFlag).(string),
		Statistics:       getFlagValue(ctx, StatisticsFlag).(bool),
		ProgressInterval: getFlagValue(ctx, ProgressIntervalFlag).(uint64),
		MemoryProfile:    getFlagValue(ctx, MemoryProfileFlag).(string),
	}
}

// parseArgs reads the positional arguments. The trace file is required,
// the counter fragment only if no profile provides it.
func (cfg *Config) parseArgs(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing trace file")
	}
	cfg.TraceFile = args[0]
	if len(args) > 1 {
		cfg.CounterFragment = args[1]
	}
	if cfg.CounterFragment == "" {
		return fmt.Errorf("missing counter signal name")
	}
	if len(args) > 2 {
		threshold, err := parseNumber(args[2])
		if err != nil {
			return fmt.Errorf("cannot parse toggle threshold; %w", err)
		}
		cfg.Threshold = int(threshold)
	}
	if len(args) > 3 {
		cycles, err := parseCycles(args[3:])
		if err != nil {
			return err
		}
		cfg.Cycles = cycles
	}
	return nil
}

// parseCycles reads cycle numbers up to the first negative one.
func parseCycles(args []string) ([]int64, error) {
	var cycles []int64
	for _, arg := range args {
		c, err := parseNumber(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot parse cycle %q; %w", arg, err)
		}
		if c < 0 {
			break
		}
		cycles = append(cycles, c)
	}
	return cycles, nil
}

// parseNumber accepts decimal numbers and base prefixes like 0x.
func parseNumber(s string) (int64, error) {
	return strconv.ParseInt(s, 0, 64)
}

// ExecutorParams returns the parameters of the analysis run.
func (cfg *Config) ExecutorParams() executor.Params {
	return executor.Params{
		CounterFragment: cfg.CounterFragment,
		Threshold:       cfg.Threshold,
		SignalThreshold: cfg.SignalThreshold,
		Cycles:          cfg.Cycles,
	}
}
