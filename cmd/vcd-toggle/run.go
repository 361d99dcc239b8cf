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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/0xsoniclabs/vcd-toggle/config"
	"github.com/0xsoniclabs/vcd-toggle/executor"
	"github.com/0xsoniclabs/vcd-toggle/executor/extension/metrics"
	"github.com/0xsoniclabs/vcd-toggle/executor/extension/profiler"
	"github.com/0xsoniclabs/vcd-toggle/executor/extension/reporter"
	"github.com/0xsoniclabs/vcd-toggle/executor/extension/statistics"
	"github.com/0xsoniclabs/vcd-toggle/executor/extension/tracker"
	"github.com/0xsoniclabs/vcd-toggle/tracer"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

func run(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return cli.Exit(fmt.Sprintf("%v\nusage: %s %s", err, ctx.App.HelpName, ctx.App.ArgsUsage), 1)
	}
	return analyse(cfg)
}

// analyse runs the toggle analysis described by cfg.
func analyse(cfg *config.Config) (err error) {
	reader, err := tracer.NewFileReader(cfg.TraceFile)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, reader.Close())
	}()

	out, closeOutput, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeOutput())
	}()

	extensions := []executor.Extension{
		reporter.MakeActivityReporter(out),
		tracker.MakeProgressTracker(cfg),
		profiler.MakeActivityProfiler(cfg),
		profiler.MakeMemoryProfiler(cfg),
		statistics.MakeToggleStatistics(cfg),
		metrics.MakeMetricsExporter(cfg),
	}

	_, err = executor.NewExecutor(reader, cfg.LogLevel).Run(cfg.ExecutorParams(), extensions)
	return err
}

// openOutput returns the writer receiving the activity report together
// with a function flushing and closing it. Reports on stdout share the
// stream with the log, so they are written unbuffered one line at a time.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot create output file %s; %w", path, err)
	}
	w := bufio.NewWriter(file)
	return w, func() error {
		return errors.Join(w.Flush(), file.Close())
	}, nil
}
