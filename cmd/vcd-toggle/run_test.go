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
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/0xsoniclabs/vcd-toggle/executor/extension/profiler"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const counterTrace = `$scope module top $end
$var wire 2 ! cnt $end
$var wire 1 " a $end
$upscope $end
$enddefinitions $end
#0
b00 !
0"
#10
b01 !
1"
#20
b10 !
0"
`

const expectedReport = "" +
	"#       0 [togd]  2\n" +
	"[sigd]        2  1_top.cnt\n" +
	"#       1 [togd]  3\n"

func newRunContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	app := &ToggleApp
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range app.Flags {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse(args))

	ctx := cli.NewContext(app, set, nil)
	ctx.Command = &cli.Command{Name: app.HelpName, Flags: app.Flags}
	return ctx
}

func writeTrace(t *testing.T, compress bool) string {
	t.Helper()
	dir := t.TempDir()
	if !compress {
		path := filepath.Join(dir, "trace.vcd")
		require.NoError(t, os.WriteFile(path, []byte(counterTrace), 0o600))
		return path
	}
	path := filepath.Join(dir, "trace.vcd.gz")
	file, err := os.Create(path)
	require.NoError(t, err)
	w := gzip.NewWriter(file)
	_, err = w.Write([]byte(counterTrace))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, file.Close())
	return path
}

func TestRun_MissingTraceFile(t *testing.T) {
	err := run(newRunContext(t, "--log", "critical"))
	require.Error(t, err)
	exitErr, ok := err.(cli.ExitCoder)
	require.True(t, ok)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, exitErr.Error(), "missing trace file")
	assert.Contains(t, exitErr.Error(), "usage: vcd-toggle")
}

func TestRun_MissingCounterSignal(t *testing.T) {
	err := run(newRunContext(t, "--log", "critical", "trace.vcd"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing counter signal name")
}

func TestRun_TraceFileDoesNotExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.vcd")
	err := run(newRunContext(t, "--log", "critical", path, "cnt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not stat file")
}

func TestRun_WritesReport(t *testing.T) {
	for name, compress := range map[string]bool{"plain": false, "gzip": true} {
		t.Run(name, func(t *testing.T) {
			trace := writeTrace(t, compress)
			output := filepath.Join(t.TempDir(), "report.txt")

			err := run(newRunContext(t, "--log", "critical", "--output", output, trace, "cnt", "2", "1", "-1"))
			require.NoError(t, err)

			report, err := os.ReadFile(output)
			require.NoError(t, err)
			assert.Equal(t, expectedReport, string(report))
		})
	}
}

func TestRun_ThresholdFromProfile(t *testing.T) {
	trace := writeTrace(t, false)
	dir := t.TempDir()
	profile := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(profile, []byte("counter: cnt\nthreshold: 3\n"), 0o600))
	output := filepath.Join(dir, "report.txt")

	err := run(newRunContext(t, "--log", "critical", "--config", profile, "--output", output, trace))
	require.NoError(t, err)

	report, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "#       1 [togd]  3\n", string(report))
}

func TestRun_WritesActivityDbAndMetrics(t *testing.T) {
	trace := writeTrace(t, false)
	dir := t.TempDir()
	db := filepath.Join(dir, "activity.db")
	prom := filepath.Join(dir, "vcd.prom")

	err := run(newRunContext(t,
		"--log", "critical",
		"--output", filepath.Join(dir, "report.txt"),
		"--activity-db", db,
		"--metrics-file", prom,
		"--stats",
		trace, "cnt", "2",
	))
	require.NoError(t, err)

	cycles, err := profiler.ReadCycles(db)
	require.NoError(t, err)
	require.Len(t, cycles, 2)
	assert.Equal(t, 2, cycles[0].Toggles)
	assert.Equal(t, 3, cycles[1].Toggles)

	metrics, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "vcd_toggle_cycles_total 2")
}

// captureStdout redirects os.Stdout into a file until the test ends.
func captureStdout(t *testing.T) *os.File {
	t.Helper()
	file, err := os.Create(filepath.Join(t.TempDir(), "stdout.txt"))
	require.NoError(t, err)
	stdout := os.Stdout
	os.Stdout = file
	t.Cleanup(func() {
		os.Stdout = stdout
		_ = file.Close()
	})
	return file
}

func TestRun_ReportOnStdoutKeepsLinesWhole(t *testing.T) {
	const cycles = 4000
	var trace strings.Builder
	trace.WriteString("$var wire 1 ! a $end\n$enddefinitions $end\n")
	for i := 0; i < cycles; i++ {
		fmt.Fprintf(&trace, "#%d\n%d!\n", i, i%2)
		if i%7 == 0 {
			trace.WriteString("zz bad record\n")
		}
	}
	path := filepath.Join(t.TempDir(), "trace.vcd")
	require.NoError(t, os.WriteFile(path, []byte(trace.String()), 0o600))

	stdout := captureStdout(t)
	require.NoError(t, run(newRunContext(t, "--log", "info", path, "nothing", "1")))

	data, err := os.ReadFile(stdout.Name())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")

	cycleLine := regexp.MustCompile(`^# +[0-9]+ \[togd\]  1$`)
	reports, recordErrors, lastReport, total := 0, 0, -1, -1
	for i, line := range lines {
		switch {
		case strings.Contains(line, "[togd]"):
			require.Regexp(t, cycleLine, line)
			reports++
			lastReport = i
		case strings.Contains(line, "bad record"):
			require.True(t, strings.HasSuffix(line, "ERROR  format: zz bad record"), "torn line %q", line)
			recordErrors++
		case strings.Contains(line, "total:"):
			total = i
		}
	}
	assert.Equal(t, cycles-1, reports)
	assert.Equal(t, (cycles+6)/7, recordErrors)
	assert.Greater(t, total, lastReport)
}
