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

package executor

import (
	"fmt"
	"strings"

	"github.com/0xsoniclabs/vcd-toggle/logger"
	"github.com/0xsoniclabs/vcd-toggle/tracer"
	"github.com/0xsoniclabs/vcd-toggle/vcd"
	"github.com/cockroachdb/errors"
)

// Executor runs the toggle analysis of one value change dump. The header
// is parsed first, then all change records are processed in a single pass
// while the registered extensions are notified about runs, cycles and
// reportable changes.
type Executor interface {
	// Run analyses the dump and returns the run totals. Malformed change
	// records are logged and skipped. Errors are returned for unreadable
	// or corrupt headers, read failures and failing extensions.
	Run(params Params, extensions []Extension) (Summary, error)
}

// Params are the parameters of an analysis run.
type Params struct {
	// CounterFragment selects the cycle counter signal: the first declared
	// name containing it. If none matches, timestamps are used as cycles.
	CounterFragment string
	// Threshold is the minimum number of toggles of a reported cycle.
	Threshold int
	// SignalThreshold is the minimum distance of a reported change record.
	SignalThreshold int
	// Cycles lists the cycles for which single changes are reported.
	Cycles []int64
}

// Summary holds the totals of a run.
type Summary struct {
	Lines          uint64
	LastTime       int64
	LastCycle      int64
	Records        uint64 // applied change records
	RecordErrors   uint64
	Ambiguous      uint64 // counter values with non-binary bits
	CyclesClosed   uint64
	CyclesReported uint64 // cycles reaching the threshold
	CounterMode    bool   // false if timestamps were used as cycles
}

// NewExecutor creates an executor reading the dump from reader.
func NewExecutor(reader tracer.LineReader, logLevel string) Executor {
	return newExecutor(reader, logger.NewLogger(logLevel, "Executor"))
}

func newExecutor(reader tracer.LineReader, log logger.Logger) *executor {
	return &executor{
		reader: reader,
		log:    log,
	}
}

type executor struct {
	reader tracer.LineReader
	log    logger.Logger
}

func (e *executor) Run(params Params, extensions []Extension) (summary Summary, err error) {
	name := e.reader.Name()
	header, err := vcd.ParseHeader(e.reader, e.log)
	if err != nil {
		return Summary{}, fmt.Errorf("cannot parse header of %s: %w", name, err)
	}
	e.log.Noticef("%s preamble: %v.", name, header)
	vcd.NewStore(header.Catalog)

	summary = Summary{
		Lines:        header.Lines,
		LastCycle:    noCycle,
		RecordErrors: uint64(len(header.Conflicts)),
	}
	ctx := &Context{
		Header:  header,
		Params:  params,
		Summary: &summary,
	}
	if params.CounterFragment != "" {
		ctx.Counter, ctx.CounterName = header.FindSignal(params.CounterFragment)
	}
	if ctx.Counter != nil {
		summary.CounterMode = true
		e.log.Noticef("timing signal: %s", ctx.CounterName)
	} else {
		e.log.Warningf("timing signal not found; using raw timestamps: %s", params.CounterFragment)
	}
	e.log.Noticef("toggle threshold: %d", params.Threshold)

	p := newProcessor(e.reader, ctx, extensions, e.log)
	if cycles := p.cycles.cyclesOfInterest(); len(cycles) > 0 {
		e.log.Noticef("report cycles: %s", joinCycles(cycles))
	}

	state := State{Line: header.Lines, Cycle: noCycle}
	if err = signalPreRun(state, ctx, extensions); err == nil {
		err = p.run()
		state = p.state()
	}
	if postErr := signalPostRun(state, ctx, err, extensions); postErr != nil {
		err = errors.Join(err, postErr)
	}
	if err != nil {
		return summary, err
	}

	e.log.Noticef("%s total: %d lines, last time %d  cycle %d.", name, summary.Lines, summary.LastTime, summary.LastCycle)
	e.log.Infof("%d records, %d record errors, %d ambiguous counter values, %d cycles, %d over threshold",
		summary.Records, summary.RecordErrors, summary.Ambiguous, summary.CyclesClosed, summary.CyclesReported)
	return summary, nil
}

func joinCycles(cycles []int64) string {
	res := make([]string, len(cycles))
	for i, c := range cycles {
		res[i] = fmt.Sprint(c)
	}
	return strings.Join(res, " ")
}

func signalPreRun(state State, ctx *Context, extensions []Extension) error {
	return forEachForward(extensions, func(extension Extension) error {
		return extension.PreRun(state, ctx)
	})
}

func signalPostRun(state State, ctx *Context, err error, extensions []Extension) error {
	return forEachBackward(extensions, func(extension Extension) error {
		return extension.PostRun(state, ctx, err)
	})
}

func signalPreCycle(state State, ctx *Context, extensions []Extension) error {
	return forEachForward(extensions, func(extension Extension) error {
		return extension.PreCycle(state, ctx)
	})
}

func signalPostCycle(state State, ctx *Context, extensions []Extension) error {
	return forEachBackward(extensions, func(extension Extension) error {
		return extension.PostCycle(state, ctx)
	})
}

func signalPostChange(state State, ctx *Context, extensions []Extension) error {
	return forEachBackward(extensions, func(extension Extension) error {
		return extension.PostChange(state, ctx)
	})
}

func forEachForward(extensions []Extension, op func(extension Extension) error) error {
	for _, extension := range extensions {
		if err := op(extension); err != nil {
			return err
		}
	}
	return nil
}

func forEachBackward(extensions []Extension, op func(extension Extension) error) error {
	var errs []error
	for i := len(extensions) - 1; i >= 0; i-- {
		if err := op(extensions[i]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
