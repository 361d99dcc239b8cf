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
	"io"

	"github.com/0xsoniclabs/vcd-toggle/logger"
	"github.com/0xsoniclabs/vcd-toggle/tracer"
	"github.com/0xsoniclabs/vcd-toggle/vcd"
	"github.com/cockroachdb/errors"
)

// processor consumes the value change section of a dump, applies every
// change to the bit state and feeds the toggles into the cycle aggregator.
type processor struct {
	reader     tracer.LineReader
	header     *vcd.Header
	log        logger.Logger
	extensions []Extension
	ctx        *Context
	cycles     *cycleAggregator
	time       int64
}

func newProcessor(reader tracer.LineReader, ctx *Context, extensions []Extension, log logger.Logger) *processor {
	return &processor{
		reader:     reader,
		header:     ctx.Header,
		log:        log,
		extensions: extensions,
		ctx:        ctx,
		cycles:     newCycleAggregator(ctx.Params.Threshold, ctx.Params.Cycles),
	}
}

// run processes all remaining lines and flushes the last cycle. Only read
// errors and extension errors end the run early.
func (p *processor) run() error {
	for {
		line, err := p.reader.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if err = p.processLine(line); err != nil {
			return err
		}
	}
	return p.flush()
}

func (p *processor) processLine(line []byte) error {
	p.ctx.Summary.Lines = p.reader.Line()

	rec, err := vcd.ParseRecord(line)
	if err != nil {
		p.recordError(line, err)
		return nil
	}

	switch rec.Kind {
	case vcd.Empty, vcd.Directive:
		return nil
	case vcd.TimeMarker:
		p.time = rec.Time
		p.ctx.Summary.LastTime = rec.Time
		if p.ctx.Counter == nil {
			p.cycles.propose(rec.Time)
		}
		return p.commit()
	}

	sig := p.header.Index.Lookup(rec.ID)
	if sig == nil {
		p.recordError(line, vcd.ErrUnknownID)
		return nil
	}
	if len(rec.Bits) != sig.Width {
		p.recordError(line, fmt.Errorf("%w (%d)", vcd.ErrWidthMismatch, sig.Width))
		return nil
	}

	isCounter := sig == p.ctx.Counter
	if isCounter {
		// a second counter update ends the cycle proposed by the first one
		if err = p.commit(); err != nil {
			return err
		}
	}
	return p.apply(sig, rec.Bits, isCounter)
}

func (p *processor) apply(sig *vcd.Signal, bits []byte, isCounter bool) error {
	first := sig.Updates == 0
	dist := sig.Update(bits)
	p.ctx.Summary.Records++
	p.cycles.add(dist, len(bits))

	if p.ctx.Verbose && !first && dist >= p.ctx.Params.SignalThreshold {
		state := p.state()
		state.Signal = sig
		state.Name = p.header.Catalog.SignalName(sig)
		state.Distance = dist
		state.Bits = len(bits)
		if err := signalPostChange(state, p.ctx, p.extensions); err != nil {
			return err
		}
	}

	if isCounter {
		cycle, ok := vcd.DecodeUnsigned(bits)
		if !ok {
			p.ctx.Summary.Ambiguous++
			p.log.Debugf("%s:%d ambiguous cycle counter value %s", p.reader.Name(), p.reader.Line(), bits)
			return nil
		}
		p.cycles.propose(cycle)
	}
	return nil
}

// commit opens the pending cycle if it is ahead of the active one.
func (p *processor) commit() error {
	closed, ok := p.cycles.commit(p.reader.Line())
	if !ok {
		return nil
	}
	if err := p.closeCycle(closed); err != nil {
		return err
	}
	p.ctx.Verbose = p.cycles.verbose
	p.ctx.Summary.LastCycle = p.cycles.current
	return signalPreCycle(p.state(), p.ctx, p.extensions)
}

// flush closes the cycle still active at the end of the dump.
func (p *processor) flush() error {
	return p.closeCycle(p.cycles.close())
}

func (p *processor) closeCycle(closed closedCycle) error {
	if closed.cycle < 0 {
		return nil
	}
	p.ctx.Summary.CyclesClosed++
	if closed.overThreshold {
		p.ctx.Summary.CyclesReported++
	}
	state := p.state()
	state.Cycle = closed.cycle
	state.FirstLine = closed.firstLine
	state.Distance = closed.distance
	state.Bits = closed.bits
	state.OverThreshold = closed.overThreshold
	return signalPostCycle(state, p.ctx, p.extensions)
}

func (p *processor) recordError(line []byte, err error) {
	p.ctx.Summary.RecordErrors++
	p.log.Error(NewRecordError(p.reader.Name(), p.reader.Line(), line, err))
}

func (p *processor) state() State {
	return State{
		Line:  p.reader.Line(),
		Time:  p.time,
		Cycle: p.cycles.current,
	}
}
