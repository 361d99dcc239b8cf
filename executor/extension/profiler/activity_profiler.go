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

package profiler

import (
	"fmt"

	"github.com/0xsoniclabs/vcd-toggle/config"
	"github.com/0xsoniclabs/vcd-toggle/executor"
	"github.com/0xsoniclabs/vcd-toggle/executor/extension"
	"github.com/0xsoniclabs/vcd-toggle/logger"
)

// MakeActivityProfiler creates an extension recording per-cycle toggles and
// reported signal changes into the activity database if enabled in the
// configuration.
func MakeActivityProfiler(cfg *config.Config) executor.Extension {
	if cfg.ActivityDb == "" {
		return extension.NilExtension{}
	}
	return makeActivityProfiler(cfg, NewActivityDB, logger.NewLogger(cfg.LogLevel, "Activity-Profiler"))
}

func makeActivityProfiler(cfg *config.Config, open func(string) (ActivityDB, error), log logger.Logger) *activityProfiler {
	return &activityProfiler{
		cfg:  cfg,
		open: open,
		log:  log,
	}
}

type activityProfiler struct {
	extension.NilExtension
	cfg  *config.Config
	open func(string) (ActivityDB, error)
	log  logger.Logger
	db   ActivityDB
}

func (p *activityProfiler) PreRun(_ executor.State, ctx *executor.Context) error {
	db, err := p.open(p.cfg.ActivityDb)
	if err != nil {
		return fmt.Errorf("cannot open activity database; %w", err)
	}
	p.db = db
	return p.db.AddMetadata(Metadata{
		Trace:           p.cfg.TraceFile,
		Counter:         ctx.CounterName,
		Threshold:       ctx.Params.Threshold,
		SignalThreshold: ctx.Params.SignalThreshold,
		CounterMode:     ctx.Counter != nil,
	})
}

func (p *activityProfiler) PostCycle(state executor.State, _ *executor.Context) error {
	return p.db.AddCycle(CycleActivity{
		Cycle:         state.Cycle,
		Toggles:       state.Distance,
		Bits:          state.Bits,
		FirstLine:     state.FirstLine,
		LastLine:      state.Line,
		OverThreshold: state.OverThreshold,
	})
}

func (p *activityProfiler) PostChange(state executor.State, _ *executor.Context) error {
	return p.db.AddSignal(SignalActivity{
		Cycle:   state.Cycle,
		Line:    state.Line,
		Name:    state.Name,
		Toggles: state.Distance,
		Bits:    state.Bits,
	})
}

func (p *activityProfiler) PostRun(executor.State, *executor.Context, error) error {
	if p.db == nil {
		return nil
	}
	if err := p.db.Close(); err != nil {
		return fmt.Errorf("cannot close activity database; %w", err)
	}
	p.log.Noticef("activity written to %s", p.cfg.ActivityDb)
	return nil
}
