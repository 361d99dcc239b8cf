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

package tracker

import (
	"time"

	"github.com/0xsoniclabs/vcd-toggle/config"
	"github.com/0xsoniclabs/vcd-toggle/executor"
	"github.com/0xsoniclabs/vcd-toggle/executor/extension"
	"github.com/0xsoniclabs/vcd-toggle/logger"
)

const progressReportFormat = "Elapsed time: %d:%02d:%02d; reached cycle %d at line %d; ~ %.1f lines/s, ~ %.1f cycles/s"

// MakeProgressTracker creates a progress tracker logging every
// cfg.ProgressInterval closed cycles.
func MakeProgressTracker(cfg *config.Config) executor.Extension {
	if cfg.ProgressInterval == 0 {
		return extension.NilExtension{}
	}
	return makeProgressTracker(cfg, logger.NewLogger(cfg.LogLevel, "Progress"))
}

func makeProgressTracker(cfg *config.Config, log logger.Logger) *progressTracker {
	return &progressTracker{
		interval: cfg.ProgressInterval,
		log:      log,
	}
}

type progressTracker struct {
	extension.NilExtension
	interval uint64
	log      logger.Logger

	start      time.Time
	lastReport time.Time
	lastLine   uint64
	cycles     uint64
}

func (t *progressTracker) PreRun(state executor.State, _ *executor.Context) error {
	now := time.Now()
	t.start = now
	t.lastReport = now
	t.lastLine = state.Line
	return nil
}

func (t *progressTracker) PostCycle(state executor.State, _ *executor.Context) error {
	t.cycles++
	if t.cycles%t.interval != 0 {
		return nil
	}

	now := time.Now()
	interval := now.Sub(t.lastReport).Seconds()
	lineRate := float64(state.Line-t.lastLine) / interval
	cycleRate := float64(t.interval) / interval

	hours, minutes, seconds := logger.ParseTime(now.Sub(t.start))
	t.log.Noticef(progressReportFormat, hours, minutes, seconds, state.Cycle, state.Line, lineRate, cycleRate)

	t.lastReport = now
	t.lastLine = state.Line
	return nil
}
