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

package reporter

import (
	"fmt"
	"io"

	"github.com/0xsoniclabs/vcd-toggle/executor"
	"github.com/0xsoniclabs/vcd-toggle/executor/extension"
)

const (
	cycleReportFormat  = "#%8d [togd]  %d\n"
	signalReportFormat = "[sigd] %8d  %d_%s\n"
)

// MakeActivityReporter creates an extension writing a line for every cycle
// reaching the toggle threshold and for every reportable change of a cycle
// of interest.
func MakeActivityReporter(w io.Writer) executor.Extension {
	return &activityReporter{w: w}
}

type activityReporter struct {
	extension.NilExtension
	w io.Writer
}

func (r *activityReporter) PostCycle(state executor.State, _ *executor.Context) error {
	if !state.OverThreshold {
		return nil
	}
	if _, err := fmt.Fprintf(r.w, cycleReportFormat, state.Cycle, state.Distance); err != nil {
		return fmt.Errorf("cannot write cycle report; %w", err)
	}
	return nil
}

func (r *activityReporter) PostChange(state executor.State, _ *executor.Context) error {
	if _, err := fmt.Fprintf(r.w, signalReportFormat, state.Distance, state.Cycle, state.Name); err != nil {
		return fmt.Errorf("cannot write signal report; %w", err)
	}
	return nil
}
