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

//go:generate mockgen -source extension.go -destination extension_mock.go -package executor

import "github.com/0xsoniclabs/vcd-toggle/vcd"

// Extension is an interface for modular extensions of the executor. Hooks
// are called from the single analysis thread. A hook returning an error
// aborts the run; PostRun hooks are still called with that error.
type Extension interface {
	// PreRun is called once the header is parsed and before the first
	// change record is processed.
	PreRun(State, *Context) error

	// PostRun is called after the last cycle was flushed or the run failed.
	PostRun(State, *Context, error) error

	// PreCycle is called whenever a new cycle becomes active.
	PreCycle(State, *Context) error

	// PostCycle is called for every closed cycle. State.Distance and
	// State.Bits hold its totals; State.OverThreshold reports whether the
	// totals reached the cycle threshold.
	PostCycle(State, *Context) error

	// PostChange is called for change records of a cycle of interest whose
	// own distance reached the signal threshold.
	PostChange(State, *Context) error
}

// State summarises the position of the executor when a hook is called.
type State struct {
	Line      uint64 // current line of the dump
	Time      int64  // last time marker
	Cycle     int64  // cycle the hook refers to
	FirstLine uint64 // first line of Cycle, PostCycle only

	Distance      int  // toggles of the cycle or of the change record
	Bits          int  // bits compared for Distance
	OverThreshold bool // PostCycle only

	Signal *vcd.Signal // PostChange only
	Name   string      // qualified name of Signal
}

// Context is shared by all extensions of one run.
type Context struct {
	Header      *vcd.Header
	Params      Params
	Counter     *vcd.Signal // nil if timestamps are used as cycles
	CounterName string

	// Verbose is set while the active cycle is a cycle of interest.
	Verbose bool

	// Summary is updated while the run progresses.
	Summary *Summary
}
