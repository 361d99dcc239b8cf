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
	"slices"

	"golang.org/x/exp/maps"
)

// noCycle is the cycle number before the first boundary is committed.
const noCycle = -1

// closedCycle holds the totals of a cycle left at a boundary.
type closedCycle struct {
	cycle         int64
	distance      int
	bits          int
	firstLine     uint64
	overThreshold bool
}

// cycleAggregator accumulates toggles of the active cycle and decides
// when a new cycle starts. A candidate cycle number is proposed by a time
// marker or a counter update and becomes active at the next commit if it
// is larger than the active one.
type cycleAggregator struct {
	threshold int
	interest  map[int64]struct{}

	current   int64
	pending   int64
	distance  int
	bits      int
	firstLine uint64
	verbose   bool
}

func newCycleAggregator(threshold int, cycles []int64) *cycleAggregator {
	interest := make(map[int64]struct{}, len(cycles))
	for _, c := range cycles {
		interest[c] = struct{}{}
	}
	return &cycleAggregator{
		threshold: threshold,
		interest:  interest,
		current:   noCycle,
		pending:   0,
	}
}

// add accounts one applied change record to the active cycle.
func (a *cycleAggregator) add(distance, bits int) {
	a.distance += distance
	a.bits += bits
}

// propose sets the candidate for the next boundary.
func (a *cycleAggregator) propose(cycle int64) {
	a.pending = cycle
}

// commit starts the pending cycle if it is larger than the active one.
// It returns the totals of the closed cycle and whether a boundary was
// committed. line is the first line belonging to the new cycle.
func (a *cycleAggregator) commit(line uint64) (closedCycle, bool) {
	if a.pending <= a.current {
		return closedCycle{}, false
	}
	closed := a.close()
	a.current = a.pending
	a.firstLine = line
	_, a.verbose = a.interest[a.current]
	return closed, true
}

// close returns the totals of the active cycle and resets the accumulators.
func (a *cycleAggregator) close() closedCycle {
	closed := closedCycle{
		cycle:         a.current,
		distance:      a.distance,
		bits:          a.bits,
		firstLine:     a.firstLine,
		overThreshold: a.current >= 0 && a.distance >= a.threshold,
	}
	a.distance = 0
	a.bits = 0
	return closed
}

// cyclesOfInterest returns the cycles with verbose reporting in ascending order.
func (a *cycleAggregator) cyclesOfInterest() []int64 {
	res := maps.Keys(a.interest)
	slices.Sort(res)
	return res
}
