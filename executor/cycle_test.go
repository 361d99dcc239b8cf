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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycleAggregator_StartsWithoutCycle(t *testing.T) {
	a := newCycleAggregator(1, nil)
	assert.Equal(t, int64(noCycle), a.current)
	assert.False(t, a.verbose)
	assert.Empty(t, a.cyclesOfInterest())
}

func TestCycleAggregator_CommitOnlyOnIncrease(t *testing.T) {
	a := newCycleAggregator(1, nil)

	closed, ok := a.commit(1)
	require.True(t, ok)
	assert.Equal(t, int64(noCycle), closed.cycle)
	assert.False(t, closed.overThreshold)

	a.propose(0)
	_, ok = a.commit(2)
	assert.False(t, ok)

	a.propose(7)
	a.add(3, 8)
	closed, ok = a.commit(3)
	require.True(t, ok)
	assert.Equal(t, closedCycle{cycle: 0, distance: 3, bits: 8, firstLine: 1, overThreshold: true}, closed)
	assert.Equal(t, int64(7), a.current)

	a.propose(5)
	_, ok = a.commit(4)
	assert.False(t, ok)
	assert.Equal(t, int64(7), a.current)
}

func TestCycleAggregator_AccumulatorsResetOnEveryCommit(t *testing.T) {
	a := newCycleAggregator(10, nil)
	a.commit(1)
	a.add(2, 4)

	a.propose(1)
	closed, ok := a.commit(2)
	require.True(t, ok)
	assert.False(t, closed.overThreshold)
	assert.Equal(t, 2, closed.distance)

	final := a.close()
	assert.Equal(t, 0, final.distance)
	assert.Equal(t, 0, final.bits)
	assert.Equal(t, int64(1), final.cycle)
}

func TestCycleAggregator_VerboseFollowsCyclesOfInterest(t *testing.T) {
	a := newCycleAggregator(1, []int64{4, 2, 4})
	assert.Equal(t, []int64{2, 4}, a.cyclesOfInterest())

	expected := []bool{false, false, true, false, true, false}
	for cycle := int64(0); cycle <= 5; cycle++ {
		a.propose(cycle)
		_, ok := a.commit(uint64(cycle))
		require.True(t, ok)
		assert.Equal(t, expected[cycle], a.verbose, "cycle %d", cycle)
	}
}
