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

package statistics

import (
	"errors"
	"testing"

	"github.com/0xsoniclabs/vcd-toggle/config"
	"github.com/0xsoniclabs/vcd-toggle/executor"
	"github.com/0xsoniclabs/vcd-toggle/executor/extension"
	"github.com/0xsoniclabs/vcd-toggle/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNewDistribution(t *testing.T) {
	toggles := []float64{4, 1, 3, 2, 10, 6, 5, 8, 7, 9}
	d := NewDistribution(toggles)

	assert.Equal(t, 10, d.Cycles)
	assert.Equal(t, 55.0, d.Total)
	assert.Equal(t, 5.5, d.Mean)
	assert.InDelta(t, 3.0277, d.StdDev, 1e-4)
	assert.Equal(t, 10.0, d.Max)
	assert.Equal(t, 5.0, d.P50)
	assert.Equal(t, 9.0, d.P90)
	assert.Equal(t, 10.0, d.P99)

	// input stays untouched
	assert.Equal(t, 4.0, toggles[0])
}

func TestNewDistribution_SingleCycle(t *testing.T) {
	d := NewDistribution([]float64{7})
	assert.Equal(t, 1, d.Cycles)
	assert.Equal(t, 7.0, d.Mean)
	assert.Equal(t, 0.0, d.StdDev)
	assert.Equal(t, 7.0, d.P99)
}

func TestNewDistribution_Empty(t *testing.T) {
	assert.Equal(t, Distribution{}, NewDistribution(nil))
}

func TestToggleStatistics_NoStatisticsIfDisabled(t *testing.T) {
	ext := MakeToggleStatistics(&config.Config{})
	_, ok := ext.(extension.NilExtension)
	assert.True(t, ok)
}

func TestToggleStatistics_LogsDistribution(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	ext := makeToggleStatistics(log)
	ctx := &executor.Context{}

	gomock.InOrder(
		log.EXPECT().Notice("3 cycles, 3,000 toggles"),
		log.EXPECT().Notice("toggles per cycle: mean 1,000.00, std dev 1,000.00, max 2,000"),
		log.EXPECT().Notice("toggles per cycle: p50 1,000, p90 2,000, p99 2,000"),
	)

	for _, d := range []int{0, 1000, 2000} {
		ext.PostCycle(executor.State{Distance: d}, ctx)
	}
	assert.NoError(t, ext.PostRun(executor.State{}, ctx, nil))
}

func TestToggleStatistics_NoCycles(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	ext := makeToggleStatistics(log)

	log.EXPECT().Notice(gomock.Any())
	assert.NoError(t, ext.PostRun(executor.State{}, &executor.Context{}, nil))
}

func TestToggleStatistics_SilentOnFailedRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	ext := makeToggleStatistics(log)

	ext.PostCycle(executor.State{Distance: 3}, &executor.Context{})
	assert.NoError(t, ext.PostRun(executor.State{}, &executor.Context{}, errors.New("failed")))
}
