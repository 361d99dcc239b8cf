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
	"testing"
	"time"

	"github.com/0xsoniclabs/vcd-toggle/config"
	"github.com/0xsoniclabs/vcd-toggle/executor"
	"github.com/0xsoniclabs/vcd-toggle/executor/extension"
	"github.com/0xsoniclabs/vcd-toggle/logger"
	"go.uber.org/mock/gomock"
)

func TestProgressTracker_NoTrackerIsCreatedIfDisabled(t *testing.T) {
	cfg := &config.Config{}
	ext := MakeProgressTracker(cfg)
	if _, ok := ext.(extension.NilExtension); !ok {
		t.Errorf("Tracker is enabled although not set in configuration")
	}
}

func TestProgressTracker_TrackerIsCreatedIfEnabled(t *testing.T) {
	cfg := &config.Config{ProgressInterval: 10}
	ext := MakeProgressTracker(cfg)
	if _, ok := ext.(*progressTracker); !ok {
		t.Errorf("Tracker is not created although enabled in configuration")
	}
}

type positiveRate struct{}

func (positiveRate) Matches(x any) bool {
	rate, ok := x.(float64)
	return ok && rate > 0
}

func (positiveRate) String() string {
	return "is a positive rate"
}

func TestProgressTracker_LoggingHappens(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)

	cfg := &config.Config{ProgressInterval: 2}
	ext := makeProgressTracker(cfg, log)
	ctx := &executor.Context{}

	positive := positiveRate{}

	gomock.InOrder(
		log.EXPECT().Noticef(progressReportFormat, uint32(0), uint32(0), uint32(0), int64(2), uint64(30), positive, positive),
		log.EXPECT().Noticef(progressReportFormat, uint32(0), uint32(0), uint32(0), int64(6), uint64(70), positive, positive),
	)

	ext.PreRun(executor.State{Line: 10}, ctx)

	ext.PostCycle(executor.State{Cycle: 0, Line: 20}, ctx)
	time.Sleep(10 * time.Millisecond)
	ext.PostCycle(executor.State{Cycle: 2, Line: 30}, ctx)

	ext.PostCycle(executor.State{Cycle: 4, Line: 50}, ctx)
	time.Sleep(10 * time.Millisecond)
	ext.PostCycle(executor.State{Cycle: 6, Line: 70}, ctx)

	ext.PostCycle(executor.State{Cycle: 8, Line: 90}, ctx)
}
