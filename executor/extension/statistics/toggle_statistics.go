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
	"math"
	"slices"

	"github.com/0xsoniclabs/vcd-toggle/config"
	"github.com/0xsoniclabs/vcd-toggle/executor"
	"github.com/0xsoniclabs/vcd-toggle/executor/extension"
	"github.com/0xsoniclabs/vcd-toggle/logger"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"
)

// Distribution summarises the toggles of all closed cycles.
type Distribution struct {
	Cycles int
	Total  float64
	Mean   float64
	StdDev float64
	Max    float64
	P50    float64
	P90    float64
	P99    float64
}

// NewDistribution computes the distribution of the given per-cycle toggles.
func NewDistribution(toggles []float64) Distribution {
	if len(toggles) == 0 {
		return Distribution{}
	}
	sorted := slices.Clone(toggles)
	slices.Sort(sorted)

	d := Distribution{
		Cycles: len(sorted),
		Max:    sorted[len(sorted)-1],
		P50:    stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, sorted, nil),
		P99:    stat.Quantile(0.99, stat.Empirical, sorted, nil),
	}
	for _, t := range sorted {
		d.Total += t
	}
	d.Mean, d.StdDev = stat.MeanStdDev(sorted, nil)
	if math.IsNaN(d.StdDev) {
		d.StdDev = 0
	}
	return d
}

// MakeToggleStatistics creates an extension logging the distribution of
// per-cycle toggles at the end of the run if enabled in the configuration.
func MakeToggleStatistics(cfg *config.Config) executor.Extension {
	if !cfg.Statistics {
		return extension.NilExtension{}
	}
	return makeToggleStatistics(logger.NewLogger(cfg.LogLevel, "Statistics"))
}

func makeToggleStatistics(log logger.Logger) *toggleStatistics {
	return &toggleStatistics{
		log:     log,
		printer: message.NewPrinter(language.English),
	}
}

type toggleStatistics struct {
	extension.NilExtension
	log     logger.Logger
	printer *message.Printer
	toggles []float64
}

func (s *toggleStatistics) PostCycle(state executor.State, _ *executor.Context) error {
	s.toggles = append(s.toggles, float64(state.Distance))
	return nil
}

func (s *toggleStatistics) PostRun(_ executor.State, _ *executor.Context, err error) error {
	if err != nil {
		return nil
	}
	if len(s.toggles) == 0 {
		s.log.Notice("no cycle closed; no toggle statistics")
		return nil
	}
	d := NewDistribution(s.toggles)
	s.log.Notice(s.printer.Sprintf("%d cycles, %.0f toggles", d.Cycles, d.Total))
	s.log.Notice(s.printer.Sprintf("toggles per cycle: mean %.2f, std dev %.2f, max %.0f", d.Mean, d.StdDev, d.Max))
	s.log.Notice(s.printer.Sprintf("toggles per cycle: p50 %.0f, p90 %.0f, p99 %.0f", d.P50, d.P90, d.P99))
	return nil
}
