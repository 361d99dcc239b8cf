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

package config

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// profile holds analysis defaults read from a YAML file, for example
//
//	counter: cycle_cnt
//	threshold: 16
//	signal-threshold: 4
//	cycles: [100, 101]
//	activity-db: activity.db
type profile struct {
	Counter          string  `yaml:"counter"`
	Threshold        *int64  `yaml:"threshold"`
	SignalThreshold  *int64  `yaml:"signal-threshold"`
	Cycles           []int64 `yaml:"cycles"`
	Output           string  `yaml:"output"`
	ActivityDb       string  `yaml:"activity-db"`
	MetricsFile      string  `yaml:"metrics-file"`
	Statistics       bool    `yaml:"stats"`
	ProgressInterval *uint64 `yaml:"progress-interval"`
}

func loadProfile(path string) (*profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open profile; %w", err)
	}
	defer f.Close()

	p := &profile{}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(p); err != nil {
		return nil, fmt.Errorf("cannot decode profile %s; %w", path, err)
	}
	return p, nil
}

// apply copies the profile into cfg, keeping flags set by the user.
func (p *profile) apply(cfg *Config, ctx *cli.Context) {
	cfg.CounterFragment = p.Counter
	if p.Threshold != nil {
		cfg.Threshold = int(*p.Threshold)
	}
	if p.SignalThreshold != nil && !isFlagSet(ctx, &SignalThresholdFlag) {
		cfg.SignalThreshold = int(*p.SignalThreshold)
	}
	if len(p.Cycles) > 0 {
		cfg.Cycles = nonNegativePrefix(p.Cycles)
	}
	if p.Output != "" && !isFlagSet(ctx, &OutputFlag) {
		cfg.Output = p.Output
	}
	if p.ActivityDb != "" && !isFlagSet(ctx, &ActivityDbFlag) {
		cfg.ActivityDb = p.ActivityDb
	}
	if p.MetricsFile != "" && !isFlagSet(ctx, &MetricsFileFlag) {
		cfg.MetricsFile = p.MetricsFile
	}
	if p.Statistics && !isFlagSet(ctx, &StatisticsFlag) {
		cfg.Statistics = true
	}
	if p.ProgressInterval != nil && !isFlagSet(ctx, &ProgressIntervalFlag) {
		cfg.ProgressInterval = *p.ProgressInterval
	}
}

func nonNegativePrefix(cycles []int64) []int64 {
	for i, c := range cycles {
		if c < 0 {
			return cycles[:i]
		}
	}
	return cycles
}
