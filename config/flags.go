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

import "github.com/urfave/cli/v2"

var (
	ConfigFileFlag = cli.PathFlag{
		Name:  "config",
		Usage: "YAML profile with default analysis parameters",
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "file receiving the activity report (default: stdout)",
	}
	SignalThresholdFlag = cli.Int64Flag{
		Name:  "signal-threshold",
		Usage: "minimum toggles of a single change reported in cycles of interest (default: toggle threshold)",
		Value: -1,
	}
	ActivityDbFlag = cli.PathFlag{
		Name:  "activity-db",
		Usage: "sqlite3 database receiving per-cycle and per-signal activity",
	}
	MetricsFileFlag = cli.PathFlag{
		Name:  "metrics-file",
		Usage: "textfile receiving prometheus metrics of the run",
	}
	StatisticsFlag = cli.BoolFlag{
		Name:  "stats",
		Usage: "log the distribution of per-cycle toggles",
	}
	ProgressIntervalFlag = cli.Uint64Flag{
		Name:  "progress-interval",
		Usage: "number of cycles between progress reports, 0 disables them",
		Value: 0,
	}
	MemoryProfileFlag = cli.PathFlag{
		Name:  "memory-profile",
		Usage: "file receiving a heap profile at the end of the run",
	}
)
