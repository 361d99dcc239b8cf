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

package main

import (
	"fmt"
	"os"

	"github.com/0xsoniclabs/vcd-toggle/config"
	"github.com/0xsoniclabs/vcd-toggle/logger"
	"github.com/urfave/cli/v2"
)

// ToggleApp reports the switching activity of a value change dump per cycle.
var ToggleApp = cli.App{
	Name:      "VCD Toggle",
	HelpName:  "vcd-toggle",
	Usage:     "count signal toggles per clock cycle of a value change dump",
	Copyright: "(c) 2025 Sonic Labs",
	ArgsUsage: "<trace-file> <counter-signal> [threshold] [cycle...]",
	Flags: []cli.Flag{
		&config.ConfigFileFlag,
		&config.OutputFlag,
		&config.SignalThresholdFlag,
		&config.ActivityDbFlag,
		&config.MetricsFileFlag,
		&config.StatisticsFlag,
		&config.ProgressIntervalFlag,
		&config.MemoryProfileFlag,
		&logger.LogLevelFlag,
	},
	Action: run,
}

func main() {
	if err := ToggleApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
