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

package profiler

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/0xsoniclabs/vcd-toggle/config"
	"github.com/0xsoniclabs/vcd-toggle/executor"
	"github.com/0xsoniclabs/vcd-toggle/executor/extension"
	"github.com/cockroachdb/errors"
)

// MakeMemoryProfiler creates an executor.Extension that records memory profiling data if enabled in the configuration.
func MakeMemoryProfiler(cfg *config.Config) executor.Extension {
	if cfg.MemoryProfile == "" {
		return extension.NilExtension{}
	}
	return &memoryProfiler{cfg: cfg}
}

type memoryProfiler struct {
	extension.NilExtension
	cfg *config.Config
}

func (p *memoryProfiler) PostRun(executor.State, *executor.Context, error) error {
	f, err := os.Create(p.cfg.MemoryProfile)
	if err != nil {
		return fmt.Errorf("could not create memory profile: %w", err)
	}
	return writeHeapProfile(f)
}

// writeHeapProfile writes the profile to w and closes it.
func writeHeapProfile(w io.WriteCloser) (err error) {
	defer func() {
		if closeErr := w.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("could not close memory profile: %w", closeErr))
		}
	}()
	runtime.GC()
	if err = pprof.WriteHeapProfile(w); err != nil {
		return fmt.Errorf("could not write memory profile: %w", err)
	}
	return nil
}
