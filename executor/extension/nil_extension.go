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

package extension

import "github.com/0xsoniclabs/vcd-toggle/executor"

// NilExtension is an extension ignoring all hooks. It is used as a base
// for extensions only interested in some of the hooks and as a
// replacement of extensions disabled by the configuration.
type NilExtension struct{}

func (NilExtension) PreRun(executor.State, *executor.Context) error { return nil }

func (NilExtension) PostRun(executor.State, *executor.Context, error) error { return nil }

func (NilExtension) PreCycle(executor.State, *executor.Context) error { return nil }

func (NilExtension) PostCycle(executor.State, *executor.Context) error { return nil }

func (NilExtension) PostChange(executor.State, *executor.Context) error { return nil }
