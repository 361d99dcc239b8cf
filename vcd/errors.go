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

package vcd

import "github.com/cockroachdb/errors"

// Fatal header errors; the dump is considered corrupt or unsupported.
var (
	ErrPathTooLong   = errors.New("wire name too long")
	ErrScopeTooDeep  = errors.New("scope nesting too deep")
	ErrUnexpectedEOF = errors.New("end of file before $enddefinitions")
)

// Recoverable errors; the offending record or declaration is skipped.
var (
	ErrFormat        = errors.New("format")
	ErrUnknownID     = errors.New("id not found")
	ErrWidthMismatch = errors.New("wrong dimension")
	ErrAliasWidth    = errors.New("dimension mismatch")
	ErrDeclaration   = errors.New("malformed declaration")
)
