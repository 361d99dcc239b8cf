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

import "fmt"

// RecordError is a recoverable error of a single body line. The record is
// skipped and processing continues.
type RecordError struct {
	File   string
	Line   uint64
	Record string
	Err    error
}

func NewRecordError(file string, line uint64, record []byte, err error) *RecordError {
	return &RecordError{
		File:   file,
		Line:   line,
		Record: string(record),
		Err:    err,
	}
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s:%d ERROR  %v: %s", e.File, e.Line, e.Err, e.Record)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
