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

import (
	"bytes"
	"math"
)

// RecordKind classifies one line of the value change section.
type RecordKind byte

const (
	Empty RecordKind = iota
	TimeMarker
	ScalarChange
	VectorChange
	Directive
)

func (k RecordKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case TimeMarker:
		return "time"
	case ScalarChange:
		return "scalar"
	case VectorChange:
		return "vector"
	case Directive:
		return "directive"
	}
	return "unknown"
}

// Record is one parsed body line. Bits and ID alias the line buffer.
type Record struct {
	Kind RecordKind
	Time int64
	Bits []byte
	ID   []byte
}

// ParseRecord classifies a body line. Keyword lines such as $dumpvars
// or $end are returned as Directive and carry no change.
func ParseRecord(line []byte) (Record, error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return Record{Kind: Empty}, nil
	}
	switch c := line[0]; c {
	case '#':
		t, ok := parseDecimal(line[1:])
		if !ok {
			return Record{}, ErrFormat
		}
		return Record{Kind: TimeMarker, Time: t}, nil
	case '$':
		return Record{Kind: Directive}, nil
	case '0', '1':
		id := bytes.TrimSpace(line[1:])
		if len(id) == 0 {
			return Record{}, ErrFormat
		}
		return Record{Kind: ScalarChange, Bits: line[:1], ID: id}, nil
	case 'b', 'B':
		fields := bytes.Fields(line)
		if len(fields) != 2 || len(fields[0]) < 2 {
			return Record{}, ErrFormat
		}
		return Record{Kind: VectorChange, Bits: fields[0][1:], ID: fields[1]}, nil
	}
	return Record{}, ErrFormat
}

// parseDecimal reads a non-negative decimal number spanning all of s.
func parseDecimal(s []byte) (int64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	var v int64
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		d := int64(c - '0')
		if v > (math.MaxInt64-d)/10 {
			return 0, false
		}
		v = v*10 + d
	}
	return v, true
}

// DecodeUnsigned interprets bits, most significant first, as an unsigned
// binary number. It reports false if a bit is not 0 or 1 or the value
// does not fit into an int64.
func DecodeUnsigned(bits []byte) (int64, bool) {
	if len(bits) == 0 {
		return 0, false
	}
	var v int64
	for _, b := range bits {
		if v > math.MaxInt64>>1 {
			return 0, false
		}
		switch b {
		case '0':
			v <<= 1
		case '1':
			v = v<<1 | 1
		default:
			return 0, false
		}
	}
	return v, true
}
