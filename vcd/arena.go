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
	"strconv"
)

const (
	initialArenaSize = 1 << 20
	initialNameCount = 1 << 16
)

// NameArena keeps name records "<id> <width> <path>" back to back in one
// growable buffer. Records are referenced by the byte offset of their
// first character and terminated by a newline.
type NameArena struct {
	buf  []byte
	offs []int // record offsets in declaration order
}

func newNameArena() *NameArena {
	return &NameArena{
		buf:  make([]byte, 0, initialArenaSize),
		offs: make([]int, 0, initialNameCount),
	}
}

// Append stores a new record and returns its offset.
func (a *NameArena) Append(id []byte, width int, path []byte) int {
	off := len(a.buf)
	a.buf = growDoubling(a.buf, len(id)+len(path)+22)
	a.buf = append(a.buf, id...)
	a.buf = append(a.buf, ' ')
	a.buf = strconv.AppendInt(a.buf, int64(width), 10)
	a.buf = append(a.buf, ' ')
	a.buf = append(a.buf, path...)
	a.buf = append(a.buf, '\n')

	a.offs = growDoubling(a.offs, 1)
	a.offs = append(a.offs, off)
	return off
}

// Record returns the record starting at off, without its terminator.
func (a *NameArena) Record(off int) []byte {
	end := bytes.IndexByte(a.buf[off:], '\n')
	return a.buf[off : off+end]
}

// Len returns the number of stored records.
func (a *NameArena) Len() int {
	return len(a.offs)
}

// Offsets returns the record offsets in declaration order.
func (a *NameArena) Offsets() []int {
	return a.offs
}

// Size returns the number of bytes used by the records.
func (a *NameArena) Size() int {
	return len(a.buf)
}

// splitRecord cuts a record into identifier, width and qualified path.
func splitRecord(rec []byte) (id []byte, width int, path []byte) {
	id, rest, _ := bytes.Cut(rec, []byte{' '})
	w, path, _ := bytes.Cut(rest, []byte{' '})
	return id, parseWidth(w), path
}

// parseWidth reads a declared width; malformed or negative widths are 0.
func parseWidth(tok []byte) int {
	w, err := strconv.Atoi(string(tok))
	if err != nil || w < 0 {
		return 0
	}
	return w
}

// compareRecords orders records by identifier first and by the full
// record text second, which keeps all aliases of an identifier adjacent.
func compareRecords(a, b []byte) int {
	idA, _, _ := bytes.Cut(a, []byte{' '})
	idB, _, _ := bytes.Cut(b, []byte{' '})
	if c := bytes.Compare(idA, idB); c != 0 {
		return c
	}
	return bytes.Compare(a, b)
}

// growDoubling makes room for n more elements, doubling the capacity of s
// whenever it overflows.
func growDoubling[T any](s []T, n int) []T {
	need := len(s) + n
	if need <= cap(s) {
		return s
	}
	size := 2 * cap(s)
	if size < need {
		size = need
	}
	grown := make([]T, len(s), size)
	copy(grown, s)
	return grown
}
