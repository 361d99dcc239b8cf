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

// Unknown is the state of a bit that has not been assigned yet.
const Unknown = 'x'

// Store holds the current state of every signal bit in one buffer.
type Store struct {
	bits []byte
}

// NewStore allocates the state of all catalog signals, initialised to
// Unknown, and points every signal at its slice of the buffer.
func NewStore(c *Catalog) *Store {
	s := &Store{bits: make([]byte, c.TotalBits)}
	for i := range s.bits {
		s.bits[i] = Unknown
	}
	off := 0
	for i := range c.Signals {
		sig := &c.Signals[i]
		sig.Offset = off
		sig.State = s.bits[off : off+sig.Width : off+sig.Width]
		sig.Updates = 0
		off += sig.Width
	}
	return s
}

// Len returns the number of stored bits.
func (s *Store) Len() int {
	return len(s.bits)
}

// Update stores bits as the new state of the signal and returns the
// number of positions that changed. The first update of a signal only
// establishes its value and is reported as distance 0. The caller
// guarantees len(bits) == s.Width.
func (s *Signal) Update(bits []byte) int {
	first := s.Updates == 0
	s.Updates++
	dist := 0
	for i, b := range bits {
		if s.State[i] != b {
			dist++
			s.State[i] = b
		}
	}
	if first {
		return 0
	}
	return dist
}
