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

const (
	alphabetBase = 0x20
	alphabetSize = 96
	bucketCount  = alphabetSize * alphabetSize * alphabetSize
)

// bucket maps the first three characters of an identifier onto the
// index table. A character outside the printable range, and every
// character after it, counts as zero.
func bucket[T ~string | ~[]byte](id T) int {
	b := 0
	valid := true
	for i := 0; i < 3; i++ {
		d := 0
		if valid && i < len(id) {
			c := int(id[i]) - alphabetBase
			if c >= 0 && c < alphabetSize {
				d = c
			} else {
				valid = false
			}
		} else {
			valid = false
		}
		b = b*alphabetSize + d
	}
	return b
}

// Index resolves identifiers to catalog signals. For every bucket it
// stores the first catalog position whose identifier falls into that
// bucket or a later one.
type Index struct {
	signals []Signal
	lower   []int32
}

// NewIndex builds the bucket table of a catalog.
func NewIndex(c *Catalog) *Index {
	idx := &Index{
		signals: c.Signals,
		lower:   make([]int32, bucketCount+1),
	}
	keys := make([]int, len(c.Signals))
	for i := range c.Signals {
		keys[i] = bucket(c.Signals[i].ID)
	}
	pos := 0
	for b := 0; b <= bucketCount; b++ {
		for pos < len(keys) && keys[pos] < b {
			pos++
		}
		idx.lower[b] = int32(pos)
	}
	return idx
}

// Lookup returns the signal with the given identifier or nil.
func (x *Index) Lookup(id []byte) *Signal {
	if len(id) == 0 {
		return nil
	}
	for i := int(x.lower[bucket(id)]); i < len(x.signals); i++ {
		c := compareID(x.signals[i].ID, id)
		if c == 0 {
			return &x.signals[i]
		}
		if c > 0 {
			return nil
		}
	}
	return nil
}

// compareID compares like bytes.Compare without converting a to bytes.
func compareID(a string, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
