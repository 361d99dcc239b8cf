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
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"
)

// Signal describes one identifier of the dump together with all names
// declared for it.
type Signal struct {
	ID      string // identifier symbol
	Width   int    // declared bit-width
	Aliases int    // number of names sharing the identifier
	Name    int    // position of the first name record in sorted order
	Offset  int    // first bit in the Store
	Updates uint64 // number of applied value changes
	State   []byte // view into the Store, Width bytes
}

// Catalog is the deduplicated list of signals sorted by identifier.
type Catalog struct {
	Signals   []Signal
	MaxWidth  int // widest declaration, aliases included
	TotalBits int

	names  *NameArena
	sorted []int // record offsets sorted by compareRecords
}

// newCatalog sorts the records of names and merges aliases into signals.
// Aliases declaring a width different from the first one are returned as
// errors; the catalog is built regardless.
func newCatalog(names *NameArena) (*Catalog, []error) {
	sorted := slices.Clone(names.Offsets())
	slices.SortStableFunc(sorted, func(a, b int) int {
		return compareRecords(names.Record(a), names.Record(b))
	})

	c := &Catalog{
		Signals: make([]Signal, 0, len(sorted)),
		names:   names,
		sorted:  sorted,
	}
	var conflicts []error
	for i, off := range sorted {
		id, width, path := splitRecord(names.Record(off))
		if width > c.MaxWidth {
			c.MaxWidth = width
		}
		n := len(c.Signals)
		if n == 0 || c.Signals[n-1].ID != string(id) {
			c.Signals = growDoubling(c.Signals, 1)
			c.Signals = append(c.Signals, Signal{
				ID:      string(id),
				Width:   width,
				Aliases: 1,
				Name:    i,
			})
			c.TotalBits += width
			continue
		}
		last := &c.Signals[n-1]
		if last.Width != width {
			conflicts = append(conflicts, errors.Wrapf(ErrAliasWidth, "%s %d != %d (%s)", id, width, last.Width, path))
		}
		last.Aliases++
	}
	return c, conflicts
}

// Len returns the number of distinct identifiers.
func (c *Catalog) Len() int {
	return len(c.Signals)
}

// Names returns the name arena the catalog was built from.
func (c *Catalog) Names() *NameArena {
	return c.names
}

// SignalName returns the qualified name of the first alias of s.
func (c *Catalog) SignalName(s *Signal) string {
	_, _, path := splitRecord(c.names.Record(c.sorted[s.Name]))
	return string(path)
}

// AliasNames returns the qualified names of every alias of s.
func (c *Catalog) AliasNames(s *Signal) []string {
	res := make([]string, 0, s.Aliases)
	for i := s.Name; i < s.Name+s.Aliases; i++ {
		_, _, path := splitRecord(c.names.Record(c.sorted[i]))
		res = append(res, string(path))
	}
	return res
}

// Header is the result of the declaration pass.
type Header struct {
	Catalog   *Catalog
	Index     *Index
	Lines     uint64  // lines consumed up to $enddefinitions
	Conflicts []error // alias width conflicts
}

// FindSignal returns the first declared signal whose qualified name
// contains fragment, in declaration order, and the matching name.
func (h *Header) FindSignal(fragment string) (*Signal, string) {
	names := h.Catalog.names
	for _, off := range names.Offsets() {
		id, _, path := splitRecord(names.Record(off))
		if !bytes.Contains(path, []byte(fragment)) {
			continue
		}
		if s := h.Index.Lookup(id); s != nil {
			return s, string(path)
		}
	}
	return nil, ""
}

// String summarises the header like the preamble notice of the analyzer.
func (h *Header) String() string {
	return fmt.Sprintf("%d lines, %d signames, %d ids, max var %d, tot %d bits",
		h.Lines, h.Catalog.names.Len(), h.Catalog.Len(), h.Catalog.MaxWidth, h.Catalog.TotalBits)
}
