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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogOf(t *testing.T, ids ...string) *Catalog {
	t.Helper()
	names := newNameArena()
	for i, id := range ids {
		names.Append([]byte(id), 1, []byte(fmt.Sprintf("top.s%d", i)))
	}
	c, conflicts := newCatalog(names)
	require.Empty(t, conflicts)
	return c
}

func TestBucket_UsesFirstThreeCharacters(t *testing.T) {
	assert.Equal(t, 0, bucket(" "))
	assert.Equal(t, 1*alphabetSize*alphabetSize, bucket("!"))
	assert.Equal(t, bucket("abc"), bucket("abcdef"))
	assert.Equal(t, bucket([]byte("abc")), bucket("abc"))
	assert.Less(t, bucket("ab"), bucket("abc"))
	assert.Equal(t, bucketCount-1, bucket("\x7f\x7f\x7f"))
}

func TestBucket_InvalidCharacterZeroesRest(t *testing.T) {
	assert.Equal(t, bucket("a"), bucket("a\x01c"))
	assert.Equal(t, bucket("a"), bucket("a\xffc"))
	assert.Equal(t, 0, bucket("\x10bc"))
}

func TestIndex_LookupFindsEveryIdentifier(t *testing.T) {
	ids := []string{"!", "\"", "#", "!!", "!\"", "abc", "abcd", "abce", "ab", "~~~~", "a\x80", "a~"}
	c := catalogOf(t, ids...)
	idx := NewIndex(c)

	for _, id := range ids {
		s := idx.Lookup([]byte(id))
		require.NotNil(t, s, "id %q", id)
		assert.Equal(t, id, s.ID)
	}
}

func TestIndex_LookupUnknownIdentifier(t *testing.T) {
	idx := NewIndex(catalogOf(t, "!", "abc", "abe"))

	for _, id := range []string{"", "\"", "abd", "abcd", "zzz", "ab"} {
		assert.Nil(t, idx.Lookup([]byte(id)), "id %q", id)
	}
}

func TestIndex_EmptyCatalog(t *testing.T) {
	idx := NewIndex(catalogOf(t))
	assert.Nil(t, idx.Lookup([]byte("!")))
}

func TestIndex_LookupReturnsCatalogEntry(t *testing.T) {
	c := catalogOf(t, "a", "b")
	idx := NewIndex(c)
	s := idx.Lookup([]byte("b"))
	require.NotNil(t, s)
	assert.Same(t, &c.Signals[1], s)
}

func TestCompareID(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"a", "a", 0},
		{"a", "b", -1},
		{"b", "a", 1},
		{"a", "ab", -1},
		{"ab", "a", 1},
		{"\x80", "~", 1},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, compareID(test.a, []byte(test.b)), "%q vs %q", test.a, test.b)
	}
}

func BenchmarkIndex_Lookup(b *testing.B) {
	names := newNameArena()
	var ids [][]byte
	for i := 0; i < 100_000; i++ {
		id := []byte{byte('!' + i%94), byte('!' + i/94%94), byte('!' + i/94/94%94)}
		ids = append(ids, id)
		names.Append(id, 1, []byte("s"))
	}
	c, _ := newCatalog(names)
	idx := NewIndex(c)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if idx.Lookup(ids[i%len(ids)]) == nil {
			b.Fatal("missing id")
		}
	}
}
