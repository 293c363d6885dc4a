package roster

import (
	"fmt"
	"slices"
	"strings"
)

// index is a sorted alias table. Aliases are case-sensitive and compared
// byte-wise; insertion keeps the slice ordered so lookups and listings are
// binary searches and straight walks. Entries never leave once added.
type index[ID ~uint32] struct {
	entries []indexEntry[ID]
}

type indexEntry[ID ~uint32] struct {
	alias string
	id    ID
}

func compareEntries[ID ~uint32](a, b indexEntry[ID]) int {
	return strings.Compare(a.alias, b.alias)
}

// insert places the alias at its sort position. A duplicate alias is
// refused without changing the index.
func (ix *index[ID]) insert(alias string, id ID) error {
	probe := indexEntry[ID]{alias: alias}
	pos, found := slices.BinarySearchFunc(ix.entries, probe, compareEntries[ID])
	if found {
		return fmt.Errorf("alias %q: %w", alias, ErrAliasInUse)
	}
	ix.entries = slices.Insert(ix.entries, pos, indexEntry[ID]{alias: alias, id: id})
	return nil
}

// lookup resolves an alias to its id.
func (ix *index[ID]) lookup(alias string) (ID, bool) {
	probe := indexEntry[ID]{alias: alias}
	pos, found := slices.BinarySearchFunc(ix.entries, probe, compareEntries[ID])
	if !found {
		var zero ID
		return zero, false
	}
	return ix.entries[pos].id, true
}

func (ix *index[ID]) len() int {
	return len(ix.entries)
}
