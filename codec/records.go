package codec

import (
	"github.com/poiesic/rolodex/core"
	"github.com/poiesic/rolodex/trie"
)

// Records returns every contact in idx with its full key, in pre-order.
func Records(idx *trie.Index) []core.Contact {
	records := make([]core.Contact, 0, idx.Len())
	idx.Walk("", func(name, number string) bool {
		records = append(records, core.Contact{Name: name, Number: number})
		return true
	})
	return records
}

// Build returns a new index holding records, inserted in order. A later record
// replaces an earlier one with the same folded key.
func Build(records []core.Contact) *trie.Index {
	idx := trie.New()
	Fill(idx, records)
	return idx
}

// Fill inserts records into idx in order.
func Fill(idx *trie.Index, records []core.Contact) {
	for _, r := range records {
		idx.Insert(r.Name, r.Number)
	}
}
