package badger

import (
	"github.com/poiesic/rolodex/core"
	"github.com/poiesic/rolodex/storage"
)

// Key prefixes for different data types
const (
	contactPrefix = "contact"
)

// makeContactKey generates a key for a contact by the ID of its folded name.
func makeContactKey(id core.ID) []byte {
	return append(contactKeyPrefix(), storage.MarshalID(id)...)
}

// contactKeyID decodes the ID suffix of a contact key.
func contactKeyID(key []byte) (core.ID, error) {
	return storage.UnmarshalID(key[len(contactPrefix)+1:])
}

// contactKeyPrefix is the iteration prefix covering every contact key.
func contactKeyPrefix() []byte {
	return []byte(contactPrefix + ":")
}
