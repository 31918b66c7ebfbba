package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a stable identifier for a stored contact key.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Contact is a single (name, number) pair as exchanged between the index,
// the text codecs and the storage repositories.
type Contact struct {
	Name   string `json:"name" yaml:"name"`
	Number string `json:"number" yaml:"number"`
}

// Key returns the folded index key for the contact name.
func (c *Contact) Key() string {
	return FoldKey(c.Name)
}

// ID returns the content-based ID of the contact's folded key.
func (c *Contact) ID() ID {
	return IDFromContent(c.Key())
}
