// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"strings"
)

// Alphabet is the number of distinct key letters ('a' through 'z').
const Alphabet = 26

// LetterIndex folds an ASCII byte to lowercase and returns its position in
// the key alphabet. ok is false for anything outside 'a'-'z' after folding,
// including every byte of a multi-byte UTF-8 sequence.
func LetterIndex(ch byte) (idx int, ok bool) {
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}
	if ch < 'a' || ch > 'z' {
		return 0, false
	}
	return int(ch - 'a'), true
}

// FoldKey returns the index key for a display name: ASCII letters lowercased,
// every other byte dropped. "Jo-Ann" and "JoAnn" both fold to "joann".
func FoldKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		if idx, ok := LetterIndex(name[i]); ok {
			b.WriteByte(byte('a' + idx))
		}
	}
	return b.String()
}

// ValidateContact validates a Contact before it is accepted by a Book.
//
// Validation rules:
//   - Name must fold to a non-empty key
//   - Number must not be empty
//
// NOT validated:
//   - Number format (numbers are opaque strings)
func ValidateContact(contact *Contact) error {
	if contact == nil {
		return fmt.Errorf("%w: contact is nil", ErrInvalidContact)
	}

	if contact.Key() == "" {
		return fmt.Errorf("%w: %w: %q", ErrInvalidContact, ErrEmptyKey, contact.Name)
	}

	if contact.Number == "" {
		return fmt.Errorf("%w: %w", ErrInvalidContact, ErrEmptyNumber)
	}

	return nil
}
