package storage

import (
	"fmt"

	"github.com/poiesic/rolodex/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return id, nil
}

// MarshalContact serializes a Contact to bytes.
func MarshalContact(contact *core.Contact) []byte {
	buf := make([]byte, core.ContactMUS.Size(*contact))
	core.ContactMUS.Marshal(*contact, buf)
	return buf
}

// UnmarshalContact deserializes a Contact from bytes.
func UnmarshalContact(data []byte) (*core.Contact, error) {
	contact, _, err := core.ContactMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &contact, nil
}
