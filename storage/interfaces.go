package storage

import (
	"context"

	"github.com/poiesic/rolodex/core"
)

// ContactRepository persists a complete contact set.
type ContactRepository interface {
	// LoadContacts returns every persisted contact in storage order.
	// Returns ErrNotFound if nothing has been persisted yet.
	// Returns an error wrapping ErrSerializationFailed if the stored data is unreadable.
	LoadContacts(ctx context.Context) ([]core.Contact, error)

	// SaveContacts replaces the persisted set with contacts.
	// Returns an error wrapping ErrWriteFailed if the destination cannot be written;
	// the previously persisted set is left in place in that case.
	SaveContacts(ctx context.Context, contacts []core.Contact) error

	// Close releases resources held by the repository.
	Close() error
}
