package badger

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/rolodex/core"
	"github.com/poiesic/rolodex/storage"
)

// ContactRepository implements storage.ContactRepository for BadgerDB.
// Each contact is stored under its own key with a mus-encoded value.
type ContactRepository struct {
	backend *Backend
	owned   bool
}

var _ storage.ContactRepository = (*ContactRepository)(nil)

// NewContactRepository creates a new ContactRepository on an open backend.
// The caller keeps ownership of the backend.
func NewContactRepository(backend *Backend) (*ContactRepository, error) {
	return &ContactRepository{
		backend: backend,
	}, nil
}

// OpenContactRepository opens the database directory at path and returns a
// repository that closes it on Close.
func OpenContactRepository(path string) (*ContactRepository, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return &ContactRepository{
		backend: backend,
		owned:   true,
	}, nil
}

// Close closes the backend if the repository opened it.
func (r *ContactRepository) Close() error {
	if !r.owned || r.backend.IsClosed() {
		return nil
	}
	return r.backend.Close()
}

// LoadContacts returns every stored contact in key order.
// Returns storage.ErrNotFound if the database holds no contacts.
func (r *ContactRepository) LoadContacts(ctx context.Context) ([]core.Contact, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var contacts []core.Contact
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = contactKeyPrefix()
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := iter.Item()
			err := item.Value(func(val []byte) error {
				contact, err := storage.UnmarshalContact(val)
				if err != nil {
					return fmt.Errorf("key %x: %w", item.Key(), err)
				}
				id, err := contactKeyID(item.Key())
				if err != nil {
					return fmt.Errorf("key %x: %w", item.Key(), err)
				}
				if id != contact.ID() {
					return fmt.Errorf("%w: key %x does not match contact %q",
						storage.ErrSerializationFailed, item.Key(), contact.Name)
				}
				contacts = append(contacts, *contact)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	if len(contacts) == 0 {
		return nil, storage.ErrNotFound
	}
	return contacts, nil
}

// SaveContacts replaces every stored contact with contacts. Contacts sharing a
// folded key collapse to the last one given.
func (r *ContactRepository) SaveContacts(ctx context.Context, contacts []core.Contact) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	entries := make(map[string][]byte, len(contacts))
	for i := range contacts {
		if err := ctx.Err(); err != nil {
			return err
		}
		contact := &contacts[i]
		entries[string(makeContactKey(contact.ID()))] = storage.MarshalContact(contact)
	}

	err := r.backend.ReplacePrefix(contactKeyPrefix(), entries)
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrWriteFailed, err)
	}
	return nil
}
