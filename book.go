package rolodex

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/rolodex/codec"
	"github.com/poiesic/rolodex/core"
	"github.com/poiesic/rolodex/storage"
	"github.com/poiesic/rolodex/storage/file"
	"github.com/poiesic/rolodex/trie"
)

// Book is a contact index bound to the repository it was loaded from.
// A Book is not safe for concurrent use.
type Book struct {
	index  *trie.Index
	repo   storage.ContactRepository
	source string
	logger *slog.Logger
	status LoadStatus
	closed bool
}

// BookOption configures a Book.
type BookOption func(*bookOptions)

type bookOptions struct {
	repo     storage.ContactRepository
	fileOpts []file.Option
	logger   *slog.Logger
}

// WithRepository uses repo instead of selecting one from the path.
// The Book takes ownership and closes it on Close.
func WithRepository(repo storage.ContactRepository) BookOption {
	return func(o *bookOptions) {
		o.repo = repo
	}
}

// WithFormat fixes the text format of a contact file instead of choosing it
// by extension. It has no effect on BadgerDB stores.
func WithFormat(f codec.Format) BookOption {
	return func(o *bookOptions) {
		o.fileOpts = append(o.fileOpts, file.WithFormat(f))
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) BookOption {
	return func(o *bookOptions) {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
	}
}

// Open loads the contact store at path into a new Book.
//
// The repository is chosen by OpenRepository unless WithRepository is given.
// If the repository cannot be opened, Open returns a nil Book. Otherwise the
// Book starts empty when the store is missing or unusable and the report
// says why. A corrupt or unreadable store is also returned as the error so
// the caller can decide whether to carry on; a Book over an unreadable store
// never saves (see Save).
func Open(ctx context.Context, path string, opts ...BookOption) (*Book, LoadReport, error) {
	options := &bookOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	repo := options.repo
	if repo == nil {
		var err error
		repo, err = OpenRepository(path, options.fileOpts...)
		if err != nil {
			return nil, LoadReport{Source: path, Status: LoadStatusFailed}, err
		}
	}

	idx, report, err := load(ctx, repo, path, options.logger)
	return &Book{
		index:  idx,
		repo:   repo,
		source: path,
		logger: options.logger,
		status: report.Status,
	}, report, err
}

// Source returns the path the Book was opened with.
func (b *Book) Source() string {
	return b.source
}

// Index returns the underlying index.
func (b *Book) Index() *trie.Index {
	return b.index
}

// Add stores a contact, replacing the number of an existing contact with the
// same folded name. Numbers are otherwise free-form, but Add rejects names
// without letters (core.ErrEmptyKey) and empty numbers (core.ErrEmptyNumber).
// Loading a store applies neither rule.
func (b *Book) Add(name, number string) error {
	if b.closed {
		return ErrBookClosed
	}
	contact := core.Contact{Name: name, Number: number}
	if err := core.ValidateContact(&contact); err != nil {
		return err
	}
	b.index.Insert(name, number)
	b.logger.Debug("contact added", "name", name, "key", contact.Key())
	return nil
}

// Suggest returns the contacts whose folded name starts with the folded
// prefix, in ascending key order. It returns ErrNoSuggestions when nothing
// matches.
func (b *Book) Suggest(prefix string) ([]core.Contact, error) {
	if b.closed {
		return nil, ErrBookClosed
	}
	matches := b.index.Autocomplete(prefix)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w for %q", ErrNoSuggestions, prefix)
	}
	return matches, nil
}

// Lookup returns the number stored for name.
func (b *Book) Lookup(name string) (string, bool) {
	if b.closed {
		return "", false
	}
	return b.index.Lookup(name)
}

// Remove deletes the contact stored under the folded name.
// Returns an error wrapping storage.ErrNotFound if there is none.
func (b *Book) Remove(name string) error {
	if b.closed {
		return ErrBookClosed
	}
	if !b.index.Delete(name) {
		return fmt.Errorf("%w: %q", storage.ErrNotFound, name)
	}
	b.logger.Debug("contact removed", "name", name)
	return nil
}

// Contacts returns every contact in ascending key order.
func (b *Book) Contacts() []core.Contact {
	return codec.Records(b.index)
}

// Len returns the number of stored contacts.
func (b *Book) Len() int {
	return b.index.Len()
}

// Save writes every contact back to the repository. On failure the in-memory
// contacts are unchanged and Save can be retried.
//
// A Book whose store could not be read (LoadStatusFailed) never saves: the
// store may still hold contacts that were not loaded. Save returns
// ErrStoreUnreadable instead. A corrupt store (LoadStatusParseError) is
// replaced.
func (b *Book) Save(ctx context.Context) error {
	if b.closed {
		return ErrBookClosed
	}
	if b.status == LoadStatusFailed {
		return fmt.Errorf("%w: %s", ErrStoreUnreadable, b.source)
	}
	return save(ctx, b.index, b.repo, b.source, b.logger)
}

// Close releases the repository. It does not save.
func (b *Book) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if err := b.repo.Close(); err != nil {
		b.logger.Error("error closing contact repository", "err", err)
		return err
	}
	return nil
}
