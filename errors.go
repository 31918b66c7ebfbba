package rolodex

import "errors"

var (
	// ErrNoSuggestions is returned by Suggest when no stored contact matches
	// the prefix. It is not a failure of the book.
	ErrNoSuggestions = errors.New("no suggestions")

	// ErrBookClosed is returned by operations on a closed Book.
	ErrBookClosed = errors.New("book is closed")

	// ErrStoreUnreadable is returned by Save on a Book whose store could not be
	// read when it was opened.
	ErrStoreUnreadable = errors.New("contact store was not readable, refusing to overwrite it")
)
