package importer

import "errors"

var (
	// ErrNoSources is returned when Import is called without any paths.
	ErrNoSources = errors.New("no import sources")

	// ErrIndexRequired is returned when Import is called with a nil index.
	ErrIndexRequired = errors.New("index required")
)
