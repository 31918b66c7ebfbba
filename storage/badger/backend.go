package badger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
)

// Backend owns a BadgerDB handle shared by the repositories in this package.
type Backend struct {
	db     *badger.DB
	logger *slog.Logger
}

// slogAdapter routes badger's printf-style logging into slog.
type slogAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = slogAdapter{}

func (a slogAdapter) logf(level slog.Level, format string, args ...any) {
	if !a.logger.Enabled(context.Background(), level) {
		return
	}
	a.logger.Log(context.Background(), level, strings.TrimSpace(fmt.Sprintf(format, args...)), "component", "badger")
}

func (a slogAdapter) Errorf(format string, args ...any)   { a.logf(slog.LevelError, format, args...) }
func (a slogAdapter) Warningf(format string, args ...any) { a.logf(slog.LevelWarn, format, args...) }
func (a slogAdapter) Infof(format string, args ...any)    { a.logf(slog.LevelInfo, format, args...) }
func (a slogAdapter) Debugf(format string, args ...any)   { a.logf(slog.LevelDebug, format, args...) }

// OpenBackend opens the database directory at path, creating it when missing.
// With inMemory set, path is ignored and nothing touches disk.
func OpenBackend(path string, inMemory bool) (*Backend, error) {
	logger := slog.Default()

	opts := badger.DefaultOptions("").WithInMemory(true)
	if !inMemory {
		if err := ensureDir(path); err != nil {
			return nil, err
		}
		opts = badger.DefaultOptions(path)
	}
	// contact values are a few bytes each
	opts.Compression = options.None
	opts.Logger = slogAdapter{logger: logger}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("badger opened", "path", path, "in_memory", inMemory)
	return &Backend{db: db, logger: logger}, nil
}

func ensureDir(path string) error {
	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return os.MkdirAll(path, 0755)
	case err != nil:
		return err
	case !info.IsDir():
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

// Close closes the database.
func (b *Backend) Close() error {
	return b.db.Close()
}

// IsClosed reports whether Close has been called.
func (b *Backend) IsClosed() bool {
	return b.db.IsClosed()
}

// WithTx runs fn in a transaction that is discarded afterwards. Writers must
// commit inside fn.
func (b *Backend) WithTx(fn func(tx *badger.Txn) error, isWrite bool) error {
	tx := b.db.NewTransaction(isWrite)
	defer tx.Discard()
	return fn(tx)
}

// Keys returns a copy of every key under prefix.
func (b *Backend) Keys(prefix []byte) ([][]byte, error) {
	var keys [][]byte
	err := b.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			keys = append(keys, iter.Item().KeyCopy(nil))
		}
		return nil
	}, false)
	return keys, err
}

// ReplacePrefix makes entries the only keys under prefix. Keys under prefix
// that entries does not produce are deleted. Writes go through a write batch,
// which splits into as many transactions as needed.
func (b *Backend) ReplacePrefix(prefix []byte, entries map[string][]byte) error {
	existing, err := b.Keys(prefix)
	if err != nil {
		return err
	}

	wb := b.db.NewWriteBatch()
	defer wb.Cancel()

	stale := 0
	for _, key := range existing {
		if _, keep := entries[string(key)]; keep {
			continue
		}
		if err := wb.Delete(key); err != nil {
			return err
		}
		stale++
	}
	for key, value := range entries {
		if err := wb.Set([]byte(key), value); err != nil {
			return err
		}
	}
	if err := wb.Flush(); err != nil {
		return err
	}
	b.logger.Debug("prefix replaced", "prefix", string(prefix), "set", len(entries), "deleted", stale)
	return nil
}
