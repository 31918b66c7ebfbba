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


package rolodex

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/poiesic/rolodex/codec"
	"github.com/poiesic/rolodex/storage"
	"github.com/poiesic/rolodex/storage/badger"
	"github.com/poiesic/rolodex/storage/file"
	"github.com/poiesic/rolodex/trie"
)

// LoadStatus describes the outcome of loading a contact store.
type LoadStatus int

const (
	// LoadStatusLoaded means the store was read and its records inserted.
	LoadStatusLoaded LoadStatus = iota
	// LoadStatusNotFound means nothing was stored yet; the index starts empty.
	LoadStatusNotFound
	// LoadStatusParseError means the stored data was unreadable; the index starts empty.
	LoadStatusParseError
	// LoadStatusFailed means the store could not be read at all; the index starts empty.
	LoadStatusFailed
)

func (s LoadStatus) String() string {
	switch s {
	case LoadStatusLoaded:
		return "loaded"
	case LoadStatusNotFound:
		return "not found"
	case LoadStatusParseError:
		return "parse error"
	case LoadStatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("LoadStatus(%d)", int(s))
	}
}

// LoadReport summarizes a load.
type LoadReport struct {
	Source  string
	Status  LoadStatus
	Records int // records read from the store, before key collisions collapse
}

// StatusOf classifies the error returned by ContactRepository.LoadContacts.
func StatusOf(err error) LoadStatus {
	switch {
	case err == nil:
		return LoadStatusLoaded
	case errors.Is(err, storage.ErrNotFound):
		return LoadStatusNotFound
	case errors.Is(err, storage.ErrSerializationFailed):
		return LoadStatusParseError
	default:
		return LoadStatusFailed
	}
}

// Load builds an index from every record in repo, inserting in storage order.
//
// The returned index is never nil. A store with nothing saved yet yields an
// empty index, LoadStatusNotFound and a nil error. Unreadable data yields an
// empty index, LoadStatusParseError and an error wrapping
// storage.ErrSerializationFailed; the caller decides whether to continue.
func Load(ctx context.Context, repo storage.ContactRepository) (*trie.Index, LoadReport, error) {
	return load(ctx, repo, "", slog.Default())
}

func load(ctx context.Context, repo storage.ContactRepository, source string, logger *slog.Logger) (*trie.Index, LoadReport, error) {
	report := LoadReport{Source: source}

	contacts, err := repo.LoadContacts(ctx)
	report.Status = StatusOf(err)
	switch report.Status {
	case LoadStatusNotFound:
		logger.Info("contact store not found, starting empty", "source", source)
		return trie.New(), report, nil
	case LoadStatusParseError:
		logger.Warn("contact store is corrupt, starting empty", "source", source, "err", err)
		return trie.New(), report, err
	case LoadStatusFailed:
		logger.Error("error reading contact store", "source", source, "err", err)
		return trie.New(), report, err
	}

	idx := codec.Build(contacts)
	report.Records = len(contacts)
	logger.Info("contacts loaded", "source", source, "records", report.Records, "contacts", idx.Len())
	return idx, report, nil
}

// LoadFromFile loads a JSON or YAML contact file. See Load for the result
// contract; a missing file is LoadStatusNotFound.
func LoadFromFile(ctx context.Context, path string) (*trie.Index, LoadReport, error) {
	repo := file.NewRepository(path)
	defer repo.Close()
	return load(ctx, repo, path, slog.Default())
}

// Save writes every contact in idx to repo, replacing what was stored.
// idx is not modified. Failures wrap storage.ErrWriteFailed.
func Save(ctx context.Context, idx *trie.Index, repo storage.ContactRepository) error {
	return save(ctx, idx, repo, "", slog.Default())
}

func save(ctx context.Context, idx *trie.Index, repo storage.ContactRepository, dest string, logger *slog.Logger) error {
	records := codec.Records(idx)
	if err := repo.SaveContacts(ctx, records); err != nil {
		logger.Error("error saving contacts", "destination", dest, "err", err)
		return err
	}
	logger.Info("contacts saved", "destination", dest, "contacts", len(records))
	return nil
}

// SaveToFile writes idx to a JSON or YAML file chosen by extension. The file
// is replaced atomically: after a failed save the previous file is intact.
func SaveToFile(ctx context.Context, idx *trie.Index, path string) error {
	repo := file.NewRepository(path)
	defer repo.Close()
	return save(ctx, idx, repo, path, slog.Default())
}

// OpenRepository selects a repository for path. Existing directories and
// paths ending in ".badger" open a BadgerDB database; anything else is a
// contact file, configured by opts.
func OpenRepository(path string, opts ...file.Option) (storage.ContactRepository, error) {
	if isBadgerPath(path) {
		repo, err := badger.OpenContactRepository(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		return repo, nil
	}
	return file.NewRepository(path, opts...), nil
}

func isBadgerPath(path string) bool {
	if strings.EqualFold(filepath.Ext(path), ".badger") {
		return true
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
