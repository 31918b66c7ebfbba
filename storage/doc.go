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


// Package storage provides the persistence abstraction layer for rolodex.
//
// This package defines the repository interface that decouples where a contact
// set lives from the in-memory index built over it. A file repository and a
// BadgerDB repository are provided and can be used interchangeably.
//
// # Architecture
//
// Persistence is whole-set: a repository loads every contact at session start
// and replaces every contact on save. There is no per-record update path.
//
//   - ContactRepository: load and save a contact set
//   - file.Repository: JSON or YAML file, replaced atomically
//   - badger.ContactRepository: one BadgerDB key per contact
//
// # Usage
//
// Open a file repository:
//
//	repo := file.NewRepository("contacts.json")
//	contacts, err := repo.LoadContacts(ctx)
//	if errors.Is(err, storage.ErrNotFound) {
//	    // nothing saved yet
//	}
//
// Use in tests with in-memory storage:
//
//	repo, err := badger.NewMemoryRepository()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer repo.Close()
//
// # Errors
//
// Repositories report a missing store with ErrNotFound, unreadable content with
// ErrSerializationFailed and failed writes with ErrWriteFailed. All are wrapped,
// so match them with errors.Is.
package storage
