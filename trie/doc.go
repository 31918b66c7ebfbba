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


// Package trie implements the prefix index behind rolodex autocompletion.
//
// An Index maps folded contact names to phone numbers. Keys are built from the
// ASCII letters of a name only: letters are lowercased and every other byte is
// dropped, so "Jo-Ann" and "JoAnn" are the same contact. Queries fold their
// prefix the same way.
//
// # Ordering
//
// Every enumeration (Walk, Autocomplete and the codec's full export) is a
// pre-order traversal visiting children from 'a' to 'z'. A stored key is
// therefore reported before any longer key it prefixes, and results come out
// in ascending lexicographic order of their folded keys. The order depends only
// on the set of stored keys, never on insertion order.
//
// # Concurrency
//
// An Index is not safe for concurrent use. Callers that share one between
// goroutines must guard every operation with a single lock.
package trie
