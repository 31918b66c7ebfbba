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


// Package importer merges contact files into an existing index.
//
// Files are read and decoded concurrently on a worker pool. Only decoding runs
// in parallel: the decoded records are inserted into the index afterwards, on
// the calling goroutine, file by file in the order the paths were given. When
// two files hold the same contact the later file wins, exactly as if the files
// had been loaded one after another.
//
// A missing or unreadable file does not stop the import. Its Report carries
// the status and error, and the remaining files are still merged.
package importer
