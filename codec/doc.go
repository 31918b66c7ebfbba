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


// Package codec converts between a trie.Index and the flat contact record list
// used for persistence.
//
// Records walks the whole index in pre-order, so the record list always comes
// out sorted by folded key. Build inserts records in list order. Because the
// walk order depends only on which keys are stored, Records(Build(r)) equals
// Records of the index r was taken from.
//
// Two text formats are supported, both holding an ordered list of objects with
// string fields "name" and "number":
//
//	[
//	  {"name": "anand", "number": "222"},
//	  {"name": "ananya", "number": "111"}
//	]
//
// JSON is the default. YAML is selected for .yaml and .yml paths.
package codec
