package trie

import "github.com/poiesic/rolodex/core"

// VisitFunc is called for every stored contact reached by a walk. Returning
// false stops the walk.
type VisitFunc func(name, number string) bool

// Index is a prefix tree of contact names.
type Index struct {
	root *node
	size int
}

// New creates an empty index.
func New() *Index {
	return &Index{root: newNode()}
}

// Insert stores number under the folded key of name, replacing any number
// already stored for that key. Bytes that are not ASCII letters are skipped.
// A name without letters is stored under the empty key at the root.
func (t *Index) Insert(name, number string) {
	n := t.root
	for i := 0; i < len(name); i++ {
		idx, ok := core.LetterIndex(name[i])
		if !ok {
			continue
		}
		n = n.child(idx)
	}
	if !n.terminal {
		t.size++
	}
	n.mark(number)
}

// find descends along the folded letters of s. It returns nil when the path
// leaves the tree.
func (t *Index) find(s string) *node {
	n := t.root
	for i := 0; i < len(s); i++ {
		idx, ok := core.LetterIndex(s[i])
		if !ok {
			continue
		}
		n = n.children[idx]
		if n == nil {
			return nil
		}
	}
	return n
}

// Lookup returns the number stored under the folded key of name.
func (t *Index) Lookup(name string) (string, bool) {
	n := t.find(name)
	if n == nil || !n.terminal {
		return "", false
	}
	return n.number, true
}

// Walk visits every contact whose key starts with the folded prefix, in
// pre-order with children taken from 'a' to 'z'. Each visited name is the
// literal prefix followed by the lowercase letters below the prefix node.
// An unknown prefix visits nothing.
func (t *Index) Walk(prefix string, fn VisitFunc) {
	n := t.find(prefix)
	if n == nil {
		return
	}
	walk(n, []byte(prefix), fn)
}

// walk appends one letter per level. Siblings reuse the same backing array
// since each overwrites the slot its predecessor used; names are copied out
// only when a terminal node is reported.
func walk(n *node, path []byte, fn VisitFunc) bool {
	if n.terminal && !fn(string(path), n.number) {
		return false
	}
	for i, c := range n.children {
		if c == nil {
			continue
		}
		if !walk(c, append(path, byte('a'+i)), fn) {
			return false
		}
	}
	return true
}

// Autocomplete returns every contact whose key starts with the folded prefix,
// in Walk order. The result is empty when the prefix is unknown or has no
// completions.
func (t *Index) Autocomplete(prefix string) []core.Contact {
	results := []core.Contact{}
	t.Walk(prefix, func(name, number string) bool {
		results = append(results, core.Contact{Name: name, Number: number})
		return true
	})
	return results
}

// Delete removes the contact stored under the folded key of name and prunes
// nodes left without a terminal descendant. It reports whether a contact was
// removed.
func (t *Index) Delete(name string) bool {
	// record the path so emptied nodes can be unlinked bottom-up
	path := []*node{t.root}
	letters := []int{}
	n := t.root
	for i := 0; i < len(name); i++ {
		idx, ok := core.LetterIndex(name[i])
		if !ok {
			continue
		}
		n = n.children[idx]
		if n == nil {
			return false
		}
		path = append(path, n)
		letters = append(letters, idx)
	}
	if !n.terminal {
		return false
	}
	n.unmark()
	t.size--

	for i := len(path) - 1; i > 0; i-- {
		cur := path[i]
		if cur.terminal || !cur.isLeaf() {
			break
		}
		path[i-1].children[letters[i-1]] = nil
	}
	return true
}

// Len returns the number of stored contacts.
func (t *Index) Len() int {
	return t.size
}

// Clear removes every contact.
func (t *Index) Clear() {
	t.root = newNode()
	t.size = 0
}
