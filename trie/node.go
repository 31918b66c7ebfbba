package trie

import "github.com/poiesic/rolodex/core"

// node is a single trie vertex. children are indexed by letter ('a' = 0).
type node struct {
	children [core.Alphabet]*node

	// terminal marks the end of a stored key
	terminal bool

	// number is the payload of a terminal node; empty otherwise
	number string
}

func newNode() *node {
	return &node{}
}

// child returns the child for letter index idx, creating it when missing.
func (n *node) child(idx int) *node {
	if n.children[idx] == nil {
		n.children[idx] = newNode()
	}
	return n.children[idx]
}

// mark makes n terminal with the given number, discarding any previous one.
func (n *node) mark(number string) {
	n.terminal = true
	n.number = number
}

// unmark clears the terminal flag and payload.
func (n *node) unmark() {
	n.terminal = false
	n.number = ""
}

// isLeaf reports whether n has no children.
func (n *node) isLeaf() bool {
	for _, c := range n.children {
		if c != nil {
			return false
		}
	}
	return true
}
