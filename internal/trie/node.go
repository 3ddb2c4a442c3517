package trie

// Node is one character position in the trie
type Node struct {
	// char is the character on the edge leading into this node; unset for the root
	char rune

	// children maps the next character to the child node
	children map[rune]*Node

	// isEnd marks that the path from the root to this node is a stored word
	isEnd bool
}

func newNode(ch rune) *Node {
	return &Node{
		char:     ch,
		children: make(map[rune]*Node),
	}
}

// Trie is a prefix tree over a single vocabulary.
// It is not safe for concurrent use.
type Trie struct {
	root  *Node
	words int
}

// New creates a new empty trie
func New() *Trie {
	return &Trie{
		root: newNode(0),
	}
}

// Len returns the number of distinct words stored
func (t *Trie) Len() int {
	return t.words
}
