package trie

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// ignored reports whether s is empty, whitespace only or not valid UTF-8.
// Invalid bytes would all decode to utf8.RuneError and share one path.
func ignored(s string) bool {
	return strings.TrimSpace(s) == "" || !utf8.ValidString(s)
}

// Insert adds word to the trie. Blank or invalid UTF-8 words are ignored.
func (t *Trie) Insert(word string) {
	if ignored(word) {
		return
	}

	node := t.root
	for _, ch := range word {
		child, exists := node.children[ch]
		if !exists {
			child = newNode(ch)
			node.children[ch] = child
		}
		node = child
	}
	if !node.isEnd {
		node.isEnd = true
		t.words++
	}
}

// Search reports whether word was inserted as a complete word
func (t *Trie) Search(word string) bool {
	if ignored(word) {
		return false
	}
	node := t.findNode(word)
	return node != nil && node.isEnd
}

// findNode returns the node at the end of key's path, or nil if the path breaks
func (t *Trie) findNode(key string) *Node {
	node := t.root
	for _, ch := range key {
		child, exists := node.children[ch]
		if !exists {
			return nil
		}
		node = child
	}
	return node
}

// SearchPrefix returns every stored word starting with prefix, including
// prefix itself when it is stored. The order of the results is unspecified.
func (t *Trie) SearchPrefix(prefix string) []string {
	results := []string{}
	if ignored(prefix) {
		return results
	}
	node := t.findNode(prefix)
	if node == nil {
		return results
	}

	// Iterative DFS so deep subtrees don't grow the call stack. path holds
	// the word spelled down to the node being visited.
	type frame struct {
		node  *Node
		depth int
	}
	path := []rune(prefix)
	base := len(path)
	stack := []frame{{node: node, depth: base}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.depth > base {
			path = append(path[:top.depth-1], top.node.char)
		}
		if top.node.isEnd {
			results = append(results, string(path[:top.depth]))
		}
		for _, child := range top.node.children {
			stack = append(stack, frame{node: child, depth: top.depth + 1})
		}
	}
	return results
}

// WalkFunc is called for each word visited by Walk.
// If the function returns false, the walk stops.
type WalkFunc func(word string) bool

// Walk visits the stored words starting with prefix in lexicographical order.
// A blank or invalid UTF-8 prefix visits nothing.
func (t *Trie) Walk(prefix string, f WalkFunc) {
	if ignored(prefix) {
		return
	}
	node := t.findNode(prefix)
	if node == nil {
		return
	}
	walkNode(node, prefix, f)
}

// walkNode visits node and its subtree, returning false once f asks to stop
func walkNode(node *Node, word string, f WalkFunc) bool {
	if node.isEnd && !f(word) {
		return false
	}

	// Sort children to keep the traversal order stable
	children := make([]rune, 0, len(node.children))
	for ch := range node.children {
		children = append(children, ch)
	}
	sort.Slice(children, func(i, j int) bool { return children[i] < children[j] })

	for _, ch := range children {
		if !walkNode(node.children[ch], word+string(ch), f) {
			return false
		}
	}
	return true
}
