package wordgrid

import (
	"slices"
	"sync"
)

type trieNode struct {
	children map[rune]*trieNode
	terminal bool
}

// Trie is a prefix tree over a dictionary. Words may be inserted in any order
// and any number of times. Queries are safe alongside inserts, but the
// intended use is to load every word first and query afterwards, or to Freeze
// the loaded trie into an Index.
type Trie struct {
	mu   sync.RWMutex
	root trieNode
	size int
}

// NewTrie creates an empty trie.
func NewTrie() *Trie {
	return &Trie{}
}

// BuildTrie creates a trie holding every word in words.
func BuildTrie(words []string) *Trie {
	t := NewTrie()
	for _, word := range words {
		t.Insert(word)
	}
	return t
}

// Insert adds word. Inserting a word twice has no further effect. Inserting
// the empty string marks the root as a word.
func (t *Trie) Insert(word string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	node := &t.root
	for i := 0; i < len(word); {
		ch, n := nextKey(word[i:])
		i += n

		child, ok := node.children[ch]
		if !ok {
			if node.children == nil {
				node.children = make(map[rune]*trieNode)
			}
			child = &trieNode{}
			node.children[ch] = child
		}
		node = child
	}

	if !node.terminal {
		node.terminal = true
		t.size++
	}
}

// Contains reports whether word was inserted.
func (t *Trie) Contains(word string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(word)
	return node != nil && node.terminal
}

// HasPrefix reports whether some inserted word starts with prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(prefix)
	return node != nil && (node.terminal || len(node.children) > 0)
}

func (t *Trie) find(s string) *trieNode {
	node := &t.root
	for i := 0; i < len(s); {
		ch, n := nextKey(s[i:])
		i += n

		child, ok := node.children[ch]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

// Len returns the number of distinct words.
func (t *Trie) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// Words returns every word in increasing order.
func (t *Trie) Words() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	words := make([]string, 0, t.size)
	t.walk(func(word []rune) {
		words = append(words, keyString(word))
	})
	return words
}

// walk calls fn for the keys of each word in increasing key order. Key order
// matches byte order for valid UTF-8, so such words arrive in string order.
func (t *Trie) walk(fn func(word []rune)) {
	var visit func(node *trieNode, prefix []rune)
	visit = func(node *trieNode, prefix []rune) {
		if node.terminal {
			fn(prefix)
		}

		keys := make([]rune, 0, len(node.children))
		for ch := range node.children {
			keys = append(keys, ch)
		}
		slices.Sort(keys)

		for _, ch := range keys {
			visit(node.children[ch], append(prefix, ch))
		}
	}
	visit(&t.root, nil)
}

// Freeze builds an Index answering the same membership queries as t. The trie
// is left untouched and may keep being used.
func (t *Trie) Freeze() *Index {
	t.mu.RLock()
	defer t.mu.RUnlock()

	b := newBuilder()
	t.walk(func(word []rune) {
		b.add(word)
	})
	return b.finish()
}
