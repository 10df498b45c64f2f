package wordgrid

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
)

// PrefixResult is a dictionary word found as a prefix of some input. It holds
// both the word and its rank in sorted dictionary order.
type PrefixResult struct {
	Word  string
	Index int
}

// EnumFn is called by Index.Enumerate for every prefix in the index. Bytes of
// a word that are not valid UTF-8 appear in it as runes above utf8.MaxRune.
type EnumFn = func(index int, word []rune, final bool) EnumerationResult

// EnumerationResult is returned by an EnumFn to indicate whether enumeration
// should continue below the current prefix or stop altogether.
type EnumerationResult = int

const (
	// Continue enumerating all words with this prefix
	Continue EnumerationResult = iota

	// Skip will skip all words with this prefix
	Skip

	// Stop will immediately stop enumerating words
	Stop
)

const rootNode = 0

type indexEdge struct {
	ch    rune
	node  int
	count int // words ranked before this edge, relative to its source node
}

type indexNode struct {
	final bool
	edges []indexEdge // sorted by ch
}

// Index is a frozen, minimized Directed Acyclic Word Graph. Words sharing a
// suffix share nodes. It is immutable and safe for concurrent use.
type Index struct {
	nodes    []indexNode
	numWords int
	numEdges int
}

// Contains reports whether word is in the index.
func (idx *Index) Contains(word string) bool {
	return idx.IndexOf(word) >= 0
}

// IndexOf returns the rank of word in sorted dictionary order, or -1 if the
// word is absent.
func (idx *Index) IndexOf(word string) int {
	if len(idx.nodes) == 0 {
		return -1
	}

	skipped := 0
	node := rootNode
	for i := 0; i < len(word); {
		ch, n := nextKey(word[i:])
		i += n

		edge, ok := idx.edge(node, ch)
		if !ok {
			return -1
		}
		node = edge.node
		skipped += edge.count
	}

	if idx.nodes[node].final {
		return skipped
	}
	return -1
}

// FindAllPrefixesOf returns every word in the index that is a prefix of input,
// shortest first.
func (idx *Index) FindAllPrefixesOf(input string) []PrefixResult {
	var results []PrefixResult
	if len(idx.nodes) == 0 {
		return results
	}

	skipped := 0
	node := rootNode

	for pos := 0; pos < len(input); {
		ch, n := nextKey(input[pos:])
		if idx.nodes[node].final {
			results = append(results, PrefixResult{Word: input[:pos], Index: skipped})
		}

		edge, ok := idx.edge(node, ch)
		if !ok {
			return results
		}
		node = edge.node
		skipped += edge.count
		pos += n
	}

	if idx.nodes[node].final {
		results = append(results, PrefixResult{Word: input, Index: skipped})
	}
	return results
}

// Enumerate will call the given method, passing it every possible prefix of
// words in the index. Return Continue to continue enumeration, Skip to skip
// this branch, or Stop to stop enumeration.
func (idx *Index) Enumerate(fn EnumFn) {
	if len(idx.nodes) == 0 {
		return
	}
	idx.enumerate(0, rootNode, nil, fn)
}

func (idx *Index) enumerate(index int, node int, runes []rune, fn EnumFn) EnumerationResult {
	n := idx.nodes[node]

	result := fn(index, runes, n.final)
	if result != Continue {
		return result
	}

	l := len(runes)
	runes = append(runes, 0)
	for _, edge := range n.edges {
		runes[l] = edge.ch
		result = idx.enumerate(index+edge.count, edge.node, runes, fn)
		if result == Stop {
			return Stop
		}
	}
	return Continue
}

// NumWords returns the number of words in the index.
func (idx *Index) NumWords() int {
	return idx.numWords
}

// NumNodes returns the number of nodes after minimization.
func (idx *Index) NumNodes() int {
	return len(idx.nodes)
}

// NumEdges returns the number of edges after minimization.
func (idx *Index) NumEdges() int {
	return idx.numEdges
}

func (idx *Index) edge(node int, ch rune) (indexEdge, bool) {
	if node >= len(idx.nodes) {
		return indexEdge{}, false
	}
	edges := idx.nodes[node].edges
	i, ok := slices.BinarySearchFunc(edges, ch, func(e indexEdge, ch rune) int {
		return int(e.ch) - int(ch)
	})
	if !ok {
		return indexEdge{}, false
	}
	return edges[i], true
}

type edgeStart struct {
	node int
	ch   rune
}

type edgeEnd struct {
	node  int
	count int
}

type uncheckedNode struct {
	parent int
	ch     rune
	child  int
}

// builder incrementally constructs a minimized word graph. Words must arrive
// in strictly increasing order; Trie.Freeze guarantees that.
type builder struct {
	lastWord       []rune
	nextID         int
	numAdded       int
	uncheckedNodes []uncheckedNode
	minimizedNodes map[string]int
	names          map[int][]edgeStart // children of each node, in insertion order
	edges          map[edgeStart]edgeEnd
	final          map[int]bool
}

func newBuilder() *builder {
	return &builder{
		nextID:         1,
		minimizedNodes: make(map[string]int),
		names:          make(map[int][]edgeStart),
		edges:          make(map[edgeStart]edgeEnd),
		final:          make(map[int]bool),
	}
}

func (b *builder) add(word []rune) {
	if b.numAdded > 0 && slices.Compare(word, b.lastWord) <= 0 {
		panic(fmt.Sprintf("wordgrid: builder got %q after %q", keyString(word), keyString(b.lastWord)))
	}

	// find common prefix between word and previous word
	commonPrefix := 0
	for i := 0; i < min(len(word), len(b.lastWord)); i++ {
		if word[i] != b.lastWord[i] {
			break
		}
		commonPrefix++
	}

	// Check the uncheckedNodes for redundant nodes, proceeding from last
	// one down to the common prefix size. Then truncate the list at that
	// point.
	b.minimize(commonPrefix)

	node := rootNode
	if len(b.uncheckedNodes) > 0 {
		node = b.uncheckedNodes[len(b.uncheckedNodes)-1].child
	}

	for _, ch := range word[commonPrefix:] {
		next := b.newNode()
		b.addChild(node, ch, next)
		b.uncheckedNodes = append(b.uncheckedNodes, uncheckedNode{node, ch, next})
		node = next
	}

	b.final[node] = true
	b.lastWord = slices.Clone(word)
	b.numAdded++
}

func (b *builder) finish() *Index {
	b.minimize(0)

	cache := make(map[int]int)
	b.calculateSkipped(cache, rootNode)

	idx := b.renumber()
	idx.numWords = b.numAdded
	return idx
}

// renumber walks the graph from the root and lays the reachable nodes out
// consecutively. Nodes dropped during minimization are left behind.
func (b *builder) renumber() *Index {
	remap := map[int]int{rootNode: 0}
	order := []int{rootNode}

	for i := 0; i < len(order); i++ {
		for _, e := range b.names[order[i]] {
			if _, ok := remap[e.node]; !ok {
				remap[e.node] = len(order)
				order = append(order, e.node)
			}
		}
	}

	idx := &Index{nodes: make([]indexNode, len(order))}
	for newID, oldID := range order {
		children := b.names[oldID]
		edges := make([]indexEdge, 0, len(children))
		for _, e := range children {
			end := b.edges[edgeStart{oldID, e.ch}]
			edges = append(edges, indexEdge{ch: e.ch, node: remap[end.node], count: end.count})
		}
		idx.nodes[newID] = indexNode{final: b.final[oldID], edges: edges}
		idx.numEdges += len(edges)
	}
	return idx
}

func (b *builder) minimize(downTo int) {
	// proceed from the leaf up to a certain point
	for i := len(b.uncheckedNodes) - 1; i >= downTo; i-- {
		u := b.uncheckedNodes[i]
		name := b.nameOf(u.child)
		if node, ok := b.minimizedNodes[name]; ok {
			// replace the child with the previously encountered one
			b.replaceChild(u.parent, u.ch, node)
		} else {
			b.minimizedNodes[name] = u.child
		}
	}

	b.uncheckedNodes = b.uncheckedNodes[:downTo]
}

func (b *builder) newNode() int {
	b.nextID++
	return b.nextID - 1
}

// nameOf identifies a node by its outgoing edges and finality, so that two
// nodes with equal names accept the same set of suffixes.
func (b *builder) nameOf(node int) string {
	buff := bytes.Buffer{}
	for _, edge := range b.names[node] {
		buff.WriteByte('_')
		buff.WriteRune(edge.ch)
		buff.WriteByte(':')
		buff.WriteString(strconv.Itoa(edge.node))
	}

	if b.final[node] {
		buff.WriteByte('!')
	}

	return buff.String()
}

func (b *builder) addChild(parent int, ch rune, child int) {
	b.names[parent] = append(b.names[parent], edgeStart{child, ch})
	b.edges[edgeStart{parent, ch}] = edgeEnd{node: child}
}

func (b *builder) replaceChild(parent int, ch rune, child int) {
	start := edgeStart{parent, ch}
	oldChild := b.edges[start].node

	// remove all edges out of the old child to save memory
	for _, e := range b.names[oldChild] {
		delete(b.edges, edgeStart{node: oldChild, ch: e.ch})
	}
	delete(b.names, oldChild)
	delete(b.final, oldChild)

	name := b.names[parent]
	for i := range name {
		if name[i].ch == ch {
			name[i].node = child
			break
		}
	}

	b.edges[start] = edgeEnd{node: child}
}

// calculateSkipped records on each edge how many words rank below it among
// its siblings, and returns the number of words reachable from node.
func (b *builder) calculateSkipped(cache map[int]int, node int) int {
	if count, ok := cache[node]; ok {
		return count
	}

	numReachable := 0
	if b.final[node] {
		numReachable++
	}

	for _, e := range b.names[node] {
		start := edgeStart{node: node, ch: e.ch}
		end := b.edges[start]
		end.count = numReachable
		b.edges[start] = end
		numReachable += b.calculateSkipped(cache, e.node)
	}

	cache[node] = numReachable
	return numReachable
}
