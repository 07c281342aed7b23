package resolver

import "github.com/industry-digital/flux-game-sub002/internal/urn"

// trieNode is one node in the actor-name trie. urns accumulates, in
// insertion order, every actor whose lowercase name has the path to this
// node as a prefix — "the full name includes every proper prefix"
// (spec §4.3).
type trieNode struct {
	children map[rune]*trieNode
	urns     []urn.URN
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// trie is a character trie over lowercase actor names, built once per
// turn and read-only thereafter.
type trie struct {
	root *trieNode
}

func newTrie() *trie {
	return &trie{root: newTrieNode()}
}

// insert records that u's name contains name, appending u to every
// prefix node along the way. Insertion order at build time is what
// later makes findByPrefix's tie-breaking deterministic.
func (t *trie) insert(name string, u urn.URN) {
	node := t.root
	for _, r := range name {
		child, ok := node.children[r]
		if !ok {
			child = newTrieNode()
			node.children[r] = child
		}
		node = child
		node.urns = append(node.urns, u)
	}
}

// findByPrefix returns every actor URN whose name has prefix as a
// prefix, in O(|prefix| + |results|). Prefixes shorter than minLen
// never match, per spec §4.3's minLen=2 default.
func (t *trie) findByPrefix(prefix string, minLen int) []urn.URN {
	if len(prefix) < minLen {
		return nil
	}
	node := t.root
	for _, r := range prefix {
		child, ok := node.children[r]
		if !ok {
			return nil
		}
		node = child
	}
	return node.urns
}
