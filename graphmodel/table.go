package graphmodel

import (
	"sort"

	"github.com/hmmm42/lancetgo/kmer"
)

// Table is the identity-keyed node registry described in
// SPEC_FULL.md §9: nodes refer to each other only by NodeIdentifier,
// never by pointer, so the graph has no owning-pointer cycles to
// manage. Edges are resolved against the table lazily.
//
// Grounded on the identity-keyed node maps in
// pbenner-gonetics' KmerGraph and jteutenberg-downpore's overlap
// graph, generalized here to hold the full colored Node rather than a
// bare k-mer class.
type Table struct {
	nodes map[NodeIdentifier]*Node
}

// NewTable returns an empty table pre-seeded with the source and sink
// sentinels.
func NewTable() *Table {
	t := &Table{nodes: make(map[NodeIdentifier]*Node)}
	t.nodes[MockSourceID] = NewMockNode(MockSourceID)
	t.nodes[MockSinkID] = NewMockNode(MockSinkID)
	return t
}

// GetOrCreate returns the node for k's canonical identity, creating it
// if this is the first time that k-mer has been seen.
func (t *Table) GetOrCreate(k kmer.Kmer) *Node {
	id := k.ID()
	if n, ok := t.nodes[id]; ok {
		return n
	}
	n := NewNode(k)
	t.nodes[id] = n
	return n
}

// Get returns the node with the given identity, or nil if absent.
func (t *Table) Get(id NodeIdentifier) *Node { return t.nodes[id] }

// Delete removes a node from the table. Used by the compactor once a
// node has been folded into its buddy.
func (t *Table) Delete(id NodeIdentifier) { delete(t.nodes, id) }

// Len returns the number of nodes in the table, including sentinels.
func (t *Table) Len() int { return len(t.nodes) }

// Each calls fn for every real (non-sentinel) node. Iteration order is
// unspecified; callers that need determinism should collect and sort
// identities first.
func (t *Table) Each(fn func(*Node)) {
	for id, n := range t.nodes {
		if id == MockSourceID || id == MockSinkID {
			continue
		}
		fn(n)
	}
}

// Identities returns every real (non-sentinel) node identity in the
// table, sorted for deterministic traversal.
func (t *Table) Identities() []NodeIdentifier {
	ids := make([]NodeIdentifier, 0, len(t.nodes))
	for id := range t.nodes {
		if id == MockSourceID || id == MockSinkID {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
