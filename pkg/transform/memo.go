package transform

import (
	"github.com/oisee/sparc-select/pkg/sparc"
	"github.com/oisee/sparc-select/pkg/ssa"
)

// Memo is the Transformation Memo (spec.md §3): a partial mapping from
// source-node identity to target-node identity. Each source node maps to
// at most one target node for the pass's lifetime, and once installed an
// entry is immutable. Go pointer identity is the natural analogue of
// "source node identity" here, so the map is keyed directly on *ssa.Node.
type Memo struct {
	entries map[*ssa.Node]*sparc.Node
}

// NewMemo creates an empty memo.
func NewMemo() *Memo {
	return &Memo{entries: make(map[*ssa.Node]*sparc.Node)}
}

// Lookup returns the target node previously installed for n, if any.
func (m *Memo) Lookup(n *ssa.Node) (*sparc.Node, bool) {
	t, ok := m.entries[n]
	return t, ok
}

// Install records n's target image. Installing a node twice is a
// programmer error (spec.md "once installed, an entry is immutable") —
// callers must check Lookup first.
func (m *Memo) Install(n *ssa.Node, t *sparc.Node) {
	m.entries[n] = t
}

// Has reports whether n already has a target image.
func (m *Memo) Has(n *ssa.Node) bool {
	_, ok := m.entries[n]
	return ok
}
