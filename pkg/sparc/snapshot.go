package sparc

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/oisee/sparc-select/pkg/ssa"
)

// Snapshot caches a transformed target graph to disk for later inspection,
// grounded directly on the teacher's pkg/result/checkpoint.go
// (gob.NewEncoder/gob.NewDecoder over a file) — there is no search progress
// to resume here, so the role it fills is a `dump` cache for the CLI
// instead of a resumable search checkpoint.
type Snapshot struct {
	Name  string
	Nodes []snapshotNode
}

type snapshotNode struct {
	Index       int
	Op          Op
	Mode        ssa.Mode
	BlockID     int
	Preds       []int // indices into Snapshot.Nodes
	DebugInfo   string
	Imm         int64
	EntityName  string
	HasEntity   bool
	ProjNum     int
	NProjs      int
	DefaultProj int
	ModifyFlags bool
	FrameDep    bool
	Pinned      bool
	Carry       bool
	IsUnsigned  bool
}

// NewSnapshot flattens g into an index-addressed, gob-friendly form. Nodes
// reachable more than once (shared sub-expressions, spec.md testable
// property 2) appear once and are referenced by index from every user,
// preserving sharing across the round trip.
func NewSnapshot(g *Graph) *Snapshot {
	index := make(map[*Node]int, len(g.Nodes))
	for i, n := range g.Nodes {
		index[n] = i
	}

	snap := &Snapshot{Name: g.Name, Nodes: make([]snapshotNode, len(g.Nodes))}
	for i, n := range g.Nodes {
		sn := snapshotNode{
			Index:       i,
			Op:          n.Op,
			Mode:        n.Mode,
			DebugInfo:   n.DebugInfo,
			Imm:         n.Imm,
			ProjNum:     n.ProjNum,
			NProjs:      n.NProjs,
			DefaultProj: n.DefaultProj,
			ModifyFlags: n.ModifyFlags,
			FrameDep:    n.FrameDep,
			Pinned:      n.Pinned,
			Carry:       n.Carry,
			IsUnsigned:  n.IsUnsigned,
		}
		if n.Block != nil {
			sn.BlockID = n.Block.ID
		}
		if n.Entity != nil {
			sn.EntityName, sn.HasEntity = n.Entity.Name, true
		}
		for _, p := range n.Preds {
			if idx, ok := index[p]; ok {
				sn.Preds = append(sn.Preds, idx)
			}
		}
		snap.Nodes[i] = sn
	}
	return snap
}

// Graph reconstructs a *Graph from the snapshot. Blocks are synthesized
// fresh (by id) since block identity beyond id/name carries no information
// the snapshot needs to preserve.
func (s *Snapshot) Graph() *Graph {
	blocks := make(map[int]*ssa.Block)
	nodes := make([]*Node, len(s.Nodes))
	for _, sn := range s.Nodes {
		b, ok := blocks[sn.BlockID]
		if !ok {
			b = ssa.NewBlock(sn.BlockID, "")
			blocks[sn.BlockID] = b
		}
		n := NewNode(sn.Op, sn.Mode, b)
		n.DebugInfo = sn.DebugInfo
		n.Imm = sn.Imm
		n.ProjNum = sn.ProjNum
		n.NProjs = sn.NProjs
		n.DefaultProj = sn.DefaultProj
		n.ModifyFlags = sn.ModifyFlags
		n.FrameDep = sn.FrameDep
		n.Pinned = sn.Pinned
		n.Carry = sn.Carry
		n.IsUnsigned = sn.IsUnsigned
		if sn.HasEntity {
			n.Entity = ssa.NewEntity(sn.EntityName)
		}
		nodes[sn.Index] = n
	}
	for _, sn := range s.Nodes {
		n := nodes[sn.Index]
		for _, p := range sn.Preds {
			n.Preds = append(n.Preds, nodes[p])
		}
	}
	return &Graph{Name: s.Name, Nodes: nodes}
}

// SaveSnapshot writes g's snapshot to path.
func SaveSnapshot(path string, g *Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sparc: save snapshot: %w", err)
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(NewSnapshot(g))
}

// LoadSnapshot reads a previously-saved target graph from path.
func LoadSnapshot(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sparc: load snapshot: %w", err)
	}
	defer f.Close()
	var snap Snapshot
	if err := gob.NewDecoder(f).Decode(&snap); err != nil {
		return nil, fmt.Errorf("sparc: load snapshot: %w", err)
	}
	return snap.Graph(), nil
}
