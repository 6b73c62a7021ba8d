package ssa

import (
	"encoding/json"
	"fmt"
)

// This file implements a JSON wire format for source graphs. There is no
// wire protocol in the generic IR's own contract (spec.md §6 says so
// explicitly), but a complete module needs some way to hand a graph to the
// CLI and to tests without hand-wiring pointers every time, so graphs are
// given a flat, index-based JSON encoding (nodes and blocks referenced by
// integer id) the way a compiler's IR dumper would serialize a DAG.

type modeJSON struct {
	Kind   string `json:"kind"`
	Bits   int    `json:"bits,omitempty"`
	Signed bool   `json:"signed,omitempty"`
}

var kindNames = map[Kind]string{
	KindInt:       "int",
	KindReference: "reference",
	KindFloat:     "float",
	KindMemory:    "memory",
	KindControl:   "control",
}

var kindValues = map[string]Kind{
	"int":       KindInt,
	"reference": KindReference,
	"float":     KindFloat,
	"memory":    KindMemory,
	"control":   KindControl,
}

func encodeMode(m Mode) modeJSON {
	return modeJSON{Kind: kindNames[m.Kind], Bits: m.Bits, Signed: m.Signed}
}

func decodeMode(m modeJSON) (Mode, error) {
	k, ok := kindValues[m.Kind]
	if !ok {
		return Mode{}, fmt.Errorf("ssa: unknown mode kind %q", m.Kind)
	}
	return Mode{Kind: k, Bits: m.Bits, Signed: m.Signed}, nil
}

type blockJSON struct {
	ID    int    `json:"id"`
	Name  string `json:"name,omitempty"`
	Preds []int  `json:"preds,omitempty"`
}

type nodeJSON struct {
	ID          int      `json:"id"`
	Op          string   `json:"op"`
	Mode        modeJSON `json:"mode"`
	Block       int      `json:"block"`
	Preds       []int    `json:"preds,omitempty"`
	DebugInfo   string   `json:"debug_info,omitempty"`
	ConstValue  *int64   `json:"const_value,omitempty"`
	EntityName  *string  `json:"entity,omitempty"`
	ProjNum     int      `json:"proj_num,omitempty"`
	DefaultProj int      `json:"default_proj,omitempty"`
	Pinned      bool     `json:"pinned,omitempty"`
}

type graphJSON struct {
	Name   string      `json:"name"`
	Start  int          `json:"start"`
	End    int          `json:"end"`
	Blocks []blockJSON `json:"blocks"`
	Nodes  []nodeJSON  `json:"nodes"`
}

var opNames = map[Opcode]string{}
var opValues = map[string]Opcode{}

func init() {
	for op := OpInvalid; op <= OpCopy; op++ {
		name := op.String()
		opNames[op] = name
		opValues[name] = op
	}
}

// EncodeGraph serializes g to its JSON wire format.
func EncodeGraph(g *Graph) ([]byte, error) {
	gj := graphJSON{Name: g.Name}
	if g.Start != nil {
		gj.Start = g.Start.ID
	}
	if g.End != nil {
		gj.End = g.End.ID
	}
	for _, b := range g.Blocks {
		bj := blockJSON{ID: b.ID, Name: b.Name}
		for _, p := range b.Preds {
			bj.Preds = append(bj.Preds, p.ID)
		}
		gj.Blocks = append(gj.Blocks, bj)
	}
	for _, n := range g.Nodes {
		nj := nodeJSON{
			ID:          n.ID,
			Op:          n.Op.String(),
			Mode:        encodeMode(n.Mode),
			DebugInfo:   n.DebugInfo,
			ProjNum:     n.projNum,
			DefaultProj: n.defaultProj,
			Pinned:      n.pinned,
		}
		if n.Block != nil {
			nj.Block = n.Block.ID
		}
		for _, p := range n.Preds {
			nj.Preds = append(nj.Preds, p.ID)
		}
		if n.constTarval != nil {
			v := n.constTarval.Value
			nj.ConstValue = &v
		}
		if n.entity != nil {
			name := n.entity.Name
			nj.EntityName = &name
		}
		gj.Nodes = append(gj.Nodes, nj)
	}
	return json.MarshalIndent(gj, "", "  ")
}

// DecodeGraph parses data in the JSON wire format into a Graph.
func DecodeGraph(data []byte) (*Graph, error) {
	var gj graphJSON
	if err := json.Unmarshal(data, &gj); err != nil {
		return nil, fmt.Errorf("ssa: decode graph: %w", err)
	}

	g := NewGraph(gj.Name)
	blocksByID := make(map[int]*Block, len(gj.Blocks))
	for _, bj := range gj.Blocks {
		blocksByID[bj.ID] = g.AddBlock(NewBlock(bj.ID, bj.Name))
	}
	for _, bj := range gj.Blocks {
		b := blocksByID[bj.ID]
		for _, predID := range bj.Preds {
			pred, ok := blocksByID[predID]
			if !ok {
				return nil, fmt.Errorf("ssa: block %d references unknown predecessor block %d", bj.ID, predID)
			}
			b.AddPred(pred)
		}
	}

	nodesByID := make(map[int]*Node, len(gj.Nodes))
	for _, nj := range gj.Nodes {
		op, ok := opValues[nj.Op]
		if !ok {
			return nil, fmt.Errorf("ssa: node %d has unknown opcode %q", nj.ID, nj.Op)
		}
		mode, err := decodeMode(nj.Mode)
		if err != nil {
			return nil, fmt.Errorf("ssa: node %d: %w", nj.ID, err)
		}
		block, ok := blocksByID[nj.Block]
		if !ok {
			return nil, fmt.Errorf("ssa: node %d references unknown block %d", nj.ID, nj.Block)
		}
		n := NewNode(nj.ID, op, mode, block)
		n.DebugInfo = nj.DebugInfo
		n.projNum = nj.ProjNum
		n.defaultProj = nj.DefaultProj
		n.pinned = nj.Pinned
		if nj.ConstValue != nil {
			n.constTarval = NewTarval(*nj.ConstValue, mode)
		}
		if nj.EntityName != nil {
			n.entity = NewEntity(*nj.EntityName)
		}
		nodesByID[nj.ID] = g.AddNode(n)
	}
	for _, nj := range gj.Nodes {
		n := nodesByID[nj.ID]
		for _, predID := range nj.Preds {
			pred, ok := nodesByID[predID]
			if !ok {
				return nil, fmt.Errorf("ssa: node %d references unknown predecessor %d", nj.ID, predID)
			}
			n.Preds = append(n.Preds, pred)
		}
	}

	if start, ok := nodesByID[gj.Start]; ok {
		g.Start = start
	}
	if end, ok := nodesByID[gj.End]; ok {
		g.End = end
	}
	return g, nil
}
