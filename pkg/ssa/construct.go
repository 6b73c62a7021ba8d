package ssa

// This file holds one constructor per opcode family, used by tests and by
// anything that builds source graphs by hand (the in-repo JSON graph loader,
// DecodeGraph, builds its nodes with NewNode directly instead). Each mirrors
// the operand order spec.md §3 documents for that opcode.

// NewConst builds a Const node carrying tv.
func NewConst(id int, block *Block, mode Mode, tv *Tarval) *Node {
	n := NewNode(id, OpConst, mode, block)
	n.constTarval = tv
	return n
}

// NewSymConst builds a SymConst node referencing ent.
func NewSymConst(id int, block *Block, mode Mode, ent *Entity) *Node {
	n := NewNode(id, OpSymConst, mode, block)
	n.entity = ent
	return n
}

// NewBinop builds a binary arithmetic/logical/shift/compare-input node.
func NewBinop(id int, op Opcode, block *Block, mode Mode, left, right *Node) *Node {
	return NewNode(id, op, mode, block, left, right)
}

// NewUnop builds a single-operand node (Not, Minus, Abs).
func NewUnop(id int, op Opcode, block *Block, mode Mode, operand *Node) *Node {
	return NewNode(id, op, mode, block, operand)
}

// NewLoad builds a Load node. mode is the mode of the loaded value.
func NewLoad(id int, block *Block, mode Mode, ptr, mem *Node, pinned bool) *Node {
	n := NewNode(id, OpLoad, mode, block, ptr, mem)
	n.pinned = pinned
	return n
}

// NewStore builds a Store node. The stored value's mode is value.ModeOf().
func NewStore(id int, block *Block, ptr, value, mem *Node, pinned bool) *Node {
	n := NewNode(id, OpStore, ModeM, block, ptr, value, mem)
	n.pinned = pinned
	return n
}

// NewFrameAddr builds a FrameAddr node referencing the given frame entity.
func NewFrameAddr(id int, block *Block, framePtr *Node, ent *Entity) *Node {
	n := NewNode(id, OpFrameAddr, ModeRef, block, framePtr)
	n.entity = ent
	return n
}

// NewAddSP builds a be_AddSP node (grows the stack upward in generic-IR
// terms; SPARC inverts this, see spec.md §4.4).
func NewAddSP(id int, block *Block, oldSP, size *Node) *Node {
	return NewNode(id, OpAddSP, ModeRef, block, oldSP, size)
}

// NewSubSP builds a be_SubSP node.
func NewSubSP(id int, block *Block, oldSP, size *Node) *Node {
	return NewNode(id, OpSubSP, ModeRef, block, oldSP, size)
}

// NewCopy builds a be_Copy node duplicating operand.
func NewCopy(id int, block *Block, mode Mode, operand *Node) *Node {
	return NewNode(id, OpCopy, mode, block, operand)
}

// NewCall builds a be_Call node over the given operands (callee + args +
// memory, in whatever order the caller already assembled).
func NewCall(id int, block *Block, mode Mode, preds ...*Node) *Node {
	return NewNode(id, OpCall, mode, block, preds...)
}

// NewCmp builds a Cmp node; its mode is ModeB (the boolean flag mode).
func NewCmp(id int, block *Block, left, right *Node) *Node {
	return NewNode(id, OpCmp, ModeB, block, left, right)
}

// NewCond builds a Cond node over selector, with the given default
// projection number (meaningful only for the switch form).
func NewCond(id int, block *Block, selector *Node, defaultProj int) *Node {
	n := NewNode(id, OpCond, ModeB, block, selector)
	n.defaultProj = defaultProj
	return n
}

// NewJmp builds an unconditional jump node.
func NewJmp(id int, block *Block) *Node {
	return NewNode(id, OpJmp, ModeB, block)
}

// NewProj builds a Proj node selecting projNum out of pred.
func NewProj(id int, block *Block, mode Mode, pred *Node, projNum int) *Node {
	n := NewNode(id, OpProj, mode, block, pred)
	n.projNum = projNum
	return n
}

// NewPhi builds a Phi node over preds, one operand per incoming control
// edge in the same order as block.Preds.
func NewPhi(id int, block *Block, mode Mode, preds ...*Node) *Node {
	return NewNode(id, OpPhi, mode, block, preds...)
}

// NewConv builds a Conv node converting operand to dstMode.
func NewConv(id int, block *Block, dstMode Mode, operand *Node) *Node {
	return NewNode(id, OpConv, dstMode, block, operand)
}

// NewUnknown builds an Unknown node of the given mode.
func NewUnknown(id int, block *Block, mode Mode) *Node {
	return NewNode(id, OpUnknown, mode, block)
}

// NewStart builds the graph's Start node.
func NewStart(id int, block *Block) *Node {
	return NewNode(id, OpStart, ModeB, block)
}

// NewEnd builds the graph's End node over its keep-alive operands.
func NewEnd(id int, block *Block, keepAlive ...*Node) *Node {
	return NewNode(id, OpEnd, ModeB, block, keepAlive...)
}
