package sparc

import "github.com/oisee/sparc-select/pkg/ssa"

// Target Node Builders: pure constructors, one family per SPARC opcode
// (spec.md §4.2). Each is a deterministic function of (debug-info, block,
// operands...) and allocates a fresh node; none look anything up or cache
// anything. Grounded one-to-one on orig's new_bd_sparc_* functions, which
// the source itself documents as machine-generated boilerplate.

func NewAddReg(dbgi string, block *ssa.Block, op1, op2 *Node) *Node {
	n := NewNode(OpAddReg, ssa.ModeIu, block, op1, op2)
	n.DebugInfo = dbgi
	return n
}

func NewAddImm(dbgi string, block *ssa.Block, op1 *Node, imm int64) *Node {
	n := NewNode(OpAddImm, ssa.ModeIu, block, op1)
	n.DebugInfo, n.Imm = dbgi, imm
	return n
}

func NewSubReg(dbgi string, block *ssa.Block, op1, op2 *Node) *Node {
	n := NewNode(OpSubReg, ssa.ModeIu, block, op1, op2)
	n.DebugInfo = dbgi
	return n
}

func NewSubImm(dbgi string, block *ssa.Block, op1 *Node, imm int64) *Node {
	n := NewNode(OpSubImm, ssa.ModeIu, block, op1)
	n.DebugInfo, n.Imm = dbgi, imm
	return n
}

func NewMulReg(dbgi string, block *ssa.Block, op1, op2 *Node) *Node {
	n := NewNode(OpMulReg, ssa.ModeIu, block, op1, op2)
	n.DebugInfo = dbgi
	return n
}

func NewMulImm(dbgi string, block *ssa.Block, op1 *Node, imm int64) *Node {
	n := NewNode(OpMulImm, ssa.ModeIu, block, op1)
	n.DebugInfo, n.Imm = dbgi, imm
	return n
}

func NewMulhReg(dbgi string, block *ssa.Block, op1, op2 *Node) *Node {
	n := NewNode(OpMulhReg, ssa.ModeIu, block, op1, op2)
	n.DebugInfo = dbgi
	return n
}

func NewMulhImm(dbgi string, block *ssa.Block, op1 *Node, imm int64) *Node {
	n := NewNode(OpMulhImm, ssa.ModeIu, block, op1)
	n.DebugInfo, n.Imm = dbgi, imm
	return n
}

func NewDivReg(dbgi string, block *ssa.Block, op1, op2 *Node) *Node {
	n := NewNode(OpDivReg, ssa.ModeIu, block, op1, op2)
	n.DebugInfo = dbgi
	return n
}

func NewDivImm(dbgi string, block *ssa.Block, op1 *Node, imm int64) *Node {
	n := NewNode(OpDivImm, ssa.ModeIu, block, op1)
	n.DebugInfo, n.Imm = dbgi, imm
	return n
}

func NewAndReg(dbgi string, block *ssa.Block, op1, op2 *Node) *Node {
	n := NewNode(OpAndReg, ssa.ModeIu, block, op1, op2)
	n.DebugInfo = dbgi
	return n
}

func NewAndImm(dbgi string, block *ssa.Block, op1 *Node, imm int64) *Node {
	n := NewNode(OpAndImm, ssa.ModeIu, block, op1)
	n.DebugInfo, n.Imm = dbgi, imm
	return n
}

func NewOrReg(dbgi string, block *ssa.Block, op1, op2 *Node) *Node {
	n := NewNode(OpOrReg, ssa.ModeIu, block, op1, op2)
	n.DebugInfo = dbgi
	return n
}

func NewOrImm(dbgi string, block *ssa.Block, op1 *Node, imm int64) *Node {
	n := NewNode(OpOrImm, ssa.ModeIu, block, op1)
	n.DebugInfo, n.Imm = dbgi, imm
	return n
}

func NewXorReg(dbgi string, block *ssa.Block, op1, op2 *Node) *Node {
	n := NewNode(OpXorReg, ssa.ModeIu, block, op1, op2)
	n.DebugInfo = dbgi
	return n
}

func NewXorImm(dbgi string, block *ssa.Block, op1 *Node, imm int64) *Node {
	n := NewNode(OpXorImm, ssa.ModeIu, block, op1)
	n.DebugInfo, n.Imm = dbgi, imm
	return n
}

func NewNot(dbgi string, block *ssa.Block, op *Node) *Node {
	n := NewNode(OpNot, ssa.ModeIu, block, op)
	n.DebugInfo = dbgi
	return n
}

func NewMinus(dbgi string, block *ssa.Block, op *Node) *Node {
	n := NewNode(OpMinus, ssa.ModeIu, block, op)
	n.DebugInfo = dbgi
	return n
}

func NewSllReg(dbgi string, block *ssa.Block, op1, op2 *Node) *Node {
	n := NewNode(OpSllReg, ssa.ModeIu, block, op1, op2)
	n.DebugInfo = dbgi
	return n
}

func NewSllImm(dbgi string, block *ssa.Block, op1 *Node, imm int64) *Node {
	n := NewNode(OpSllImm, ssa.ModeIu, block, op1)
	n.DebugInfo, n.Imm = dbgi, imm
	return n
}

func NewSlrReg(dbgi string, block *ssa.Block, op1, op2 *Node) *Node {
	n := NewNode(OpSlrReg, ssa.ModeIu, block, op1, op2)
	n.DebugInfo = dbgi
	return n
}

func NewSlrImm(dbgi string, block *ssa.Block, op1 *Node, imm int64) *Node {
	n := NewNode(OpSlrImm, ssa.ModeIu, block, op1)
	n.DebugInfo, n.Imm = dbgi, imm
	return n
}

func NewSraReg(dbgi string, block *ssa.Block, op1, op2 *Node) *Node {
	n := NewNode(OpSraReg, ssa.ModeIu, block, op1, op2)
	n.DebugInfo = dbgi
	return n
}

func NewSraImm(dbgi string, block *ssa.Block, op1 *Node, imm int64) *Node {
	n := NewNode(OpSraImm, ssa.ModeIu, block, op1)
	n.DebugInfo, n.Imm = dbgi, imm
	return n
}

// NewLd builds a load. mode is the loaded value's mode; pinned propagates
// the source node's pinned attribute (spec.md §4.4).
func NewLd(dbgi string, block *ssa.Block, ptr, mem *Node, mode ssa.Mode, pinned bool) *Node {
	n := NewNode(OpLd, mode, block, ptr, mem)
	n.DebugInfo, n.Pinned = dbgi, pinned
	return n
}

// NewSt builds a store. mode is the stored value's mode (spec.md §4.4).
func NewSt(dbgi string, block *ssa.Block, ptr, value, mem *Node, mode ssa.Mode, pinned bool) *Node {
	n := NewNode(OpSt, ssa.ModeM, block, ptr, value, mem)
	n.DebugInfo, n.Pinned = dbgi, pinned
	return n
}

// NewMovImm builds an immediate-move, used when a constant fits simm13.
func NewMovImm(dbgi string, block *ssa.Block, imm int64) *Node {
	n := NewNode(OpMovImm, ssa.ModeIu, block)
	n.DebugInfo, n.Imm = dbgi, imm
	n.FrameDep = true
	return n
}

func NewMovReg(dbgi string, block *ssa.Block, op *Node) *Node {
	n := NewNode(OpMovReg, ssa.ModeIu, block, op)
	n.DebugInfo = dbgi
	return n
}

// NewHiImm builds the high half of a hi/lo constant split.
func NewHiImm(dbgi string, block *ssa.Block, value int64) *Node {
	n := NewNode(OpHiImm, ssa.ModeIu, block)
	n.DebugInfo, n.Imm = dbgi, value
	n.FrameDep = true
	return n
}

// NewLoImm builds the low half, completing the hi/lo split. Unlike HiImm
// and MovImm, it already depends on a real predecessor (hi) and so needs
// no artificial frame dependency (spec.md §4.5).
func NewLoImm(dbgi string, block *ssa.Block, hi *Node, value int64) *Node {
	n := NewNode(OpLoImm, ssa.ModeIu, block, hi)
	n.DebugInfo, n.Imm = dbgi, value
	return n
}

func NewSymConst(dbgi string, block *ssa.Block, ent *ssa.Entity) *Node {
	n := NewNode(OpSymConst, ssa.ModeRef, block)
	n.DebugInfo, n.Entity = dbgi, ent
	n.FrameDep = true
	return n
}

func NewFrameAddr(dbgi string, block *ssa.Block, fp *Node, ent *ssa.Entity) *Node {
	n := NewNode(OpFrameAddr, ssa.ModeRef, block, fp)
	n.DebugInfo, n.Entity = dbgi, ent
	return n
}

// NewSubSP builds the SPARC node a source AddSP lowers to — SPARC's stack
// grows downward, so generic-IR "allocate" becomes a target "subtract"
// (spec.md §4.4 "Stack direction inversion").
func NewSubSP(dbgi string, block *ssa.Block, oldSP, size, mem *Node) *Node {
	n := NewNode(OpSubSP, ssa.ModeRef, block, oldSP, size, mem)
	n.DebugInfo = dbgi
	return n
}

// NewAddSP builds the SPARC node a source SubSP lowers to.
func NewAddSP(dbgi string, block *ssa.Block, oldSP, size, mem *Node) *Node {
	n := NewNode(OpAddSP, ssa.ModeRef, block, oldSP, size, mem)
	n.DebugInfo = dbgi
	return n
}

// NewCmpReg builds a compare. isUnsigned selects the unsigned condition
// codes; carry is reserved for carry-chained compares (unused by this pass,
// always false — see spec.md §4.6).
func NewCmpReg(dbgi string, block *ssa.Block, op1, op2 *Node, carry, isUnsigned bool) *Node {
	n := NewNode(OpCmpReg, ssa.ModeB, block, op1, op2)
	n.DebugInfo, n.Carry, n.IsUnsigned = dbgi, carry, isUnsigned
	return n
}

// NewBXX builds a conditional branch over the given flag-producing node and
// selector projection number.
func NewBXX(dbgi string, block *ssa.Block, flag *Node, selectorProj int) *Node {
	n := NewNode(OpBXX, ssa.ModeB, block, flag)
	n.DebugInfo, n.ProjNum = dbgi, selectorProj
	return n
}

// NewBa builds an unconditional branch.
func NewBa(dbgi string, block *ssa.Block) *Node {
	n := NewNode(OpBa, ssa.ModeB, block)
	n.DebugInfo = dbgi
	return n
}

// NewSwitchJmp builds a switch dispatch over the (already-translated)
// selector. nProjs and defaultProj are both already translation-adjusted by
// the caller (spec.md §4.6).
func NewSwitchJmp(dbgi string, block *ssa.Block, selector *Node, nProjs, defaultProj int) *Node {
	n := NewNode(OpSwitchJmp, ssa.ModeB, block, selector)
	n.DebugInfo, n.NProjs, n.DefaultProj = dbgi, nProjs, defaultProj
	return n
}

func NewFsTOd(dbgi string, block *ssa.Block, op *Node, mode ssa.Mode) *Node {
	n := NewNode(OpFsTOd, mode, block, op)
	n.DebugInfo = dbgi
	return n
}

func NewFdTOs(dbgi string, block *ssa.Block, op *Node, mode ssa.Mode) *Node {
	n := NewNode(OpFdTOs, mode, block, op)
	n.DebugInfo = dbgi
	return n
}

func NewFsTOi(dbgi string, block *ssa.Block, op *Node, mode ssa.Mode) *Node {
	n := NewNode(OpFsTOi, mode, block, op)
	n.DebugInfo = dbgi
	return n
}

func NewFdTOi(dbgi string, block *ssa.Block, op *Node, mode ssa.Mode) *Node {
	n := NewNode(OpFdTOi, mode, block, op)
	n.DebugInfo = dbgi
	return n
}

func NewFiTOs(dbgi string, block *ssa.Block, op *Node, mode ssa.Mode) *Node {
	n := NewNode(OpFiTOs, mode, block, op)
	n.DebugInfo = dbgi
	return n
}

func NewFiTOd(dbgi string, block *ssa.Block, op *Node, mode ssa.Mode) *Node {
	n := NewNode(OpFiTOd, mode, block, op)
	n.DebugInfo = dbgi
	return n
}

func NewFMul(dbgi string, block *ssa.Block, op1, op2 *Node, mode ssa.Mode) *Node {
	n := NewNode(OpFMul, mode, block, op1, op2)
	n.DebugInfo = dbgi
	return n
}

// NewProj builds a generic tuple projection.
func NewProj(dbgi string, pred *Node, mode ssa.Mode, projNum int) *Node {
	n := NewNode(OpProj, mode, pred.Block, pred)
	n.DebugInfo, n.ProjNum = dbgi, projNum
	return n
}

// NewCopy duplicates operand, forcing its mode to the canonical 32-bit
// unsigned if it is an integer-class mode (spec.md §4.4).
func NewCopy(dbgi string, block *ssa.Block, mode ssa.Mode, operand *Node) *Node {
	if mode.NeedsGPReg() {
		mode = ssa.ModeIu
	}
	n := NewNode(OpCopy, mode, block, operand)
	n.DebugInfo = dbgi
	return n
}

// NewCall duplicates a call, annotated as modify-flags (spec.md §4.4).
func NewCall(dbgi string, block *ssa.Block, mode ssa.Mode, preds ...*Node) *Node {
	n := NewNode(OpCall, mode, block, preds...)
	n.DebugInfo, n.ModifyFlags = dbgi, true
	return n
}

// NewNoMem builds a placeholder memory token, used by AddSP/SubSP lowering
// when the source node carries no real incoming memory dependency
// (spec.md §4.4).
func NewNoMem(block *ssa.Block) *Node {
	return NewNode(OpNoMem, ssa.ModeM, block)
}
