package sparc

import (
	"github.com/oisee/sparc-select/pkg/regalloc"
	"github.com/oisee/sparc-select/pkg/ssa"
)

// Node is one value or effect in the target SPARC graph. Builders allocate
// it from the target graph's append-only arena (spec.md §5); once created
// it is owned by the target graph and outlives the pass.
type Node struct {
	ID        int
	Op        Op
	Mode      ssa.Mode
	Block     *ssa.Block
	Preds     []*Node
	DebugInfo string

	// Immediate field, meaningful on _imm opcodes and on Mov_imm/HiImm/LoImm:
	// SPARC's 13-bit signed immediate (spec.md §3).
	Imm int64

	// Entity reference, meaningful on SymConst/FrameAddr.
	Entity *ssa.Entity

	// Proj/SwitchJmp bookkeeping.
	ProjNum     int
	NProjs      int // SwitchJmp's jump-table span (max - min selector + 1)
	DefaultProj int // SwitchJmp's rewritten default target

	// Attributes mirroring orig's node flags.
	ModifyFlags bool // arch_irn_flags_modify_flags (Mul, Call)
	FrameDep    bool // be_dep_on_frame (root-positioned constants)
	Pinned      bool // propagated from the source Load/Store

	// Cmp_reg attributes.
	Carry      bool
	IsUnsigned bool

	// Register-allocation descriptors a later pass consumes; not acted on
	// here (spec.md §1 Non-goals: no register assignment).
	RegReq   *regalloc.Requirement
	FixedReg *regalloc.Register

	// PendingPreds carries a Phi's still-untransformed source predecessors
	// between the placeholder-install step and FixupPhis (spec.md §4.1
	// step 3, §4.6, §9 "Cycles via Phi"). Empty for every other opcode.
	PendingPreds []*ssa.Node
}

// NewNode builds a bare target node. Prefer the per-opcode builders in
// builders.go; this is the common base they all share.
func NewNode(op Op, mode ssa.Mode, block *ssa.Block, preds ...*Node) *Node {
	return &Node{Op: op, Mode: mode, Block: block, Preds: preds}
}
