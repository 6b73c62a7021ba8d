package transform

import (
	"github.com/oisee/sparc-select/pkg/regalloc"
	"github.com/oisee/sparc-select/pkg/sparc"
	"github.com/oisee/sparc-select/pkg/ssa"
)

// genProj dispatches a Proj by its predecessor's opcode, grounded on orig's
// gen_Proj. Store short-circuits to its own transformed image (a target
// store already is the single memory-effecting value a Proj(Store, M)
// would otherwise wrap); Cmp stays fatal per the open question spec.md §9
// leaves unresolved. Start's only special case in orig (the initial-exec
// jump / TLS anchor) is commented out there too and is not implemented
// here for the same reason, but orig still falls through to duplicating
// the Proj itself without transforming Start — genProjStart below.
func genProj(c *Context, n *ssa.Node) (*sparc.Node, error) {
	pred := ssa.ProjPred(n)
	switch pred.Opcode() {
	case ssa.OpStore:
		return genProjStore(c, n, pred)
	case ssa.OpLoad:
		return genProjLoad(c, n, pred)
	case ssa.OpSubSP:
		return genProjSubSP(c, n, pred)
	case ssa.OpAddSP:
		return genProjAddSP(c, n, pred)
	case ssa.OpCmp:
		return genProjCmp(c, n, pred)
	case ssa.OpDiv:
		return genProjDiv(c, n, pred)
	case ssa.OpStart:
		return genProjStart(n, pred)
	default:
		return genProjGeneric(c, n, pred)
	}
}

func genProjStore(c *Context, n, pred *ssa.Node) (*sparc.Node, error) {
	if ssa.ProjNum(n) != ssa.ProjStoreMem {
		return nil, fatalf(UnsupportedProjection, n, "unsupported Proj from Store")
	}
	return c.Transform(pred)
}

// genProjLoad renumbers a Load's result/memory projections onto the target
// Ld's own Proj selectors, grounded on orig's gen_Proj_Load.
func genProjLoad(c *Context, n, pred *ssa.Node) (*sparc.Node, error) {
	newLoad, err := c.Transform(pred)
	if err != nil {
		return nil, err
	}
	if newLoad.Op != sparc.OpLd {
		return nil, fatalf(UnsupportedProjection, n, "unsupported Proj from Load")
	}
	switch ssa.ProjNum(n) {
	case ssa.ProjLoadRes:
		return sparc.NewProj(n.DebugInfo, newLoad, ssa.ModeIu, sparc.ProjLdRes), nil
	case ssa.ProjLoadMem:
		return sparc.NewProj(n.DebugInfo, newLoad, ssa.ModeM, sparc.ProjLdM), nil
	default:
		return nil, fatalf(UnsupportedProjection, n, "unsupported Proj from Load")
	}
}

// genProjAddSP handles Projs of a source AddSP, whose transformed image is
// a target SubSP (stack-direction inversion, spec.md §4.4), grounded on
// orig's gen_Proj_be_AddSP. The stack-pointer selector carries a fixed
// register requirement, matching orig's arch_set_irn_register to REG_SP.
func genProjAddSP(c *Context, n, pred *ssa.Node) (*sparc.Node, error) {
	newPred, err := c.Transform(pred)
	if err != nil {
		return nil, err
	}
	switch ssa.ProjNum(n) {
	case ssa.ProjAddSPSP:
		res := sparc.NewProj(n.DebugInfo, newPred, ssa.ModeIu, sparc.ProjSubSPStack)
		res.FixedReg = regalloc.SP
		return res, nil
	case ssa.ProjAddSPRes:
		return sparc.NewProj(n.DebugInfo, newPred, ssa.ModeIu, sparc.ProjSubSPStack), nil
	case ssa.ProjAddSPMem:
		return sparc.NewProj(n.DebugInfo, newPred, ssa.ModeM, sparc.ProjSubSPM), nil
	default:
		return nil, fatalf(UnsupportedProjection, n, "unsupported Proj from AddSP")
	}
}

// genProjSubSP is genProjAddSP's mirror image for a source SubSP (whose
// image is a target AddSP), grounded on orig's gen_Proj_be_SubSP.
func genProjSubSP(c *Context, n, pred *ssa.Node) (*sparc.Node, error) {
	newPred, err := c.Transform(pred)
	if err != nil {
		return nil, err
	}
	switch ssa.ProjNum(n) {
	case ssa.ProjSubSPSP:
		res := sparc.NewProj(n.DebugInfo, newPred, ssa.ModeIu, sparc.ProjAddSPStack)
		res.FixedReg = regalloc.SP
		return res, nil
	case ssa.ProjSubSPMem:
		return sparc.NewProj(n.DebugInfo, newPred, ssa.ModeM, sparc.ProjAddSPM), nil
	default:
		return nil, fatalf(UnsupportedProjection, n, "unsupported Proj from SubSP")
	}
}

// genProjCmp is fatal: spec.md §9 leaves Proj-from-Cmp as an open question
// and explicitly does not ask for a guessed resolution, matching orig's
// gen_Proj_Cmp (which panics unconditionally).
func genProjCmp(c *Context, n, pred *ssa.Node) (*sparc.Node, error) {
	return nil, fatalf(UnsupportedProjection, n, "Proj from Cmp not implemented")
}

// genProjDiv projects a Div's quotient, grounded on orig's gen_Proj_Div.
func genProjDiv(c *Context, n, pred *ssa.Node) (*sparc.Node, error) {
	newPred, err := c.Transform(pred)
	if err != nil {
		return nil, err
	}
	if ssa.ProjNum(n) != ssa.ProjDivRes || newPred.Op != sparc.OpDivReg && newPred.Op != sparc.OpDivImm {
		return nil, fatalf(UnsupportedProjection, n, "unsupported Proj from Div")
	}
	return sparc.NewProj(n.DebugInfo, newPred, n.ModeOf(), sparc.ProjDivRes), nil
}

// genProjGeneric handles every predecessor class orig leaves to its final
// catch-all, transforming pred and wrapping its image in a renumbered Proj.
// A GP-class projection is narrowed to the canonical 32-bit mode; anything
// else keeps its original mode. Start predecessors never reach here — see
// genProjStart, which does not require a transformed pred.
func genProjGeneric(c *Context, n, pred *ssa.Node) (*sparc.Node, error) {
	newPred, err := c.Transform(pred)
	if err != nil {
		return nil, err
	}
	mode := n.ModeOf()
	if mode.NeedsGPReg() {
		mode = ssa.ModeIu
	}
	return sparc.NewProj(n.DebugInfo, newPred, mode, ssa.ProjNum(n)), nil
}

// genProjStart handles a Proj whose predecessor is Start. orig's gen_Proj
// comments out Start's only special case (the initial-exec jump / TLS
// anchor) and never calls be_transform_node(pred) for it at all; every
// Proj(Start, …) instead falls straight through to be_duplicate_node(node)
// — the Proj duplicates itself, not its predecessor. Start has no target
// image anywhere in this pass (it is never registered with Dispatch), so
// this builds the target Proj directly off n's own identity, matching
// spec.md §4.6's "duplicate generically, narrowing to 32-bit unsigned for
// GP modes and preserving the node-number identity for debugging" —
// exactly the shape a real function-parameter access (Proj(Start, k))
// takes.
func genProjStart(n, pred *ssa.Node) (*sparc.Node, error) {
	mode := n.ModeOf()
	if mode.NeedsGPReg() {
		mode = ssa.ModeIu
	}
	template := &sparc.Node{
		Op:        sparc.OpProj,
		Block:     pred.BlockOf(),
		DebugInfo: n.DebugInfo,
		ProjNum:   ssa.ProjNum(n),
	}
	return sparc.Duplicate(template, mode), nil
}
