package transform

import (
	"github.com/oisee/sparc-select/pkg/sparc"
	"github.com/oisee/sparc-select/pkg/ssa"
)

// genCmp lowers Cmp by widening both operands to 32 bits (if needed) and
// emitting a register compare. The zero-comparison Tst shortcut orig
// carries (commented out there too) is deliberately not implemented here:
// spec.md §9 asks that it not be guessed at without a concrete reference.
func genCmp(c *Context, n *ssa.Node) (*sparc.Node, error) {
	left := ssa.CmpLeft(n)
	right := ssa.CmpRight(n)
	cmpMode := left.ModeOf()
	if cmpMode.IsFloat() {
		return nil, fatalf(UnsupportedFeature, n, "FloatCmp not implemented")
	}
	if right.ModeOf() != cmpMode {
		return nil, fatalf(InvariantViolation, n, "Cmp operands have different modes")
	}
	isUnsigned := !cmpMode.IsSigned()

	block := c.TransformBlock(n.BlockOf())
	dbgi := n.DebugInfo

	newOp1, err := c.Transform(left)
	if err != nil {
		return nil, err
	}
	newOp1, err = genExtension(n, dbgi, block, newOp1, cmpMode)
	if err != nil {
		return nil, err
	}

	newOp2, err := c.Transform(right)
	if err != nil {
		return nil, err
	}
	newOp2, err = genExtension(n, dbgi, block, newOp2, cmpMode)
	if err != nil {
		return nil, err
	}

	return sparc.NewCmpReg(dbgi, block, newOp1, newOp2, false, isUnsigned), nil
}

// genCond dispatches a source Cond either to a two-way conditional branch
// (selector is the boolean-flag Proj of a Cmp) or to the switch-lowering
// algorithm, grounded on orig's gen_Cond.
func genCond(c *Context, n *ssa.Node) (*sparc.Node, error) {
	selector := ssa.CondSelector(n)
	if !selector.ModeOf().IsControl() {
		return genSwitchJmp(c, n)
	}
	if selector.Opcode() != ssa.OpProj {
		return nil, fatalf(InvariantViolation, n, "Cond selector must be a Proj")
	}

	block := c.TransformBlock(n.BlockOf())
	flagNode, err := c.Transform(ssa.ProjPred(selector))
	if err != nil {
		return nil, err
	}
	return sparc.NewBXX(n.DebugInfo, block, flagNode, ssa.ProjNum(selector)), nil
}

// genSwitchJmp translates a switch Cond's arbitrary Proj selector space
// into a dense, zero-based SwitchJmp target, grounded on orig's
// gen_SwitchJmp: find the min/max live selector among the Cond's Proj
// users, renumber them in place to start at zero, and subtract the same
// translation from the runtime selector value.
func genSwitchJmp(c *Context, n *ssa.Node) (*sparc.Node, error) {
	block := c.TransformBlock(n.BlockOf())
	dbgi := n.DebugInfo

	selector := ssa.CondSelector(n)
	newOp, err := c.Transform(selector)
	if err != nil {
		return nil, err
	}

	users := c.Graph.Users(n)
	min, max := 0, 0
	for i, user := range users {
		if user.Opcode() != ssa.OpProj {
			return nil, fatalf(InvariantViolation, n, "only Proj allowed as a SwitchJmp user")
		}
		pn := ssa.ProjNum(user)
		if i == 0 || pn < min {
			min = pn
		}
		if i == 0 || pn > max {
			max = pn
		}
	}

	translation := min
	nProjs := max - translation + 1

	for _, user := range users {
		user.SetProjNum(ssa.ProjNum(user) - translation)
	}

	constGraph := createConstGraphValue(dbgi, block, int64(translation))
	sub := sparc.NewSubReg(dbgi, block, newOp, constGraph)
	defaultProj := ssa.CondDefaultProj(n) - translation
	return sparc.NewSwitchJmp(dbgi, block, sub, nProjs, defaultProj), nil
}

func genJmp(c *Context, n *ssa.Node) (*sparc.Node, error) {
	block := c.TransformBlock(n.BlockOf())
	return sparc.NewBa(n.DebugInfo, block), nil
}
