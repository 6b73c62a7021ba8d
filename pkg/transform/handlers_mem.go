package transform

import (
	"github.com/oisee/sparc-select/pkg/sparc"
	"github.com/oisee/sparc-select/pkg/ssa"
)

func genLoad(c *Context, n *ssa.Node) (*sparc.Node, error) {
	mode := ssa.LoadMode(n)
	if mode.IsFloat() {
		return nil, fatalf(UnsupportedFeature, n, "SPARC: no fp implementation yet")
	}
	ptr, err := c.Transform(ssa.LoadPtr(n))
	if err != nil {
		return nil, err
	}
	mem, err := c.Transform(ssa.LoadMem(n))
	if err != nil {
		return nil, err
	}
	block := c.TransformBlock(n.BlockOf())
	return sparc.NewLd(n.DebugInfo, block, ptr, mem, mode, n.IsPinned()), nil
}

func genStore(c *Context, n *ssa.Node) (*sparc.Node, error) {
	val := ssa.StoreValue(n)
	mode := val.ModeOf()
	if mode.IsFloat() {
		return nil, fatalf(UnsupportedFeature, n, "SPARC: no fp implementation yet")
	}
	ptr, err := c.Transform(ssa.StorePtr(n))
	if err != nil {
		return nil, err
	}
	newVal, err := c.Transform(val)
	if err != nil {
		return nil, err
	}
	mem, err := c.Transform(ssa.StoreMem(n))
	if err != nil {
		return nil, err
	}
	block := c.TransformBlock(n.BlockOf())
	return sparc.NewSt(n.DebugInfo, block, ptr, newVal, mem, mode, n.IsPinned()), nil
}

func genFrameAddr(c *Context, n *ssa.Node) (*sparc.Node, error) {
	fp, err := c.Transform(ssa.FrameAddrFrame(n))
	if err != nil {
		return nil, err
	}
	block := c.TransformBlock(n.BlockOf())
	return sparc.NewFrameAddr(n.DebugInfo, block, fp, ssa.FrameAddrEntity(n)), nil
}

// genAddSP lowers a source AddSP into a target SubSP: SPARC's stack grows
// downward, so "allocate stack space" inverts to "subtract from sp"
// (spec.md §4.4 "Stack direction inversion"), grounded on orig's
// gen_be_AddSP.
func genAddSP(c *Context, n *ssa.Node) (*sparc.Node, error) {
	oldSP, err := c.Transform(ssa.AddSPOldSP(n))
	if err != nil {
		return nil, err
	}
	size, err := c.Transform(ssa.AddSPSize(n))
	if err != nil {
		return nil, err
	}
	block := c.TransformBlock(n.BlockOf())
	mem := sparc.NewNoMem(block)
	return sparc.NewSubSP(n.DebugInfo, block, oldSP, size, mem), nil
}

// genSubSP lowers a source SubSP into a target AddSP, the mirror image of
// genAddSP, grounded on orig's gen_be_SubSP.
func genSubSP(c *Context, n *ssa.Node) (*sparc.Node, error) {
	oldSP, err := c.Transform(ssa.SubSPOldSP(n))
	if err != nil {
		return nil, err
	}
	size, err := c.Transform(ssa.SubSPSize(n))
	if err != nil {
		return nil, err
	}
	block := c.TransformBlock(n.BlockOf())
	mem := sparc.NewNoMem(block)
	return sparc.NewAddSP(n.DebugInfo, block, oldSP, size, mem), nil
}

// genCopy duplicates a backend-virtual Copy, narrowing its mode to the
// canonical GP mode (spec.md §4.4), grounded on orig's gen_be_Copy.
func genCopy(c *Context, n *ssa.Node) (*sparc.Node, error) {
	operand, err := c.Transform(ssa.UnopOperand(n))
	if err != nil {
		return nil, err
	}
	block := c.TransformBlock(n.BlockOf())
	return sparc.NewCopy(n.DebugInfo, block, n.ModeOf(), operand), nil
}

// genCall duplicates a backend-virtual Call, marking it flags-clobbering
// (spec.md §4.4), grounded on orig's gen_be_Call.
func genCall(c *Context, n *ssa.Node) (*sparc.Node, error) {
	preds := n.PredList()
	newPreds := make([]*sparc.Node, len(preds))
	for i, p := range preds {
		t, err := c.Transform(p)
		if err != nil {
			return nil, err
		}
		newPreds[i] = t
	}
	block := c.TransformBlock(n.BlockOf())
	return sparc.NewCall(n.DebugInfo, block, n.ModeOf(), newPreds...), nil
}
