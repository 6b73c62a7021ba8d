package transform

import (
	"github.com/oisee/sparc-select/pkg/regalloc"
	"github.com/oisee/sparc-select/pkg/sparc"
	"github.com/oisee/sparc-select/pkg/ssa"
)

// genPhi installs a Phi's target image as a placeholder before any of its
// operands are transformed, breaking the cycles loop-carried Phis would
// otherwise cause (spec.md §4.1 step 3, §9 "Cycles via Phi"). Its source
// operands are parked in PendingPreds for FixupPhis to resolve once every
// reachable node has a target image — Go's typed pointers can't alias a
// *ssa.Node into a []*sparc.Node slot the way orig's untyped ir_node**
// does, so the pending list is the idiomatic substitute, grounded on
// orig's gen_Phi / be_enqueue_preds.
func genPhi(c *Context, n *ssa.Node) (*sparc.Node, error) {
	block := c.TransformBlock(n.BlockOf())
	mode := n.ModeOf()

	var req *regalloc.Requirement
	if mode.NeedsGPReg() {
		mode = ssa.ModeIu
		req = regalloc.GPRequirement
	} else {
		req = regalloc.NoRequirement
	}

	t := sparc.NewNode(sparc.OpPhi, mode, block)
	t.DebugInfo = n.DebugInfo
	t.RegReq = req
	t.PendingPreds = append([]*ssa.Node(nil), n.PredList()...)

	c.Memo.Install(n, t)
	c.enqueuePhiFixup(t)
	return t, nil
}

// FixupPhis resolves every enqueued Phi placeholder's PendingPreds through
// the memo into real target predecessors. Run once, after every node
// reachable from the graph's roots has been transformed (spec.md §4.1
// step 3).
func FixupPhis(c *Context) error {
	for _, t := range c.phiFixups {
		preds := make([]*sparc.Node, 0, len(t.PendingPreds))
		for _, srcPred := range t.PendingPreds {
			p, err := c.Transform(srcPred)
			if err != nil {
				return err
			}
			preds = append(preds, p)
		}
		t.Preds = preds
		t.PendingPreds = nil
	}
	return nil
}
