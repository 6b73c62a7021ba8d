package transform

import (
	"testing"

	"github.com/oisee/sparc-select/pkg/sparc"
	"github.com/oisee/sparc-select/pkg/ssa"
)

// graphBuilder accumulates nodes into a single-block source graph, matching
// the style spec.md §8's scenarios are written against.
type graphBuilder struct {
	g     *ssa.Graph
	block *ssa.Block
	nextID int
}

func newBuilder(name string) *graphBuilder {
	b := &graphBuilder{g: ssa.NewGraph(name), block: ssa.NewBlock(0, "entry")}
	b.g.AddBlock(b.block)
	return b
}

func (b *graphBuilder) id() int {
	b.nextID++
	return b.nextID
}

func (b *graphBuilder) add(n *ssa.Node) *ssa.Node {
	return b.g.AddNode(n)
}

func (b *graphBuilder) constInt(v int64) *ssa.Node {
	return b.add(ssa.NewConst(b.id(), b.block, ssa.ModeIu, ssa.NewTarval(v, ssa.ModeIu)))
}

func (b *graphBuilder) end(keepAlive ...*ssa.Node) {
	b.g.End = b.add(ssa.NewEnd(b.id(), b.block, keepAlive...))
}

// TestScenarioAddHoistedConstant is S1: Add(Const(5), x) folds into a single
// Add_imm (commutativity moves the constant to the right), never
// materializing the constant as a separate register value.
func TestScenarioAddHoistedConstant(t *testing.T) {
	b := newBuilder("s1")
	x := b.add(ssa.NewUnknown(b.id(), b.block, ssa.ModeIu))
	c5 := b.constInt(5)
	add := b.add(ssa.NewBinop(b.id(), ssa.OpAdd, b.block, ssa.ModeIu, c5, x))
	b.end(add)

	ctx, err := RunTransform(b.g)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	target, ok := ctx.Memo.Lookup(add)
	if !ok {
		t.Fatal("Add has no target image")
	}
	if target.Op != sparc.OpAddImm {
		t.Fatalf("expected Add_imm, got %s", target.Op)
	}
	if target.Imm != 5 {
		t.Fatalf("expected immediate 5, got %d", target.Imm)
	}
	if len(target.Preds) != 1 {
		t.Fatalf("expected Add_imm to carry exactly one operand, got %d", len(target.Preds))
	}
}

// TestScenarioAddOutOfRangeConstant is S2: Add(x, Const(100000)) cannot fold
// into an immediate (100000 exceeds simm13), so the constant must be built
// via the HiImm/LoImm split and combined with a register Add.
func TestScenarioAddOutOfRangeConstant(t *testing.T) {
	b := newBuilder("s2")
	x := b.add(ssa.NewUnknown(b.id(), b.block, ssa.ModeIu))
	big := b.constInt(100000)
	add := b.add(ssa.NewBinop(b.id(), ssa.OpAdd, b.block, ssa.ModeIu, x, big))
	b.end(add)

	ctx, err := RunTransform(b.g)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	target, ok := ctx.Memo.Lookup(add)
	if !ok {
		t.Fatal("Add has no target image")
	}
	if target.Op != sparc.OpAddReg {
		t.Fatalf("expected Add_reg (out-of-range immediate must not fold), got %s", target.Op)
	}
	constImg, ok := ctx.Memo.Lookup(big)
	if !ok || constImg.Op != sparc.OpLoImm {
		t.Fatalf("expected out-of-range Const to lower to LoImm, got %v", constImg)
	}
	if len(constImg.Preds) != 1 || constImg.Preds[0].Op != sparc.OpHiImm {
		t.Fatal("expected LoImm to depend on a HiImm")
	}
}

// TestScenarioAbsFourNodeChain is S3: Abs(x) lowers to the exact
// Mov_reg/Sra_imm(31)/Xor_reg/Sub_reg idiom.
func TestScenarioAbsFourNodeChain(t *testing.T) {
	b := newBuilder("s3")
	x := b.add(ssa.NewUnknown(b.id(), b.block, ssa.ModeIu))
	abs := b.add(ssa.NewUnop(b.id(), ssa.OpAbs, b.block, ssa.ModeIu, x))
	b.end(abs)

	ctx, err := RunTransform(b.g)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	violations := checkAbsLoweringShape(b.g, ctx)
	for _, v := range violations {
		t.Errorf("abs-lowering-shape violation: %s", v.Detail)
	}
}

// TestScenarioSwitchRenumbering is S4: a switch Cond with live selectors
// {5, 7, 8} and default 10 renumbers to translation=5, so the selectors
// become {0, 2, 3} and the default becomes 5.
func TestScenarioSwitchRenumbering(t *testing.T) {
	b := newBuilder("s4")
	selector := b.add(ssa.NewUnknown(b.id(), b.block, ssa.ModeIu))
	cond := b.add(ssa.NewCond(b.id(), b.block, selector, 10))
	p5 := b.add(ssa.NewProj(b.id(), b.block, ssa.ModeB, cond, 5))
	p7 := b.add(ssa.NewProj(b.id(), b.block, ssa.ModeB, cond, 7))
	p8 := b.add(ssa.NewProj(b.id(), b.block, ssa.ModeB, cond, 8))
	b.end(p5, p7, p8)

	ctx, err := RunTransform(b.g)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	target, ok := ctx.Memo.Lookup(cond)
	if !ok || target.Op != sparc.OpSwitchJmp {
		t.Fatalf("expected Cond to lower to SwitchJmp, got %v", target)
	}
	if target.NProjs != 4 {
		t.Fatalf("expected n_projs=4 (max 8 - min 5 + 1), got %d", target.NProjs)
	}
	if target.DefaultProj != 5 {
		t.Fatalf("expected default selector 5 (10 - translation 5), got %d", target.DefaultProj)
	}
	wantProjNum := map[*ssa.Node]int{p5: 0, p7: 2, p8: 3}
	for proj, want := range wantProjNum {
		if got := ssa.ProjNum(proj); got != want {
			t.Errorf("Proj renumbering: want %d, got %d", want, got)
		}
	}
	if violations := checkSwitchContiguity(ctx); len(violations) != 0 {
		t.Errorf("switch-contiguity violated after renumbering: %v", violations)
	}
}

// TestScenarioCmpSignExtension is S5: Cmp(signed16, signed16) widens both
// operands to 32 bits via sign extension before the register compare.
func TestScenarioCmpSignExtension(t *testing.T) {
	b := newBuilder("s5")
	left := b.add(ssa.NewUnknown(b.id(), b.block, ssa.ModeIs16))
	right := b.add(ssa.NewUnknown(b.id(), b.block, ssa.ModeIs16))
	cmp := b.add(ssa.NewCmp(b.id(), b.block, left, right))
	b.end(cmp)

	ctx, err := RunTransform(b.g)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	target, ok := ctx.Memo.Lookup(cmp)
	if !ok || target.Op != sparc.OpCmpReg {
		t.Fatalf("expected Cmp to lower to Cmp_reg, got %v", target)
	}
	if target.IsUnsigned {
		t.Error("expected signed compare for signed 16-bit operands")
	}
	for i, operand := range target.Preds {
		if operand.Op != sparc.OpSraImm || operand.Imm != 16 {
			t.Errorf("operand %d: expected Sra_imm(16) completing sign extension, got %s imm=%d", i, operand.Op, operand.Imm)
		}
	}
}

// TestScenarioPhiThroughMulCycle is S6: a Phi with a back-edge through a Mul
// resolves to a fully-wired target Phi with no pending predecessors left,
// whose back-edge slot points at the Mul's shared target image.
func TestScenarioPhiThroughMulCycle(t *testing.T) {
	loopHeader := ssa.NewBlock(1, "loop")
	b := newBuilder("s6")
	b.g.AddBlock(loopHeader)

	initVal := b.constInt(1)
	two := b.constInt(2)

	phi := ssa.NewPhi(b.id(), loopHeader, ssa.ModeIu) // preds wired below, after Mul exists
	b.add(phi)
	mul := b.add(ssa.NewBinop(b.id(), ssa.OpMul, loopHeader, ssa.ModeIu, phi, two))
	phi.Preds = []*ssa.Node{initVal, mul} // loop carries Mul's result back into Phi

	b.end(phi, mul)

	ctx, err := RunTransform(b.g)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	target, ok := ctx.Memo.Lookup(phi)
	if !ok || target.Op != sparc.OpPhi {
		t.Fatalf("expected Phi to lower to a target Phi, got %v", target)
	}
	if len(target.PendingPreds) != 0 {
		t.Fatal("Phi still has pending predecessors after FixupPhis")
	}
	if len(target.Preds) != 2 {
		t.Fatalf("expected 2 resolved predecessors, got %d", len(target.Preds))
	}
	mulTarget, ok := ctx.Memo.Lookup(mul)
	if !ok {
		t.Fatal("Mul embedded in the Phi cycle has no target image")
	}
	if target.Preds[1] != mulTarget {
		t.Error("Phi's back-edge predecessor does not point at Mul's shared target image")
	}
}

// TestProjFromStart exercises a function-parameter access — Proj(Start, k)
// — the shape every real function's argument reads take. Start itself is
// never transformed; the Proj must duplicate its own identity instead of
// recursing into a missing Start handler.
func TestProjFromStart(t *testing.T) {
	b := newBuilder("proj-start")
	start := b.add(ssa.NewStart(b.id(), b.block))
	param := b.add(ssa.NewProj(b.id(), b.block, ssa.ModeIs16, start, 2))
	b.end(param)

	ctx, err := RunTransform(b.g)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	target, ok := ctx.Memo.Lookup(param)
	if !ok {
		t.Fatal("Proj(Start, _) has no target image")
	}
	if target.Op != sparc.OpProj {
		t.Fatalf("expected Proj, got %s", target.Op)
	}
	if target.Mode != ssa.ModeIu {
		t.Fatalf("expected a GP-mode Proj to narrow to canonical 32-bit unsigned, got %+v", target.Mode)
	}
	if target.ProjNum != 2 {
		t.Fatalf("expected selector 2 preserved, got %d", target.ProjNum)
	}
	if len(target.Preds) != 0 {
		t.Fatalf("Proj(Start, _) duplicates itself rather than wrapping a transformed Start, expected no operands, got %d", len(target.Preds))
	}
}

// TestCheckProperties runs every universal property against each scenario
// graph, so a future handler change that breaks a structural invariant
// fails here even if the scenario-specific assertions above miss it.
func TestCheckProperties(t *testing.T) {
	scenarios := []func() *ssa.Graph{
		func() *ssa.Graph {
			b := newBuilder("props-add")
			x := b.add(ssa.NewUnknown(b.id(), b.block, ssa.ModeIu))
			add := b.add(ssa.NewBinop(b.id(), ssa.OpAdd, b.block, ssa.ModeIu, x, b.constInt(5)))
			b.end(add)
			return b.g
		},
		func() *ssa.Graph {
			b := newBuilder("props-abs")
			x := b.add(ssa.NewUnknown(b.id(), b.block, ssa.ModeIu))
			abs := b.add(ssa.NewUnop(b.id(), ssa.OpAbs, b.block, ssa.ModeIu, x))
			b.end(abs)
			return b.g
		},
	}

	for _, build := range scenarios {
		g := build()
		t.Run(g.Name, func(t *testing.T) {
			ctx, err := RunTransform(g)
			if err != nil {
				t.Fatalf("transform failed: %v", err)
			}
			for _, v := range CheckProperties(g, ctx) {
				t.Errorf("[%s] %s", v.Property, v.Detail)
			}
		})
	}
}

// TestDeterminism is property 1: transforming the same source graph twice
// must produce target graphs of identical shape.
func TestDeterminism(t *testing.T) {
	build := func() *ssa.Graph {
		b := newBuilder("determinism")
		x := b.add(ssa.NewUnknown(b.id(), b.block, ssa.ModeIu))
		add := b.add(ssa.NewBinop(b.id(), ssa.OpAdd, b.block, ssa.ModeIu, x, b.constInt(5)))
		b.end(add)
		return b.g
	}

	g1 := build()
	target1, err := TransformGraph(g1)
	if err != nil {
		t.Fatalf("first transform failed: %v", err)
	}
	g2 := build()
	target2, err := TransformGraph(g2)
	if err != nil {
		t.Fatalf("second transform failed: %v", err)
	}
	if len(target1.Nodes) != len(target2.Nodes) {
		t.Fatalf("non-deterministic node count: %d vs %d", len(target1.Nodes), len(target2.Nodes))
	}
	for i := range target1.Nodes {
		if target1.Nodes[i].Op != target2.Nodes[i].Op {
			t.Errorf("node %d opcode differs: %s vs %s", i, target1.Nodes[i].Op, target2.Nodes[i].Op)
		}
	}
}

// TestPool verifies the worker-pool Verify entry point reports a clean pass
// for scenarios that should have no violations.
func TestPool(t *testing.T) {
	b := newBuilder("pool-ok")
	x := b.add(ssa.NewUnknown(b.id(), b.block, ssa.ModeIu))
	add := b.add(ssa.NewBinop(b.id(), ssa.OpAdd, b.block, ssa.ModeIu, x, b.constInt(5)))
	b.end(add)

	pool := NewPool(2)
	pool.Verify([]*ssa.Graph{b.g})

	checked, passed := pool.Report.Stats()
	if checked != 1 {
		t.Fatalf("expected 1 graph checked, got %d", checked)
	}
	if passed != 1 {
		t.Fatalf("expected the graph to pass cleanly, got violations: %v", pool.Report.Violations())
	}
}

// TestMissingHandlerIsFatal exercises the transform→error path: an opcode
// with no registered handler is a fatal SelectionError, not a panic.
func TestMissingHandlerIsFatal(t *testing.T) {
	b := newBuilder("missing-handler")
	dummy := b.add(ssa.NewNode(b.id(), ssa.OpInvalid, ssa.ModeIu, b.block))
	b.end(dummy)

	_, err := RunTransform(b.g)
	if err == nil {
		t.Fatal("expected an error for an unregistered opcode")
	}
	selErr, ok := err.(*SelectionError)
	if !ok {
		t.Fatalf("expected *SelectionError, got %T", err)
	}
	if selErr.Kind != MissingHandler {
		t.Fatalf("expected MissingHandler, got %s", selErr.Kind)
	}
}
