package sparc

import (
	"path/filepath"
	"testing"

	"github.com/oisee/sparc-select/pkg/ssa"
)

func TestNewAddImmCarriesOperandAndImmediate(t *testing.T) {
	block := ssa.NewBlock(0, "entry")
	op := NewMovImm("", block, 7)
	add := NewAddImm("", block, op, 5)

	if add.Op != OpAddImm {
		t.Fatalf("op: want Add_imm, got %s", add.Op)
	}
	if add.Imm != 5 {
		t.Fatalf("imm: want 5, got %d", add.Imm)
	}
	if len(add.Preds) != 1 || add.Preds[0] != op {
		t.Fatal("Add_imm must carry exactly one operand, the register value")
	}
	if add.Mode != ssa.ModeIu {
		t.Fatalf("mode: want canonical 32-bit unsigned, got %+v", add.Mode)
	}
}

func TestHiLoImmSplit(t *testing.T) {
	block := ssa.NewBlock(0, "entry")
	hi := NewHiImm("", block, 100000)
	lo := NewLoImm("", block, hi, 100000)

	if !hi.FrameDep {
		t.Error("HiImm must carry the artificial frame dependency (it has no real predecessor)")
	}
	if lo.FrameDep {
		t.Error("LoImm must not carry a frame dependency; it already depends on hi")
	}
	if len(lo.Preds) != 1 || lo.Preds[0] != hi {
		t.Fatal("LoImm must depend on hi")
	}
}

func TestMovImmFrameDep(t *testing.T) {
	block := ssa.NewBlock(0, "entry")
	mov := NewMovImm("", block, 5)
	if !mov.FrameDep {
		t.Error("Mov_imm has no real predecessor and must carry the artificial frame dependency")
	}
	if len(mov.Preds) != 0 {
		t.Error("Mov_imm takes no operands")
	}
}

func TestNoMemPlaceholder(t *testing.T) {
	block := ssa.NewBlock(0, "entry")
	mem := NewNoMem(block)
	if mem.Op != OpNoMem {
		t.Fatalf("op: want NoMem, got %s", mem.Op)
	}
	if mem.Mode != ssa.ModeM {
		t.Fatal("NoMem must carry the memory-token mode")
	}
}

func TestStackDirectionInversionBuilders(t *testing.T) {
	block := ssa.NewBlock(0, "entry")
	sp := NewMovImm("", block, 0)
	size := NewMovImm("", block, 16)
	mem := NewNoMem(block)

	// A source AddSP ("allocate") lowers to a target SubSP.
	subSP := NewSubSP("", block, sp, size, mem)
	if subSP.Op != OpSubSP {
		t.Fatalf("expected SubSP, got %s", subSP.Op)
	}
	// A source SubSP ("release") lowers to a target AddSP.
	addSP := NewAddSP("", block, sp, size, mem)
	if addSP.Op != OpAddSP {
		t.Fatalf("expected AddSP, got %s", addSP.Op)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	g := NewGraph("snapshot-roundtrip")
	block := ssa.NewBlock(0, "entry")

	c5 := g.Add(NewMovImm("", block, 5))
	add := g.Add(NewAddReg("", block, c5, c5))

	path := filepath.Join(t.TempDir(), "snap.gob")
	if err := SaveSnapshot(path, g); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Name != g.Name {
		t.Errorf("name: want %q, got %q", g.Name, loaded.Name)
	}
	if len(loaded.Nodes) != len(g.Nodes) {
		t.Fatalf("node count: want %d, got %d", len(g.Nodes), len(loaded.Nodes))
	}

	var loadedAdd *Node
	for _, n := range loaded.Nodes {
		if n.Op == OpAddReg {
			loadedAdd = n
		}
	}
	if loadedAdd == nil {
		t.Fatal("snapshot lost the Add_reg node")
	}
	if loadedAdd.Preds[0] != loadedAdd.Preds[1] {
		t.Error("snapshot round trip lost sharing: Add_reg's two operands should be the same node")
	}
	_ = add
}
