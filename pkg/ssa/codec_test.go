package ssa

import "testing"

// TestEncodeDecodeRoundTrip mirrors the teacher's marshal/unmarshal
// roundtrip style, checked over a small graph with a shared operand.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	g := NewGraph("roundtrip")
	entry := g.AddBlock(NewBlock(0, "entry"))

	start := g.AddNode(NewStart(1, entry))
	c5 := g.AddNode(NewConst(2, entry, ModeIu, NewTarval(5, ModeIu)))
	add := g.AddNode(NewBinop(3, OpAdd, entry, ModeIu, c5, c5))
	end := g.AddNode(NewEnd(4, entry, add))
	g.Start, g.End = start, end

	data, err := EncodeGraph(g)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := DecodeGraph(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if decoded.Name != g.Name {
		t.Errorf("name: want %q, got %q", g.Name, decoded.Name)
	}
	if len(decoded.Nodes) != len(g.Nodes) {
		t.Fatalf("node count: want %d, got %d", len(g.Nodes), len(decoded.Nodes))
	}
	if decoded.End == nil || decoded.End.Opcode() != OpEnd {
		t.Fatal("decoded graph has no End node")
	}

	var decodedAdd *Node
	for _, n := range decoded.Nodes {
		if n.Opcode() == OpAdd {
			decodedAdd = n
		}
	}
	if decodedAdd == nil {
		t.Fatal("decoded graph lost its Add node")
	}
	if decodedAdd.Arity() != 2 {
		t.Fatalf("decoded Add arity: want 2, got %d", decodedAdd.Arity())
	}
	if decodedAdd.Pred(0) != decodedAdd.Pred(1) {
		t.Error("decoded Add lost sharing: its two operands should be the same Const node")
	}
}

// TestUsers exercises the out-edge index a Proj-renumbering pass relies on.
func TestUsers(t *testing.T) {
	g := NewGraph("users")
	entry := g.AddBlock(NewBlock(0, "entry"))

	selector := g.AddNode(NewUnknown(1, entry, ModeIu))
	cond := g.AddNode(NewCond(2, entry, selector, 10))
	p1 := g.AddNode(NewProj(3, entry, ModeB, cond, 5))
	p2 := g.AddNode(NewProj(4, entry, ModeB, cond, 7))

	users := g.Users(cond)
	if len(users) != 2 {
		t.Fatalf("expected 2 users of cond, got %d", len(users))
	}
	found := map[*Node]bool{p1: false, p2: false}
	for _, u := range users {
		found[u] = true
	}
	if !found[p1] || !found[p2] {
		t.Error("Users did not return both Proj nodes")
	}

	// AddNode invalidates the cache; re-adding a fresh user must show up.
	p3 := g.AddNode(NewProj(5, entry, ModeB, cond, 8))
	users = g.Users(cond)
	if len(users) != 3 {
		t.Fatalf("expected 3 users after adding a new Proj, got %d", len(users))
	}
	_ = p3
}

func TestImmediateEncodable(t *testing.T) {
	cases := []struct {
		v    int64
		want bool
	}{
		{0, true},
		{4095, true},
		{-4096, true},
		{4096, false},
		{-4097, false},
		{100000, false},
	}
	for _, tc := range cases {
		if got := ImmediateEncodable(tc.v); got != tc.want {
			t.Errorf("ImmediateEncodable(%d) = %v, want %v", tc.v, got, tc.want)
		}
	}
}
