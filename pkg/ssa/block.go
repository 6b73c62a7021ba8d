package ssa

// Block is a basic block; every node belongs to exactly one block.
type Block struct {
	ID    int
	Name  string
	Preds []*Block // incoming control-flow edges, in Phi-operand order
}

// NewBlock creates a block with the given id and name.
func NewBlock(id int, name string) *Block {
	return &Block{ID: id, Name: name}
}

// AddPred records pred as a predecessor of b, in order.
func (b *Block) AddPred(pred *Block) {
	b.Preds = append(b.Preds, pred)
}
