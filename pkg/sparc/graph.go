package sparc

// Graph is the transformed target graph delivered to downstream passes
// (spec.md §6): every live source node has a corresponding entry here.
// Context.Transform appends each handler's result to it; builders do not,
// so intermediate nodes a handler builds on the way (e.g. the HiImm under a
// LoImm, or the inner nodes of the Abs chain) are reachable only through
// Preds and are not listed. It is treated as append-only for the pass's
// duration (spec.md §5).
type Graph struct {
	Name  string
	Nodes []*Node
}

// NewGraph creates an empty named target graph.
func NewGraph(name string) *Graph {
	return &Graph{Name: name}
}

// Add registers n as part of the graph and returns it, so builder calls can
// be chained inline: `g.Add(NewAddReg(...))`.
func (g *Graph) Add(n *Node) *Node {
	g.Nodes = append(g.Nodes, n)
	return n
}
