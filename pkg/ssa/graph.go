package ssa

// Graph is one source SSA graph: an entry block, an End node (the pass's
// root), and the full node/block inventory reachable from it.
type Graph struct {
	Name   string
	Start  *Node
	End    *Node
	Blocks []*Block
	Nodes  []*Node // every node in the graph, for iteration and edge-building

	users map[*Node][]*Node // lazily built out-edge index, see Users
}

// AddBlock registers b as part of the graph.
func (g *Graph) AddBlock(b *Block) *Block {
	g.Blocks = append(g.Blocks, b)
	return b
}

// NewGraph creates an empty named graph.
func NewGraph(name string) *Graph {
	return &Graph{Name: name}
}

// AddNode registers n as part of the graph so Users() can find it. Building
// a graph by hand (as tests do) should call this for every node created.
func (g *Graph) AddNode(n *Node) *Node {
	g.Nodes = append(g.Nodes, n)
	g.users = nil // invalidate the cached edge index
	return n
}

// Users returns every node that has n as one of its operands — the
// generic IR's out-edge view (spec.md §4.6 "Scan all outgoing Proj edges"),
// grounded on orig's foreach_out_edge. Built once per graph and cached;
// invalidated by AddNode.
func (g *Graph) Users(n *Node) []*Node {
	if g.users == nil {
		g.users = make(map[*Node][]*Node, len(g.Nodes))
		for _, node := range g.Nodes {
			for _, pred := range node.Preds {
				g.users[pred] = append(g.users[pred], node)
			}
		}
	}
	return g.users[n]
}
