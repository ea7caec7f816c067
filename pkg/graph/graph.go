package graph

// Graph owns the nodes of one shader stage. Node order is insertion order;
// it is meaningful for code generation (declaration emission) and for the
// save format, so nodes live in a slice rather than a map.
//
// Graph is not safe for concurrent use: the editor session is single-owner,
// single-threaded state.
type Graph struct {
	stage Stage
	nodes []*Node
}

// New creates an empty graph for the given stage.
func New(stage Stage) *Graph {
	return &Graph{stage: stage}
}

// Stage returns the stage this graph compiles to.
func (g *Graph) Stage() Stage { return g.stage }

// Nodes returns the graph's nodes in insertion order. The slice is the
// graph's own backing store; callers must not mutate it.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Add appends a node to the graph. The caller is responsible for having
// assigned a unique ID.
func (g *Graph) Add(n *Node) {
	g.nodes = append(g.nodes, n)
}

// FindByID returns the node with the given id, or nil if absent.
func (g *Graph) FindByID(id int) *Node {
	for _, n := range g.nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// Remove disconnects every slot of n in both directions and removes it from
// the graph. After Remove returns no neighbor holds a reference to n.
// Removing a node not in the graph is a no-op.
func (g *Graph) Remove(n *Node) {
	for pin := range n.In {
		Disconnect(n, pin, true)
	}
	for pin := range n.Out {
		Disconnect(n, pin, false)
	}
	for i, cur := range g.nodes {
		if cur == n {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			return
		}
	}
}

// Clear removes every node. Neighbor references need no unwinding since the
// whole collection goes away at once.
func (g *Graph) Clear() {
	g.nodes = nil
}

// Connect installs a bidirectional link from output pin fromPin of from to
// input pin toPin of to. Whatever previously occupied either endpoint is
// evicted first, with the reciprocal slot on each evicted neighbor cleared:
// the last connect wins, and no error is raised for overwriting.
func Connect(from *Node, fromPin int, to *Node, toPin int) {
	from.checkOutputPin(fromPin)
	to.checkInputPin(toPin)

	Disconnect(from, fromPin, false)
	Disconnect(to, toPin, true)

	from.Out[fromPin] = to
	to.In[toPin] = from
}

// Disconnect clears one slot of n and the reciprocal slot on its neighbor.
// Disconnecting an empty slot is a no-op.
func Disconnect(n *Node, pin int, isInput bool) {
	if isInput {
		n.checkInputPin(pin)
		neighbor := n.In[pin]
		if neighbor == nil {
			return
		}
		if out := neighbor.outputPinOf(n); out >= 0 {
			neighbor.Out[out] = nil
		}
		n.In[pin] = nil
		return
	}

	n.checkOutputPin(pin)
	neighbor := n.Out[pin]
	if neighbor == nil {
		return
	}
	if in := neighbor.inputPinOf(n); in >= 0 {
		neighbor.In[in] = nil
	}
	n.Out[pin] = nil
}
