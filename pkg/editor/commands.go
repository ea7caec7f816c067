package editor

import (
	"github.com/soypat/geometry/ms2"

	"github.com/matzehuels/shadergraph/pkg/blob"
	"github.com/matzehuels/shadergraph/pkg/graph"
	"github.com/matzehuels/shadergraph/pkg/history"
)

// Commands reference nodes by id rather than pointer: a node removed and
// restored by undo is a fresh allocation, but it keeps its id, so id-based
// commands elsewhere on the stack stay valid.

type moveCmd struct {
	ed     *Editor
	id     int
	oldPos ms2.Vec
	newPos ms2.Vec
}

func (c *moveCmd) Do() {
	if n, _, err := c.ed.findNode(c.id); err == nil {
		n.Pos = c.newPos
	}
}

func (c *moveCmd) Undo() {
	if n, _, err := c.ed.findNode(c.id); err == nil {
		n.Pos = c.oldPos
	}
}

func (c *moveCmd) Merge(next history.Command) bool {
	m, ok := next.(*moveCmd)
	if !ok || m.id != c.id {
		return false
	}
	c.newPos = m.newPos
	return true
}

func (c *moveCmd) Name() string { return "move" }

// connectCmd installs one link. Construction captures whatever occupied
// either endpoint so undo can restore the displaced links.
type connectCmd struct {
	ed      *Editor
	from    int
	fromPin int
	to      int
	toPin   int

	// Displaced consumer of from's output pin and displaced producer of
	// to's input pin; -1 when the slot was free.
	prevConsumer    int
	prevConsumerPin int
	prevProducer    int
	prevProducerPin int
}

func newConnectCmd(ed *Editor, from, fromPin, to, toPin int) *connectCmd {
	c := &connectCmd{
		ed: ed, from: from, fromPin: fromPin, to: to, toPin: toPin,
		prevConsumer: -1, prevConsumerPin: -1,
		prevProducer: -1, prevProducerPin: -1,
	}

	fromNode, _, _ := ed.findNode(from)
	toNode, _, _ := ed.findNode(to)
	if cons := fromNode.Out[fromPin]; cons != nil {
		c.prevConsumer = cons.ID
		c.prevConsumerPin = cons.InputPinOf(fromNode)
	}
	if prod := toNode.In[toPin]; prod != nil {
		c.prevProducer = prod.ID
		c.prevProducerPin = prod.OutputPinOf(toNode)
	}
	return c
}

func (c *connectCmd) Do() {
	fromNode, _, _ := c.ed.findNode(c.from)
	toNode, _, _ := c.ed.findNode(c.to)
	graph.Connect(fromNode, c.fromPin, toNode, c.toPin)
}

func (c *connectCmd) Undo() {
	fromNode, _, _ := c.ed.findNode(c.from)
	toNode, _, _ := c.ed.findNode(c.to)
	graph.Disconnect(fromNode, c.fromPin, false)

	if c.prevConsumer >= 0 {
		if cons, _, err := c.ed.findNode(c.prevConsumer); err == nil {
			graph.Connect(fromNode, c.fromPin, cons, c.prevConsumerPin)
		}
	}
	if c.prevProducer >= 0 {
		if prod, _, err := c.ed.findNode(c.prevProducer); err == nil {
			graph.Connect(prod, c.prevProducerPin, toNode, c.toPin)
		}
	}
}

func (c *connectCmd) Merge(history.Command) bool { return false }
func (c *connectCmd) Name() string               { return "connect" }

type createCmd struct {
	ed    *Editor
	stage graph.Stage
	kind  graph.NodeKind
	pos   ms2.Vec
	// id is allocated on the first Do and reused on redo, keeping the node's
	// identity stable across undo cycles.
	id int
}

func (c *createCmd) Do() {
	if c.id == 0 {
		c.id = c.ed.allocID()
	}
	n := graph.NewNode(c.kind)
	n.ID = c.id
	n.Pos = c.pos
	c.ed.graphs[c.stage].Add(n)
}

func (c *createCmd) Undo() {
	g := c.ed.graphs[c.stage]
	if n := g.FindByID(c.id); n != nil {
		g.Remove(n)
	}
}

func (c *createCmd) Merge(history.Command) bool { return false }
func (c *createCmd) Name() string               { return "create" }

// removeCmd deletes a node. Do snapshots the node body and its connection
// table first, so Undo can rebuild the node and relink its neighbors.
type removeCmd struct {
	ed       *Editor
	stage    graph.Stage
	id       int
	snapshot []byte
}

func (c *removeCmd) Do() {
	g := c.ed.graphs[c.stage]
	n := g.FindByID(c.id)
	if n == nil {
		return
	}
	var w blob.Writer
	writeNode(&w, n)
	writeConnections(&w, n)
	c.snapshot = w.Bytes()
	g.Remove(n)
}

func (c *removeCmd) Undo() {
	g := c.ed.graphs[c.stage]
	r := blob.NewReader(c.snapshot)
	n, err := readNode(r)
	if err != nil {
		return
	}
	g.Add(n)
	readConnections(r, n, g.FindByID)
}

func (c *removeCmd) Merge(history.Command) bool { return false }
func (c *removeCmd) Name() string               { return "remove" }
