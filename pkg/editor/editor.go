// Package editor holds the live authoring session: one graph per shader
// stage, the program descriptor, the undo history, and the id allocator.
// All graph mutations requested by a frontend go through here so that every
// edit lands on the undo stack.
package editor

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/soypat/geometry/ms2"

	"github.com/matzehuels/shadergraph/pkg/graph"
	"github.com/matzehuels/shadergraph/pkg/history"
	"github.com/matzehuels/shadergraph/pkg/shader"
)

var (
	// ErrUnknownNode reports a node id that resolves in neither stage graph.
	ErrUnknownNode = errors.New("unknown node id")
	// ErrNoPendingLink reports CompleteLink without a preceding BeginLink.
	ErrNoPendingLink = errors.New("no pending link")
	// ErrSameDirection reports a link attempt between two inputs or two
	// outputs.
	ErrSameDirection = errors.New("link endpoints have the same direction")
	// ErrStageMismatch reports an operation pairing nodes of different
	// stages, or a node kind placed in a stage it is not legal in.
	ErrStageMismatch = errors.New("stage mismatch")
)

// Editor is a single-owner editing session. It is not safe for concurrent
// use.
type Editor struct {
	logger *log.Logger

	// Desc is the program descriptor the frontend edits in place; texture
	// and varying names are not part of the undo history.
	Desc shader.Desc

	graphs  [graph.StageCount]*graph.Graph
	history *history.Stack
	lastID  int

	pending *pendingLink
}

// pendingLink remembers the first endpoint of a two-step link gesture.
type pendingLink struct {
	node    *graph.Node
	pin     int
	isInput bool
}

// New creates an editor session seeded with the mandatory stage outputs.
func New(logger *log.Logger) *Editor {
	if logger == nil {
		logger = log.Default()
	}
	e := &Editor{logger: logger}
	e.Reset()
	return e
}

// Reset discards all state and reseeds the fresh-session graphs: a fragment
// color output and a vertex position output, both at the canvas origin
// offset.
func (e *Editor) Reset() {
	e.Desc.Reset()
	e.history = history.New()
	e.lastID = 0
	e.pending = nil
	for s := range e.graphs {
		e.graphs[s] = graph.New(graph.Stage(s))
	}

	seed := func(stage graph.Stage, kind graph.NodeKind) {
		n := graph.NewNode(kind)
		n.ID = e.allocID()
		n.Pos = ms2.Vec{X: 50, Y: 50}
		e.graphs[stage].Add(n)
	}
	seed(graph.StageFragment, graph.KindFragmentOutput)
	seed(graph.StageVertex, graph.KindPositionOutput)
}

// Graph returns the graph of one stage.
func (e *Editor) Graph(stage graph.Stage) *graph.Graph {
	return e.graphs[stage]
}

func (e *Editor) allocID() int {
	e.lastID++
	return e.lastID
}

// findNode resolves id across both stages.
func (e *Editor) findNode(id int) (*graph.Node, graph.Stage, error) {
	for s, g := range e.graphs {
		if n := g.FindByID(id); n != nil {
			return n, graph.Stage(s), nil
		}
	}
	return nil, 0, fmt.Errorf("node %d: %w", id, ErrUnknownNode)
}

// FindNode resolves a node id to the node and its stage.
func (e *Editor) FindNode(id int) (*graph.Node, graph.Stage, error) {
	return e.findNode(id)
}

// BeginLink starts a link gesture at one pin. A later CompleteLink on a pin
// of the opposite direction closes the link; starting a new gesture replaces
// any pending one.
func (e *Editor) BeginLink(id, pin int, isInput bool) error {
	n, _, err := e.findNode(id)
	if err != nil {
		return err
	}
	if err := checkPin(n, pin, isInput); err != nil {
		return err
	}
	e.pending = &pendingLink{node: n, pin: pin, isInput: isInput}
	return nil
}

// CancelLink drops the pending link gesture, if any.
func (e *Editor) CancelLink() {
	e.pending = nil
}

// CompleteLink closes the pending link gesture at the given pin. The two
// endpoints are ordered into producer and consumer by direction; pin types
// are not checked, type mismatches surface in generated source instead.
func (e *Editor) CompleteLink(id, pin int, isInput bool) error {
	if e.pending == nil {
		return ErrNoPendingLink
	}
	start := e.pending
	e.pending = nil

	n, stage, err := e.findNode(id)
	if err != nil {
		return err
	}
	if err := checkPin(n, pin, isInput); err != nil {
		return err
	}
	if start.isInput == isInput {
		return ErrSameDirection
	}
	if startStage := e.graphs[stage].FindByID(start.node.ID); startStage == nil {
		return fmt.Errorf("link across stages: %w", ErrStageMismatch)
	}

	var cmd *connectCmd
	if isInput {
		cmd = newConnectCmd(e, start.node.ID, start.pin, n.ID, pin)
	} else {
		cmd = newConnectCmd(e, n.ID, pin, start.node.ID, start.pin)
	}
	e.history.Execute(cmd)
	e.logger.Debug("connected nodes", "from", cmd.from, "to", cmd.to)
	return nil
}

// RequestMove records a node move. Moves of one node coalesce into a single
// undo step; a move to the node's current position is dropped.
func (e *Editor) RequestMove(id int, pos ms2.Vec) error {
	n, _, err := e.findNode(id)
	if err != nil {
		return err
	}
	if n.Pos == pos {
		return nil
	}
	e.history.Execute(&moveCmd{ed: e, id: id, oldPos: n.Pos, newPos: pos})
	return nil
}

// RequestCreate adds a node of the given kind to a stage graph and returns
// its id.
func (e *Editor) RequestCreate(stage graph.Stage, kind graph.NodeKind, pos ms2.Vec) (int, error) {
	if !stage.Valid() {
		return 0, fmt.Errorf("stage %d: %w", stage, ErrStageMismatch)
	}
	if !kind.Valid() || !kind.LegalIn(stage) {
		return 0, fmt.Errorf("%s in %s stage: %w", kind, stage, ErrStageMismatch)
	}
	cmd := &createCmd{ed: e, stage: stage, kind: kind, pos: pos}
	e.history.Execute(cmd)
	e.logger.Debug("created node", "id", cmd.id, "kind", kind.String(), "stage", stage.String())
	return cmd.id, nil
}

// RequestRemove removes the node with the given id along with all its links.
func (e *Editor) RequestRemove(id int) error {
	_, stage, err := e.findNode(id)
	if err != nil {
		return err
	}
	e.history.Execute(&removeCmd{ed: e, stage: stage, id: id})
	e.logger.Debug("removed node", "id", id)
	return nil
}

// Undo reverts the most recent edit. It reports whether anything changed.
func (e *Editor) Undo() bool { return e.history.Undo() }

// Redo re-applies the most recently undone edit. It reports whether anything
// changed.
func (e *Editor) Redo() bool { return e.history.Redo() }

// CanUndo reports whether an edit is available to undo.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether an undone edit is available to redo.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

func checkPin(n *graph.Node, pin int, isInput bool) error {
	slots := len(n.Out)
	if isInput {
		slots = len(n.In)
	}
	if pin < 0 || pin >= slots {
		return fmt.Errorf("pin %d out of range for %s node %d", pin, n.Kind, n.ID)
	}
	return nil
}
