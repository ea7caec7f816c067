package editor

import (
	"errors"
	"fmt"

	"github.com/matzehuels/shadergraph/pkg/blob"
	"github.com/matzehuels/shadergraph/pkg/graph"
	"github.com/matzehuels/shadergraph/pkg/history"
	"github.com/matzehuels/shadergraph/pkg/shader"
)

// File layout, little endian: magic, version, texture slot names, vertex
// output names, vertex input flags, then per stage a node count, the node
// bodies, and the connection table of every node. Bodies come before any
// connection table so that neighbor ids always resolve.
const (
	fileMagic   = 0x47444853 // "SHDG"
	fileVersion = 1
)

var (
	// ErrBadMagic reports data that is not a shader graph file.
	ErrBadMagic = errors.New("not a shader graph file")
	// ErrBadVersion reports a file written by an unknown format version.
	ErrBadVersion = errors.New("unsupported file version")
	// ErrCorrupt reports a structurally invalid file.
	ErrCorrupt = errors.New("corrupt file")
)

// SaveBytes serializes the whole session document: descriptor plus both
// stage graphs. The undo history is not part of the document.
func (e *Editor) SaveBytes() []byte {
	var w blob.Writer
	w.WriteUint32(fileMagic)
	w.WriteUint32(fileVersion)

	for _, name := range e.Desc.Textures {
		w.WriteString(name)
	}
	for _, name := range e.Desc.VertexOutputs {
		w.WriteString(name)
	}
	for _, active := range e.Desc.VertexInputs {
		w.WriteBool(active)
	}

	for _, g := range e.graphs {
		nodes := g.Nodes()
		w.WriteInt32(int32(len(nodes)))
		for _, n := range nodes {
			writeNode(&w, n)
		}
		for _, n := range nodes {
			writeConnections(&w, n)
		}
	}
	return w.Bytes()
}

// LoadBytes replaces the session with the document in data. The editor is
// left untouched when loading fails; on success the undo history is cleared
// and the id allocator resumes past the highest loaded id.
func (e *Editor) LoadBytes(data []byte) error {
	r := blob.NewReader(data)
	if r.Uint32() != fileMagic {
		if err := r.Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		return ErrBadMagic
	}
	if v := r.Uint32(); v != fileVersion {
		return fmt.Errorf("%w: %d", ErrBadVersion, v)
	}

	var desc shader.Desc
	for i := range desc.Textures {
		desc.Textures[i] = r.String()
	}
	for i := range desc.VertexOutputs {
		desc.VertexOutputs[i] = r.String()
	}
	for i := range desc.VertexInputs {
		desc.VertexInputs[i] = r.Bool()
	}

	var graphs [graph.StageCount]*graph.Graph
	lastID := 0
	for s := range graphs {
		g := graph.New(graph.Stage(s))
		graphs[s] = g

		count := int(r.Int32())
		if err := r.Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if count < 0 || count > r.Remaining() {
			return fmt.Errorf("%w: node count %d", ErrCorrupt, count)
		}
		for i := 0; i < count; i++ {
			n, err := readNode(r)
			if err != nil {
				return err
			}
			if n.ID > lastID {
				lastID = n.ID
			}
			g.Add(n)
		}
		for _, n := range g.Nodes() {
			if err := readConnections(r, n, g.FindByID); err != nil {
				return err
			}
		}
	}
	if err := r.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	e.Desc = desc
	e.graphs = graphs
	e.lastID = lastID
	e.history = history.New()
	e.pending = nil
	return nil
}

// writeNode serializes a node body: identity, position, payload.
func writeNode(w *blob.Writer, n *graph.Node) {
	w.WriteInt32(int32(n.ID))
	w.WriteInt32(int32(n.Kind))
	w.WriteFloat32(n.Pos.X)
	w.WriteFloat32(n.Pos.Y)
	graph.WritePayload(n, w)
}

// readNode deserializes one node body.
func readNode(r *blob.Reader) (*graph.Node, error) {
	id := int(r.Int32())
	kind := graph.NodeKind(r.Int32())
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: node kind %d", ErrCorrupt, int32(kind))
	}
	n := graph.NewNode(kind)
	n.ID = id
	n.Pos.X = r.Float32()
	n.Pos.Y = r.Float32()
	graph.ReadPayload(n, r)
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return n, nil
}

// writeConnections serializes the slot tables of n. Each slot records the
// neighbor id and the reciprocal pin on the neighbor, or -1 twice when
// empty.
func writeConnections(w *blob.Writer, n *graph.Node) {
	w.WriteInt32(int32(len(n.In)))
	for _, in := range n.In {
		if in == nil {
			w.WriteInt32(-1)
			w.WriteInt32(-1)
			continue
		}
		w.WriteInt32(int32(in.ID))
		w.WriteInt32(int32(in.OutputPinOf(n)))
	}

	w.WriteInt32(int32(len(n.Out)))
	for _, out := range n.Out {
		if out == nil {
			w.WriteInt32(-1)
			w.WriteInt32(-1)
			continue
		}
		w.WriteInt32(int32(out.ID))
		w.WriteInt32(int32(out.InputPinOf(n)))
	}
}

// readConnections restores the slot tables of n, resolving neighbor ids
// through find. Ids that no longer resolve leave their slot empty, so a
// document saved with dangling references loads with those links dropped
// rather than failing.
func readConnections(r *blob.Reader, n *graph.Node, find func(id int) *graph.Node) error {
	inCount := int(r.Int32())
	if err := r.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if inCount != len(n.In) {
		return fmt.Errorf("%w: input count %d for %s node", ErrCorrupt, inCount, n.Kind)
	}
	for i := range n.In {
		id := int(r.Int32())
		pin := int(r.Int32())
		if id < 0 {
			continue
		}
		src := find(id)
		if src == nil || pin < 0 || pin >= len(src.Out) {
			continue
		}
		n.In[i] = src
		src.Out[pin] = n
	}

	outCount := int(r.Int32())
	if err := r.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if outCount != len(n.Out) {
		return fmt.Errorf("%w: output count %d for %s node", ErrCorrupt, outCount, n.Kind)
	}
	for i := range n.Out {
		id := int(r.Int32())
		pin := int(r.Int32())
		if id < 0 {
			continue
		}
		dst := find(id)
		if dst == nil || pin < 0 || pin >= len(dst.In) {
			continue
		}
		n.Out[i] = dst
		dst.In[pin] = n
	}
	if err := r.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return nil
}
