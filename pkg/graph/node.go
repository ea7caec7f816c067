package graph

import (
	"fmt"

	"github.com/soypat/geometry/ms2"

	"github.com/matzehuels/shadergraph/pkg/shader"
)

// Node is a single typed unit in a stage graph. Its identity is the integer
// ID, assigned monotonically by the owning editor session and stable across
// save/load and undo/redo. Slots hold non-owning references to neighbors.
//
// Exactly one payload field group is meaningful per kind; the rest stay at
// their zero values and are not persisted.
type Node struct {
	ID   int
	Kind NodeKind
	Pos  ms2.Vec

	// In and Out hold one slot per pin, sized by the kind's fixed arity.
	In  []*Node
	Out []*Node

	// Kind-specific payload.
	Value       float32              // KindFloatConst
	Color       [4]float32           // KindColorConst
	Texture     int                  // KindSample: texture slot index
	UniformName string               // KindUniform
	UniformType shader.ValueType     // KindUniform
	Input       shader.VertexInput   // KindVertexInput: attribute selector
	OutputIndex int                  // KindVertexOutput / KindFragmentInput: varying slot
	Builtin     shader.BuiltinUniform // KindBuiltinUniform
}

// NewNode creates a node of the given kind with empty slots and the kind's
// default payload. ID and position are assigned by the caller.
func NewNode(kind NodeKind) *Node {
	if !kind.Valid() {
		panic(fmt.Sprintf("graph: invalid node kind %d", int32(kind)))
	}
	n := &Node{
		Kind: kind,
		In:   make([]*Node, kind.Inputs()),
		Out:  make([]*Node, kind.Outputs()),
	}
	if kind == KindUniform {
		n.UniformType = shader.TypeVec4
	}
	return n
}

// inputPinOf returns the index of the input slot of n referencing neighbor,
// or -1. The linear scan is the reciprocal-pin lookup described in the
// package documentation.
func (n *Node) inputPinOf(neighbor *Node) int {
	for i, in := range n.In {
		if in == neighbor {
			return i
		}
	}
	return -1
}

// outputPinOf returns the index of the output slot of n referencing neighbor,
// or -1.
func (n *Node) outputPinOf(neighbor *Node) int {
	for i, out := range n.Out {
		if out == neighbor {
			return i
		}
	}
	return -1
}

// InputPinOf and OutputPinOf expose the reciprocal-pin scans for the
// serializer and the GUI collaborator.
func (n *Node) InputPinOf(neighbor *Node) int  { return n.inputPinOf(neighbor) }
func (n *Node) OutputPinOf(neighbor *Node) int { return n.outputPinOf(neighbor) }

func (n *Node) checkInputPin(pin int) {
	if pin < 0 || pin >= len(n.In) {
		panic(fmt.Sprintf("graph: input pin %d out of range for %s node %d", pin, n.Kind, n.ID))
	}
}

func (n *Node) checkOutputPin(pin int) {
	if pin < 0 || pin >= len(n.Out) {
		panic(fmt.Sprintf("graph: output pin %d out of range for %s node %d", pin, n.Kind, n.ID))
	}
}

// InputType returns the inferred type arriving at input pin. It is TypeNone
// when the slot is unconnected.
func (n *Node) InputType(pin int) shader.ValueType {
	n.checkInputPin(pin)
	src := n.In[pin]
	if src == nil {
		return shader.TypeNone
	}
	return src.OutputType(src.outputPinOf(n))
}

// OutputType returns the type produced on output pin. It is a pure function
// of the node's payload and, for pass-through kinds, of the connected inputs'
// inferred types. Kinds with no intrinsic type return TypeNone while their
// deciding input is unconnected.
func (n *Node) OutputType(pin int) shader.ValueType {
	n.checkOutputPin(pin)
	switch n.Kind {
	case KindVertexInput:
		return n.Input.Type()
	case KindFragmentInput:
		// Varyings are declared by name only; vec4 is the carrier type.
		return shader.TypeVec4
	case KindFloatConst:
		return shader.TypeFloat
	case KindColorConst:
		return shader.TypeVec4
	case KindSample:
		return shader.TypeVec4
	case KindMix:
		return n.InputType(1)
	case KindUniform:
		return n.UniformType
	case KindVec4Merge:
		return shader.TypeVec4
	case KindMultiply:
		if n.In[1] == nil {
			return shader.TypeNone
		}
		return n.InputType(1)
	case KindBuiltinUniform:
		return n.Builtin.Type()
	case KindVertexOutput, KindPositionOutput, KindFragmentOutput:
		// Terminal kinds have no output pins; checkOutputPin already fired.
	}
	return shader.TypeNone
}
