package graph

// Stage identifies one of the two shader programs a graph compiles to.
type Stage int32

const (
	StageVertex Stage = iota
	StageFragment

	// StageCount is the number of shader stages.
	StageCount = int(iota)
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	}
	return "unknown"
}

// Valid reports whether s is a known stage.
func (s Stage) Valid() bool { return s >= 0 && int(s) < StageCount }

// NodeKind enumerates the closed node vocabulary. Each kind fixes its pin
// arity and the stages it is legal in; kind-specific payload lives in the
// corresponding [Node] fields.
type NodeKind int32

const (
	KindVertexInput NodeKind = iota
	KindVertexOutput
	KindPositionOutput
	KindFragmentInput
	KindFragmentOutput
	KindFloatConst
	KindColorConst
	KindSample
	KindMix
	KindUniform
	KindVec4Merge
	KindMultiply
	KindBuiltinUniform

	kindCount
)

// kindSpec fixes the static properties of a node kind.
type kindSpec struct {
	name     string
	inputs   int
	outputs  int
	vertex   bool
	fragment bool
	terminal bool
}

var kindSpecs = [kindCount]kindSpec{
	KindVertexInput:    {name: "Input", outputs: 1, vertex: true},
	KindVertexOutput:   {name: "Output", inputs: 1, vertex: true, terminal: true},
	KindPositionOutput: {name: "Position output", inputs: 1, vertex: true, terminal: true},
	KindFragmentInput:  {name: "Input", outputs: 1, fragment: true},
	KindFragmentOutput: {name: "Output", inputs: 1, fragment: true, terminal: true},
	KindFloatConst:     {name: "Float const", outputs: 1, vertex: true, fragment: true},
	KindColorConst:     {name: "Color constant", outputs: 1, vertex: true, fragment: true},
	KindSample:         {name: "Sample", inputs: 1, outputs: 1, vertex: true, fragment: true},
	KindMix:            {name: "Mix", inputs: 3, outputs: 1, vertex: true, fragment: true},
	KindUniform:        {name: "Uniform", outputs: 1, vertex: true, fragment: true},
	KindVec4Merge:      {name: "Vec4 merge", inputs: 5, outputs: 1, vertex: true, fragment: true},
	KindMultiply:       {name: "Multiply", inputs: 2, outputs: 1, vertex: true, fragment: true},
	KindBuiltinUniform: {name: "Builtin uniforms", outputs: 1, vertex: true, fragment: true},
}

// Valid reports whether k is a known node kind.
func (k NodeKind) Valid() bool { return k >= 0 && k < kindCount }

// String returns the display name of the kind.
func (k NodeKind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindSpecs[k].name
}

// Inputs returns the fixed number of input pins.
func (k NodeKind) Inputs() int { return kindSpecs[k].inputs }

// Outputs returns the fixed number of output pins.
func (k NodeKind) Outputs() int { return kindSpecs[k].outputs }

// LegalIn reports whether nodes of this kind may exist in the given stage.
func (k NodeKind) LegalIn(s Stage) bool {
	switch s {
	case StageVertex:
		return kindSpecs[k].vertex
	case StageFragment:
		return kindSpecs[k].fragment
	}
	return false
}

// Terminal reports whether the kind is a sink the code generator emits from.
func (k NodeKind) Terminal() bool { return kindSpecs[k].terminal }

// Kinds returns every node kind legal in the given stage, in declaration
// order. The GUI collaborator uses this to populate its add-node menu.
func Kinds(s Stage) []NodeKind {
	var out []NodeKind
	for k := NodeKind(0); k < kindCount; k++ {
		if k.LegalIn(s) {
			out = append(out, k)
		}
	}
	return out
}
