// Package shader defines the value-type model and the shader program
// descriptor shared by the graph, the code generator, and the serializer.
//
// The package is pure data: enumerations for shading-language value types,
// the fixed vertex-input attribute table, the builtin uniform table, and the
// per-program [Desc] holding texture slot names, vertex output names, and the
// set of active vertex inputs.
package shader

// ValueType enumerates the shading-language value types a pin can carry.
type ValueType int32

const (
	// TypeNone marks an unconnected input with no intrinsic type.
	TypeNone ValueType = iota
	TypeFloat
	TypeVec2
	TypeVec3
	TypeVec4
	TypeMat3
	TypeMat4

	typeCount
)

// Valid reports whether t is a known value type.
func (t ValueType) Valid() bool { return t >= TypeNone && t < typeCount }

// GLSLName returns the shading-language token for t.
// TypeNone maps to "float" so that generated source stays syntactically
// valid even when type inference came up empty.
func (t ValueType) GLSLName() string {
	switch t {
	case TypeFloat, TypeNone:
		return "float"
	case TypeVec2:
		return "vec2"
	case TypeVec3:
		return "vec3"
	case TypeVec4:
		return "vec4"
	case TypeMat3:
		return "mat3"
	case TypeMat4:
		return "mat4"
	}
	return "float"
}

// IsMatrix reports whether t is a matrix type. Matrix-valued left operands
// of a multiply are emitted as a mul() call rather than infix *.
func (t ValueType) IsMatrix() bool { return t == TypeMat3 || t == TypeMat4 }

func (t ValueType) String() string {
	if t == TypeNone {
		return "none"
	}
	return t.GLSLName()
}

// VertexInput selects one of the standard vertex attributes.
type VertexInput int32

const (
	InputPosition VertexInput = iota
	InputNormal
	InputColor
	InputTangent
	InputTexcoord0
	InputInstanceData0
	InputInstanceData1
	InputInstanceData2
	InputInstanceData3

	// VertexInputCount is the size of the standard attribute table.
	VertexInputCount = int(iota)
)

// vertexInputSpec describes one entry of the standard attribute table.
type vertexInputSpec struct {
	guiName    string
	systemName string
	typ        ValueType
}

var vertexInputs = [VertexInputCount]vertexInputSpec{
	InputPosition:      {"Position", "a_position", TypeVec4},
	InputNormal:        {"Normal", "a_normal", TypeVec3},
	InputColor:         {"Color", "a_color", TypeVec4},
	InputTangent:       {"Tangent", "a_tangent", TypeVec3},
	InputTexcoord0:     {"Texture coord 0", "a_texcoord0", TypeVec4},
	InputInstanceData0: {"Instance data 0", "i_data0", TypeVec4},
	InputInstanceData1: {"Instance data 1", "i_data1", TypeVec4},
	InputInstanceData2: {"Instance data 2", "i_data2", TypeVec4},
	InputInstanceData3: {"Instance data 3", "i_data3", TypeVec4},
}

// Valid reports whether v indexes the standard attribute table.
func (v VertexInput) Valid() bool { return v >= 0 && int(v) < VertexInputCount }

// SystemName returns the attribute name used in generated source,
// e.g. "a_position".
func (v VertexInput) SystemName() string { return vertexInputs[v].systemName }

// GUIName returns the human-readable attribute name, e.g. "Position".
func (v VertexInput) GUIName() string { return vertexInputs[v].guiName }

// Type returns the value type the attribute carries.
func (v VertexInput) Type() ValueType { return vertexInputs[v].typ }

// VertexInputByName resolves a system or GUI attribute name.
// It reports false when no table entry matches.
func VertexInputByName(name string) (VertexInput, bool) {
	for i, spec := range vertexInputs {
		if spec.systemName == name || spec.guiName == name {
			return VertexInput(i), true
		}
	}
	return 0, false
}

// BuiltinUniform selects one of the engine-provided uniforms.
type BuiltinUniform int32

const (
	BuiltinModelMatrix BuiltinUniform = iota
	BuiltinViewProjectionMatrix

	// BuiltinUniformCount is the size of the builtin uniform table.
	BuiltinUniformCount = int(iota)
)

type builtinUniformSpec struct {
	name string
	typ  ValueType
}

var builtinUniforms = [BuiltinUniformCount]builtinUniformSpec{
	BuiltinModelMatrix:          {"u_model[0]", TypeMat4},
	BuiltinViewProjectionMatrix: {"u_viewProj", TypeMat4},
}

// Valid reports whether b indexes the builtin uniform table.
func (b BuiltinUniform) Valid() bool { return b >= 0 && int(b) < BuiltinUniformCount }

// Name returns the uniform name used in generated source, e.g. "u_viewProj".
func (b BuiltinUniform) Name() string { return builtinUniforms[b].name }

// Type returns the value type of the builtin uniform.
func (b BuiltinUniform) Type() ValueType { return builtinUniforms[b].typ }
