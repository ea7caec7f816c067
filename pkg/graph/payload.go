package graph

import (
	"github.com/matzehuels/shadergraph/pkg/blob"
	"github.com/matzehuels/shadergraph/pkg/shader"
)

// WritePayload appends the kind-specific payload of n to w. Kinds without
// payload write nothing. The layout must stay in sync with ReadPayload.
func WritePayload(n *Node, w *blob.Writer) {
	switch n.Kind {
	case KindFloatConst:
		w.WriteFloat32(n.Value)
	case KindColorConst:
		for _, c := range n.Color {
			w.WriteFloat32(c)
		}
	case KindSample:
		w.WriteInt32(int32(n.Texture))
	case KindVertexInput:
		w.WriteInt32(int32(n.Input))
	case KindFragmentInput, KindVertexOutput:
		w.WriteInt32(int32(n.OutputIndex))
	case KindUniform:
		w.WriteString(n.UniformName)
		w.WriteInt32(int32(n.UniformType))
	case KindBuiltinUniform:
		w.WriteInt32(int32(n.Builtin))
	}
}

// ReadPayload restores the kind-specific payload of n from r. Decode errors
// are left on r for the caller to check.
func ReadPayload(n *Node, r *blob.Reader) {
	switch n.Kind {
	case KindFloatConst:
		n.Value = r.Float32()
	case KindColorConst:
		for i := range n.Color {
			n.Color[i] = r.Float32()
		}
	case KindSample:
		n.Texture = int(r.Int32())
	case KindVertexInput:
		n.Input = shader.VertexInput(r.Int32())
	case KindFragmentInput, KindVertexOutput:
		n.OutputIndex = int(r.Int32())
	case KindUniform:
		n.UniformName = r.String()
		n.UniformType = shader.ValueType(r.Int32())
	case KindBuiltinUniform:
		n.Builtin = shader.BuiltinUniform(r.Int32())
	}
}
