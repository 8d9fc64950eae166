package catalog

import "testing"

func TestGoName(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{token: "GL_COLOR_BUFFER_BIT", want: "ColorBufferBit"},
		{token: "GL_TEXTURE_2D", want: "Texture2D"},
		{token: "GL_TEXTURE_2D_ARRAY", want: "Texture2DArray"},
		{token: "GL_TEXTURE_2D_MULTISAMPLE_ARRAY", want: "Texture2DMultisampleArray"},
		{token: "GL_2_BYTES", want: "N2Bytes"},
		{token: "GL_3D_COLOR_TEXTURE", want: "N3DColorTexture"},
		{token: "GL_ARRAY_BUFFER_ARB", want: "ArrayBufferArb"},
		{token: "GL_SRC1_ALPHA", want: "Src1Alpha"},
		{token: "GL_RGBA", want: "Rgba"},
		{token: "GL_", want: "N"},
	}
	for _, test := range tests {
		t.Run(test.token, func(t *testing.T) {
			if got := GoName(test.token); got != test.want {
				t.Errorf("Got: GoName(%q) = %q. Want: %q.", test.token, got, test.want)
			}
		})
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		group string
		want  string
	}{
		{group: "BlendingFactor", want: "BlendingFactor"},
		{group: "BufferTargetARB", want: "BufferTargetArb"},
		{group: "BufferUsageARB", want: "BufferUsageArb"},
		{group: "PathFontStyleNV", want: "PathFontStyleNv"},
		{group: "FragmentShaderDestMaskATI", want: "FragmentShaderDestMaskAti"},
		{group: "AtomicCounterBufferPName", want: "AtomicCounterBufferPName"},
		{group: "ARB", want: "ARB"},
		{group: "stencilOp", want: "StencilOp"},
	}
	for _, test := range tests {
		t.Run(test.group, func(t *testing.T) {
			if got := TypeName(test.group); got != test.want {
				t.Errorf("Got: TypeName(%q) = %q. Want: %q.", test.group, got, test.want)
			}
		})
	}
}
