// Package gl is a typed catalog of OpenGL enum groups.
//
// Every registry group is an integer-backed type whose members are typed
// constants prefixed with the group name:
//
//	gl.AlphaFunctionAlways            // GL_ALWAYS
//	gl.BufferTargetArbArrayBuffer     // GL_ARRAY_BUFFER
//	gl.ClearBufferMaskColorBufferBit | gl.ClearBufferMaskDepthBufferBit
//
// The same token may belong to several groups; all of them carry the value
// from the registry. Flags groups combine with | and report their members
// through Has and String.
//
// Each token also records the core versions and extensions that define it,
// queried with Requirements and Available. The catalog itself is plain data;
// it doesn't load or call any GL function.
package gl

//go:generate go run github.com/gopherjs/glenum generate --registry ../registry/testdata/gl.xml --out . --package gl --api gl --ungrouped
