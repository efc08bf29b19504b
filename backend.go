package graphics

import "unsafe"

// Backend describes the subset of OpenGL entry points used by this package.
//
// Enum arguments are raw GL values; the package maps its own closed enums to
// them before calling in. All methods are expected to operate on the GL
// context current for the calling thread.
type Backend interface {
	// Buffers
	CreateBuffer() uint32
	DeleteBuffer(buffer uint32)
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, size int, data unsafe.Pointer, usage uint32)

	// Vertex arrays
	CreateVertexArray() uint32
	DeleteVertexArray(array uint32)
	BindVertexArray(array uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)

	// Shaders
	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	// Programs
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// GetAttribLocation returns -1 when name is not an active input.
	GetAttribLocation(program uint32, name string) int32
	// GetUniformLocation returns -1 when name is not an active uniform.
	GetUniformLocation(program uint32, name string) int32

	// Uniforms
	Uniform1i(location int32, v0 int32)
	Uniform1ui(location int32, v0 uint32)
	Uniform1f(location int32, v0 float32)
	Uniform2f(location int32, v0, v1 float32)
	Uniform3f(location int32, v0, v1, v2 float32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)
	UniformMatrix3fv(location int32, count int32, transpose bool, value *float32)
	UniformMatrix4fv(location int32, count int32, transpose bool, value *float32)

	// Textures
	CreateTexture() uint32
	DeleteTexture(texture uint32)
	ActiveTexture(texture uint32)
	BindTexture(target, texture uint32)
	TexImage2D(target uint32, level, internalformat, width, height int32, format, xtype uint32, pixels unsafe.Pointer)
	TexParameteri(target, pname uint32, param int32)
	PixelStorei(pname uint32, param int32)
	GenerateMipmap(target uint32)

	// Frame state and drawing
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Viewport(x, y, width, height int32)
	Enable(capability uint32)
	Disable(capability uint32)
	DepthFunc(fn uint32)
	DrawArrays(mode uint32, first, count int32)
	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)
	GetError() uint32
}
