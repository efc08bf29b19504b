// Package gl41 implements graphics.Backend on the OpenGL 4.1 core profile
// bindings from go-gl.
package gl41

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/eliseydudin/graphics"
)

var _ graphics.Backend = (*Backend)(nil)

// Backend forwards every call to the GL context current on the calling
// thread.
type Backend struct{}

// New loads GL entry points through the platform default loader.
func New() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	return &Backend{}, nil
}

// NewWithLoader loads GL entry points through getProcAddr, e.g.
// glfw.GetProcAddress.
func NewWithLoader(getProcAddr func(name string) unsafe.Pointer) (*Backend, error) {
	if err := gl.InitWithProcAddrFunc(getProcAddr); err != nil {
		return nil, err
	}
	return &Backend{}, nil
}

// Version returns the GL version string of the current context.
func (*Backend) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (*Backend) CreateBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}

func (*Backend) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (*Backend) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (*Backend) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	gl.BufferData(target, size, data, usage)
}

func (*Backend) CreateVertexArray() uint32 {
	var a uint32
	gl.GenVertexArrays(1, &a)
	return a
}

func (*Backend) DeleteVertexArray(array uint32) { gl.DeleteVertexArrays(1, &array) }

func (*Backend) BindVertexArray(array uint32) { gl.BindVertexArray(array) }

func (*Backend) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (*Backend) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (*Backend) CreateShader(xtype uint32) uint32 { return gl.CreateShader(xtype) }

func (*Backend) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (*Backend) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (*Backend) GetShaderiv(shader uint32, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (b *Backend) GetShaderInfoLog(shader uint32) string {
	n := b.GetShaderiv(shader, gl.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(shader, n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*Backend) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (*Backend) CreateProgram() uint32 { return gl.CreateProgram() }

func (*Backend) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (*Backend) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }

func (*Backend) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (*Backend) GetProgramiv(program uint32, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (b *Backend) GetProgramInfoLog(program uint32) string {
	n := b.GetProgramiv(program, gl.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(program, n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*Backend) UseProgram(program uint32) { gl.UseProgram(program) }

func (*Backend) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (*Backend) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (*Backend) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (*Backend) Uniform1i(location int32, v0 int32) { gl.Uniform1i(location, v0) }

func (*Backend) Uniform1ui(location int32, v0 uint32) { gl.Uniform1ui(location, v0) }

func (*Backend) Uniform1f(location int32, v0 float32) { gl.Uniform1f(location, v0) }

func (*Backend) Uniform2f(location int32, v0, v1 float32) { gl.Uniform2f(location, v0, v1) }

func (*Backend) Uniform3f(location int32, v0, v1, v2 float32) {
	gl.Uniform3f(location, v0, v1, v2)
}

func (*Backend) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

func (*Backend) UniformMatrix3fv(location int32, count int32, transpose bool, value *float32) {
	gl.UniformMatrix3fv(location, count, transpose, value)
}

func (*Backend) UniformMatrix4fv(location int32, count int32, transpose bool, value *float32) {
	gl.UniformMatrix4fv(location, count, transpose, value)
}

func (*Backend) CreateTexture() uint32 {
	var t uint32
	gl.GenTextures(1, &t)
	return t
}

func (*Backend) DeleteTexture(texture uint32) { gl.DeleteTextures(1, &texture) }

func (*Backend) ActiveTexture(texture uint32) { gl.ActiveTexture(texture) }

func (*Backend) BindTexture(target, texture uint32) { gl.BindTexture(target, texture) }

func (*Backend) TexImage2D(target uint32, level, internalformat, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
	gl.TexImage2D(target, level, internalformat, width, height, 0, format, xtype, pixels)
}

func (*Backend) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (*Backend) PixelStorei(pname uint32, param int32) { gl.PixelStorei(pname, param) }

func (*Backend) GenerateMipmap(target uint32) { gl.GenerateMipmap(target) }

func (*Backend) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (*Backend) Clear(mask uint32) { gl.Clear(mask) }

func (*Backend) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (*Backend) Enable(capability uint32) { gl.Enable(capability) }

func (*Backend) Disable(capability uint32) { gl.Disable(capability) }

func (*Backend) DepthFunc(fn uint32) { gl.DepthFunc(fn) }

func (*Backend) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }

func (*Backend) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.DrawElementsWithOffset(mode, count, xtype, offset)
}

func (*Backend) GetError() uint32 { return gl.GetError() }
