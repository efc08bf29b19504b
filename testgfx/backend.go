// Package testgfx provides a recording stand-in for a GL context so code
// built on graphics.Backend can be tested without a window or driver.
package testgfx

import (
	"fmt"
	"unsafe"

	"github.com/eliseydudin/graphics/internal/glenum"
)

// Call is one recorded backend invocation.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// Kinds of objects tracked by Live.
const (
	Buffer      = "buffer"
	VertexArray = "vertex array"
	Shader      = "shader"
	Program     = "program"
	Texture     = "texture"
)

// Shader stages accepted as CompileLog keys.
const (
	VertexStage   uint32 = glenum.VertexShader
	FragmentStage uint32 = glenum.FragmentShader
)

// Backend records every call. Object names start at 1 and are never reused.
//
// Attributes and Uniforms give the active locations every linked program
// reports; names not present resolve to -1.
type Backend struct {
	Attributes map[string]int32
	Uniforms   map[string]int32

	// CompileLog makes compilation of the given stage (VertexStage or
	// FragmentStage) fail with that info log.
	CompileLog map[uint32]string
	// LinkLog, when non-empty, makes every link fail with that info log.
	LinkLog string
	// Errors is drained by GetError.
	Errors []uint32

	Calls []Call
	// Uploads holds a copy of the bytes passed to each BufferData call.
	Uploads [][]byte

	next    uint32
	live    map[uint32]string
	shaders map[uint32]uint32
}

func New() *Backend {
	return &Backend{
		Attributes: map[string]int32{},
		Uniforms:   map[string]int32{},
		CompileLog: map[uint32]string{},
		live:       map[uint32]string{},
		shaders:    map[uint32]uint32{},
	}
}

func (b *Backend) record(name string, args ...any) {
	b.Calls = append(b.Calls, Call{Name: name, Args: args})
}

func (b *Backend) create(kind string) uint32 {
	b.next++
	b.live[b.next] = kind
	return b.next
}

func (b *Backend) release(kind string, name uint32) {
	if b.live[name] == kind {
		delete(b.live, name)
	}
}

// Live counts objects of kind that were created and not yet deleted.
func (b *Backend) Live(kind string) int {
	n := 0
	for _, k := range b.live {
		if k == kind {
			n++
		}
	}
	return n
}

// Named returns the recorded calls with the given names, in order.
func (b *Backend) Named(names ...string) []Call {
	var out []Call
	for _, c := range b.Calls {
		for _, n := range names {
			if c.Name == n {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// Reset forgets recorded calls and uploads but keeps live objects.
func (b *Backend) Reset() {
	b.Calls = nil
	b.Uploads = nil
}

func (b *Backend) CreateBuffer() uint32 {
	n := b.create(Buffer)
	b.record("CreateBuffer", n)
	return n
}

func (b *Backend) DeleteBuffer(buffer uint32) {
	b.release(Buffer, buffer)
	b.record("DeleteBuffer", buffer)
}

func (b *Backend) BindBuffer(target, buffer uint32) {
	b.record("BindBuffer", target, buffer)
}

func (b *Backend) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	var cp []byte
	if data != nil && size > 0 {
		cp = append(cp, unsafe.Slice((*byte)(data), size)...)
	}
	b.Uploads = append(b.Uploads, cp)
	b.record("BufferData", target, size, usage)
}

func (b *Backend) CreateVertexArray() uint32 {
	n := b.create(VertexArray)
	b.record("CreateVertexArray", n)
	return n
}

func (b *Backend) DeleteVertexArray(array uint32) {
	b.release(VertexArray, array)
	b.record("DeleteVertexArray", array)
}

func (b *Backend) BindVertexArray(array uint32) {
	b.record("BindVertexArray", array)
}

func (b *Backend) EnableVertexAttribArray(index uint32) {
	b.record("EnableVertexAttribArray", index)
}

func (b *Backend) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	b.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
}

func (b *Backend) CreateShader(xtype uint32) uint32 {
	n := b.create(Shader)
	b.shaders[n] = xtype
	b.record("CreateShader", xtype)
	return n
}

func (b *Backend) ShaderSource(shader uint32, source string) {
	b.record("ShaderSource", shader)
}

func (b *Backend) CompileShader(shader uint32) {
	b.record("CompileShader", shader)
}

func (b *Backend) GetShaderiv(shader uint32, pname uint32) int32 {
	switch pname {
	case glenum.CompileStatus:
		if _, fail := b.CompileLog[b.shaders[shader]]; fail {
			return glenum.False
		}
		return glenum.True
	case glenum.InfoLogLength:
		return int32(len(b.CompileLog[b.shaders[shader]]))
	}
	return 0
}

func (b *Backend) GetShaderInfoLog(shader uint32) string {
	return b.CompileLog[b.shaders[shader]]
}

func (b *Backend) DeleteShader(shader uint32) {
	b.release(Shader, shader)
	b.record("DeleteShader", shader)
}

func (b *Backend) CreateProgram() uint32 {
	n := b.create(Program)
	b.record("CreateProgram", n)
	return n
}

func (b *Backend) AttachShader(program, shader uint32) {
	b.record("AttachShader", program, shader)
}

func (b *Backend) DetachShader(program, shader uint32) {
	b.record("DetachShader", program, shader)
}

func (b *Backend) LinkProgram(program uint32) {
	b.record("LinkProgram", program)
}

func (b *Backend) GetProgramiv(program uint32, pname uint32) int32 {
	switch pname {
	case glenum.LinkStatus:
		if b.LinkLog != "" {
			return glenum.False
		}
		return glenum.True
	case glenum.InfoLogLength:
		return int32(len(b.LinkLog))
	}
	return 0
}

func (b *Backend) GetProgramInfoLog(program uint32) string {
	return b.LinkLog
}

func (b *Backend) UseProgram(program uint32) {
	b.record("UseProgram", program)
}

func (b *Backend) DeleteProgram(program uint32) {
	b.release(Program, program)
	b.record("DeleteProgram", program)
}

func (b *Backend) GetAttribLocation(program uint32, name string) int32 {
	b.record("GetAttribLocation", program, name)
	if loc, ok := b.Attributes[name]; ok {
		return loc
	}
	return -1
}

func (b *Backend) GetUniformLocation(program uint32, name string) int32 {
	b.record("GetUniformLocation", program, name)
	if loc, ok := b.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (b *Backend) Uniform1i(location int32, v0 int32) {
	b.record("Uniform1i", location, v0)
}

func (b *Backend) Uniform1ui(location int32, v0 uint32) {
	b.record("Uniform1ui", location, v0)
}

func (b *Backend) Uniform1f(location int32, v0 float32) {
	b.record("Uniform1f", location, v0)
}

func (b *Backend) Uniform2f(location int32, v0, v1 float32) {
	b.record("Uniform2f", location, v0, v1)
}

func (b *Backend) Uniform3f(location int32, v0, v1, v2 float32) {
	b.record("Uniform3f", location, v0, v1, v2)
}

func (b *Backend) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	b.record("Uniform4f", location, v0, v1, v2, v3)
}

func (b *Backend) UniformMatrix3fv(location int32, count int32, transpose bool, value *float32) {
	m := *(*[9]float32)(unsafe.Pointer(value))
	b.record("UniformMatrix3fv", location, count, transpose, m)
}

func (b *Backend) UniformMatrix4fv(location int32, count int32, transpose bool, value *float32) {
	m := *(*[16]float32)(unsafe.Pointer(value))
	b.record("UniformMatrix4fv", location, count, transpose, m)
}

func (b *Backend) CreateTexture() uint32 {
	n := b.create(Texture)
	b.record("CreateTexture", n)
	return n
}

func (b *Backend) DeleteTexture(texture uint32) {
	b.release(Texture, texture)
	b.record("DeleteTexture", texture)
}

func (b *Backend) ActiveTexture(texture uint32) {
	b.record("ActiveTexture", texture)
}

func (b *Backend) BindTexture(target, texture uint32) {
	b.record("BindTexture", target, texture)
}

func (b *Backend) TexImage2D(target uint32, level, internalformat, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
	b.record("TexImage2D", target, level, internalformat, width, height, format, xtype)
}

func (b *Backend) TexParameteri(target, pname uint32, param int32) {
	b.record("TexParameteri", target, pname, param)
}

func (b *Backend) PixelStorei(pname uint32, param int32) {
	b.record("PixelStorei", pname, param)
}

func (b *Backend) GenerateMipmap(target uint32) {
	b.record("GenerateMipmap", target)
}

func (b *Backend) ClearColor(r, g, bl, a float32) {
	b.record("ClearColor", r, g, bl, a)
}

func (b *Backend) Clear(mask uint32) {
	b.record("Clear", mask)
}

func (b *Backend) Viewport(x, y, width, height int32) {
	b.record("Viewport", x, y, width, height)
}

func (b *Backend) Enable(capability uint32) {
	b.record("Enable", capability)
}

func (b *Backend) Disable(capability uint32) {
	b.record("Disable", capability)
}

func (b *Backend) DepthFunc(fn uint32) {
	b.record("DepthFunc", fn)
}

func (b *Backend) DrawArrays(mode uint32, first, count int32) {
	b.record("DrawArrays", mode, first, count)
}

func (b *Backend) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	b.record("DrawElements", mode, count, xtype, offset)
}

func (b *Backend) GetError() uint32 {
	if len(b.Errors) == 0 {
		return glenum.NoError
	}
	code := b.Errors[0]
	b.Errors = b.Errors[1:]
	return code
}
