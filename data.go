package graphics

import (
	"runtime"
	"unsafe"

	"github.com/eliseydudin/graphics/internal/glenum"
)

type Usage uint8

const (
	StreamDraw Usage = iota
	StreamRead
	StreamCopy
	StaticDraw
	StaticRead
	StaticCopy
	DynamicDraw
	DynamicRead
	DynamicCopy
	numUsages
)

var usages = [numUsages]uint32{
	StreamDraw:  glenum.StreamDraw,
	StreamRead:  glenum.StreamRead,
	StreamCopy:  glenum.StreamCopy,
	StaticDraw:  glenum.StaticDraw,
	StaticRead:  glenum.StaticRead,
	StaticCopy:  glenum.StaticCopy,
	DynamicDraw: glenum.DynamicDraw,
	DynamicRead: glenum.DynamicRead,
	DynamicCopy: glenum.DynamicCopy,
}

func (u Usage) gl() uint32 {
	if u >= numUsages {
		return glenum.StaticDraw
	}
	return usages[u]
}

// Target is a buffer binding point.
type Target uint8

const (
	ArrayBuffer Target = iota
	AtomicCounterBuffer
	CopyReadBuffer
	CopyWriteBuffer
	DispatchIndirectBuffer
	DrawIndirectBuffer
	ElementArrayBuffer
	PixelPackBuffer
	PixelUnpackBuffer
	QueryBuffer
	ShaderStorageBuffer
	TextureBuffer
	TransformFeedbackBuffer
	UniformBuffer
	numTargets
)

var targets = [numTargets]uint32{
	ArrayBuffer:             glenum.ArrayBuffer,
	AtomicCounterBuffer:     glenum.AtomicCounterBuffer,
	CopyReadBuffer:          glenum.CopyReadBuffer,
	CopyWriteBuffer:         glenum.CopyWriteBuffer,
	DispatchIndirectBuffer:  glenum.DispatchIndirectBuffer,
	DrawIndirectBuffer:      glenum.DrawIndirectBuffer,
	ElementArrayBuffer:      glenum.ElementArrayBuffer,
	PixelPackBuffer:         glenum.PixelPackBuffer,
	PixelUnpackBuffer:       glenum.PixelUnpackBuffer,
	QueryBuffer:             glenum.QueryBuffer,
	ShaderStorageBuffer:     glenum.ShaderStorageBuffer,
	TextureBuffer:           glenum.TextureBuffer,
	TransformFeedbackBuffer: glenum.TransformFeedbackBuffer,
	UniformBuffer:           glenum.UniformBuffer,
}

func (t Target) gl() uint32 {
	if t >= numTargets {
		return glenum.ArrayBuffer
	}
	return targets[t]
}

// VertexArray owns a vertex array object.
type VertexArray struct {
	ctx     *Context
	name    uint32
	cleanup runtime.Cleanup
}

func (c *Context) NewVertexArray() *VertexArray {
	va := &VertexArray{ctx: c, name: c.gl.CreateVertexArray()}
	va.cleanup = track(c, va, kindVertexArray, va.name)
	return va
}

func (va *VertexArray) Bind() {
	va.ctx.gl.BindVertexArray(va.name)
}

func (va *VertexArray) Delete() {
	if va.name == 0 {
		return
	}
	va.cleanup.Stop()
	va.ctx.gl.DeleteVertexArray(va.name)
	va.name = 0
}

// Buffer owns a buffer object bound to a default target.
type Buffer struct {
	ctx     *Context
	name    uint32
	target  Target
	size    int
	cleanup runtime.Cleanup
}

func (c *Context) newBuffer(vao *VertexArray, target Target) *Buffer {
	// buffers belong to the vao that is bound when they are first bound.
	vao.Bind()
	b := &Buffer{ctx: c, name: c.gl.CreateBuffer(), target: target}
	b.cleanup = track(c, b, kindBuffer, b.name)
	return b
}

func (b *Buffer) Bind() {
	b.ctx.gl.BindBuffer(b.target.gl(), b.name)
}

// Size returns the byte size of the last upload.
func (b *Buffer) Size() int {
	return b.size
}

// SetData uploads src to the buffer's own target.
func (b *Buffer) SetData(src []byte, usage Usage) {
	b.SetDataTarget(src, b.target, usage)
}

// SetDataTarget binds the buffer to target and uploads src there.
func (b *Buffer) SetDataTarget(src []byte, target Target, usage Usage) {
	var ptr unsafe.Pointer
	if len(src) > 0 {
		ptr = unsafe.Pointer(&src[0])
	}
	b.ctx.gl.BindBuffer(target.gl(), b.name)
	b.ctx.gl.BufferData(target.gl(), len(src), ptr, usage.gl())
	b.size = len(src)
}

func (b *Buffer) Delete() {
	if b.name == 0 {
		return
	}
	b.cleanup.Stop()
	b.ctx.gl.DeleteBuffer(b.name)
	b.name = 0
}

// Upload copies a slice of plain values into b.
func Upload[T Component](b *Buffer, data []T, usage Usage) {
	b.SetData(asBytes(data), usage)
}

func asBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*int(unsafe.Sizeof(zero)))
}

// VertexBuffer holds interleaved vertices.
type VertexBuffer struct {
	*Buffer
}

// NewVertexBuffer binds vao and creates an array buffer belonging to it.
func (c *Context) NewVertexBuffer(vao *VertexArray) *VertexBuffer {
	return &VertexBuffer{c.newBuffer(vao, ArrayBuffer)}
}

// IndexType is the integer type of element indices.
type IndexType uint8

const (
	IndexUint8 IndexType = iota
	IndexUint16
	IndexUint32
)

func (t IndexType) gl() uint32 {
	switch t {
	case IndexUint8:
		return glenum.UnsignedByte
	case IndexUint32:
		return glenum.UnsignedInt
	default:
		return glenum.UnsignedShort
	}
}

// Size gives the byte size of one index.
func (t IndexType) Size() int {
	switch t {
	case IndexUint8:
		return 1
	case IndexUint32:
		return 4
	default:
		return 2
	}
}

// IndexBuffer holds element indices.
type IndexBuffer struct {
	*Buffer
	count int
	typ   IndexType
}

// NewIndexBuffer binds vao and creates an element buffer belonging to it.
func (c *Context) NewIndexBuffer(vao *VertexArray) *IndexBuffer {
	return &IndexBuffer{Buffer: c.newBuffer(vao, ElementArrayBuffer), typ: IndexUint16}
}

func (b *IndexBuffer) Count() int {
	return b.count
}

func (b *IndexBuffer) IndexType() IndexType {
	return b.typ
}

func (b *IndexBuffer) SetIndices16(src []uint16, usage Usage) {
	b.SetData(asBytes(src), usage)
	b.count = len(src)
	b.typ = IndexUint16
}

func (b *IndexBuffer) SetIndices32(src []uint32, usage Usage) {
	b.SetData(asBytes(src), usage)
	b.count = len(src)
	b.typ = IndexUint32
}
