// Package geometry builds interleaved vertex data laid out by a
// graphics.AttributeSet.
package geometry

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/eliseydudin/graphics"
)

type Builder struct {
	VertexBuilder
	IndexBuilder
}

func NewBuilder(attrs graphics.AttributeSet) *Builder {
	return &Builder{VertexBuilder: *NewVertexBuilder(attrs)}
}

func (b *Builder) Clear() {
	b.VertexBuilder.Clear()
	b.IndexBuilder.Clear()
}

type slot struct {
	desc   graphics.AttributeDescriptor
	offset int
}

type VertexBuilder struct {
	attrs    graphics.AttributeSet
	stride   int
	slots    map[string]slot
	cur      int
	curset   map[string]bool // data that's been set on the current vertex
	lastdata map[string]int
	verts    []byte
}

func NewVertexBuilder(attrs graphics.AttributeSet) *VertexBuilder {
	b := &VertexBuilder{
		attrs:    attrs,
		stride:   attrs.Stride(),
		slots:    make(map[string]slot, attrs.Len()),
		curset:   make(map[string]bool, attrs.Len()),
		lastdata: make(map[string]int, attrs.Len()),
	}
	offsets := attrs.Offsets()
	for i, d := range attrs.Descriptors() {
		b.slots[d.Name] = slot{desc: d, offset: offsets[i]}
	}
	return b
}

// Clear resets buffers to zero length.
func (b *VertexBuilder) Clear() {
	clear(b.lastdata)
	clear(b.curset)
	b.cur = 0
	b.verts = b.verts[:0]
}

// Vertex starts a new vertex. Attributes left unset on the previous vertex
// are copied from the last vertex that set them.
func (b *VertexBuilder) Vertex() *VertexBuilder {
	b.fillVertex()
	if len(b.verts) != 0 {
		b.cur += b.stride
	}
	clear(b.curset)
	b.verts = append(b.verts, make([]byte, b.stride)...)
	return b
}

// fillVertex fills the rest of the current vertex using the last set data
// from a previous vertex.
func (b *VertexBuilder) fillVertex() {
	if len(b.verts) == 0 {
		return
	}
	for name, offs := range b.lastdata {
		if b.curset[name] {
			continue
		}
		s := b.slots[name]
		b.set(name, b.verts[offs:offs+s.desc.Size()])
	}
}

func (b *VertexBuilder) slot(name string, typ graphics.AttributeType, n int) slot {
	s, ok := b.slots[name]
	if !ok {
		panic(fmt.Sprintf("geometry: no attribute %q in layout", name))
	}
	if s.desc.Type != typ || n > s.desc.Count {
		panic(fmt.Sprintf("geometry: attribute %q is %d x %s, got %d x %s",
			name, s.desc.Count, s.desc.Type, n, typ))
	}
	if s.desc.ByteSize != typ.Size() {
		panic(fmt.Sprintf("geometry: attribute %q has %d byte %s components, want %d",
			name, s.desc.ByteSize, typ, typ.Size()))
	}
	if len(b.verts) == 0 {
		panic("geometry: Vertex must be called before setting attributes")
	}
	return s
}

func (b *VertexBuilder) set(name string, data []byte) {
	offs := b.cur + b.slots[name].offset
	b.curset[name] = true
	b.lastdata[name] = offs
	copy(b.verts[offs:offs+len(data)], data)
}

// Float32 sets up to Count float components of the named attribute on the
// current vertex.
func (b *VertexBuilder) Float32(name string, v ...float32) *VertexBuilder {
	b.slot(name, graphics.Float, len(v))
	buf := make([]byte, 4*len(v))
	for i, f := range v {
		binary.NativeEndian.PutUint32(buf[4*i:], math.Float32bits(f))
	}
	b.set(name, buf)
	return b
}

// Uint8 sets up to Count unsigned byte components of the named attribute.
func (b *VertexBuilder) Uint8(name string, v ...uint8) *VertexBuilder {
	b.slot(name, graphics.UnsignedByte, len(v))
	b.set(name, v)
	return b
}

// VertexCount returns the number of vertices available.
func (b *VertexBuilder) VertexCount() int {
	if b.stride == 0 {
		return 0
	}
	return len(b.verts) / b.stride
}

func (b *VertexBuilder) Attributes() graphics.AttributeSet {
	return b.attrs
}

// Vertices returns the interleaved vertex bytes, completing the last vertex
// first.
func (b *VertexBuilder) Vertices() []byte {
	b.fillVertex()
	return b.verts
}

type IndexBuilder struct {
	idxs    []uint16
	nextidx int
}

// Indices appends new indices to the buffer that are relative to the maximum
// index in the buffer. It panics if an index would exceed 65535; meshes that
// large need 32 bit indices (graphics.IndexBuffer.SetIndices32).
func (b *IndexBuilder) Indices(idxs ...uint16) *IndexBuilder {
	base := b.nextidx
	newnext := b.nextidx
	for _, idx := range idxs {
		abs := base + int(idx)
		if abs > math.MaxUint16 {
			panic(fmt.Sprintf("geometry: index %d does not fit in 16 bits", abs))
		}
		if abs >= newnext {
			newnext = abs + 1
		}
		b.idxs = append(b.idxs, uint16(abs))
	}
	b.nextidx = newnext
	return b
}

// SetIndices copies idxs into a new buffer.
func (b *IndexBuilder) SetIndices(idxs ...uint16) {
	b.nextidx = 0
	b.idxs = make([]uint16, len(idxs))
	copy(b.idxs, idxs)
}

// IndexCount returns the number of indices available.
func (b *IndexBuilder) IndexCount() int {
	return len(b.idxs)
}

func (b *IndexBuilder) Indices16() []uint16 {
	return b.idxs
}

// Clear resets buffers to zero length.
func (b *IndexBuilder) Clear() {
	b.idxs = b.idxs[:0]
	b.nextidx = 0
}
