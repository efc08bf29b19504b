package graphics

type VertexData interface {
	VertexCount() int
	Attributes() AttributeSet
	Vertices() []byte
}

type IndexData interface {
	IndexCount() int
	Indices16() []uint16
}

// Geometry represents a piece of mesh that can be rendered in a single
// draw call. It may or may not contain an index buffer, but always has
// a vertex buffer laid out by attrs.
type Geometry struct {
	usage    Usage
	attrs    AttributeSet
	count    int
	Array    *VertexArray
	Vertices *VertexBuffer
	Indices  *IndexBuffer
}

// NewGeometry copies vertices from src as well as indices if IndexData
// is implemented, into newly allocated buffer objects.
func (c *Context) NewGeometry(src VertexData, usage Usage) (*Geometry, error) {
	attrs := src.Attributes()
	if attrs.Len() == 0 {
		return nil, ErrEmptyAttributeSet
	}
	g := &Geometry{usage: usage, attrs: attrs, Array: c.NewVertexArray()}
	g.Vertices = c.NewVertexBuffer(g.Array)
	g.CopyFrom(src)
	return g, nil
}

// CopyFrom replaces the buffer contents with src. src must share the
// geometry's attribute layout. The index buffer is created the first time
// src carries indices.
func (g *Geometry) CopyFrom(src VertexData) {
	g.Array.Bind()
	g.Vertices.SetData(src.Vertices(), g.usage)
	g.count = src.VertexCount()
	idx, ok := src.(IndexData)
	if !ok || idx.IndexCount() == 0 {
		if g.Indices != nil {
			g.Indices.SetIndices16(nil, g.usage)
		}
		return
	}
	if g.Indices == nil {
		g.Indices = g.Array.ctx.NewIndexBuffer(g.Array)
	}
	g.Indices.SetIndices16(idx.Indices16(), g.usage)
}

func (g *Geometry) Attributes() AttributeSet {
	return g.attrs
}

func (g *Geometry) VertexCount() int {
	return g.count
}

// Bind binds the vertex array and buffers and applies the attribute layout
// against p.
func (g *Geometry) Bind(p *Program) error {
	g.Array.Bind()
	g.Vertices.Bind()
	if g.Indices != nil {
		g.Indices.Bind()
	}
	return g.attrs.Apply(p)
}

// DrawGeometry draws g with a single draw call, indexed when g has indices.
func (c *Context) DrawGeometry(g *Geometry, mode DrawMode) {
	if g.Indices != nil && g.Indices.Count() > 0 {
		c.DrawElements(g.Array, mode, g.Indices.Count(), g.Indices.IndexType(), 0)
		return
	}
	c.DrawArrays(g.Array, mode, 0, g.count)
}

func (g *Geometry) Delete() {
	if g.Indices != nil {
		g.Indices.Delete()
	}
	g.Vertices.Delete()
	g.Array.Delete()
}
