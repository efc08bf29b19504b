package graphics

import (
	"image/color"

	"github.com/eliseydudin/graphics/internal/glenum"
)

// Context is the draw surface over a Backend. A Context and every handle it
// creates must only be used from the thread that owns the GL context.
type Context struct {
	gl    Backend
	trash garbage
}

// NewContext wraps an initialized backend.
func NewContext(b Backend) *Context {
	return &Context{gl: b}
}

func (c *Context) Backend() Backend {
	return c.gl
}

// DrawMode is the primitive type assembled by draw calls.
type DrawMode uint8

const (
	Points DrawMode = iota
	Lines
	LineLoop
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
	numDrawModes
)

var drawModes = [numDrawModes]uint32{
	Points:        glenum.Points,
	Lines:         glenum.Lines,
	LineLoop:      glenum.LineLoop,
	LineStrip:     glenum.LineStrip,
	Triangles:     glenum.Triangles,
	TriangleStrip: glenum.TriangleStrip,
	TriangleFan:   glenum.TriangleFan,
}

func (m DrawMode) gl() uint32 {
	if m >= numDrawModes {
		return glenum.Triangles
	}
	return drawModes[m]
}

// ClearFlags selects the buffers Clear resets.
type ClearFlags uint8

const (
	ClearColor ClearFlags = 1 << iota
	ClearDepth
	ClearStencil
)

func (f ClearFlags) gl() uint32 {
	var mask uint32
	if f&ClearColor != 0 {
		mask |= glenum.ColorBufferBit
	}
	if f&ClearDepth != 0 {
		mask |= glenum.DepthBufferBit
	}
	if f&ClearStencil != 0 {
		mask |= glenum.StencilBufferBit
	}
	return mask
}

// Clear resets the selected buffers.
func (c *Context) Clear(flags ClearFlags) {
	c.gl.Clear(flags.gl())
}

// SetClearColor sets the color used by Clear(ClearColor).
func (c *Context) SetClearColor(col color.Color) {
	r, g, b, a := col.RGBA()
	c.gl.ClearColor(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
}

// UseProgram makes p current. It is a checkpoint for releasing leaked
// handles.
func (c *Context) UseProgram(p *Program) {
	c.ReleaseGarbage()
	c.gl.UseProgram(p.name)
}

// DrawArrays binds vao and draws count vertices starting at first.
func (c *Context) DrawArrays(vao *VertexArray, mode DrawMode, first, count int) {
	c.ReleaseGarbage()
	vao.Bind()
	c.gl.DrawArrays(mode.gl(), int32(first), int32(count))
}

// DrawElements binds vao and draws count indices of type typ, reading from
// the bound element buffer at byte offset.
func (c *Context) DrawElements(vao *VertexArray, mode DrawMode, count int, typ IndexType, offset int) {
	c.ReleaseGarbage()
	vao.Bind()
	c.gl.DrawElements(mode.gl(), int32(count), typ.gl(), uintptr(offset))
}

// Viewport maps normalized device coordinates to a framebuffer rectangle.
// Pass framebuffer pixels, not window points, on HiDPI displays.
func (c *Context) Viewport(x, y, width, height int) {
	c.gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// EnableDepthTest turns on depth testing with the LESS comparison.
func (c *Context) EnableDepthTest() {
	c.gl.Enable(glenum.DepthTest)
	c.gl.DepthFunc(glenum.Less)
}

func (c *Context) DisableDepthTest() {
	c.gl.Disable(glenum.DepthTest)
}

// Err returns the oldest pending GL error, or nil.
func (c *Context) Err() error {
	if code := c.gl.GetError(); code != glenum.NoError {
		return GLError(code)
	}
	return nil
}
