package graphics

import (
	"image"
	"runtime"
	"unsafe"

	"github.com/eliseydudin/graphics/internal/glenum"
)

// MaxTextureUnits bounds the texture unit indices accepted by NewTextureUnit.
const MaxTextureUnits = 32

// Texture owns a 2D texture object.
type Texture struct {
	ctx           *Context
	name          uint32
	width, height int
	cleanup       runtime.Cleanup
}

// NewTexture uploads tightly packed RGBA8 pixels and generates mipmaps.
func (c *Context) NewTexture(rgba []byte, width, height int) (*Texture, error) {
	return c.newTexture(rgba, width, height, 4, glenum.RGBA8, glenum.RGBA)
}

// TextureFromImage takes an image and returns a 2D texture. Currently only
// takes *image.NRGBA, *image.RGBA, *image.Alpha and *image.Gray. No
// processing is done on the image data, such as premultiplying alpha or
// flipping rows.
func (c *Context) TextureFromImage(img image.Image) (*Texture, error) {
	switch img := img.(type) {
	case *image.NRGBA:
		size := img.Rect.Size()
		return c.newTexture(packed(img.Pix, img.Stride, size.X*4, size.Y), size.X, size.Y, 4, glenum.RGBA8, glenum.RGBA)
	case *image.RGBA:
		size := img.Rect.Size()
		return c.newTexture(packed(img.Pix, img.Stride, size.X*4, size.Y), size.X, size.Y, 4, glenum.RGBA8, glenum.RGBA)
	case *image.Alpha:
		size := img.Rect.Size()
		return c.newTexture(packed(img.Pix, img.Stride, size.X, size.Y), size.X, size.Y, 1, glenum.R8, glenum.Red)
	case *image.Gray:
		size := img.Rect.Size()
		return c.newTexture(packed(img.Pix, img.Stride, size.X, size.Y), size.X, size.Y, 1, glenum.R8, glenum.Red)
	default:
		return nil, image.ErrFormat
	}
}

// packed drops row padding so pixel rows are contiguous.
func packed(pix []byte, stride, rowBytes, rows int) []byte {
	if stride == rowBytes {
		return pix[:rowBytes*rows]
	}
	out := make([]byte, 0, rowBytes*rows)
	for y := 0; y < rows; y++ {
		out = append(out, pix[y*stride:y*stride+rowBytes]...)
	}
	return out
}

func (c *Context) newTexture(pix []byte, width, height, bpp int, internal int32, format uint32) (*Texture, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height*bpp {
		return nil, ErrTextureSize
	}
	t := &Texture{ctx: c, name: c.gl.CreateTexture(), width: width, height: height}
	t.cleanup = track(c, t, kindTexture, t.name)
	c.gl.BindTexture(glenum.Texture2D, t.name)
	if bpp == 1 {
		c.gl.PixelStorei(glenum.UnpackAlignment, 1)
	}
	c.gl.TexParameteri(glenum.Texture2D, glenum.TextureMagFilter, glenum.Linear)
	c.gl.TexParameteri(glenum.Texture2D, glenum.TextureMinFilter, glenum.LinearMipmapLinear)
	c.gl.TexImage2D(glenum.Texture2D, 0, internal, int32(width), int32(height), format, glenum.UnsignedByte, unsafe.Pointer(&pix[0]))
	c.gl.GenerateMipmap(glenum.Texture2D)
	if bpp == 1 {
		c.gl.PixelStorei(glenum.UnpackAlignment, 4)
	}
	return t, nil
}

func (t *Texture) Size() (width, height int) {
	return t.width, t.height
}

func (t *Texture) Delete() {
	if t.name == 0 {
		return
	}
	t.cleanup.Stop()
	t.ctx.gl.DeleteTexture(t.name)
	t.name = 0
}

// TextureUnit is a texture image unit that samplers read from.
type TextureUnit struct {
	ctx   *Context
	index uint32
	bound bool
}

// NewTextureUnit returns unit index, which must be below MaxTextureUnits.
func (c *Context) NewTextureUnit(index int) (*TextureUnit, error) {
	if index < 0 || index >= MaxTextureUnits {
		return nil, ErrTextureUnit
	}
	return &TextureUnit{ctx: c, index: uint32(index)}, nil
}

func (u *TextureUnit) Index() int {
	return int(u.index)
}

// Bind activates the unit and binds tex to it.
func (u *TextureUnit) Bind(tex *Texture) {
	u.ctx.gl.ActiveTexture(glenum.Texture0 + u.index)
	u.ctx.gl.BindTexture(glenum.Texture2D, tex.name)
	u.bound = true
}
