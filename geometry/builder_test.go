package geometry_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliseydudin/graphics"
	"github.com/eliseydudin/graphics/geometry"
	"github.com/eliseydudin/graphics/internal/glenum"
	"github.com/eliseydudin/graphics/testgfx"
)

var posColor = graphics.Attributes(
	graphics.Vec[float32]("position", 2),
	graphics.Vec[uint8]("color", 4),
)

func float32At(b []byte, off int) float32 {
	return math.Float32frombits(binary.NativeEndian.Uint32(b[off:]))
}

func TestVertexLayout(t *testing.T) {
	bdr := geometry.NewVertexBuilder(posColor)
	bdr.Vertex().Float32("position", 1, 2).Uint8("color", 10, 20, 30, 40)

	v := bdr.Vertices()
	require.Len(t, v, 12)
	assert.Equal(t, float32(1), float32At(v, 0))
	assert.Equal(t, float32(2), float32At(v, 4))
	assert.Equal(t, []byte{10, 20, 30, 40}, v[8:12])
	assert.Equal(t, 1, bdr.VertexCount())
}

func TestVertexFillsForward(t *testing.T) {
	bdr := geometry.NewVertexBuilder(posColor)
	bdr.Vertex().Float32("position", 0, 0).Uint8("color", 1, 2, 3, 4)
	bdr.Vertex().Float32("position", 1, 0)
	bdr.Vertex().Float32("position", 1, 1).Uint8("color", 5, 6, 7, 8)
	bdr.Vertex().Float32("position", 0, 1)

	v := bdr.Vertices()
	require.Equal(t, 4, bdr.VertexCount())
	assert.Equal(t, []byte{1, 2, 3, 4}, v[12+8:12+12])
	assert.Equal(t, []byte{5, 6, 7, 8}, v[36+8:36+12])
	assert.Equal(t, float32(1), float32At(v, 36+4))
}

func TestVertexBuilderPanics(t *testing.T) {
	bdr := geometry.NewVertexBuilder(posColor)
	assert.Panics(t, func() { bdr.Float32("position", 1, 2) }, "no vertex started")

	bdr.Vertex()
	assert.Panics(t, func() { bdr.Float32("normal", 0, 0, 1) })
	assert.Panics(t, func() { bdr.Uint8("position", 1) })
	assert.Panics(t, func() { bdr.Float32("position", 1, 2, 3) })
	assert.NotPanics(t, func() { bdr.Float32("position", 1) })
}

func TestIndicesAreRelative(t *testing.T) {
	var ib geometry.IndexBuilder
	ib.Indices(0, 1, 2, 2, 0, 3)
	ib.Indices(0, 1, 2)
	assert.Equal(t, []uint16{0, 1, 2, 2, 0, 3, 4, 5, 6}, ib.Indices16())
	assert.Equal(t, 9, ib.IndexCount())

	ib.SetIndices(3, 2, 1)
	assert.Equal(t, []uint16{3, 2, 1}, ib.Indices16())
	ib.Indices(0)
	assert.Equal(t, []uint16{3, 2, 1, 0}, ib.Indices16())

	ib.Clear()
	assert.Zero(t, ib.IndexCount())
}

func TestBuilderClear(t *testing.T) {
	bdr := geometry.NewBuilder(posColor)
	bdr.Vertex().Float32("position", 1, 1).Uint8("color", 9, 9, 9, 9)
	bdr.Indices(0)
	bdr.Clear()
	assert.Zero(t, bdr.VertexCount())
	assert.Zero(t, bdr.IndexCount())

	bdr.Vertex().Float32("position", 2, 2)
	bdr.Vertex()
	v := bdr.Vertices()
	assert.Equal(t, []byte{0, 0, 0, 0}, v[12+8:12+12])
	assert.Equal(t, float32(2), float32At(v, 12))
}

func quad() *geometry.Builder {
	bdr := geometry.NewBuilder(posColor)
	bdr.Vertex().Float32("position", 0, 0).Uint8("color", 255, 0, 0, 255)
	bdr.Vertex().Float32("position", 1, 0)
	bdr.Vertex().Float32("position", 1, 1)
	bdr.Vertex().Float32("position", 0, 1)
	bdr.Indices(0, 1, 2, 2, 0, 3)
	return bdr
}

func newContext() (*graphics.Context, *testgfx.Backend) {
	b := testgfx.New()
	b.Attributes = map[string]int32{"position": 0, "color": 1}
	return graphics.NewContext(b), b
}

func TestNewGeometryIndexed(t *testing.T) {
	ctx, b := newContext()
	src := quad()
	g, err := ctx.NewGeometry(src, graphics.StaticDraw)
	require.NoError(t, err)

	require.Len(t, b.Uploads, 2)
	assert.Equal(t, src.Vertices(), b.Uploads[0])
	assert.Len(t, b.Uploads[1], 12)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 6, g.Indices.Count())

	p, err := ctx.NewProgram(graphics.VertexShader(testgfx.VertexSource), graphics.FragmentShader(testgfx.FragmentSource))
	require.NoError(t, err)
	require.NoError(t, g.Bind(p))
	assert.Len(t, b.Named("VertexAttribPointer"), 2)

	b.Reset()
	ctx.DrawGeometry(g, graphics.Triangles)
	assert.Equal(t, []any{uint32(glenum.Triangles), int32(6), uint32(glenum.UnsignedShort), uintptr(0)},
		b.Named("DrawElements")[0].Args)

	g.Delete()
	p.Delete()
	assert.Zero(t, b.Live(testgfx.Buffer))
	assert.Zero(t, b.Live(testgfx.VertexArray))
}

func TestNewGeometryArrays(t *testing.T) {
	ctx, b := newContext()
	src := geometry.NewVertexBuilder(posColor)
	src.Vertex().Float32("position", 0, 0)
	src.Vertex().Float32("position", 1, 0)
	src.Vertex().Float32("position", 0, 1)

	g, err := ctx.NewGeometry(src, graphics.DynamicDraw)
	require.NoError(t, err)
	t.Cleanup(g.Delete)
	assert.Nil(t, g.Indices)

	b.Reset()
	ctx.DrawGeometry(g, graphics.Triangles)
	draws := b.Named("DrawArrays")
	require.Len(t, draws, 1)
	assert.Equal(t, []any{uint32(glenum.Triangles), int32(0), int32(3)}, draws[0].Args)
}

func TestNewGeometryEmptyLayout(t *testing.T) {
	ctx, b := newContext()
	_, err := ctx.NewGeometry(geometry.NewVertexBuilder(graphics.Attributes()), graphics.StaticDraw)
	assert.ErrorIs(t, err, graphics.ErrEmptyAttributeSet)
	assert.Empty(t, b.Calls)
}

func TestNewGeometryMissingAttribute(t *testing.T) {
	ctx, _ := newContext()
	src := geometry.NewVertexBuilder(graphics.Attributes(graphics.Vec[float32]("normal", 3)))
	src.Vertex().Float32("normal", 0, 0, 1)
	g, err := ctx.NewGeometry(src, graphics.StaticDraw)
	require.NoError(t, err)
	t.Cleanup(g.Delete)

	p, err := ctx.NewProgram(graphics.VertexShader(testgfx.VertexSource), graphics.FragmentShader(testgfx.FragmentSource))
	require.NoError(t, err)
	t.Cleanup(p.Delete)
	assert.ErrorIs(t, g.Bind(p), graphics.ErrAttributeNotFound)
}

func TestNewGeometryBuilderWithoutIndices(t *testing.T) {
	ctx, b := newContext()
	src := geometry.NewBuilder(posColor)
	src.Vertex().Float32("position", 0, 0)
	src.Vertex().Float32("position", 1, 0)
	src.Vertex().Float32("position", 0, 1)

	g, err := ctx.NewGeometry(src, graphics.StaticDraw)
	require.NoError(t, err)
	t.Cleanup(g.Delete)
	assert.Nil(t, g.Indices)
	assert.Equal(t, 1, b.Live(testgfx.Buffer))

	b.Reset()
	ctx.DrawGeometry(g, graphics.Triangles)
	assert.Empty(t, b.Named("DrawElements"))
	draws := b.Named("DrawArrays")
	require.Len(t, draws, 1)
	assert.Equal(t, []any{uint32(glenum.Triangles), int32(0), int32(3)}, draws[0].Args)

	// indices added later get their own buffer.
	src.Indices(0, 1, 2)
	g.CopyFrom(src)
	require.NotNil(t, g.Indices)
	assert.Equal(t, 3, g.Indices.Count())

	b.Reset()
	ctx.DrawGeometry(g, graphics.Triangles)
	assert.Len(t, b.Named("DrawElements"), 1)
}

func TestVertexBuilderByteSizeMismatch(t *testing.T) {
	bdr := geometry.NewVertexBuilder(graphics.Attributes(
		graphics.Attr("position", 2, 2, graphics.Float),
		graphics.Vec[uint8]("color", 4),
	))
	bdr.Vertex().Uint8("color", 9, 9, 9, 9)
	assert.Panics(t, func() { bdr.Float32("position", 1, 2) })
	assert.Equal(t, []byte{0, 0, 0, 0, 9, 9, 9, 9}, bdr.Vertices())
}

func TestIndicesOverflow(t *testing.T) {
	var ib geometry.IndexBuilder
	ib.Indices(math.MaxUint16)
	assert.Equal(t, []uint16{math.MaxUint16}, ib.Indices16())
	assert.Panics(t, func() { ib.Indices(0) })
}
