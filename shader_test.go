package graphics_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliseydudin/graphics"
	"github.com/eliseydudin/graphics/testgfx"
)

const (
	vs = graphics.VertexShader(testgfx.VertexSource)
	fs = graphics.FragmentShader(testgfx.FragmentSource)
)

func TestNewProgramConsumesShaders(t *testing.T) {
	ctx, b := newContext()
	p, err := ctx.NewProgram(vs, fs)
	require.NoError(t, err)

	assert.Equal(t, 0, b.Live(testgfx.Shader))
	assert.Equal(t, 1, b.Live(testgfx.Program))
	assert.Len(t, b.Named("DetachShader"), 2)

	p.Delete()
	p.Delete()
	assert.Equal(t, 0, b.Live(testgfx.Program))
	assert.Len(t, b.Named("DeleteProgram"), 1)
}

func TestCompileError(t *testing.T) {
	ctx, b := newContext()
	b.CompileLog[testgfx.FragmentStage] = "0:3: 'colr' : undeclared identifier"

	_, err := ctx.NewProgram(vs, fs)
	require.ErrorIs(t, err, graphics.ErrCompile)

	var ce *graphics.CompileError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, graphics.FragmentStage, ce.Stage)
	assert.Equal(t, "0:3: 'colr' : undeclared identifier", ce.Log)

	// neither the failed fragment shader nor the compiled vertex shader leak.
	assert.Equal(t, 0, b.Live(testgfx.Shader))
	assert.Equal(t, 0, b.Live(testgfx.Program))
}

func TestLinkError(t *testing.T) {
	ctx, b := newContext()
	b.LinkLog = "error: vertex output 'uv' not read by fragment shader"

	_, err := ctx.NewProgram(vs, fs)
	require.ErrorIs(t, err, graphics.ErrLink)

	var le *graphics.LinkError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, b.LinkLog, le.Log)
	assert.Equal(t, 0, b.Live(testgfx.Shader))
	assert.Equal(t, 0, b.Live(testgfx.Program))
}

func TestLinkProgramChecksStages(t *testing.T) {
	ctx, b := newContext()
	v1, err := ctx.CompileShader(vs)
	require.NoError(t, err)
	v2, err := ctx.CompileShader(vs)
	require.NoError(t, err)

	_, err = ctx.LinkProgram(v1, v2)
	assert.ErrorIs(t, err, graphics.ErrShaderStage)
	assert.Equal(t, 0, b.Live(testgfx.Shader))
	assert.Empty(t, b.Named("CreateProgram"))
}

func TestCompileShaderRejectsNUL(t *testing.T) {
	ctx, b := newContext()
	_, err := ctx.CompileShader(graphics.VertexShader("void main() {}\x00"))
	assert.ErrorIs(t, err, graphics.ErrInvalidSource)
	assert.Empty(t, b.Calls)
}

func TestShaderSourceStages(t *testing.T) {
	assert.Equal(t, graphics.VertexStage, vs.Stage())
	assert.Equal(t, graphics.FragmentStage, fs.Stage())
	assert.Equal(t, "vertex", graphics.VertexStage.String())
	assert.Equal(t, "fragment", graphics.FragmentStage.String())
}

func TestAttribLocation(t *testing.T) {
	ctx, _ := newContext()
	p := newProgram(t, ctx)

	a, ok := p.AttribLocation("color")
	assert.True(t, ok)
	assert.Equal(t, uint32(1), a.Location())

	_, ok = p.AttribLocation("normal")
	assert.False(t, ok)
	_, ok = p.AttribLocation("col\x00or")
	assert.False(t, ok)
}

func TestUniformLocation(t *testing.T) {
	ctx, _ := newContext()
	p := newProgram(t, ctx)

	loc, ok := p.UniformLocation("time")
	assert.True(t, ok)
	assert.Equal(t, int32(1), loc)
	_, ok = p.UniformLocation("missing")
	assert.False(t, ok)
}
