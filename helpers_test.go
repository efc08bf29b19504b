package graphics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eliseydudin/graphics"
	"github.com/eliseydudin/graphics/testgfx"
)

func newContext() (*graphics.Context, *testgfx.Backend) {
	b := testgfx.New()
	b.Attributes = testgfx.Inputs()
	b.Uniforms = testgfx.Uniforms()
	return graphics.NewContext(b), b
}

func newProgram(t *testing.T, ctx *graphics.Context) *graphics.Program {
	t.Helper()
	p, err := ctx.NewProgram(graphics.VertexShader(testgfx.VertexSource), graphics.FragmentShader(testgfx.FragmentSource))
	require.NoError(t, err)
	t.Cleanup(p.Delete)
	return p
}

func call(name string, args ...any) testgfx.Call {
	return testgfx.Call{Name: name, Args: args}
}
