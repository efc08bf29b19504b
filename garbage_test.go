package graphics

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliseydudin/graphics/testgfx"
)

func TestReleaseGarbage(t *testing.T) {
	b := testgfx.New()
	c := NewContext(b)
	c.trash.add(kindBuffer, 7)
	c.trash.add(kindTexture, 9)

	c.ReleaseGarbage()
	assert.Equal(t, []testgfx.Call{
		{Name: "DeleteBuffer", Args: []any{uint32(7)}},
		{Name: "DeleteTexture", Args: []any{uint32(9)}},
	}, b.Calls)

	b.Reset()
	c.ReleaseGarbage()
	assert.Empty(t, b.Calls)
}

func TestDrawReleasesGarbageFirst(t *testing.T) {
	b := testgfx.New()
	c := NewContext(b)
	vao := c.NewVertexArray()
	c.trash.add(kindShader, 42)
	b.Reset()

	c.DrawArrays(vao, Points, 0, 1)
	require.NotEmpty(t, b.Calls)
	assert.Equal(t, "DeleteShader", b.Calls[0].Name)
}

func TestLeakedHandleIsCollected(t *testing.T) {
	b := testgfx.New()
	c := NewContext(b)
	func() { c.NewVertexArray() }()
	require.Equal(t, 1, b.Live(testgfx.VertexArray))

	require.Eventually(t, func() bool {
		runtime.GC()
		c.trash.Lock()
		defer c.trash.Unlock()
		return len(c.trash.items) == 1
	}, 5*time.Second, 10*time.Millisecond)

	c.ReleaseGarbage()
	assert.Equal(t, 0, b.Live(testgfx.VertexArray))
}

func TestDeleteStopsCleanup(t *testing.T) {
	b := testgfx.New()
	c := NewContext(b)
	func() { c.NewVertexArray().Delete() }()

	runtime.GC()
	runtime.GC()
	c.trash.Lock()
	n := len(c.trash.items)
	c.trash.Unlock()
	assert.Zero(t, n)
	assert.Len(t, b.Named("DeleteVertexArray"), 1)
}

func TestResourceKindString(t *testing.T) {
	assert.Equal(t, "vertex array", kindVertexArray.String())
	assert.Equal(t, "unknown", resourceKind(99).String())
}
