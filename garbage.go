package graphics

import (
	"log/slog"
	"runtime"
	"sync"
)

type resourceKind uint8

const (
	kindBuffer resourceKind = iota
	kindVertexArray
	kindShader
	kindProgram
	kindTexture
)

func (k resourceKind) String() string {
	switch k {
	case kindBuffer:
		return "buffer"
	case kindVertexArray:
		return "vertex array"
	case kindShader:
		return "shader"
	case kindProgram:
		return "program"
	case kindTexture:
		return "texture"
	default:
		return "unknown"
	}
}

type garbageItem struct {
	kind resourceKind
	name uint32
}

// garbage collects GL names whose owning handles became unreachable without
// an explicit Delete. Cleanups run on a runtime goroutine, but GL calls must
// happen on the context thread, so names wait here until a checkpoint.
type garbage struct {
	sync.Mutex
	items []garbageItem
}

func (g *garbage) add(kind resourceKind, name uint32) {
	g.Lock()
	g.items = append(g.items, garbageItem{kind, name})
	g.Unlock()
}

func (g *garbage) take() []garbageItem {
	g.Lock()
	defer g.Unlock()
	items := g.items
	g.items = nil
	return items
}

// track arranges for name to be queued on c's trash bin once obj is
// unreachable. The returned cleanup must be stopped by Delete.
func track[T any](c *Context, obj *T, kind resourceKind, name uint32) runtime.Cleanup {
	bin := &c.trash
	return runtime.AddCleanup(obj, func(name uint32) {
		bin.add(kind, name)
	}, name)
}

// ReleaseGarbage deletes the GL objects of handles that were garbage
// collected without being deleted. It is called at checkpoints (UseProgram,
// draw calls) and must run on the context thread.
func (c *Context) ReleaseGarbage() {
	items := c.trash.take()
	if len(items) == 0 {
		return
	}
	for _, it := range items {
		c.deleteName(it.kind, it.name)
		Logger().Warn("graphics: released leaked handle",
			slog.String("kind", it.kind.String()),
			slog.Uint64("name", uint64(it.name)))
	}
}

func (c *Context) deleteName(kind resourceKind, name uint32) {
	switch kind {
	case kindBuffer:
		c.gl.DeleteBuffer(name)
	case kindVertexArray:
		c.gl.DeleteVertexArray(name)
	case kindShader:
		c.gl.DeleteShader(name)
	case kindProgram:
		c.gl.DeleteProgram(name)
	case kindTexture:
		c.gl.DeleteTexture(name)
	}
}
