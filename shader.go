package graphics

import (
	"log/slog"
	"runtime"
	"strings"

	"github.com/eliseydudin/graphics/internal/glenum"
)

// ShaderStage is the pipeline stage a shader object runs in.
type ShaderStage uint8

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

func (s ShaderStage) gl() uint32 {
	if s == FragmentStage {
		return glenum.FragmentShader
	}
	return glenum.VertexShader
}

type ShaderSource interface {
	Stage() ShaderStage
	Source() string
}

type VertexShader string
type FragmentShader string

func (v VertexShader) Stage() ShaderStage { return VertexStage }
func (v VertexShader) Source() string     { return string(v) }

func (f FragmentShader) Stage() ShaderStage { return FragmentStage }
func (f FragmentShader) Source() string     { return string(f) }

// Shader is a compiled shader object. It is consumed by LinkProgram.
type Shader struct {
	ctx     *Context
	name    uint32
	stage   ShaderStage
	cleanup runtime.Cleanup
}

func (s *Shader) Stage() ShaderStage {
	return s.stage
}

// Delete releases the shader object. It is safe to call more than once.
func (s *Shader) Delete() {
	if s.name == 0 {
		return
	}
	s.cleanup.Stop()
	s.ctx.gl.DeleteShader(s.name)
	s.name = 0
}

// CompileShader compiles src. On failure the shader object is deleted and a
// *CompileError carrying the driver log is returned.
func (c *Context) CompileShader(src ShaderSource) (*Shader, error) {
	source := src.Source()
	if strings.IndexByte(source, 0) >= 0 {
		return nil, ErrInvalidSource
	}
	stage := src.Stage()
	name := c.gl.CreateShader(stage.gl())
	c.gl.ShaderSource(name, source)
	c.gl.CompileShader(name)
	if c.gl.GetShaderiv(name, glenum.CompileStatus) == glenum.False {
		log := c.gl.GetShaderInfoLog(name)
		c.gl.DeleteShader(name)
		return nil, &CompileError{Stage: stage, Log: log}
	}
	s := &Shader{ctx: c, name: name, stage: stage}
	s.cleanup = track(c, s, kindShader, name)
	Logger().Debug("graphics: compiled shader",
		slog.String("stage", stage.String()),
		slog.Uint64("name", uint64(name)))
	return s, nil
}

// Program is a linked shader program.
type Program struct {
	ctx     *Context
	name    uint32
	cleanup runtime.Cleanup
}

// LinkProgram links vs and fs into a new program. The shaders are consumed:
// they are detached and deleted whether or not linking succeeds.
func (c *Context) LinkProgram(vs, fs *Shader) (*Program, error) {
	defer vs.Delete()
	defer fs.Delete()
	if vs.name == 0 || fs.name == 0 {
		return nil, ErrDeleted
	}
	if vs.stage != VertexStage || fs.stage != FragmentStage {
		return nil, ErrShaderStage
	}

	name := c.gl.CreateProgram()
	c.gl.AttachShader(name, vs.name)
	c.gl.AttachShader(name, fs.name)
	c.gl.LinkProgram(name)
	ok := c.gl.GetProgramiv(name, glenum.LinkStatus) != glenum.False
	// No longer need shader objects with a fully built program.
	c.gl.DetachShader(name, vs.name)
	c.gl.DetachShader(name, fs.name)
	if !ok {
		log := c.gl.GetProgramInfoLog(name)
		c.gl.DeleteProgram(name)
		return nil, &LinkError{Log: log}
	}

	p := &Program{ctx: c, name: name}
	p.cleanup = track(c, p, kindProgram, name)
	Logger().Debug("graphics: linked program", slog.Uint64("name", uint64(name)))
	return p, nil
}

// NewProgram compiles both sources and links them.
func (c *Context) NewProgram(vs VertexShader, fs FragmentShader) (*Program, error) {
	v, err := c.CompileShader(vs)
	if err != nil {
		return nil, err
	}
	f, err := c.CompileShader(fs)
	if err != nil {
		v.Delete()
		return nil, err
	}
	return c.LinkProgram(v, f)
}

// AttribLocation resolves an active vertex input by name.
func (p *Program) AttribLocation(name string) (Attribute, bool) {
	if p.name == 0 || strings.IndexByte(name, 0) >= 0 {
		return Attribute{}, false
	}
	loc := p.ctx.gl.GetAttribLocation(p.name, name)
	if loc < 0 {
		return Attribute{}, false
	}
	return Attribute{ctx: p.ctx, location: uint32(loc)}, true
}

// UniformLocation resolves an active uniform by name.
func (p *Program) UniformLocation(name string) (int32, bool) {
	if p.name == 0 || strings.IndexByte(name, 0) >= 0 {
		return -1, false
	}
	loc := p.ctx.gl.GetUniformLocation(p.name, name)
	return loc, loc >= 0
}

// Use makes p the current program.
func (p *Program) Use() {
	p.ctx.UseProgram(p)
}

// Delete releases the program. It is safe to call more than once.
func (p *Program) Delete() {
	if p.name == 0 {
		return
	}
	p.cleanup.Stop()
	p.ctx.gl.DeleteProgram(p.name)
	p.name = 0
}
