package graphics

import (
	"errors"
	"fmt"

	"github.com/eliseydudin/graphics/internal/glenum"
)

var (
	// ErrEmptyAttributeSet is returned when applying a set with no descriptors.
	ErrEmptyAttributeSet = errors.New("graphics: empty attribute set")
	// ErrInvalidAttribute is returned for descriptors GL cannot describe.
	ErrInvalidAttribute = errors.New("graphics: invalid attribute descriptor")
	// ErrAttributeNotFound is matched by *AttributeError.
	ErrAttributeNotFound = errors.New("graphics: attribute not found")

	ErrCompile       = errors.New("graphics: cannot compile the shader")
	ErrLink          = errors.New("graphics: cannot link the shaders")
	ErrInvalidSource = errors.New("graphics: shader source contains a NUL byte")
	ErrShaderStage   = errors.New("graphics: shader has the wrong stage")

	ErrUniformNotFound    = errors.New("graphics: uniform not found")
	ErrUnsupportedUniform = errors.New("graphics: unsupported uniform type")

	ErrTextureUnit        = errors.New("graphics: texture unit out of range")
	ErrTextureUnitUnbound = errors.New("graphics: no texture bound to texture unit")
	ErrTextureSize        = errors.New("graphics: pixel data does not match texture size")

	ErrDeleted = errors.New("graphics: use of deleted handle")
)

// AttributeError reports a vertex attribute name the program could not
// resolve, either because it is misspelled or because the shader compiler
// optimized the input out.
type AttributeError struct {
	Name string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("graphics: attribute %q not found in program", e.Name)
}

func (e *AttributeError) Unwrap() error { return ErrAttributeNotFound }

// CompileError carries the driver's info log for a failed compilation.
type CompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("graphics: cannot compile the %s shader: %s", e.Stage, e.Log)
}

func (e *CompileError) Unwrap() error { return ErrCompile }

// LinkError carries the driver's info log for a failed program link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "graphics: cannot link the shaders: " + e.Log
}

func (e *LinkError) Unwrap() error { return ErrLink }

// GLError is a code returned by glGetError.
type GLError uint32

var glErrorNames = map[GLError]string{
	glenum.InvalidEnum:                 "GL_INVALID_ENUM",
	glenum.InvalidValue:                "GL_INVALID_VALUE",
	glenum.InvalidOperation:            "GL_INVALID_OPERATION",
	glenum.StackOverflow:               "GL_STACK_OVERFLOW",
	glenum.StackUnderflow:              "GL_STACK_UNDERFLOW",
	glenum.OutOfMemory:                 "GL_OUT_OF_MEMORY",
	glenum.InvalidFramebufferOperation: "GL_INVALID_FRAMEBUFFER_OPERATION",
}

func (e GLError) Error() string {
	if name, ok := glErrorNames[e]; ok {
		return "graphics: " + name
	}
	return fmt.Sprintf("graphics: GL error 0x%04X", uint32(e))
}
