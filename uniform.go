package graphics

import (
	"fmt"
	"reflect"

	"github.com/go-gl/mathgl/mgl32"
)

// SetUniform assigns v to the uniform called name in p. p must be the
// current program. Supported values are uint32, int32, float32, mgl32.Vec2,
// mgl32.Vec3, mgl32.Vec4, mgl32.Mat3, mgl32.Mat4, [16]float32 and
// *TextureUnit.
func (c *Context) SetUniform(p *Program, name string, v any) error {
	loc, ok := p.UniformLocation(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUniformNotFound, name)
	}
	switch v := v.(type) {
	case uint32:
		c.gl.Uniform1ui(loc, v)
	case int32:
		c.gl.Uniform1i(loc, v)
	case float32:
		c.gl.Uniform1f(loc, v)
	case mgl32.Vec2:
		c.gl.Uniform2f(loc, v[0], v[1])
	case mgl32.Vec3:
		c.gl.Uniform3f(loc, v[0], v[1], v[2])
	case mgl32.Vec4:
		c.gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	case mgl32.Mat3:
		c.gl.UniformMatrix3fv(loc, 1, false, &v[0])
	case mgl32.Mat4:
		c.gl.UniformMatrix4fv(loc, 1, false, &v[0])
	case [16]float32:
		c.gl.UniformMatrix4fv(loc, 1, false, &v[0])
	case *TextureUnit:
		if v == nil || !v.bound {
			return ErrTextureUnitUnbound
		}
		c.gl.Uniform1i(loc, int32(v.index))
	default:
		return fmt.Errorf("%w: %T for %q", ErrUnsupportedUniform, v, name)
	}
	return nil
}

// SetUniforms takes struct fields with a "uniform" tag and assigns their
// values to the uniforms of the same name. data may be a struct or a
// pointer to one. Untagged and unexported fields are skipped.
func (c *Context) SetUniforms(p *Program, data any) error {
	val := reflect.Indirect(reflect.ValueOf(data))
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T is not a struct", ErrUnsupportedUniform, data)
	}
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		f := typ.Field(i)
		name := f.Tag.Get("uniform")
		if name == "" || !f.IsExported() {
			continue
		}
		if err := c.SetUniform(p, name, val.Field(i).Interface()); err != nil {
			return err
		}
	}
	return nil
}
