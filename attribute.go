package graphics

import "github.com/eliseydudin/graphics/internal/glenum"

// AttributeType is the component type of a vertex attribute.
type AttributeType uint8

const (
	Byte AttributeType = iota
	UnsignedByte
	Short
	UnsignedShort
	Int
	UnsignedInt
	HalfFloat
	Float
	Double
	Fixed
	numAttributeTypes
)

var attributeTypes = [numAttributeTypes]struct {
	name  string
	gl    uint32
	bytes int
}{
	Byte:          {"byte", glenum.Byte, 1},
	UnsignedByte:  {"unsigned byte", glenum.UnsignedByte, 1},
	Short:         {"short", glenum.Short, 2},
	UnsignedShort: {"unsigned short", glenum.UnsignedShort, 2},
	Int:           {"int", glenum.Int, 4},
	UnsignedInt:   {"unsigned int", glenum.UnsignedInt, 4},
	HalfFloat:     {"half float", glenum.HalfFloat, 2},
	Float:         {"float", glenum.Float, 4},
	Double:        {"double", glenum.Double, 8},
	Fixed:         {"fixed", glenum.Fixed, 4},
}

// Valid reports whether t is one of the declared attribute types.
func (t AttributeType) Valid() bool {
	return t < numAttributeTypes
}

// Size gives the natural byte size of one component of type t.
func (t AttributeType) Size() int {
	if !t.Valid() {
		return 0
	}
	return attributeTypes[t].bytes
}

func (t AttributeType) String() string {
	if !t.Valid() {
		return "invalid"
	}
	return attributeTypes[t].name
}

func (t AttributeType) gl() uint32 {
	return attributeTypes[t].gl
}

// Attribute is a resolved input slot of a linked program.
type Attribute struct {
	ctx      *Context
	location uint32
}

// Location returns the numeric input location.
func (a Attribute) Location() uint32 {
	return a.location
}

// Enable turns on the vertex attribute array for this slot.
func (a Attribute) Enable() Attribute {
	a.ctx.gl.EnableVertexAttribArray(a.location)
	return a
}

// Describe registers the memory layout of this slot within the currently
// bound array buffer.
func (a Attribute) Describe(count int, typ AttributeType, normalized bool, stride, offset int) Attribute {
	a.ctx.gl.VertexAttribPointer(a.location, int32(count), typ.gl(), normalized, int32(stride), uintptr(offset))
	return a
}
