package graphics

import (
	"fmt"
	"log/slog"
)

// AttributeDescriptor identifies the shape of one vertex attribute.
type AttributeDescriptor struct {
	Name     string
	Count    int // components per vertex, 1 to 4
	ByteSize int // bytes per component
	Type     AttributeType
}

// Attr builds a descriptor from explicit values.
func Attr(name string, count, byteSize int, typ AttributeType) AttributeDescriptor {
	return AttributeDescriptor{Name: name, Count: count, ByteSize: byteSize, Type: typ}
}

// Component lists the Go types that map directly onto an AttributeType.
type Component interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | float32 | float64
}

// Vec builds a descriptor for an n-component attribute of Go type T, e.g.
// Vec[float32]("position", 2) for a vec2.
func Vec[T Component](name string, n int) AttributeDescriptor {
	typ := componentType[T]()
	return Attr(name, n, typ.Size(), typ)
}

func componentType[T Component]() AttributeType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Byte
	case uint8:
		return UnsignedByte
	case int16:
		return Short
	case uint16:
		return UnsignedShort
	case int32:
		return Int
	case uint32:
		return UnsignedInt
	case float64:
		return Double
	default:
		return Float
	}
}

// Size gives the byte size of the attribute within one vertex.
func (d AttributeDescriptor) Size() int {
	return d.Count * d.ByteSize
}

func (d AttributeDescriptor) validate() error {
	if d.Count < 1 || d.Count > 4 || d.ByteSize <= 0 || !d.Type.Valid() {
		return fmt.Errorf("%w: %q has %d x %d-byte %s components",
			ErrInvalidAttribute, d.Name, d.Count, d.ByteSize, d.Type)
	}
	return nil
}

// AttributeSet is an ordered list of attributes interleaved in one vertex
// buffer. The first descriptor occupies the lowest offset.
type AttributeSet struct {
	descs []AttributeDescriptor
}

// Attributes returns a set laid out in the given order.
func Attributes(descs ...AttributeDescriptor) AttributeSet {
	return AttributeSet{descs: append([]AttributeDescriptor(nil), descs...)}
}

// Len returns the number of attributes.
func (s AttributeSet) Len() int {
	return len(s.descs)
}

// Descriptors returns a copy of the descriptors in layout order.
func (s AttributeSet) Descriptors() []AttributeDescriptor {
	return append([]AttributeDescriptor(nil), s.descs...)
}

// Stride gives the byte distance between consecutive vertices.
func (s AttributeSet) Stride() int {
	stride := 0
	for _, d := range s.descs {
		stride += d.Size()
	}
	return stride
}

// Offsets returns the byte offset of every attribute in layout order.
func (s AttributeSet) Offsets() []int {
	offsets := make([]int, len(s.descs))
	offset := 0
	for i, d := range s.descs {
		offsets[i] = offset
		offset += d.Size()
	}
	return offsets
}

// Offset returns the byte offset of the named attribute.
func (s AttributeSet) Offset(name string) (int, bool) {
	offset := 0
	for _, d := range s.descs {
		if d.Name == name {
			return offset, true
		}
		offset += d.Size()
	}
	return 0, false
}

// Lookup returns the descriptor with the given name.
func (s AttributeSet) Lookup(name string) (AttributeDescriptor, bool) {
	for _, d := range s.descs {
		if d.Name == name {
			return d, true
		}
	}
	return AttributeDescriptor{}, false
}

// Apply enables and describes every attribute of s on the inputs of p with
// the same names, using the currently bound vertex array and array buffer.
//
// All names are resolved before any attribute is touched: if one is missing
// from p an *AttributeError is returned and no GL state has changed.
// Normalization is always off.
func (s AttributeSet) Apply(p *Program) error {
	if len(s.descs) == 0 {
		return ErrEmptyAttributeSet
	}
	if p == nil || p.name == 0 {
		return ErrDeleted
	}
	for _, d := range s.descs {
		if err := d.validate(); err != nil {
			return err
		}
	}

	slots := make([]Attribute, len(s.descs))
	for i, d := range s.descs {
		a, ok := p.AttribLocation(d.Name)
		if !ok {
			return &AttributeError{Name: d.Name}
		}
		slots[i] = a
	}

	stride := s.Stride()
	offset := 0
	for i, d := range s.descs {
		slots[i].Enable().Describe(d.Count, d.Type, false, stride, offset)
		offset += d.Size()
	}

	Logger().Debug("graphics: applied attribute layout",
		slog.Uint64("program", uint64(p.name)),
		slog.Int("attributes", len(s.descs)),
		slog.Int("stride", stride))
	return nil
}
