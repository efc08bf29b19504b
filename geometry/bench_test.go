package geometry_test

import (
	"testing"

	"github.com/eliseydudin/graphics"
	"github.com/eliseydudin/graphics/geometry"
)

const builderQuads = 40 * 40

func BenchmarkBuilderTinyVerts(b *testing.B) {
	bdr := geometry.NewBuilder(graphics.Attributes(graphics.Vec[float32]("position", 3)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bdr.Clear()
		for q := 0; q < builderQuads; q++ {
			bdr.Vertex().Float32("position", 0, 0, 0)
			bdr.Vertex().Float32("position", 1, 0, 0)
			bdr.Vertex().Float32("position", 1, 1, 0)
			bdr.Vertex().Float32("position", 0, 1, 0)
			bdr.Indices(0, 1, 2, 2, 0, 3)
		}
	}
}

func BenchmarkBuilderFatVerts(b *testing.B) {
	bdr := geometry.NewBuilder(graphics.Attributes(
		graphics.Vec[float32]("position", 3),
		graphics.Vec[uint8]("color", 4),
		graphics.Vec[float32]("uv", 2),
	))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bdr.Clear()
		for q := 0; q < builderQuads; q++ {
			bdr.Vertex().Float32("position", 0, 0, 0).Uint8("color", 128, 0, 255, 255).Float32("uv", 0, 0)
			bdr.Vertex().Float32("position", 1, 0, 0)
			bdr.Vertex().Float32("position", 1, 1, 0)
			bdr.Vertex().Float32("position", 0, 1, 0)
			bdr.Indices(0, 1, 2, 2, 0, 3)
		}
	}
}
