// Package glenum holds the raw OpenGL enum values the graphics package maps
// its closed enums onto. Values match the Khronos registry.
package glenum

const (
	False = 0
	True  = 1

	NoError          = 0
	InvalidEnum      = 0x0500
	InvalidValue     = 0x0501
	InvalidOperation = 0x0502
	StackOverflow    = 0x0503
	StackUnderflow   = 0x0504
	OutOfMemory      = 0x0505

	InvalidFramebufferOperation = 0x0506

	// Data types
	Byte          = 0x1400
	UnsignedByte  = 0x1401
	Short         = 0x1402
	UnsignedShort = 0x1403
	Int           = 0x1404
	UnsignedInt   = 0x1405
	Float         = 0x1406
	Double        = 0x140A
	HalfFloat     = 0x140B
	Fixed         = 0x140C

	// Primitives
	Points        = 0x0000
	Lines         = 0x0001
	LineLoop      = 0x0002
	LineStrip     = 0x0003
	Triangles     = 0x0004
	TriangleStrip = 0x0005
	TriangleFan   = 0x0006

	// Clear bits
	DepthBufferBit   = 0x00000100
	StencilBufferBit = 0x00000400
	ColorBufferBit   = 0x00004000

	// Buffer targets
	ArrayBuffer             = 0x8892
	ElementArrayBuffer      = 0x8893
	PixelPackBuffer         = 0x88EB
	PixelUnpackBuffer       = 0x88EC
	UniformBuffer           = 0x8A11
	TextureBuffer           = 0x8C2A
	TransformFeedbackBuffer = 0x8C8E
	CopyReadBuffer          = 0x8F36
	CopyWriteBuffer         = 0x8F37
	DrawIndirectBuffer      = 0x8F3F
	ShaderStorageBuffer     = 0x90D2
	DispatchIndirectBuffer  = 0x90EE
	QueryBuffer             = 0x9192
	AtomicCounterBuffer     = 0x92C0

	// Buffer usages
	StreamDraw  = 0x88E0
	StreamRead  = 0x88E1
	StreamCopy  = 0x88E2
	StaticDraw  = 0x88E4
	StaticRead  = 0x88E5
	StaticCopy  = 0x88E6
	DynamicDraw = 0x88E8
	DynamicRead = 0x88E9
	DynamicCopy = 0x88EA

	// Shaders
	FragmentShader = 0x8B30
	VertexShader   = 0x8B31
	CompileStatus  = 0x8B81
	LinkStatus     = 0x8B82
	InfoLogLength  = 0x8B84

	// Textures
	Texture2D            = 0x0DE1
	Texture0             = 0x84C0
	TextureMagFilter     = 0x2800
	TextureMinFilter     = 0x2801
	TextureWrapS         = 0x2802
	TextureWrapT         = 0x2803
	Nearest              = 0x2600
	Linear               = 0x2601
	LinearMipmapLinear   = 0x2703
	Repeat               = 0x2901
	ClampToEdge          = 0x812F
	UnpackAlignment      = 0x0CF5
	Red                  = 0x1903
	RGBA                 = 0x1908
	R8                   = 0x8229
	RGBA8                = 0x8058
	MaxCombinedTexUnits  = 0x8B4D
	MaxTextureImageUnits = 0x8872

	// Capabilities and depth functions
	DepthTest = 0x0B71
	Blend     = 0x0BE2
	CullFace  = 0x0B44
	Never     = 0x0200
	Less      = 0x0201
	Equal     = 0x0202
	Lequal    = 0x0203
	Greater   = 0x0204
	Notequal  = 0x0205
	Gequal    = 0x0206
	Always    = 0x0207
)
