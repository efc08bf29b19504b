package testgfx

// Sources for a program with position, color and uv inputs, a sampler and a
// time uniform. Convert with graphics.VertexShader / graphics.FragmentShader.
const (
	VertexSource = `#version 330 core
layout (location = 0) in vec2 position;
layout (location = 1) in vec3 color;
layout (location = 2) in vec2 uv;
out vec3 fragment_color;
out vec2 texture_coords;
void main() {
	gl_Position = vec4(position, 1.0, 1.0);
	fragment_color = color;
	texture_coords = uv;
}`

	FragmentSource = `#version 330 core
in vec3 fragment_color;
in vec2 texture_coords;
uniform sampler2D tex;
uniform float time;
out vec4 color;
void main() {
	color = vec4(fragment_color, 1.0) * texture(tex, texture_coords) * sin(time);
}`
)

// Inputs and Uniforms are the active locations of the program above, ready
// to assign to Backend.Attributes and Backend.Uniforms.
func Inputs() map[string]int32 {
	return map[string]int32{"position": 0, "color": 1, "uv": 2}
}

func Uniforms() map[string]int32 {
	return map[string]int32{"tex": 0, "time": 1}
}
