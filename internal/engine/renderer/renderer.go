// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/sableforge/driftwalk/internal/engine/terrain"
	"github.com/sableforge/driftwalk/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	shaderProgram uint32
	locMVP        int32
	locModel      int32
	locLightDir   int32
	locBaseColor  int32

	terrainVAO   uint32
	terrainVBO   uint32
	terrainEBO   uint32
	terrainCount int32

	boxVAO   uint32
	boxVBO   uint32
	boxCount int32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.53, 0.72, 0.92, 1.0) // Sky blue

	var err error
	r.shaderProgram, err = r.createShaderProgram()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	gl.UseProgram(r.shaderProgram)
	r.locMVP = gl.GetUniformLocation(r.shaderProgram, gl.Str("uMVP\x00"))
	r.locModel = gl.GetUniformLocation(r.shaderProgram, gl.Str("uModel\x00"))
	r.locLightDir = gl.GetUniformLocation(r.shaderProgram, gl.Str("uLightDir\x00"))
	r.locBaseColor = gl.GetUniformLocation(r.shaderProgram, gl.Str("uBaseColor\x00"))
	gl.UseProgram(0)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.terrainVAO != 0 {
		gl.DeleteVertexArrays(1, &r.terrainVAO)
	}
	if r.terrainVBO != 0 {
		gl.DeleteBuffers(1, &r.terrainVBO)
	}
	if r.terrainEBO != 0 {
		gl.DeleteBuffers(1, &r.terrainEBO)
	}
	if r.boxVAO != 0 {
		gl.DeleteVertexArrays(1, &r.boxVAO)
	}
	if r.boxVBO != 0 {
		gl.DeleteBuffers(1, &r.boxVBO)
	}
	if r.shaderProgram != 0 {
		gl.DeleteProgram(r.shaderProgram)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the current viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	// Nothing to do for now - batched draws would be flushed here
}

// UploadTerrain uploads the terrain mesh to the GPU. Call once at
// startup, after New.
func (r *Renderer) UploadTerrain(m *terrain.Mesh) {
	gl.GenVertexArrays(1, &r.terrainVAO)
	gl.BindVertexArray(r.terrainVAO)

	gl.GenBuffers(1, &r.terrainVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.terrainVBO)
	stride := int32(unsafe.Sizeof(terrain.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(stride),
		unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.terrainEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.terrainEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4,
		unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	r.terrainCount = int32(len(m.Indices))
	logger.Debug("terrain mesh uploaded",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("indices", len(m.Indices)),
	)
}

// DrawTerrain draws the uploaded terrain with the given view and
// projection matrices.
func (r *Renderer) DrawTerrain(view, proj mgl32.Mat4) {
	if r.terrainCount == 0 {
		return
	}
	r.drawIndexed(r.terrainVAO, r.terrainCount, mgl32.Ident4(), view, proj,
		mgl32.Vec3{0.35, 0.55, 0.3})
}

// UploadBox uploads a unit cube used for static obstacle rendering.
func (r *Renderer) UploadBox() {
	vertices := boxVertices()

	gl.GenVertexArrays(1, &r.boxVAO)
	gl.BindVertexArray(r.boxVAO)

	gl.GenBuffers(1, &r.boxVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.boxVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4,
		unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.boxCount = int32(len(vertices) / 6)
}

// DrawBox draws the unit cube scaled and translated to the given
// center and size.
func (r *Renderer) DrawBox(center, size mgl32.Vec3, view, proj mgl32.Mat4) {
	if r.boxCount == 0 {
		return
	}
	model := mgl32.Translate3D(center.X(), center.Y(), center.Z()).
		Mul4(mgl32.Scale3D(size.X(), size.Y(), size.Z()))

	gl.UseProgram(r.shaderProgram)
	mvp := proj.Mul4(view).Mul4(model)
	gl.UniformMatrix4fv(r.locMVP, 1, false, &mvp[0])
	gl.UniformMatrix4fv(r.locModel, 1, false, &model[0])
	light := mgl32.Vec3{0.4, 0.8, 0.45}.Normalize()
	gl.Uniform3f(r.locLightDir, light.X(), light.Y(), light.Z())
	gl.Uniform3f(r.locBaseColor, 0.6, 0.55, 0.5)

	gl.BindVertexArray(r.boxVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, r.boxCount)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (r *Renderer) drawIndexed(vao uint32, count int32, model, view, proj mgl32.Mat4, color mgl32.Vec3) {
	gl.UseProgram(r.shaderProgram)

	mvp := proj.Mul4(view).Mul4(model)
	gl.UniformMatrix4fv(r.locMVP, 1, false, &mvp[0])
	gl.UniformMatrix4fv(r.locModel, 1, false, &model[0])
	light := mgl32.Vec3{0.4, 0.8, 0.45}.Normalize()
	gl.Uniform3f(r.locLightDir, light.X(), light.Y(), light.Z())
	gl.Uniform3f(r.locBaseColor, color.X(), color.Y(), color.Z())

	gl.BindVertexArray(vao)
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// createShaderProgram creates the lit mesh shader program.
func (r *Renderer) createShaderProgram() (uint32, error) {
	// Vertex shader - transforms vertices and passes the world normal
	vertexShaderSource := `
		#version 410 core

		layout (location = 0) in vec3 aPos;
		layout (location = 1) in vec3 aNormal;

		uniform mat4 uMVP;
		uniform mat4 uModel;

		out vec3 worldNormal;

		void main() {
			gl_Position = uMVP * vec4(aPos, 1.0);
			worldNormal = mat3(uModel) * aNormal;
		}
	` + "\x00"

	// Fragment shader - single directional light, lambert term
	fragmentShaderSource := `
		#version 410 core

		in vec3 worldNormal;
		out vec4 FragColor;

		uniform vec3 uLightDir;
		uniform vec3 uBaseColor;

		void main() {
			float diffuse = max(dot(normalize(worldNormal), uLightDir), 0.0);
			vec3 color = uBaseColor * (0.35 + 0.65 * diffuse);
			FragColor = vec4(color, 1.0);
		}
	` + "\x00"

	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	// Link program
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %s", log)
	}

	logger.Debug("shader program created", zap.Uint32("program", program))
	return program, nil
}

// compileShader compiles a shader from source.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %s", log)
	}

	return shader, nil
}

// boxVertices returns a unit cube (1x1x1 centered at origin) as
// position+normal triangles, wound counter-clockwise facing out.
func boxVertices() []float32 {
	type face struct {
		n    [3]float32
		quad [4][3]float32
	}
	faces := []face{
		{n: [3]float32{0, 0, 1}, quad: [4][3]float32{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}},
		{n: [3]float32{0, 0, -1}, quad: [4][3]float32{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}},
		{n: [3]float32{1, 0, 0}, quad: [4][3]float32{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}}},
		{n: [3]float32{-1, 0, 0}, quad: [4][3]float32{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}},
		{n: [3]float32{0, 1, 0}, quad: [4][3]float32{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}}},
		{n: [3]float32{0, -1, 0}, quad: [4][3]float32{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}},
	}

	out := make([]float32, 0, 36*6)
	emit := func(p, n [3]float32) {
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	for _, f := range faces {
		emit(f.quad[0], f.n)
		emit(f.quad[1], f.n)
		emit(f.quad[2], f.n)
		emit(f.quad[0], f.n)
		emit(f.quad[2], f.n)
		emit(f.quad[3], f.n)
	}
	return out
}
