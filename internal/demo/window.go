package demo

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/eliseydudin/graphics"
	"github.com/eliseydudin/graphics/gl41"
)

func init() {
	// GL calls must stay on the thread that made the context current.
	runtime.LockOSThread()
}

// Window is a glfw window whose GL context is current on the main thread.
type Window struct {
	*glfw.Window
	Context *graphics.Context
}

// Open initializes glfw, creates the window described by cfg and wraps its
// context. Call Close when done.
func Open(cfg Config) (*Window, error) {
	if cfg.Debug {
		graphics.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("demo: init glfw: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GL[0])
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GL[1])
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("demo: create window: %w", err)
	}
	w.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	}

	b, err := gl41.NewWithLoader(glfw.GetProcAddress)
	if err != nil {
		w.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("demo: load GL: %w", err)
	}
	slog.Info("opened window", "title", cfg.Title, "gl", b.Version())

	win := &Window{Window: w, Context: graphics.NewContext(b)}
	win.Context.SetClearColor(cfg.Clear())
	win.fitViewport()
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		win.Context.Viewport(0, 0, width, height)
	})
	return win, nil
}

// fitViewport uses framebuffer pixels so HiDPI displays are covered.
func (w *Window) fitViewport() {
	width, height := w.GetFramebufferSize()
	w.Context.Viewport(0, 0, width, height)
}

// Run calls frame until the window is closed or frame returns an error.
func (w *Window) Run(frame func(t float64) error) error {
	for !w.ShouldClose() {
		if err := frame(glfw.GetTime()); err != nil {
			return err
		}
		if err := w.Context.Err(); err != nil {
			return err
		}
		w.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

func (w *Window) Close() {
	w.Context.ReleaseGarbage()
	w.Destroy()
	glfw.Terminate()
}
