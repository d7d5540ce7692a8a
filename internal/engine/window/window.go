// Package window opens the plain SDL2 window used when the viewer runs
// without the ImGui overlay. The overlay backend creates its own window.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/robowalk/internal/logger"
)

func init() {
	// GL calls must stay on the thread that owns the context
	runtime.LockOSThread()
}

// Config describes the scene window.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// glAttribute is one SDL GL attribute set before the window exists.
type glAttribute struct {
	attr  sdl.GLattr
	value int
}

// contextAttributes request a 4.1 core context (the newest macOS offers)
// with a depth buffer for the scene pass.
var contextAttributes = []glAttribute{
	{sdl.GL_CONTEXT_MAJOR_VERSION, 4},
	{sdl.GL_CONTEXT_MINOR_VERSION, 1},
	{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
	{sdl.GL_DOUBLEBUFFER, 1},
	{sdl.GL_DEPTH_SIZE, 24},
}

// Window is an SDL2 window with a current OpenGL context.
type Window struct {
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	log       *zap.Logger
}

// New initializes SDL video, creates the window and makes its GL context
// current. On error nothing is left initialized.
func New(cfg Config) (*Window, error) {
	w := &Window{log: logger.Named("window")}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}
	for _, a := range contextAttributes {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("GL attribute %d: %w", a.attr, err)
		}
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height),
		windowFlags(cfg))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	if err := sdl.GLSetSwapInterval(swapInterval(cfg.VSync)); err != nil {
		w.log.Warn("swap interval not applied", zap.Bool("vsync", cfg.VSync), zap.Error(err))
	}

	fbW, fbH := w.DrawableSize()
	w.log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int32("drawable_width", fbW),
		zap.Int32("drawable_height", fbH),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

// windowFlags is resizable and high-DPI aware; fullscreen uses the desktop
// resolution so the drawable size matches the display.
func windowFlags(cfg Config) uint32 {
	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	return flags
}

func swapInterval(vsync bool) int {
	if vsync {
		return 1
	}
	return 0
}

// Close deletes the context, destroys the window and shuts SDL down.
func (w *Window) Close() {
	w.log.Info("closing window")

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}
	sdl.Quit()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// DrawableSize is the framebuffer size in pixels; on high-DPI displays it
// is larger than the window size.
func (w *Window) DrawableSize() (int32, int32) {
	return w.sdlWindow.GLGetDrawableSize()
}

// SetTitle replaces the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}
