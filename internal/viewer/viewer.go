// Package viewer runs the robot scene: it owns the window, the GPU
// resources and the per-frame loop.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/robowalk/internal/config"
	"github.com/Faultbox/robowalk/internal/engine/debug"
	"github.com/Faultbox/robowalk/internal/engine/framebuffer"
	"github.com/Faultbox/robowalk/internal/engine/hotreload"
	"github.com/Faultbox/robowalk/internal/engine/input"
	"github.com/Faultbox/robowalk/internal/engine/input/sdlinput"
	"github.com/Faultbox/robowalk/internal/engine/model"
	"github.com/Faultbox/robowalk/internal/engine/renderer"
	"github.com/Faultbox/robowalk/internal/engine/scene"
	"github.com/Faultbox/robowalk/internal/engine/scene/shaders"
	"github.com/Faultbox/robowalk/internal/engine/shader"
	"github.com/Faultbox/robowalk/internal/engine/texture"
	"github.com/Faultbox/robowalk/internal/engine/ui"
	"github.com/Faultbox/robowalk/internal/engine/window"
	"github.com/Faultbox/robowalk/internal/logger"
	"github.com/Faultbox/robowalk/internal/viewer/control"
)

const windowTitle = "Robowalk"

var (
	modelSources = shader.Sources{Vertex: shaders.ModelVertexFile, Fragment: shaders.ModelFragmentFile}
	skySources   = shader.Sources{Vertex: shaders.SkyboxVertexFile, Fragment: shaders.SkyboxFragmentFile}
)

// Viewer is the main viewer instance.
type Viewer struct {
	cfg    *config.Config
	layout scene.Layout
	state  *control.State
	log    *zap.Logger

	// Exactly one of overlay and window is set.
	overlay *ui.Backend
	window  *window.Window
	input   *sdlinput.Input

	device     *renderer.Renderer
	target     *framebuffer.Framebuffer
	library    *model.Library
	sky        *renderer.Skybox
	program    *shader.Program
	skyProgram *shader.Program
	scene      *scene.Renderer

	watcher  *hotreload.Watcher
	reloader *hotreload.Reloader

	shots       *debug.ScreenshotCapture
	shotPending bool

	fps     *control.FPSCounter
	running bool
}

// New creates the window, loads the layout's assets and compiles the
// shaders. Any failure here is fatal; missing models, textures and cube
// faces are not. clock drives the animation and should be started when the
// process starts, so load time counts towards t.
func New(cfg *config.Config, clock *scene.Clock) (v *Viewer, err error) {
	layout, err := scene.LayoutByName(cfg.Scene.Layout)
	if err != nil {
		return nil, err
	}
	composer, err := scene.NewComposer(layout, scene.Animation{
		WalkVelocity: cfg.Animation.WalkVelocity,
		ArmVelocity:  cfg.Animation.ArmVelocity,
	})
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", layout.Name, err)
	}

	v = &Viewer{
		cfg:    cfg,
		layout: layout,
		log:    logger.Named("viewer"),
		shots:  debug.NewScreenshotCapture(cfg.Screenshot.Dir, "robowalk"),
	}
	defer func() {
		if err != nil {
			v.Close()
			v = nil
		}
	}()

	v.log.Info("initializing viewer",
		zap.String("layout", layout.Name),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("overlay", cfg.Overlay.Enabled),
	)

	if err = v.openWindow(); err != nil {
		return v, err
	}

	// Renderer AFTER window, since the OpenGL context must exist
	fbW, fbH := v.drawableSize()
	v.device, err = renderer.New(renderer.Config{Width: int(fbW), Height: int(fbH)})
	if err != nil {
		return v, fmt.Errorf("failed to create renderer: %w", err)
	}
	v.target, err = framebuffer.New(fbW, fbH)
	if err != nil {
		return v, err
	}

	v.library = model.NewLibrary(cfg.Scene.AssetDir)
	models := layout.Models()
	loaded := v.library.Load(models)
	v.log.Info("models loaded", zap.Int("loaded", loaded), zap.Int("requested", len(models)))

	v.sky = renderer.NewSkybox(texture.LoadCubeFaces(cfg.Scene.AssetDir, layout.Skybox))

	loader := shader.Loader{Dir: cfg.Scene.ShaderDir, Embedded: shaders.FS}
	if v.program, err = loader.Build("model", modelSources); err != nil {
		return v, fmt.Errorf("model shader: %w", err)
	}
	if v.skyProgram, err = loader.Build("skybox", skySources); err != nil {
		return v, fmt.Errorf("skybox shader: %w", err)
	}

	v.scene, err = scene.NewRenderer(scene.RendererConfig{
		Composer:   composer,
		Models:     v.library,
		Device:     v.device,
		Program:    v.program,
		SkyProgram: v.skyProgram,
		Sky:        v.sky,
	})
	if err != nil {
		return v, err
	}

	if cfg.Scene.ShaderDir != "" {
		if err = v.watchShaders(loader); err != nil {
			return v, err
		}
	}

	v.state = control.NewState(cfg, layout, clock)
	v.setPointerCaptured(!v.state.Toggle.Visible)

	v.log.Info("viewer initialized successfully")
	return v, nil
}

func (v *Viewer) openWindow() error {
	g := v.cfg.Graphics
	if v.cfg.Overlay.Enabled {
		b, err := ui.NewBackend(windowTitle, int32(g.Width), int32(g.Height))
		if err != nil {
			return fmt.Errorf("failed to create overlay: %w", err)
		}
		v.overlay = b
		return nil
	}

	w, err := window.New(window.Config{
		Title:      windowTitle,
		Width:      g.Width,
		Height:     g.Height,
		Fullscreen: g.Fullscreen,
		VSync:      g.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	v.window = w
	v.input = sdlinput.New()
	return nil
}

// watchShaders rebuilds a program when its sources change on disk. A
// program that fails to build is logged and the running one kept.
func (v *Viewer) watchShaders(loader shader.Loader) error {
	w, err := hotreload.NewWatcher(loader.Dir)
	if err != nil {
		return fmt.Errorf("shader hot reload: %w", err)
	}
	v.watcher = w
	v.reloader = hotreload.NewReloader(w, logger.Named("hotreload"))

	v.reloader.Add(hotreload.Target{
		Name:  "model",
		Files: []string{modelSources.Vertex, modelSources.Fragment},
		Rebuild: func() error {
			p, err := loader.Build("model", modelSources)
			if err != nil {
				return err
			}
			v.program.Delete()
			v.program = p
			v.scene.SetPrograms(p, nil)
			return nil
		},
	})
	v.reloader.Add(hotreload.Target{
		Name:  "skybox",
		Files: []string{skySources.Vertex, skySources.Fragment},
		Rebuild: func() error {
			p, err := loader.Build("skybox", skySources)
			if err != nil {
				return err
			}
			v.skyProgram.Delete()
			v.skyProgram = p
			v.scene.SetPrograms(nil, p)
			return nil
		},
	})
	return nil
}

// Run starts the main loop and returns when the window closes or Escape
// is pressed with the overlay hidden.
func (v *Viewer) Run() error {
	v.running = true
	v.fps = control.NewFPSCounter(time.Now())
	v.log.Info("starting render loop")

	if v.overlay != nil {
		v.overlay.Run(v.frame)
		return nil
	}

	for v.running {
		v.frame()
	}
	return nil
}

// frame runs one iteration: frame boundary work, input, the scene pass,
// then the overlay or the blit.
func (v *Viewer) frame() {
	if !v.running {
		return
	}

	dt := v.state.Timer.Tick()
	t := v.state.Clock.Elapsed()

	if v.reloader != nil {
		v.reloader.Apply()
	}
	if v.shotPending {
		v.captureScreenshot()
	}

	a := v.state.HandleInput(v.pollInput(), dt)
	if a.CaptureChanged {
		v.setPointerCaptured(a.Captured)
	}
	if a.Resized {
		v.resize()
	}
	if a.Screenshot {
		v.shotPending = true
	}
	if a.Quit {
		v.stop()
		return
	}

	v.target.Bind()
	v.target.Clear(renderer.ClearColor)
	v.scene.Render(t, v.state.Params, v.state.Camera, v.target.Aspect())
	v.target.Unbind()

	v.present()

	if v.fps.Frame(time.Now()) {
		v.log.Debug("fps",
			zap.Float64("fps", v.fps.FPS()),
			zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
		if v.cfg.Graphics.ShowFPS {
			v.setTitle(fmt.Sprintf("%s - %.0f FPS", windowTitle, v.fps.FPS()))
		}
	}
}

func (v *Viewer) setTitle(title string) {
	if v.overlay != nil {
		v.overlay.SetWindowTitle(title)
		return
	}
	v.window.SetTitle(title)
}

func (v *Viewer) pollInput() input.State {
	if v.overlay != nil {
		return v.overlay.Input()
	}
	return v.input.Update()
}

func (v *Viewer) present() {
	if v.overlay != nil {
		w, h := v.overlay.WindowSize()
		ui.DrawSceneTexture(0, 0, w, h, v.target.ColorTexture())
		ui.DrawPanels(v.state.Panels, v.state.Toggle.Visible)
		if v.state.Toggle.Visible && v.cfg.Graphics.ShowFPS {
			ui.DrawStatus(v.fps.FPS(), v.layout.Name, w)
		}
		// the backend renders ImGui and swaps
		return
	}

	w, h := v.window.DrawableSize()
	v.target.BlitToScreen(w, h)
	v.window.SwapBuffers()
}

func (v *Viewer) drawableSize() (int32, int32) {
	if v.overlay != nil {
		return v.overlay.FramebufferSize()
	}
	return v.window.DrawableSize()
}

// resize keeps the viewport, the scene target and so the projection
// aspect in step with the window.
func (v *Viewer) resize() {
	w, h := v.drawableSize()
	if v.target.Resize(w, h) {
		v.device.Resize(int(w), int(h))
	}
}

func (v *Viewer) setPointerCaptured(captured bool) {
	if v.overlay != nil {
		v.overlay.SetPointerCaptured(captured)
	} else {
		sdlinput.SetPointerCaptured(captured)
	}
	v.log.Debug("pointer capture", zap.Bool("captured", captured))
}

func (v *Viewer) captureScreenshot() {
	v.shotPending = false
	w, h := v.target.Size()
	if _, err := v.shots.CaptureFromPixels(v.target.ReadPixels(), int(w), int(h)); err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
	}
}

func (v *Viewer) stop() {
	v.running = false
	if v.overlay != nil {
		v.overlay.Close()
	}
}

// Close cleans up viewer resources. It is safe on a partly built Viewer.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.watcher != nil {
		if err := v.watcher.Close(); err != nil {
			v.log.Warn("closing shader watcher", zap.Error(err))
		}
	}
	if v.program != nil {
		v.program.Delete()
	}
	if v.skyProgram != nil {
		v.skyProgram.Delete()
	}
	if v.sky != nil {
		v.sky.Delete()
	}
	if v.library != nil {
		v.library.Close()
	}
	if v.target != nil {
		v.target.Destroy()
	}
	if v.device != nil {
		v.device.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
