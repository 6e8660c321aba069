package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/spaghettifunk/flycam/engine/camera"
	"github.com/spaghettifunk/flycam/engine/config"
	"github.com/spaghettifunk/flycam/engine/core"
	"github.com/spaghettifunk/flycam/engine/platform"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

const (
	maxCameraCount = 8
	// Motion and scroll events kept per frame before they get folded together.
	inputQueueCapacity = 64
)

type Engine struct {
	currentStage Stage
	gameInstance *Game
	isRunning    atomic.Bool
	isSuspended  bool
	platform     *platform.Platform
	watcher      *config.Watcher
	events       *core.EventBus
	input        *core.InputState
	actions      *core.ActionState
	bindings     core.Bindings
	cameras      *camera.CameraSystem
	metrics      *core.FrameMetrics
	width        uint32
	height       uint32
	clock        *core.Clock
}

/**
 * @brief Creates the engine for the given game. When configPath is not empty
 * the configuration is loaded from it and reloaded whenever it changes.
 */
func New(g *Game, configPath string) (*Engine, error) {
	cfg := config.Default()
	var watcher *config.Watcher
	if configPath != "" {
		c, err := config.Load(configPath)
		if err != nil {
			core.LogError("%s", err)
			return nil, err
		}
		cfg = c

		watcher, err = config.NewWatcher(configPath)
		if err != nil {
			core.LogError("%s", err)
			return nil, err
		}
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	core.SetLogLevel(level)

	bindings, err := cfg.ActionBindings()
	if err != nil {
		return nil, err
	}

	events := core.NewEventBus()
	cameras, err := camera.NewCameraSystem(&camera.CameraSystemConfig{
		MaxCameraCount: maxCameraCount,
		Params:         cfg.Camera,
	}, events)
	if err != nil {
		return nil, err
	}
	input := core.NewInputState(events, inputQueueCapacity)

	g.Config = cfg
	g.Cameras = cameras
	g.Events = events
	g.Actions = core.NewActionState()

	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		platform:     platform.New(input, events),
		watcher:      watcher,
		events:       events,
		input:        input,
		actions:      g.Actions,
		bindings:     bindings,
		cameras:      cameras,
		metrics:      core.NewFrameMetrics(),
		width:        cfg.Application.StartWidth,
		height:       cfg.Application.StartHeight,
		clock:        core.NewClock(),
	}, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing

	// register some events
	e.events.Register(core.EVENT_CODE_APPLICATION_QUIT, e.onEvent)
	e.events.Register(core.EVENT_CODE_KEY_PRESSED, e.onKey)
	e.events.Register(core.EVENT_CODE_RESIZED, e.onResized)

	app := e.gameInstance.Config.Application
	if err := e.platform.Startup(app.Name, app.StartPosX, app.StartPosY, app.StartWidth, app.StartHeight); err != nil {
		return err
	}

	if e.watcher != nil {
		e.watcher.Start()
	}

	if err := e.gameInstance.FnInitialize(); err != nil {
		return err
	}

	if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
		return err
	}
	e.currentStage = EngineStageInitialized
	return nil
}

func (e *Engine) Run() error {
	e.currentStage = EngineStageRunning
	e.isRunning.Store(true)

	e.clock.Start()

	for e.isRunning.Load() {
		if !e.platform.PumpMessages() {
			e.isRunning.Store(false)
		}

		if e.isSuspended {
			e.platform.Sleep(10)
			e.clock.Resync()
			continue
		}

		var delta float64 = e.clock.Tick()
		var frameStartTime float64 = e.platform.GetAbsoluteTime()

		e.applyConfigReloads()

		e.actions.Update(e.bindings.Pressed(e.input))
		if err := e.updateActiveCamera(float32(delta)); err != nil {
			core.LogError("Camera update failed, shutting down.")
			e.isRunning.Store(false)
			return err
		}

		if err := e.gameInstance.FnUpdate(delta); err != nil {
			core.LogError("Game update failed, shutting down.")
			e.isRunning.Store(false)
			return err
		}

		// Figure out how long the frame took.
		var frameEndTime float64 = e.platform.GetAbsoluteTime()
		e.metrics.Update(frameEndTime - frameStartTime)

		// NOTE: Input update/state copying should always be handled
		// after any input should be recorded; I.E. before this line.
		// As a safety, input is the last thing to be updated before
		// this frame ends.
		e.input.Update()
	}

	return nil
}

// Stop asks the frame loop to exit after the current frame. It is safe to
// call from any goroutine.
func (e *Engine) Stop() {
	e.isRunning.Store(false)
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown

	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			core.LogError("%s", err)
		}
	}
	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil {
			return err
		}
	}
	if err := e.cameras.Shutdown(); err != nil {
		return err
	}
	e.events.Shutdown()
	if err := e.platform.Shutdown(); err != nil {
		return err
	}
	fps, frameTime := e.metrics.Frame()
	core.LogInfo("Shut down at %.1f fps (%.3f ms per frame).", fps, frameTime)
	return nil
}

func (e *Engine) updateActiveCamera(elapsed float32) error {
	active := e.gameInstance.ActiveCamera
	motion := e.input.DrainMotion()
	scroll := e.input.DrainScroll()
	if active == uuid.Nil {
		return nil
	}
	frame := &camera.Frame{
		Elapsed: elapsed,
		Actions: e.actions,
		Motion:  motion,
		Scroll:  scroll,
		Window:  e.platform,
	}
	if err := e.cameras.Update(active, frame); err != nil {
		return fmt.Errorf("update camera: %w", err)
	}
	return nil
}

// applyConfigReloads takes the latest configuration published by the
// watcher, if any. New values apply from this frame on.
func (e *Engine) applyConfigReloads() {
	if e.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-e.watcher.Updates():
		if !ok {
			return
		}
		bindings, err := cfg.ActionBindings()
		if err != nil {
			core.LogError("ignoring reloaded config: %s", err)
			return
		}
		if level, err := cfg.Level(); err == nil {
			core.SetLogLevel(level)
		}
		e.bindings = bindings
		e.cameras.SetParams(cfg.Camera)
		e.gameInstance.Config = cfg
		core.LogInfo("Configuration reloaded.")

		e.events.Fire(core.EventContext{
			Type:   core.EVENT_CODE_CONFIG_RELOADED,
			Sender: e,
			Data:   cfg,
		})
	default:
	}
}

func (e *Engine) onEvent(context core.EventContext) bool {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning.Store(false)
		return true
	}
	return false
}

func (e *Engine) onKey(context core.EventContext) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	if ke.KeyCode == core.KEY_ESCAPE {
		// NOTE: Technically firing an event to itself, but there may be other listeners.
		e.events.Fire(core.EventContext{
			Type: core.EVENT_CODE_APPLICATION_QUIT,
		})
		// Block anything else from processing this.
		return true
	}
	return false
}

func (e *Engine) onResized(context core.EventContext) bool {
	se, ok := context.Data.(*core.SystemEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	width := se.WindowWidth
	height := se.WindowHeight

	// Check if different. If so, trigger a resize event.
	if width == e.width && height == e.height {
		return false
	}
	e.width = width
	e.height = height

	core.LogDebug("Window resize: %d, %d", width, height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return true
	}
	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
	}
	if err := e.gameInstance.FnOnResize(width, height); err != nil {
		core.LogError("%s", err)
	}
	return false
}
