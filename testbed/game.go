package testbed

import (
	"fmt"

	"github.com/spaghettifunk/flycam/engine"
	"github.com/spaghettifunk/flycam/engine/camera"
	"github.com/spaghettifunk/flycam/engine/core"
	"github.com/spaghettifunk/flycam/testbed/replay"
)

type TestGame struct {
	*engine.Game
}

type gameState struct {
	width  uint32
	height uint32

	listeners []uint32
}

func NewTestGame() *TestGame {
	tg := &TestGame{
		Game: &engine.Game{
			State: &gameState{},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg
}

func (g *TestGame) Initialize() error {
	core.LogDebug("TestGame Initialize fn....")

	if g.Cameras == nil {
		return fmt.Errorf("the engine is not yet initialized with the camera system")
	}

	id, err := g.Cameras.Spawn("world", replay.SpawnTransform())
	if err != nil {
		return err
	}
	g.ActiveCamera = id

	state := g.State.(*gameState)
	state.listeners = append(state.listeners,
		g.Events.Register(core.EVENT_CODE_CAMERA_FOCUSED, g.onCameraMode),
		g.Events.Register(core.EVENT_CODE_CAMERA_RELEASED, g.onCameraMode),
	)
	return nil
}

func (g *TestGame) Update(deltaTime float64) error {
	if !g.Actions.JustPressed(core.ACTION_PRIMARY) {
		return nil
	}
	camera, err := g.Cameras.Get(g.ActiveCamera)
	if err != nil {
		return err
	}
	core.LogInfo("%s", replay.DescribePose(camera.Pose()))
	return nil
}

func (g *TestGame) OnResize(width uint32, height uint32) error {
	state := g.State.(*gameState)
	state.width = width
	state.height = height
	return nil
}

func (g *TestGame) Shutdown() error {
	state := g.State.(*gameState)
	codes := []core.EventCode{core.EVENT_CODE_CAMERA_FOCUSED, core.EVENT_CODE_CAMERA_RELEASED}
	for i, id := range state.listeners {
		g.Events.Unregister(codes[i%len(codes)], id)
	}
	state.listeners = nil
	return nil
}

func (g *TestGame) onCameraMode(context core.EventContext) bool {
	ce, ok := context.Data.(*camera.CameraEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}
	if context.Type == core.EVENT_CODE_CAMERA_FOCUSED {
		core.LogInfo("Camera '%s' is orbiting its pivot.", ce.Name)
	} else {
		core.LogInfo("Camera '%s' is flying free.", ce.Name)
	}
	return false
}
