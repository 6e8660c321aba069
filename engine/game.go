package engine

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/flycam/engine/camera"
	"github.com/spaghettifunk/flycam/engine/config"
	"github.com/spaghettifunk/flycam/engine/core"
)

// Game is the application driven by the engine. The engine fills in the
// systems before calling FnInitialize.
type Game struct {
	Config  *config.Config
	Cameras *camera.CameraSystem
	Actions *core.ActionState
	Events  *core.EventBus
	// ActiveCamera is updated from input every frame. uuid.Nil disables it.
	ActiveCamera uuid.UUID
	State        interface{}
	FnInitialize Initialize
	FnUpdate     Update
	FnOnResize   OnResize
	FnShutdown   Shutdown
}

type Initialize func() error
type Update func(deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
