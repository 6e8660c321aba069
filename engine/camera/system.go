package camera

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spaghettifunk/flycam/engine/core"
	"github.com/spaghettifunk/flycam/engine/math"
)

/** @brief The camera system configuration. */
type CameraSystemConfig struct {
	/** @brief The maximum number of cameras that can be managed by the system. */
	MaxCameraCount uint16
	/** @brief The movement parameters shared by every camera. */
	Params Params
}

// CameraEvent is the data of EVENT_CODE_CAMERA_FOCUSED and EVENT_CODE_CAMERA_RELEASED.
type CameraEvent struct {
	ID   uuid.UUID
	Name string
	Pose Pose
}

// CameraSystem owns every flying camera and addresses them by handle.
type CameraSystem struct {
	Config  *CameraSystemConfig
	params  Params
	lookup  map[string]uuid.UUID
	cameras map[uuid.UUID]*FlyingCamera
	events  *core.EventBus
}

/**
 * @brief Creates the camera system. events may be nil, in which case no
 * mode change events are fired.
 */
func NewCameraSystem(config *CameraSystemConfig, events *core.EventBus) (*CameraSystem, error) {
	if config.MaxCameraCount == 0 {
		err := fmt.Errorf("func NewCameraSystem - config.MaxCameraCount must be > 0")
		core.LogError("%s", err)
		return nil, err
	}
	return &CameraSystem{
		Config:  config,
		params:  config.Params,
		lookup:  make(map[string]uuid.UUID, config.MaxCameraCount),
		cameras: make(map[uuid.UUID]*FlyingCamera, config.MaxCameraCount),
		events:  events,
	}, nil
}

func (cs *CameraSystem) Shutdown() error {
	for id := range cs.cameras {
		delete(cs.cameras, id)
	}
	for name := range cs.lookup {
		delete(cs.lookup, name)
	}
	return nil
}

// Params returns the parameters used for the next update.
func (cs *CameraSystem) Params() Params {
	return cs.params
}

// SetParams replaces the movement parameters. Call it between frames.
func (cs *CameraSystem) SetParams(params Params) {
	cs.params = params
}

/**
 * @brief Spawns a new camera rig in free flight at the given transform.
 *
 * @param name A unique name for the camera.
 * @param initial The starting camera transform; the pivot starts at identity.
 * @return The handle of the new camera.
 */
func (cs *CameraSystem) Spawn(name string, initial math.Transform) (uuid.UUID, error) {
	if _, ok := cs.lookup[name]; ok {
		err := fmt.Errorf("spawn camera '%s': %w", name, core.ErrCameraExists)
		core.LogError("%s", err)
		return uuid.Nil, err
	}
	if len(cs.cameras) >= int(cs.Config.MaxCameraCount) {
		err := fmt.Errorf("spawn camera '%s': %w (max=%d). Adjust camera system config to allow more", name, core.ErrCameraCapacity, cs.Config.MaxCameraCount)
		core.LogError("%s", err)
		return uuid.Nil, err
	}

	core.LogDebug("Creating new camera named '%s'...", name)
	camera := NewFlyingCamera(name, initial, cs.params)
	cs.cameras[camera.ID] = camera
	cs.lookup[name] = camera.ID
	return camera.ID, nil
}

/**
 * @brief Destroys the camera with the given handle.
 */
func (cs *CameraSystem) Despawn(id uuid.UUID) error {
	camera, err := cs.Get(id)
	if err != nil {
		return err
	}
	delete(cs.cameras, id)
	delete(cs.lookup, camera.Name)
	return nil
}

func (cs *CameraSystem) Get(id uuid.UUID) (*FlyingCamera, error) {
	camera, ok := cs.cameras[id]
	if !ok {
		err := fmt.Errorf("camera %s: %w", id, core.ErrUnknownCamera)
		core.LogError("%s", err)
		return nil, err
	}
	return camera, nil
}

// Lookup finds a camera handle by name.
func (cs *CameraSystem) Lookup(name string) (uuid.UUID, bool) {
	id, ok := cs.lookup[name]
	return id, ok
}

func (cs *CameraSystem) Count() int {
	return len(cs.cameras)
}

/**
 * @brief Runs one frame for a camera: cursor lock, speed update, then
 * movement, in that order. Fires a camera event when the mode changes.
 */
func (cs *CameraSystem) Update(id uuid.UUID, frame *Frame) error {
	camera, err := cs.Get(id)
	if err != nil {
		return err
	}
	if frame == nil || frame.Actions == nil {
		err := fmt.Errorf("update camera '%s': %w", camera.Name, core.ErrMissingActions)
		core.LogError("%s", err)
		return err
	}

	camera.LockCursor(frame)
	camera.AdjustSpeed(cs.params, frame)
	if camera.Move(cs.params, frame) {
		cs.fireModeChange(camera)
	}
	return nil
}

func (cs *CameraSystem) fireModeChange(camera *FlyingCamera) {
	code := core.EVENT_CODE_CAMERA_RELEASED
	if camera.Focused() {
		code = core.EVENT_CODE_CAMERA_FOCUSED
	}
	core.LogDebug("camera '%s' focused=%t", camera.Name, camera.Focused())
	if cs.events == nil {
		return
	}
	cs.events.Fire(core.EventContext{
		Type:   code,
		Sender: cs,
		Data: &CameraEvent{
			ID:   camera.ID,
			Name: camera.Name,
			Pose: camera.Pose(),
		},
	})
}
