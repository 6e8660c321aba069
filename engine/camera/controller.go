package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/spaghettifunk/flycam/engine/core"
	"github.com/spaghettifunk/flycam/engine/math"
)

// Actions answers queries about the named camera actions for the current frame.
type Actions interface {
	Pressed(action core.Action) bool
	JustPressed(action core.Action) bool
	JustReleased(action core.Action) bool
}

// Window is the part of the host window the controller needs.
type Window interface {
	// Size returns the window size in pixels.
	Size() mgl32.Vec2
	// CursorPosition returns the cursor position, if the cursor is over the window.
	CursorPosition() (mgl32.Vec2, bool)
	SetCursorPosition(position mgl32.Vec2)
	SetCursorLocked(locked bool)
}

// Frame is everything a camera consumes in one frame.
type Frame struct {
	// Elapsed is the time since the previous frame, in seconds.
	Elapsed float32
	Actions Actions
	// Motion holds every pointer delta received this frame, in pixels.
	Motion []mgl32.Vec2
	// Scroll holds every scroll delta received this frame.
	Scroll []float32
	// Window may be nil, in which case the cursor is left alone and no
	// rotation is applied.
	Window Window
}

// FlyingCamera is a camera rig: a camera node under an invisible pivot node.
type FlyingCamera struct {
	ID    uuid.UUID
	Name  string
	state State
	pose  Pose
}

func NewFlyingCamera(name string, initial math.Transform, params Params) *FlyingCamera {
	return &FlyingCamera{
		ID:    uuid.New(),
		Name:  name,
		state: NewState(params),
		pose:  FreePose{Camera: initial},
	}
}

func (fc *FlyingCamera) State() State {
	return fc.state
}

func (fc *FlyingCamera) Pose() Pose {
	return fc.pose
}

func (fc *FlyingCamera) Focused() bool {
	return fc.pose.Focused()
}

// Reset puts the camera back in free flight at the given transform.
func (fc *FlyingCamera) Reset(initial math.Transform, params Params) {
	fc.state = NewState(params)
	fc.pose = FreePose{Camera: initial}
}

// LockCursor pins the cursor in place while the secondary action is held.
func (fc *FlyingCamera) LockCursor(frame *Frame) {
	window := frame.Window
	if window == nil {
		return
	}
	if frame.Actions.JustPressed(core.ACTION_SECONDARY) {
		window.SetCursorLocked(true)
		if position, ok := window.CursorPosition(); ok {
			fc.state.CursorAnchor = position
		}
	}
	if frame.Actions.JustReleased(core.ACTION_SECONDARY) {
		window.SetCursorLocked(false)
	}
	if frame.Actions.Pressed(core.ACTION_SECONDARY) {
		window.SetCursorPosition(fc.state.CursorAnchor)
	}
}

// AdjustSpeed updates the speed state for this frame. It must run before Move.
func (fc *FlyingCamera) AdjustSpeed(params Params, frame *Frame) {
	fc.state.AdjustSpeed(params, frame.Actions, frame.Elapsed)
}

// Move applies one frame of input: the focus handoff first, then rotation,
// zoom and translation in whichever mode the camera ends up in. It reports
// whether the camera switched mode.
func (fc *FlyingCamera) Move(params Params, frame *Frame) bool {
	changed := false
	switch pose := fc.pose.(type) {
	case FocusedPose:
		if anyDirectional(frame.Actions) {
			fc.pose = pose.Release()
			changed = true
		}
	case FreePose:
		if frame.Actions.JustPressed(core.ACTION_FOCUS) {
			fc.pose = pose.Focus()
			changed = true
		}
	}

	var rotation mgl32.Vec2
	if frame.Actions.Pressed(core.ACTION_SECONDARY) {
		for _, motion := range frame.Motion {
			rotation = rotation.Add(motion)
		}
	}
	var scroll float32
	for _, s := range frame.Scroll {
		scroll += s
	}

	switch pose := fc.pose.(type) {
	case FocusedPose:
		fc.pose = fc.orbit(pose, params, frame, rotation, scroll)
	case FreePose:
		fc.pose = fc.fly(pose, params, frame, rotation, scroll)
	}
	return changed
}

func (fc *FlyingCamera) orbit(pose FocusedPose, params Params, frame *Frame, rotation mgl32.Vec2, scroll float32) FocusedPose {
	pose.Pivot.Rotation = fc.rotate(frame.Window, rotation, pose.Pivot.Rotation)

	// The pivot carries the orientation, so zooming only moves the camera
	// along the pivot's local z.
	if scroll != 0 {
		step := mgl32.Vec3{0, 0, 1}.Mul(params.ScrollSnap * scroll * fc.state.Speed)
		pose.Zoom = math.MaxVec3(pose.Zoom.Sub(step), mgl32.Vec3{})
	}
	return pose
}

func (fc *FlyingCamera) fly(pose FreePose, params Params, frame *Frame, rotation mgl32.Vec2, scroll float32) FreePose {
	pose.Camera.Rotation = fc.rotate(frame.Window, rotation, pose.Camera.Rotation)

	if scroll != 0 {
		pose.Camera.Translate(pose.Camera.Forward().Mul(params.ScrollSnap * scroll * fc.state.Speed))
	}

	move := math.NormalizeOrZero(mgl32.Vec3{
		netMovement(frame.Actions, core.ACTION_RIGHT, core.ACTION_LEFT),
		netMovement(frame.Actions, core.ACTION_DOWN, core.ACTION_UP),
		netMovement(frame.Actions, core.ACTION_BACK, core.ACTION_FORWARD),
	})
	if move != (mgl32.Vec3{}) {
		move = move.Mul(frame.Elapsed * fc.state.Speed)
		axes := pose.Camera
		// Translate along each of the camera's local axes.
		pose.Camera.Translate(axes.Left().Mul(move.X()))
		pose.Camera.Translate(axes.Up().Mul(move.Y()))
		pose.Camera.Translate(axes.Forward().Mul(move.Z()))
	}
	return pose
}

func (fc *FlyingCamera) rotate(window Window, rotation mgl32.Vec2, current mgl32.Quat) mgl32.Quat {
	if window == nil || rotation.Dot(rotation) == 0 {
		return current
	}
	size := window.Size()
	if size.X() <= 0 || size.Y() <= 0 {
		return current
	}
	return math.RotateByMouseDelta(size, rotation, fc.state.AngularSpeed, current)
}

// netMovement is -1 when only negative is held, 1 when only positive is held
// and 0 otherwise.
func netMovement(actions Actions, negative, positive core.Action) float32 {
	switch n, p := actions.Pressed(negative), actions.Pressed(positive); {
	case n && !p:
		return -1
	case p && !n:
		return 1
	default:
		return 0
	}
}
