package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/flycam/engine/core"
	"github.com/spaghettifunk/flycam/engine/math"
)

const (
	tolerance = 1e-4
	diagonal  = 0.70710677
)

// heldActions drives a real ActionState so edges behave as in the engine.
type heldActions struct {
	*core.ActionState
	held map[core.Action]bool
}

func newHeldActions() *heldActions {
	return &heldActions{
		ActionState: core.NewActionState(),
		held:        map[core.Action]bool{},
	}
}

// next starts a frame with exactly the given actions held.
func (h *heldActions) next(actions ...core.Action) *heldActions {
	clear(h.held)
	for _, a := range actions {
		h.held[a] = true
	}
	h.Update(func(a core.Action) bool { return h.held[a] })
	return h
}

type fakeWindow struct {
	size      mgl32.Vec2
	cursor    mgl32.Vec2
	hasCursor bool
	locked    bool
	warps     []mgl32.Vec2
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{size: mgl32.Vec2{800, 600}}
}

func (w *fakeWindow) Size() mgl32.Vec2                   { return w.size }
func (w *fakeWindow) CursorPosition() (mgl32.Vec2, bool) { return w.cursor, w.hasCursor }
func (w *fakeWindow) SetCursorLocked(locked bool)        { w.locked = locked }

func (w *fakeWindow) SetCursorPosition(position mgl32.Vec2) {
	w.cursor = position
	w.warps = append(w.warps, position)
}

func approx(a, b float32) bool {
	return math.FloatNear(a, b, tolerance)
}

func TestSpeedRampsAndResets(t *testing.T) {
	params := DefaultParams()
	state := NewState(params)
	actions := newHeldActions()

	for i := 0; i < 4; i++ {
		state.AdjustSpeed(params, actions.next(core.ACTION_FORWARD), 0.5)
	}
	if !approx(state.Speed, 3.0) {
		t.Fatalf("expected speed 3.0 after ramping, got %f", state.Speed)
	}
	if !approx(state.AngularSpeed, 1.0) {
		t.Errorf("expected angular speed to stay at 1.0, got %f", state.AngularSpeed)
	}

	state.AdjustSpeed(params, actions.next(), 0.5)
	if !approx(state.Speed, 1.0) {
		t.Errorf("expected speed reset to 1.0, got %f", state.Speed)
	}
}

func TestSlowModeToggle(t *testing.T) {
	params := DefaultParams()
	state := NewState(params)
	actions := newHeldActions()

	state.AdjustSpeed(params, actions.next(core.ACTION_ADJUST_SPEED), 0.5)
	if !state.Slow || !approx(state.Speed, 0.1) || !approx(state.AngularSpeed, 0.1) {
		t.Fatalf("expected slow mode at 0.1, got %+v", state)
	}

	// Moving does not ramp while slow.
	for i := 0; i < 3; i++ {
		state.AdjustSpeed(params, actions.next(core.ACTION_FORWARD), 0.5)
	}
	if !approx(state.Speed, 0.1) {
		t.Errorf("expected slow speed to hold at 0.1, got %f", state.Speed)
	}

	state.AdjustSpeed(params, actions.next(core.ACTION_ADJUST_SPEED), 0.5)
	if state.Slow || !approx(state.Speed, 1.0) || !approx(state.AngularSpeed, 1.0) {
		t.Errorf("expected normal mode at 1.0, got %+v", state)
	}
}

func TestStrafe(t *testing.T) {
	params := Params{DefaultSpeed: 2, Acceleration: 0, SlowSpeed: 0.1, ScrollSnap: 1}

	tests := []struct {
		name     string
		held     []core.Action
		expected mgl32.Vec3
	}{
		{"right", []core.Action{core.ACTION_RIGHT}, mgl32.Vec3{1, 0, 0}},
		{"left", []core.Action{core.ACTION_LEFT}, mgl32.Vec3{-1, 0, 0}},
		{"up", []core.Action{core.ACTION_UP}, mgl32.Vec3{0, 1, 0}},
		{"down", []core.Action{core.ACTION_DOWN}, mgl32.Vec3{0, -1, 0}},
		{"forward", []core.Action{core.ACTION_FORWARD}, mgl32.Vec3{0, 0, -1}},
		{"back", []core.Action{core.ACTION_BACK}, mgl32.Vec3{0, 0, 1}},
		{"opposing", []core.Action{core.ACTION_LEFT, core.ACTION_RIGHT}, mgl32.Vec3{}},
		{"diagonal", []core.Action{core.ACTION_RIGHT, core.ACTION_FORWARD}, mgl32.Vec3{diagonal, 0, -diagonal}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewFlyingCamera("test", math.Identity(), params)
			frame := &Frame{Elapsed: 0.5, Actions: newHeldActions().next(tt.held...)}
			camera.AdjustSpeed(params, frame)
			camera.Move(params, frame)

			got := camera.Pose().World().Position
			if !math.Vec3Near(got, tt.expected, tolerance) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestStrafeFollowsOrientation(t *testing.T) {
	params := Params{DefaultSpeed: 1, Acceleration: 0, SlowSpeed: 0.1, ScrollSnap: 1}
	// Turned to face -X, forward moves along -X.
	initial := math.LookingAt(mgl32.Vec3{}, mgl32.Vec3{-1, 0, 0})
	camera := NewFlyingCamera("test", initial, params)
	camera.Move(params, &Frame{Elapsed: 1, Actions: newHeldActions().next(core.ACTION_FORWARD)})

	got := camera.Pose().World().Position
	if !math.Vec3Near(got, mgl32.Vec3{-1, 0, 0}, tolerance) {
		t.Errorf("expected (-1, 0, 0), got %v", got)
	}
}

func TestFocusRoundTrip(t *testing.T) {
	params := DefaultParams()
	initial := math.LookingAt(mgl32.Vec3{0, 3, 4}, mgl32.Vec3{})
	camera := NewFlyingCamera("test", initial, params)
	actions := newHeldActions()

	if changed := camera.Move(params, &Frame{Actions: actions.next(core.ACTION_FOCUS)}); !changed {
		t.Fatalf("expected focus to change mode")
	}
	if !camera.Focused() {
		t.Fatalf("expected the camera to be focused")
	}
	pose := camera.Pose()
	if !pose.PivotTransform().ApproxEqual(initial, tolerance) {
		t.Errorf("expected the pivot to take the camera transform, got %+v", pose.PivotTransform())
	}
	if !pose.CameraTransform().IsIdentity(tolerance) {
		t.Errorf("expected the camera node at identity, got %+v", pose.CameraTransform())
	}
	if !pose.World().ApproxEqual(initial, tolerance) {
		t.Errorf("expected no visible jump on focus, got %+v", pose.World())
	}

	// Holding focus does not toggle again.
	if changed := camera.Move(params, &Frame{Actions: actions.next(core.ACTION_FOCUS)}); changed || !camera.Focused() {
		t.Fatalf("expected the camera to stay focused")
	}

	if changed := camera.Move(params, &Frame{Actions: actions.next(core.ACTION_FORWARD)}); !changed {
		t.Fatalf("expected a directional action to release focus")
	}
	if camera.Focused() {
		t.Fatalf("expected free flight after release")
	}
	pose = camera.Pose()
	if !pose.World().ApproxEqual(initial, tolerance) {
		t.Errorf("expected no visible jump on release, got %+v", pose.World())
	}
	if !pose.PivotTransform().IsIdentity(tolerance) {
		t.Errorf("expected the pivot back at identity, got %+v", pose.PivotTransform())
	}
}

func TestZoomClampsAtPivot(t *testing.T) {
	params := DefaultParams()
	initial := math.LookingAt(mgl32.Vec3{0, 3, 4}, mgl32.Vec3{})
	camera := NewFlyingCamera("test", initial, params)
	actions := newHeldActions()
	camera.Move(params, &Frame{Actions: actions.next(core.ACTION_FOCUS)})

	camera.Move(params, &Frame{Actions: actions.next(), Scroll: []float32{5}})
	focused := camera.Pose().(FocusedPose)
	if focused.Zoom != (mgl32.Vec3{}) {
		t.Fatalf("expected zoom to clamp at zero, got %v", focused.Zoom)
	}

	camera.Move(params, &Frame{Actions: actions.next(), Scroll: []float32{-1, -1}})
	focused = camera.Pose().(FocusedPose)
	if !math.Vec3Near(focused.Zoom, mgl32.Vec3{0, 0, 2}, tolerance) {
		t.Fatalf("expected zoom (0, 0, 2), got %v", focused.Zoom)
	}
	// The camera backs away from the pivot along the view direction.
	expected := initial.Position.Add(initial.Back().Mul(2))
	if got := camera.Pose().World().Position; !math.Vec3Near(got, expected, tolerance) {
		t.Errorf("expected world position %v, got %v", expected, got)
	}

	camera.Move(params, &Frame{Actions: actions.next(core.ACTION_LEFT)})
	if got := camera.Pose().World().Position; !math.Vec3Near(got, expected, tolerance) {
		t.Errorf("expected release at %v, got %v", expected, got)
	}
}

func TestScrollMovesForwardInFreeFlight(t *testing.T) {
	params := DefaultParams()
	camera := NewFlyingCamera("test", math.Identity(), params)
	camera.Move(params, &Frame{Actions: newHeldActions().next(), Scroll: []float32{1, 1}})

	got := camera.Pose().World().Position
	if !math.Vec3Near(got, mgl32.Vec3{0, 0, -2}, tolerance) {
		t.Errorf("expected (0, 0, -2), got %v", got)
	}
}

func TestRotationRequiresSecondary(t *testing.T) {
	params := DefaultParams()
	window := newFakeWindow()
	motion := []mgl32.Vec2{{100, 0}}

	camera := NewFlyingCamera("test", math.Identity(), params)
	camera.Move(params, &Frame{Actions: newHeldActions().next(), Motion: motion, Window: window})
	if !camera.Pose().World().IsIdentity(tolerance) {
		t.Fatalf("expected no rotation without the secondary action, got %+v", camera.Pose().World())
	}

	camera.Move(params, &Frame{Actions: newHeldActions().next(core.ACTION_SECONDARY), Motion: motion, Window: window})
	// An eighth of the window width turns right by a quarter of pi.
	forward := camera.Pose().World().Forward()
	if !math.Vec3Near(forward, mgl32.Vec3{diagonal, 0, -diagonal}, tolerance) {
		t.Errorf("expected forward (%f, 0, %f), got %v", diagonal, -diagonal, forward)
	}
}

func TestMotionIsSummed(t *testing.T) {
	params := DefaultParams()
	window := newFakeWindow()

	single := NewFlyingCamera("single", math.Identity(), params)
	single.Move(params, &Frame{
		Actions: newHeldActions().next(core.ACTION_SECONDARY),
		Motion:  []mgl32.Vec2{{100, 30}},
		Window:  window,
	})
	split := NewFlyingCamera("split", math.Identity(), params)
	split.Move(params, &Frame{
		Actions: newHeldActions().next(core.ACTION_SECONDARY),
		Motion:  []mgl32.Vec2{{40, 10}, {60, 20}},
		Window:  window,
	})

	if !single.Pose().World().ApproxEqual(split.Pose().World(), tolerance) {
		t.Errorf("expected split motion to match a single delta: %+v vs %+v", single.Pose().World(), split.Pose().World())
	}
}

func TestRotationWithoutUsableWindow(t *testing.T) {
	params := DefaultParams()
	actions := newHeldActions().next(core.ACTION_SECONDARY)
	motion := []mgl32.Vec2{{100, 100}}

	camera := NewFlyingCamera("test", math.Identity(), params)
	camera.Move(params, &Frame{Actions: actions, Motion: motion})
	camera.Move(params, &Frame{Actions: actions, Motion: motion, Window: &fakeWindow{}})
	if !camera.Pose().World().IsIdentity(tolerance) {
		t.Errorf("expected no rotation, got %+v", camera.Pose().World())
	}
}

func TestOrbitRotatesPivot(t *testing.T) {
	params := DefaultParams()
	window := newFakeWindow()
	actions := newHeldActions()
	camera := NewFlyingCamera("test", math.Identity(), params)

	camera.Move(params, &Frame{Actions: actions.next(core.ACTION_FOCUS)})
	camera.Move(params, &Frame{Actions: actions.next(), Scroll: []float32{-3}})
	camera.Move(params, &Frame{
		Actions: actions.next(core.ACTION_SECONDARY),
		Motion:  []mgl32.Vec2{{200, 0}},
		Window:  window,
	})

	pose := camera.Pose().(FocusedPose)
	if !math.Vec3Near(pose.Pivot.Position, mgl32.Vec3{}, tolerance) {
		t.Errorf("expected the pivot to stay in place, got %v", pose.Pivot.Position)
	}
	// A quarter of the width turns the view a quarter turn right, which puts
	// the camera on the pivot's -X side.
	got := camera.Pose().World().Position
	if !math.Vec3Near(got, mgl32.Vec3{-3, 0, 0}, tolerance) {
		t.Errorf("expected the camera to orbit to (-3, 0, 0), got %v", got)
	}
}

func TestLockCursor(t *testing.T) {
	params := DefaultParams()
	window := newFakeWindow()
	window.cursor = mgl32.Vec2{10, 20}
	window.hasCursor = true
	actions := newHeldActions()
	camera := NewFlyingCamera("test", math.Identity(), params)

	camera.LockCursor(&Frame{Actions: actions.next(core.ACTION_SECONDARY), Window: window})
	if !window.locked {
		t.Fatalf("expected the cursor to be locked")
	}

	window.cursor = mgl32.Vec2{50, 70}
	camera.LockCursor(&Frame{Actions: actions.next(core.ACTION_SECONDARY), Window: window})
	if window.cursor != (mgl32.Vec2{10, 20}) {
		t.Errorf("expected the cursor pinned at (10, 20), got %v", window.cursor)
	}

	camera.LockCursor(&Frame{Actions: actions.next(), Window: window})
	if window.locked {
		t.Errorf("expected the cursor to be released")
	}
	warps := len(window.warps)
	camera.LockCursor(&Frame{Actions: actions.next(), Window: window})
	if len(window.warps) != warps {
		t.Errorf("expected no warps once released")
	}
}

func TestReset(t *testing.T) {
	params := DefaultParams()
	camera := NewFlyingCamera("test", math.Identity(), params)
	actions := newHeldActions()
	camera.AdjustSpeed(params, &Frame{Actions: actions.next(core.ACTION_ADJUST_SPEED)})
	camera.Move(params, &Frame{Actions: actions.next(core.ACTION_FOCUS)})

	spawn := math.TransformFromPosition(mgl32.Vec3{1, 2, 3})
	camera.Reset(spawn, params)
	if camera.Focused() || camera.State().Slow {
		t.Fatalf("expected free flight at normal speed after reset")
	}
	if !camera.Pose().World().ApproxEqual(spawn, tolerance) {
		t.Errorf("expected %+v, got %+v", spawn, camera.Pose().World())
	}
}
