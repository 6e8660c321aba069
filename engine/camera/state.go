package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/flycam/engine/core"
)

// State is the mutable per-camera speed and cursor state.
type State struct {
	// Speed is the linear speed. It ramps up while moving and has no upper bound.
	Speed float32
	// AngularSpeed scales rotation. It is always DefaultSpeed or SlowSpeed.
	AngularSpeed float32
	Slow         bool
	// CursorAnchor is where the cursor was when the rotation lock began.
	CursorAnchor mgl32.Vec2
}

func NewState(params Params) State {
	return State{
		Speed:        params.DefaultSpeed,
		AngularSpeed: params.DefaultSpeed,
	}
}

// AdjustSpeed toggles slow mode and ramps or resets the speeds for this frame.
func (s *State) AdjustSpeed(params Params, actions Actions, elapsed float32) {
	if actions.JustPressed(core.ACTION_ADJUST_SPEED) {
		s.Slow = !s.Slow
		if !s.Slow {
			s.Speed = params.DefaultSpeed
			s.AngularSpeed = params.DefaultSpeed
		}
	}

	switch {
	case s.Slow:
		s.Speed = params.SlowSpeed
		s.AngularSpeed = params.SlowSpeed
	case anyDirectional(actions):
		// AngularSpeed deliberately does not ramp.
		s.Speed += params.Acceleration * elapsed
	default:
		s.Speed = params.DefaultSpeed
		s.AngularSpeed = params.DefaultSpeed
	}
}

func anyDirectional(actions Actions) bool {
	for _, a := range core.DirectionalActions {
		if actions.Pressed(a) {
			return true
		}
	}
	return false
}
