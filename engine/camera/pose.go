package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/flycam/engine/math"
)

// Pose is where a camera rig is. It is either a FreePose or a FocusedPose.
type Pose interface {
	// CameraTransform is the camera node transform, local to the pivot.
	CameraTransform() math.Transform
	// PivotTransform is the pivot node transform, local to the world.
	PivotTransform() math.Transform
	// World is the camera transform in world space.
	World() math.Transform
	Focused() bool
}

// FreePose is free flight: the pivot stays at identity and all motion lives
// in the camera transform.
type FreePose struct {
	Camera math.Transform
}

func (p FreePose) CameraTransform() math.Transform { return p.Camera }
func (p FreePose) PivotTransform() math.Transform  { return math.Identity() }
func (p FreePose) World() math.Transform           { return p.Camera }
func (p FreePose) Focused() bool                   { return false }

// Focus hands position and orientation over to the pivot, which becomes the
// orbit center.
func (p FreePose) Focus() FocusedPose {
	return FocusedPose{
		Pivot: p.Camera,
	}
}

// FocusedPose orbits the pivot. The camera has no rotation of its own and sits
// at Zoom in the pivot's space; Zoom never goes below zero on any axis, so the
// camera cannot pass through the focus point.
type FocusedPose struct {
	Pivot math.Transform
	Zoom  mgl32.Vec3
}

func (p FocusedPose) CameraTransform() math.Transform {
	return math.TransformFromPosition(p.Zoom)
}

func (p FocusedPose) PivotTransform() math.Transform { return p.Pivot }
func (p FocusedPose) World() math.Transform          { return p.Pivot.Mul(p.CameraTransform()) }
func (p FocusedPose) Focused() bool                  { return true }

// Release returns to free flight without a visible jump: the camera takes the
// pivot transform pushed back by the zoom distance.
func (p FocusedPose) Release() FreePose {
	camera := p.Pivot
	camera.Translate(p.Pivot.Back().Mul(p.Zoom.Z()))
	return FreePose{
		Camera: camera,
	}
}
