package replay

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/flycam/engine/camera"
	"github.com/spaghettifunk/flycam/engine/core"
	"github.com/spaghettifunk/flycam/engine/math"
	"gopkg.in/yaml.v3"
)

// SpawnTransform places the camera at (0, 3, 4) looking at the origin.
func SpawnTransform() math.Transform {
	return math.LookingAt(mgl32.Vec3{0, 3, 4}, mgl32.Vec3{})
}

// DescribePose formats the world position and heading of a camera pose.
func DescribePose(pose camera.Pose) string {
	world := pose.World()
	pos := world.Position
	yaw, pitch := math.YawPitchAngles(world.Rotation)
	mode := "free"
	if pose.Focused() {
		mode = "focused"
	}
	return fmt.Sprintf("Camera Pos: [%.3f, %.3f, %.3f] Yaw: %.2f Pitch: %.2f (%s)",
		pos.X(), pos.Y(), pos.Z(), math.RadToDeg(yaw), math.RadToDeg(pitch), mode)
}

// Script drives a camera without a window, one frame at a time.
type Script struct {
	// Window is the size used to turn pointer motion into rotation.
	Window mgl32.Vec2  `yaml:"window"`
	Camera *ParamsSpec `yaml:"camera"`
	Start  *StartSpec  `yaml:"start"`
	Frames []FrameSpec `yaml:"frames"`
}

// ParamsSpec overrides the default camera params. Zero values are ignored.
type ParamsSpec struct {
	DefaultSpeed float32 `yaml:"default_speed"`
	Acceleration float32 `yaml:"acceleration"`
	SlowSpeed    float32 `yaml:"slow_speed"`
	ScrollSnap   float32 `yaml:"scroll_snap"`
}

type StartSpec struct {
	Position mgl32.Vec3 `yaml:"position"`
	LookAt   mgl32.Vec3 `yaml:"look_at"`
}

// FrameSpec is one frame of input, optionally repeated.
type FrameSpec struct {
	Elapsed float32      `yaml:"elapsed"`
	Hold    []string     `yaml:"hold"`
	Motion  []mgl32.Vec2 `yaml:"motion"`
	Scroll  []float32    `yaml:"scroll"`
	Repeat  int          `yaml:"repeat"`
}

// Sample is the camera pose after a frame.
type Sample struct {
	Frame   int
	Focused bool
	World   math.Transform
}

func LoadScript(filename string) (*Script, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("replay: load %s: %w", filename, err)
	}
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("replay: unmarshal %s: %w", filename, err)
	}
	return &script, nil
}

func (s *Script) params() camera.Params {
	params := camera.DefaultParams()
	if s.Camera == nil {
		return params
	}
	override := func(dst *float32, v float32) {
		if v != 0 {
			*dst = v
		}
	}
	override(&params.DefaultSpeed, s.Camera.DefaultSpeed)
	override(&params.Acceleration, s.Camera.Acceleration)
	override(&params.SlowSpeed, s.Camera.SlowSpeed)
	override(&params.ScrollSnap, s.Camera.ScrollSnap)
	return params
}

func (s *Script) start() math.Transform {
	if s.Start == nil {
		return SpawnTransform()
	}
	return math.LookingAt(s.Start.Position, s.Start.LookAt)
}

/**
 * @brief Runs the script against a fresh camera and writes one line per frame
 * to out.
 *
 * @return The pose after every frame.
 */
func Replay(script *Script, out io.Writer) ([]Sample, error) {
	held := make([][]core.Action, len(script.Frames))
	for i, f := range script.Frames {
		for _, name := range f.Hold {
			action, err := core.ActionFromName(name)
			if err != nil {
				return nil, fmt.Errorf("replay: frame %d: %w", i, err)
			}
			held[i] = append(held[i], action)
		}
	}

	cameras, err := camera.NewCameraSystem(&camera.CameraSystemConfig{
		MaxCameraCount: 1,
		Params:         script.params(),
	}, nil)
	if err != nil {
		return nil, err
	}
	defer cameras.Shutdown()

	id, err := cameras.Spawn("replay", script.start())
	if err != nil {
		return nil, err
	}
	rig, err := cameras.Get(id)
	if err != nil {
		return nil, err
	}

	window := NewHeadlessWindow(script.Window)
	actions := core.NewActionState()
	samples := []Sample{}
	for i, f := range script.Frames {
		pressed := map[core.Action]bool{}
		for _, a := range held[i] {
			pressed[a] = true
		}
		for r := 0; r < max(f.Repeat, 1); r++ {
			actions.Update(func(a core.Action) bool { return pressed[a] })
			frame := &camera.Frame{
				Elapsed: f.Elapsed,
				Actions: actions,
				Motion:  f.Motion,
				Scroll:  f.Scroll,
				Window:  window,
			}
			if err := cameras.Update(id, frame); err != nil {
				return samples, err
			}

			sample := Sample{
				Frame:   len(samples),
				Focused: rig.Focused(),
				World:   rig.Pose().World(),
			}
			samples = append(samples, sample)
			if _, err := fmt.Fprintf(out, "%4d %s\n", sample.Frame, DescribePose(rig.Pose())); err != nil {
				return samples, err
			}
		}
	}
	return samples, nil
}

var _ camera.Window = (*HeadlessWindow)(nil)

// HeadlessWindow stands in for a real window during replays. The cursor
// starts at the window center.
type HeadlessWindow struct {
	size   mgl32.Vec2
	cursor mgl32.Vec2
	locked bool
}

func NewHeadlessWindow(size mgl32.Vec2) *HeadlessWindow {
	return &HeadlessWindow{
		size:   size,
		cursor: size.Mul(0.5),
	}
}

func (w *HeadlessWindow) Size() mgl32.Vec2 {
	return w.size
}

func (w *HeadlessWindow) CursorPosition() (mgl32.Vec2, bool) {
	return w.cursor, true
}

func (w *HeadlessWindow) SetCursorPosition(position mgl32.Vec2) {
	w.cursor = position
}

func (w *HeadlessWindow) SetCursorLocked(locked bool) {
	w.locked = locked
}
