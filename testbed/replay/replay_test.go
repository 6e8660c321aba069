package replay

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/flycam/engine/camera"
	"github.com/spaghettifunk/flycam/engine/core"
	"github.com/spaghettifunk/flycam/engine/math"
	"gopkg.in/yaml.v3"
)

const tolerance = 1e-4

func parseScript(t *testing.T, data string) *Script {
	t.Helper()
	var script Script
	if err := yaml.Unmarshal([]byte(data), &script); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return &script
}

func TestReplayRampsForward(t *testing.T) {
	script := parseScript(t, `
window: [800, 600]
start:
  position: [0, 0, 0]
  look_at: [0, 0, -1]
frames:
  - elapsed: 0.5
    hold: [forward]
    repeat: 2
`)
	var out bytes.Buffer
	samples, err := Replay(script, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	// Speed ramps to 1.5 then 2.0 while moving.
	expected := mgl32.Vec3{0, 0, -1.75}
	if got := samples[1].World.Position; !math.Vec3Near(got, expected, tolerance) {
		t.Errorf("expected %v, got %v", expected, got)
	}
	if lines := strings.Count(out.String(), "\n"); lines != 2 {
		t.Errorf("expected 2 lines of output, got %d", lines)
	}
}

func TestReplayFocusAndRelease(t *testing.T) {
	script := parseScript(t, `
window: [800, 600]
frames:
  - hold: [focus]
  - scroll: [-2]
  - hold: [secondary]
    motion: [[200, 0]]
  - hold: [up]
`)
	samples, err := Replay(script, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	focused := []bool{true, true, true, false}
	for i, s := range samples {
		if s.Focused != focused[i] {
			t.Errorf("frame %d: expected focused=%t", i, focused[i])
		}
	}
	// Orbiting keeps the distance to the pivot.
	pivot := SpawnTransform().Position
	for i := 1; i < len(samples); i++ {
		if d := samples[i].World.Position.Sub(pivot).Len(); !math.FloatNear(d, 2, tolerance) {
			t.Errorf("frame %d: expected distance 2 from the pivot, got %f", i, d)
		}
	}
	if !samples[3].World.ApproxEqual(samples[2].World, tolerance) {
		t.Errorf("expected release without a jump: %+v vs %+v", samples[2].World, samples[3].World)
	}
}

func TestReplayUnknownAction(t *testing.T) {
	script := parseScript(t, `
frames:
  - hold: [jump]
`)
	if _, err := Replay(script, &bytes.Buffer{}); !errors.Is(err, core.ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}
}

func TestLoadScript(t *testing.T) {
	script, err := LoadScript(filepath.Join("testdata", "orbit.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if script.Window != (mgl32.Vec2{1280, 720}) || len(script.Frames) != 5 {
		t.Fatalf("unexpected script %+v", script)
	}

	samples, err := Replay(script, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) != 30+1+1+1+10 {
		t.Errorf("unexpected sample count %d", len(samples))
	}
	if samples[len(samples)-1].Focused {
		t.Errorf("expected the script to end in free flight")
	}
}

func TestLoadScriptMissing(t *testing.T) {
	if _, err := LoadScript(filepath.Join("testdata", "missing.yaml")); err == nil {
		t.Errorf("expected an error")
	}
}

func TestSpawnTransformLooksAtOrigin(t *testing.T) {
	spawn := SpawnTransform()
	expected := math.NormalizeOrZero(mgl32.Vec3{0, -3, -4})
	if !math.Vec3Near(spawn.Forward(), expected, tolerance) {
		t.Errorf("expected forward %v, got %v", expected, spawn.Forward())
	}
}

func TestDescribePose(t *testing.T) {
	cases := []struct {
		name string
		pose camera.Pose
		want []string
	}{
		{"free", camera.FreePose{Camera: SpawnTransform()}, []string{"Camera Pos: [0.000, 3.000, 4.000]", "Pitch: -36.87", "(free)"}},
		{"focused", camera.FreePose{Camera: SpawnTransform()}.Focus(), []string{"Camera Pos: [0.000, 3.000, 4.000]", "(focused)"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DescribePose(c.pose)
			for _, w := range c.want {
				if !strings.Contains(got, w) {
					t.Errorf("expected %q in %q", w, got)
				}
			}
		})
	}
}
