package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/flycam/engine/core"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		key      glfw.Key
		expected core.KeyCode
	}{
		{glfw.KeyW, core.KEY_W},
		{glfw.KeyQ, core.KEY_Q},
		{glfw.KeyF1, core.KEY_F1},
		{glfw.KeyF12, core.KEY_F12},
		{glfw.KeyKP7, core.KEY_NUMPAD7},
		{glfw.KeyLeftShift, core.KEY_LSHIFT},
		{glfw.KeyEscape, core.KEY_ESCAPE},
	}
	for _, tt := range tests {
		code, ok := translateKey(tt.key)
		if !ok || code != tt.expected {
			t.Errorf("key %d: expected %d, got %d (%t)", tt.key, tt.expected, code, ok)
		}
	}
	if _, ok := translateKey(glfw.KeyWorld1); ok {
		t.Errorf("expected KeyWorld1 to be unmapped")
	}
}
