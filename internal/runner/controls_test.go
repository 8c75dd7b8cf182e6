package runner

import (
	"testing"

	"github.com/vovakirdan/dash/internal/core"
)

func TestControlsStartRunOnInput(t *testing.T) {
	tests := []struct {
		name      string
		action    core.Action
		jumping   bool
		crouching bool
	}{
		{"jump key", core.ActionJump, true, false},
		{"crouch key", core.ActionCrouch, false, true},
		{"start button", core.ActionStart, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestController(newMemStore())
			k := NewControls(c)

			if !k.Press(tt.action) {
				t.Fatal("Press should apply from idle")
			}
			if !c.IsRunning() {
				t.Fatal("input should start a run")
			}
			v := c.View()
			if v.Jumping != tt.jumping || v.Crouching != tt.crouching {
				t.Errorf("jumping=%v crouching=%v, want %v %v", v.Jumping, v.Crouching, tt.jumping, tt.crouching)
			}
		})
	}
}

func TestControlsCrouchRelease(t *testing.T) {
	c, _, _ := newTestController(newMemStore())
	k := NewControls(c)

	k.Press(core.ActionCrouch)
	if !k.Release(core.ActionCrouch) {
		t.Error("releasing crouch should stand up")
	}
	if k.Release(core.ActionJump) {
		t.Error("releasing jump does nothing")
	}
	if k.Press(core.ActionQuit) {
		t.Error("quit is not a game command")
	}
}

func TestControlsPointerHalves(t *testing.T) {
	c, _, _ := newTestController(newMemStore())
	k := NewControls(c)

	k.PointerDown(200, 240)
	if !c.View().Crouching {
		t.Fatal("lower half should crouch")
	}
	if !k.PointerUp() || c.View().Crouching {
		t.Error("pointer up should stop the crouch")
	}

	k.PointerDown(20, 240)
	if !c.View().Jumping {
		t.Error("upper half should jump")
	}
}
