package runner

import (
	"testing"

	"github.com/vovakirdan/dash/internal/config"
)

func TestPhysicsJumpIgnoredWhileAirborne(t *testing.T) {
	p := NewPhysics(config.DefaultRunnerConfig().Physics)

	if !p.Launch() {
		t.Fatal("first launch should apply")
	}
	p.Update(16)
	h, v := p.Height(), p.Velocity()

	if p.Launch() {
		t.Error("launch mid-jump should be ignored")
	}
	if p.Height() != h || p.Velocity() != v {
		t.Errorf("state changed by ignored launch: h %v->%v v %v->%v", h, p.Height(), v, p.Velocity())
	}
}

func TestPhysicsLandingInvariant(t *testing.T) {
	p := NewPhysics(config.DefaultRunnerConfig().Physics)
	p.Launch()

	landed := false
	peak := 0.0
	for i := 0; i < 1000 && !landed; i++ {
		landed = p.Update(16)
		peak = max(peak, p.Height())
		if p.Height() < 0 {
			t.Fatalf("height went negative: %v", p.Height())
		}
	}

	if !landed {
		t.Fatal("runner never landed")
	}
	if p.Height() != 0 || p.Velocity() != 0 || p.Jumping() {
		t.Errorf("after landing: h=%v v=%v jumping=%v", p.Height(), p.Velocity(), p.Jumping())
	}
	// v²/2g = 1120²/8400 ≈ 149 px, a little less with 16 ms steps.
	if peak < 130 || peak > 150 {
		t.Errorf("peak height = %v, want about 140", peak)
	}
	if !p.AtRest() {
		t.Error("runner should be at rest after landing")
	}
}

func TestPhysicsUpdateAtRestIsNoop(t *testing.T) {
	p := NewPhysics(config.DefaultRunnerConfig().Physics)
	if p.Update(16) {
		t.Error("update at rest should not report a landing")
	}
	if p.Height() != 0 || p.Velocity() != 0 {
		t.Errorf("rest state changed: h=%v v=%v", p.Height(), p.Velocity())
	}

	p.Launch()
	h := p.Height()
	p.Update(0)
	p.Update(-5)
	if p.Height() != h {
		t.Error("non-positive deltas should not integrate")
	}
}

func TestPhysicsCrouch(t *testing.T) {
	tests := []struct {
		name    string
		jumping bool
		want    bool
	}{
		{"grounded", false, true},
		{"airborne", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPhysics(config.DefaultRunnerConfig().Physics)
			if tt.jumping {
				p.Launch()
			}
			if got := p.StartCrouch(); got != tt.want {
				t.Errorf("StartCrouch() = %v, want %v", got, tt.want)
			}
			if p.Crouching() && p.Jumping() {
				t.Error("crouching and jumping are mutually exclusive")
			}
		})
	}
}

func TestPhysicsLaunchCancelsCrouch(t *testing.T) {
	p := NewPhysics(config.DefaultRunnerConfig().Physics)
	p.StartCrouch()
	p.Launch()
	if p.Crouching() {
		t.Error("launch should cancel the crouch")
	}
	if p.Offset() != 0 {
		t.Errorf("offset before any update = %v, want 0", p.Offset())
	}
	p.Update(16)
	if p.Offset() >= 0 {
		t.Errorf("offset while airborne = %v, want negative", p.Offset())
	}
	if p.StopCrouch() {
		t.Error("StopCrouch without a crouch should report false")
	}
}
