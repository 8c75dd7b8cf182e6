package runner

import "github.com/vovakirdan/dash/internal/core"

// Controls maps device-level input onto controller commands. Jump and
// crouch input start a run when none is in progress.
type Controls struct {
	c *Controller
}

// NewControls binds controls to a controller.
func NewControls(c *Controller) *Controls {
	return &Controls{c: c}
}

// Press handles an action's key going down. Returns whether any command
// was applied.
func (k *Controls) Press(a core.Action) bool {
	switch a {
	case core.ActionStart:
		return k.c.Start()
	case core.ActionJump:
		started := k.ensureRunning()
		return k.c.Jump() || started
	case core.ActionCrouch:
		started := k.ensureRunning()
		return k.c.StartCrouch() || started
	default:
		return false
	}
}

// Release handles an action's key going up.
func (k *Controls) Release(a core.Action) bool {
	if a == core.ActionCrouch {
		return k.c.StopCrouch()
	}
	return false
}

// PointerDown handles a touch or click at y on a surface of the given
// height. The upper half jumps and the lower half crouches.
func (k *Controls) PointerDown(y, height float64) bool {
	if height > 0 && y >= height/2 {
		return k.Press(core.ActionCrouch)
	}
	return k.Press(core.ActionJump)
}

// PointerUp handles the pointer being released, cancelled or leaving.
func (k *Controls) PointerUp() bool {
	return k.c.StopCrouch()
}

func (k *Controls) ensureRunning() bool {
	if k.c.IsRunning() {
		return false
	}
	return k.c.Start()
}
