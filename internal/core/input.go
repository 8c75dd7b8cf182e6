package core

// Action represents a semantic player intent, abstracted from physical key
// presses. Frontends map their devices onto these and the game never sees
// raw input.
type Action int

const (
	ActionNone   Action = iota
	ActionStart         // Enter - the start / play again button
	ActionJump          // Space, Up, W - jump (starts a run when idle)
	ActionCrouch        // Down, S - crouch while held (starts a run when idle)
	ActionPause         // P, Esc - background the game
	ActionShare         // C - copy the last result to the clipboard
	ActionQuit          // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionJump:
		return "Jump"
	case ActionCrouch:
		return "Crouch"
	case ActionPause:
		return "Pause"
	case ActionShare:
		return "Share"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
