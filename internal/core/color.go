package core

// Color names the role of a screen cell. The platform picks the actual
// ANSI color for each role.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGround
	ColorCactus
	ColorBird
	ColorRunner
	ColorHit    // Runner during the collision flash
	ColorTitle  // Game name in the HUD
	ColorScore  // Score and high score
	ColorMuted  // Status and hints
	ColorNotice // Overlays such as PAUSED
)
