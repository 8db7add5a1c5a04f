package game

// Window defaults.
const (
	WindowTitle    = "Finger Maze"
	MinWindowWidth = 320
	MaxWindowWidth = 4096
)

// Android reports PixelsPerPt; logical pixels follow density-independent
// pixels at 160 per inch.
const (
	pointsPerInch  = 72.0
	logicalPerInch = 160.0
)

// Desktop loop pacing while nothing changes.
const idleWaitSeconds = 0.05
