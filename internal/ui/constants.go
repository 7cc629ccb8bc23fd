package ui

import "time"

// Display loop timing
const (
	// TickInterval is the delay between display-loop cycles.
	TickInterval = 10 * time.Millisecond

	// WindowManagerDelay gives the window manager time to map the window
	// before position and topmost attributes are applied at startup.
	WindowManagerDelay = 250 * time.Millisecond

	// PositionPollTicks is how many display cycles pass between window
	// position queries; a drag changes x/y without any event Fyne can
	// see, so the window manager is asked every ~500 ms.
	PositionPollTicks = 50
)

// Context menu text
const (
	LabelAlwaysOnTopFormat = "Always on Top (%s)"
	LabelFlipFormat        = "Flip Horizontally (%s)"
	LabelExit              = "Exit"

	StateEnabled  = "Enabled"
	StateDisabled = "Disabled"
)
