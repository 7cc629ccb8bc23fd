package ui

import (
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/nfnt/resize"

	"github.com/eyeofra/eye-of-ra/internal/capture"
	"github.com/eyeofra/eye-of-ra/internal/config"
	"github.com/eyeofra/eye-of-ra/internal/imaging"
	"github.com/eyeofra/eye-of-ra/internal/platform"
)

// viewerState tracks the shell lifecycle: Starting -> Running -> Closing ->
// Terminated. Closing is entered by any shutdown trigger; repeated triggers
// while closing are no-ops.
type viewerState int

const (
	stateStarting viewerState = iota
	stateRunning
	stateClosing
	stateTerminated
)

// Viewer owns the window, the capture source, and the display loop. All of
// its methods run on the Fyne event thread; the only cross-thread work is
// the timer that reschedules ticks and the deferred window-manager calls.
type Viewer struct {
	window   fyne.Window
	source   capture.Source
	store    *config.Store
	settings config.WindowSettings
	aspect   float64
	logger   *slog.Logger

	area     *videoArea
	state    viewerState
	lastSize fyne.Size
	posTicks int

	// Window-manager hooks, swapped out in tests.
	setTopmost    func(title string, onTop bool) error
	moveWindow    func(title string, x, y int) error
	queryPosition func(title string) (int, int, error)

	// attrDelay defers position/topmost application until the window
	// manager has mapped the window.
	attrDelay time.Duration
}

// NewViewer builds the shell around an already-open capture source and the
// loaded settings. Call Start before the window is shown.
func NewViewer(window fyne.Window, source capture.Source, store *config.Store, settings config.WindowSettings, logger *slog.Logger) *Viewer {
	v := &Viewer{
		window:   window,
		source:   source,
		store:    store,
		settings: settings,
		aspect:   source.AspectRatio(),
		logger:   logger,
		state:    stateStarting,

		setTopmost:    platform.SetAlwaysOnTop,
		moveWindow:    platform.MoveWindow,
		queryPosition: platform.WindowPosition,
		attrDelay:     WindowManagerDelay,
	}

	v.area = newVideoArea(v.aspect, v.showContextMenu)
	window.SetContent(v.area)
	window.Canvas().SetOnTypedKey(v.onTypedKey)
	window.SetCloseIntercept(v.Shutdown)

	return v
}

// Start applies the persisted window state and begins the display loop. The
// first tick is chained off the window-attribute callback so the topmost
// flag is in place before any frame draws.
func (v *Viewer) Start() {
	v.window.Resize(fyne.NewSize(float32(v.settings.Width), float32(v.settings.Height)))
	v.lastSize = v.window.Canvas().Size()

	v.state = stateRunning
	v.applyWindowAttributes()
}

// applyWindowAttributes restores the persisted position and topmost flag
// once the window manager knows about the window, then starts the display
// loop. Failures are logged and ignored; a viewer that cannot pin itself is
// still a viewer.
func (v *Viewer) applyWindowAttributes() {
	title := v.window.Title()
	x, y := v.settings.X, v.settings.Y
	onTop := v.settings.AlwaysOnTop

	time.AfterFunc(v.attrDelay, func() {
		if err := v.moveWindow(title, x, y); err != nil {
			v.logger.Debug("cannot restore window position", "x", x, "y", y, "error", err)
		}
		if onTop {
			if err := v.setTopmost(title, true); err != nil {
				v.logger.Warn("cannot apply always-on-top", "error", err)
			}
		}

		v.scheduleTick()
	})
}

// scheduleTick arms the next display-loop cycle. The tick body runs on the
// event thread via fyne.Do and re-arms itself while the source stays open,
// mirroring a self-rescheduling timer callback.
func (v *Viewer) scheduleTick() {
	time.AfterFunc(TickInterval, func() {
		fyne.Do(v.tick)
	})
}

// tick runs one display-loop cycle: poll geometry, read at most one frame,
// draw it. A cycle without a frame leaves the previous image on screen.
func (v *Viewer) tick() {
	if v.state != stateRunning {
		return
	}

	v.pollGeometry()

	if img, ok := v.source.ReadFrame(); ok {
		if v.settings.FlipHorizontally {
			img = imaging.FlipHorizontal(img)
		}

		fit := v.area.FitSize()
		scaled := resize.Resize(uint(fit.Dx()), uint(fit.Dy()), img, resize.Bilinear)
		v.area.SetFrame(scaled)
	}

	if v.source.IsOpened() {
		v.scheduleTick()
	}
}

// pollGeometry detects geometry changes and persists the full settings
// record immediately, no debouncing. Size changes are visible on every
// cycle through the canvas; a window drag changes only the position, which
// Fyne cannot observe, so the window manager is polled on a slower cadence.
func (v *Viewer) pollGeometry() {
	size := v.window.Canvas().Size()
	changed := size != v.lastSize
	if changed {
		v.lastSize = size
		v.settings.Width = int(size.Width)
		v.settings.Height = int(size.Height)
	}

	v.posTicks++
	if v.posTicks >= PositionPollTicks {
		v.posTicks = 0
		if x, y, err := v.queryPosition(v.window.Title()); err == nil {
			if x != v.settings.X || y != v.settings.Y {
				changed = true
			}
		}
	}

	if changed {
		v.persist()
	}
}

// persist refreshes the position from the window manager and writes the
// settings record, mirroring the original save path that reads the live
// geometry at save time. Write failures are logged without interrupting the
// viewer.
func (v *Viewer) persist() {
	if x, y, err := v.queryPosition(v.window.Title()); err == nil {
		v.settings.X = x
		v.settings.Y = y
	}

	if err := v.store.Save(v.settings); err != nil {
		v.logger.Warn("failed to persist window settings", "path", v.store.Path(), "error", err)
	}
}

// showContextMenu pops up the right-click menu. Labels are rebuilt here so
// they always reflect the current toggle state.
func (v *Viewer) showContextMenu(ev *fyne.PointEvent) {
	menu := fyne.NewMenu("",
		fyne.NewMenuItem(v.alwaysOnTopLabel(), v.toggleAlwaysOnTop),
		fyne.NewMenuItem(v.flipLabel(), v.toggleFlip),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(LabelExit, v.Shutdown),
	)

	widget.ShowPopUpMenuAtPosition(menu, v.window.Canvas(), ev.AbsolutePosition)
}

func (v *Viewer) alwaysOnTopLabel() string {
	return fmt.Sprintf(LabelAlwaysOnTopFormat, stateName(v.settings.AlwaysOnTop))
}

func (v *Viewer) flipLabel() string {
	return fmt.Sprintf(LabelFlipFormat, stateName(v.settings.FlipHorizontally))
}

func stateName(enabled bool) string {
	if enabled {
		return StateEnabled
	}
	return StateDisabled
}

// toggleAlwaysOnTop flips the flag, applies the window-manager attribute and
// persists immediately.
func (v *Viewer) toggleAlwaysOnTop() {
	v.settings.AlwaysOnTop = !v.settings.AlwaysOnTop

	if err := v.setTopmost(v.window.Title(), v.settings.AlwaysOnTop); err != nil {
		v.logger.Warn("cannot apply always-on-top", "enabled", v.settings.AlwaysOnTop, "error", err)
	}

	v.persist()
}

// toggleFlip flips the mirror flag and persists immediately; the change
// becomes visible on the next display tick.
func (v *Viewer) toggleFlip() {
	v.settings.FlipHorizontally = !v.settings.FlipHorizontally
	v.persist()
}

// onTypedKey closes the viewer on Escape.
func (v *Viewer) onTypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape {
		v.Shutdown()
	}
}

// Shutdown releases the capture source, persists the final settings and
// closes the window. It is the single terminal path and safe to trigger
// repeatedly: once Closing is entered further calls return immediately.
func (v *Viewer) Shutdown() {
	if v.state == stateClosing || v.state == stateTerminated {
		return
	}
	v.state = stateClosing

	if v.source.IsOpened() {
		if err := v.source.Close(); err != nil {
			v.logger.Warn("error releasing capture device", "error", err)
		}
	}

	v.persist()

	v.state = stateTerminated
	v.logger.Info("viewer terminated")
	v.window.Close()
}
