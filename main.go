package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/google/uuid"

	"github.com/eyeofra/eye-of-ra/internal/capture"
	"github.com/eyeofra/eye-of-ra/internal/config"
	"github.com/eyeofra/eye-of-ra/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID    = "com.eyeofra.eye-of-ra"
	AppTitle = "Eye of Ra"

	// CameraDevice is the capture device index. The viewer is
	// single-camera; there are no flags or environment overrides.
	CameraDevice = 0
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With(
		slog.String("session", uuid.NewString()),
	)
	slog.SetDefault(logger)

	logger.Info("starting", "version", version, "device", CameraDevice)

	store := config.NewStore(config.DefaultPath())
	settings := store.Load()
	logger.Info("settings loaded",
		"path", store.Path(),
		"width", settings.Width, "height", settings.Height,
		"always_on_top", settings.AlwaysOnTop,
		"flip_horizontally", settings.FlipHorizontally)

	source, err := capture.Open(CameraDevice)
	if err != nil {
		logger.Error("cannot open capture device", "device", CameraDevice, "error", err)
		fmt.Fprintf(os.Stderr, "eye-of-ra: cannot open camera %d: %v\n", CameraDevice, err)
		os.Exit(1)
	}
	logger.Info("capture device opened", "aspect_ratio", source.AspectRatio())

	viewerApp := app.NewWithID(AppID)
	viewerApp.Settings().SetTheme(ui.NewViewerTheme())

	window := viewerApp.NewWindow(AppTitle)

	// The viewer applies the persisted geometry and flags itself.
	viewer := ui.NewViewer(window, source, store, settings, logger)
	viewer.Start()

	window.ShowAndRun()
}
