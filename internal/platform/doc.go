package platform

// Package platform contains OS/platform integration glue: executable-relative
// path resolution and window-manager control (always-on-top, move, position
// query) via the native tooling of each desktop (wmctrl, PowerShell,
// osascript).
