package platform

import (
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// External tool names
const (
	WmctrlCommand     = "wmctrl"
	OsascriptCommand  = "osascript"
	PowershellCommand = "powershell"
)

// wmctrl flags
const (
	WmctrlSelectFlag   = "-r"
	WmctrlStateFlag    = "-b"
	WmctrlMoveFlag     = "-e"
	WmctrlListFlag     = "-lG"
	WmctrlStateAbove   = "add,above"
	WmctrlStateNormal  = "remove,above"
	WmctrlGravityFixed = "0"
	WmctrlKeepSize     = "-1"
)

// Field layout of a `wmctrl -lG` output line:
// window id, desktop, x, y, width, height, host, title...
const (
	wmctrlListFieldX     = 2
	wmctrlListFieldY     = 3
	wmctrlListFieldTitle = 7
	wmctrlListFieldsMin  = 8
)

// powershellWindowStyle calls user32 SetWindowPos on the window whose title
// matches; the insert-after handle, position, and flags are interpolated.
const powershellWindowStyle = `
$sig = '[DllImport("user32.dll")] public static extern bool SetWindowPos(IntPtr hWnd, IntPtr hWndInsertAfter, int X, int Y, int cx, int cy, uint uFlags);'
Add-Type -MemberDefinition $sig -Name NativeWin -Namespace EyeOfRa
$proc = Get-Process | Where-Object { $_.MainWindowTitle -eq '%s' } | Select-Object -First 1
if ($proc -eq $null) { exit 1 }
[EyeOfRa.NativeWin]::SetWindowPos($proc.MainWindowHandle, [IntPtr](%d), %d, %d, 0, 0, %d)
`

// SetWindowPos arguments for the PowerShell helper
const (
	hwndTopmost     = -1
	hwndNoTopmost   = -2
	swpNoMove       = 0x0002
	swpNoSize       = 0x0001
	swpNoActivate   = 0x0010
	swpTopmostFlags = swpNoMove | swpNoSize | swpNoActivate
	swpMoveFlags    = swpNoSize | swpNoActivate
)

// SetAlwaysOnTop asks the window manager to keep the window with the given
// title above all others (or releases it again). Fyne has no portable API
// for the topmost attribute, so this shells out to the platform tooling the
// same way the file-manager helpers do.
func SetAlwaysOnTop(title string, onTop bool) error {
	switch runtime.GOOS {
	case OSLinux:
		return setAlwaysOnTopLinux(title, onTop)
	case OSWindows:
		return setAlwaysOnTopWindows(title, onTop)
	case OSDarwin:
		// No scriptable window-level control without accessibility hacks.
		return fmt.Errorf("always-on-top is not supported on %s", runtime.GOOS)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// setAlwaysOnTopLinux toggles the _NET_WM_STATE_ABOVE hint via wmctrl.
func setAlwaysOnTopLinux(title string, onTop bool) error {
	state := WmctrlStateNormal
	if onTop {
		state = WmctrlStateAbove
	}

	cmd := exec.Command(WmctrlCommand, WmctrlSelectFlag, title, WmctrlStateFlag, state)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("wmctrl failed to set window state: %w", err)
	}
	return nil
}

// setAlwaysOnTopWindows calls user32 SetWindowPos through PowerShell.
func setAlwaysOnTopWindows(title string, onTop bool) error {
	insertAfter := hwndNoTopmost
	if onTop {
		insertAfter = hwndTopmost
	}

	script := fmt.Sprintf(powershellWindowStyle, title, insertAfter, 0, 0, swpTopmostFlags)
	cmd := exec.Command(PowershellCommand, "-NoProfile", "-Command", script)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("powershell failed to set window state: %w", err)
	}
	return nil
}

// MoveWindow places the window with the given title at the x,y screen
// coordinates, keeping its current size.
func MoveWindow(title string, x, y int) error {
	switch runtime.GOOS {
	case OSLinux:
		return moveWindowLinux(title, x, y)
	case OSWindows:
		return moveWindowWindows(title, x, y)
	case OSDarwin:
		return moveWindowDarwin(title, x, y)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

func moveWindowLinux(title string, x, y int) error {
	geometry := strings.Join([]string{
		WmctrlGravityFixed,
		strconv.Itoa(x),
		strconv.Itoa(y),
		WmctrlKeepSize,
		WmctrlKeepSize,
	}, ",")

	cmd := exec.Command(WmctrlCommand, WmctrlSelectFlag, title, WmctrlMoveFlag, geometry)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("wmctrl failed to move window: %w", err)
	}
	return nil
}

func moveWindowWindows(title string, x, y int) error {
	script := fmt.Sprintf(powershellWindowStyle, title, hwndNoTopmost, x, y, swpMoveFlags)
	cmd := exec.Command(PowershellCommand, "-NoProfile", "-Command", script)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("powershell failed to move window: %w", err)
	}
	return nil
}

func moveWindowDarwin(title string, x, y int) error {
	script := fmt.Sprintf(
		`tell application "System Events" to set position of (first window whose name is %q) of (first process whose frontmost is true) to {%d, %d}`,
		title, x, y)
	cmd := exec.Command(OsascriptCommand, "-e", script)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("osascript failed to move window: %w", err)
	}
	return nil
}

// powershellWindowRect prints the left and top coordinates of the window
// whose title matches, via user32 GetWindowRect.
const powershellWindowRect = `
Add-Type @'
using System;
using System.Runtime.InteropServices;
public struct EyeOfRaRect { public int Left; public int Top; public int Right; public int Bottom; }
public class EyeOfRaQuery {
    [DllImport("user32.dll")] public static extern bool GetWindowRect(IntPtr hWnd, out EyeOfRaRect rect);
}
'@
$proc = Get-Process | Where-Object { $_.MainWindowTitle -eq '%s' } | Select-Object -First 1
if ($proc -eq $null) { exit 1 }
$rect = New-Object EyeOfRaRect
[EyeOfRaQuery]::GetWindowRect($proc.MainWindowHandle, [ref]$rect) | Out-Null
Write-Output "$($rect.Left), $($rect.Top)"
`

// WindowPosition reports the current top-left screen coordinates of the
// window with the given title, as seen by the window manager.
func WindowPosition(title string) (x, y int, err error) {
	switch runtime.GOOS {
	case OSLinux:
		return windowPositionLinux(title)
	case OSWindows:
		return windowPositionWindows(title)
	case OSDarwin:
		return windowPositionDarwin(title)
	default:
		return 0, 0, fmt.Errorf("window position query is not supported on %s", runtime.GOOS)
	}
}

func windowPositionLinux(title string) (int, int, error) {
	out, err := exec.Command(WmctrlCommand, WmctrlListFlag).Output()
	if err != nil {
		return 0, 0, fmt.Errorf("wmctrl failed to list windows: %w", err)
	}

	x, y, ok := parseWindowList(string(out), title)
	if !ok {
		return 0, 0, fmt.Errorf("window %q not found in window list", title)
	}
	return x, y, nil
}

func windowPositionWindows(title string) (int, int, error) {
	script := fmt.Sprintf(powershellWindowRect, title)
	out, err := exec.Command(PowershellCommand, "-NoProfile", "-Command", script).Output()
	if err != nil {
		return 0, 0, fmt.Errorf("powershell failed to query window position: %w", err)
	}
	return parsePosition(string(out))
}

func windowPositionDarwin(title string) (int, int, error) {
	script := fmt.Sprintf(
		`tell application "System Events" to get position of (first window whose name is %q) of (first process whose frontmost is true)`,
		title)
	out, err := exec.Command(OsascriptCommand, "-e", script).Output()
	if err != nil {
		return 0, 0, fmt.Errorf("osascript failed to query window position: %w", err)
	}
	return parsePosition(string(out))
}

// parsePosition reads an "x, y" coordinate pair as printed by the
// PowerShell and osascript query helpers.
func parsePosition(output string) (int, int, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(output), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("malformed window position output %q", output)
	}

	x, errX := strconv.Atoi(fields[0])
	y, errY := strconv.Atoi(fields[1])
	if errX != nil || errY != nil {
		return 0, 0, fmt.Errorf("malformed window position output %q", output)
	}
	return x, y, nil
}

// parseWindowList extracts the x,y position of the first window matching
// title from `wmctrl -lG` output. Titles may themselves contain spaces, so
// the title field is everything after the host column.
func parseWindowList(output, title string) (x, y int, ok bool) {
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < wmctrlListFieldsMin {
			continue
		}

		lineTitle := strings.Join(fields[wmctrlListFieldTitle:], " ")
		if lineTitle != title {
			continue
		}

		px, errX := strconv.Atoi(fields[wmctrlListFieldX])
		py, errY := strconv.Atoi(fields[wmctrlListFieldY])
		if errX != nil || errY != nil {
			continue
		}
		return px, py, true
	}
	return 0, 0, false
}
