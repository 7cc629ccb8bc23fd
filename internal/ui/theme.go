package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ViewerTheme is a dark theme with a pure-black background so the letterbox
// bars around the video blend into the canvas.
type ViewerTheme struct{}

// NewViewerTheme creates the viewer theme.
func NewViewerTheme() fyne.Theme {
	return &ViewerTheme{}
}

// Color returns theme colors
func (t *ViewerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.Black
	case theme.ColorNameForeground:
		return color.RGBA{R: 230, G: 230, B: 230, A: 255}
	}

	// Force the dark variant for everything else so the popup menu matches
	// the black canvas.
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *ViewerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ViewerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *ViewerTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
