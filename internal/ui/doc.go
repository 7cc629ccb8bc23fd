package ui

// Package ui contains the Fyne-based viewer shell: the window and canvas the
// webcam feed is drawn onto, the right-click context menu, the 10 ms display
// loop, and the shutdown sequence. All state is touched only on the Fyne
// event thread.
