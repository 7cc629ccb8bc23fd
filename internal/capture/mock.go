package capture

import "image"

// MockSource is a scripted Source for tests. Each ReadFrame consumes the
// next entry of Frames; a nil entry simulates a cycle with no frame
// available, and an exhausted script keeps returning no frame.
type MockSource struct {
	Aspect float64
	Frames []image.Image
	Opened bool

	ReadCalls  int
	CloseCalls int

	next int
}

// NewMockSource creates an open mock with the given aspect ratio and frame
// script.
func NewMockSource(aspect float64, frames ...image.Image) *MockSource {
	return &MockSource{
		Aspect: aspect,
		Frames: frames,
		Opened: true,
	}
}

func (m *MockSource) AspectRatio() float64 {
	return m.Aspect
}

func (m *MockSource) ReadFrame() (image.Image, bool) {
	m.ReadCalls++
	if !m.Opened || m.next >= len(m.Frames) {
		return nil, false
	}

	frame := m.Frames[m.next]
	m.next++
	if frame == nil {
		return nil, false
	}
	return frame, true
}

func (m *MockSource) IsOpened() bool {
	return m.Opened
}

func (m *MockSource) Close() error {
	if m.Opened {
		m.Opened = false
		m.CloseCalls++
	}
	return nil
}
