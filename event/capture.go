package event

import "fmt"

// CaptureMouse gives d exclusive pointer input: every motion, button and
// wheel event is sent to d regardless of the pointer position until the
// capture is released.
//
// d must be connected. Capturing again while d holds the capture is a
// no-op. A capture held by another dispatcher is never preempted;
// ErrCaptureConflict is returned and the holder is unchanged.
func (m *Manager) CaptureMouse(d *Dispatcher) error {
	if d == nil {
		return ErrNilDispatcher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrManagerClosed
	}
	if m.dispatchers[d.id] != d {
		m.logger.Warn("capture rejected", "dispatcher", d.String(), "error", ErrNotConnected)
		return fmt.Errorf("capture mouse %s: %w", d, ErrNotConnected)
	}
	switch m.capture {
	case d:
		return nil
	case nil:
		m.capture = d
		m.logger.Debug("mouse captured", "dispatcher", d.String())
		return nil
	default:
		m.logger.Warn("capture rejected", "dispatcher", d.String(), "holder", m.capture.String())
		return fmt.Errorf("capture mouse %s: %w (held by %s)", d, ErrCaptureConflict, m.capture)
	}
}

// ReleaseMouse releases the capture held by d. Releasing from a dispatcher
// that does not hold the capture fails with ErrNotCaptureHolder and leaves
// the capture state unchanged.
func (m *Manager) ReleaseMouse(d *Dispatcher) error {
	if d == nil {
		return ErrNilDispatcher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrManagerClosed
	}
	if m.dispatchers[d.id] != d {
		m.logger.Warn("release rejected", "dispatcher", d.String(), "error", ErrNotConnected)
		return fmt.Errorf("release mouse %s: %w", d, ErrNotConnected)
	}
	if m.capture != d {
		m.logger.Warn("release rejected", "dispatcher", d.String(), "error", ErrNotCaptureHolder)
		return fmt.Errorf("release mouse %s: %w", d, ErrNotCaptureHolder)
	}
	m.capture = nil
	m.logger.Debug("mouse released", "dispatcher", d.String())
	return nil
}

// MouseCapture returns the dispatcher holding the mouse capture.
func (m *Manager) MouseCapture() (*Dispatcher, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.capture, m.capture != nil
}
