package event

// RequestDraw marks a redraw as pending. Requests coalesce until the next
// FlushDraw; the first request after a flush calls the configured Wake.
func (m *Manager) RequestDraw() {
	if m.Closed() {
		return
	}
	if m.drawPending.CompareAndSwap(false, true) && m.wake != nil {
		m.wake()
	}
}

// DrawPending reports whether a redraw was requested since the last flush.
func (m *Manager) DrawPending() bool {
	return m.drawPending.Load()
}

// FlushDraw runs Draw if a redraw is pending and reports whether it did.
// A closed manager never draws.
func (m *Manager) FlushDraw() bool {
	if !m.drawPending.Swap(false) {
		return false
	}
	if m.Closed() {
		return false
	}
	m.Draw()
	return true
}
