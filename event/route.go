package event

import "time"

type delivery struct {
	target   *Dispatcher
	kind     Kind
	payload  payload
	captured bool
}

// Handle decodes raw input and delivers the resulting events. It reports
// whether any callback ran.
func (m *Manager) Handle(raw Raw) bool {
	var queue []delivery
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return false
	}
	switch r := raw.(type) {
	case RawMotion:
		queue = m.routeMotion(Point{X: r.X, Y: r.Y})
	case RawButton:
		kind, ok := ButtonKind(r.Button, r.Down)
		if ok {
			queue = m.routePointer(kind, Point{X: r.X, Y: r.Y})
		}
	case RawWheel:
		kind, ok := WheelKind(r.Direction)
		if ok {
			queue = m.routePointer(kind, Point{X: r.X, Y: r.Y})
		}
	case RawKey:
		if m.focus != nil {
			queue = append(queue, delivery{target: m.focus, kind: SDLKeyDown, payload: payload{key: r.Key}})
		}
	}
	m.mu.Unlock()
	return m.deliver(queue)
}

// routeMotion updates the pointer and hover state for a move to p and
// returns the deliveries it produces. Must be called with m.mu held.
//
// The raw motion goes to the capture holder or the dispatcher under the
// pointer. Hover changes produce MouseLeave on the old hover and
// MouseEnter on the new one, followed by MouseMotion on the hover. While
// captured, only the holder can be hovered.
func (m *Manager) routeMotion(p Point) []delivery {
	m.pointer = p
	captured := m.capture != nil

	var hover *Dispatcher
	if captured {
		if m.capture.contains(p) {
			hover = m.capture
		}
	} else {
		hover = m.hitTest(p)
	}

	var queue []delivery
	if target := m.pointerTarget(p); target != nil {
		queue = append(queue, delivery{target: target, kind: SDLMouseMotion, payload: payload{at: p}, captured: captured})
	}
	if hover != m.hover {
		if m.hover != nil {
			queue = append(queue, delivery{target: m.hover, kind: MouseLeave, captured: captured})
		}
		if hover != nil {
			queue = append(queue, delivery{target: hover, kind: MouseEnter, captured: captured})
		}
		m.hover = hover
	}
	if hover != nil {
		queue = append(queue, delivery{target: hover, kind: MouseMotion, payload: payload{at: p}, captured: captured})
	}
	return queue
}

// routePointer targets a button or wheel event. Must be called with m.mu
// held.
func (m *Manager) routePointer(kind Kind, p Point) []delivery {
	m.pointer = p
	target := m.pointerTarget(p)
	if target == nil {
		return nil
	}
	return []delivery{{target: target, kind: kind, payload: payload{at: p}, captured: m.capture != nil}}
}

func (m *Manager) pointerTarget(p Point) *Dispatcher {
	if m.capture != nil {
		return m.capture
	}
	return m.hitTest(p)
}

// hitTest returns the most recently connected dispatcher containing p.
func (m *Manager) hitTest(p Point) *Dispatcher {
	for i := len(m.order) - 1; i >= 0; i-- {
		if d := m.order[i]; d.contains(p) {
			return d
		}
	}
	return nil
}

// Pointer returns the last pointer position seen by Handle.
func (m *Manager) Pointer() Point {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pointer
}

// Draw sends a Draw event to every connected dispatcher in connection
// order. It reports whether any callback ran.
func (m *Manager) Draw() bool {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return false
	}
	queue := make([]delivery, 0, len(m.order))
	for _, d := range m.order {
		queue = append(queue, delivery{target: d, kind: Draw})
	}
	m.mu.Unlock()
	return m.deliver(queue)
}

// deliver fires the queued deliveries in order. A target disconnected by an
// earlier callback in the same queue is skipped.
func (m *Manager) deliver(queue []delivery) bool {
	delivered := false
	for _, dl := range queue {
		if dl.target.manager.Load() != m {
			continue
		}
		fired := dl.target.fire(dl.kind, dl.payload)
		if fired == 0 {
			continue
		}
		delivered = true
		if m.observer != nil {
			m.observer.ObserveDelivery(Delivery{
				Kind:     dl.kind,
				Target:   dl.target.id,
				Name:     dl.target.name,
				Point:    dl.payload.at,
				Key:      dl.payload.key,
				Captured: dl.captured,
				Fired:    fired,
				At:       time.Now(),
			})
		}
	}
	return delivered
}
