package event

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
)

// Config configures a Manager.
type Config struct {
	// Logger receives registry and capture diagnostics. Nil discards.
	Logger *slog.Logger
	// Observer is notified of every delivery that reached a callback.
	Observer Observer
	// Wake is called when a redraw is first requested after a flush so an
	// idle event loop can come around and call FlushDraw.
	Wake func()
}

// Manager is the registry of connected dispatchers. It owns the mouse
// capture and hover state and routes decoded input to dispatchers.
//
// All delivery happens synchronously on the goroutine calling Handle or
// Draw. Callbacks run without the manager lock held, so they may connect,
// disconnect, capture or release.
type Manager struct {
	logger   *slog.Logger
	observer Observer
	wake     func()

	mu          sync.Mutex
	dispatchers map[ID]*Dispatcher
	order       []*Dispatcher
	capture     *Dispatcher
	hover       *Dispatcher
	focus       *Dispatcher
	pointer     Point
	closed      bool
	onClose     func(*Manager)

	drawPending atomic.Bool
}

// NewManager creates an empty manager.
func NewManager(cfg Config) *Manager {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{
		logger:      logger,
		observer:    cfg.Observer,
		wake:        cfg.Wake,
		dispatchers: make(map[ID]*Dispatcher),
	}
}

// Connect registers d so it can receive events. Connecting a dispatcher
// that is already connected, to this or another manager, fails with
// ErrAlreadyConnected.
func (m *Manager) Connect(d *Dispatcher) error {
	if d == nil {
		return ErrNilDispatcher
	}
	if d.id == (ID{}) {
		return fmt.Errorf("connect %s: %w", d.name, ErrNoDispatcherID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrManagerClosed
	}
	if !d.manager.CompareAndSwap(nil, m) {
		m.logger.Warn("connect rejected", "dispatcher", d.String(), "id", d.ID().String())
		return fmt.Errorf("connect %s: %w", d, ErrAlreadyConnected)
	}
	m.dispatchers[d.id] = d
	m.order = append(m.order, d)
	m.logger.Debug("dispatcher connected", "dispatcher", d.String(), "id", d.ID().String())
	return nil
}

// Disconnect removes d from the registry. A mouse capture held by d is
// released, and hover or keyboard focus on d is cleared.
func (m *Manager) Disconnect(d *Dispatcher) error {
	if d == nil {
		return ErrNilDispatcher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrManagerClosed
	}
	if m.dispatchers[d.id] != d {
		m.logger.Warn("disconnect rejected", "dispatcher", d.String(), "id", d.ID().String())
		return fmt.Errorf("disconnect %s: %w", d, ErrNotConnected)
	}
	delete(m.dispatchers, d.id)
	m.order = slices.DeleteFunc(m.order, func(other *Dispatcher) bool { return other == d })
	if m.capture == d {
		m.capture = nil
		m.logger.Debug("mouse capture released by disconnect", "dispatcher", d.String())
	}
	if m.hover == d {
		m.hover = nil
	}
	if m.focus == d {
		m.focus = nil
	}
	d.manager.Store(nil)
	m.logger.Debug("dispatcher disconnected", "dispatcher", d.String(), "id", d.ID().String())
	return nil
}

// IsConnected reports whether d is registered with m.
func (m *Manager) IsConnected(d *Dispatcher) bool {
	if d == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dispatchers[d.id] == d
}

// Lookup returns the connected dispatcher with the given ID.
func (m *Manager) Lookup(id ID) (*Dispatcher, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.dispatchers[id]
	return d, ok
}

// Dispatchers returns the connected dispatchers in connection order.
func (m *Manager) Dispatchers() []*Dispatcher {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.order)
}

// Len returns the number of connected dispatchers.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.order)
}

// SetKeyboardFocus directs keyboard events to d. A nil d clears focus.
func (m *Manager) SetKeyboardFocus(d *Dispatcher) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrManagerClosed
	}
	if d != nil && m.dispatchers[d.id] != d {
		return fmt.Errorf("keyboard focus %s: %w", d, ErrNotConnected)
	}
	m.focus = d
	return nil
}

// KeyboardFocus returns the dispatcher receiving keyboard events, or nil.
func (m *Manager) KeyboardFocus() *Dispatcher {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.focus
}

// Hover returns the dispatcher the pointer is currently over, or nil.
func (m *Manager) Hover() *Dispatcher {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hover
}

// Closed reports whether Close has been called.
func (m *Manager) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Close tears the manager down. Every dispatcher is detached and the
// capture, hover and focus state is cleared. Close is idempotent.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	for _, d := range m.order {
		d.manager.CompareAndSwap(m, nil)
	}
	count := len(m.order)
	m.dispatchers = make(map[ID]*Dispatcher)
	m.order = nil
	m.capture = nil
	m.hover = nil
	m.focus = nil
	onClose := m.onClose
	m.onClose = nil
	m.mu.Unlock()

	m.drawPending.Store(false)
	m.logger.Debug("event manager closed", "dispatchers", count)
	if onClose != nil {
		onClose(m)
	}
	return nil
}
