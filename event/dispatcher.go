package event

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/oklog/ulid/v2"
)

// ID identifies a dispatcher in a manager's registry.
type ID ulid.ULID

func (id ID) String() string {
	return ulid.ULID(id).String()
}

// Dispatcher receives classified events for a widget. Dispatchers are owned
// by their widget; a manager only keeps them in its registry while they are
// connected.
type Dispatcher struct {
	id   ID
	name string

	mu      sync.Mutex
	bounds  Rect
	signals [kindCount][]Callback

	manager atomic.Pointer[Manager]
}

// NewDispatcher creates a dispatcher with a fresh ID. The name is only used
// for logging and diagnostics.
func NewDispatcher(name string) *Dispatcher {
	return &Dispatcher{
		id:   ID(ulid.Make()),
		name: name,
	}
}

// ID returns the dispatcher's registry key.
func (d *Dispatcher) ID() ID {
	return d.id
}

// Name returns the diagnostic name.
func (d *Dispatcher) Name() string {
	if d == nil {
		return ""
	}
	return d.name
}

func (d *Dispatcher) String() string {
	if d == nil {
		return "<nil>"
	}
	if d.name == "" {
		return d.id.String()
	}
	return d.name
}

// SetBounds sets the area the dispatcher receives pointer events for.
func (d *Dispatcher) SetBounds(bounds Rect) {
	d.mu.Lock()
	d.bounds = bounds
	d.mu.Unlock()
}

// Bounds returns the pointer hit area.
func (d *Dispatcher) Bounds() Rect {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bounds
}

func (d *Dispatcher) contains(p Point) bool {
	return d.Bounds().Contains(p)
}

// ConnectSignal connects cb to kind. The callback type must match the
// kind's class, otherwise ErrSignatureMismatch is returned and nothing is
// connected.
func (d *Dispatcher) ConnectSignal(kind Kind, cb Callback) error {
	if !kind.Valid() {
		return fmt.Errorf("connect signal: %w: %s", ErrUnknownKind, kind)
	}
	if isNilCallback(cb) {
		return fmt.Errorf("connect signal %s: %w: nil callback", kind, ErrSignatureMismatch)
	}
	if !isKnownCallback(cb) {
		return fmt.Errorf("connect signal %s: %w: unsupported callback type %T", kind, ErrSignatureMismatch, cb)
	}
	if got, want := cb.Class(), kind.Class(); got != want {
		return fmt.Errorf("connect signal %s: %w: got %s callback, want %s", kind, ErrSignatureMismatch, got, want)
	}
	d.mu.Lock()
	d.signals[kind] = append(d.signals[kind], cb)
	d.mu.Unlock()
	return nil
}

// MustConnectSignal is like ConnectSignal but panics on error. It is meant
// for static wiring where a mismatch is a programming error.
func (d *Dispatcher) MustConnectSignal(kind Kind, cb Callback) {
	if err := d.ConnectSignal(kind, cb); err != nil {
		panic(err)
	}
}

// DisconnectSignals removes every callback connected to kind.
func (d *Dispatcher) DisconnectSignals(kind Kind) {
	if !kind.Valid() {
		return
	}
	d.mu.Lock()
	d.signals[kind] = nil
	d.mu.Unlock()
}

// HasSignal reports whether any callback is connected to kind.
func (d *Dispatcher) HasSignal(kind Kind) bool {
	if !kind.Valid() {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.signals[kind]) > 0
}

// Manager returns the manager d is connected to, or nil.
func (d *Dispatcher) Manager() *Manager {
	return d.manager.Load()
}

// Connected reports whether d is registered with a manager.
func (d *Dispatcher) Connected() bool {
	return d.manager.Load() != nil
}

// CaptureMouse captures the mouse for d on its manager.
func (d *Dispatcher) CaptureMouse() error {
	m := d.manager.Load()
	if m == nil {
		return ErrNotConnected
	}
	return m.CaptureMouse(d)
}

// ReleaseMouse releases a mouse capture held by d.
func (d *Dispatcher) ReleaseMouse() error {
	m := d.manager.Load()
	if m == nil {
		return ErrNotConnected
	}
	return m.ReleaseMouse(d)
}

// fire calls the callbacks connected to kind in connection order and
// returns how many ran.
func (d *Dispatcher) fire(kind Kind, p payload) int {
	d.mu.Lock()
	callbacks := append([]Callback(nil), d.signals[kind]...)
	d.mu.Unlock()

	fired := 0
	for _, cb := range callbacks {
		if invoke(cb, d, kind, p) {
			fired++
		}
	}
	return fired
}
