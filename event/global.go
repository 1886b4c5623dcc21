package event

import "sync"

var (
	activeMu sync.Mutex
	active   *Manager
)

// Start creates a manager and installs it as the process-wide active
// manager used by the package-level functions. Only one manager can be
// active at a time; closing it uninstalls it.
//
//	m, err := event.Start(event.Config{Logger: logger})
//	if err != nil {
//		return err
//	}
//	defer m.Close()
func Start(cfg Config) (*Manager, error) {
	activeMu.Lock()
	defer activeMu.Unlock()
	if active != nil {
		return nil, ErrManagerActive
	}
	m := NewManager(cfg)
	m.onClose = uninstall
	active = m
	return m, nil
}

func uninstall(m *Manager) {
	activeMu.Lock()
	defer activeMu.Unlock()
	if active == m {
		active = nil
	}
}

// Active returns the active manager, or nil.
func Active() *Manager {
	activeMu.Lock()
	defer activeMu.Unlock()
	return active
}

func activeManager() (*Manager, error) {
	if m := Active(); m != nil {
		return m, nil
	}
	return nil, ErrNoManager
}

// ConnectDispatcher connects d to the active manager.
func ConnectDispatcher(d *Dispatcher) error {
	m, err := activeManager()
	if err != nil {
		return err
	}
	return m.Connect(d)
}

// DisconnectDispatcher disconnects d from the active manager.
func DisconnectDispatcher(d *Dispatcher) error {
	m, err := activeManager()
	if err != nil {
		return err
	}
	return m.Disconnect(d)
}

// CaptureMouse captures the mouse for d on the active manager.
func CaptureMouse(d *Dispatcher) error {
	m, err := activeManager()
	if err != nil {
		return err
	}
	return m.CaptureMouse(d)
}

// ReleaseMouse releases the mouse capture held by d on the active manager.
func ReleaseMouse(d *Dispatcher) error {
	m, err := activeManager()
	if err != nil {
		return err
	}
	return m.ReleaseMouse(d)
}
