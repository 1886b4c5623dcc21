package event

import "errors"

// Errors returned by the manager and dispatchers.
var (
	ErrNilDispatcher     = errors.New("dispatcher is nil")
	ErrNoDispatcherID    = errors.New("dispatcher has no id, use NewDispatcher")
	ErrAlreadyConnected  = errors.New("dispatcher already connected")
	ErrNotConnected      = errors.New("dispatcher not connected")
	ErrCaptureConflict   = errors.New("mouse captured by another dispatcher")
	ErrNotCaptureHolder  = errors.New("dispatcher does not hold mouse capture")
	ErrSignatureMismatch = errors.New("callback signature does not match event kind")
	ErrUnknownKind       = errors.New("unknown event kind")
	ErrManagerClosed     = errors.New("event manager closed")
	ErrManagerActive     = errors.New("event manager already active")
	ErrNoManager         = errors.New("no active event manager")
)
