package event

// Callback is a handler that can be connected to a dispatcher. The concrete
// type determines which event kinds it may be connected to. Only Func,
// MouseFunc and KeyFunc are callbacks.
type Callback interface {
	Class() Class
	callback()
}

// Func handles events without arguments.
type Func func(d *Dispatcher, kind Kind)

// MouseFunc handles events carrying the pointer coordinate.
type MouseFunc func(d *Dispatcher, kind Kind, at Point)

// KeyFunc handles keyboard events.
type KeyFunc func(d *Dispatcher, kind Kind, key Key)

func (Func) Class() Class      { return ClassNone }
func (MouseFunc) Class() Class { return ClassMouse }
func (KeyFunc) Class() Class   { return ClassKeyboard }

func (Func) callback()      {}
func (MouseFunc) callback() {}
func (KeyFunc) callback()   {}

// isKnownCallback reports whether cb is one of the callback types invoke
// can call. Types embedding them satisfy Callback but are not accepted.
func isKnownCallback(cb Callback) bool {
	switch cb.(type) {
	case Func, MouseFunc, KeyFunc:
		return true
	}
	return false
}

// payload is what a single delivery carries; only the field matching the
// kind's class is meaningful.
type payload struct {
	at  Point
	key Key
}

func invoke(cb Callback, d *Dispatcher, kind Kind, p payload) bool {
	switch fn := cb.(type) {
	case Func:
		fn(d, kind)
	case MouseFunc:
		fn(d, kind, p.at)
	case KeyFunc:
		fn(d, kind, p.key)
	default:
		return false
	}
	return true
}

func isNilCallback(cb Callback) bool {
	switch fn := cb.(type) {
	case nil:
		return true
	case Func:
		return fn == nil
	case MouseFunc:
		return fn == nil
	case KeyFunc:
		return fn == nil
	}
	return false
}
