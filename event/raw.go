package event

// Raw is decoded platform input handed to Manager.Handle.
type Raw interface {
	isRaw()
}

// Button identifies a mouse button.
type Button int

const (
	ButtonLeft Button = iota + 1
	ButtonMiddle
	ButtonRight
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "unknown"
	}
}

// WheelDirection identifies a wheel step.
type WheelDirection int

const (
	WheelUp WheelDirection = iota + 1
	WheelDown
	WheelLeft
	WheelRight
)

// RawMotion is pointer movement to X, Y.
type RawMotion struct {
	X, Y int
}

func (RawMotion) isRaw() {}

// RawButton is a press or release of a mouse button at X, Y.
type RawButton struct {
	X, Y   int
	Button Button
	Down   bool
}

func (RawButton) isRaw() {}

// RawWheel is one wheel step with the pointer at X, Y.
type RawWheel struct {
	X, Y      int
	Direction WheelDirection
}

func (RawWheel) isRaw() {}

// RawKey is a key press.
type RawKey struct {
	Key Key
}

func (RawKey) isRaw() {}

// ButtonKind returns the event kind for a button edge.
func ButtonKind(b Button, down bool) (Kind, bool) {
	switch b {
	case ButtonLeft:
		if down {
			return SDLLeftButtonDown, true
		}
		return SDLLeftButtonUp, true
	case ButtonMiddle:
		if down {
			return SDLMiddleButtonDown, true
		}
		return SDLMiddleButtonUp, true
	case ButtonRight:
		if down {
			return SDLRightButtonDown, true
		}
		return SDLRightButtonUp, true
	}
	return 0, false
}

// WheelKind returns the event kind for a wheel direction.
func WheelKind(dir WheelDirection) (Kind, bool) {
	switch dir {
	case WheelUp:
		return SDLWheelUp, true
	case WheelDown:
		return SDLWheelDown, true
	case WheelLeft:
		return SDLWheelLeft, true
	case WheelRight:
		return SDLWheelRight, true
	}
	return 0, false
}
