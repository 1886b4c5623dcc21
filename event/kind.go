// Package event classifies raw input events and routes them to registered
// dispatchers, with mouse capture for press and drag interactions.
//
// Kinds prefixed with SDL are near-literal platform events. The manager
// only does minor decoding on them, such as splitting a button press into
// its left, middle or right variant. Unprefixed kinds are synthesized by
// the manager, for example MouseEnter and MouseLeave from pointer motion.
package event

import "fmt"

// Kind identifies an event sent to a dispatcher.
type Kind int

const (
	Draw Kind = iota

	SDLMouseMotion
	MouseEnter
	MouseMotion
	MouseLeave

	SDLLeftButtonDown
	SDLLeftButtonUp

	SDLMiddleButtonDown
	SDLMiddleButtonUp

	SDLRightButtonDown
	SDLRightButtonUp

	SDLWheelLeft
	SDLWheelRight
	SDLWheelUp
	SDLWheelDown

	SDLKeyDown

	kindCount
)

var kindNames = [kindCount]string{
	Draw:                "draw",
	SDLMouseMotion:      "sdl_mouse_motion",
	MouseEnter:          "mouse_enter",
	MouseMotion:         "mouse_motion",
	MouseLeave:          "mouse_leave",
	SDLLeftButtonDown:   "sdl_left_button_down",
	SDLLeftButtonUp:     "sdl_left_button_up",
	SDLMiddleButtonDown: "sdl_middle_button_down",
	SDLMiddleButtonUp:   "sdl_middle_button_up",
	SDLRightButtonDown:  "sdl_right_button_down",
	SDLRightButtonUp:    "sdl_right_button_up",
	SDLWheelLeft:        "sdl_wheel_left",
	SDLWheelRight:       "sdl_wheel_right",
	SDLWheelUp:          "sdl_wheel_up",
	SDLWheelDown:        "sdl_wheel_down",
	SDLKeyDown:          "sdl_key_down",
}

// Class is the callback shape an event kind is delivered with.
type Class int

const (
	// ClassInvalid is reported for kinds outside the taxonomy.
	ClassInvalid Class = iota
	// ClassNone kinds carry no argument. Some mouse kinds like MouseEnter
	// don't send coordinates and belong here as well.
	ClassNone
	// ClassMouse kinds carry the pointer coordinate.
	ClassMouse
	// ClassKeyboard kinds carry the key that was pressed.
	ClassKeyboard
)

var kindClasses = [kindCount]Class{
	Draw:       ClassNone,
	MouseEnter: ClassNone,
	MouseLeave: ClassNone,

	SDLWheelLeft:  ClassNone,
	SDLWheelRight: ClassNone,
	SDLWheelUp:    ClassNone,
	SDLWheelDown:  ClassNone,

	SDLMouseMotion:      ClassMouse,
	MouseMotion:         ClassMouse,
	SDLLeftButtonDown:   ClassMouse,
	SDLLeftButtonUp:     ClassMouse,
	SDLMiddleButtonDown: ClassMouse,
	SDLMiddleButtonUp:   ClassMouse,
	SDLRightButtonDown:  ClassMouse,
	SDLRightButtonUp:    ClassMouse,

	SDLKeyDown: ClassKeyboard,
}

// Valid reports whether k is part of the taxonomy.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// Class returns the callback class of k.
func (k Kind) Class() Class {
	if !k.Valid() {
		return ClassInvalid
	}
	return kindClasses[k]
}

// IsRaw reports whether k is a decoded platform event rather than one
// synthesized by the manager.
func (k Kind) IsRaw() bool {
	switch k {
	case Draw, MouseEnter, MouseMotion, MouseLeave:
		return false
	}
	return k.Valid()
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind returns the kind whose String form is label.
func ParseKind(label string) (Kind, error) {
	for k := Kind(0); k < kindCount; k++ {
		if kindNames[k] == label {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, label)
}

func (c Class) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassMouse:
		return "mouse"
	case ClassKeyboard:
		return "keyboard"
	default:
		return "invalid"
	}
}
