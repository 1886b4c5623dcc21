// Package tcell adapts a tcell screen into raw input for an event manager.
package tcell

import (
	gtcell "github.com/gdamore/tcell/v2"

	"github.com/odvcencio/furry-input/event"
)

// Decoder turns tcell events into raw manager input. tcell reports the set
// of held buttons rather than edges, so the decoder keeps the previous
// button state and pointer position to produce press, release and motion.
type Decoder struct {
	buttons gtcell.ButtonMask
	pos     event.Point
	seen    bool
}

var buttonOrder = []struct {
	mask   gtcell.ButtonMask
	button event.Button
}{
	{gtcell.Button1, event.ButtonLeft},
	{gtcell.Button3, event.ButtonMiddle},
	{gtcell.Button2, event.ButtonRight},
}

var wheelOrder = []struct {
	mask gtcell.ButtonMask
	dir  event.WheelDirection
}{
	{gtcell.WheelUp, event.WheelUp},
	{gtcell.WheelDown, event.WheelDown},
	{gtcell.WheelLeft, event.WheelLeft},
	{gtcell.WheelRight, event.WheelRight},
}

// Decode returns the raw input carried by ev, in delivery order. Events
// that carry no input, such as resizes, decode to nothing.
func (d *Decoder) Decode(ev gtcell.Event) []event.Raw {
	switch e := ev.(type) {
	case *gtcell.EventMouse:
		return d.decodeMouse(e)
	case *gtcell.EventKey:
		return []event.Raw{event.RawKey{Key: DecodeKey(e)}}
	}
	return nil
}

// Reset forgets the tracked button state, e.g. after the screen lost
// focus and releases may have been missed.
func (d *Decoder) Reset() {
	d.buttons = 0
	d.seen = false
}

func (d *Decoder) decodeMouse(e *gtcell.EventMouse) []event.Raw {
	x, y := e.Position()
	pos := event.Point{X: x, Y: y}
	btns := e.Buttons()

	var raws []event.Raw
	if !d.seen || pos != d.pos {
		raws = append(raws, event.RawMotion{X: x, Y: y})
		d.pos = pos
		d.seen = true
	}
	for _, b := range buttonOrder {
		was := d.buttons&b.mask != 0
		now := btns&b.mask != 0
		if was != now {
			raws = append(raws, event.RawButton{X: x, Y: y, Button: b.button, Down: now})
		}
	}
	for _, w := range wheelOrder {
		if btns&w.mask != 0 {
			raws = append(raws, event.RawWheel{X: x, Y: y, Direction: w.dir})
		}
	}
	d.buttons = btns & (gtcell.Button1 | gtcell.Button2 | gtcell.Button3)
	return raws
}

var keyCodes = map[gtcell.Key]event.KeyCode{
	gtcell.KeyEnter:      event.KeyEnter,
	gtcell.KeyEscape:     event.KeyEscape,
	gtcell.KeyTab:        event.KeyTab,
	gtcell.KeyBacktab:    event.KeyBacktab,
	gtcell.KeyBackspace:  event.KeyBackspace,
	gtcell.KeyBackspace2: event.KeyBackspace,
	gtcell.KeyDelete:     event.KeyDelete,
	gtcell.KeyInsert:     event.KeyInsert,
	gtcell.KeyUp:         event.KeyUp,
	gtcell.KeyDown:       event.KeyDown,
	gtcell.KeyLeft:       event.KeyLeft,
	gtcell.KeyRight:      event.KeyRight,
	gtcell.KeyHome:       event.KeyHome,
	gtcell.KeyEnd:        event.KeyEnd,
	gtcell.KeyPgUp:       event.KeyPageUp,
	gtcell.KeyPgDn:       event.KeyPageDown,
	gtcell.KeyF1:         event.KeyF1,
	gtcell.KeyF2:         event.KeyF2,
	gtcell.KeyF3:         event.KeyF3,
	gtcell.KeyF4:         event.KeyF4,
	gtcell.KeyF5:         event.KeyF5,
	gtcell.KeyF6:         event.KeyF6,
	gtcell.KeyF7:         event.KeyF7,
	gtcell.KeyF8:         event.KeyF8,
	gtcell.KeyF9:         event.KeyF9,
	gtcell.KeyF10:        event.KeyF10,
	gtcell.KeyF11:        event.KeyF11,
	gtcell.KeyF12:        event.KeyF12,
}

// DecodeKey converts a tcell key event. Control characters that tcell
// reports as dedicated keys come back as the letter with ModCtrl.
func DecodeKey(e *gtcell.EventKey) event.Key {
	mods := decodeMods(e.Modifiers())
	k := e.Key()
	if k == gtcell.KeyRune {
		return event.Key{Code: event.KeyRune, Rune: e.Rune(), Mods: mods}
	}
	if code, ok := keyCodes[k]; ok {
		return event.Key{Code: code, Mods: mods}
	}
	if k >= gtcell.KeyCtrlA && k <= gtcell.KeyCtrlZ {
		return event.Key{Code: event.KeyRune, Rune: 'a' + rune(k-gtcell.KeyCtrlA), Mods: mods | event.ModCtrl}
	}
	return event.Key{Code: event.KeyUnknown, Mods: mods}
}

func decodeMods(m gtcell.ModMask) event.Modifier {
	var mods event.Modifier
	if m&gtcell.ModShift != 0 {
		mods |= event.ModShift
	}
	if m&gtcell.ModCtrl != 0 {
		mods |= event.ModCtrl
	}
	if m&gtcell.ModAlt != 0 {
		mods |= event.ModAlt
	}
	if m&gtcell.ModMeta != 0 {
		mods |= event.ModMeta
	}
	return mods
}
