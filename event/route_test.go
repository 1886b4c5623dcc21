package event

import (
	"reflect"
	"testing"
)

type recorder struct {
	log []string
	at  []Point
	key []Key
}

func (r *recorder) attach(d *Dispatcher) {
	for _, kind := range Kinds() {
		switch kind.Class() {
		case ClassNone:
			d.MustConnectSignal(kind, Func(func(d *Dispatcher, k Kind) {
				r.log = append(r.log, d.Name()+":"+k.String())
			}))
		case ClassMouse:
			d.MustConnectSignal(kind, MouseFunc(func(d *Dispatcher, k Kind, at Point) {
				r.log = append(r.log, d.Name()+":"+k.String())
				r.at = append(r.at, at)
			}))
		case ClassKeyboard:
			d.MustConnectSignal(kind, KeyFunc(func(d *Dispatcher, k Kind, key Key) {
				r.log = append(r.log, d.Name()+":"+k.String())
				r.key = append(r.key, key)
			}))
		}
	}
}

func (r *recorder) take() []string {
	out := r.log
	r.log = nil
	return out
}

func newRoutingFixture(t *testing.T) (*Manager, *Dispatcher, *Dispatcher, *recorder) {
	t.Helper()
	rec := &recorder{}
	m := NewManager(Config{})
	back := NewDispatcher("back")
	back.SetBounds(Rect{X: 0, Y: 0, Width: 10, Height: 10})
	front := NewDispatcher("front")
	front.SetBounds(Rect{X: 5, Y: 5, Width: 10, Height: 10})
	rec.attach(back)
	rec.attach(front)
	if err := m.Connect(back); err != nil {
		t.Fatalf("connect back: %v", err)
	}
	if err := m.Connect(front); err != nil {
		t.Fatalf("connect front: %v", err)
	}
	return m, back, front, rec
}

func expectLog(t *testing.T, got, want []string) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("deliveries mismatch\n got: %v\nwant: %v", got, want)
	}
}

func TestRoute_MotionEnterLeave(t *testing.T) {
	m, back, front, rec := newRoutingFixture(t)

	m.Handle(RawMotion{X: 1, Y: 1})
	expectLog(t, rec.take(), []string{"back:sdl_mouse_motion", "back:mouse_enter", "back:mouse_motion"})
	if m.Hover() != back {
		t.Fatalf("expected hover on back")
	}

	m.Handle(RawMotion{X: 2, Y: 1})
	expectLog(t, rec.take(), []string{"back:sdl_mouse_motion", "back:mouse_motion"})

	m.Handle(RawMotion{X: 6, Y: 6})
	expectLog(t, rec.take(), []string{"front:sdl_mouse_motion", "back:mouse_leave", "front:mouse_enter", "front:mouse_motion"})
	if m.Hover() != front {
		t.Fatalf("expected hover on front")
	}

	m.Handle(RawMotion{X: 30, Y: 30})
	expectLog(t, rec.take(), []string{"front:mouse_leave"})
	if m.Hover() != nil {
		t.Fatalf("expected no hover")
	}
	if m.Pointer() != (Point{X: 30, Y: 30}) {
		t.Fatalf("expected pointer tracked, got %+v", m.Pointer())
	}
}

func TestRoute_ButtonsSplitByButton(t *testing.T) {
	m, _, _, rec := newRoutingFixture(t)

	m.Handle(RawButton{X: 1, Y: 1, Button: ButtonLeft, Down: true})
	m.Handle(RawButton{X: 1, Y: 1, Button: ButtonLeft, Down: false})
	m.Handle(RawButton{X: 7, Y: 7, Button: ButtonMiddle, Down: true})
	m.Handle(RawButton{X: 7, Y: 7, Button: ButtonMiddle, Down: false})
	m.Handle(RawButton{X: 12, Y: 12, Button: ButtonRight, Down: true})
	m.Handle(RawButton{X: 12, Y: 12, Button: ButtonRight, Down: false})

	expectLog(t, rec.take(), []string{
		"back:sdl_left_button_down",
		"back:sdl_left_button_up",
		"front:sdl_middle_button_down",
		"front:sdl_middle_button_up",
		"front:sdl_right_button_down",
		"front:sdl_right_button_up",
	})
	if rec.at[2] != (Point{X: 7, Y: 7}) {
		t.Fatalf("expected coordinate payload, got %+v", rec.at[2])
	}
}

func TestRoute_NothingUnderPointer(t *testing.T) {
	m, _, _, rec := newRoutingFixture(t)
	if m.Handle(RawButton{X: 50, Y: 50, Button: ButtonLeft, Down: true}) {
		t.Fatalf("expected no delivery")
	}
	if m.Handle(RawButton{X: 1, Y: 1, Button: Button(9), Down: true}) {
		t.Fatalf("expected unknown button to be dropped")
	}
	expectLog(t, rec.take(), nil)
}

func TestRoute_Wheel(t *testing.T) {
	m, _, _, rec := newRoutingFixture(t)
	m.Handle(RawWheel{X: 1, Y: 1, Direction: WheelUp})
	m.Handle(RawWheel{X: 1, Y: 1, Direction: WheelDown})
	m.Handle(RawWheel{X: 8, Y: 8, Direction: WheelLeft})
	m.Handle(RawWheel{X: 8, Y: 8, Direction: WheelRight})
	expectLog(t, rec.take(), []string{
		"back:sdl_wheel_up",
		"back:sdl_wheel_down",
		"front:sdl_wheel_left",
		"front:sdl_wheel_right",
	})
}

func TestRoute_CaptureRoutesEverythingToHolder(t *testing.T) {
	m, back, _, rec := newRoutingFixture(t)

	m.Handle(RawMotion{X: 1, Y: 1})
	m.Handle(RawButton{X: 1, Y: 1, Button: ButtonLeft, Down: true})
	if err := back.CaptureMouse(); err != nil {
		t.Fatalf("capture: %v", err)
	}
	rec.take()

	// Over front, but back holds the capture.
	m.Handle(RawMotion{X: 12, Y: 12})
	expectLog(t, rec.take(), []string{"back:sdl_mouse_motion", "back:mouse_leave"})

	m.Handle(RawWheel{X: 12, Y: 12, Direction: WheelDown})
	m.Handle(RawButton{X: 12, Y: 12, Button: ButtonLeft, Down: false})
	expectLog(t, rec.take(), []string{"back:sdl_wheel_down", "back:sdl_left_button_up"})

	m.Handle(RawMotion{X: 2, Y: 2})
	expectLog(t, rec.take(), []string{"back:sdl_mouse_motion", "back:mouse_enter", "back:mouse_motion"})

	if err := back.ReleaseMouse(); err != nil {
		t.Fatalf("release: %v", err)
	}
	m.Handle(RawMotion{X: 12, Y: 12})
	expectLog(t, rec.take(), []string{"front:sdl_mouse_motion", "back:mouse_leave", "front:mouse_enter", "front:mouse_motion"})
}

func TestRoute_CaptureFromCallback(t *testing.T) {
	m := NewManager(Config{})
	slider := NewDispatcher("slider")
	slider.SetBounds(Rect{Width: 3, Height: 1})
	var dragged []Point
	slider.MustConnectSignal(SDLLeftButtonDown, MouseFunc(func(d *Dispatcher, _ Kind, _ Point) {
		if err := d.CaptureMouse(); err != nil {
			t.Errorf("capture in callback: %v", err)
		}
	}))
	slider.MustConnectSignal(SDLMouseMotion, MouseFunc(func(_ *Dispatcher, _ Kind, at Point) {
		dragged = append(dragged, at)
	}))
	slider.MustConnectSignal(SDLLeftButtonUp, MouseFunc(func(d *Dispatcher, _ Kind, _ Point) {
		if err := d.ReleaseMouse(); err != nil {
			t.Errorf("release in callback: %v", err)
		}
	}))
	_ = m.Connect(slider)

	m.Handle(RawButton{X: 1, Y: 0, Button: ButtonLeft, Down: true})
	m.Handle(RawMotion{X: 40, Y: 9})
	m.Handle(RawButton{X: 40, Y: 9, Button: ButtonLeft, Down: false})
	m.Handle(RawMotion{X: 41, Y: 9})

	if len(dragged) != 1 || dragged[0] != (Point{X: 40, Y: 9}) {
		t.Fatalf("expected one captured drag motion, got %v", dragged)
	}
	if _, ok := m.MouseCapture(); ok {
		t.Fatalf("expected capture released on button up")
	}
}

func TestRoute_KeyboardFocus(t *testing.T) {
	m, back, _, rec := newRoutingFixture(t)
	key := Key{Code: KeyRune, Rune: 'x', Mods: ModCtrl}

	if m.Handle(RawKey{Key: key}) {
		t.Fatalf("expected key dropped without focus")
	}
	if err := m.SetKeyboardFocus(back); err != nil {
		t.Fatalf("focus: %v", err)
	}
	if !m.Handle(RawKey{Key: key}) {
		t.Fatalf("expected key delivered")
	}
	expectLog(t, rec.take(), []string{"back:sdl_key_down"})
	if rec.key[0] != key {
		t.Fatalf("expected key payload %v, got %v", key, rec.key[0])
	}
}

func TestRoute_DisconnectDuringDelivery(t *testing.T) {
	m := NewManager(Config{})
	d := NewDispatcher("d")
	d.SetBounds(Rect{Width: 5, Height: 5})
	var kinds []Kind
	d.MustConnectSignal(SDLMouseMotion, MouseFunc(func(d *Dispatcher, k Kind, _ Point) {
		kinds = append(kinds, k)
		_ = d.Manager().Disconnect(d)
	}))
	d.MustConnectSignal(MouseEnter, Func(func(_ *Dispatcher, k Kind) {
		kinds = append(kinds, k)
	}))
	_ = m.Connect(d)

	m.Handle(RawMotion{X: 1, Y: 1})
	if len(kinds) != 1 || kinds[0] != SDLMouseMotion {
		t.Fatalf("expected delivery to stop after disconnect, got %v", kinds)
	}
}

func TestRoute_Draw(t *testing.T) {
	m, _, _, rec := newRoutingFixture(t)
	if !m.Draw() {
		t.Fatalf("expected draw delivered")
	}
	expectLog(t, rec.take(), []string{"back:draw", "front:draw"})
}

func TestRoute_Observer(t *testing.T) {
	var seen []Delivery
	m := NewManager(Config{Observer: ObserverFunc(func(d Delivery) { seen = append(seen, d) })})
	d := NewDispatcher("button")
	d.SetBounds(Rect{Width: 4, Height: 1})
	d.MustConnectSignal(SDLLeftButtonDown, MouseFunc(func(*Dispatcher, Kind, Point) {}))
	_ = m.Connect(d)
	_ = m.CaptureMouse(d)

	m.Handle(RawMotion{X: 2, Y: 0})
	m.Handle(RawButton{X: 2, Y: 0, Button: ButtonLeft, Down: true})

	if len(seen) != 1 {
		t.Fatalf("expected only callback-bearing deliveries observed, got %d", len(seen))
	}
	got := seen[0]
	if got.Kind != SDLLeftButtonDown || got.Target != d.ID() || got.Name != "button" || !got.Captured || got.Fired != 1 {
		t.Fatalf("unexpected delivery %+v", got)
	}
	if got.Point != (Point{X: 2, Y: 0}) || got.At.IsZero() {
		t.Fatalf("unexpected delivery payload %+v", got)
	}
}

func TestRoute_ClosedManagerIgnoresInput(t *testing.T) {
	m, _, _, rec := newRoutingFixture(t)
	_ = m.Close()
	if m.Handle(RawMotion{X: 1, Y: 1}) || m.Draw() {
		t.Fatalf("expected closed manager to drop input")
	}
	expectLog(t, rec.take(), nil)
}
