// Package trace writes delivered events as aligned text lines.
package trace

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-input/event"
)

// Config configures a Writer.
type Config struct {
	// NameWidth is the column width for dispatcher names. Longer names are
	// truncated. Defaults to 16.
	NameWidth int
	// Kinds limits output to the listed kinds. Empty means all.
	Kinds []event.Kind
	// Clock formats timestamps. Defaults to a relative offset from the
	// first delivery.
	Clock func(time.Time) string
}

// Writer is an event.Observer that writes one line per delivery:
//
//	+0.012s  slider            sdl_left_button_down  (3,1) captured
type Writer struct {
	mu        sync.Mutex
	out       io.Writer
	nameWidth int
	kinds     map[event.Kind]bool
	clock     func(time.Time) string
	start     time.Time
	lines     int
	err       error
}

var _ event.Observer = (*Writer)(nil)

// New creates a Writer that writes to out.
func New(out io.Writer, cfg Config) *Writer {
	width := cfg.NameWidth
	if width <= 0 {
		width = 16
	}
	w := &Writer{
		out:       out,
		nameWidth: width,
		clock:     cfg.Clock,
	}
	if len(cfg.Kinds) > 0 {
		w.kinds = make(map[event.Kind]bool, len(cfg.Kinds))
		for _, k := range cfg.Kinds {
			w.kinds[k] = true
		}
	}
	return w
}

// ParseKinds parses a comma separated list of kind labels.
func ParseKinds(list string) ([]event.Kind, error) {
	var kinds []event.Kind
	for _, label := range strings.Split(list, ",") {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		k, err := event.ParseKind(label)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// ObserveDelivery writes d unless it is filtered out. Write errors are kept
// and reported by Err; later deliveries are dropped.
func (w *Writer) ObserveDelivery(d event.Delivery) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil || w.out == nil {
		return
	}
	if w.kinds != nil && !w.kinds[d.Kind] {
		return
	}
	if _, err := io.WriteString(w.out, w.format(d)); err != nil {
		w.err = err
		return
	}
	w.lines++
}

// Lines returns how many lines were written.
func (w *Writer) Lines() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lines
}

// Err returns the first write error.
func (w *Writer) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

func (w *Writer) format(d event.Delivery) string {
	var b strings.Builder
	b.WriteString(w.timestamp(d.At))
	b.WriteString("  ")

	name := d.Name
	if name == "" {
		name = d.Target.String()
	}
	name = runewidth.Truncate(name, w.nameWidth, "…")
	b.WriteString(runewidth.FillRight(name, w.nameWidth))
	b.WriteString("  ")
	b.WriteString(runewidth.FillRight(d.Kind.String(), kindWidth))

	switch d.Kind.Class() {
	case event.ClassMouse:
		fmt.Fprintf(&b, "  (%d,%d)", d.Point.X, d.Point.Y)
	case event.ClassKeyboard:
		b.WriteString("  ")
		b.WriteString(d.Key.String())
	}
	if d.Captured {
		b.WriteString(" captured")
	}
	b.WriteByte('\n')
	return b.String()
}

func (w *Writer) timestamp(at time.Time) string {
	if w.clock != nil {
		return w.clock(at)
	}
	if w.start.IsZero() {
		w.start = at
	}
	return fmt.Sprintf("+%.3fs", at.Sub(w.start).Seconds())
}

var kindWidth = func() int {
	width := 0
	for _, k := range event.Kinds() {
		width = max(width, len(k.String()))
	}
	return width
}()
