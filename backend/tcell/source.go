package tcell

import (
	"context"
	"errors"
	"log/slog"

	gtcell "github.com/gdamore/tcell/v2"

	"github.com/odvcencio/furry-input/event"
)

// Config configures a Source.
type Config struct {
	// Screen is the initialized tcell screen to read from. The caller owns
	// its lifecycle and must call Fini after Run returns.
	Screen gtcell.Screen
	// Logger receives loop diagnostics. Nil discards.
	Logger *slog.Logger
	// Intercept sees every tcell event before decoding. Returning true
	// consumes the event.
	Intercept func(gtcell.Event) bool
	// EventBuffer sizes the channel between the poll goroutine and Run.
	EventBuffer int
}

// Source feeds a tcell screen's input into an event manager.
type Source struct {
	screen    gtcell.Screen
	logger    *slog.Logger
	intercept func(gtcell.Event) bool
	buffer    int
	decoder   Decoder
}

// NewSource creates a source from config.
func NewSource(cfg Config) *Source {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	buffer := cfg.EventBuffer
	if buffer <= 0 {
		buffer = 128
	}
	return &Source{
		screen:    cfg.Screen,
		logger:    logger,
		intercept: cfg.Intercept,
		buffer:    buffer,
	}
}

// Wake interrupts a blocked Run so pending draw requests get flushed. It
// is meant to be passed as event.Config.Wake. A failed post is only
// logged: the screen queue is full, and Run flushes after each of those
// queued events anyway.
func (s *Source) Wake() {
	if s == nil || s.screen == nil {
		return
	}
	if err := s.screen.PostEvent(gtcell.NewEventInterrupt(nil)); err != nil {
		s.logger.Debug("wake dropped", "error", err)
	}
}

// Run delivers input to m until ctx is done or the screen stops producing
// events. Draw requests are flushed after each event and the screen is
// shown whenever a draw ran.
func (s *Source) Run(ctx context.Context, m *event.Manager) error {
	if s.screen == nil {
		return errors.New("screen is required")
	}
	if m == nil {
		return errors.New("event manager is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	events := make(chan gtcell.Event, s.buffer)
	done := make(chan struct{})
	defer close(done)
	go s.pollEvents(events, done)

	m.RequestDraw()
	s.flush(m)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			s.handle(m, ev)
			s.flush(m)
		}
	}
}

func (s *Source) pollEvents(events chan<- gtcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (s *Source) handle(m *event.Manager, ev gtcell.Event) {
	if s.intercept != nil && s.intercept(ev) {
		return
	}
	switch e := ev.(type) {
	case *gtcell.EventResize:
		w, h := e.Size()
		s.logger.Debug("screen resized", "width", w, "height", h)
		s.screen.Sync()
		m.RequestDraw()
	case *gtcell.EventFocus:
		if !e.Focused {
			s.decoder.Reset()
		}
	case *gtcell.EventInterrupt:
	default:
		for _, raw := range s.decoder.Decode(ev) {
			m.Handle(raw)
		}
	}
}

func (s *Source) flush(m *event.Manager) {
	if m.FlushDraw() {
		s.screen.Show()
	}
}
