// Package window manages the terminal screen lifecycle and the input
// poll loop. The poll loop is the producer side of the input latch: it
// runs on its own goroutine, translates platform events at the boundary
// and pushes logical codes into each attached world's latch queues.
package window

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/bella-project/bella/core"
	"github.com/bella-project/bella/input"
	"github.com/bella-project/bella/status"
)

// Service polls terminal events and fans them out to input latches
type Service struct {
	screen tcell.Screen

	mu      sync.Mutex
	latches []*input.Latch
	running bool

	resizeCh chan core.Point
	closeCh  chan struct{}
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once

	prevButtons tcell.ButtonMask

	statDropped *atomic.Int64
	warnedKeys  map[string]bool
}

// NewService creates a window service for an initialized screen
func NewService(screen tcell.Screen, reg *status.Registry) *Service {
	return &Service{
		screen:      screen,
		resizeCh:    make(chan core.Point, 1),
		closeCh:     make(chan struct{}),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
		statDropped: reg.Ints.Get("input.dropped"),
		warnedKeys:  make(map[string]bool),
	}
}

// AttachLatch registers a latch to receive translated input events.
// Every attached world observes the same notifications.
func (s *Service) AttachLatch(l *input.Latch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latches = append(s.latches, l)
}

// Resized delivers the most recent surface size change
func (s *Service) Resized() <-chan core.Point {
	return s.resizeCh
}

// Closed is closed when the terminal requests shutdown (interrupt or
// event stream end)
func (s *Service) Closed() <-chan struct{} {
	return s.closeCh
}

// Start launches the poll goroutine
func (s *Service) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	go s.pollLoop()
}

// Stop signals the poll loop and waits for it to exit
func (s *Service) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		// Unblock PollEvent with a synthetic event
		s.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	<-s.doneCh
}

// pollLoop reads terminal events until stop signal or stream end
func (s *Service) pollLoop() {
	defer close(s.doneCh)

	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		ev := s.screen.PollEvent()
		if ev == nil {
			s.requestClose()
			return
		}

		select {
		case <-s.stopCh:
			return
		default:
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			s.handleKey(ev)
		case *tcell.EventMouse:
			s.handleMouse(ev)
		case *tcell.EventResize:
			s.handleResize(ev)
		case *tcell.EventInterrupt:
			// Posted by Stop
		}
	}
}

// handleKey translates and fans out one key event. Terminals report key
// taps without release events, so the matching up notification is
// synthesized immediately: every key arrives as a same-frame tap and the
// latch surfaces it in both transition sets.
func (s *Service) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		s.requestClose()
		return
	}

	key, err := TranslateKey(ev)
	if err != nil {
		s.statDropped.Add(1)
		s.warnOnce(err)
		return
	}

	s.mu.Lock()
	latches := s.latches
	s.mu.Unlock()

	for _, l := range latches {
		l.NotifyKeyDown(key)
		l.NotifyKeyUp(key)
	}
}

// handleMouse diffs the button mask against the previous event to derive
// true down and up transitions, and forwards cursor movement
func (s *Service) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	s.mu.Lock()
	prev := s.prevButtons
	s.prevButtons = buttons
	latches := s.latches
	s.mu.Unlock()

	masks := []struct {
		mask   tcell.ButtonMask
		button input.Button
	}{
		{tcell.Button1, input.ButtonLeft},
		{tcell.Button2, input.ButtonMiddle},
		{tcell.Button3, input.ButtonRight},
	}

	for _, l := range latches {
		l.NotifyCursorMoved(x, y)
		for _, m := range masks {
			was := prev&m.mask != 0
			is := buttons&m.mask != 0
			switch {
			case is && !was:
				l.NotifyButtonDown(m.button)
			case !is && was:
				l.NotifyButtonUp(m.button)
			}
		}
	}
}

// handleResize forwards the newest size, replacing any pending one
func (s *Service) handleResize(ev *tcell.EventResize) {
	w, h := ev.Size()
	size := core.Point{X: w, Y: h}
	for {
		select {
		case s.resizeCh <- size:
			return
		default:
			select {
			case <-s.resizeCh:
			default:
			}
		}
	}
}

func (s *Service) requestClose() {
	select {
	case <-s.closeCh:
	default:
		close(s.closeCh)
	}
}

// warnOnce logs each distinct unmapped key once to avoid log flooding
// while a key is mashed
func (s *Service) warnOnce(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := err.Error()
	if s.warnedKeys[msg] {
		return
	}
	s.warnedKeys[msg] = true
	log.Printf("window: dropping input event: %v", err)
}
