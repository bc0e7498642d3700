package tiktok

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/creatorsconnections/tokboard/internal/metrics"
	"github.com/creatorsconnections/tokboard/internal/models"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// liveStream implements Stream over a gateway websocket connection. A single
// reader goroutine owns the connection; malformed frames are counted and
// dropped without terminating the stream.
type liveStream struct {
	conn   *websocket.Conn
	window time.Duration
	logger *logrus.Entry

	events chan models.Event
	done   chan struct{}

	closeOnce sync.Once

	mu  sync.Mutex
	err error
}

func newStream(conn *websocket.Conn, window time.Duration, logger *logrus.Entry) *liveStream {
	s := &liveStream{
		conn:   conn,
		window: window,
		logger: logger,
		events: make(chan models.Event, 64),
		done:   make(chan struct{}),
	}

	go s.readLoop()

	return s
}

// Events returns the normalized event channel. It is closed when the stream
// terminates; use Err to learn why.
func (s *liveStream) Events() <-chan models.Event {
	return s.events
}

// Err returns the terminal error after Events has been closed.
// ErrStreamEnded means the broadcast finished normally.
func (s *liveStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close tears down the connection and unblocks the reader
func (s *liveStream) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
	})
	return s.conn.Close()
}

func (s *liveStream) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

func (s *liveStream) readLoop() {
	defer close(s.events)
	defer s.conn.Close()

	for {
		// any frame, including pings, counts as a liveness signal
		if err := s.conn.SetReadDeadline(time.Now().Add(s.window)); err != nil {
			s.setErr(err)
			return
		}

		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			s.setErr(err)
			return
		}

		var f frame
		if err := json.Unmarshal(raw, &f); err != nil {
			metrics.MalformedEvents.Inc()
			s.logger.WithError(ErrMalformedEvent).WithField("cause", err.Error()).Debug("dropping undecodable frame")
			continue
		}

		switch f.Type {
		case framePing:
			continue
		case frameLiveEnd:
			s.setErr(ErrStreamEnded)
			return
		}

		event, err := normalize(&f, time.Now())
		if err != nil {
			metrics.MalformedEvents.Inc()
			s.logger.WithError(err).WithField("frame_type", f.Type).Debug("dropping malformed frame")
			continue
		}

		select {
		case s.events <- *event:
		case <-s.done:
			s.setErr(ErrStreamEnded)
			return
		}
	}
}
