package tiktok

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/creatorsconnections/tokboard/internal/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGateway runs a websocket server that sends the given frames in
// order and then either closes cleanly or waits for the client to hang up
func newTestGateway(t *testing.T, frames []string) *httptest.Server {
	t.Helper()

	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for _, f := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
				return
			}
		}

		// keep the connection open until the client disconnects
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func collectEvents(t *testing.T, stream Stream, n int) []models.Event {
	t.Helper()

	var events []models.Event
	timeout := time.After(5 * time.Second)
	for len(events) < n {
		select {
		case event, ok := <-stream.Events():
			if !ok {
				t.Fatalf("stream closed after %d events: %v", len(events), stream.Err())
			}
			events = append(events, event)
		case <-timeout:
			t.Fatalf("timed out waiting for events, got %d", len(events))
		}
	}
	return events
}

func TestSubscribeNormalizesFrames(t *testing.T) {
	srv := newTestGateway(t, []string{
		`{"type":"gift","user":{"unique_id":"gifter"},"gift":{"diamond_count":7,"repeat_count":1}}`,
		`{"type":"ping"}`,
		`{"type":"like","user":{"unique_id":"tapper"},"like_count":3}`,
		`{"type":"bogus frame`,
		`{"type":"comment","user":{"unique_id":"chatter"}}`,
	})
	defer srv.Close()

	client, err := New(&Config{GatewayURL: wsURL(srv)})
	require.NoError(t, err)

	stream, err := client.Subscribe(context.Background(), "creator")
	require.NoError(t, err)
	defer stream.Close()

	events := collectEvents(t, stream, 3)

	assert.Equal(t, models.EventKindGift, events[0].Kind)
	assert.Equal(t, "gifter", events[0].Handle)
	assert.Equal(t, 7, events[0].Delta)

	assert.Equal(t, models.EventKindLike, events[1].Kind)
	assert.Equal(t, 3, events[1].Delta)

	assert.Equal(t, models.EventKindComment, events[2].Kind)
}

func TestSubscribeLiveEnd(t *testing.T) {
	srv := newTestGateway(t, []string{
		`{"type":"like","user":{"unique_id":"tapper"},"like_count":1}`,
		`{"type":"live_end"}`,
	})
	defer srv.Close()

	client, err := New(&Config{GatewayURL: wsURL(srv)})
	require.NoError(t, err)

	stream, err := client.Subscribe(context.Background(), "creator")
	require.NoError(t, err)
	defer stream.Close()

	collectEvents(t, stream, 1)

	select {
	case _, ok := <-stream.Events():
		require.False(t, ok, "expected stream to close after live_end")
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not terminate after live_end")
	}

	assert.True(t, errors.Is(stream.Err(), ErrStreamEnded))
}

func TestSubscribeHeartbeatTimeout(t *testing.T) {
	srv := newTestGateway(t, nil)
	defer srv.Close()

	client, err := New(&Config{
		GatewayURL:      wsURL(srv),
		HeartbeatWindow: 50 * time.Millisecond,
	})
	require.NoError(t, err)

	stream, err := client.Subscribe(context.Background(), "creator")
	require.NoError(t, err)
	defer stream.Close()

	select {
	case _, ok := <-stream.Events():
		require.False(t, ok, "expected stream to close on heartbeat timeout")
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not time out")
	}

	require.Error(t, stream.Err())
	assert.False(t, errors.Is(stream.Err(), ErrStreamEnded))
}

func TestSubscribeEmptyHandle(t *testing.T) {
	client, err := New(&Config{GatewayURL: "ws://localhost:1"})
	require.NoError(t, err)

	_, err = client.Subscribe(context.Background(), "")
	assert.Equal(t, ErrEmptyHandle, err)
}

func TestIsLive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/is_live", r.URL.Path)
		require.Equal(t, "creator", r.URL.Query().Get("unique_id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"is_live":true}`))
	}))
	defer srv.Close()

	client, err := New(&Config{GatewayURL: "ws" + strings.TrimPrefix(srv.URL, "http")})
	require.NoError(t, err)

	live, err := client.IsLive(context.Background(), "creator")
	require.NoError(t, err)
	assert.True(t, live)
}
