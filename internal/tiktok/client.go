package tiktok

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/creatorsconnections/tokboard/internal/models"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/creatorsconnections/tokboard/internal/tiktok LiveSource,Stream

// LiveSource provides subscriptions to a creator's live broadcast
type LiveSource interface {
	// Subscribe opens a stream of normalized events for a creator's live.
	// The returned stream stays open until the broadcast ends, the
	// connection drops, or Close is called.
	Subscribe(ctx context.Context, handle string) (Stream, error)

	// IsLive reports whether the creator is currently broadcasting
	IsLive(ctx context.Context, handle string) (bool, error)
}

// Stream is a cancellable sequence of normalized live events. Events is
// closed when the stream terminates; Err then reports why.
type Stream interface {
	Events() <-chan models.Event
	Err() error
	Close() error
}

const (
	// DefaultGatewayURL is the websocket gateway that relays TikTok
	// webcast messages as JSON frames
	DefaultGatewayURL = "wss://ws.eulerstream.com"

	// DefaultHeartbeatWindow is how long the stream waits for any frame
	// (including pings) before treating the connection as dead
	DefaultHeartbeatWindow = 30 * time.Second
)

// Config holds configuration for the TikTok live client
type Config struct {
	// GatewayURL is the websocket gateway base URL
	GatewayURL string

	// SessionID is the TikTok session cookie, required for age-restricted lives
	SessionID string

	// HeartbeatWindow is the read deadline between frames
	HeartbeatWindow time.Duration

	// Logger for dropped frames and connection events
	Logger *logrus.Entry
}

// Client connects to the webcast gateway and normalizes its frames
type Client struct {
	gatewayURL      string
	sessionID       string
	heartbeatWindow time.Duration
	logger          *logrus.Entry
	dialer          *websocket.Dialer
	httpClient      *http.Client
}

// New creates a new TikTok live client
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	gatewayURL := cfg.GatewayURL
	if gatewayURL == "" {
		gatewayURL = DefaultGatewayURL
	}

	window := cfg.HeartbeatWindow
	if window <= 0 {
		window = DefaultHeartbeatWindow
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}

	return &Client{
		gatewayURL:      gatewayURL,
		sessionID:       cfg.SessionID,
		heartbeatWindow: window,
		logger:          logger,
		dialer:          websocket.DefaultDialer,
		httpClient:      &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// Subscribe dials the gateway and returns a stream of normalized events
func (c *Client) Subscribe(ctx context.Context, handle string) (Stream, error) {
	if handle == "" {
		return nil, ErrEmptyHandle
	}

	wsURL := fmt.Sprintf("%s/ws?unique_id=%s", c.gatewayURL, url.QueryEscape(handle))

	header := http.Header{}
	if c.sessionID != "" {
		header.Set("Cookie", "sessionid="+c.sessionID)
	}

	conn, resp, err := c.dialer.DialContext(ctx, wsURL, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("failed to connect to gateway (status %d): %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("failed to connect to gateway: %w", err)
	}

	c.logger.WithField("handle", handle).Info("subscribed to live stream")

	return newStream(conn, c.heartbeatWindow, c.logger.WithField("handle", handle)), nil
}

// IsLive queries the gateway's live-status endpoint
func (c *Client) IsLive(ctx context.Context, handle string) (bool, error) {
	if handle == "" {
		return false, ErrEmptyHandle
	}

	statusURL := fmt.Sprintf("%s/api/is_live?unique_id=%s", httpBaseURL(c.gatewayURL), url.QueryEscape(handle))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, statusURL, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build live-status request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to query live status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("live-status query returned status %d", resp.StatusCode)
	}

	var status struct {
		IsLive bool `json:"is_live"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return false, fmt.Errorf("failed to decode live status: %w", err)
	}

	return status.IsLive, nil
}

// httpBaseURL rewrites a ws(s) gateway URL to its http(s) equivalent
func httpBaseURL(gatewayURL string) string {
	switch {
	case strings.HasPrefix(gatewayURL, "wss://"):
		return "https://" + strings.TrimPrefix(gatewayURL, "wss://")
	case strings.HasPrefix(gatewayURL, "ws://"):
		return "http://" + strings.TrimPrefix(gatewayURL, "ws://")
	}
	return gatewayURL
}
