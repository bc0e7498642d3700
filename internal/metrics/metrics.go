package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters exported by the tracking pipeline. Scraped via the keep-alive
// server's /metrics endpoint.
var (
	EventsConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tokboard_events_consumed_total",
		Help: "Normalized live events applied to the aggregator, by kind.",
	}, []string{"kind"})

	MalformedEvents = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tokboard_malformed_events_total",
		Help: "Raw frames dropped because they could not be normalized.",
	})

	ReconnectAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tokboard_reconnect_attempts_total",
		Help: "Reconnection attempts made after a live stream drop.",
	})

	SessionsOpened = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tokboard_sessions_opened_total",
		Help: "Live sessions opened.",
	})

	SessionsClosed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tokboard_sessions_closed_total",
		Help: "Live sessions closed.",
	})

	WeeklyResets = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tokboard_weekly_resets_total",
		Help: "Weekly counter rollovers performed.",
	})

	SnapshotsParked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tokboard_snapshots_parked_total",
		Help: "Leaderboard snapshots parked after hand-off retries were exhausted.",
	})
)
