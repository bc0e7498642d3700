package health

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// DefaultAddr is the default listen address for the keep-alive server
const DefaultAddr = ":8080"

// Config holds configuration for the keep-alive server
type Config struct {
	// Addr is the listen address
	Addr string

	Logger *logrus.Entry
}

// Server answers uptime pings from the hosting platform and exposes the
// tracking metrics
type Server struct {
	engine *gin.Engine
	addr   string
	logger *logrus.Entry
}

// New creates a new keep-alive server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	addr := cfg.Addr
	if addr == "" {
		addr = DefaultAddr
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine: engine,
		addr:   addr,
		logger: logger,
	}

	engine.GET("/", s.handlePing)
	engine.GET("/health", s.handlePing)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return s, nil
}

// Run listens until the process exits
func (s *Server) Run() error {
	s.logger.WithField("addr", s.addr).Info("keep-alive server listening")
	return s.engine.Run(s.addr)
}

// Handler exposes the router, for tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handlePing(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
