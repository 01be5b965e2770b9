package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	chatHTTP "multilingual-chatbot/internal/chat/delivery/http"
	"multilingual-chatbot/internal/middleware"
	"multilingual-chatbot/internal/speech"
	"multilingual-chatbot/pkg/log"
)

const shutdownTimeout = 10 * time.Second

// ReadinessCheck reports whether a dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Cross-cutting
	middleware     middleware.Middleware
	metricsHandler http.Handler
	readiness      map[string]ReadinessCheck

	// Chat domain
	chatHandler chatHTTP.Handler

	// Speech domain
	speechHandler speech.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware     middleware.Middleware
	MetricsHandler http.Handler
	Readiness      map[string]ReadinessCheck

	ChatHandler   chatHTTP.Handler
	SpeechHandler speech.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		middleware:     cfg.Middleware,
		metricsHandler: cfg.MetricsHandler,
		readiness:      cfg.Readiness,
		chatHandler:    cfg.ChatHandler,
		speechHandler:  cfg.SpeechHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}
