package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"voice-fact-skill/internal/middleware"
	"voice-fact-skill/internal/skill"
	"voice-fact-skill/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Skill domain
	skillUC     skill.UseCase
	webhookPath string
	security    middleware.SecurityConfig

	// Metrics
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Skill domain
	SkillUseCase skill.UseCase
	WebhookPath  string
	Security     middleware.SecurityConfig

	// TrustedProxies lists proxies whose forwarding headers name the client.
	// Empty trusts none, so the connecting address is the client.
	TrustedProxies []string

	// Registry defaults to a fresh registry when nil.
	Registry *prometheus.Registry
}

// New creates a new HTTPServer instance and mounts every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		skillUC:     cfg.SkillUseCase,
		webhookPath: cfg.WebhookPath,
		security:    cfg.Security,
		registerer:  reg,
		gatherer:    reg,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	srv.mapHandlers()
	return srv, nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.skillUC == nil {
		return errors.New("skill use case is required")
	}
	if srv.webhookPath == "" {
		return errors.New("webhook path is required")
	}
	return nil
}
