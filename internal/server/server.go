package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kinnective/jobextractor/internal/config"
	"github.com/kinnective/jobextractor/pkg/logging"
)

// Server wraps the gin engine with an HTTP listener
type Server struct {
	logger *logging.Logger

	srv     *http.Server
	started atomic.Bool
}

// NewServer constructs the HTTP server over the handler
func NewServer(cfg config.Config, logger *logging.Logger, h *Handler) *Server {
	gin.SetMode(gin.ReleaseMode)

	httpSrv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           newRouter(h),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		logger: logger,
		srv:    httpSrv,
	}
}

func newRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api/v1")
	{
		api.POST("/validate", h.Validate)
		api.POST("/extract", h.Extract)
		api.POST("/jobs", h.CreateJob)
		api.POST("/companies", h.CreateCompany)
		api.GET("/health/store", h.StoreHealth)
	}

	return r
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	s.logger.Info("HTTP server listening", "addr", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for HTTP server")
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("HTTP server shutdown with error", "err", err)
		return err
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}
