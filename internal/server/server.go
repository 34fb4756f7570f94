// Package server exposes the frame renderer over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/framemaker/internal/config"
	"github.com/example/framemaker/internal/preset"
)

// maxUpload bounds the multipart body of a frame request.
const maxUpload = 16 << 20

// maxMemory is how much of a multipart body is held in memory before
// spilling to temporary files.
const maxMemory = 8 << 20

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	cfg     *config.Config
	presets *preset.Loader
	log     *zap.Logger
}

// New returns a Server using cfg for defaults. A nil logger discards output.
func New(cfg *config.Config, log *zap.Logger) *Server {
	if cfg == nil {
		cfg = config.New()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{cfg: cfg, presets: cfg.PresetLoader(), log: log}
}

// Routes registers every handler on r.
func (s *Server) Routes(r *gin.Engine) {
	r.GET("/", s.Index)
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	api := r.Group("/api")
	{
		api.GET("/frame", s.Frame)
		api.POST("/frame", s.Frame)
		api.GET("/presets", s.Presets)
	}
}

// Engine builds a gin engine with logging and recovery middleware.
func (s *Server) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	s.Routes(r)
	return r
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
