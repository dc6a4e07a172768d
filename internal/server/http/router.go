package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vkarpovs/crudboard/internal/logging"
)

// NewRouter wires the gin routes and middleware.
func NewRouter(h *Handler, mw *AuthMiddleware) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.Register)
			authGroup.POST("/login", h.Login)
			authGroup.POST("/refresh", h.Refresh)
			authGroup.POST("/logout", h.Logout)
		}

		usersGroup := api.Group("/users")
		{
			usersGroup.GET("/me", mw.RequireAccessToken, h.GetCurrentUser)
			usersGroup.GET("/:id", h.GetUser)
		}
	}

	return r
}

// Server runs the HTTP endpoint with graceful shutdown.
type Server struct {
	address string
	engine  *gin.Engine
	logger  logging.Logger
}

// NewServer constructs a Server for the given bind address.
func NewServer(address string, engine *gin.Engine, logger logging.Logger) *Server {
	return &Server{address: address, engine: engine, logger: logger.With("module", "http_server")}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
