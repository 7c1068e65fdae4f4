package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apisetup "refspring/internal/api"
	"refspring/internal/bootstrap"
	"refspring/internal/config"
	"refspring/internal/observability"
	"refspring/internal/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server encapsulates the HTTP server and its dependencies
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	deps       *bootstrap.Dependencies
	config     *config.Config
	logger     *observability.Logger
	cancelJobs context.CancelFunc
}

// New creates a new Server instance
func New(cfg *config.Config, deps *bootstrap.Dependencies, logger *observability.Logger) *Server {
	return &Server{
		config: cfg,
		deps:   deps,
		logger: logger,
	}
}

// Setup configures the HTTP router with middleware and routes
func (s *Server) Setup() {
	s.router = gin.New()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS", "DELETE"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Cache-Control", "Accept"}
	corsConfig.AllowOrigins = []string{s.config.Services.WebAppURI}

	// Allow localhost in non-production
	if os.Getenv("GO_ENV") != "production" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}

	// Apply middleware
	s.router.Use(cors.New(corsConfig))
	s.router.Use(observability.Middleware(s.logger))

	readiness := map[string]apisetup.Pinger{"postgres": &s.deps.Store}
	if s.deps.RedisClient != nil {
		readiness["redis"] = s.deps.RedisClient
	}

	// Register routes
	rootRouter := s.router.Group("/")
	api := apisetup.New(
		rootRouter,
		apisetup.Handlers{
			Auth:         s.deps.AuthHandler,
			Campaign:     s.deps.CampaignHandler,
			ShortLink:    s.deps.ShortLinkHandler,
			Click:        s.deps.ClickHandler,
			Conversion:   s.deps.ConversionHandler,
			Verification: s.deps.VerificationHandler,
			Reconcile:    s.deps.ReconcileHandler,
			Stats:        s.deps.StatsHandler,
			Fraud:        s.deps.FraudHandler,
			Payout:       s.deps.PayoutHandler,
			Readiness:    readiness,
		},
		ratelimit.Middleware(s.deps.ClickLimiter, s.deps.FraudReporter, s.logger),
	)
	api.RegisterRoutes()
}

// Start begins listening for HTTP requests and starts background jobs
func (s *Server) Start(ctx context.Context) error {
	jobCtx, cancel := context.WithCancel(ctx)
	s.cancelJobs = cancel

	if s.deps.Scheduler != nil {
		go func() {
			if err := s.deps.Scheduler.Start(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
				s.logger.Error(ctx, "scheduler stopped with error", err)
			}
		}()
	}

	if s.deps.StatsConsumer != nil {
		go func() {
			if err := s.deps.StatsConsumer.Start(jobCtx); err != nil {
				s.logger.Error(ctx, "stats consumer stopped with error", err)
			}
		}()
	}

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Server.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run the server in a goroutine so that it doesn't block
	go func() {
		s.logger.Info(ctx, fmt.Sprintf("Server starting on port %d", s.config.Server.Port))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error(ctx, "server failed to start", err)
			os.Exit(1)
		}
	}()

	return nil
}

// WaitForShutdown blocks until a shutdown signal is received, then gracefully shuts down
func (s *Server) WaitForShutdown(ctx context.Context) error {
	// Set up a channel to listen for OS signals for shutdown
	quit := make(chan os.Signal, 1)
	// kill (no param) default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be caught, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received
	<-quit
	s.logger.Info(ctx, "Shutting down server...")

	if s.cancelJobs != nil {
		s.cancelJobs()
	}

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	// Cleanup dependencies
	s.deps.Cleanup()

	s.logger.Info(ctx, "Server exited gracefully")
	return nil
}
