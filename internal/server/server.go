// Package server provides the HTTP REST API for the course builder.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/course-builder/internal/db"
	"github.com/jonathan/course-builder/internal/llm"
	"github.com/jonathan/course-builder/internal/pipeline"
	"github.com/jonathan/course-builder/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer   *http.Server
	database     *db.DB
	store        pipeline.Store
	orchestrator *pipeline.Orchestrator
	limiter      *ratelimit.Limiter
}

// Config holds server configuration
type Config struct {
	Port              int
	DatabaseURL       string
	GeminiAPIKey      string
	Models            *llm.Config
	GenerationTimeout time.Duration
}

// New creates a new server instance
func New(ctx context.Context, cfg Config) (*Server, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, &pipeline.ConfigurationError{Message: "GEMINI_API_KEY is not set"}
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	client, err := llm.NewGeminiClient(ctx, cfg.Models, cfg.GeminiAPIKey)
	if err != nil {
		database.Close()
		return nil, err
	}

	orchestrator := pipeline.New(database, client, pipeline.Options{
		GenerationTimeout: cfg.GenerationTimeout,
	})

	s := newServer(orchestrator, database, cfg.Port)
	s.database = database
	return s, nil
}

// newServer wires routes and middleware around an orchestrator and store.
func newServer(orchestrator *pipeline.Orchestrator, store pipeline.Store, port int) *Server {
	s := &Server{
		store:        store,
		orchestrator: orchestrator,
		limiter:      ratelimit.New(ratelimit.DefaultRules()),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /courses", s.handleCreateCourse)
	mux.HandleFunc("GET /courses", s.handleListCourses)
	mux.HandleFunc("GET /courses/{id}", s.handleGetCourse)
	mux.HandleFunc("GET /courses/{id}/materials", s.handleListMaterials)
	mux.HandleFunc("GET /courses/{id}/pipeline", s.handleGetPipeline)

	mux.HandleFunc("POST /generate", s.handleGenerate)

	mux.HandleFunc("GET /materials/{id}", s.handleGetMaterial)
	mux.HandleFunc("POST /materials/{id}/approve", s.handleApproveMaterial)
	mux.HandleFunc("POST /materials/{id}/reject", s.handleRejectMaterial)
	mux.HandleFunc("PUT /materials/{id}", s.handleUpdateMaterial)

	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // generation requests can hold the connection for minutes
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.database != nil {
		s.database.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// withRateLimit enforces per-client request budgets
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := s.limiter.Allow(clientID(r), r.URL.Path, r.Method)
		if info.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		}
		if info.Limited {
			if info.RetryAfter > 0 {
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())+1))
			}
			s.errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientID identifies a caller by IP address
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
