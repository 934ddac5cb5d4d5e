package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/hiremind/internal/agent"
	"github.com/jonathan/hiremind/internal/config"
	"github.com/jonathan/hiremind/internal/llm"
	"github.com/jonathan/hiremind/internal/server/middleware"
	"github.com/jonathan/hiremind/internal/store"
	"github.com/jonathan/hiremind/internal/types"
	"github.com/jonathan/hiremind/internal/workflow"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      store.Store
	llmClient  llm.Client
	agents     *agent.Registry
	engine     *workflow.Engine

	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// Config holds server configuration
type Config struct {
	Port         int
	DatabaseURL  string
	APIKey       string
	Model        string
	StageTimeout time.Duration
	StateTTL     time.Duration
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	st, err := store.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to store: %w", err)
	}

	llmCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		llmCfg.Model = cfg.Model
	}
	client, err := llm.NewClient(context.Background(), llmCfg, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	registry := agent.NewRegistry(client)
	engine := workflow.New(st, registry)
	if cfg.StageTimeout > 0 {
		engine.SetStageTimeout(cfg.StageTimeout)
	}
	if cfg.StateTTL > 0 {
		engine.SetStateTTL(cfg.StateTTL)
	}

	s := &Server{
		store:     st,
		llmClient: client,
		agents:    registry,
		engine:    engine,
	}

	// Authentication services
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(st, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // long timeout for synchronous SSE runs
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Workflow endpoints
	mux.HandleFunc("POST /api/workflow/start", s.handleStartWorkflow)
	mux.HandleFunc("POST /api/workflow/start/stream", s.handleStartWorkflowStream)
	mux.HandleFunc("GET /api/workflow/{session_id}", s.handleWorkflowStatus)

	// Agent playground
	mux.HandleFunc("POST /api/agent/run", s.handleRunAgent)
	mux.HandleFunc("GET /api/agent/types", s.handleListAgentTypes)

	// Hiring profiles
	mux.HandleFunc("GET /api/profiles", s.handleListProfiles)
	mux.HandleFunc("GET /api/profiles/{session_id}", s.handleGetProfile)
	mux.HandleFunc("DELETE /api/profiles/{session_id}", s.handleDeleteProfile)
	mux.HandleFunc("POST /api/profiles/{session_id}/notes", s.handleAddProfileNote)
	mux.HandleFunc("PATCH /api/profiles/{session_id}/status", s.handleUpdateProfileStatus)

	// Auth
	mux.HandleFunc("POST /api/auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", s.authHandler.Login)
	mux.Handle("GET /api/auth/me",
		middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(http.HandlerFunc(s.handleMe)))

	mux.HandleFunc("GET /health", s.handleHealth)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
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

	if err := s.llmClient.Close(); err != nil {
		log.Printf("Error closing LLM client: %v", err)
	}
	s.store.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

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

// handleHealth reports API and store connectivity.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	storeStatus := "connected"
	if err := s.store.Ping(r.Context()); err != nil {
		storeStatus = "disconnected"
	}

	s.jsonResponse(w, http.StatusOK, types.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services: map[string]string{
			"api":   "running",
			"store": storeStatus,
		},
	})
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
