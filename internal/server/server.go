package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/csiboto/kyle/internal/assistant"
)

// Server exposes one JSON route per assistant task
type Server struct {
	httpServer *http.Server
	assistant  *assistant.Assistant
}

// Config holds server configuration
type Config struct {
	Port int
}

// New creates a server over an already-constructed assistant
func New(cfg Config, a *assistant.Assistant) *Server {
	s := &Server{assistant: a}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.HandleFunc("POST /api/research", s.handleResearch)
	mux.HandleFunc("POST /api/analyze-fit", s.handleAnalyzeFit)
	mux.HandleFunc("POST /api/analyze-url", s.handleAnalyzeURL)
	mux.HandleFunc("POST /api/generate/letter", s.handleGenerateLetter)
	mux.HandleFunc("POST /api/generate/cv", s.handleGenerateCV)
	mux.HandleFunc("GET /api/profile", s.handleProfile)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // URL analysis makes two round trips
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the configured handler, for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start listens until interrupted, then shuts down gracefully
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Kyle listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := s.assistant.Close(); err != nil {
		return fmt.Errorf("assistant close failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging tags each request with an ID and logs its duration
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()
		log.Printf("[%s] %s %s %s", requestID, r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s completed in %v", requestID, r.Method, r.URL.Path, time.Since(start))
	})
}
