// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/profile"
)

// Server represents the HTTP server
type Server struct {
	httpServer   *http.Server
	store        *profile.Store
	capabilities config.Capabilities
	outputDir    string
	validate     *validator.Validate
}

// Config holds server configuration
type Config struct {
	Port      int
	OutputDir string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = config.DefaultOutputDir
	}

	store, err := profile.NewStore(cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize profile store: %w", err)
	}

	s := &Server{
		store:        store,
		capabilities: config.DetectCapabilities(),
		outputDir:    cfg.OutputDir,
		validate:     validator.New(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /enhance", s.handleEnhance)
	mux.HandleFunc("POST /enhance/upload", s.handleEnhanceUpload)
	mux.HandleFunc("POST /profiles", s.handleSaveProfile)
	mux.HandleFunc("GET /profiles", s.handleListProfiles)
	mux.HandleFunc("GET /profiles/{name}", s.handleGetProfile)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Start runs the server until an interrupt or termination signal arrives,
// then shuts down gracefully.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Resume builder API listening on %s", listener.Addr())
		if serveErr := s.httpServer.Serve(listener); serveErr != http.ErrServerClosed {
			errCh <- serveErr
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Printf("Received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
