// Package server wires the store, its AI collaborators and the local
// storage together and exposes them over HTTP.
package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/IVANP37/TalentIA/internal/ai"
	"github.com/IVANP37/TalentIA/internal/database"
	"github.com/IVANP37/TalentIA/internal/ollama"
	"github.com/IVANP37/TalentIA/internal/store"
)

const defaultPort = 8080

// Server holds everything the route handlers need.
type Server struct {
	port int

	db        *database.LocalStore
	store     *store.Store
	assistant *ai.Assistant
	log       *zap.Logger
}

// New builds the full service from environment configuration: local
// storage, generation client, AI services and the recruitment store.
func New(log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}

	dataPath := os.Getenv("TALENTIA_DATA")
	if dataPath == "" {
		dataPath = filepath.Join("data", "talentia.db")
	}
	if err := os.MkdirAll(filepath.Dir(dataPath), 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := database.Open(dataPath)
	if err != nil {
		return nil, fmt.Errorf("open local storage: %w", err)
	}

	client := ollama.New(os.Getenv("OLLAMA_URL"), os.Getenv("OLLAMA_MODEL"), log)
	parser := ai.NewParser(client, log)
	ranker := ai.NewRanker(client, log)
	assistant := ai.NewAssistant(client, log)

	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = defaultPort
	}

	return &Server{
		port:      port,
		db:        db,
		store:     store.New(db, parser, ranker, log),
		assistant: assistant,
		log:       log,
	}, nil
}

// HTTPServer returns the configured *http.Server with all routes
// registered.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:        fmt.Sprintf(":%d", s.port),
		Handler:     s.RegisterRoutes(),
		IdleTimeout: time.Minute,
		ReadTimeout: 10 * time.Second,
		// intake waits on the generation endpoint, which can be slow
		WriteTimeout: 15 * time.Minute,
	}
}

// Close releases the local storage handle.
func (s *Server) Close() error {
	return s.db.Close()
}
