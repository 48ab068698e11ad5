// TalentIA API: recruitment tracking with AI-assisted candidate intake.
//
// @title TalentIA API
// @version 1.0
// @description Job postings, AI-assisted candidate intake, interview scheduling and an HR assistant.
// @BasePath /api/v1
package main

import (
	"errors"
	"net/http"
	"os"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/IVANP37/TalentIA/internal/logger"
	"github.com/IVANP37/TalentIA/internal/server"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_JSON") == "true", os.Getenv("APP_DEBUG") == "true")
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	srv, err := server.New(log)
	if err != nil {
		log.Fatal("failed to initialize server", zap.Error(err))
	}
	defer func() {
		if cerr := srv.Close(); cerr != nil {
			log.Warn("closing local storage failed", zap.Error(cerr))
		}
	}()

	httpSrv := srv.HTTPServer()
	log.Info("listening", zap.String("addr", httpSrv.Addr))
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server stopped", zap.Error(err))
	}
}
