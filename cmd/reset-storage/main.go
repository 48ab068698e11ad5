// Command reset-storage wipes the persisted candidate snapshot so the
// next service start falls back to seed data.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"github.com/IVANP37/TalentIA/internal/database"
	"github.com/IVANP37/TalentIA/internal/store"
)

func main() {
	dataPath := os.Getenv("TALENTIA_DATA")
	if dataPath == "" {
		dataPath = filepath.Join("data", "talentia.db")
	}

	db, err := database.Open(dataPath)
	if err != nil {
		log.Fatalf("open local storage: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Delete(store.CandidatesKey); err != nil {
		log.Fatalf("delete candidate snapshot: %v", err)
	}

	fmt.Printf("Cleared %q from %s\n", store.CandidatesKey, dataPath)
}
