package repository

import (
	"fmt"
	"log"

	"github.com/dinerozz/screen-time-backend/config"
	"github.com/jmoiron/sqlx"

	_ "modernc.org/sqlite"
)

func NewRepository(cfg config.StoreConfig) (*sqlx.DB, error) {
	connStr := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.Path)

	db, err := sqlx.Connect("sqlite", connStr)
	if err != nil {
		log.Println("❌ Error connecting to database:", err)
		return nil, err
	}

	// SQLite allows a single writer; one connection keeps writes serialized.
	db.SetMaxOpenConns(1)

	log.Println("✅ Connected to database")

	return db, nil
}

// NewKnowledgeDB opens the macOS Screen Time database read-only. The file is
// owned by the OS, never written by this service.
func NewKnowledgeDB(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		log.Println("❌ Error opening knowledge database:", err)
		return nil, err
	}

	return db, nil
}
