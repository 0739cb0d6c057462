package db

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		"id" TEXT NOT NULL PRIMARY KEY,
		"name" TEXT NOT NULL,
		"email" TEXT NOT NULL UNIQUE,
		"password" TEXT NOT NULL,
		"role" TEXT NOT NULL DEFAULT 'user',
		"digest_sent_at" DATETIME,
		"created_at" DATETIME DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS session (
		"key" TEXT NOT NULL PRIMARY KEY,
		"value" TEXT NOT NULL
	);`,
}

func InitDB() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "./hollmovies.db"
	}

	var err error
	DB, err = sql.Open("sqlite3", path)
	if err != nil {
		log.Fatal(err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal(err)
	}
	log.Printf("Database ready at %s", path)
}

// Migrate creates the schema on the given handle. Split out from InitDB so
// tests can run against an in-memory database.
func Migrate(conn *sql.DB) error {
	for _, stmt := range schema {
		if _, err := conn.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
