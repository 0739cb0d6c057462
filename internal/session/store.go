// Package session persists the single signed-in user across restarts, the
// way the frontend used to keep it in localStorage: one JSON blob under a
// fixed key.
package session

import (
	"database/sql"
	"encoding/json"
	"log"

	"hollmovies-web-be/internal/models"
)

// StorageKey matches the localStorage key of the original frontend, so a
// migration script could carry records over verbatim.
const StorageKey = "hollmovies_user"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load returns the persisted user, or nil when there is none. Corrupted
// stored data is treated as absent: the slot is cleared and nil returned,
// never an error. Callers cannot tell corruption from a fresh install,
// which is the point.
func (s *Store) Load() *models.User {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM session WHERE key = ?`, StorageKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		log.Printf("[Session] Read failed: %v", err)
		return nil
	}

	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		log.Printf("[Session] Stored record is unreadable, clearing: %v", err)
		s.Clear()
		return nil
	}
	return &u
}

func (s *Store) Save(u models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO session(key, value) VALUES(?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		StorageKey, string(raw),
	)
	return err
}

func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM session WHERE key = ?`, StorageKey)
	return err
}
