// Package cloud establishes an optional anonymous session against a remote
// SurrealDB endpoint. The session is only a bootstrap for a future sync
// feature: no record collection reads from or writes to it.
package cloud

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/surrealdb/surrealdb.go"
)

// Session holds the remote handle. Nothing consumes it yet.
type Session struct {
	db *surrealdb.DB
}

// Connect dials url and signs in with the LEVELUP_SYNC_USER/PASS credentials.
// Callers treat a nil session as "sync disabled".
func Connect(url string, log zerolog.Logger) (*Session, error) {
	db, err := surrealdb.New(url)
	if err != nil {
		return nil, err
	}

	if _, err := db.Signin(map[string]interface{}{
		"user": os.Getenv("LEVELUP_SYNC_USER"),
		"pass": os.Getenv("LEVELUP_SYNC_PASS"),
	}); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Use("levelup", "levelup"); err != nil {
		db.Close()
		return nil, err
	}

	log.Info().Str("url", url).Msg("cloud session established")
	return &Session{db: db}, nil
}

// Close tears down the remote connection
func (s *Session) Close() {
	if s != nil && s.db != nil {
		s.db.Close()
	}
}
