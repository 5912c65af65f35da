// Package logging sets up the application log file. The TUI owns the
// terminal, so nothing is ever written to stdout or stderr while running.
package logging

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const permission = 0664

// Open returns a logger appending to levelup.log inside dir. When the file
// cannot be opened the logger is a no-op; logging is never worth failing
// startup over.
func Open(dir string) zerolog.Logger {
	file, err := os.OpenFile(filepath.Join(dir, "levelup.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.SyncWriter(file)).With().Timestamp().Logger()
}
