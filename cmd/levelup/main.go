package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rkeller/levelup/internal/cloud"
	"github.com/rkeller/levelup/internal/logging"
	"github.com/rkeller/levelup/internal/records"
	"github.com/rkeller/levelup/internal/storage"
	"github.com/rkeller/levelup/internal/ui"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("levelup %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	// Initialize database
	db, err := storage.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// Log to a file; the terminal belongs to the TUI
	dir, _ := storage.DataDir()
	log := logging.Open(dir)

	deps := records.NewDeps(db, log)
	stores := ui.Stores{
		Daily:    records.NewTaskStore(deps, records.KeyDaily),
		Weekly:   records.NewWeeklyStore(deps, records.KeyWeekly),
		Misc:     records.NewTaskStore(deps, records.KeyMisc),
		Finance:  records.NewFinanceStore(deps, records.KeyFinances),
		Journal:  records.NewJournalStore(deps, records.KeyJournal),
		Schedule: records.NewScheduleStore(deps, records.KeySchedule),
	}

	// Optional cloud session, connected in the background so startup never
	// blocks on the network. Torn down with the process.
	if url := os.Getenv("LEVELUP_SYNC_URL"); url != "" {
		go func() {
			if _, err := cloud.Connect(url, log); err != nil {
				log.Warn().Err(err).Msg("cloud connect failed")
			}
		}()
	}

	// Create and run the application
	app := ui.NewApp(stores, db)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}
