package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomhall/projex/internal/config"
	"github.com/tomhall/projex/internal/confirm"
	"github.com/tomhall/projex/internal/logger"
	"github.com/tomhall/projex/internal/storage"
	"github.com/tomhall/projex/internal/store"
	"github.com/tomhall/projex/internal/ui"
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
		fmt.Printf("projex %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	dbPath, err := dataPath(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving data path: %v\n", err)
		os.Exit(1)
	}

	logPath := cfg.LogFile
	if logPath == "" {
		logPath = filepath.Join(filepath.Dir(dbPath), "projex.log")
	}
	if err := logger.Init(logPath, cfg.Development); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	kv, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing database: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	// Destructive prompts are collected by the TUI before the store is
	// called, so the store-level confirmer always approves
	status := &ui.Status{}
	st, err := store.Open(kv, confirm.Always, status)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		os.Exit(1)
	}

	app := ui.NewApp(st, status, cfg.Debounce())
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

func dataPath(cfg config.Config) (string, error) {
	if cfg.DataDir != "" {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return "", err
		}
		return filepath.Join(cfg.DataDir, "projex.db"), nil
	}
	return storage.DefaultPath()
}
