package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexanderramin/presence/internal/api"
	"github.com/alexanderramin/presence/internal/cli"
	"github.com/alexanderramin/presence/internal/config"
	"github.com/alexanderramin/presence/internal/db"
	"github.com/alexanderramin/presence/internal/repository"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config file: env var or default ~/.presence/config.yaml
	cfgPath := os.Getenv("PRESENCE_CONFIG")
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath, ".env")
	if err != nil {
		return err
	}

	// API call log goes to a file so it never draws over the dashboard.
	var observer api.Observer = api.NoopObserver{}
	if cfg.LogCalls {
		logFile, err := openLog(cfg.LogFile)
		if err != nil {
			return err
		}
		defer logFile.Close()
		observer = api.NewLogObserver(logFile)
	}

	app := &cli.App{
		API:    api.NewHTTPClient(cfg.ClientConfig(), observer),
		Config: cfg,
	}

	// Selection memory is optional; without it no database is opened.
	if cfg.Remember {
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		app.Selections = repository.NewSQLiteSelectionRepo(database)
		app.UoW = db.NewSQLiteUnitOfWork(database)
	}

	// Detect interactive terminal for the dashboard and pickers.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	app.StdoutIsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func openLog(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}
