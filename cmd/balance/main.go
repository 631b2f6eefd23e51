package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/jzembower/balance/internal/analysis"
	"github.com/jzembower/balance/internal/cli"
	"github.com/jzembower/balance/internal/db"
	"github.com/jzembower/balance/internal/health"
	"github.com/jzembower/balance/internal/llm"
	"github.com/jzembower/balance/internal/repository"
	"github.com/jzembower/balance/internal/session"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Local .env is optional; real deployments set the environment.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.balance/balance.db
	dbPath := os.Getenv("BALANCE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".balance", "balance.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Test mode keeps the mock health source and labels the user
	// accordingly. Defaults to on until a device integration lands.
	testMode := true
	if v := os.Getenv("BALANCE_TEST_MODE"); v != "" {
		testMode, _ = strconv.ParseBool(v)
	}

	// Wire repositories and services
	analysisRepo := repository.NewSQLiteAnalysisRepo(database, repository.DefaultHistoryCapacity)
	userRepo := repository.NewSQLiteUserRepo(database)
	sessions := session.NewManager(userRepo, testMode)

	cfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	client := llm.NewHTTPClient(cfg, observer)

	app := &cli.App{
		Analysis: analysis.NewService(client, analysisRepo, sessions),
		History:  analysisRepo,
		Session:  sessions,
		HealthSource: func(sc health.Scenario) health.Source {
			return health.MockSource{Scenario: sc}
		},
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
