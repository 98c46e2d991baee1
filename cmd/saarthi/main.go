package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"saarthi/internal/cli"
	"saarthi/internal/db"
	"saarthi/internal/intelligence"
	"saarthi/internal/llm"
	"saarthi/internal/market"
	"saarthi/internal/repository"
	"saarthi/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Stores default to in-memory: profiles and wallets live for the
	// process. Set SAARTHI_DB to a file path to keep them across runs.
	dbPath := os.Getenv("SAARTHI_DB")
	if dbPath == "" {
		dbPath = ":memory:"
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database)
	prefRepo := repository.NewSQLitePreferenceRepo(database)
	walletRepo := repository.NewSQLiteWalletRepo(database, uow)

	// Quote and support services run deterministic fixtures unless a
	// local Ollama is enabled via SAARTHI_LLM_ENABLED.
	var llmClient llm.Client
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient = llm.NewOllamaClient(llmCfg, observer)
	}

	app := &cli.App{
		Machine:   session.NewMachine(prefRepo, walletRepo),
		Transport: intelligence.NewTransportService(llmClient),
		Support:   intelligence.NewSupportService(llmClient),
		Market:    market.NewService(nil),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
