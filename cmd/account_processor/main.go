package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/payments-replay-engine/internal/config"
	"github.com/payments-replay-engine/internal/data/memory"
	"github.com/payments-replay-engine/internal/engine"
	"github.com/payments-replay-engine/internal/logger"
	"github.com/payments-replay-engine/internal/platform/csvio"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <transactions.csv>\n", os.Args[0])
		os.Exit(1)
	}
	inputPath := os.Args[1]

	// Initialize configuration
	cfg, err := config.LoadConfig("account_processor")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger; every log line of this run carries the same
	// correlation ID.
	log := logger.NewLogger(cfg).With("run_id", uuid.NewString())

	log.Info("Starting Account Processor",
		"app_name", cfg.Application.Name,
		"env", cfg.Application.Env,
		"input", inputPath,
	)

	input, err := os.Open(inputPath)
	if err != nil {
		log.Error("Failed to open input", "path", inputPath, "error", err)
		os.Exit(1)
	}
	defer input.Close()

	// Initialize stores and the event processor
	processor := engine.NewProcessor(memory.NewAccountStore(), memory.NewLedgerStore())

	// Replay the event stream, one event at a time in input order
	reader := csvio.NewReader(input, log)
	stats, err := reader.ReadAll(processor.Process)
	if err != nil {
		log.Error("Failed to read transactions", "path", inputPath, "error", err)
		os.Exit(1)
	}

	log.Info("Replay complete",
		"events", stats.Events,
		"skipped_rows", stats.Skipped,
	)

	// Project final account states to stdout
	statements := processor.Statements()
	if err := csvio.WriteStatements(os.Stdout, statements); err != nil {
		log.Error("Failed to write account statements", "error", err)
		os.Exit(1)
	}

	log.Info("Account Processor finished", "accounts", len(statements))
}
