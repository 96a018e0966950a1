package main

import (
	"context"
	"log"

	"doc-qa-be/internal/bootstrap"
	"doc-qa-be/internal/config"
	"doc-qa-be/internal/server"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 3. Start Background Indexer
	if err := container.IndexerService.Consume(context.Background()); err != nil {
		log.Panicf("Unable to start indexing consumer: %v", err)
	}

	// 4. Restore the most recent persisted session as current
	if err := container.SessionService.LoadLatest(context.Background()); err != nil {
		log.Printf("[WARN] Failed to restore previous session: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
