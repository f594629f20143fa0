package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/vitalcheck/vitalcheck-api/api"
	"github.com/vitalcheck/vitalcheck-api/config"
	"github.com/vitalcheck/vitalcheck-api/databases"
)

const defaultSeedFile = "docs/seed_data.json"

// Loads demo data into the configured database.
// Usage: go run ./scripts/seed [path/to/seed.json]
func main() {
	conf := config.New()

	path := defaultSeedFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	f, err := os.Open(path)
	if err != nil {
		zap.S().Fatalw("failed to open seed file", "path", path, "error", err)
	}
	defer f.Close()

	data, err := databases.ReadSeedData(f)
	if err != nil {
		zap.S().Fatalw("failed to read seed file", "path", path, "error", err)
	}

	client, err := databases.NewClient(conf)
	if err != nil {
		zap.S().Fatalw("failed to create new client", "error", err)
	}
	ctx, cancel := api.WithSweepTimeout()
	defer cancel()
	if err := client.Connect(ctx); err != nil {
		zap.S().Fatalw("failed to connect to database", "error", err)
	}
	defer client.Disconnect(context.Background())

	n, err := databases.Seed(ctx, databases.NewDatabase(conf, client), data)
	if err != nil {
		zap.S().Fatalw("seed failed", "written", n, "error", err)
	}
	zap.S().Infow("seed complete", "documents", n)
}
