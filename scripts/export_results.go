// Exports every assessment result to the configured storage as CSV, the
// same file the admin export endpoint produces. Useful for scheduled
// backups from cron.
//
// Usage: go run scripts/export_results.go

package main

import (
	"context"
	"log"
	"wellnessa_backend/internal/config"
	"wellnessa_backend/internal/repository"
	"wellnessa_backend/internal/service"
	"wellnessa_backend/pkg/database"
	"wellnessa_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database, false)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	export := service.NewExportService(
		repository.NewResultRepository(db),
		repository.NewUserRepository(db),
		service.NewStorageService(&cfg.Storage),
	)

	res, err := export.ExportResults(context.Background())
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	log.Printf("Exported %d results to %s", res.Rows, res.URL)
}
