package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/rainman226/asa-bot-f1-service/internal"
	"github.com/rainman226/asa-bot-f1-service/internal/api"
	"github.com/rainman226/asa-bot-f1-service/internal/config"
	"github.com/rainman226/asa-bot-f1-service/internal/storage"
	"github.com/rainman226/asa-bot-f1-service/internal/upstream"
)

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	if cfg.StorageBackend == "sqlite" {
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				_ = os.MkdirAll(dir, 0755)
			}
		}
	}

	repo, err := storage.NewTimezoneRepository(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	client := upstream.NewClient(upstream.DefaultBaseURL, logger)
	app := api.NewApp(logger, repo, client)
	r := api.NewRouter(app)

	logger.Infof("Server running on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}
