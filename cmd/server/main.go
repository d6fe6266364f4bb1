package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/founderlink/backend/internal/api"
	"github.com/founderlink/backend/internal/config"
	"github.com/founderlink/backend/internal/engine"
	"github.com/founderlink/backend/internal/store"
)

func main() {
	// Setup Logging
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("service", "relevance-api")

	entry.Info("Starting FounderLink Relevance API Service")

	// 1. Config (.env is optional)
	if err := godotenv.Load(); err != nil {
		entry.Debug("No .env file found, using environment")
	}
	cfg := config.Load()

	// 2. Record Store
	st, err := store.NewFileStore(cfg.Store.DataDir)
	if err != nil {
		entry.Fatalf("Failed to initialize record store: %v", err)
	}
	defer st.Close()

	if startups, err := st.ListStartups(); err == nil {
		entry.Infof("Loaded %d startup records from %s", len(startups), cfg.Store.DataDir)
	}

	// 3. Engine
	eng, err := engine.NewEngine(cfg, entry, st)
	if err != nil {
		entry.Fatalf("Failed to initialize engine: %v", err)
	}

	// 4. API Server
	server := api.NewServer(eng, entry)

	entry.Infof("FounderLink Relevance API ready on port %s", cfg.Server.Port)
	if err := server.Start(":" + cfg.Server.Port); err != nil {
		entry.Fatal(err)
	}
}
