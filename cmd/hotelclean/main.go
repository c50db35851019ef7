package main

import (
	"log"

	"github.com/msantanna/hotelclean/internal/config"
	"github.com/msantanna/hotelclean/internal/db"
	"github.com/msantanna/hotelclean/internal/logging"
	"github.com/msantanna/hotelclean/internal/roster"
	"github.com/msantanna/hotelclean/internal/store"
	"github.com/msantanna/hotelclean/internal/web"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	recordStore := store.NewRecordStore(database)
	rosterService := roster.NewService(recordStore, logger)
	server := web.NewServer(rosterService, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}
