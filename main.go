package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"open-hire/internal/auth"
	bidding "open-hire/internal/biddingService"
	"open-hire/internal/config"
	"open-hire/internal/db"
	jobs "open-hire/internal/jobService"
	"open-hire/internal/repository/sqlite"
	"open-hire/internal/server"
	"open-hire/utils"
)

func main() {
	cfg, err := config.Load(os.Getenv("OPENHIRE_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		utils.Fatal("failed to open database", map[string]any{"path": cfg.DatabasePath, "error": err.Error()})
	}
	defer database.Close()

	if err := db.Migrate(ctx, database); err != nil {
		utils.Fatal("failed to apply migrations", map[string]any{"error": err.Error()})
	}

	store := sqlite.NewStore(database)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenDuration)

	jobService := jobs.NewJobService(store)
	biddingService := bidding.NewBiddingService(store, store)

	router := server.SetupRouter(cfg, tokens, jobService, biddingService)

	utils.Info("starting marketplace server", map[string]any{"addr": cfg.Addr})
	if err := router.Run(cfg.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
