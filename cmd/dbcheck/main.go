package main

import (
	"context"
	"fmt"
	"os"

	"github.com/portfolio-cms/portfolio-api/internal/config"
	"github.com/portfolio-cms/portfolio-api/internal/content"
	"github.com/portfolio-cms/portfolio-api/internal/database"
	"github.com/portfolio-cms/portfolio-api/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
)

// dbcheck prints every content collection with its document count.
func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if cfg.MongoDB.URI == "" {
		logger.Fatalf("MONGODB_URI is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoDB.Timeout)
	defer cancel()

	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		logger.Fatalf("connect failed: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(cfg.MongoDB.Database)
	fmt.Printf("Database: %s\n", cfg.MongoDB.Database)
	fmt.Println("Collections:")
	for _, name := range content.Collections() {
		n, err := db.Collection(name).CountDocuments(ctx, bson.D{})
		if err != nil {
			logger.Fatalf("count %s failed: %v", name, err)
		}
		fmt.Printf(" - %-14s %d\n", name, n)
	}
}
