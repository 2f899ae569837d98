package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/onrevhq/attribution-graph-service/docs"
	"github.com/onrevhq/attribution-graph-service/internal/config"
	"github.com/onrevhq/attribution-graph-service/internal/handler"
	"github.com/onrevhq/attribution-graph-service/internal/logger"
	"github.com/onrevhq/attribution-graph-service/internal/repository/neo4j"
	"github.com/onrevhq/attribution-graph-service/internal/service"
)

// @title Attribution Graph Service API
// @version 1.0
// @description API for ingesting marketing attribution entities and clicks into a graph store
// @host localhost:8080
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key
func main() {
	cfg, err := config.LoadAPI()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.Service.Environment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting attribution API service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.Service.Host

	ctx := context.Background()

	// Initialize Neo4j client
	neo4jClient, err := neo4j.NewClient(ctx, &cfg.Neo4j, log)
	if err != nil {
		log.Fatal("Failed to create Neo4j client", zap.Error(err))
	}
	defer func(neo4jClient *neo4j.Client) {
		if err := neo4jClient.Close(ctx); err != nil {
			log.Error("Failed to close Neo4j client", zap.Error(err))
		}
	}(neo4jClient)

	// Initialize repository
	repo := neo4j.NewRepository(neo4jClient, log)

	// Initialize schema (create uniqueness constraints if not exist)
	if err := repo.InitSchema(ctx); err != nil {
		log.Fatal("Failed to initialize schema", zap.Error(err))
	}
	log.Info("Graph schema initialized")

	// Initialize ingest service
	storeTimeout := time.Duration(cfg.Ingest.StoreTimeoutSec) * time.Second
	ingestService := service.NewIngestService(repo, storeTimeout, log)

	// Initialize handler
	h := handler.NewHandler(ingestService, cfg.Ingest.APIKey, log)

	addr := fmt.Sprintf(":%s", cfg.Service.APIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}
