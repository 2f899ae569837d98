package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/onrevhq/attribution-graph-service/internal/config"
	"github.com/onrevhq/attribution-graph-service/internal/logger"
	"github.com/onrevhq/attribution-graph-service/internal/proxy"
)

func main() {
	cfg, err := config.LoadProxy()
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

	log.Info("Starting forwarding proxy",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Proxy.Port),
		zap.String("target", cfg.Proxy.TargetURL))

	// Initialize token minter
	minter := proxy.NewGoogleIDTokenMinter()

	// Initialize forwarder
	forwarder, err := proxy.NewForwarder(&cfg.Proxy, minter, log)
	if err != nil {
		log.Fatal("Failed to create forwarder", zap.Error(err))
	}

	addr := fmt.Sprintf(":%s", cfg.Proxy.Port)
	log.Info("Proxy server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, forwarder); err != nil {
		log.Fatal("Failed to start proxy server", zap.Error(err))
	}
}
