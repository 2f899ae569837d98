package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Service holds settings shared by both binaries
type Service struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	APIPort     string `envconfig:"API_PORT" default:"8080"`
	Host        string `envconfig:"HOST" default:"localhost:8080"`
}

// Neo4j holds the graph store connection settings
type Neo4j struct {
	URI      string `envconfig:"URI" required:"true"`
	Username string `envconfig:"USERNAME" default:"neo4j"`
	Password string `envconfig:"PASSWORD" required:"true"`
	Database string `envconfig:"DATABASE" default:"neo4j"`
}

// Ingest holds settings for the ingestion API
type Ingest struct {
	// APIKey guards the data routes when set; empty disables the check
	APIKey          string `envconfig:"API_KEY"`
	StoreTimeoutSec int    `envconfig:"STORE_TIMEOUT_SEC" default:"10"`
}

// Proxy holds settings for the forwarding proxy
type Proxy struct {
	Port      string `envconfig:"PORT" default:"8081"`
	TargetURL string `envconfig:"TARGET_URL" required:"true"`
	APIKey    string `envconfig:"API_KEY" required:"true"`
	// Audience overrides the token audience; defaults to the target URL
	Audience string `envconfig:"AUDIENCE"`
}

// APIConfig is the configuration for the ingestion API binary
type APIConfig struct {
	Service Service `envconfig:"SERVICE"`
	Neo4j   Neo4j   `envconfig:"NEO4J"`
	Ingest  Ingest  `envconfig:"INGEST"`
}

// ProxyConfig is the configuration for the forwarding proxy binary
type ProxyConfig struct {
	Service Service `envconfig:"SERVICE"`
	Proxy   Proxy   `envconfig:"PROXY"`
}

// LoadAPI loads the ingestion API configuration from the environment,
// reading a .env file first when one is present.
func LoadAPI() (*APIConfig, error) {
	_ = godotenv.Load()

	var cfg APIConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

// LoadProxy loads the forwarding proxy configuration from the environment,
// reading a .env file first when one is present.
func LoadProxy() (*ProxyConfig, error) {
	_ = godotenv.Load()

	var cfg ProxyConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
