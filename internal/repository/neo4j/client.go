package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/onrevhq/attribution-graph-service/internal/config"
)

// Client wraps the Neo4j driver connection
type Client struct {
	driver   neo4j.DriverWithContext
	database string
	log      *zap.Logger
}

// NewClient creates a new Neo4j client with the given configuration
func NewClient(ctx context.Context, config *config.Neo4j, log *zap.Logger) (*Client, error) {
	log.Info("Connecting to Neo4j",
		zap.String("uri", config.URI),
		zap.String("database", config.Database))

	driver, err := neo4j.NewDriverWithContext(config.URI,
		neo4j.BasicAuth(config.Username, config.Password, ""))
	if err != nil {
		log.Error("Failed to create Neo4j driver", zap.Error(err))
		return nil, fmt.Errorf("failed to create Neo4j driver: %w", err)
	}

	// Verify connection
	if err := driver.VerifyConnectivity(ctx); err != nil {
		log.Error("Failed to verify Neo4j connectivity", zap.Error(err))
		return nil, fmt.Errorf("failed to verify Neo4j connectivity: %w", err)
	}

	log.Info("Neo4j connection established successfully")

	return &Client{driver: driver, database: config.Database, log: log}, nil
}

// Driver returns the underlying Neo4j driver
func (c *Client) Driver() neo4j.DriverWithContext {
	return c.driver
}

// Database returns the database name queries run against
func (c *Client) Database() string {
	return c.database
}

// Close closes the Neo4j driver connection
func (c *Client) Close(ctx context.Context) error {
	c.log.Info("Closing Neo4j connection")
	if err := c.driver.Close(ctx); err != nil {
		c.log.Error("Error closing Neo4j connection", zap.Error(err))
		return err
	}
	c.log.Info("Neo4j connection closed successfully")
	return nil
}
