package repository

import (
	"context"
	"errors"
	"time"

	"github.com/onrevhq/attribution-graph-service/internal/domain"
)

// ErrUnavailable indicates the graph store could not be reached or did not
// answer within the request deadline.
var ErrUnavailable = errors.New("graph store unavailable")

// ClickWriteSummary reports the store-side counters for a click write
type ClickWriteSummary struct {
	NodesCreated         int
	RelationshipsCreated int
	PropertiesSet        int
}

// ClickSample represents one Clicked_on edge with its endpoint summaries
type ClickSample struct {
	ClickID      string
	PersonID     string
	PersonName   string
	CampaignID   string
	CampaignName string
	Content      string
	Source       string
	Medium       string
	Term         string
	Tag          string
	Date         string
	Device       string
	CreatedAt    time.Time
}

// PersonIDPair maps an external person id to the store's internal element id
type PersonIDPair struct {
	ExternalID string
	Neo4jID    string
}

// GraphRepository defines the interface for graph storage operations
type GraphRepository interface {
	// UpsertPerson merges a Person node keyed on its id and sets all fields.
	// Returns true when the node was created rather than updated.
	UpsertPerson(ctx context.Context, person *domain.Person) (bool, error)

	// UpsertCampaign merges an AdCampaign node keyed on its id and sets all
	// fields. Returns true when the node was created rather than updated.
	UpsertCampaign(ctx context.Context, campaign *domain.AdCampaign) (bool, error)

	// CreateClick appends a new Clicked_on edge between the click's endpoints,
	// merging placeholder endpoint nodes first when they do not exist yet.
	CreateClick(ctx context.Context, click *domain.ClickEvent) (*ClickWriteSummary, error)

	// SampleClicks returns up to limit clicks ordered newest first.
	SampleClicks(ctx context.Context, limit int) ([]ClickSample, error)

	// PersonInternalIDs lists the store's internal element ids for Person
	// nodes, optionally restricted to persons with at least one click.
	PersonInternalIDs(ctx context.Context, onlyConnected bool, skip, limit int) ([]string, error)

	// PersonIDMap lists (external id, internal element id) pairs for Person
	// nodes.
	PersonIDMap(ctx context.Context, skip, limit int) ([]PersonIDPair, error)

	// InitSchema creates the uniqueness constraints the upserts rely on.
	InitSchema(ctx context.Context) error

	// Ping checks if the graph store connection is alive.
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources.
	Close(ctx context.Context) error
}
