package neo4j

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/onrevhq/attribution-graph-service/internal/domain"
	"github.com/onrevhq/attribution-graph-service/internal/repository"
)

const upsertPersonCypher = `
MERGE (p:Person {id: $id})
SET p.name = $name,
    p.email = $email,
    p.contact_number = $contact_number
RETURN p.id AS id`

const upsertCampaignCypher = `
MERGE (c:AdCampaign {id: $id})
SET c.campaign = $campaign
RETURN c.id AS id`

// createClickCypher merges both endpoints before appending the edge, so a
// click never fails for want of a node: endpoints missing from the graph are
// created as placeholders, while existing nodes keep their real fields (the
// Unknown defaults apply ON CREATE only). The edge itself is CREATEd, never
// merged, because every click occurrence is a distinct event.
const createClickCypher = `
MERGE (p:Person {id: $person_id})
  ON CREATE SET p.name = 'Unknown', p.email = 'Unknown', p.contact_number = 'Unknown'
MERGE (c:AdCampaign {id: $campaign_id})
  ON CREATE SET c.campaign = 'Unknown'
CREATE (p)-[r:Clicked_on {
  id: $id,
  person_id: $person_id,
  campaign_id: $campaign_id,
  content: $content,
  source: $source,
  medium: $medium,
  term: $term,
  date: $date,
  device: $device,
  tag: $tag,
  created_at: $created_at
}]->(c)
RETURN r.id AS click_id`

const sampleClicksCypher = `
MATCH (p:Person)-[r:Clicked_on]->(c:AdCampaign)
RETURN r.id AS click_id,
       p.id AS person_id, p.name AS person_name,
       c.id AS campaign_id, c.campaign AS campaign,
       r.content AS content, r.source AS source, r.medium AS medium,
       r.term AS term, r.tag AS tag, r.date AS date, r.device AS device,
       r.created_at AS created_at
ORDER BY r.created_at DESC
LIMIT $limit`

const personInternalIDsCypher = `
MATCH (p:Person)
WHERE NOT $only_connected OR EXISTS { (p)-[:Clicked_on]->(:AdCampaign) }
RETURN elementId(p) AS neo4j_id
ORDER BY neo4j_id
SKIP $skip LIMIT $limit`

const personIDMapCypher = `
MATCH (p:Person)
RETURN p.id AS external_id, elementId(p) AS neo4j_id
ORDER BY external_id
SKIP $skip LIMIT $limit`

// Repository implements GraphRepository for Neo4j
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new Neo4j repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema creates the uniqueness constraints that make concurrent merges
// on a brand-new id converge to a single node
func (r *Repository) InitSchema(ctx context.Context) error {
	constraints := []string{
		`CREATE CONSTRAINT person_id_unique IF NOT EXISTS FOR (p:Person) REQUIRE p.id IS UNIQUE`,
		`CREATE CONSTRAINT ad_campaign_id_unique IF NOT EXISTS FOR (c:AdCampaign) REQUIRE c.id IS UNIQUE`,
	}

	for _, constraint := range constraints {
		if _, err := r.run(ctx, constraint, nil); err != nil {
			return fmt.Errorf("failed to create constraint: %w", err)
		}
	}

	r.log.Info("Neo4j schema initialized successfully")
	return nil
}

// UpsertPerson merges a Person node keyed on its id, setting all fields on
// both the create and update paths
func (r *Repository) UpsertPerson(ctx context.Context, person *domain.Person) (bool, error) {
	result, err := r.run(ctx, upsertPersonCypher, map[string]any{
		"id":             person.ID,
		"name":           person.Name,
		"email":          person.Email,
		"contact_number": person.ContactNumber,
	})
	if err != nil {
		return false, fmt.Errorf("failed to upsert person: %w", err)
	}

	return result.Summary.Counters().NodesCreated() > 0, nil
}

// UpsertCampaign merges an AdCampaign node keyed on its id, setting all
// fields on both the create and update paths
func (r *Repository) UpsertCampaign(ctx context.Context, campaign *domain.AdCampaign) (bool, error) {
	result, err := r.run(ctx, upsertCampaignCypher, map[string]any{
		"id":       campaign.ID,
		"campaign": campaign.Campaign,
	})
	if err != nil {
		return false, fmt.Errorf("failed to upsert campaign: %w", err)
	}

	return result.Summary.Counters().NodesCreated() > 0, nil
}

// CreateClick appends a new Clicked_on edge in a single statement, so a
// failure leaves neither a partial edge nor an orphaned placeholder behind
func (r *Repository) CreateClick(ctx context.Context, click *domain.ClickEvent) (*repository.ClickWriteSummary, error) {
	result, err := r.run(ctx, createClickCypher, map[string]any{
		"id":          click.ID,
		"person_id":   click.PersonID,
		"campaign_id": click.CampaignID,
		"content":     optionalString(click.Content),
		"source":      optionalString(click.Source),
		"medium":      optionalString(click.Medium),
		"term":        optionalString(click.Term),
		"date":        optionalString(click.Date),
		"device":      optionalString(click.Device),
		"tag":         optionalString(click.Tag),
		"created_at":  click.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create click: %w", err)
	}

	counters := result.Summary.Counters()
	return &repository.ClickWriteSummary{
		NodesCreated:         counters.NodesCreated(),
		RelationshipsCreated: counters.RelationshipsCreated(),
		PropertiesSet:        counters.PropertiesSet(),
	}, nil
}

// SampleClicks returns up to limit clicks ordered newest first
func (r *Repository) SampleClicks(ctx context.Context, limit int) ([]repository.ClickSample, error) {
	result, err := r.run(ctx, sampleClicksCypher, map[string]any{
		"limit": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sample clicks: %w", err)
	}

	samples := make([]repository.ClickSample, 0, len(result.Records))
	for _, record := range result.Records {
		samples = append(samples, repository.ClickSample{
			ClickID:      stringValue(record, "click_id"),
			PersonID:     stringValue(record, "person_id"),
			PersonName:   stringValue(record, "person_name"),
			CampaignID:   stringValue(record, "campaign_id"),
			CampaignName: stringValue(record, "campaign"),
			Content:      stringValue(record, "content"),
			Source:       stringValue(record, "source"),
			Medium:       stringValue(record, "medium"),
			Term:         stringValue(record, "term"),
			Tag:          stringValue(record, "tag"),
			Date:         stringValue(record, "date"),
			Device:       stringValue(record, "device"),
			CreatedAt:    timeValue(record, "created_at"),
		})
	}

	return samples, nil
}

// PersonInternalIDs lists elementId() values for Person nodes, optionally
// restricted to persons with at least one click
func (r *Repository) PersonInternalIDs(ctx context.Context, onlyConnected bool, skip, limit int) ([]string, error) {
	result, err := r.run(ctx, personInternalIDsCypher, map[string]any{
		"only_connected": onlyConnected,
		"skip":           skip,
		"limit":          limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list person internal ids: %w", err)
	}

	ids := make([]string, 0, len(result.Records))
	for _, record := range result.Records {
		ids = append(ids, stringValue(record, "neo4j_id"))
	}

	return ids, nil
}

// PersonIDMap lists (external id, internal element id) pairs for Person nodes
func (r *Repository) PersonIDMap(ctx context.Context, skip, limit int) ([]repository.PersonIDPair, error) {
	result, err := r.run(ctx, personIDMapCypher, map[string]any{
		"skip":  skip,
		"limit": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list person id map: %w", err)
	}

	pairs := make([]repository.PersonIDPair, 0, len(result.Records))
	for _, record := range result.Records {
		pairs = append(pairs, repository.PersonIDPair{
			ExternalID: stringValue(record, "external_id"),
			Neo4jID:    stringValue(record, "neo4j_id"),
		})
	}

	return pairs, nil
}

// Ping checks if the Neo4j connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Driver().VerifyConnectivity(ctx)
}

// Close closes the Neo4j connection
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Close(ctx)
}

// run executes a single Cypher statement eagerly against the configured
// database, mapping connectivity and deadline failures to ErrUnavailable so
// callers can tell an unreachable store from a bad statement.
func (r *Repository) run(ctx context.Context, cypher string, params map[string]any) (*neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, r.client.Driver(), cypher, params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(r.client.Database()))
	if err != nil {
		if neo4j.IsConnectivityError(err) || errors.Is(err, context.DeadlineExceeded) {
			r.log.Error("Neo4j unreachable", zap.Error(err))
			return nil, repository.ErrUnavailable
		}
		return nil, err
	}

	return result, nil
}

// optionalString maps a blank attribution field to null so the property is
// not stored at all, matching how absent fields behave
func optionalString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

// stringValue reads a string column from a record, tolerating nulls
func stringValue(record *neo4j.Record, key string) string {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return ""
	}
	text, ok := value.(string)
	if !ok {
		return fmt.Sprintf("%v", value)
	}
	return text
}

// timeValue reads a datetime column from a record, tolerating nulls
func timeValue(record *neo4j.Record, key string) time.Time {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return time.Time{}
	}
	instant, ok := value.(time.Time)
	if !ok {
		return time.Time{}
	}
	return instant
}
