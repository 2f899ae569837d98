package neo4j

import (
	"strings"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
)

func TestUpsertCypher_LatestCallWins(t *testing.T) {
	// Upsert statements SET fields unconditionally, so an update reflects
	// the latest call; only the click statement may use ON CREATE defaults.
	assert.NotContains(t, upsertPersonCypher, "ON CREATE")
	assert.NotContains(t, upsertCampaignCypher, "ON CREATE")
}

func TestCreateClickCypher_PlaceholdersNeverStompRealFields(t *testing.T) {
	// Endpoint nodes are merged with Unknown defaults applied ON CREATE
	// only, and the edge is CREATEd rather than merged so every click
	// stays a distinct occurrence.
	assert.Contains(t, createClickCypher, "MERGE (p:Person {id: $person_id})")
	assert.Contains(t, createClickCypher, "MERGE (c:AdCampaign {id: $campaign_id})")
	assert.Equal(t, 2, strings.Count(createClickCypher, "ON CREATE SET"))
	assert.Contains(t, createClickCypher, "CREATE (p)-[r:Clicked_on")
	assert.NotContains(t, createClickCypher, "MERGE (p)-[")
}

func TestSampleClicksCypher_NewestFirst(t *testing.T) {
	assert.Contains(t, sampleClicksCypher, "ORDER BY r.created_at DESC")
	assert.Contains(t, sampleClicksCypher, "LIMIT $limit")
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, optionalString(""))
	assert.Equal(t, "instagram_story", optionalString("instagram_story"))
}

func TestStringValue(t *testing.T) {
	record := &neo4j.Record{
		Keys:   []string{"name", "missing_value"},
		Values: []any{"Jane", nil},
	}

	assert.Equal(t, "Jane", stringValue(record, "name"))
	assert.Equal(t, "", stringValue(record, "missing_value"))
	assert.Equal(t, "", stringValue(record, "absent_key"))
}

func TestTimeValue(t *testing.T) {
	createdAt := time.Date(2025, 5, 14, 9, 30, 0, 0, time.UTC)
	record := &neo4j.Record{
		Keys:   []string{"created_at", "not_a_time"},
		Values: []any{createdAt, "2025-05-14"},
	}

	assert.Equal(t, createdAt, timeValue(record, "created_at"))
	assert.True(t, timeValue(record, "not_a_time").IsZero())
	assert.True(t, timeValue(record, "absent_key").IsZero())
}
