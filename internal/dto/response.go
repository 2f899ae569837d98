package dto

import "time"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"click payload is empty"`
}

// UpsertPersonResponse represents the resolved Person record after an upsert.
// The record is identical whether the node was created or updated.
type UpsertPersonResponse struct {
	ID            string `json:"id" example:"per_8f14e45f"`
	Name          string `json:"name" example:"Jane Cooper"`
	Email         string `json:"email" example:"jane@example.com"`
	ContactNumber string `json:"contact_number" example:"+15550100"`
	Created       bool   `json:"created" example:"true"`
}

// UpsertCampaignResponse represents the resolved AdCampaign record after an upsert
type UpsertCampaignResponse struct {
	ID       string `json:"id" example:"cmp_987"`
	Campaign string `json:"campaign" example:"spring_sale"`
	Created  bool   `json:"created" example:"true"`
}

// ClickEventData represents a recorded Clicked_on edge
type ClickEventData struct {
	ID         string    `json:"id" example:"clk_42"`
	PersonID   string    `json:"person_id" example:"per_8f14e45f"`
	CampaignID string    `json:"campaign_id" example:"cmp_987"`
	Content    string    `json:"content,omitempty" example:"instagram_story_v2"`
	Source     string    `json:"source,omitempty" example:"instagram"`
	Medium     string    `json:"medium,omitempty" example:"paid_social"`
	Term       string    `json:"term,omitempty" example:"running+shoes"`
	Date       string    `json:"date,omitempty" example:"2025-05-14"`
	Device     string    `json:"device,omitempty" example:"mobile"`
	Tag        string    `json:"tag,omitempty" example:"instagram"`
	CreatedAt  time.Time `json:"created_at"`
}

// RecordClickResponse represents a recorded click with the store's write counters
type RecordClickResponse struct {
	Click        ClickEventData `json:"click"`
	NodesCreated int            `json:"nodes_created" example:"0"`
	RelsCreated  int            `json:"rels_created" example:"1"`
	PropsSet     int            `json:"props_set" example:"11"`
}

// ClickSampleData represents one sampled click with its endpoint summaries
type ClickSampleData struct {
	ClickID      string    `json:"click_id" example:"clk_42"`
	PersonID     string    `json:"person_id" example:"per_8f14e45f"`
	PersonName   string    `json:"person_name" example:"Jane Cooper"`
	CampaignID   string    `json:"campaign_id" example:"cmp_987"`
	Campaign     string    `json:"campaign" example:"spring_sale"`
	Content      string    `json:"content,omitempty" example:"instagram_story_v2"`
	Source       string    `json:"source,omitempty" example:"instagram"`
	Medium       string    `json:"medium,omitempty" example:"paid_social"`
	Term         string    `json:"term,omitempty" example:"running+shoes"`
	Tag          string    `json:"tag,omitempty" example:"instagram"`
	Date         string    `json:"date,omitempty" example:"2025-05-14"`
	Device       string    `json:"device,omitempty" example:"mobile"`
	CreatedAt    time.Time `json:"created_at"`
}

// PersonInternalIDsResponse represents a page of internal element ids
type PersonInternalIDsResponse struct {
	Items    []string `json:"items"`
	NextSkip int      `json:"next_skip" example:"500"`
}

// PersonIDMapItem maps an external person id to the store's internal element id
type PersonIDMapItem struct {
	ExternalID string `json:"external_id" example:"per_8f14e45f"`
	Neo4jID    string `json:"neo4j_id" example:"4:2f8f9d1c-0000-0000-0000-000000000000:17"`
}

// PersonIDMapResponse represents a page of external-to-internal id mappings
type PersonIDMapResponse struct {
	Items    []PersonIDMapItem `json:"items"`
	NextSkip int               `json:"next_skip" example:"500"`
}
