package domain

import "time"

// Person represents a tracked individual in the attribution graph
type Person struct {
	ID            string
	Name          string
	Email         string
	ContactNumber string
}

// AdCampaign represents a marketing campaign node in the attribution graph
type AdCampaign struct {
	ID       string
	Campaign string
}

// ClickEvent represents one Clicked_on relationship between a Person and an
// AdCampaign. Every occurrence is a distinct edge; edges are never merged.
type ClickEvent struct {
	ID         string
	PersonID   string
	CampaignID string
	Content    string
	Source     string
	Medium     string
	Term       string
	Date       string
	Device     string
	Tag        string
	CreatedAt  time.Time
}
