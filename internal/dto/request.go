package dto

// UpsertPersonRequest represents a person upsert request. Every field is
// optional; missing values are filled by the fallback policy.
type UpsertPersonRequest struct {
	ID            string `json:"id" example:"per_8f14e45f"`
	Name          string `json:"name" example:"Jane Cooper"`
	Email         string `json:"email" example:"jane@example.com"`
	ContactNumber string `json:"contact_number" example:"+15550100"`
}

// UpsertCampaignRequest represents an ad campaign upsert request
type UpsertCampaignRequest struct {
	ID       string `json:"id" example:"cmp_987"`
	Campaign string `json:"campaign" example:"spring_sale"`
}

// RecordClickRequest represents a click-through event
type RecordClickRequest struct {
	ID         string `json:"id" example:"clk_42"`
	PersonID   string `json:"person_id" example:"per_8f14e45f"`
	CampaignID string `json:"campaign_id" example:"cmp_987"`
	Content    string `json:"content" example:"instagram_story_v2"`
	Source     string `json:"source" example:"instagram"`
	Medium     string `json:"medium" example:"paid_social"`
	Term       string `json:"term" example:"running+shoes"`
	Date       string `json:"date" example:"2025-05-14"`
	Device     string `json:"device" example:"mobile"`
}

// SampleClicksRequest represents a recent-clicks query request
type SampleClicksRequest struct {
	Limit int `form:"limit,default=10" example:"10"`
}

// PersonInternalIDsRequest represents a paginated internal-id listing request
type PersonInternalIDsRequest struct {
	OnlyConnected bool `form:"only_connected" example:"false"`
	Skip          int  `form:"skip" example:"0"`
	Limit         int  `form:"limit,default=500" example:"500"`
}

// PersonIDMapRequest represents a paginated external-to-internal id mapping request
type PersonIDMapRequest struct {
	Skip  int `form:"skip" example:"0"`
	Limit int `form:"limit,default=500" example:"500"`
}
