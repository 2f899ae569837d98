package service

import (
	"context"

	"github.com/onrevhq/attribution-graph-service/internal/dto"
)

// IngestServicer defines the interface for ingestion service operations
type IngestServicer interface {
	UpsertPerson(ctx context.Context, req *dto.UpsertPersonRequest) (*dto.UpsertPersonResponse, error)
	UpsertCampaign(ctx context.Context, req *dto.UpsertCampaignRequest) (*dto.UpsertCampaignResponse, error)
	RecordClick(ctx context.Context, req *dto.RecordClickRequest) (*dto.RecordClickResponse, error)
	SampleClicks(ctx context.Context, req *dto.SampleClicksRequest) ([]dto.ClickSampleData, error)
	PersonInternalIDs(ctx context.Context, req *dto.PersonInternalIDsRequest) (*dto.PersonInternalIDsResponse, error)
	PersonIDMap(ctx context.Context, req *dto.PersonIDMapRequest) (*dto.PersonIDMapResponse, error)
	Ping(ctx context.Context) error
}
