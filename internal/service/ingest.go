package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/onrevhq/attribution-graph-service/internal/domain"
	"github.com/onrevhq/attribution-graph-service/internal/dto"
	"github.com/onrevhq/attribution-graph-service/internal/identity"
	"github.com/onrevhq/attribution-graph-service/internal/repository"
)

// ErrInvalidInput indicates a payload that cannot be resolved into a write.
var ErrInvalidInput = errors.New("invalid input")

const (
	defaultSampleLimit = 10
	maxSampleLimit     = 100
	defaultListLimit   = 500
	maxListLimit       = 2000
)

// IngestService resolves inbound payloads into canonical entity records and
// writes them to the graph store
type IngestService struct {
	repository   repository.GraphRepository
	storeTimeout time.Duration
	log          *zap.Logger
}

// NewIngestService creates a new ingest service
func NewIngestService(repo repository.GraphRepository, storeTimeout time.Duration, log *zap.Logger) *IngestService {
	return &IngestService{
		repository:   repo,
		storeTimeout: storeTimeout,
		log:          log,
	}
}

// UpsertPerson resolves the fallback policy over the payload and merges the
// Person node keyed on the resolved id. The returned record is the same
// whether the node was created or updated.
func (s *IngestService) UpsertPerson(ctx context.Context, req *dto.UpsertPersonRequest) (*dto.UpsertPersonResponse, error) {
	person := resolvePerson(req)

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	created, err := s.repository.UpsertPerson(ctx, person)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert person: %w", err)
	}

	s.log.Info("Person upserted",
		zap.String("person_id", person.ID),
		zap.Bool("created", created))

	return &dto.UpsertPersonResponse{
		ID:            person.ID,
		Name:          person.Name,
		Email:         person.Email,
		ContactNumber: person.ContactNumber,
		Created:       created,
	}, nil
}

// UpsertCampaign resolves the fallback policy over the payload and merges the
// AdCampaign node keyed on the resolved id
func (s *IngestService) UpsertCampaign(ctx context.Context, req *dto.UpsertCampaignRequest) (*dto.UpsertCampaignResponse, error) {
	campaign := resolveCampaign(req)

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	created, err := s.repository.UpsertCampaign(ctx, campaign)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert campaign: %w", err)
	}

	s.log.Info("Campaign upserted",
		zap.String("campaign_id", campaign.ID),
		zap.Bool("created", created))

	return &dto.UpsertCampaignResponse{
		ID:       campaign.ID,
		Campaign: campaign.Campaign,
		Created:  created,
	}, nil
}

// RecordClick resolves both endpoint ids, ensures the endpoint nodes exist and
// appends a new Clicked_on edge carrying the attribution fields. An entirely
// empty payload is rejected before the store is touched: materializing two
// anonymous placeholder nodes from nothing would only hide caller bugs.
func (s *IngestService) RecordClick(ctx context.Context, req *dto.RecordClickRequest) (*dto.RecordClickResponse, error) {
	if clickPayloadEmpty(req) {
		return nil, fmt.Errorf("%w: click payload carries no ids and no attribution fields", ErrInvalidInput)
	}

	click := resolveClick(req)

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	summary, err := s.repository.CreateClick(ctx, click)
	if err != nil {
		return nil, fmt.Errorf("failed to record click: %w", err)
	}

	s.log.Info("Click recorded",
		zap.String("click_id", click.ID),
		zap.String("person_id", click.PersonID),
		zap.String("campaign_id", click.CampaignID),
		zap.Int("nodes_created", summary.NodesCreated))

	return &dto.RecordClickResponse{
		Click: dto.ClickEventData{
			ID:         click.ID,
			PersonID:   click.PersonID,
			CampaignID: click.CampaignID,
			Content:    click.Content,
			Source:     click.Source,
			Medium:     click.Medium,
			Term:       click.Term,
			Date:       click.Date,
			Device:     click.Device,
			Tag:        click.Tag,
			CreatedAt:  click.CreatedAt,
		},
		NodesCreated: summary.NodesCreated,
		RelsCreated:  summary.RelationshipsCreated,
		PropsSet:     summary.PropertiesSet,
	}, nil
}

// SampleClicks returns up to limit most-recent clicks with their endpoint
// summaries, newest first. Read-only.
func (s *IngestService) SampleClicks(ctx context.Context, req *dto.SampleClicksRequest) ([]dto.ClickSampleData, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultSampleLimit
	}
	if limit > maxSampleLimit {
		limit = maxSampleLimit
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	samples, err := s.repository.SampleClicks(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to sample clicks: %w", err)
	}

	clicks := make([]dto.ClickSampleData, 0, len(samples))
	for _, sample := range samples {
		clicks = append(clicks, dto.ClickSampleData{
			ClickID:    sample.ClickID,
			PersonID:   sample.PersonID,
			PersonName: sample.PersonName,
			CampaignID: sample.CampaignID,
			Campaign:   sample.CampaignName,
			Content:    sample.Content,
			Source:     sample.Source,
			Medium:     sample.Medium,
			Term:       sample.Term,
			Tag:        sample.Tag,
			Date:       sample.Date,
			Device:     sample.Device,
			CreatedAt:  sample.CreatedAt,
		})
	}

	return clicks, nil
}

// PersonInternalIDs lists the store's internal element ids for Person nodes,
// paginated; next_skip always advances by the clamped limit
func (s *IngestService) PersonInternalIDs(ctx context.Context, req *dto.PersonInternalIDsRequest) (*dto.PersonInternalIDsResponse, error) {
	skip := clampSkip(req.Skip)
	limit := clampListLimit(req.Limit)

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	ids, err := s.repository.PersonInternalIDs(ctx, req.OnlyConnected, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list person internal ids: %w", err)
	}

	return &dto.PersonInternalIDsResponse{
		Items:    ids,
		NextSkip: skip + limit,
	}, nil
}

// PersonIDMap lists (external id, internal element id) pairs for Person
// nodes, paginated
func (s *IngestService) PersonIDMap(ctx context.Context, req *dto.PersonIDMapRequest) (*dto.PersonIDMapResponse, error) {
	skip := clampSkip(req.Skip)
	limit := clampListLimit(req.Limit)

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	pairs, err := s.repository.PersonIDMap(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list person id map: %w", err)
	}

	items := make([]dto.PersonIDMapItem, 0, len(pairs))
	for _, pair := range pairs {
		items = append(items, dto.PersonIDMapItem{
			ExternalID: pair.ExternalID,
			Neo4jID:    pair.Neo4jID,
		})
	}

	return &dto.PersonIDMapResponse{
		Items:    items,
		NextSkip: skip + limit,
	}, nil
}

// Ping verifies the graph store is reachable
func (s *IngestService) Ping(ctx context.Context) error {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	return s.repository.Ping(ctx)
}

// storeContext bounds a store call so a stalled graph store cannot hang the
// request indefinitely
func (s *IngestService) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.storeTimeout)
}

// resolvePerson applies the fallback policy to a person payload: blank
// display fields become Unknown, a blank id is derived from the supplied
// fields, and a fully empty payload gets a fresh id.
func resolvePerson(req *dto.UpsertPersonRequest) *domain.Person {
	person := &domain.Person{
		ID:            strings.TrimSpace(req.ID),
		Name:          identity.FillUnknown(req.Name),
		Email:         identity.FillUnknown(req.Email),
		ContactNumber: identity.FillUnknown(req.ContactNumber),
	}

	if person.ID == "" {
		if identity.IsBlank(req.Name) && identity.IsBlank(req.Email) && identity.IsBlank(req.ContactNumber) {
			person.ID = identity.FreshID()
		} else {
			person.ID = identity.DeriveID("person", req.Name, req.Email, req.ContactNumber)
		}
	}

	return person
}

// resolveCampaign applies the fallback policy to a campaign payload
func resolveCampaign(req *dto.UpsertCampaignRequest) *domain.AdCampaign {
	campaign := &domain.AdCampaign{
		ID:       strings.TrimSpace(req.ID),
		Campaign: identity.FillUnknown(req.Campaign),
	}

	if campaign.ID == "" {
		if identity.IsBlank(req.Campaign) {
			campaign.ID = identity.FreshID()
		} else {
			campaign.ID = identity.DeriveID("adcampaign", req.Campaign)
		}
	}

	return campaign
}

// resolveClick fills the click's ids and derives its channel tag. A click
// payload carries no endpoint fields beyond the ids, so a blank endpoint id
// always resolves to a fresh one.
func resolveClick(req *dto.RecordClickRequest) *domain.ClickEvent {
	click := &domain.ClickEvent{
		ID:         strings.TrimSpace(req.ID),
		PersonID:   strings.TrimSpace(req.PersonID),
		CampaignID: strings.TrimSpace(req.CampaignID),
		Content:    strings.TrimSpace(req.Content),
		Source:     strings.TrimSpace(req.Source),
		Medium:     strings.TrimSpace(req.Medium),
		Term:       strings.TrimSpace(req.Term),
		Date:       strings.TrimSpace(req.Date),
		Device:     strings.TrimSpace(req.Device),
		CreatedAt:  time.Now().UTC(),
	}

	if click.ID == "" {
		click.ID = identity.FreshID()
	}
	if click.PersonID == "" {
		click.PersonID = identity.FreshID()
	}
	if click.CampaignID == "" {
		click.CampaignID = identity.FreshID()
	}
	click.Tag = deriveTag(click.Content)

	return click
}

// clickPayloadEmpty reports whether a click payload carries nothing at all
func clickPayloadEmpty(req *dto.RecordClickRequest) bool {
	fields := []string{
		req.ID, req.PersonID, req.CampaignID,
		req.Content, req.Source, req.Medium,
		req.Term, req.Date, req.Device,
	}
	for _, field := range fields {
		if !identity.IsBlank(field) {
			return false
		}
	}
	return true
}

// deriveTag maps click content to a coarse channel tag
func deriveTag(content string) string {
	lowered := strings.ToLower(content)
	switch {
	case strings.Contains(lowered, "instagram"):
		return "instagram"
	case strings.Contains(lowered, "facebook"):
		return "facebook"
	}
	return ""
}

func clampSkip(skip int) int {
	if skip < 0 {
		return 0
	}
	return skip
}

func clampListLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
