package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/onrevhq/attribution-graph-service/internal/dto"
	"github.com/onrevhq/attribution-graph-service/internal/repository"
	"github.com/onrevhq/attribution-graph-service/internal/service"
)

// MockIngestService is a mock implementation of service.IngestServicer
type MockIngestService struct {
	mock.Mock
}

func (m *MockIngestService) UpsertPerson(ctx context.Context, req *dto.UpsertPersonRequest) (*dto.UpsertPersonResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UpsertPersonResponse), args.Error(1)
}

func (m *MockIngestService) UpsertCampaign(ctx context.Context, req *dto.UpsertCampaignRequest) (*dto.UpsertCampaignResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UpsertCampaignResponse), args.Error(1)
}

func (m *MockIngestService) RecordClick(ctx context.Context, req *dto.RecordClickRequest) (*dto.RecordClickResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RecordClickResponse), args.Error(1)
}

func (m *MockIngestService) SampleClicks(ctx context.Context, req *dto.SampleClicksRequest) ([]dto.ClickSampleData, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ClickSampleData), args.Error(1)
}

func (m *MockIngestService) PersonInternalIDs(ctx context.Context, req *dto.PersonInternalIDsRequest) (*dto.PersonInternalIDsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PersonInternalIDsResponse), args.Error(1)
}

func (m *MockIngestService) PersonIDMap(ctx context.Context, req *dto.PersonIDMapRequest) (*dto.PersonIDMapResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PersonIDMapResponse), args.Error(1)
}

func (m *MockIngestService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHandler_HealthCheck(t *testing.T) {
	mockService := new(MockIngestService)
	log := zap.NewNop()

	handler := NewHandler(mockService, "", log)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]bool
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.True(t, response["ok"])
	mockService.AssertNotCalled(t, "Ping")
}

func TestHandler_ReadyCheck_Ready(t *testing.T) {
	mockService := new(MockIngestService)
	log := zap.NewNop()

	handler := NewHandler(mockService, "", log)

	mockService.On("Ping", mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestHandler_ReadyCheck_StoreDown(t *testing.T) {
	mockService := new(MockIngestService)
	log := zap.NewNop()

	handler := NewHandler(mockService, "", log)

	mockService.On("Ping", mock.Anything).Return(repository.ErrUnavailable)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "upstream_unavailable", response.Error)
}

func TestHandler_UpsertPerson_Success(t *testing.T) {
	mockService := new(MockIngestService)
	log := zap.NewNop()

	handler := NewHandler(mockService, "", log)

	personReq := dto.UpsertPersonRequest{
		ID:    "person-42",
		Name:  "Jane Doe",
		Email: "jane@example.com",
	}

	expectedResponse := &dto.UpsertPersonResponse{
		ID:            "person-42",
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		ContactNumber: "Unknown",
		Created:       true,
	}

	mockService.On("UpsertPerson", mock.Anything, &personReq).Return(expectedResponse, nil)

	body, _ := json.Marshal(personReq)
	req := httptest.NewRequest(http.MethodPost, "/person", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.UpsertPersonResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "person-42", response.ID)
	assert.Equal(t, "Unknown", response.ContactNumber)
	assert.True(t, response.Created)
	mockService.AssertExpectations(t)
}

func TestHandler_UpsertPerson_InvalidJSON(t *testing.T) {
	mockService := new(MockIngestService)
	log := zap.NewNop()

	handler := NewHandler(mockService, "", log)

	invalidJSON := []byte(`{"name": "Jane", invalid}`)
	req := httptest.NewRequest(http.MethodPost, "/person", bytes.NewReader(invalidJSON))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "validation_error", response.Error)
	mockService.AssertNotCalled(t, "UpsertPerson")
}

func TestHandler_UpsertPerson_StoreUnavailable(t *testing.T) {
	mockService := new(MockIngestService)
	log := zap.NewNop()

	handler := NewHandler(mockService, "", log)

	serviceErr := fmt.Errorf("failed to upsert person: %w", repository.ErrUnavailable)
	mockService.On("UpsertPerson", mock.Anything, mock.Anything).Return(nil, serviceErr)

	body, _ := json.Marshal(dto.UpsertPersonRequest{ID: "person-42"})
	req := httptest.NewRequest(http.MethodPost, "/person", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "upstream_unavailable", response.Error)
	assert.Contains(t, response.Message, "failed to upsert person")
	mockService.AssertExpectations(t)
}

func TestHandler_UpsertCampaign_Success(t *testing.T) {
	mockService := new(MockIngestService)
	log := zap.NewNop()

	handler := NewHandler(mockService, "", log)

	campaignReq := dto.UpsertCampaignRequest{
		Campaign: "Spring Sale",
	}

	expectedResponse := &dto.UpsertCampaignResponse{
		ID:       "62bb79d4e40847332ead1c0d4dc35f76d903722b15d4d5280d0705488776a8eb",
		Campaign: "Spring Sale",
		Created:  false,
	}

	mockService.On("UpsertCampaign", mock.Anything, &campaignReq).Return(expectedResponse, nil)

	body, _ := json.Marshal(campaignReq)
	req := httptest.NewRequest(http.MethodPost, "/campaign", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.UpsertCampaignResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Spring Sale", response.Campaign)
	assert.False(t, response.Created)
	mockService.AssertExpectations(t)
}

func TestHandler_RecordClick_Success(t *testing.T) {
	mockService := new(MockIngestService)
	log := zap.NewNop()

	handler := NewHandler(mockService, "", log)

	clickReq := dto.RecordClickRequest{
		PersonID:   "person-42",
		CampaignID: "campaign-7",
		Content:    "instagram-story",
		Source:     "social",
	}

	expectedResponse := &dto.RecordClickResponse{
		Click: dto.ClickEventData{
			ID:         "click-1",
			PersonID:   "person-42",
			CampaignID: "campaign-7",
			Content:    "instagram-story",
			Source:     "social",
			Tag:        "instagram",
			CreatedAt:  time.Date(2026, 8, 20, 12, 30, 0, 0, time.UTC),
		},
		NodesCreated: 0,
		RelsCreated:  1,
		PropsSet:     11,
	}

	mockService.On("RecordClick", mock.Anything, &clickReq).Return(expectedResponse, nil)

	body, _ := json.Marshal(clickReq)
	req := httptest.NewRequest(http.MethodPost, "/clicked_on", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response dto.RecordClickResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "click-1", response.Click.ID)
	assert.Equal(t, "instagram", response.Click.Tag)
	assert.Equal(t, 1, response.RelsCreated)
	mockService.AssertExpectations(t)
}

func TestHandler_RecordClick_EmptyPayload(t *testing.T) {
	mockService := new(MockIngestService)
	log := zap.NewNop()

	handler := NewHandler(mockService, "", log)

	serviceErr := fmt.Errorf("%w: click payload carries no ids and no attribution fields", service.ErrInvalidInput)
	mockService.On("RecordClick", mock.Anything, mock.Anything).Return(nil, serviceErr)

	body, _ := json.Marshal(dto.RecordClickRequest{})
	req := httptest.NewRequest(http.MethodPost, "/clicked_on", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "validation_error", response.Error)
	mockService.AssertExpectations(t)
}

func TestHandler_SampleClicks_Success(t *testing.T) {
	mockService := new(MockIngestService)
	log := zap.NewNop()

	handler := NewHandler(mockService, "", log)

	clicks := []dto.ClickSampleData{
		{
			ClickID:    "click-2",
			PersonID:   "person-42",
			PersonName: "Jane Doe",
			CampaignID: "campaign-7",
			Campaign:   "Spring Sale",
			Tag:        "facebook",
		},
		{
			ClickID:  "click-1",
			PersonID: "person-43",
		},
	}

	mockService.On("SampleClicks", mock.Anything, &dto.SampleClicksRequest{Limit: 5}).Return(clicks, nil)

	req := httptest.NewRequest(http.MethodGet, "/sample?limit=5", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []dto.ClickSampleData
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 2)
	assert.Equal(t, "click-2", response[0].ClickID)
	assert.Equal(t, "Spring Sale", response[0].Campaign)
	mockService.AssertExpectations(t)
}

func TestHandler_SampleClicks_DefaultLimit(t *testing.T) {
	mockService := new(MockIngestService)
	log := zap.NewNop()

	handler := NewHandler(mockService, "", log)

	mockService.On("SampleClicks", mock.Anything, &dto.SampleClicksRequest{Limit: 10}).Return([]dto.ClickSampleData{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/sample", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestHandler_SampleClicks_ServiceError(t *testing.T) {
	mockService := new(MockIngestService)
	log := zap.NewNop()

	handler := NewHandler(mockService, "", log)

	serviceErr := errors.New("result mapping error")
	mockService.On("SampleClicks", mock.Anything, mock.Anything).Return(nil, serviceErr)

	req := httptest.NewRequest(http.MethodGet, "/sample", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "internal_error", response.Error)
	mockService.AssertExpectations(t)
}

func TestHandler_PersonInternalIDs_Success(t *testing.T) {
	mockService := new(MockIngestService)
	log := zap.NewNop()

	handler := NewHandler(mockService, "", log)

	expectedResponse := &dto.PersonInternalIDsResponse{
		Items:    []string{"4:abc:1", "4:abc:2"},
		NextSkip: 30,
	}

	mockService.On("PersonInternalIDs", mock.Anything, &dto.PersonInternalIDsRequest{
		OnlyConnected: true,
		Skip:          10,
		Limit:         20,
	}).Return(expectedResponse, nil)

	req := httptest.NewRequest(http.MethodGet, "/ids/person/internal?only_connected=true&skip=10&limit=20", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.PersonInternalIDsResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response.Items, 2)
	assert.Equal(t, 30, response.NextSkip)
	mockService.AssertExpectations(t)
}

func TestHandler_PersonIDMap_Success(t *testing.T) {
	mockService := new(MockIngestService)
	log := zap.NewNop()

	handler := NewHandler(mockService, "", log)

	expectedResponse := &dto.PersonIDMapResponse{
		Items: []dto.PersonIDMapItem{
			{ExternalID: "person-42", Neo4jID: "4:abc:1"},
		},
		NextSkip: 500,
	}

	mockService.On("PersonIDMap", mock.Anything, &dto.PersonIDMapRequest{Limit: 500}).Return(expectedResponse, nil)

	req := httptest.NewRequest(http.MethodGet, "/ids/person/map", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.PersonIDMapResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response.Items, 1)
	assert.Equal(t, "person-42", response.Items[0].ExternalID)
	assert.Equal(t, "4:abc:1", response.Items[0].Neo4jID)
	mockService.AssertExpectations(t)
}

func TestHandler_APIKey_Required(t *testing.T) {
	mockService := new(MockIngestService)
	log := zap.NewNop()

	handler := NewHandler(mockService, "secret-key", log)

	body, _ := json.Marshal(dto.UpsertPersonRequest{ID: "person-42"})
	req := httptest.NewRequest(http.MethodPost, "/person", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "unauthorized", response.Error)
	mockService.AssertNotCalled(t, "UpsertPerson")
}

func TestHandler_APIKey_Accepted(t *testing.T) {
	mockService := new(MockIngestService)
	log := zap.NewNop()

	handler := NewHandler(mockService, "secret-key", log)

	expectedResponse := &dto.UpsertPersonResponse{ID: "person-42", Created: true}
	mockService.On("UpsertPerson", mock.Anything, mock.Anything).Return(expectedResponse, nil)

	body, _ := json.Marshal(dto.UpsertPersonRequest{ID: "person-42"})
	req := httptest.NewRequest(http.MethodPost, "/person", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", "secret-key")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestHandler_APIKey_HealthStaysOpen(t *testing.T) {
	mockService := new(MockIngestService)
	log := zap.NewNop()

	handler := NewHandler(mockService, "secret-key", log)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
