package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/onrevhq/attribution-graph-service/docs"
	"github.com/onrevhq/attribution-graph-service/internal/dto"
	"github.com/onrevhq/attribution-graph-service/internal/middleware"
	"github.com/onrevhq/attribution-graph-service/internal/repository"
	"github.com/onrevhq/attribution-graph-service/internal/service"
)

type Handler struct {
	ingestService service.IngestServicer
	apiKey        string
	router        *gin.Engine
	log           *zap.Logger
}

func NewHandler(ingestService service.IngestServicer, apiKey string, log *zap.Logger) *Handler {
	h := &Handler{
		ingestService: ingestService,
		apiKey:        apiKey,
		router:        gin.Default(),
		log:           log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/healthz", h.healthCheck)
	h.router.GET("/readyz", h.readyCheck)
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := h.router.Group("/", middleware.RequireAPIKey(h.apiKey))
	api.POST("/person", h.upsertPerson)
	api.POST("/campaign", h.upsertCampaign)
	api.POST("/clicked_on", h.recordClick)
	api.GET("/sample", h.sampleClicks)
	api.GET("/ids/person/internal", h.personInternalIDs)
	api.GET("/ids/person/map", h.personIDMap)
}

// errorResponse maps a service error to its wire status and body
func errorResponse(err error) (int, dto.ErrorResponse) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		}
	case errors.Is(err, repository.ErrUnavailable):
		return http.StatusServiceUnavailable, dto.ErrorResponse{
			Error:   "upstream_unavailable",
			Message: err.Error(),
		}
	}
	return http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "internal_error",
		Message: err.Error(),
	}
}

// healthCheck answers liveness checks without touching any dependency
// @Summary Liveness check
// @Description Check if the service is running; never touches the graph store
// @Tags health
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /healthz [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok": true,
	})
}

// readyCheck answers readiness checks by pinging the graph store
// @Summary Readiness check
// @Description Check if the graph store is reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 503 {object} dto.ErrorResponse
// @Router /readyz [get]
func (h *Handler) readyCheck(c *gin.Context) {
	if err := h.ingestService.Ping(c.Request.Context()); err != nil {
		h.log.Warn("Readiness check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error:   "upstream_unavailable",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok": true,
	})
}

// upsertPerson handles POST /person
// @Summary Upsert a person
// @Description Create or update a Person node; blank fields fall back to derived or fresh values
// @Tags ingest
// @Accept json
// @Produce json
// @Param person body dto.UpsertPersonRequest true "Person payload, all fields optional"
// @Security ApiKeyAuth
// @Success 200 {object} dto.UpsertPersonResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /person [post]
func (h *Handler) upsertPerson(c *gin.Context) {
	var req dto.UpsertPersonRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid person request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.ingestService.UpsertPerson(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Failed to upsert person",
			zap.Error(err),
			zap.String("person_id", req.ID))
		status, body := errorResponse(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// upsertCampaign handles POST /campaign
// @Summary Upsert an ad campaign
// @Description Create or update an AdCampaign node; blank fields fall back to derived or fresh values
// @Tags ingest
// @Accept json
// @Produce json
// @Param campaign body dto.UpsertCampaignRequest true "Campaign payload, all fields optional"
// @Security ApiKeyAuth
// @Success 200 {object} dto.UpsertCampaignResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /campaign [post]
func (h *Handler) upsertCampaign(c *gin.Context) {
	var req dto.UpsertCampaignRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid campaign request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.ingestService.UpsertCampaign(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Failed to upsert campaign",
			zap.Error(err),
			zap.String("campaign_id", req.ID))
		status, body := errorResponse(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// recordClick handles POST /clicked_on
// @Summary Record a click
// @Description Append a Clicked_on edge between a Person and an AdCampaign, creating placeholder endpoints as needed
// @Tags ingest
// @Accept json
// @Produce json
// @Param click body dto.RecordClickRequest true "Click payload, all fields optional but not all blank"
// @Security ApiKeyAuth
// @Success 201 {object} dto.RecordClickResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /clicked_on [post]
func (h *Handler) recordClick(c *gin.Context) {
	var req dto.RecordClickRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid click request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.ingestService.RecordClick(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			h.log.Warn("Rejected click request", zap.Error(err))
		} else {
			h.log.Error("Failed to record click",
				zap.Error(err),
				zap.String("person_id", req.PersonID),
				zap.String("campaign_id", req.CampaignID))
		}
		status, body := errorResponse(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// sampleClicks handles GET /sample
// @Summary Sample recent clicks
// @Description Retrieve the most recent clicks with their endpoint summaries, newest first
// @Tags ingest
// @Produce json
// @Param limit query int false "Max clicks to return (1-100)" default(10)
// @Security ApiKeyAuth
// @Success 200 {array} dto.ClickSampleData
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /sample [get]
func (h *Handler) sampleClicks(c *gin.Context) {
	var req dto.SampleClicksRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Warn("Invalid sample request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	clicks, err := h.ingestService.SampleClicks(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Failed to sample clicks",
			zap.Error(err),
			zap.Int("limit", req.Limit))
		status, body := errorResponse(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, clicks)
}

// personInternalIDs handles GET /ids/person/internal
// @Summary List internal person ids
// @Description Page through the store's internal element ids for Person nodes
// @Tags ids
// @Produce json
// @Param only_connected query bool false "Only persons with at least one click"
// @Param skip query int false "Offset into the listing" default(0)
// @Param limit query int false "Page size (1-2000)" default(500)
// @Security ApiKeyAuth
// @Success 200 {object} dto.PersonInternalIDsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /ids/person/internal [get]
func (h *Handler) personInternalIDs(c *gin.Context) {
	var req dto.PersonInternalIDsRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Warn("Invalid id listing request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.ingestService.PersonInternalIDs(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Failed to list person internal ids",
			zap.Error(err),
			zap.Int("skip", req.Skip),
			zap.Int("limit", req.Limit))
		status, body := errorResponse(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// personIDMap handles GET /ids/person/map
// @Summary Map external to internal person ids
// @Description Page through (external id, internal element id) pairs for Person nodes
// @Tags ids
// @Produce json
// @Param skip query int false "Offset into the listing" default(0)
// @Param limit query int false "Page size (1-2000)" default(500)
// @Security ApiKeyAuth
// @Success 200 {object} dto.PersonIDMapResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /ids/person/map [get]
func (h *Handler) personIDMap(c *gin.Context) {
	var req dto.PersonIDMapRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Warn("Invalid id map request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.ingestService.PersonIDMap(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Failed to list person id map",
			zap.Error(err),
			zap.Int("skip", req.Skip),
			zap.Int("limit", req.Limit))
		status, body := errorResponse(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, resp)
}
