package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kinnective/jobextractor/internal/domain"
	"github.com/kinnective/jobextractor/internal/domain/extract"
	"github.com/kinnective/jobextractor/internal/repository"
	mongostore "github.com/kinnective/jobextractor/internal/storage/mongo"
	"github.com/kinnective/jobextractor/pkg/logging"
)

// Handler exposes the pipeline's caller-facing operations over HTTP.
type Handler struct {
	extractor extract.Service
	jobs      repository.JobRepository
	companies repository.CompanyRepository
	health    repository.HealthChecker
	logger    *logging.Logger
}

// NewHandler creates the handler with dependencies
func NewHandler(
	extractor extract.Service,
	jobs repository.JobRepository,
	companies repository.CompanyRepository,
	health repository.HealthChecker,
	logger *logging.Logger,
) *Handler {
	return &Handler{
		extractor: extractor,
		jobs:      jobs,
		companies: companies,
		health:    health,
		logger:    logger,
	}
}

// Validate is the POST /validate endpoint: the heuristic input gate only,
// no backend call.
func (h *Handler) Validate(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid request body: " + err.Error()})
		return
	}

	valid, reason := h.extractor.Validate(req.RawText)
	c.JSON(http.StatusOK, validateResponse{Valid: valid, Reason: reason})
}

// Extract is the POST /extract endpoint: one full pipeline run.
func (h *Handler) Extract(c *gin.Context) {
	requestID := uuid.NewString()

	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid request body: " + err.Error(), RequestID: requestID})
		return
	}

	includeCompany := true
	if req.IncludeCompany != nil {
		includeCompany = *req.IncludeCompany
	}

	res, err := h.extractor.Extract(c.Request.Context(), req.RawText, includeCompany)
	if err != nil {
		status, payload := mapExtractError(err, requestID)
		h.logger.Warn("extraction failed",
			"request_id", requestID,
			"error", payload.Error,
			"detail", payload.Message,
		)
		c.JSON(status, payload)
		return
	}

	h.logger.Info("extraction succeeded",
		"request_id", requestID,
		"position_title", res.Job.PositionTitle,
		"company", res.Job.Company,
	)

	c.JSON(http.StatusOK, extractResponse{
		Success:            true,
		RequestID:          requestID,
		Job:                res.Job,
		Company:            res.Company,
		CompanySynthesized: res.CompanySynthesized,
	})
}

// CreateJob is the POST /jobs endpoint: persists one job record.
func (h *Handler) CreateJob(c *gin.Context) {
	var rec domain.JobRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid job record: " + err.Error()})
		return
	}

	id, err := h.jobs.InsertJob(c.Request.Context(), &rec)
	if err != nil {
		status, payload := mapStoreError(err)
		c.JSON(status, payload)
		return
	}

	c.JSON(http.StatusCreated, insertResponse{InsertedID: id, Collection: mongostore.JobsCollection})
}

// CreateCompany is the POST /companies endpoint: persists one company record.
func (h *Handler) CreateCompany(c *gin.Context) {
	var rec domain.CompanyRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid company record: " + err.Error()})
		return
	}

	id, err := h.companies.InsertCompany(c.Request.Context(), &rec)
	if err != nil {
		status, payload := mapStoreError(err)
		c.JSON(status, payload)
		return
	}

	c.JSON(http.StatusCreated, insertResponse{InsertedID: id, Collection: mongostore.CompaniesCollection})
}

// StoreHealth is the GET /health/store endpoint.
func (h *Handler) StoreHealth(c *gin.Context) {
	report, err := h.health.Check(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, storeHealthResponse{
			Connected: false,
			Message:   "connection failed: " + err.Error(),
		})
		return
	}

	resp := storeHealthResponse{
		Connected:   true,
		Database:    report.Database,
		Collections: make(map[string]collectionStatus, len(report.Collections)),
	}

	parts := []string{"connected | database: " + report.Database}
	for name, status := range report.Collections {
		resp.Collections[name] = collectionStatus{Exists: status.Exists, Documents: status.Documents}
		if status.Exists {
			parts = append(parts, fmt.Sprintf("%s (%d documents)", name, status.Documents))
		} else {
			parts = append(parts, name+" (will be created)")
		}
	}
	resp.Message = strings.Join(parts, " | ")

	c.JSON(http.StatusOK, resp)
}

func mapExtractError(err error, requestID string) (int, errorResponse) {
	var validationErr *extract.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity, errorResponse{Error: "validation_error", Message: validationErr.Reason, RequestID: requestID}
	}

	if errors.Is(err, extract.ErrNoUsableData) {
		return http.StatusUnprocessableEntity, errorResponse{Error: "no_usable_data", Message: err.Error(), RequestID: requestID}
	}

	var parseErr *extract.ParseError
	if errors.As(err, &parseErr) {
		return http.StatusBadGateway, errorResponse{Error: "parse_error", Message: parseErr.Error(), RequestID: requestID}
	}

	var backendErr *extract.BackendError
	if errors.As(err, &backendErr) {
		return http.StatusBadGateway, errorResponse{Error: "backend_error", Message: backendErr.Error(), RequestID: requestID}
	}

	return http.StatusInternalServerError, errorResponse{Error: "internal_error", Message: err.Error(), RequestID: requestID}
}

func mapStoreError(err error) (int, errorResponse) {
	var validationErr *mongostore.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity, errorResponse{Error: "validation_error", Message: validationErr.Error()}
	}

	var storeErr *mongostore.StoreError
	if errors.As(err, &storeErr) {
		return http.StatusServiceUnavailable, errorResponse{Error: "store_error", Message: storeErr.Error()}
	}

	return http.StatusInternalServerError, errorResponse{Error: "internal_error", Message: err.Error()}
}
