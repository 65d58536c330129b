package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrplatform/freelancer-api/internal/helpers"
	"github.com/hrplatform/freelancer-api/internal/types"
)

// FreelancerHandler handles freelancer-related operations
type FreelancerHandler struct {
	common *CommonServices
}

// NewFreelancerHandler creates a new FreelancerHandler instance
func NewFreelancerHandler(common *CommonServices) *FreelancerHandler {
	return &FreelancerHandler{common: common}
}

// CreateFreelancer godoc
// @Summary Register a freelancer
// @Description Register a new freelancer profile with tax and banking details
// @Tags freelancers
// @Accept json
// @Produce json
// @Param request body types.CreateFreelancerRequest true "Freelancer details"
// @Success 201 {object} FreelancerResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /freelancers [post]
func (h *FreelancerHandler) CreateFreelancer(c *gin.Context) {
	var req types.CreateFreelancerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	freelancer, err := h.common.freelancers.Create(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusCreated, toFreelancerResponse(*freelancer))
}

// GetFreelancer godoc
// @Summary Get freelancer by ID
// @Description Get freelancer profile details by freelancer ID
// @Tags freelancers
// @Accept json
// @Produce json
// @Param freelancer_id path string true "Freelancer ID"
// @Success 200 {object} FreelancerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /freelancers/{freelancer_id} [get]
func (h *FreelancerHandler) GetFreelancer(c *gin.Context) {
	id, ok := parseUUIDParam(c, "freelancer_id")
	if !ok {
		return
	}

	freelancer, err := h.common.freelancers.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toFreelancerResponse(*freelancer))
}

// UpdateFreelancer godoc
// @Summary Update freelancer
// @Description Replace the mutable fields of a freelancer profile
// @Tags freelancers
// @Accept json
// @Produce json
// @Param freelancer_id path string true "Freelancer ID"
// @Param request body types.UpdateFreelancerRequest true "Updated freelancer details"
// @Success 200 {object} FreelancerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /freelancers/{freelancer_id} [put]
func (h *FreelancerHandler) UpdateFreelancer(c *gin.Context) {
	id, ok := parseUUIDParam(c, "freelancer_id")
	if !ok {
		return
	}

	var req types.UpdateFreelancerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	freelancer, err := h.common.freelancers.Update(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toFreelancerResponse(*freelancer))
}

// ListFreelancers godoc
// @Summary List freelancers
// @Description List freelancer profiles with pagination
// @Tags freelancers
// @Accept json
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /freelancers [get]
func (h *FreelancerHandler) ListFreelancers(c *gin.Context) {
	params, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	freelancers, total, err := h.common.freelancers.List(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	responses := make([]FreelancerResponse, 0, len(freelancers))
	for _, f := range freelancers {
		responses = append(responses, toFreelancerResponse(f))
	}

	sendList(c, responses, total)
}

// GetFreelancerSummary godoc
// @Summary Get freelancer summary
// @Description Aggregate a freelancer's contract and payment position
// @Tags freelancers
// @Accept json
// @Produce json
// @Param freelancer_id path string true "Freelancer ID"
// @Success 200 {object} types.FreelancerSummary
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /freelancers/{freelancer_id}/summary [get]
func (h *FreelancerHandler) GetFreelancerSummary(c *gin.Context) {
	id, ok := parseUUIDParam(c, "freelancer_id")
	if !ok {
		return
	}

	summary, err := h.common.freelancers.Summary(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, summary)
}

// ValidateFreelancerVAT godoc
// @Summary Validate freelancer VAT number
// @Description Check the freelancer's VAT number against the EU registry
// @Tags freelancers
// @Accept json
// @Produce json
// @Param freelancer_id path string true "Freelancer ID"
// @Success 200 {object} types.VATValidationResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /freelancers/{freelancer_id}/vat-validation [post]
func (h *FreelancerHandler) ValidateFreelancerVAT(c *gin.Context) {
	id, ok := parseUUIDParam(c, "freelancer_id")
	if !ok {
		return
	}

	result, err := h.common.freelancers.ValidateVAT(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, result)
}

// GrantConsent godoc
// @Summary Record a consent decision
// @Description Grant or revoke one data processing consent category
// @Tags freelancers
// @Accept json
// @Produce json
// @Param freelancer_id path string true "Freelancer ID"
// @Param request body types.ConsentRequest true "Consent decision"
// @Success 200 {object} ConsentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /freelancers/{freelancer_id}/consents [post]
func (h *FreelancerHandler) GrantConsent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "freelancer_id")
	if !ok {
		return
	}

	var req types.ConsentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	consent, err := h.common.freelancers.GrantConsent(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toConsentResponse(*consent))
}

// ListConsents godoc
// @Summary List consent records
// @Description List the consent decisions recorded for a freelancer
// @Tags freelancers
// @Accept json
// @Produce json
// @Param freelancer_id path string true "Freelancer ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /freelancers/{freelancer_id}/consents [get]
func (h *FreelancerHandler) ListConsents(c *gin.Context) {
	id, ok := parseUUIDParam(c, "freelancer_id")
	if !ok {
		return
	}

	consents, err := h.common.freelancers.ListConsents(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	responses := make([]ConsentResponse, 0, len(consents))
	for _, consent := range consents {
		responses = append(responses, toConsentResponse(consent))
	}

	sendList(c, responses, int64(len(responses)))
}

// AnonymizeFreelancer godoc
// @Summary Anonymize freelancer
// @Description Strip personal data from a freelancer with no open contracts
// @Tags freelancers
// @Accept json
// @Produce json
// @Param freelancer_id path string true "Freelancer ID"
// @Success 200 {object} FreelancerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /freelancers/{freelancer_id}/anonymize [post]
func (h *FreelancerHandler) AnonymizeFreelancer(c *gin.Context) {
	id, ok := parseUUIDParam(c, "freelancer_id")
	if !ok {
		return
	}

	freelancer, err := h.common.freelancers.Anonymize(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toFreelancerResponse(*freelancer))
}
