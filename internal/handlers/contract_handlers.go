package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hrplatform/freelancer-api/internal/helpers"
	"github.com/hrplatform/freelancer-api/internal/types"
)

// ContractHandler handles contract-related operations
type ContractHandler struct {
	common *CommonServices
}

// NewContractHandler creates a new ContractHandler instance
func NewContractHandler(common *CommonServices) *ContractHandler {
	return &ContractHandler{common: common}
}

// CreateContract godoc
// @Summary Create a contract
// @Description Open a draft contract for a freelancer, with milestones when given
// @Tags contracts
// @Accept json
// @Produce json
// @Param request body types.CreateContractRequest true "Contract details"
// @Success 201 {object} ContractResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var req types.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	detail, err := h.common.contracts.Create(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusCreated, toContractResponse(detail.Contract, detail.Milestones))
}

// GetContract godoc
// @Summary Get contract by ID
// @Description Get contract details including milestones
// @Tags contracts
// @Accept json
// @Produce json
// @Param contract_id path string true "Contract ID"
// @Success 200 {object} ContractResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /contracts/{contract_id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	id, ok := parseUUIDParam(c, "contract_id")
	if !ok {
		return
	}

	detail, err := h.common.contracts.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toContractResponse(detail.Contract, detail.Milestones))
}

// ListContracts godoc
// @Summary List contracts
// @Description List contracts with pagination, all contracts of one freelancer, or active contracts ending within a day window
// @Tags contracts
// @Accept json
// @Produce json
// @Param freelancer_id query string false "Filter by freelancer ID"
// @Param expiring_within query int false "Only active contracts ending within this many days"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /contracts [get]
func (h *ContractHandler) ListContracts(c *gin.Context) {
	if raw := c.Query("freelancer_id"); raw != "" {
		freelancerID, err := uuid.Parse(raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid freelancer_id", err)
			return
		}
		contracts, err := h.common.contracts.ListByFreelancer(c.Request.Context(), freelancerID)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		responses := make([]ContractResponse, 0, len(contracts))
		for _, contract := range contracts {
			responses = append(responses, toContractResponse(contract, nil))
		}
		sendList(c, responses, int64(len(responses)))
		return
	}

	if raw := c.Query("expiring_within"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 1 {
			sendError(c, http.StatusBadRequest, "Invalid expiring_within, expected a positive day count", err)
			return
		}
		contracts, err := h.common.contracts.ExpiringWithin(c.Request.Context(), days)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		responses := make([]ContractResponse, 0, len(contracts))
		for _, contract := range contracts {
			responses = append(responses, toContractResponse(contract, nil))
		}
		sendList(c, responses, int64(len(responses)))
		return
	}

	params, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	contracts, total, err := h.common.contracts.List(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	responses := make([]ContractResponse, 0, len(contracts))
	for _, contract := range contracts {
		responses = append(responses, toContractResponse(contract, nil))
	}

	sendList(c, responses, total)
}

// ActivateContract godoc
// @Summary Activate contract
// @Description Move a draft contract to active
// @Tags contracts
// @Accept json
// @Produce json
// @Param contract_id path string true "Contract ID"
// @Success 200 {object} ContractResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /contracts/{contract_id}/activate [post]
func (h *ContractHandler) ActivateContract(c *gin.Context) {
	id, ok := parseUUIDParam(c, "contract_id")
	if !ok {
		return
	}

	contract, err := h.common.contracts.Activate(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toContractResponse(*contract, nil))
}

// TerminateContract godoc
// @Summary Terminate contract
// @Description End an active contract early with a reason
// @Tags contracts
// @Accept json
// @Produce json
// @Param contract_id path string true "Contract ID"
// @Param request body types.TerminateContractRequest true "Termination details"
// @Success 200 {object} ContractResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /contracts/{contract_id}/terminate [post]
func (h *ContractHandler) TerminateContract(c *gin.Context) {
	id, ok := parseUUIDParam(c, "contract_id")
	if !ok {
		return
	}

	var req types.TerminateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	contract, err := h.common.contracts.Terminate(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toContractResponse(*contract, nil))
}

// ExpireContract godoc
// @Summary Expire contract
// @Description Mark an active contract past its end date as expired
// @Tags contracts
// @Accept json
// @Produce json
// @Param contract_id path string true "Contract ID"
// @Success 200 {object} ContractResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /contracts/{contract_id}/expire [post]
func (h *ContractHandler) ExpireContract(c *gin.Context) {
	id, ok := parseUUIDParam(c, "contract_id")
	if !ok {
		return
	}

	contract, err := h.common.contracts.Expire(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toContractResponse(*contract, nil))
}

// RenewContract godoc
// @Summary Renew contract
// @Description Open a successor contract starting the day after the current one ends
// @Tags contracts
// @Accept json
// @Produce json
// @Param contract_id path string true "Contract ID"
// @Param request body types.RenewContractRequest false "Renewal options"
// @Success 201 {object} ContractResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /contracts/{contract_id}/renew [post]
func (h *ContractHandler) RenewContract(c *gin.Context) {
	id, ok := parseUUIDParam(c, "contract_id")
	if !ok {
		return
	}

	var req types.RenewContractRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			sendError(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	successor, err := h.common.contracts.Renew(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusCreated, toContractResponse(*successor, nil))
}

// GetContractSummary godoc
// @Summary Get contract summary
// @Description Aggregate the financial position of one contract
// @Tags contracts
// @Accept json
// @Produce json
// @Param contract_id path string true "Contract ID"
// @Success 200 {object} types.ContractSummary
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /contracts/{contract_id}/summary [get]
func (h *ContractHandler) GetContractSummary(c *gin.Context) {
	id, ok := parseUUIDParam(c, "contract_id")
	if !ok {
		return
	}

	summary, err := h.common.contracts.Summary(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, summary)
}

// UpdateMilestoneStatus godoc
// @Summary Update milestone status
// @Description Move a milestone through its lifecycle
// @Tags contracts
// @Accept json
// @Produce json
// @Param contract_id path string true "Contract ID"
// @Param milestone_id path string true "Milestone ID"
// @Param request body types.MilestoneStatusRequest true "Target status"
// @Success 200 {object} MilestoneResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /contracts/{contract_id}/milestones/{milestone_id} [put]
func (h *ContractHandler) UpdateMilestoneStatus(c *gin.Context) {
	contractID, ok := parseUUIDParam(c, "contract_id")
	if !ok {
		return
	}
	milestoneID, ok := parseUUIDParam(c, "milestone_id")
	if !ok {
		return
	}

	var req types.MilestoneStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	milestone, err := h.common.contracts.UpdateMilestoneStatus(c.Request.Context(), contractID, milestoneID, req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toMilestoneResponse(*milestone))
}
