package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/hrplatform/freelancer-api/internal/logger"
	"github.com/hrplatform/freelancer-api/internal/services"
	"github.com/hrplatform/freelancer-api/internal/taxerr"
)

// CommonServices holds the service layer shared across handlers.
type CommonServices struct {
	freelancers *services.FreelancerService
	contracts   *services.ContractService
	payments    *services.PaymentService
	tax         *services.TaxService
	rates       *services.ExchangeRateService
	calculator  *services.PaymentCalculator
}

// NewCommonServices wires the service layer into the handler factory.
func NewCommonServices(
	freelancers *services.FreelancerService,
	contracts *services.ContractService,
	payments *services.PaymentService,
	tax *services.TaxService,
	rates *services.ExchangeRateService,
	calculator *services.PaymentCalculator,
) *CommonServices {
	return &CommonServices{
		freelancers: freelancers,
		contracts:   contracts,
		payments:    payments,
		tax:         tax,
		rates:       rates,
		calculator:  calculator,
	}
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// sendError logs the error and sends a JSON error response.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// handleServiceError maps domain errors onto HTTP statuses. Validation
// failures are 400, an empty payment or unresolvable tax rule is 422,
// concurrent writes are 409, unavailable upstreams are 503, and lookup
// misses are 404.
func handleServiceError(c *gin.Context, err error) {
	var empty *taxerr.EmptyPaymentError
	switch {
	case errors.Is(err, taxerr.ErrNotFound), errors.Is(err, pgx.ErrNoRows):
		sendError(c, http.StatusNotFound, "Record not found", err)
	case errors.As(err, &empty):
		sendError(c, http.StatusUnprocessableEntity, err.Error(), err)
	case taxerr.IsRuleResolution(err):
		sendError(c, http.StatusUnprocessableEntity, err.Error(), err)
	case taxerr.IsValidation(err):
		sendError(c, http.StatusBadRequest, err.Error(), err)
	case taxerr.IsConflict(err):
		sendError(c, http.StatusConflict, err.Error(), err)
	case taxerr.IsUnavailable(err):
		sendError(c, http.StatusServiceUnavailable, err.Error(), err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// sendSuccess sends a JSON payload with the given status.
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendList sends a list payload with its total.
func sendList(c *gin.Context, items interface{}, total int64) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   items,
		"total":  total,
	})
}

// parseUUIDParam parses a path parameter as a UUID, responding 400 on
// failure. The bool reports whether the caller should continue.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid "+name, err)
		return uuid.UUID{}, false
	}
	return id, true
}
