package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/hrplatform/freelancer-api/internal/helpers"
	"github.com/hrplatform/freelancer-api/internal/types"
)

// RateHandler handles exchange rate operations
type RateHandler struct {
	common *CommonServices
}

// NewRateHandler creates a new RateHandler instance
func NewRateHandler(common *CommonServices) *RateHandler {
	return &RateHandler{common: common}
}

// GetRate godoc
// @Summary Get exchange rate
// @Description Resolve the rate for a currency pair on a date, falling back to the most recent prior rate
// @Tags rates
// @Accept json
// @Produce json
// @Param from query string true "Source currency (ISO 4217)"
// @Param to query string true "Target currency (ISO 4217)"
// @Param date query string false "Rate date (2006-01-02, defaults to today)"
// @Success 200 {object} types.RateResult
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /rates [get]
func (h *RateHandler) GetRate(c *gin.Context) {
	from := helpers.NormalizeCurrency(c.Query("from"))
	to := helpers.NormalizeCurrency(c.Query("to"))
	if from == "" || to == "" {
		sendError(c, http.StatusBadRequest, "Both from and to currencies are required", nil)
		return
	}

	date := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid date, expected 2006-01-02", err)
			return
		}
		date = parsed
	}

	result, err := h.common.rates.GetRate(c.Request.Context(), from, to, date)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, result)
}

// ConvertAmount godoc
// @Summary Convert an amount
// @Description Convert an amount between currencies using the stored rate for a date
// @Tags rates
// @Accept json
// @Produce json
// @Param from query string true "Source currency (ISO 4217)"
// @Param to query string true "Target currency (ISO 4217)"
// @Param amount query string true "Amount to convert"
// @Param date query string false "Rate date (2006-01-02, defaults to today)"
// @Success 200 {object} types.ConversionResult
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /rates/convert [get]
func (h *RateHandler) ConvertAmount(c *gin.Context) {
	from := helpers.NormalizeCurrency(c.Query("from"))
	to := helpers.NormalizeCurrency(c.Query("to"))
	if from == "" || to == "" {
		sendError(c, http.StatusBadRequest, "Both from and to currencies are required", nil)
		return
	}

	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid amount", err)
		return
	}

	date := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, parseErr := time.Parse("2006-01-02", raw)
		if parseErr != nil {
			sendError(c, http.StatusBadRequest, "Invalid date, expected 2006-01-02", parseErr)
			return
		}
		date = parsed
	}

	result, err := h.common.rates.Convert(c.Request.Context(), amount, from, to, date)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, result)
}

// RefreshRates godoc
// @Summary Refresh exchange rates
// @Description Fetch the latest rates for a base currency from the configured provider
// @Tags rates
// @Accept json
// @Produce json
// @Param base query string false "Base currency (defaults to EUR)"
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /rates/refresh [post]
func (h *RateHandler) RefreshRates(c *gin.Context) {
	base := helpers.NormalizeCurrency(c.Query("base"))
	if base == "" {
		base = "EUR"
	}

	stored, err := h.common.rates.RefreshLatest(c.Request.Context(), base)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, gin.H{
		"base":   base,
		"stored": stored,
	})
}

// UpsertRate godoc
// @Summary Load a rate manually
// @Description Insert or update one exchange rate record
// @Tags rates
// @Accept json
// @Produce json
// @Param request body types.UpsertRateRequest true "Rate details"
// @Success 200 {object} ExchangeRateResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /rates [put]
func (h *RateHandler) UpsertRate(c *gin.Context) {
	var req types.UpsertRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rate, err := h.common.rates.UpsertManual(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toExchangeRateResponse(*rate))
}

// ListLatestRates godoc
// @Summary List latest rates
// @Description List the most recent stored rate for every pair under a base currency
// @Tags rates
// @Accept json
// @Produce json
// @Param base query string false "Base currency (defaults to EUR)"
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /rates/latest [get]
func (h *RateHandler) ListLatestRates(c *gin.Context) {
	base := helpers.NormalizeCurrency(c.Query("base"))
	if base == "" {
		base = "EUR"
	}

	rates, err := h.common.rates.ListLatest(c.Request.Context(), base)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	responses := make([]ExchangeRateResponse, 0, len(rates))
	for _, rate := range rates {
		responses = append(responses, toExchangeRateResponse(rate))
	}

	sendList(c, responses, int64(len(responses)))
}
