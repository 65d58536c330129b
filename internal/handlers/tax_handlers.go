package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hrplatform/freelancer-api/internal/helpers"
	"github.com/hrplatform/freelancer-api/internal/types"
)

// TaxHandler handles tax classification and configuration operations
type TaxHandler struct {
	common *CommonServices
}

// NewTaxHandler creates a new TaxHandler instance
func NewTaxHandler(common *CommonServices) *TaxHandler {
	return &TaxHandler{common: common}
}

// ClassifyTax godoc
// @Summary Classify a country pairing
// @Description Resolve the VAT treatment and withholding rate for a freelancer/company pairing
// @Tags tax
// @Accept json
// @Produce json
// @Param freelancer_country query string true "Freelancer country (ISO 3166-1 alpha-2)"
// @Param company_country query string true "Company country (ISO 3166-1 alpha-2)"
// @Param vat_registered query bool false "Freelancer holds a VAT registration"
// @Param vat_validated query bool false "Registration confirmed against the registry"
// @Param certificate_on_file query bool false "Residency certificate on file"
// @Param income_category query string false "Income category (defaults to services)"
// @Param as_of query string false "Classification date (2006-01-02, defaults to today)"
// @Success 200 {object} types.TaxClassification
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tax/classification [get]
func (h *TaxHandler) ClassifyTax(c *gin.Context) {
	in := types.ClassificationInput{
		FreelancerCountry: c.Query("freelancer_country"),
		CompanyCountry:    c.Query("company_country"),
		VATRegistered:     c.Query("vat_registered") == "true",
		VATValidated:      c.Query("vat_validated") == "true",
		CertificateOnFile: c.Query("certificate_on_file") == "true",
		IncomeCategory:    c.Query("income_category"),
	}
	if in.FreelancerCountry == "" || in.CompanyCountry == "" {
		sendError(c, http.StatusBadRequest, "Both freelancer_country and company_country are required", nil)
		return
	}
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid as_of, expected 2006-01-02", err)
			return
		}
		in.AsOf = parsed
	}

	classification, err := h.common.tax.Classify(c.Request.Context(), in)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, classification)
}

// GetTaxConfig godoc
// @Summary Get tax configuration
// @Description Get the VAT configuration of one country
// @Tags tax
// @Accept json
// @Produce json
// @Param country path string true "Country code (ISO 3166-1 alpha-2)"
// @Success 200 {object} TaxConfigResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tax/configs/{country} [get]
func (h *TaxHandler) GetTaxConfig(c *gin.Context) {
	config, err := h.common.tax.GetConfig(c.Request.Context(), c.Param("country"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toTaxConfigResponse(*config))
}

// ListTaxConfigs godoc
// @Summary List tax configurations
// @Description List the VAT configurations of all known countries
// @Tags tax
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /tax/configs [get]
func (h *TaxHandler) ListTaxConfigs(c *gin.Context) {
	configs, err := h.common.tax.ListConfigs(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	responses := make([]TaxConfigResponse, 0, len(configs))
	for _, config := range configs {
		responses = append(responses, toTaxConfigResponse(config))
	}

	sendList(c, responses, int64(len(responses)))
}

// UpsertTaxConfig godoc
// @Summary Upsert tax configuration
// @Description Insert or update the VAT configuration of one country
// @Tags tax
// @Accept json
// @Produce json
// @Param request body types.TaxConfigRequest true "Configuration details"
// @Success 200 {object} TaxConfigResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tax/configs [put]
func (h *TaxHandler) UpsertTaxConfig(c *gin.Context) {
	var req types.TaxConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	config, err := h.common.tax.UpsertConfig(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toTaxConfigResponse(*config))
}

// CreateTreaty godoc
// @Summary Register a tax treaty
// @Description Register a withholding treaty between two countries
// @Tags tax
// @Accept json
// @Produce json
// @Param request body types.TreatyRequest true "Treaty details"
// @Success 201 {object} TreatyResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tax/treaties [post]
func (h *TaxHandler) CreateTreaty(c *gin.Context) {
	var req types.TreatyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	treaty, err := h.common.tax.CreateTreaty(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusCreated, toTreatyResponse(*treaty))
}

// ListTreaties godoc
// @Summary List tax treaties
// @Description List registered withholding treaties with pagination
// @Tags tax
// @Accept json
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tax/treaties [get]
func (h *TaxHandler) ListTreaties(c *gin.Context) {
	params, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	treaties, err := h.common.tax.ListTreaties(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	responses := make([]TreatyResponse, 0, len(treaties))
	for _, treaty := range treaties {
		responses = append(responses, toTreatyResponse(treaty))
	}

	sendList(c, responses, int64(len(responses)))
}

// DeactivateTreaty godoc
// @Summary Deactivate a tax treaty
// @Description Mark a treaty record inactive
// @Tags tax
// @Accept json
// @Produce json
// @Param treaty_id path string true "Treaty ID"
// @Success 200 {object} TreatyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tax/treaties/{treaty_id} [delete]
func (h *TaxHandler) DeactivateTreaty(c *gin.Context) {
	id, ok := parseUUIDParam(c, "treaty_id")
	if !ok {
		return
	}

	treaty, err := h.common.tax.DeactivateTreaty(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toTreatyResponse(*treaty))
}
