package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrplatform/freelancer-api/internal/auth"
	"github.com/hrplatform/freelancer-api/internal/constants"
	"github.com/hrplatform/freelancer-api/internal/db"
)

// APIKeyHandler handles API key administration
type APIKeyHandler struct {
	queries db.Querier
}

// NewAPIKeyHandler creates a new APIKeyHandler instance
func NewAPIKeyHandler(queries db.Querier) *APIKeyHandler {
	return &APIKeyHandler{queries: queries}
}

// CreateAPIKeyRequest names the key and its privileges.
type CreateAPIKeyRequest struct {
	Name        string `json:"name" binding:"required"`
	Role        string `json:"role" binding:"required,oneof=admin finance staff"`
	AccessLevel string `json:"access_level" binding:"required,oneof=read write admin"`
}

// APIKeyResponse returns the key metadata. The plaintext key appears only
// in the creation response and is never stored.
type APIKeyResponse struct {
	ID          string `json:"id"`
	Object      string `json:"object"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	AccessLevel string `json:"access_level"`
	Key         string `json:"key,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}

// CreateAPIKey godoc
// @Summary Create an API key
// @Description Issue a new API key; the plaintext value is returned once and only its hash is stored
// @Tags api-keys
// @Accept json
// @Produce json
// @Param request body CreateAPIKeyRequest true "Key details"
// @Success 201 {object} APIKeyResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api-keys [post]
func (h *APIKeyHandler) CreateAPIKey(c *gin.Context) {
	var req CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	plaintext, err := generateKey()
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to generate key", err)
		return
	}

	record, err := h.queries.CreateAPIKey(c.Request.Context(), db.CreateAPIKeyParams{
		Name:        req.Name,
		KeyHash:     auth.HashKey(plaintext),
		Role:        req.Role,
		AccessLevel: req.AccessLevel,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusCreated, APIKeyResponse{
		ID:          record.ID.String(),
		Object:      "api_key",
		Name:        record.Name,
		Role:        record.Role,
		AccessLevel: record.AccessLevel,
		Key:         plaintext,
		CreatedAt:   record.CreatedAt.Time.Unix(),
	})
}

func generateKey() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return constants.APIKeyPrefix + hex.EncodeToString(buf), nil
}
