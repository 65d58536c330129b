package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthHandler reports process liveness and database readiness.
type HealthHandler struct {
	pool *pgxpool.Pool
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(pool *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{pool: pool}
}

// HealthResponse represents the health check payload.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health godoc
// @Summary      Health check
// @Description  Checks if the server is running
// @Tags         health
// @Accept       json
// @Produce      json
// @Success      200  {object}  HealthResponse   "Returns health status"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
	})
}

// Ready godoc
// @Summary      Readiness check
// @Description  Checks that the database connection is usable
// @Tags         health
// @Accept       json
// @Produce      json
// @Success      200  {object}  HealthResponse   "Returns readiness status"
// @Failure      503  {object}  ErrorResponse
// @Router       /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.pool != nil {
		if err := h.pool.Ping(c.Request.Context()); err != nil {
			sendError(c, http.StatusServiceUnavailable, "Database unreachable", err)
			return
		}
	}
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ready",
	})
}
