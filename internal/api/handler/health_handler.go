package handler

import (
	"net/http"

	"github.com/sunny-bhakta/payments-service/internal/api/response"
	"github.com/sunny-bhakta/payments-service/internal/domain"
)

// HealthHandler serves the liveness endpoint. It holds no state and
// reports healthy unconditionally: the service has no downstream
// dependencies to check.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// Health handles GET /health. Documented in spec/openapi.json.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, domain.NewHealthResponse())
}
