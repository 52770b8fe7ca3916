package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nutricoach/coach-api/internal/domain"
	"github.com/nutricoach/coach-api/internal/llm"
	"github.com/nutricoach/coach-api/internal/service"
	"github.com/nutricoach/coach-api/pkg/problem"
)

type InsightsHandler struct {
	service service.InsightsService
}

func NewInsightsHandler(service service.InsightsService) *InsightsHandler {
	return &InsightsHandler{service: service}
}

// Generate handles GET /v1/clients/{clientId}/insights
// @Summary Generate coaching commentary
// @Description Generate LLM commentary on the client's latest calculation and tracking trend. Requires at least one calculation snapshot and a configured LLM.
// @Tags insights
// @Produce json
// @Param clientId path string true "Client UUID" format(uuid)
// @Success 200 {object} domain.CommentaryResponse "Commentary"
// @Failure 400 {object} problem.Problem "Invalid client ID"
// @Failure 404 {object} problem.Problem "Client or calculation not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 503 {object} problem.Problem "LLM not configured"
// @Router /clients/{clientId}/insights [get]
func (h *InsightsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(chi.URLParam(r, "clientId"))
	if err != nil {
		problem.BadRequest("Invalid client ID format").Write(w)
		return
	}

	response, err := h.service.Generate(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Client or calculation not found").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.ServiceUnavailable("Commentary service is not configured").Write(w)
			return
		}
		problem.InternalError("Failed to generate commentary").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
