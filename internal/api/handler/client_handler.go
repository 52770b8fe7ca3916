package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nutricoach/coach-api/internal/api/validation"
	"github.com/nutricoach/coach-api/internal/domain"
	"github.com/nutricoach/coach-api/internal/service"
	"github.com/nutricoach/coach-api/pkg/problem"
)

type ClientHandler struct {
	service service.ClientService
}

func NewClientHandler(service service.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// Create handles POST /v1/clients
// @Summary Register client
// @Description Register a new coached client.
// @Tags clients
// @Accept json
// @Produce json
// @Param request body domain.CreateClientRequest true "Client data"
// @Success 201 {object} domain.ClientResponse "Client created"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /clients [post]
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	client, err := h.service.Create(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to create client").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(client.ToResponse())
}

// GetByID handles GET /v1/clients/{clientId}
// @Summary Get client
// @Description Fetch a single client by ID.
// @Tags clients
// @Produce json
// @Param clientId path string true "Client UUID" format(uuid)
// @Success 200 {object} domain.ClientResponse "Client"
// @Failure 400 {object} problem.Problem "Invalid client ID"
// @Failure 404 {object} problem.Problem "Client not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /clients/{clientId} [get]
func (h *ClientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(chi.URLParam(r, "clientId"))
	if err != nil {
		problem.BadRequest("Invalid client ID format").Write(w)
		return
	}

	client, err := h.service.GetByID(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Client not found").Write(w)
			return
		}
		problem.InternalError("Failed to fetch client").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(client.ToResponse())
}
