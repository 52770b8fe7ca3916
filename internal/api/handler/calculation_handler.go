package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nutricoach/coach-api/internal/api/validation"
	"github.com/nutricoach/coach-api/internal/domain"
	"github.com/nutricoach/coach-api/internal/service"
	"github.com/nutricoach/coach-api/pkg/problem"
)

type CalculationHandler struct {
	service service.EnergyService
}

func NewCalculationHandler(service service.EnergyService) *CalculationHandler {
	return &CalculationHandler{service: service}
}

// Create handles POST /v1/clients/{clientId}/calculations
// @Summary Run energy calculation
// @Description Run the energy expert system on the posted input record and persist the result as a new immutable snapshot. Prior snapshots are never mutated.
// @Tags calculations
// @Accept json
// @Produce json
// @Param clientId path string true "Client UUID" format(uuid)
// @Param request body domain.CalculationInput true "Calculation input record"
// @Success 201 {object} domain.CalculationResponse "Calculation snapshot"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "Client not found"
// @Failure 422 {object} problem.Problem "Missing or invalid input fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /clients/{clientId}/calculations [post]
func (h *CalculationHandler) Create(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(chi.URLParam(r, "clientId"))
	if err != nil {
		problem.BadRequest("Invalid client ID format").Write(w)
		return
	}

	var input domain.CalculationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(input); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	calc, err := h.service.Calculate(r.Context(), clientID, &input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Client not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrMissingRequiredInput) {
			problem.ValidationError(err.Error(), nil).Write(w)
			return
		}
		problem.InternalError("Failed to run calculation").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(calc.ToResponse())
}

// List handles GET /v1/clients/{clientId}/calculations
// @Summary List calculation snapshots
// @Description Fetch paginated calculation history, newest first, for comparing recommendations over time.
// @Tags calculations
// @Produce json
// @Param clientId path string true "Client UUID" format(uuid)
// @Param from query string false "Start of date range (RFC3339)" format(date-time)
// @Param to query string false "End of date range (RFC3339)" format(date-time)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.CalculationListResponse "Calculations with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "Client not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /clients/{clientId}/calculations [get]
func (h *CalculationHandler) List(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(chi.URLParam(r, "clientId"))
	if err != nil {
		problem.BadRequest("Invalid client ID format").Write(w)
		return
	}

	filter, fieldErrors := parseCalculationFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), clientID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Client not found").Write(w)
			return
		}
		problem.InternalError("Failed to list calculations").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseCalculationFilter(r *http.Request) (domain.CalculationFilter, []problem.FieldError) {
	var filter domain.CalculationFilter
	var fieldErrors []problem.FieldError

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
