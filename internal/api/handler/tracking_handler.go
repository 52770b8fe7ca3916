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

const dateLayout = "2006-01-02"

type TrackingHandler struct {
	service service.TrackingService
}

func NewTrackingHandler(service service.TrackingService) *TrackingHandler {
	return &TrackingHandler{service: service}
}

// Upsert handles PUT /v1/clients/{clientId}/tracking/{date}
// @Summary Log a tracking day
// @Description Log weight and intake for a calendar day. Re-logging a date overwrites that day only; derived EWMA, store-change and 7-day adaptive TDEE fields are recomputed for the series.
// @Tags tracking
// @Accept json
// @Produce json
// @Param clientId path string true "Client UUID" format(uuid)
// @Param date path string true "Calendar day (YYYY-MM-DD)" example(2024-03-15)
// @Param request body domain.UpsertTrackingRequest true "Daily weight and intake"
// @Success 200 {object} domain.TrackingEntryResponse "Entry with recomputed derived fields"
// @Failure 400 {object} problem.Problem "Invalid body, client ID or date"
// @Failure 404 {object} problem.Problem "Client not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /clients/{clientId}/tracking/{date} [put]
func (h *TrackingHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(chi.URLParam(r, "clientId"))
	if err != nil {
		problem.BadRequest("Invalid client ID format").Write(w)
		return
	}

	date, err := time.Parse(dateLayout, chi.URLParam(r, "date"))
	if err != nil {
		problem.BadRequest("Invalid date, expected YYYY-MM-DD").Write(w)
		return
	}

	var req domain.UpsertTrackingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, err := h.service.Upsert(r.Context(), clientID, date, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Client not found").Write(w)
			return
		}
		problem.InternalError("Failed to save tracking entry").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// List handles GET /v1/clients/{clientId}/tracking
// @Summary List tracking entries
// @Description Fetch paginated tracking history, newest first. Filter by date range.
// @Tags tracking
// @Produce json
// @Param clientId path string true "Client UUID" format(uuid)
// @Param from query string false "Start of date range (YYYY-MM-DD)" example(2024-03-01)
// @Param to query string false "End of date range (YYYY-MM-DD)" example(2024-03-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.TrackingListResponse "Tracking entries with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "Client not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /clients/{clientId}/tracking [get]
func (h *TrackingHandler) List(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(chi.URLParam(r, "clientId"))
	if err != nil {
		problem.BadRequest("Invalid client ID format").Write(w)
		return
	}

	filter, fieldErrors := parseTrackingFilter(r)
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
		problem.InternalError("Failed to list tracking entries").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseTrackingFilter(r *http.Request) (domain.TrackingFilter, []problem.FieldError) {
	var filter domain.TrackingFilter
	var fieldErrors []problem.FieldError

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid YYYY-MM-DD date",
			})
		} else {
			filter.From = &from
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(dateLayout, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid YYYY-MM-DD date",
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
