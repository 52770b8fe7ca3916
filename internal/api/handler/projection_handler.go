package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"
	"github.com/nutricoach/coach-api/internal/domain"
	"github.com/nutricoach/coach-api/internal/service"
	"github.com/nutricoach/coach-api/pkg/problem"
)

type ProjectionHandler struct {
	service service.ProjectionService
}

func NewProjectionHandler(service service.ProjectionService) *ProjectionHandler {
	return &ProjectionHandler{service: service}
}

// Get handles GET /v1/clients/{clientId}/projection
// @Summary Project weight and TDEE
// @Description Forward-simulate weight and TDEE for 90 days toward a target intake, from the client's tracking history. Histories shorter than 7 entries return sufficient_data=false with no projected series.
// @Tags projections
// @Produce json
// @Param clientId path string true "Client UUID" format(uuid)
// @Param target_calories query number true "Target daily intake in kcal" example(2100)
// @Success 200 {object} domain.ProjectionResult "Historical and projected series"
// @Failure 400 {object} problem.Problem "Invalid client ID or target"
// @Failure 404 {object} problem.Problem "Client not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /clients/{clientId}/projection [get]
func (h *ProjectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	clientID, target, prob := parseProjectionParams(r)
	if prob != nil {
		prob.Write(w)
		return
	}

	result, err := h.service.Project(r.Context(), clientID, target)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Client not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute projection").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Chart handles GET /v1/clients/{clientId}/projection/chart
// @Summary Render projection chart
// @Description Render the historical and projected weight series (with the ±5% uncertainty band) as a standalone HTML line chart.
// @Tags projections
// @Produce html
// @Param clientId path string true "Client UUID" format(uuid)
// @Param target_calories query number true "Target daily intake in kcal" example(2100)
// @Success 200 {string} string "HTML chart"
// @Failure 400 {object} problem.Problem "Invalid client ID or target"
// @Failure 404 {object} problem.Problem "Client not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /clients/{clientId}/projection/chart [get]
func (h *ProjectionHandler) Chart(w http.ResponseWriter, r *http.Request) {
	clientID, target, prob := parseProjectionParams(r)
	if prob != nil {
		prob.Write(w)
		return
	}

	result, err := h.service.Project(r.Context(), clientID, target)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Client not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute projection").Write(w)
		return
	}

	line := buildProjectionChart(result)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := line.Render(w); err != nil {
		problem.InternalError("Failed to render chart").Write(w)
	}
}

func parseProjectionParams(r *http.Request) (uuid.UUID, float64, *problem.Problem) {
	clientID, err := uuid.Parse(chi.URLParam(r, "clientId"))
	if err != nil {
		return uuid.Nil, 0, problem.BadRequest("Invalid client ID format")
	}

	targetStr := r.URL.Query().Get("target_calories")
	target, err := strconv.ParseFloat(targetStr, 64)
	if err != nil || target <= 0 {
		return uuid.Nil, 0, problem.BadRequest("target_calories must be a positive number")
	}

	return clientID, target, nil
}

// buildProjectionChart turns a projection result into a line chart with the
// historical weight, smoothed trend, projected weight and its bounds.
func buildProjectionChart(result *domain.ProjectionResult) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Weight projection",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "kg",
		}),
	)

	var xAxis []string
	var weight, ewma, projected, upper, lower []opts.LineData

	for _, p := range result.Historical {
		xAxis = append(xAxis, p.Date)
		weight = append(weight, opts.LineData{Value: p.WeightKg})
		ewma = append(ewma, opts.LineData{Value: p.EWMAWeightKg})
		projected = append(projected, opts.LineData{Value: nil})
		upper = append(upper, opts.LineData{Value: nil})
		lower = append(lower, opts.LineData{Value: nil})
	}
	for _, p := range result.Projected {
		xAxis = append(xAxis, p.Date)
		weight = append(weight, opts.LineData{Value: nil})
		ewma = append(ewma, opts.LineData{Value: nil})
		projected = append(projected, opts.LineData{Value: p.WeightKg})
		upper = append(upper, opts.LineData{Value: p.WeightUpperKg})
		lower = append(lower, opts.LineData{Value: p.WeightLowerKg})
	}

	line.SetXAxis(xAxis).
		AddSeries("Weight", weight).
		AddSeries("Trend", ewma).
		AddSeries("Projected", projected).
		AddSeries("Upper bound", upper).
		AddSeries("Lower bound", lower).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{
				Smooth:     opts.Bool(true),
				ShowSymbol: opts.Bool(false),
			}),
		)

	return line
}
