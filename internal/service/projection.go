package service

import (
	"math"
	"sort"
	"time"

	"github.com/nutricoach/coach-api/internal/domain"
)

const (
	// MinProjectionEntries is the minimum tracking history for a projection.
	MinProjectionEntries = 7

	// ProjectionHorizonDays is the fixed forward simulation length.
	ProjectionHorizonDays = 90

	// historicalEWMAAlpha smooths the logged weight series.
	historicalEWMAAlpha = 0.3
	// projectionEWMAAlpha smooths the simulated series; deliberately
	// slower than the historical constant.
	projectionEWMAAlpha = 0.1

	// kcalPerKg converts an energy imbalance to stored mass.
	kcalPerKg = 7700.0

	// weekdayBiasThresholdKg is the minimum average day-over-day delta for
	// a weekday pattern to count as detected.
	weekdayBiasThresholdKg = 0.3

	// fallbackTDEE stands in for entries without a computed adaptive TDEE.
	fallbackTDEE = 2000.0

	// uncertaintyBand is the ±5% bound applied to projected values.
	uncertaintyBand = 0.05
)

// ComputeProjection forward-simulates weight and TDEE for a fixed 90-day
// horizon from a client's tracking history and a target calorie intake.
// Pure: it never mutates its input and must be re-run when the series or
// target changes. Histories shorter than MinProjectionEntries return
// SufficientData=false with no projected series.
func ComputeProjection(history []domain.TrackingEntry, targetCalories float64) *domain.ProjectionResult {
	entries := make([]domain.TrackingEntry, len(history))
	copy(entries, history)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].EntryDate.Before(entries[j].EntryDate)
	})

	result := &domain.ProjectionResult{
		TargetCalories: targetCalories,
		Historical:     historicalSeries(entries),
	}

	if len(entries) < MinProjectionEntries {
		return result
	}
	result.SufficientData = true
	result.WeekdayPattern = detectWeekdayPattern(entries)

	rollingTDEE := rollingAdaptiveTDEE(entries)

	// Deficit depth selects the monthly base adaptation rate.
	deficitPct := 0.0
	if rollingTDEE > 0 {
		deficitPct = (rollingTDEE - targetCalories) / rollingTDEE * 100
	}
	monthlyRate := 1.0
	switch {
	case deficitPct > 25:
		monthlyRate = 2.5
	case deficitPct > 15:
		monthlyRate = 1.5
	}
	dailyRate := monthlyRate / 100 / 30

	last := entries[len(entries)-1]
	weight := last.WeightKg
	ewma := result.Historical[len(result.Historical)-1].EWMAWeightKg
	tdee := rollingTDEE

	result.Projected = make([]domain.ProjectionPoint, 0, ProjectionHorizonDays)
	for day := 1; day <= ProjectionHorizonDays; day++ {
		// Adaptation strengthens linearly over the horizon.
		multiplier := 1 + (float64(day)/float64(ProjectionHorizonDays))*0.5
		tdee *= 1 - dailyRate*multiplier

		weight -= (tdee - targetCalories) / kcalPerKg

		date := last.EntryDate.AddDate(0, 0, day)
		if result.WeekdayPattern.Detected {
			switch date.Weekday() {
			case time.Monday:
				weight += result.WeekdayPattern.MondayBiasKg
			case time.Saturday:
				weight += result.WeekdayPattern.SaturdayBiasKg
			}
		}

		ewma = ewma*(1-projectionEWMAAlpha) + weight*projectionEWMAAlpha

		result.Projected = append(result.Projected, domain.ProjectionPoint{
			Date:          date.Format("2006-01-02"),
			WeightKg:      weight,
			EWMAWeightKg:  ewma,
			WeightUpperKg: weight * (1 + uncertaintyBand),
			WeightLowerKg: weight * (1 - uncertaintyBand),
			TDEE:          tdee,
			TDEEUpper:     tdee * (1 + uncertaintyBand),
			TDEELower:     tdee * (1 - uncertaintyBand),
		})
	}

	return result
}

// historicalSeries recomputes the EWMA chain chronologically from the raw
// weights, seeded by the first observation.
func historicalSeries(entries []domain.TrackingEntry) []domain.ProjectionPoint {
	points := make([]domain.ProjectionPoint, 0, len(entries))
	var ewma float64
	for i, e := range entries {
		if i == 0 {
			ewma = e.WeightKg
		} else {
			ewma = ewma*(1-historicalEWMAAlpha) + e.WeightKg*historicalEWMAAlpha
		}
		points = append(points, domain.ProjectionPoint{
			Date:         e.EntryDate.Format("2006-01-02"),
			WeightKg:     e.WeightKg,
			EWMAWeightKg: ewma,
			TDEE:         e.AdaptiveTDEE,
		})
	}
	return points
}

// detectWeekdayPattern averages day-over-day weight deltas that land on
// Mondays and Saturdays. Either average exceeding the threshold marks the
// pattern as detected; detected averages are replayed onto matching
// weekdays during the forward simulation.
func detectWeekdayPattern(entries []domain.TrackingEntry) domain.WeekdayPattern {
	var mondaySum, saturdaySum float64
	var mondayCount, saturdayCount int

	for i := 1; i < len(entries); i++ {
		delta := entries[i].WeightKg - entries[i-1].WeightKg
		switch entries[i].EntryDate.Weekday() {
		case time.Monday:
			mondaySum += delta
			mondayCount++
		case time.Saturday:
			saturdaySum += delta
			saturdayCount++
		}
	}

	pattern := domain.WeekdayPattern{}
	if mondayCount > 0 {
		pattern.MondayBiasKg = mondaySum / float64(mondayCount)
	}
	if saturdayCount > 0 {
		pattern.SaturdayBiasKg = saturdaySum / float64(saturdayCount)
	}
	pattern.Detected = math.Abs(pattern.MondayBiasKg) > weekdayBiasThresholdKg ||
		math.Abs(pattern.SaturdayBiasKg) > weekdayBiasThresholdKg
	return pattern
}

// rollingAdaptiveTDEE averages the stored 7-day adaptive TDEE over the last
// up to seven entries, substituting a 2000 kcal fallback for entries whose
// estimate has not been computed yet.
func rollingAdaptiveTDEE(entries []domain.TrackingEntry) float64 {
	start := len(entries) - 7
	if start < 0 {
		start = 0
	}
	window := entries[start:]

	sum := 0.0
	for _, e := range window {
		tdee := e.AdaptiveTDEE
		if tdee <= 0 {
			tdee = fallbackTDEE
		}
		sum += tdee
	}
	return sum / float64(len(window))
}
