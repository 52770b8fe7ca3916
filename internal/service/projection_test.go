package service

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nutricoach/coach-api/internal/domain"
)

// mondayStart is a known Monday used to pin weekday arithmetic.
var mondayStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func makeHistory(start time.Time, weights []float64, calories, tdee float64) []domain.TrackingEntry {
	clientID := uuid.New()
	entries := make([]domain.TrackingEntry, len(weights))
	for i, w := range weights {
		entries[i] = domain.TrackingEntry{
			ClientID:     clientID,
			EntryDate:    start.AddDate(0, 0, i),
			WeightKg:     w,
			Calories:     calories,
			AdaptiveTDEE: tdee,
		}
	}
	return entries
}

func TestComputeProjectionInsufficientData(t *testing.T) {
	history := makeHistory(mondayStart, []float64{80, 79.8, 79.9, 79.7, 79.6, 79.5}, 2200, 2500)

	got := ComputeProjection(history, 2000)
	if got.SufficientData {
		t.Error("SufficientData = true, want false for 6 entries")
	}
	if len(got.Projected) != 0 {
		t.Errorf("Projected has %d points, want 0", len(got.Projected))
	}
	if len(got.Historical) != 6 {
		t.Errorf("Historical has %d points, want 6", len(got.Historical))
	}
}

func TestComputeProjectionHorizon(t *testing.T) {
	history := makeHistory(mondayStart, []float64{80, 79.8, 79.9, 79.7, 79.6, 79.5, 79.4}, 2200, 2500)

	got := ComputeProjection(history, 2000)
	if !got.SufficientData {
		t.Fatal("SufficientData = false, want true for 7 entries")
	}
	if len(got.Projected) != ProjectionHorizonDays {
		t.Fatalf("Projected has %d points, want %d", len(got.Projected), ProjectionHorizonDays)
	}

	// Projected dates continue daily from the last logged entry.
	last := history[len(history)-1].EntryDate
	for i, p := range got.Projected {
		want := last.AddDate(0, 0, i+1).Format("2006-01-02")
		if p.Date != want {
			t.Fatalf("Projected[%d].Date = %s, want %s", i, p.Date, want)
		}
	}
}

func TestComputeProjectionBounds(t *testing.T) {
	history := makeHistory(mondayStart, []float64{92, 91.7, 91.9, 91.5, 91.4, 91.6, 91.2, 91.0}, 2400, 2800)

	got := ComputeProjection(history, 2100)
	for i, p := range got.Projected {
		if p.WeightLowerKg > p.WeightKg || p.WeightKg > p.WeightUpperKg {
			t.Errorf("point %d: weight %f outside [%f, %f]", i, p.WeightKg, p.WeightLowerKg, p.WeightUpperKg)
		}
		if p.TDEELower > p.TDEE || p.TDEE > p.TDEEUpper {
			t.Errorf("point %d: tdee %f outside [%f, %f]", i, p.TDEE, p.TDEELower, p.TDEEUpper)
		}
	}
}

func TestComputeProjectionDoesNotMutateInput(t *testing.T) {
	history := makeHistory(mondayStart, []float64{80, 79.5, 79.8, 79.2, 79.4, 79.1, 79.0}, 2200, 2500)
	// Shuffle the input ordering; the caller's slice must stay as passed.
	history[0], history[3] = history[3], history[0]
	firstDate := history[0].EntryDate

	ComputeProjection(history, 2000)
	if !history[0].EntryDate.Equal(firstDate) {
		t.Error("input slice was reordered")
	}
}

func TestDetectWeekdayPattern(t *testing.T) {
	t.Run("monday rebound detected", func(t *testing.T) {
		// Four weeks of flat weight except a +0.5 kg jump every Monday.
		weights := make([]float64, 28)
		w := 80.0
		for i := range weights {
			if i > 0 && mondayStart.AddDate(0, 0, i).Weekday() == time.Monday {
				w += 0.5
			}
			weights[i] = w
		}
		history := makeHistory(mondayStart, weights, 2200, 2500)

		pattern := detectWeekdayPattern(history)
		if !pattern.Detected {
			t.Fatal("Detected = false, want true")
		}
		if math.Abs(pattern.MondayBiasKg-0.5) > 1e-9 {
			t.Errorf("MondayBiasKg = %f, want 0.5", pattern.MondayBiasKg)
		}
		if pattern.SaturdayBiasKg != 0 {
			t.Errorf("SaturdayBiasKg = %f, want 0", pattern.SaturdayBiasKg)
		}
	})

	t.Run("small bias is ignored", func(t *testing.T) {
		weights := make([]float64, 28)
		w := 80.0
		for i := range weights {
			if i > 0 && mondayStart.AddDate(0, 0, i).Weekday() == time.Monday {
				w += 0.2
			}
			weights[i] = w
		}
		history := makeHistory(mondayStart, weights, 2200, 2500)

		if pattern := detectWeekdayPattern(history); pattern.Detected {
			t.Errorf("Detected = true for 0.2 kg bias, want false (pattern %+v)", pattern)
		}
	})
}

func TestRollingAdaptiveTDEE(t *testing.T) {
	t.Run("averages the trailing window", func(t *testing.T) {
		history := makeHistory(mondayStart, make([]float64, 10), 2200, 0)
		for i := range history {
			history[i].AdaptiveTDEE = float64(2000 + i*100)
		}
		// Last seven entries: 2300..2900, mean 2600.
		if got := rollingAdaptiveTDEE(history); got != 2600 {
			t.Errorf("rollingAdaptiveTDEE() = %f, want 2600", got)
		}
	})

	t.Run("substitutes the fallback for unknown estimates", func(t *testing.T) {
		history := makeHistory(mondayStart, make([]float64, 4), 2200, 0)
		if got := rollingAdaptiveTDEE(history); got != fallbackTDEE {
			t.Errorf("rollingAdaptiveTDEE() = %f, want %f", got, fallbackTDEE)
		}
	})
}

func TestHistoricalSeriesEWMA(t *testing.T) {
	history := makeHistory(mondayStart, []float64{80, 81, 79}, 2200, 2500)

	points := historicalSeries(history)
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}
	// Seeded by the first weight, then 0.3-weighted toward each new value.
	want := []float64{80, 80.3, 79.91}
	for i, p := range points {
		if math.Abs(p.EWMAWeightKg-want[i]) > 1e-9 {
			t.Errorf("point %d EWMA = %f, want %f", i, p.EWMAWeightKg, want[i])
		}
	}
}
