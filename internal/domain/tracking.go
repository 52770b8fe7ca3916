package domain

import (
	"time"

	"github.com/google/uuid"
)

// TrackingEntry is one day of logged weight and intake for a client.
// Entries are keyed by (client, date); re-logging a date overwrites that
// day only. The derived fields are recomputed by the tracking service on
// every upsert and stored alongside the raw values.
type TrackingEntry struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClientID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tracking_client_date" json:"client_id"`

	// Calendar day of the measurement, stored at UTC midnight
	EntryDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_tracking_client_date" json:"entry_date"`
	// Morning weight in kg
	WeightKg float64 `gorm:"not null" json:"weight_kg"`
	// Calories consumed that day
	Calories float64 `gorm:"not null" json:"calories"`

	// Derived: exponentially smoothed weight (alpha 0.3)
	EWMAWeightKg float64 `json:"ewma_weight_kg"`
	// Derived: day-over-day weight change in kg (0 for the first entry)
	StoreChangeKg float64 `json:"store_change_kg"`
	// Derived: 7-day adaptive TDEE estimate, 0 when not yet computable
	AdaptiveTDEE float64 `json:"adaptive_tdee"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Client Client `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"-"`
}

func (TrackingEntry) TableName() string {
	return "tracking_entries"
}

// UpsertTrackingRequest is the request body for logging a day.
// @Description Daily weight and intake log; upserts by date.
type UpsertTrackingRequest struct {
	// Morning weight in kg
	WeightKg float64 `json:"weight_kg" validate:"required,gt=0" example:"82.4"`
	// Calories consumed
	Calories float64 `json:"calories" validate:"required,gt=0" example:"2150"`
}

// TrackingEntryResponse is the response body for tracking endpoints.
type TrackingEntryResponse struct {
	ID            uuid.UUID `json:"id"`
	ClientID      uuid.UUID `json:"client_id"`
	EntryDate     string    `json:"entry_date" example:"2024-03-15"`
	WeightKg      float64   `json:"weight_kg"`
	Calories      float64   `json:"calories"`
	EWMAWeightKg  float64   `json:"ewma_weight_kg"`
	StoreChangeKg float64   `json:"store_change_kg"`
	AdaptiveTDEE  float64   `json:"adaptive_tdee"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (e *TrackingEntry) ToResponse() TrackingEntryResponse {
	return TrackingEntryResponse{
		ID:            e.ID,
		ClientID:      e.ClientID,
		EntryDate:     e.EntryDate.Format("2006-01-02"),
		WeightKg:      e.WeightKg,
		Calories:      e.Calories,
		EWMAWeightKg:  e.EWMAWeightKg,
		StoreChangeKg: e.StoreChangeKg,
		AdaptiveTDEE:  e.AdaptiveTDEE,
		UpdatedAt:     e.UpdatedAt,
	}
}

// TrackingListResponse is the response body for listing tracking entries.
type TrackingListResponse struct {
	Data       []TrackingEntryResponse `json:"data"`
	Pagination PaginationResponse      `json:"pagination"`
}

// TrackingFilter contains filter parameters for listing tracking entries.
type TrackingFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}

// ProjectionPoint is one day of the historical or projected series.
// Bounds are zero for historical points.
type ProjectionPoint struct {
	Date          string  `json:"date" example:"2024-03-15"`
	WeightKg      float64 `json:"weight_kg"`
	EWMAWeightKg  float64 `json:"ewma_weight_kg"`
	WeightUpperKg float64 `json:"weight_upper_kg,omitempty"`
	WeightLowerKg float64 `json:"weight_lower_kg,omitempty"`
	TDEE          float64 `json:"tdee"`
	TDEEUpper     float64 `json:"tdee_upper,omitempty"`
	TDEELower     float64 `json:"tdee_lower,omitempty"`
}

// WeekdayPattern reports detected cyclical weight bias on specific weekdays.
type WeekdayPattern struct {
	Detected       bool    `json:"detected"`
	MondayBiasKg   float64 `json:"monday_bias_kg"`
	SaturdayBiasKg float64 `json:"saturday_bias_kg"`
}

// ProjectionResult is the output of the trend and projection simulator.
// When fewer than the minimum number of tracking entries exist,
// SufficientData is false and Projected is empty; this is an expected state
// for new clients, not an error.
// @Description Historical and forward-projected weight/TDEE series.
type ProjectionResult struct {
	SufficientData bool              `json:"sufficient_data"`
	TargetCalories float64           `json:"target_calories"`
	Historical     []ProjectionPoint `json:"historical"`
	Projected      []ProjectionPoint `json:"projected,omitempty"`
	WeekdayPattern WeekdayPattern    `json:"weekday_pattern"`
}
