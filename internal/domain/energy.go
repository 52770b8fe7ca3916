package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLevel describes non-exercise daily activity (NEAT).
// @Description NEAT activity level, from sedentary to very_active.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Goal is the client's current body-composition goal.
// @Description Coaching goal: fat_loss, maintain or muscle_gain.
type Goal string

const (
	GoalFatLoss    Goal = "fat_loss"
	GoalMaintain   Goal = "maintain"
	GoalMuscleGain Goal = "muscle_gain"
)

// StressLevel is the self-reported stress level.
type StressLevel string

const (
	StressLow      StressLevel = "low"
	StressModerate StressLevel = "moderate"
	StressHigh     StressLevel = "high"
	StressExtreme  StressLevel = "extreme"
)

// MotivationLevel is the self-reported motivation level.
type MotivationLevel string

const (
	MotivationExploring MotivationLevel = "exploring"
	MotivationModerate  MotivationLevel = "moderate"
	MotivationHigh      MotivationLevel = "high"
	MotivationExtreme   MotivationLevel = "extreme"
)

// SensitivityCategory classifies the insulin sensitivity score.
type SensitivityCategory string

const (
	SensitivityHigh     SensitivityCategory = "high"
	SensitivityModerate SensitivityCategory = "moderate"
	SensitivityLow      SensitivityCategory = "low"
	SensitivityVeryLow  SensitivityCategory = "very_low"
)

// MetabolicHealth classifies overall metabolic health, derived from the
// same numeric insulin sensitivity score as SensitivityCategory.
type MetabolicHealth string

const (
	MetabolicExcellent MetabolicHealth = "excellent"
	MetabolicGood      MetabolicHealth = "good"
	MetabolicFair      MetabolicHealth = "fair"
	MetabolicPoor      MetabolicHealth = "poor"
)

// PotentialCategory classifies the muscle potential score.
type PotentialCategory string

const (
	PotentialHigh     PotentialCategory = "high"
	PotentialModerate PotentialCategory = "moderate"
	PotentialLow      PotentialCategory = "low"
)

// DeficitSpeed is how aggressively calories are adjusted toward the goal.
type DeficitSpeed string

const (
	SpeedSlow     DeficitSpeed = "slow"
	SpeedModerate DeficitSpeed = "moderate"
	SpeedFast     DeficitSpeed = "fast"
)

// DietType classifies a macro split by protein density (g/kg bodyweight).
type DietType string

const (
	DietHighProtein DietType = "high_protein"
	DietBalanced    DietType = "balanced"
	DietLowProtein  DietType = "low_protein"
)

// Anthropometrics is the body-measurement snapshot a calculation runs on.
// Weight, height, age and gender are mandatory; everything else is optional
// and skipped by the estimators when absent.
type Anthropometrics struct {
	// Body weight in kilograms
	WeightKg float64 `json:"weight_kg" validate:"required,gt=0" example:"75"`
	// Height in centimeters
	HeightCm float64 `json:"height_cm" validate:"required,gt=0" example:"175"`
	// Age in years
	Age int `json:"age" validate:"required,gt=0" example:"30"`
	// Gender used for formula selection
	Gender Gender `json:"gender" validate:"required,oneof=male female" enums:"male,female"`
	// Lean body mass in kg, enables the Katch-McArdle estimator
	LeanBodyMassKg *float64 `json:"lean_body_mass_kg,omitempty" validate:"omitempty,gt=0"`
	// Body fat percentage, alternative route to lean body mass
	BodyFatPct *float64 `json:"body_fat_pct,omitempty" validate:"omitempty,gt=0,lt=100"`
	// Waist circumference in cm
	WaistCm *float64 `json:"waist_cm,omitempty" validate:"omitempty,gt=0"`
	// Hip circumference in cm
	HipCm *float64 `json:"hip_cm,omitempty" validate:"omitempty,gt=0"`
	// Neck circumference in cm
	NeckCm *float64 `json:"neck_cm,omitempty" validate:"omitempty,gt=0"`
	// Wrist circumference in cm, frame-size input to muscle potential
	WristCm *float64 `json:"wrist_cm,omitempty" validate:"omitempty,gt=0"`
	// 2D:4D digit ratio, heuristic input to muscle potential
	DigitRatio *float64 `json:"digit_ratio,omitempty" validate:"omitempty,gt=0.5,lt=1.5"`
}

// Biomarkers is the optional blood-work snapshot. Absent values degrade the
// insulin sensitivity score instead of blocking the calculation.
type Biomarkers struct {
	// Gamma-glutamyl transferase in U/L
	GGT *float64 `json:"ggt,omitempty" validate:"omitempty,gt=0"`
	// Triglycerides in mg/dL
	Triglycerides *float64 `json:"triglycerides,omitempty" validate:"omitempty,gt=0"`
	// Fasting glucose in mg/dL
	FastingGlucose *float64 `json:"fasting_glucose,omitempty" validate:"omitempty,gt=0"`
	// HbA1c in percent
	HbA1c *float64 `json:"hba1c,omitempty" validate:"omitempty,gt=0"`
}

// Psychology captures the behavioral inputs to the deficit speed decision.
type Psychology struct {
	// Food relationship score, 0 (troubled) to 10 (healthy)
	FoodRelationship int `json:"food_relationship" validate:"min=0,max=10" example:"7"`
	// Self-reported stress level
	Stress StressLevel `json:"stress" validate:"required,oneof=low moderate high extreme" enums:"low,moderate,high,extreme"`
	// Count of prior yo-yo diet cycles
	DietHistoryCycles int `json:"diet_history_cycles" validate:"min=0" example:"2"`
	// Weekly time available for training, minutes
	TimeAvailableMin int `json:"time_available_min" validate:"min=0" example:"240"`
	// Self-reported motivation level
	Motivation MotivationLevel `json:"motivation" validate:"required,oneof=exploring moderate high extreme" enums:"exploring,moderate,high,extreme"`
}

// Activity captures the energy-expenditure side of the client's week.
type Activity struct {
	// NEAT level outside of training
	NEATLevel ActivityLevel `json:"neat_level" validate:"required,oneof=sedentary light moderate active very_active" enums:"sedentary,light,moderate,active,very_active"`
	// Structured exercise minutes per week
	ExerciseMinPerWeek int `json:"exercise_min_per_week" validate:"min=0" example:"180"`
	// Current goal
	Goal Goal `json:"goal" validate:"required,oneof=fat_loss maintain muscle_gain" enums:"fat_loss,maintain,muscle_gain"`
}

// CalculationInput is the full flat record the expert system consumes.
// @Description Input record for an energy/macro calculation.
type CalculationInput struct {
	Anthropometrics Anthropometrics `json:"anthropometrics" validate:"required"`
	Biomarkers      Biomarkers      `json:"biomarkers"`
	Psychology      Psychology      `json:"psychology" validate:"required"`
	Activity        Activity        `json:"activity" validate:"required"`
}

// MacroSplit is a protein/carb/fat allocation in grams.
type MacroSplit struct {
	ProteinG int `json:"protein_g" example:"180"`
	CarbsG   int `json:"carbs_g" example:"210"`
	FatG     int `json:"fat_g" example:"64"`
}

// EnergyBreakdown is the per-component energy expenditure estimate, each
// value in kcal and rounded at its own pipeline stage.
type EnergyBreakdown struct {
	DEE          int `json:"dee" example:"1731"`
	NEAT         int `json:"neat" example:"519"`
	EA           int `json:"ea" example:"129"`
	TEF          int `json:"tef" example:"265"`
	Adaptation   int `json:"adaptation" example:"0"`
	AdaptiveTDEE int `json:"adaptive_tdee" example:"2644"`
}

// EnergyCalculationResult is the immutable output of one expert system run.
// @Description Calorie and macro recommendation with reasoning trace.
type EnergyCalculationResult struct {
	// Final recommended daily calories
	RecommendedCalories int `json:"recommended_calories" example:"2181"`
	// Final macro allocation sized against recommended calories
	Macros MacroSplit `json:"macros"`
	// Per-component energy breakdown
	Energy EnergyBreakdown `json:"energy"`
	// Diet classification of the final macro split
	DietType DietType `json:"diet_type" example:"high_protein"`
	// Insulin sensitivity score (0-100) and category
	InsulinSensitivityScore    int                 `json:"insulin_sensitivity_score" example:"85"`
	InsulinSensitivityCategory SensitivityCategory `json:"insulin_sensitivity_category" example:"high"`
	// Muscle potential score and category
	MusclePotentialScore    int               `json:"muscle_potential_score" example:"60"`
	MusclePotentialCategory PotentialCategory `json:"muscle_potential_category" example:"moderate"`
	// Metabolic health category derived from the sensitivity score
	MetabolicHealth MetabolicHealth `json:"metabolic_health" example:"excellent"`
	// Deficit/surplus speed and applied percentage adjustment
	DeficitSpeed  DeficitSpeed `json:"deficit_speed" example:"moderate"`
	AdjustmentPct float64      `json:"adjustment_pct" example:"-17.5"`
	// True when periodic diet breaks are recommended
	DietBreakRecommended bool `json:"diet_break_recommended"`
	// Ordered reasoning trace, one entry per pipeline decision
	Reasons Reasons `json:"reasons"`
}

// ReasoningText renders the trace as human-readable lines in order.
func (r *EnergyCalculationResult) ReasoningText() []string {
	lines := make([]string, len(r.Reasons))
	for i, reason := range r.Reasons {
		lines[i] = reason.String()
	}
	return lines
}

// EnergyCalculation is a persisted calculation snapshot. Snapshots are
// append-only; a recalculation inserts a new row so that older
// recommendations stay comparable.
type EnergyCalculation struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClientID uuid.UUID `gorm:"type:uuid;not null;index:idx_calculations_client_date" json:"client_id"`

	CalculatedAt time.Time `gorm:"not null;index:idx_calculations_client_date,sort:desc" json:"calculated_at"`

	Input  CalculationInput        `gorm:"serializer:json;type:jsonb;not null" json:"input"`
	Result EnergyCalculationResult `gorm:"serializer:json;type:jsonb;not null" json:"result"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	Client Client `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"-"`
}

func (EnergyCalculation) TableName() string {
	return "energy_calculations"
}

// CalculationResponse is the response body for calculation endpoints.
type CalculationResponse struct {
	ID           uuid.UUID               `json:"id"`
	ClientID     uuid.UUID               `json:"client_id"`
	CalculatedAt time.Time               `json:"calculated_at"`
	Input        CalculationInput        `json:"input"`
	Result       EnergyCalculationResult `json:"result"`
	// Human-readable reasoning lines rendered from the structured trace
	Reasoning []string  `json:"reasoning"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *EnergyCalculation) ToResponse() CalculationResponse {
	return CalculationResponse{
		ID:           c.ID,
		ClientID:     c.ClientID,
		CalculatedAt: c.CalculatedAt,
		Input:        c.Input,
		Result:       c.Result,
		Reasoning:    c.Result.ReasoningText(),
		CreatedAt:    c.CreatedAt,
	}
}

// CalculationListResponse is the response body for listing snapshots.
type CalculationListResponse struct {
	Data       []CalculationResponse `json:"data"`
	Pagination PaginationResponse    `json:"pagination"`
}

// PaginationResponse contains cursor pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// CalculationFilter contains filter parameters for listing snapshots.
type CalculationFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
