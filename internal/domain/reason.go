package domain

import "fmt"

// ReasonCode identifies one decision made by the expert system pipeline.
// Codes plus parameters are the persisted contract; the rendered text is a
// presentation concern (see Reason.String) so that traces can be localized
// and tested without string matching.
type ReasonCode string

const (
	ReasonDEE                    ReasonCode = "dee_estimated"
	ReasonNEAT                   ReasonCode = "neat_estimated"
	ReasonEA                     ReasonCode = "exercise_activity_estimated"
	ReasonInsulinSensitivity     ReasonCode = "insulin_sensitivity_scored"
	ReasonMusclePotential        ReasonCode = "muscle_potential_scored"
	ReasonGoalMaintain           ReasonCode = "goal_maintain"
	ReasonGoalMuscleGain         ReasonCode = "goal_muscle_gain"
	ReasonFoodRelationshipLow    ReasonCode = "food_relationship_low"
	ReasonFoodRelationshipStrong ReasonCode = "food_relationship_strong"
	ReasonStressElevated         ReasonCode = "stress_elevated"
	ReasonDietHistoryComplex     ReasonCode = "diet_history_complex"
	ReasonMotivationExtreme      ReasonCode = "motivation_extreme"
	ReasonMotivationExploring    ReasonCode = "motivation_exploring"
	ReasonMetabolicPoor          ReasonCode = "metabolic_health_poor"
	ReasonMetabolicExcellent     ReasonCode = "metabolic_health_excellent"
	ReasonSpeedSelected          ReasonCode = "deficit_speed_selected"
	ReasonTEF                    ReasonCode = "tef_estimated"
	ReasonAdaptation             ReasonCode = "metabolic_adaptation_applied"
	ReasonAdaptiveTDEE           ReasonCode = "adaptive_tdee_computed"
	ReasonTDEEFloored            ReasonCode = "adaptive_tdee_floored"
	ReasonFinalTarget            ReasonCode = "final_target_set"
	ReasonCarbsClamped           ReasonCode = "carbs_clamped"
	ReasonDietBreak              ReasonCode = "diet_break_recommended"
)

// Reason is one structured entry of the reasoning trace.
type Reason struct {
	Code   ReasonCode     `json:"code"`
	Params map[string]any `json:"params,omitempty"`
}

// Reasons is an ordered reasoning trace. Order is significant and must be
// stable for identical inputs.
type Reasons []Reason

// NewReason builds a reason from alternating key/value parameter pairs.
func NewReason(code ReasonCode, kv ...any) Reason {
	r := Reason{Code: code}
	if len(kv) > 0 {
		r.Params = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			key, ok := kv[i].(string)
			if !ok {
				continue
			}
			r.Params[key] = kv[i+1]
		}
	}
	return r
}

func (r Reason) num(key string) float64 {
	switch v := r.Params[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

func (r Reason) str(key string) string {
	if v, ok := r.Params[key].(string); ok {
		return v
	}
	return fmt.Sprintf("%v", r.Params[key])
}

// String renders the default English text for a reason.
func (r Reason) String() string {
	switch r.Code {
	case ReasonDEE:
		return fmt.Sprintf("Dynamic energy expenditure estimated at %.0f kcal (mean of %.0f BMR formulas)", r.num("kcal"), r.num("formulas"))
	case ReasonNEAT:
		return fmt.Sprintf("Non-exercise activity adds %.0f kcal (%s activity level)", r.num("kcal"), r.str("level"))
	case ReasonEA:
		return fmt.Sprintf("Exercise adds %.0f kcal/day (%.0f min/week)", r.num("kcal"), r.num("minutes"))
	case ReasonInsulinSensitivity:
		return fmt.Sprintf("Insulin sensitivity score %.0f/100 (%s)", r.num("score"), r.str("category"))
	case ReasonMusclePotential:
		return fmt.Sprintf("Muscle potential score %.0f (%s)", r.num("score"), r.str("category"))
	case ReasonGoalMaintain:
		return "Goal is maintenance: no calorie adjustment applied"
	case ReasonGoalMuscleGain:
		return "Goal is muscle gain: moderate 10% surplus applied"
	case ReasonFoodRelationshipLow:
		return fmt.Sprintf("Troubled food relationship (%.0f/10) slows the deficit", r.num("score"))
	case ReasonFoodRelationshipStrong:
		return fmt.Sprintf("Strong food relationship (%.0f/10) supports a faster deficit", r.num("score"))
	case ReasonStressElevated:
		return fmt.Sprintf("Elevated stress (%s) slows the deficit", r.str("level"))
	case ReasonDietHistoryComplex:
		return fmt.Sprintf("History of %.0f diet cycles slows the deficit", r.num("cycles"))
	case ReasonMotivationExtreme:
		return "Extreme motivation supports a faster deficit"
	case ReasonMotivationExploring:
		return "Exploring motivation slows the deficit"
	case ReasonMetabolicPoor:
		return "Poor metabolic health slows the deficit"
	case ReasonMetabolicExcellent:
		return "Excellent metabolic health supports a faster deficit"
	case ReasonSpeedSelected:
		return fmt.Sprintf("Selected %s speed: %.1f%% adjustment", r.str("speed"), r.num("pct"))
	case ReasonTEF:
		return fmt.Sprintf("Thermic effect of food adds %.0f kcal (%s diet)", r.num("kcal"), r.str("diet"))
	case ReasonAdaptation:
		return fmt.Sprintf("Metabolic adaptation of %.0f kcal applied (%.0f prior diet cycles)", r.num("kcal"), r.num("cycles"))
	case ReasonAdaptiveTDEE:
		return fmt.Sprintf("Adaptive TDEE estimated at %.0f kcal", r.num("kcal"))
	case ReasonTDEEFloored:
		return fmt.Sprintf("Adaptive TDEE raised to the %.0f kcal floor (110%% of DEE)", r.num("kcal"))
	case ReasonFinalTarget:
		return fmt.Sprintf("Recommended intake %.0f kcal after %.1f%% adjustment", r.num("kcal"), r.num("pct"))
	case ReasonCarbsClamped:
		return "Carbohydrates clamped to zero: protein and fat targets exceed the calorie budget"
	case ReasonDietBreak:
		return "Periodic diet breaks recommended for this deficit speed"
	default:
		return string(r.Code)
	}
}
