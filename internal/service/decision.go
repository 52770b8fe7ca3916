package service

import (
	"github.com/nutricoach/coach-api/internal/domain"
)

// speedDecision is the outcome of the deficit/surplus decision matrix.
type speedDecision struct {
	speed         domain.DeficitSpeed
	adjustmentPct float64
	dietBreak     bool
	reasons       domain.Reasons
}

const (
	slowDeficitPct     = -12.5
	moderateDeficitPct = -17.5
	fastDeficitPct     = -22.5
	muscleGainPct      = 10.0
)

// decideSpeed selects how aggressively calories move toward the goal.
// Maintenance and muscle gain are fixed; fat loss accumulates a signed
// score from five behavioral and metabolic factors, evaluated in a fixed
// order so that the reasoning trace is reproducible.
func decideSpeed(p domain.Psychology, health domain.MetabolicHealth, goal domain.Goal) speedDecision {
	switch goal {
	case domain.GoalMaintain:
		return speedDecision{
			speed:         domain.SpeedModerate,
			adjustmentPct: 0,
			reasons: domain.Reasons{
				domain.NewReason(domain.ReasonGoalMaintain),
				domain.NewReason(domain.ReasonSpeedSelected, "speed", string(domain.SpeedModerate), "pct", 0.0),
			},
		}
	case domain.GoalMuscleGain:
		return speedDecision{
			speed:         domain.SpeedModerate,
			adjustmentPct: muscleGainPct,
			reasons: domain.Reasons{
				domain.NewReason(domain.ReasonGoalMuscleGain),
				domain.NewReason(domain.ReasonSpeedSelected, "speed", string(domain.SpeedModerate), "pct", muscleGainPct),
			},
		}
	}

	score := 0
	var reasons domain.Reasons

	if p.FoodRelationship <= 4 {
		score -= 2
		reasons = append(reasons, domain.NewReason(domain.ReasonFoodRelationshipLow, "score", p.FoodRelationship))
	} else if p.FoodRelationship >= 8 {
		score++
		reasons = append(reasons, domain.NewReason(domain.ReasonFoodRelationshipStrong, "score", p.FoodRelationship))
	}

	if p.Stress == domain.StressHigh || p.Stress == domain.StressExtreme {
		score -= 2
		reasons = append(reasons, domain.NewReason(domain.ReasonStressElevated, "level", string(p.Stress)))
	}

	if p.DietHistoryCycles > 5 {
		score -= 2
		reasons = append(reasons, domain.NewReason(domain.ReasonDietHistoryComplex, "cycles", p.DietHistoryCycles))
	}

	switch p.Motivation {
	case domain.MotivationExtreme:
		score++
		reasons = append(reasons, domain.NewReason(domain.ReasonMotivationExtreme))
	case domain.MotivationExploring:
		score--
		reasons = append(reasons, domain.NewReason(domain.ReasonMotivationExploring))
	}

	switch health {
	case domain.MetabolicPoor:
		score -= 2
		reasons = append(reasons, domain.NewReason(domain.ReasonMetabolicPoor))
	case domain.MetabolicExcellent:
		score++
		reasons = append(reasons, domain.NewReason(domain.ReasonMetabolicExcellent))
	}

	decision := speedDecision{}
	switch {
	case score <= -3:
		decision.speed = domain.SpeedSlow
		decision.adjustmentPct = slowDeficitPct
		decision.dietBreak = true
	case score >= 2:
		decision.speed = domain.SpeedFast
		decision.adjustmentPct = fastDeficitPct
	default:
		decision.speed = domain.SpeedModerate
		decision.adjustmentPct = moderateDeficitPct
	}

	reasons = append(reasons, domain.NewReason(domain.ReasonSpeedSelected,
		"speed", string(decision.speed), "pct", decision.adjustmentPct))
	decision.reasons = reasons
	return decision
}
