package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/nutricoach/coach-api/internal/domain"
)

const (
	// adaptiveTDEEFloorRatio protects against degenerate low TDEE outputs.
	adaptiveTDEEFloorRatio = 1.10

	// yoYo dieters past this many cycles get a flat adaptation discount.
	adaptationCycleThreshold = 3
	adaptationDEEFraction    = 0.05
)

// proteinPerKg by goal, grams of protein per kg bodyweight.
var proteinPerKg = map[domain.Goal]float64{
	domain.GoalFatLoss:    2.4,
	domain.GoalMuscleGain: 2.2,
	domain.GoalMaintain:   2.0,
}

// computeMacros sizes a macro split against a calorie budget. Fat takes 25%
// of calories, 35% when insulin sensitivity is impaired; protein is fixed
// per kg bodyweight; carbs take the remainder. A negative remainder is
// clamped to zero and flagged rather than returned as a negative gram value.
func computeMacros(calories float64, weightKg float64, goal domain.Goal, sensitivity domain.SensitivityCategory) (domain.MacroSplit, bool) {
	fatFraction := 0.25
	if sensitivity == domain.SensitivityLow || sensitivity == domain.SensitivityVeryLow {
		fatFraction = 0.35
	}

	proteinG := weightKg * proteinPerKg[goal]
	fatG := calories * fatFraction / kcalPerGramFat

	remainder := calories - proteinG*kcalPerGramProtein - fatG*kcalPerGramFat
	clamped := remainder < 0
	if clamped {
		remainder = 0
	}
	carbsG := remainder / kcalPerGramCarb

	return domain.MacroSplit{
		ProteinG: int(math.Round(proteinG)),
		CarbsG:   int(math.Round(carbsG)),
		FatG:     int(math.Round(fatG)),
	}, clamped
}

// validateRequired checks the mandatory anthropometric fields. Missing
// mandatory input is the one caller-visible failure of the engine; it is
// never silently defaulted.
func validateRequired(a domain.Anthropometrics) error {
	var missing []string
	if a.WeightKg <= 0 {
		missing = append(missing, "weight_kg")
	}
	if a.HeightCm <= 0 {
		missing = append(missing, "height_cm")
	}
	if a.Age <= 0 {
		missing = append(missing, "age")
	}
	if a.Gender != domain.GenderMale && a.Gender != domain.GenderFemale {
		missing = append(missing, "gender")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrMissingRequiredInput, strings.Join(missing, ", "))
	}
	return nil
}

// ComputeOptimalCalories runs the full expert system pipeline on one input
// record and returns an immutable recommendation with an ordered reasoning
// trace. The computation is synchronous, deterministic and side-effect
// free; identical input yields identical output including trace order.
//
// Intermediate DEE/NEAT/EA/TEF/adaptation values are each rounded at their
// own pipeline stage, matching the historical behavior of the recommendation
// engine this service replaces.
func ComputeOptimalCalories(in domain.CalculationInput) (*domain.EnergyCalculationResult, error) {
	if err := validateRequired(in.Anthropometrics); err != nil {
		return nil, err
	}

	anthro := in.Anthropometrics
	var reasons domain.Reasons

	// 1-3: component expenditures
	dee, formulaCount := dynamicEnergyExpenditure(anthro)
	reasons = append(reasons, domain.NewReason(domain.ReasonDEE, "kcal", dee, "formulas", formulaCount))

	neat := nonExerciseActivity(dee, in.Activity.NEATLevel)
	reasons = append(reasons, domain.NewReason(domain.ReasonNEAT, "kcal", neat, "level", string(in.Activity.NEATLevel)))

	ea := exerciseActivity(in.Activity.ExerciseMinPerWeek)
	reasons = append(reasons, domain.NewReason(domain.ReasonEA, "kcal", ea, "minutes", in.Activity.ExerciseMinPerWeek))

	// 4-5: heuristic scores and derived metabolic health
	sensScore := insulinSensitivityScore(in.Biomarkers, anthro)
	sensCategory, metabolicHealth := classifySensitivity(sensScore)
	reasons = append(reasons, domain.NewReason(domain.ReasonInsulinSensitivity,
		"score", sensScore, "category", string(sensCategory)))

	muscleScore := musclePotentialScore(anthro)
	muscleCategory := classifyPotential(muscleScore)
	reasons = append(reasons, domain.NewReason(domain.ReasonMusclePotential,
		"score", muscleScore, "category", string(muscleCategory)))

	// 6: deficit/surplus speed
	decision := decideSpeed(in.Psychology, metabolicHealth, in.Activity.Goal)
	reasons = append(reasons, decision.reasons...)

	// 7-9: provisional target sizes the macros used for the TEF estimate
	baseExpenditure := float64(dee + neat + ea)
	provisionalTarget := baseExpenditure * (1 + decision.adjustmentPct/100)

	provisionalMacros, _ := computeMacros(provisionalTarget, anthro.WeightKg, in.Activity.Goal, sensCategory)
	dietType := classifyDiet(provisionalMacros.ProteinG, anthro.WeightKg)

	tef := thermicEffectOfFood(provisionalMacros, dietType)
	reasons = append(reasons, domain.NewReason(domain.ReasonTEF, "kcal", tef, "diet", string(dietType)))

	// 10: yo-yo dieting history discounts the budget
	adaptation := 0
	if in.Psychology.DietHistoryCycles > adaptationCycleThreshold {
		adaptation = int(math.Round(adaptationDEEFraction * float64(dee)))
		reasons = append(reasons, domain.NewReason(domain.ReasonAdaptation,
			"kcal", adaptation, "cycles", in.Psychology.DietHistoryCycles))
	}

	// 11: adaptive TDEE with a hard floor at 110% of DEE
	adaptiveTDEE := dee + neat + ea + tef - adaptation
	floor := int(math.Round(adaptiveTDEEFloorRatio * float64(dee)))
	if adaptiveTDEE < floor {
		adaptiveTDEE = floor
		reasons = append(reasons, domain.NewReason(domain.ReasonTDEEFloored, "kcal", floor))
	} else {
		reasons = append(reasons, domain.NewReason(domain.ReasonAdaptiveTDEE, "kcal", adaptiveTDEE))
	}

	// 12: final target and final macros; only these are returned
	finalCalories := int(math.Round(float64(adaptiveTDEE) * (1 + decision.adjustmentPct/100)))
	reasons = append(reasons, domain.NewReason(domain.ReasonFinalTarget,
		"kcal", finalCalories, "pct", decision.adjustmentPct))

	finalMacros, clamped := computeMacros(float64(finalCalories), anthro.WeightKg, in.Activity.Goal, sensCategory)
	if clamped {
		reasons = append(reasons, domain.NewReason(domain.ReasonCarbsClamped))
	}
	finalDietType := classifyDiet(finalMacros.ProteinG, anthro.WeightKg)

	if decision.dietBreak {
		reasons = append(reasons, domain.NewReason(domain.ReasonDietBreak))
	}

	return &domain.EnergyCalculationResult{
		RecommendedCalories: finalCalories,
		Macros:              finalMacros,
		Energy: domain.EnergyBreakdown{
			DEE:          dee,
			NEAT:         neat,
			EA:           ea,
			TEF:          tef,
			Adaptation:   adaptation,
			AdaptiveTDEE: adaptiveTDEE,
		},
		DietType:                   finalDietType,
		InsulinSensitivityScore:    sensScore,
		InsulinSensitivityCategory: sensCategory,
		MusclePotentialScore:       muscleScore,
		MusclePotentialCategory:    muscleCategory,
		MetabolicHealth:            metabolicHealth,
		DeficitSpeed:               decision.speed,
		AdjustmentPct:              decision.adjustmentPct,
		DietBreakRecommended:       decision.dietBreak,
		Reasons:                    reasons,
	}, nil
}
