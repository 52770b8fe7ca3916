package service

import (
	"math"

	"github.com/nutricoach/coach-api/internal/domain"
)

// Pure physiological estimators. No I/O, no state; deterministic for a
// given input. Optional inputs that are absent skip their contribution.

// sensitivityBands maps the numeric insulin sensitivity score to both the
// sensitivity category and the derived metabolic health category. A single
// ordered table keeps the two thresholdings from drifting apart.
var sensitivityBands = []struct {
	minScore  int
	category  domain.SensitivityCategory
	metabolic domain.MetabolicHealth
}{
	{80, domain.SensitivityHigh, domain.MetabolicExcellent},
	{60, domain.SensitivityModerate, domain.MetabolicGood},
	{40, domain.SensitivityLow, domain.MetabolicFair},
	{0, domain.SensitivityVeryLow, domain.MetabolicPoor},
}

func classifySensitivity(score int) (domain.SensitivityCategory, domain.MetabolicHealth) {
	for _, band := range sensitivityBands {
		if score >= band.minScore {
			return band.category, band.metabolic
		}
	}
	last := sensitivityBands[len(sensitivityBands)-1]
	return last.category, last.metabolic
}

func bmrHarrisBenedict(a domain.Anthropometrics) float64 {
	w, h, age := a.WeightKg, a.HeightCm, float64(a.Age)
	if a.Gender == domain.GenderMale {
		return 88.362 + 13.397*w + 4.799*h - 5.677*age
	}
	return 447.593 + 9.247*w + 3.098*h - 4.330*age
}

func bmrMifflinStJeor(a domain.Anthropometrics) float64 {
	w, h, age := a.WeightKg, a.HeightCm, float64(a.Age)
	if a.Gender == domain.GenderMale {
		return 10*w + 6.25*h - 5*age + 5
	}
	return 10*w + 6.25*h - 5*age - 161
}

// leanBodyMass returns the lean body mass in kg, preferring an explicit
// value over one derived from body fat percentage. ok is false when
// neither source is available.
func leanBodyMass(a domain.Anthropometrics) (float64, bool) {
	if a.LeanBodyMassKg != nil {
		return *a.LeanBodyMassKg, true
	}
	if a.BodyFatPct != nil {
		return a.WeightKg * (1 - *a.BodyFatPct/100), true
	}
	return 0, false
}

func bmrKatchMcArdle(lbm float64) float64 {
	return 370 + 21.6*lbm
}

// dynamicEnergyExpenditure is the mean of every BMR estimator computable
// from the snapshot, rounded to the nearest kcal. Harris-Benedict and
// Mifflin-St Jeor are always computable; Katch-McArdle joins when lean
// body mass is known or derivable.
func dynamicEnergyExpenditure(a domain.Anthropometrics) (dee int, formulas int) {
	sum := bmrHarrisBenedict(a) + bmrMifflinStJeor(a)
	formulas = 2
	if lbm, ok := leanBodyMass(a); ok {
		sum += bmrKatchMcArdle(lbm)
		formulas++
	}
	return int(math.Round(sum / float64(formulas))), formulas
}

// neatMultipliers scale DEE into non-exercise activity expenditure.
var neatMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  0.15,
	domain.ActivityLight:      0.20,
	domain.ActivityModerate:   0.30,
	domain.ActivityActive:     0.40,
	domain.ActivityVeryActive: 0.50,
}

func nonExerciseActivity(dee int, level domain.ActivityLevel) int {
	return int(math.Round(float64(dee) * neatMultipliers[level]))
}

// exerciseActivity converts weekly training minutes to a daily kcal figure
// at an assumed 5 kcal per minute.
func exerciseActivity(minutesPerWeek int) int {
	return int(math.Round(float64(minutesPerWeek) * 5.0 / 7.0))
}

const (
	highProteinThreshold = 2.2 // g/kg
	lowProteinThreshold  = 1.6 // g/kg
)

func classifyDiet(proteinG int, weightKg float64) domain.DietType {
	perKg := float64(proteinG) / weightKg
	switch {
	case perKg >= highProteinThreshold:
		return domain.DietHighProtein
	case perKg < lowProteinThreshold:
		return domain.DietLowProtein
	default:
		return domain.DietBalanced
	}
}

// proteinTEFCoefficients by diet type; carbs and fat are flat.
var proteinTEFCoefficients = map[domain.DietType]float64{
	domain.DietHighProtein: 0.25,
	domain.DietBalanced:    0.20,
	domain.DietLowProtein:  0.15,
}

const (
	carbTEFCoefficient = 0.05
	fatTEFCoefficient  = 0.02

	kcalPerGramProtein = 4.0
	kcalPerGramCarb    = 4.0
	kcalPerGramFat     = 9.0
)

// thermicEffectOfFood estimates digestion cost from macro grams, applying
// per-macro coefficients to each macro's kcal contribution.
func thermicEffectOfFood(macros domain.MacroSplit, dietType domain.DietType) int {
	tef := float64(macros.ProteinG)*kcalPerGramProtein*proteinTEFCoefficients[dietType] +
		float64(macros.CarbsG)*kcalPerGramCarb*carbTEFCoefficient +
		float64(macros.FatG)*kcalPerGramFat*fatTEFCoefficient
	return int(math.Round(tef))
}

// insulinSensitivityScore starts at 100 and subtracts a fixed penalty for
// every biomarker past its threshold. Absent biomarkers skip their penalty
// so partial blood work degrades the score's resolution, never the
// calculation. The result is clamped at zero.
func insulinSensitivityScore(b domain.Biomarkers, a domain.Anthropometrics) int {
	score := 100

	if b.GGT != nil {
		switch {
		case *b.GGT > 60:
			score -= 20
		case *b.GGT > 40:
			score -= 10
		}
	}
	if b.Triglycerides != nil {
		switch {
		case *b.Triglycerides > 200:
			score -= 25
		case *b.Triglycerides > 150:
			score -= 15
		}
	}
	if b.FastingGlucose != nil {
		switch {
		case *b.FastingGlucose > 126:
			score -= 30
		case *b.FastingGlucose > 100:
			score -= 20
		}
	}
	if b.HbA1c != nil {
		switch {
		case *b.HbA1c > 6.5:
			score -= 30
		case *b.HbA1c > 5.7:
			score -= 15
		}
	}
	if a.WaistCm != nil {
		waistLimit := 102.0
		if a.Gender == domain.GenderFemale {
			waistLimit = 88.0
		}
		if *a.WaistCm > waistLimit {
			score -= 15
		}
	}
	if a.BodyFatPct != nil {
		fatLimit := 25.0
		if a.Gender == domain.GenderFemale {
			fatLimit = 32.0
		}
		if *a.BodyFatPct > fatLimit {
			score -= 10
		}
	}

	if score < 0 {
		score = 0
	}
	return score
}

// musclePotentialScore is a heuristic built from the 2D:4D digit ratio and
// wrist-to-height frame size. Missing inputs contribute nothing.
func musclePotentialScore(a domain.Anthropometrics) int {
	score := 50

	if a.DigitRatio != nil {
		switch {
		case *a.DigitRatio < 0.95:
			score += 20
		case *a.DigitRatio < 1.0:
			score += 10
		case *a.DigitRatio > 1.05:
			score -= 10
		}
	}

	if a.WristCm != nil && a.HeightCm > 0 {
		frame := *a.WristCm / a.HeightCm
		if a.Gender == domain.GenderMale {
			switch {
			case frame > 0.11:
				score += 20
			case frame > 0.10:
				score += 10
			default:
				score -= 10
			}
		} else {
			switch {
			case frame > 0.10:
				score += 20
			case frame > 0.09:
				score += 10
			default:
				score -= 10
			}
		}
	}

	return score
}

func classifyPotential(score int) domain.PotentialCategory {
	switch {
	case score >= 70:
		return domain.PotentialHigh
	case score >= 50:
		return domain.PotentialModerate
	default:
		return domain.PotentialLow
	}
}
