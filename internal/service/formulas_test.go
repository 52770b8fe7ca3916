package service

import (
	"testing"

	"github.com/nutricoach/coach-api/internal/domain"
)

func f64(v float64) *float64 { return &v }

func maleAnthro() domain.Anthropometrics {
	return domain.Anthropometrics{
		WeightKg: 75,
		HeightCm: 175,
		Age:      30,
		Gender:   domain.GenderMale,
	}
}

func TestDynamicEnergyExpenditure(t *testing.T) {
	tests := []struct {
		name         string
		anthro       domain.Anthropometrics
		wantDEE      int
		wantFormulas int
	}{
		{
			// Harris-Benedict 1762.652, Mifflin-St Jeor 1698.75,
			// rounded mean of the two
			name:         "male without lean body mass",
			anthro:       maleAnthro(),
			wantDEE:      1731,
			wantFormulas: 2,
		},
		{
			// Katch-McArdle (370 + 21.6*60 = 1666) joins the mean
			name: "male with explicit lean body mass",
			anthro: func() domain.Anthropometrics {
				a := maleAnthro()
				a.LeanBodyMassKg = f64(60)
				return a
			}(),
			wantDEE:      1709,
			wantFormulas: 3,
		},
		{
			// Same lean body mass derived from 20% body fat
			name: "male with body fat percentage",
			anthro: func() domain.Anthropometrics {
				a := maleAnthro()
				a.BodyFatPct = f64(20)
				return a
			}(),
			wantDEE:      1709,
			wantFormulas: 3,
		},
		{
			// HB 2132.013, MSJ 2076.5
			name: "female without lean body mass",
			anthro: domain.Anthropometrics{
				WeightKg: 160,
				HeightCm: 150,
				Age:      60,
				Gender:   domain.GenderFemale,
			},
			wantDEE:      2104,
			wantFormulas: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dee, formulas := dynamicEnergyExpenditure(tt.anthro)
			if dee != tt.wantDEE {
				t.Errorf("dynamicEnergyExpenditure() dee = %d, want %d", dee, tt.wantDEE)
			}
			if formulas != tt.wantFormulas {
				t.Errorf("dynamicEnergyExpenditure() formulas = %d, want %d", formulas, tt.wantFormulas)
			}
		})
	}
}

func TestNonExerciseActivity(t *testing.T) {
	tests := []struct {
		level domain.ActivityLevel
		want  int
	}{
		{domain.ActivitySedentary, 300},
		{domain.ActivityLight, 400},
		{domain.ActivityModerate, 600},
		{domain.ActivityActive, 800},
		{domain.ActivityVeryActive, 1000},
	}

	for _, tt := range tests {
		if got := nonExerciseActivity(2000, tt.level); got != tt.want {
			t.Errorf("nonExerciseActivity(2000, %s) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestExerciseActivity(t *testing.T) {
	// 180 min/week * 5 kcal/min / 7 days = 128.57 -> 129
	if got := exerciseActivity(180); got != 129 {
		t.Errorf("exerciseActivity(180) = %d, want 129", got)
	}
	if got := exerciseActivity(0); got != 0 {
		t.Errorf("exerciseActivity(0) = %d, want 0", got)
	}
}

func TestThermicEffectOfFood(t *testing.T) {
	// 180*4*0.25 + 210*4*0.05 + 64*9*0.02 = 180 + 42 + 11.52 = 233.52
	macros := domain.MacroSplit{ProteinG: 180, CarbsG: 210, FatG: 64}
	if got := thermicEffectOfFood(macros, domain.DietHighProtein); got != 234 {
		t.Errorf("thermicEffectOfFood(high protein) = %d, want 234", got)
	}
	// Protein coefficient drops to 0.20: 144 + 42 + 11.52 = 197.52
	if got := thermicEffectOfFood(macros, domain.DietBalanced); got != 198 {
		t.Errorf("thermicEffectOfFood(balanced) = %d, want 198", got)
	}
	// And to 0.15: 108 + 42 + 11.52 = 161.52
	if got := thermicEffectOfFood(macros, domain.DietLowProtein); got != 162 {
		t.Errorf("thermicEffectOfFood(low protein) = %d, want 162", got)
	}
}

func TestClassifyDiet(t *testing.T) {
	tests := []struct {
		proteinG int
		weightKg float64
		want     domain.DietType
	}{
		{180, 75, domain.DietHighProtein}, // 2.4 g/kg
		{165, 75, domain.DietHighProtein}, // exactly 2.2 g/kg
		{150, 75, domain.DietBalanced},    // 2.0 g/kg
		{119, 75, domain.DietLowProtein},  // 1.59 g/kg
	}

	for _, tt := range tests {
		if got := classifyDiet(tt.proteinG, tt.weightKg); got != tt.want {
			t.Errorf("classifyDiet(%d, %.0f) = %s, want %s", tt.proteinG, tt.weightKg, got, tt.want)
		}
	}
}

func TestInsulinSensitivityScore(t *testing.T) {
	base := maleAnthro()

	tests := []struct {
		name       string
		biomarkers domain.Biomarkers
		anthro     domain.Anthropometrics
		want       int
	}{
		{
			name:   "no biomarkers keeps full score",
			anthro: base,
			want:   100,
		},
		{
			name:       "mildly elevated GGT",
			biomarkers: domain.Biomarkers{GGT: f64(45)},
			anthro:     base,
			want:       90,
		},
		{
			name:       "strongly elevated GGT",
			biomarkers: domain.Biomarkers{GGT: f64(70)},
			anthro:     base,
			want:       80,
		},
		{
			name: "everything elevated clamps at zero",
			biomarkers: domain.Biomarkers{
				GGT:            f64(80),
				Triglycerides:  f64(250),
				FastingGlucose: f64(140),
				HbA1c:          f64(7.0),
			},
			anthro: func() domain.Anthropometrics {
				a := maleAnthro()
				a.WaistCm = f64(110)
				a.BodyFatPct = f64(30)
				return a
			}(),
			want: 0,
		},
		{
			name:   "female waist threshold is lower",
			anthro: domain.Anthropometrics{WeightKg: 70, HeightCm: 165, Age: 35, Gender: domain.GenderFemale, WaistCm: f64(90)},
			want:   85,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := insulinSensitivityScore(tt.biomarkers, tt.anthro); got != tt.want {
				t.Errorf("insulinSensitivityScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInsulinSensitivityMonotonic(t *testing.T) {
	// Worsening a single biomarker while holding the rest fixed must never
	// raise the score.
	anthro := maleAnthro()
	prev := 101
	for _, glucose := range []float64{90, 95, 101, 110, 127, 150} {
		score := insulinSensitivityScore(domain.Biomarkers{
			Triglycerides:  f64(160),
			FastingGlucose: f64(glucose),
		}, anthro)
		if score > prev {
			t.Fatalf("score increased from %d to %d as glucose rose to %.0f", prev, score, glucose)
		}
		prev = score
	}
}

func TestInsulinSensitivityReproducible(t *testing.T) {
	// The same partial biomarker subset must always yield the same score.
	anthro := maleAnthro()
	b := domain.Biomarkers{HbA1c: f64(6.0)}
	first := insulinSensitivityScore(b, anthro)
	for i := 0; i < 5; i++ {
		if got := insulinSensitivityScore(b, anthro); got != first {
			t.Fatalf("score changed between runs: %d vs %d", first, got)
		}
	}
	if first != 85 {
		t.Errorf("partial biomarker score = %d, want 85", first)
	}
}

func TestClassifySensitivity(t *testing.T) {
	tests := []struct {
		score      int
		category   domain.SensitivityCategory
		metabolism domain.MetabolicHealth
	}{
		{100, domain.SensitivityHigh, domain.MetabolicExcellent},
		{80, domain.SensitivityHigh, domain.MetabolicExcellent},
		{79, domain.SensitivityModerate, domain.MetabolicGood},
		{60, domain.SensitivityModerate, domain.MetabolicGood},
		{59, domain.SensitivityLow, domain.MetabolicFair},
		{40, domain.SensitivityLow, domain.MetabolicFair},
		{39, domain.SensitivityVeryLow, domain.MetabolicPoor},
		{0, domain.SensitivityVeryLow, domain.MetabolicPoor},
	}

	for _, tt := range tests {
		category, health := classifySensitivity(tt.score)
		if category != tt.category || health != tt.metabolism {
			t.Errorf("classifySensitivity(%d) = (%s, %s), want (%s, %s)",
				tt.score, category, health, tt.category, tt.metabolism)
		}
	}
}

func TestMusclePotentialScore(t *testing.T) {
	tests := []struct {
		name   string
		anthro domain.Anthropometrics
		want   int
	}{
		{
			name:   "no optional inputs keeps the base score",
			anthro: maleAnthro(),
			want:   50,
		},
		{
			name: "favorable digit ratio and large frame",
			anthro: func() domain.Anthropometrics {
				a := maleAnthro()
				a.DigitRatio = f64(0.93)
				a.WristCm = f64(20) // 20/175 = 0.114
				return a
			}(),
			want: 90,
		},
		{
			name: "unfavorable digit ratio and small frame",
			anthro: func() domain.Anthropometrics {
				a := maleAnthro()
				a.DigitRatio = f64(1.06)
				a.WristCm = f64(16) // 16/175 = 0.091
				return a
			}(),
			want: 30,
		},
		{
			name: "female frame thresholds",
			anthro: domain.Anthropometrics{
				WeightKg: 62,
				HeightCm: 165,
				Age:      28,
				Gender:   domain.GenderFemale,
				WristCm:  f64(16), // 16/165 = 0.097 -> +10
			},
			want: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := musclePotentialScore(tt.anthro); got != tt.want {
				t.Errorf("musclePotentialScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClassifyPotential(t *testing.T) {
	tests := []struct {
		score int
		want  domain.PotentialCategory
	}{
		{90, domain.PotentialHigh},
		{70, domain.PotentialHigh},
		{69, domain.PotentialModerate},
		{50, domain.PotentialModerate},
		{49, domain.PotentialLow},
		{20, domain.PotentialLow},
	}

	for _, tt := range tests {
		if got := classifyPotential(tt.score); got != tt.want {
			t.Errorf("classifyPotential(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
