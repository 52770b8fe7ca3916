package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/nutricoach/coach-api/internal/domain"
	"github.com/nutricoach/coach-api/internal/service"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const seededDays = 40

// Run seeds the database with sample clients, tracking history and one
// calculation snapshot each. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Client{}, &domain.EnergyCalculation{}, &domain.TrackingEntry{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	clients := []domain.Client{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "Sample Client A", Gender: domain.GenderMale},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Name: "Sample Client B", Gender: domain.GenderFemale},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Name: "Sample Client C", Gender: domain.GenderMale},
	}

	for _, client := range clients {
		if err := db.Where("id = ?", client.ID).FirstOrCreate(&client).Error; err != nil {
			return fmt.Errorf("failed to create client %s: %w", client.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(42))
	for i, client := range clients {
		startWeight := 95.0 - float64(i)*8
		if err := seedTrackingForClient(db, client, startWeight, rng); err != nil {
			return err
		}
		if err := seedCalculationForClient(db, client, startWeight); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

// seedTrackingForClient writes a slowly declining weight series with a
// weekend intake spike so the weekday-bias detector finds a pattern.
func seedTrackingForClient(db *gorm.DB, client domain.Client, startWeight float64, rng *rand.Rand) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	entries := make([]domain.TrackingEntry, 0, seededDays)
	weight := startWeight
	for i := seededDays - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)

		calories := 2100 + rng.Float64()*200
		weight -= 0.05 + rng.Float64()*0.05
		if date.Weekday() == time.Saturday {
			calories += 700
		}
		if date.Weekday() == time.Monday {
			// Monday morning rebound after the weekend
			weight += 0.5
		}

		entries = append(entries, domain.TrackingEntry{
			ClientID:  client.ID,
			EntryDate: date,
			WeightKg:  weight,
			Calories:  calories,
		})
	}

	service.RecomputeDerived(entries)

	for i := range entries {
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "client_id"}, {Name: "entry_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"weight_kg", "calories", "ewma_weight_kg", "store_change_kg", "adaptive_tdee",
			}),
		}).Create(&entries[i]).Error
		if err != nil {
			return fmt.Errorf("failed to create tracking entry: %w", err)
		}
	}
	return nil
}

func seedCalculationForClient(db *gorm.DB, client domain.Client, weight float64) error {
	bodyFat := 24.0
	waist := 96.0

	input := domain.CalculationInput{
		Anthropometrics: domain.Anthropometrics{
			WeightKg:   weight,
			HeightCm:   178,
			Age:        34,
			Gender:     client.Gender,
			BodyFatPct: &bodyFat,
			WaistCm:    &waist,
		},
		Psychology: domain.Psychology{
			FoodRelationship:  6,
			Stress:            domain.StressModerate,
			DietHistoryCycles: 2,
			TimeAvailableMin:  240,
			Motivation:        domain.MotivationHigh,
		},
		Activity: domain.Activity{
			NEATLevel:          domain.ActivityLight,
			ExerciseMinPerWeek: 180,
			Goal:               domain.GoalFatLoss,
		},
	}

	result, err := service.ComputeOptimalCalories(input)
	if err != nil {
		return fmt.Errorf("failed to compute seed calculation: %w", err)
	}

	calc := domain.EnergyCalculation{
		ClientID:     client.ID,
		CalculatedAt: time.Now().UTC(),
		Input:        input,
		Result:       *result,
	}

	var count int64
	if err := db.Model(&domain.EnergyCalculation{}).Where("client_id = ?", client.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := db.Create(&calc).Error; err != nil {
		return fmt.Errorf("failed to create seed calculation: %w", err)
	}
	return nil
}
