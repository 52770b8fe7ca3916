package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nutricoach/coach-api/internal/domain"
	"github.com/nutricoach/coach-api/pkg/pagination"
	"gorm.io/gorm"
)

type CalculationRepository interface {
	Create(ctx context.Context, calc *domain.EnergyCalculation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.EnergyCalculation, error)
	List(ctx context.Context, clientID uuid.UUID, filter domain.CalculationFilter) ([]domain.EnergyCalculation, error)
	Latest(ctx context.Context, clientID uuid.UUID) (*domain.EnergyCalculation, error)
}

type calculationRepository struct {
	db *gorm.DB
}

func NewCalculationRepository(db *gorm.DB) CalculationRepository {
	return &calculationRepository{db: db}
}

func (r *calculationRepository) Create(ctx context.Context, calc *domain.EnergyCalculation) error {
	return r.db.WithContext(ctx).Create(calc).Error
}

func (r *calculationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.EnergyCalculation, error) {
	var calc domain.EnergyCalculation
	err := r.db.WithContext(ctx).First(&calc, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &calc, nil
}

func (r *calculationRepository) List(ctx context.Context, clientID uuid.UUID, filter domain.CalculationFilter) ([]domain.EnergyCalculation, error) {
	query := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("calculated_at DESC")

	if filter.From != nil {
		query = query.Where("calculated_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("calculated_at <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"(calculated_at < ?) OR (calculated_at = ? AND id < ?)",
				cursor.Timestamp, cursor.Timestamp, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var calcs []domain.EnergyCalculation
	if err := query.Find(&calcs).Error; err != nil {
		return nil, err
	}

	return calcs, nil
}

func (r *calculationRepository) Latest(ctx context.Context, clientID uuid.UUID) (*domain.EnergyCalculation, error) {
	var calc domain.EnergyCalculation
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("calculated_at DESC").
		First(&calc).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &calc, nil
}
