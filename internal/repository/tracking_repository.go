package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nutricoach/coach-api/internal/domain"
	"github.com/nutricoach/coach-api/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrackingRepository interface {
	// Upsert inserts or replaces the entry for its (client, date) key.
	Upsert(ctx context.Context, entry *domain.TrackingEntry) error
	// SaveDerived persists recomputed derived fields for existing entries.
	SaveDerived(ctx context.Context, entries []domain.TrackingEntry) error
	// ListAll returns the full series for a client, oldest first.
	ListAll(ctx context.Context, clientID uuid.UUID) ([]domain.TrackingEntry, error)
	GetByDate(ctx context.Context, clientID uuid.UUID, date time.Time) (*domain.TrackingEntry, error)
	List(ctx context.Context, clientID uuid.UUID, filter domain.TrackingFilter) ([]domain.TrackingEntry, error)
}

type trackingRepository struct {
	db *gorm.DB
}

func NewTrackingRepository(db *gorm.DB) TrackingRepository {
	return &trackingRepository{db: db}
}

func (r *trackingRepository) Upsert(ctx context.Context, entry *domain.TrackingEntry) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "client_id"}, {Name: "entry_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"weight_kg", "calories", "ewma_weight_kg", "store_change_kg", "adaptive_tdee", "updated_at",
		}),
	}).Create(entry).Error
}

func (r *trackingRepository) SaveDerived(ctx context.Context, entries []domain.TrackingEntry) error {
	for i := range entries {
		err := r.db.WithContext(ctx).
			Model(&domain.TrackingEntry{}).
			Where("id = ?", entries[i].ID).
			Updates(map[string]any{
				"ewma_weight_kg":  entries[i].EWMAWeightKg,
				"store_change_kg": entries[i].StoreChangeKg,
				"adaptive_tdee":   entries[i].AdaptiveTDEE,
			}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *trackingRepository) ListAll(ctx context.Context, clientID uuid.UUID) ([]domain.TrackingEntry, error) {
	var entries []domain.TrackingEntry
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("entry_date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *trackingRepository) GetByDate(ctx context.Context, clientID uuid.UUID, date time.Time) (*domain.TrackingEntry, error) {
	var entry domain.TrackingEntry
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND entry_date = ?", clientID, date).
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *trackingRepository) List(ctx context.Context, clientID uuid.UUID, filter domain.TrackingFilter) ([]domain.TrackingEntry, error) {
	query := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("entry_date DESC")

	if filter.From != nil {
		query = query.Where("entry_date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("entry_date <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"(entry_date < ?) OR (entry_date = ? AND id < ?)",
				cursor.Timestamp, cursor.Timestamp, cursor.ID,
			)
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var entries []domain.TrackingEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}
