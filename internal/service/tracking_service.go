package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nutricoach/coach-api/internal/domain"
	"github.com/nutricoach/coach-api/internal/repository"
	"github.com/nutricoach/coach-api/pkg/pagination"
)

const (
	// minTDEEWindowEntries is the minimum trailing history before a 7-day
	// adaptive TDEE is stored; below it the field stays 0 (unknown).
	minTDEEWindowEntries = 3

	tdeeWindowEntries = 7
)

// TrackingService manages the daily weight/intake series and its derived
// fields. Derived values are recomputed for the whole chain on every
// upsert since the EWMA depends on everything before the changed day.
type TrackingService interface {
	Upsert(ctx context.Context, clientID uuid.UUID, date time.Time, req *domain.UpsertTrackingRequest) (*domain.TrackingEntry, error)
	List(ctx context.Context, clientID uuid.UUID, filter domain.TrackingFilter) (*domain.TrackingListResponse, error)
}

type trackingService struct {
	repo       repository.TrackingRepository
	clientRepo repository.ClientRepository
}

func NewTrackingService(repo repository.TrackingRepository, clientRepo repository.ClientRepository) TrackingService {
	return &trackingService{
		repo:       repo,
		clientRepo: clientRepo,
	}
}

func (s *trackingService) Upsert(ctx context.Context, clientID uuid.UUID, date time.Time, req *domain.UpsertTrackingRequest) (*domain.TrackingEntry, error) {
	exists, err := s.clientRepo.Exists(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	entry := &domain.TrackingEntry{
		ClientID:  clientID,
		EntryDate: day,
		WeightKg:  req.WeightKg,
		Calories:  req.Calories,
	}
	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	series, err := s.repo.ListAll(ctx, clientID)
	if err != nil {
		return nil, err
	}

	RecomputeDerived(series)

	if err := s.repo.SaveDerived(ctx, series); err != nil {
		return nil, err
	}

	for i := range series {
		if series[i].EntryDate.Equal(day) {
			return &series[i], nil
		}
	}
	return entry, nil
}

func (s *trackingService) List(ctx context.Context, clientID uuid.UUID, filter domain.TrackingFilter) (*domain.TrackingListResponse, error) {
	exists, err := s.clientRepo.Exists(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	entries, err := s.repo.List(ctx, clientID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(entries) > limit
	if hasMore {
		entries = entries[:limit]
	}

	response := &domain.TrackingListResponse{
		Data: make([]domain.TrackingEntryResponse, len(entries)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, entry := range entries {
		response.Data[i] = entry.ToResponse()
	}

	if hasMore && len(entries) > 0 {
		last := entries[len(entries)-1]
		cursor := &pagination.Cursor{
			ID:        last.ID,
			Timestamp: last.EntryDate,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

// RecomputeDerived fills EWMA weight, day-over-day store change and the
// 7-day adaptive TDEE for every entry of a series, in place. The series is
// sorted chronologically first; entries keep their raw fields untouched.
//
// The adaptive TDEE for a day is the mean intake over the trailing window
// corrected by the energy equivalent of the mean daily weight change
// (7700 kcal/kg). It needs at least three trailing entries, otherwise it
// stays 0 and the projection simulator substitutes its fallback.
func RecomputeDerived(series []domain.TrackingEntry) {
	sort.Slice(series, func(i, j int) bool {
		return series[i].EntryDate.Before(series[j].EntryDate)
	})

	var ewma float64
	for i := range series {
		if i == 0 {
			ewma = series[i].WeightKg
			series[i].StoreChangeKg = 0
		} else {
			ewma = ewma*(1-historicalEWMAAlpha) + series[i].WeightKg*historicalEWMAAlpha
			series[i].StoreChangeKg = series[i].WeightKg - series[i-1].WeightKg
		}
		series[i].EWMAWeightKg = ewma

		start := i - tdeeWindowEntries + 1
		if start < 0 {
			start = 0
		}
		window := series[start : i+1]
		if len(window) < minTDEEWindowEntries {
			series[i].AdaptiveTDEE = 0
			continue
		}

		var calSum, changeSum float64
		for _, e := range window {
			calSum += e.Calories
			changeSum += e.StoreChangeKg
		}
		avgCal := calSum / float64(len(window))
		avgChange := changeSum / float64(len(window))

		series[i].AdaptiveTDEE = avgCal - avgChange*kcalPerKg
	}
}
